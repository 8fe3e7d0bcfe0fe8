package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"driveline/internal/vitals"
)

var (
	logFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vitals-report",
		Short: "Summarize the web-vitals log collected by the inquiry service",
		Long:  "Reads the JSONL vitals log, aggregates metrics per page, rates the 75th percentile against Core Web Vitals thresholds, and prints remediation suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(logFile)
			if err != nil {
				return fmt.Errorf("failed to open vitals log %s: %w", logFile, err)
			}
			defer f.Close()

			entries, skipped, err := vitals.ReadEntries(f)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("No vitals entries recorded yet.")
				return nil
			}

			vitals.WriteReport(os.Stdout, vitals.Aggregate(entries), skipped)
			return nil
		},
	}

	rootCmd.Flags().StringVar(&logFile, "file", "vitals.log", "Path to the vitals JSONL log")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
