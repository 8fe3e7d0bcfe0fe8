package vitals

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Stats summarizes one metric on one page.
type Stats struct {
	Count int
	Avg   float64
	Min   float64
	Max   float64
	P75   float64
}

// Threshold holds the Core Web Vitals boundaries: at or below Good is "good",
// above Poor is "poor", anything between needs improvement.
type Threshold struct {
	Good float64
	Poor float64
}

var thresholds = map[string]Threshold{
	"LCP":  {Good: 2500, Poor: 4000},
	"CLS":  {Good: 0.1, Poor: 0.25},
	"TTFB": {Good: 800, Poor: 1800},
	"FCP":  {Good: 1800, Poor: 3000},
	"INP":  {Good: 200, Poor: 500},
	"FID":  {Good: 100, Poor: 300},
}

var suggestions = map[string]string{
	"LCP":  "Compress hero images, preload the largest image, and serve static assets from a CDN.",
	"CLS":  "Reserve space for images and embeds with explicit width/height, avoid late-loading banners.",
	"TTFB": "Cache rendered pages at the edge and review slow upstream calls on first byte.",
	"FCP":  "Inline critical CSS and defer non-essential scripts.",
	"INP":  "Break up long tasks on the main thread and debounce heavy input handlers.",
	"FID":  "Split large bundles and postpone third-party scripts until after first input.",
}

// ReadEntries parses the JSONL vitals log. Malformed lines are skipped and
// counted rather than failing the whole report.
func ReadEntries(r io.Reader) ([]Entry, int, error) {
	var entries []Entry
	skipped := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil || entry.Name == "" {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("failed to read vitals log: %w", err)
	}

	return entries, skipped, nil
}

// Aggregate groups entries by page URL, then metric name.
func Aggregate(entries []Entry) map[string]map[string]Stats {
	values := make(map[string]map[string][]float64)
	for _, e := range entries {
		byMetric, ok := values[e.URL]
		if !ok {
			byMetric = make(map[string][]float64)
			values[e.URL] = byMetric
		}
		byMetric[e.Name] = append(byMetric[e.Name], e.Value)
	}

	result := make(map[string]map[string]Stats, len(values))
	for url, byMetric := range values {
		result[url] = make(map[string]Stats, len(byMetric))
		for name, vals := range byMetric {
			result[url][name] = summarize(vals)
		}
	}

	return result
}

func summarize(vals []float64) Stats {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	return Stats{
		Count: len(sorted),
		Avg:   sum / float64(len(sorted)),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		P75:   percentile(sorted, 0.75),
	}
}

// percentile uses the nearest-rank method on a sorted slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(p*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}

// Classify rates a p75 value against the fixed thresholds. Metrics without a
// known threshold rate as "unknown".
func Classify(name string, p75 float64) string {
	t, ok := thresholds[strings.ToUpper(name)]
	if !ok {
		return "unknown"
	}

	switch {
	case p75 <= t.Good:
		return "good"
	case p75 > t.Poor:
		return "poor"
	default:
		return "needs-improvement"
	}
}

// WriteReport prints the aggregated stats page by page, with remediation
// suggestions for every poorly rated metric.
func WriteReport(w io.Writer, groups map[string]map[string]Stats, skipped int) {
	fmt.Fprintln(w, "Web Vitals Report")
	fmt.Fprintln(w, "=================")

	urls := make([]string, 0, len(groups))
	for url := range groups {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	for _, url := range urls {
		fmt.Fprintf(w, "\nPage: %s\n", url)

		names := make([]string, 0, len(groups[url]))
		for name := range groups[url] {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			s := groups[url][name]
			rating := Classify(name, s.P75)
			fmt.Fprintf(w, "  %-5s samples=%d avg=%.2f min=%.2f max=%.2f p75=%.2f [%s]\n",
				name, s.Count, s.Avg, s.Min, s.Max, s.P75, rating)

			if rating == "poor" {
				if tip, ok := suggestions[strings.ToUpper(name)]; ok {
					fmt.Fprintf(w, "        suggestion: %s\n", tip)
				}
			}
		}
	}

	if skipped > 0 {
		fmt.Fprintf(w, "\nSkipped %d malformed line(s).\n", skipped)
	}
}
