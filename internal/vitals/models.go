package vitals

import "time"

// Metric is a single Core Web Vitals measurement reported by the browser.
type Metric struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Rating string  `json:"rating"`
	ID     string  `json:"id"`
}

// Beacon is the POST body sent by the instrumentation script.
type Beacon struct {
	URL     string `json:"url"`
	Metrics Metric `json:"metrics"`
}

// Entry is one line of the append-only vitals log. No dedup, no schema
// versioning.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	URL       string    `json:"url"`
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	Rating    string    `json:"rating"`
	ID        string    `json:"id"`
}

type BeaconResponse struct {
	Success bool `json:"success"`
}
