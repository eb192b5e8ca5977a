// Package smoke crawls a running Olympus service and checks that its pages agree with each other.
package smoke

import "time"

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL string        // Base URL of the service
	Workers int           // Number of concurrent page fetches
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // Log every fetched page
}

// Stats holds smoke run statistics.
type Stats struct {
	PagesRequested   int
	PagesFailed      int
	CountriesChecked int
	YearsChecked     int
	TableRows        int
	Violations       []string
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
