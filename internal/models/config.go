package models

import "time"

// ScanConfig contains runtime options shared by the fetcher and scanner.
type ScanConfig struct {
	Timeout     time.Duration
	Concurrency int
	Proxy       string
	UserAgent   string
}
