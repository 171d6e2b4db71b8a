// flags.go - Command-line flag definitions
package main

import "flag"

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	quietMode  = flag.Bool("q", false, "Suppress canonical output (diagnostics only)")
	addStatus  = flag.Bool("status", false, "Append check or mate status to each record")

	// Duplicate detection
	reportDupes     = flag.Bool("dupes", false, "Report repeated positions")
	exactDupes      = flag.Bool("exact", false, "Repeats must also agree on move counters")
	trackerCapacity = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Other options
	silent  = flag.Bool("s", false, "Silent mode (no record count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// lintOptionsFromFlags collects the processing options from parsed flags.
func lintOptionsFromFlags() lintOptions {
	return lintOptions{
		Workers:     *workers,
		Quiet:       *quietMode,
		ReportDupes: *reportDupes,
		ExactDupes:  *exactDupes,
		AddStatus:   *addStatus,
		MaxTracked:  *trackerCapacity,
	}
}
