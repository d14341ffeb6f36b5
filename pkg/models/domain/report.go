package domain

import "time"

// Report is a printable rendition of one analysis.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Message     string
	Sections    []ReportSection
}

// ReportSection groups related rows, e.g. one category or one ranking.
type ReportSection struct {
	Title   string
	Summary []ReportSummary
	Details []ReportDetail
}

// ReportSummary is a key/value line printed above a section table.
type ReportSummary struct {
	Key   string
	Value string
}

// ReportDetail is a single table row.
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
