package responses

import "patient-sync-service/internal/pkg/exceptions"

// BatchResult is what the registry echoed back for one transaction bundle.
type BatchResult struct {
	Count   int                  `json:"count"`
	Entries []BundleEntryOutcome `json:"entries,omitempty"`
}

type BundleEntryOutcome struct {
	Status   string `json:"status"`
	Location string `json:"location,omitempty"`
}

type SkippedRecord struct {
	Row        int    `json:"row"`
	Identifier string `json:"identifier"`
	Reason     string `json:"reason"`
}

type ImportSummary struct {
	JobID         string                  `json:"job_id"`
	FileName      string                  `json:"file_name"`
	Total         int                     `json:"total"`
	Created       int                     `json:"created"`
	Updated       int                     `json:"updated"`
	Skipped       []SkippedRecord         `json:"skipped,omitempty"`
	CreateEntries []BundleEntryOutcome    `json:"create_entries,omitempty"`
	UpdateEntries []BundleEntryOutcome    `json:"update_entries,omitempty"`
	Violations    []exceptions.FieldError `json:"violations,omitempty"`
}
