package models

import (
	"patient-sync-service/internal/pkg/exceptions"
	"time"
)

type ImportJob struct {
	ID           string                  `bson:"_id" json:"id"`
	FileName     string                  `bson:"file_name" json:"file_name"`
	ArchiveKey   string                  `bson:"archive_key,omitempty" json:"archive_key,omitempty"`
	Checksum     string                  `bson:"checksum" json:"checksum"`
	Status       string                  `bson:"status" json:"status"`
	Total        int                     `bson:"total" json:"total"`
	Created      int                     `bson:"created" json:"created"`
	Updated      int                     `bson:"updated" json:"updated"`
	Skipped      int                     `bson:"skipped" json:"skipped"`
	Violations   []exceptions.FieldError `bson:"violations,omitempty" json:"violations,omitempty"`
	ErrorMessage string                  `bson:"error_message,omitempty" json:"error_message,omitempty"`
	StartedAt    time.Time               `bson:"started_at" json:"started_at"`
	FinishedAt   *time.Time              `bson:"finished_at,omitempty" json:"finished_at,omitempty"`
}

// ImportEvent is published once an import job finishes.
type ImportEvent struct {
	Type       string    `json:"type"`
	JobID      string    `json:"job_id"`
	FileName   string    `json:"file_name"`
	Status     string    `json:"status"`
	Created    int       `json:"created"`
	Updated    int       `json:"updated"`
	Skipped    int       `json:"skipped"`
	OccurredAt time.Time `json:"occurred_at"`
}
