package models

import "time"

// ProgressEvent is an immutable record of one reported status for a mission.
// Events are append-only: once committed they are never updated or deleted.
//
// Every committed ProgressEvent has exactly one corresponding [DiaryEntry]
// written in the same transaction.
type ProgressEvent struct {
	// ProgressID is the internal unique identifier of the event.
	ProgressID int64 `json:"id"`

	// UserID is the reporting user. Must equal the CreatedBy of the
	// referenced mission; the write path rejects anything else.
	UserID int64 `json:"user_id"`

	// MissionID references the mission this event belongs to.
	MissionID int64 `json:"mission_id"`

	// Status is the reported status label (e.g. "done", "in progress").
	Status string `json:"status"`

	// Score is the reported numeric score, bounded to [0,100].
	Score int `json:"score"`

	// CompletedAt is the client-reported completion instant. Optional.
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Notes holds free-text additional information. Optional.
	Notes string `json:"notes,omitempty"`

	// EvidencePath is the stable storage reference of the attached evidence
	// image, resolvable under the public uploads mount. Nil when no file
	// was attached.
	EvidencePath *string `json:"evidence_path,omitempty"`

	// EvidenceNote is the user-supplied description of the attached
	// evidence image. Optional.
	EvidenceNote *string `json:"evidence_note,omitempty"`

	// CreatedAt is the timestamp when the event was persisted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ProgressEvent model.
func (p ProgressEvent) TableName() string {
	return "mission_progress"
}
