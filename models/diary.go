package models

import "time"

// DiaryEntry is a derived, human-readable summary line belonging to one user.
// Entries are generated automatically whenever a [ProgressEvent] is recorded
// and are never created independently through the write path.
type DiaryEntry struct {
	// DiaryID is the internal unique identifier of the entry.
	DiaryID int64 `json:"id"`

	// UserID references the owning user.
	UserID int64 `json:"user_id"`

	// Summary is the rendered one-line description of the recorded
	// progress (mission, status, score).
	Summary string `json:"summary"`

	// CreatedAt is the timestamp when the entry was persisted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the DiaryEntry model.
func (d DiaryEntry) TableName() string {
	return "user_diary"
}
