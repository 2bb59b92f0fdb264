package models

import "time"

// ProgressPayload is the inbound shape of a progress submission, parsed from
// the multipart form fields of the record and preview endpoints.
//
// MissionID, Status and Score are required; validation rejects the payload
// before any storage access when one of them is missing or Score is outside
// [0,100]. Pointer fields distinguish "absent" from a zero value.
type ProgressPayload struct {
	// MissionID identifies the mission the progress is reported against.
	MissionID int64 `json:"mission_id"`

	// Status is the reported status label.
	Status string `json:"status"`

	// Score is the reported score. Nil means the field was not submitted.
	Score *int `json:"score"`

	// CompletedAt is the client-reported completion instant. Optional.
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Notes holds free-text additional information. Optional.
	Notes string `json:"notes,omitempty"`
}
