package models

import "time"

// Mission is a named task created and owned by exactly one user.
// Missions are read-visible only to their owner.
type Mission struct {
	// MissionID is the internal unique identifier of the mission.
	MissionID int64 `json:"id"`

	// Name is the short title of the mission. Required at creation.
	Name string `json:"name"`

	// Description is the free-text explanation of what the mission is about.
	// Required at creation.
	Description string `json:"description"`

	// CreatedBy references the owning user. Every mission-scoped read and
	// write is checked against this field.
	CreatedBy int64 `json:"created_by"`

	// CreatedAt is the timestamp when the mission was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Mission model.
func (m Mission) TableName() string {
	return "missions"
}
