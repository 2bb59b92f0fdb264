package store

import (
	"context"
	"io"

	"github.com/dmarquez/go-mission-log/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the canonical stored record.
	// Returns ErrEmailAlreadyExists when the email is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by email.
	// Returns ErrNoUserWasFound when no record matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks up a user by its internal identifier.
	// Returns ErrNoUserWasFound when no record matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// MissionRepository is the data-access contract for missions.
type MissionRepository interface {
	// CreateMission persists a new mission owned by mission.CreatedBy and
	// returns the canonical stored record.
	CreateMission(ctx context.Context, mission models.Mission) (models.Mission, error)

	// FindMissionForOwner looks up a mission by id scoped to its owner.
	// Returns ErrMissionNotFound both when the mission does not exist and
	// when it is owned by a different user.
	FindMissionForOwner(ctx context.Context, missionID, userID int64) (models.Mission, error)

	// ListMissionsByOwner returns all missions owned by the given user.
	ListMissionsByOwner(ctx context.Context, userID int64) ([]models.Mission, error)
}

// ProgressRepository is the data-access contract for progress events and the
// diary entries derived from them.
type ProgressRepository interface {
	// RecordProgress inserts the progress event and its diary summary as one
	// transaction: either both rows are committed or neither is. Ownership
	// of the mission is re-checked inside the transaction; a mismatch or a
	// missing mission yields ErrMissionNotFound and nothing is written.
	RecordProgress(ctx context.Context, event models.ProgressEvent, summary string) (models.ProgressEvent, error)

	// ListProgressByMission returns all progress events recorded against
	// the given mission.
	ListProgressByMission(ctx context.Context, missionID int64) ([]models.ProgressEvent, error)

	// ListDiaryByUser returns all diary entries belonging to the given user.
	ListDiaryByUser(ctx context.Context, userID int64) ([]models.DiaryEntry, error)
}

// EvidenceFileStorage is the blob-store contract for accepted evidence files.
// Implementations return a stable reference usable to serve the file later.
type EvidenceFileStorage interface {
	// Save writes the file content under the given storage name and returns
	// the stable reference path.
	Save(ctx context.Context, storageName string, content io.Reader) (string, error)

	// Remove deletes a previously saved file. Used to clean up an orphaned
	// evidence file when the paired database write fails after the blob
	// write already happened.
	Remove(ctx context.Context, ref string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
