package service

import (
	"context"

	"github.com/dmarquez/go-mission-log/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type MissionService interface {
	CreateMission(ctx context.Context, mission models.Mission) (models.Mission, error)
	ListMissions(ctx context.Context, userID int64) ([]models.Mission, error)

	// AssertOwned verifies that the user exists and owns the mission.
	// A missing mission and a mission owned by someone else are reported
	// the same way, as store.ErrMissionNotFound.
	AssertOwned(ctx context.Context, userID, missionID int64) error
}

type ProgressService interface {
	// Record validates the payload, checks mission ownership, accepts the
	// optional evidence upload and commits the progress event together
	// with its diary entry in one transaction.
	Record(ctx context.Context, userID int64, payload models.ProgressPayload, upload *models.EvidenceUpload) (models.ProgressEvent, error)

	// Preview validates the payload and accepts the optional evidence
	// upload, then echoes the event that Record would persist. Nothing is
	// written to the database and ownership is not checked.
	Preview(ctx context.Context, userID int64, payload models.ProgressPayload, upload *models.EvidenceUpload) (models.ProgressEvent, error)

	ListMissionUpdates(ctx context.Context, userID, missionID int64) ([]models.ProgressEvent, error)
	ListDiary(ctx context.Context, userID int64) ([]models.DiaryEntry, error)
}

type EvidenceService interface {
	// Accept stores the uploaded file and returns its public reference.
	// A nil upload means no file was attached and yields a nil reference.
	Accept(ctx context.Context, upload *models.EvidenceUpload) (*string, error)

	// Discard removes a previously accepted file. Used to clean up after
	// a failed database write so the file does not linger unreferenced.
	Discard(ctx context.Context, ref string) error
}
