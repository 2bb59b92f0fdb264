package service

import (
	"context"
	"fmt"

	"github.com/dmarquez/go-mission-log/internal/logger"
	"github.com/dmarquez/go-mission-log/internal/store"
	"github.com/dmarquez/go-mission-log/models"
)

// missionService is the concrete implementation of MissionService.
type missionService struct {
	missionRepository store.MissionRepository
	userRepository    store.UserRepository
	logger            *logger.Logger
}

func NewMissionService(missionRepository store.MissionRepository, userRepository store.UserRepository, logger *logger.Logger) MissionService {
	return &missionService{
		missionRepository: missionRepository,
		userRepository:    userRepository,
		logger:            logger,
	}
}

// CreateMission persists a new mission owned by mission.CreatedBy.
//
// Returns the stored mission or:
//   - ErrInvalidDataProvided if Name or Description is empty, or no owner
//     is set.
//   - A wrapped storage error if the repository call fails.
func (m *missionService) CreateMission(ctx context.Context, mission models.Mission) (models.Mission, error) {
	log := logger.FromContext(ctx)

	if mission.Name == "" || mission.Description == "" || mission.CreatedBy == 0 {
		log.Error().Any("mission", mission).Msg("invalid mission data provided")
		return models.Mission{}, ErrInvalidDataProvided
	}

	createdMission, err := m.missionRepository.CreateMission(ctx, mission)
	if err != nil {
		log.Err(err).Any("mission", mission).Msg("mission creation ended with error")
		return models.Mission{}, fmt.Errorf("mission creation ended with error: %w", err)
	}

	return createdMission, nil
}

// ListMissions returns every mission owned by the given user.
func (m *missionService) ListMissions(ctx context.Context, userID int64) ([]models.Mission, error) {
	log := logger.FromContext(ctx)

	missions, err := m.missionRepository.ListMissionsByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("mission listing ended with error")
		return nil, fmt.Errorf("mission listing ended with error: %w", err)
	}

	return missions, nil
}

// AssertOwned verifies that the user exists and owns the mission.
//
// Returns nil when both hold, store.ErrNoUserWasFound (wrapped) when the
// user is gone, and store.ErrMissionNotFound (wrapped) when the mission does
// not exist or belongs to another user. The two mission failure modes are
// indistinguishable on purpose so a caller cannot probe other users'
// mission ids.
func (m *missionService) AssertOwned(ctx context.Context, userID, missionID int64) error {
	log := logger.FromContext(ctx)

	if _, err := m.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("userID", userID).Msg("owner lookup failed")
		return fmt.Errorf("owner lookup failed: %w", err)
	}

	if _, err := m.missionRepository.FindMissionForOwner(ctx, missionID, userID); err != nil {
		log.Err(err).Int64("userID", userID).Int64("missionID", missionID).Msg("mission ownership check failed")
		return fmt.Errorf("mission ownership check failed: %w", err)
	}

	return nil
}
