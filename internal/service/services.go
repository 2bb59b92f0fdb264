package service

import (
	"github.com/dmarquez/go-mission-log/internal/config"
	"github.com/dmarquez/go-mission-log/internal/logger"
	"github.com/dmarquez/go-mission-log/internal/store"
	"github.com/dmarquez/go-mission-log/internal/validators"
)

type Services struct {
	AuthService     AuthService
	MissionService  MissionService
	ProgressService ProgressService
	EvidenceService EvidenceService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	authService := NewAuthService(repositories.UserRepository, cfg.App, logger)
	missionService := NewMissionService(repositories.MissionRepository, repositories.UserRepository, logger)
	evidenceService := NewEvidenceService(repositories.EvidenceFileStorage, logger)
	progressService := NewProgressService(
		repositories.ProgressRepository,
		missionService,
		evidenceService,
		validators.NewProgressValidator(),
		logger,
	)

	return &Services{
		AuthService:     authService,
		MissionService:  missionService,
		ProgressService: progressService,
		EvidenceService: evidenceService,
	}
}
