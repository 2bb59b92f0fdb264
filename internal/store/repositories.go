package store

import (
	"github.com/dmarquez/go-mission-log/internal/config"
	"github.com/dmarquez/go-mission-log/internal/logger"
)

// Repositories bundles every storage-layer dependency the service layer
// needs, constructed once at startup.
type Repositories struct {
	UserRepository      UserRepository
	MissionRepository   MissionRepository
	ProgressRepository  ProgressRepository
	EvidenceFileStorage EvidenceFileStorage
}

func NewRepositories(db *DB, cfg config.Storage, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db, logger),
		MissionRepository:   NewMissionRepository(db, logger),
		ProgressRepository:  NewProgressRepository(db, logger),
		EvidenceFileStorage: NewEvidenceFileStorage(cfg.Files, logger),
	}
}
