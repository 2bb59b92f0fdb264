package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmarquez/go-mission-log/internal/logger"
	"github.com/dmarquez/go-mission-log/models"
)

// missionRepository is the PostgreSQL-backed implementation of
// [MissionRepository] working against the "missions" table.
type missionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMissionRepository constructs a [MissionRepository] backed by the
// provided database connection and logger.
func NewMissionRepository(db *DB, logger *logger.Logger) MissionRepository {
	logger.Debug().Msg("creating mission repository")
	return &missionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMission persists a new mission record owned by mission.CreatedBy and
// returns the fully populated [models.Mission] with server-assigned fields.
func (r *missionRepository) CreateMission(ctx context.Context, mission models.Mission) (models.Mission, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMission, mission.Name, mission.Description, mission.CreatedBy)

	if err := row.Scan(&mission.MissionID, &mission.Name, &mission.Description, &mission.CreatedBy, &mission.CreatedAt); err != nil {
		log.Err(err).Str("func", "*missionRepository.CreateMission").Msg("error: insert failed")
		return models.Mission{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return mission, nil
}

// FindMissionForOwner retrieves a mission scoped to its owner. A mission
// that exists but belongs to another user produces the same
// [ErrMissionNotFound] as a mission that does not exist at all.
func (r *missionRepository) FindMissionForOwner(ctx context.Context, missionID, userID int64) (models.Mission, error) {
	log := logger.FromContext(ctx)

	var mission models.Mission
	row := r.db.QueryRowContext(ctx, findMissionForOwner, missionID, userID)

	if err := row.Scan(&mission.MissionID, &mission.Name, &mission.Description, &mission.CreatedBy, &mission.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Mission{}, ErrMissionNotFound
		}
		log.Err(err).Str("func", "*missionRepository.FindMissionForOwner").Msg("error: scanning error")
		return models.Mission{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return mission, nil
}

// ListMissionsByOwner returns every mission owned by the given user,
// oldest first. An owner with no missions yields an empty slice, not an
// error.
func (r *missionRepository) ListMissionsByOwner(ctx context.Context, userID int64) ([]models.Mission, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMissionsByOwnerQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*missionRepository.ListMissionsByOwner").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*missionRepository.ListMissionsByOwner").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	missions := make([]models.Mission, 0)
	for rows.Next() {
		var mission models.Mission
		if err := rows.Scan(&mission.MissionID, &mission.Name, &mission.Description, &mission.CreatedBy, &mission.CreatedAt); err != nil {
			log.Err(err).Str("func", "*missionRepository.ListMissionsByOwner").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		missions = append(missions, mission)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return missions, nil
}
