package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmarquez/go-mission-log/internal/logger"
	"github.com/dmarquez/go-mission-log/models"
)

// progressRepository is the PostgreSQL-backed implementation of
// [ProgressRepository]. It owns the paired write that keeps the
// "mission_progress" and "user_diary" tables consistent: a progress event
// and its diary summary are always committed together or not at all.
type progressRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProgressRepository constructs a [ProgressRepository] backed by the
// provided database connection and logger.
func NewProgressRepository(db *DB, logger *logger.Logger) ProgressRepository {
	logger.Debug().Msg("creating progress repository")
	return &progressRepository{
		db:     db,
		logger: logger,
	}
}

// RecordProgress performs the paired write inside a single serializable
// transaction:
//
//  1. Re-read the mission owner with a share lock, so the mission cannot be
//     deleted or reassigned between the check and the inserts.
//  2. Insert the progress event row and scan back the canonical record.
//  3. Insert the derived diary entry for the same user.
//
// Any failure after BeginTx rolls the whole transaction back via the
// deferred Rollback; the commit is attempted only after both inserts
// succeeded. A client disconnect mid-request resolves the same way: the
// context cancellation aborts the transaction, never leaving one row
// without the other.
//
// Serializable isolation can abort a transaction that raced another writer
// (serialization failure, deadlock). Those aborts are transient, so the
// write is retried a bounded number of times before the error is surfaced.
func (r *progressRepository) RecordProgress(ctx context.Context, event models.ProgressEvent, summary string) (models.ProgressEvent, error) {
	log := logger.FromContext(ctx)

	var saved models.ProgressEvent
	var err error
	for attempt := 1; attempt <= maxSerializationAttempts; attempt++ {
		saved, err = r.recordProgressTx(ctx, event, summary)
		if err == nil || r.db.errorClassificator.Classify(err) != Retryable {
			return saved, err
		}
		log.Warn().
			Str("func", "*progressRepository.RecordProgress").
			Int64("mission_id", event.MissionID).
			Int("attempt", attempt).
			Msg("transaction aborted by concurrent writer, retrying")
	}

	return saved, err
}

// maxSerializationAttempts bounds how often RecordProgress retries a
// transaction aborted by the serializable isolation level.
const maxSerializationAttempts = 3

func (r *progressRepository) recordProgressTx(ctx context.Context, event models.ProgressEvent, summary string) (models.ProgressEvent, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		log.Err(err).
			Str("func", "*progressRepository.RecordProgress").
			Int64("mission_id", event.MissionID).
			Msg("failed to begin transaction")
		return models.ProgressEvent{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// ownership re-check inside the transaction boundary
	var owner int64
	if err := tx.QueryRowContext(ctx, missionOwnerLocked, event.MissionID).Scan(&owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "*progressRepository.RecordProgress").
				Int64("mission_id", event.MissionID).
				Msg("mission disappeared before insert")
			return models.ProgressEvent{}, ErrMissionNotFound
		}
		log.Err(err).
			Str("func", "*progressRepository.RecordProgress").
			Int64("mission_id", event.MissionID).
			Msg("failed to re-check mission owner")
		return models.ProgressEvent{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if owner != event.UserID {
		log.Warn().
			Str("func", "*progressRepository.RecordProgress").
			Int64("mission_id", event.MissionID).
			Int64("user_id", event.UserID).
			Msg("ownership mismatch inside transaction")
		return models.ProgressEvent{}, ErrMissionNotFound
	}

	saved := event
	row := tx.QueryRowContext(ctx, insertProgress,
		event.UserID,
		event.MissionID,
		event.Status,
		event.Score,
		event.CompletedAt,
		event.Notes,
		event.EvidencePath,
		event.EvidenceNote,
	)
	if err := row.Scan(
		&saved.ProgressID,
		&saved.UserID,
		&saved.MissionID,
		&saved.Status,
		&saved.Score,
		&saved.CompletedAt,
		&saved.Notes,
		&saved.EvidencePath,
		&saved.EvidenceNote,
		&saved.CreatedAt,
	); err != nil {
		log.Err(err).
			Str("func", "*progressRepository.RecordProgress").
			Int64("mission_id", event.MissionID).
			Msg("failed to insert progress event")
		return models.ProgressEvent{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := tx.ExecContext(ctx, insertDiaryEntry, event.UserID, summary); err != nil {
		log.Err(err).
			Str("func", "*progressRepository.RecordProgress").
			Int64("mission_id", event.MissionID).
			Msg("failed to insert diary entry, rolling back progress event")
		return models.ProgressEvent{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "*progressRepository.RecordProgress").
			Int64("mission_id", event.MissionID).
			Msg("failed to commit transaction")
		return models.ProgressEvent{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "*progressRepository.RecordProgress").
		Int64("progress_id", saved.ProgressID).
		Int64("mission_id", saved.MissionID).
		Int64("user_id", saved.UserID).
		Msg("progress event and diary entry committed")

	return saved, nil
}

// ListProgressByMission returns every progress event recorded against the
// given mission, oldest first. Ownership is enforced by the caller before
// this query runs.
func (r *progressRepository) ListProgressByMission(ctx context.Context, missionID int64) ([]models.ProgressEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildProgressByMissionQuery(missionID)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.ListProgressByMission").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.ListProgressByMission").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.ProgressEvent, 0)
	for rows.Next() {
		var event models.ProgressEvent
		if err := rows.Scan(
			&event.ProgressID,
			&event.UserID,
			&event.MissionID,
			&event.Status,
			&event.Score,
			&event.CompletedAt,
			&event.Notes,
			&event.EvidencePath,
			&event.EvidenceNote,
			&event.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*progressRepository.ListProgressByMission").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

// ListDiaryByUser returns every diary entry belonging to the given user,
// oldest first.
func (r *progressRepository) ListDiaryByUser(ctx context.Context, userID int64) ([]models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDiaryByUserQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.ListDiaryByUser").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.ListDiaryByUser").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.DiaryEntry, 0)
	for rows.Next() {
		var entry models.DiaryEntry
		if err := rows.Scan(&entry.DiaryID, &entry.UserID, &entry.Summary, &entry.CreatedAt); err != nil {
			log.Err(err).Str("func", "*progressRepository.ListDiaryByUser").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
