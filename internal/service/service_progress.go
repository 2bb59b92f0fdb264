// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel Marquez

package service

import (
	"context"
	"fmt"

	"github.com/dmarquez/go-mission-log/internal/logger"
	"github.com/dmarquez/go-mission-log/internal/store"
	"github.com/dmarquez/go-mission-log/internal/validators"
	"github.com/dmarquez/go-mission-log/models"
)

// progressService is the concrete implementation of ProgressService. It
// chains payload validation, the ownership check, evidence acceptance and
// the paired progress+diary write.
type progressService struct {
	progressRepository store.ProgressRepository
	missionService     MissionService
	evidenceService    EvidenceService
	validator          validators.Validator
	logger             *logger.Logger
}

func NewProgressService(
	progressRepository store.ProgressRepository,
	missionService MissionService,
	evidenceService EvidenceService,
	validator validators.Validator,
	logger *logger.Logger,
) ProgressService {
	return &progressService{
		progressRepository: progressRepository,
		missionService:     missionService,
		evidenceService:    evidenceService,
		validator:          validator,
		logger:             logger,
	}
}

// Record persists one progress event and its diary summary.
//
// The pipeline is: validate the payload, assert the caller owns the mission,
// accept the optional evidence file, then write the progress row and the
// diary row in a single transaction. If the transaction fails after an
// evidence file was already stored, the file is removed on a best-effort
// basis so it does not linger unreferenced.
//
// Returns the committed event or:
//   - ErrInvalidPayload wrapping the validator error for a bad payload.
//   - store.ErrMissionNotFound (wrapped) when the mission is absent or owned
//     by another user.
//   - ErrUnsupportedMediaType for a disallowed evidence file type.
//   - A wrapped storage error when the transaction fails.
func (s *progressService) Record(ctx context.Context, userID int64, payload models.ProgressPayload, upload *models.EvidenceUpload) (models.ProgressEvent, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, payload); err != nil {
		log.Err(err).Int64("userID", userID).Msg("progress payload validation failed")
		return models.ProgressEvent{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if err := s.missionService.AssertOwned(ctx, userID, payload.MissionID); err != nil {
		return models.ProgressEvent{}, err
	}

	evidenceRef, err := s.evidenceService.Accept(ctx, upload)
	if err != nil {
		return models.ProgressEvent{}, err
	}

	event := s.buildEvent(userID, payload, upload, evidenceRef)
	savedEvent, err := s.progressRepository.RecordProgress(ctx, event, diarySummary(payload))
	if err != nil {
		log.Err(err).Int64("userID", userID).Int64("missionID", payload.MissionID).Msg("progress recording ended with error")
		if evidenceRef != nil {
			if discardErr := s.evidenceService.Discard(ctx, *evidenceRef); discardErr != nil {
				log.Err(discardErr).Str("ref", *evidenceRef).Msg("orphaned evidence file was not cleaned up")
			}
		}
		return models.ProgressEvent{}, fmt.Errorf("progress recording ended with error: %w", err)
	}

	return savedEvent, nil
}

// Preview validates the payload and accepts the optional evidence file, then
// returns the event Record would persist. The database is never touched and
// mission ownership is not checked, so the echoed event carries no
// server-assigned id or timestamp.
func (s *progressService) Preview(ctx context.Context, userID int64, payload models.ProgressPayload, upload *models.EvidenceUpload) (models.ProgressEvent, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, payload); err != nil {
		log.Err(err).Int64("userID", userID).Msg("progress payload validation failed")
		return models.ProgressEvent{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	evidenceRef, err := s.evidenceService.Accept(ctx, upload)
	if err != nil {
		return models.ProgressEvent{}, err
	}

	return s.buildEvent(userID, payload, upload, evidenceRef), nil
}

// ListMissionUpdates returns all progress events for a mission after
// asserting the caller owns it.
func (s *progressService) ListMissionUpdates(ctx context.Context, userID, missionID int64) ([]models.ProgressEvent, error) {
	log := logger.FromContext(ctx)

	if err := s.missionService.AssertOwned(ctx, userID, missionID); err != nil {
		return nil, err
	}

	events, err := s.progressRepository.ListProgressByMission(ctx, missionID)
	if err != nil {
		log.Err(err).Int64("missionID", missionID).Msg("progress listing ended with error")
		return nil, fmt.Errorf("progress listing ended with error: %w", err)
	}

	return events, nil
}

// ListDiary returns every diary entry belonging to the given user.
func (s *progressService) ListDiary(ctx context.Context, userID int64) ([]models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	entries, err := s.progressRepository.ListDiaryByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("diary listing ended with error")
		return nil, fmt.Errorf("diary listing ended with error: %w", err)
	}

	return entries, nil
}

func (s *progressService) buildEvent(userID int64, payload models.ProgressPayload, upload *models.EvidenceUpload, evidenceRef *string) models.ProgressEvent {
	event := models.ProgressEvent{
		UserID:       userID,
		MissionID:    payload.MissionID,
		Status:       payload.Status,
		Score:        *payload.Score,
		CompletedAt:  payload.CompletedAt,
		Notes:        payload.Notes,
		EvidencePath: evidenceRef,
	}
	if upload != nil && upload.Description != "" {
		event.EvidenceNote = &upload.Description
	}

	return event
}

// diarySummary renders the one-line diary text derived from a progress
// submission. The payload has been validated before this point, so Score is
// never nil here.
func diarySummary(payload models.ProgressPayload) string {
	return fmt.Sprintf("Mission %d - status: %s, score: %d", payload.MissionID, payload.Status, *payload.Score)
}
