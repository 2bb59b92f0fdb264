// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel Marquez

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dmarquez/go-mission-log/internal/logger"
	"github.com/dmarquez/go-mission-log/internal/utils"
	"github.com/dmarquez/go-mission-log/models"
)

// maxEvidenceUploadMemory caps how much of a multipart progress submission
// is buffered in memory before spilling to a temp file.
const maxEvidenceUploadMemory = 10 << 20

func (h *Handler) recordProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	payload, upload, closeUpload, err := parseProgressForm(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.recordProgress").Msg("invalid progress form")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer closeUpload()

	savedEvent, err := h.services.ProgressService.Record(ctx, userID, payload, upload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.recordProgress").Int64("missionID", payload.MissionID).Msg("error recording progress")
		http.Error(w, "error recording progress", statusFromError(err))
		return
	}

	utils.WriteJSON(w, savedEvent, http.StatusCreated)
}

func (h *Handler) previewProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	payload, upload, closeUpload, err := parseProgressForm(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.previewProgress").Msg("invalid progress form")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer closeUpload()

	echoedEvent, err := h.services.ProgressService.Preview(ctx, userID, payload, upload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.previewProgress").Int64("missionID", payload.MissionID).Msg("error previewing progress")
		http.Error(w, "error previewing progress", statusFromError(err))
		return
	}

	utils.WriteJSON(w, echoedEvent, http.StatusOK)
}

// parseProgressForm extracts the progress payload and the optional evidence
// upload from a multipart form. The returned close function releases the
// uploaded file handle and is safe to call when no file was attached.
//
// Missing required fields are left at their zero values so the service-side
// validator produces the rejection; only values that cannot be parsed at all
// fail here.
func parseProgressForm(r *http.Request) (models.ProgressPayload, *models.EvidenceUpload, func(), error) {
	noop := func() {}

	if err := r.ParseMultipartForm(maxEvidenceUploadMemory); err != nil {
		return models.ProgressPayload{}, nil, noop, fmt.Errorf("invalid multipart form: %w", err)
	}

	var payload models.ProgressPayload

	if missionIDValue := r.FormValue("missionId"); missionIDValue != "" {
		missionID, err := strconv.ParseInt(missionIDValue, 10, 64)
		if err != nil {
			return models.ProgressPayload{}, nil, noop, fmt.Errorf("invalid missionId %q", missionIDValue)
		}
		payload.MissionID = missionID
	}

	payload.Status = r.FormValue("status")
	payload.Notes = r.FormValue("notes")

	if scoreValue := r.FormValue("score"); scoreValue != "" {
		score, err := strconv.Atoi(scoreValue)
		if err != nil {
			return models.ProgressPayload{}, nil, noop, fmt.Errorf("invalid score %q", scoreValue)
		}
		payload.Score = &score
	}

	if completedAtValue := r.FormValue("completedAt"); completedAtValue != "" {
		completedAt, err := time.Parse(time.RFC3339, completedAtValue)
		if err != nil {
			return models.ProgressPayload{}, nil, noop, fmt.Errorf("invalid completedAt %q, expected RFC3339", completedAtValue)
		}
		payload.CompletedAt = &completedAt
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return payload, nil, noop, nil
	}
	if err != nil {
		return models.ProgressPayload{}, nil, noop, fmt.Errorf("invalid image part: %w", err)
	}

	upload := &models.EvidenceUpload{
		FileName:    header.Filename,
		Content:     file,
		Description: r.FormValue("imageDescription"),
	}

	return payload, upload, func() { _ = file.Close() }, nil
}
