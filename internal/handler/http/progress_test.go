// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel Marquez

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmarquez/go-mission-log/internal/service"
	"github.com/dmarquez/go-mission-log/internal/store"
	"github.com/dmarquez/go-mission-log/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock ProgressService
// ─────────────────────────────────────────────

type mockProgressService struct {
	recordFn             func(ctx context.Context, userID int64, payload models.ProgressPayload, upload *models.EvidenceUpload) (models.ProgressEvent, error)
	previewFn            func(ctx context.Context, userID int64, payload models.ProgressPayload, upload *models.EvidenceUpload) (models.ProgressEvent, error)
	listMissionUpdatesFn func(ctx context.Context, userID, missionID int64) ([]models.ProgressEvent, error)
	listDiaryFn          func(ctx context.Context, userID int64) ([]models.DiaryEntry, error)
}

func (m *mockProgressService) Record(ctx context.Context, userID int64, payload models.ProgressPayload, upload *models.EvidenceUpload) (models.ProgressEvent, error) {
	return m.recordFn(ctx, userID, payload, upload)
}

func (m *mockProgressService) Preview(ctx context.Context, userID int64, payload models.ProgressPayload, upload *models.EvidenceUpload) (models.ProgressEvent, error) {
	return m.previewFn(ctx, userID, payload, upload)
}

func (m *mockProgressService) ListMissionUpdates(ctx context.Context, userID, missionID int64) ([]models.ProgressEvent, error) {
	return m.listMissionUpdatesFn(ctx, userID, missionID)
}

func (m *mockProgressService) ListDiary(ctx context.Context, userID int64) ([]models.DiaryEntry, error) {
	return m.listDiaryFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithProgress(t *testing.T, progress service.ProgressService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{ProgressService: progress})
}

// progressForm builds a multipart request body with the given text fields
// and, when fileName is non-empty, an image part holding fileContent.
func progressForm(t *testing.T, fields map[string]string, fileName, fileContent string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for field, value := range fields {
		require.NoError(t, writer.WriteField(field, value))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = io.WriteString(part, fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func validProgressFields() map[string]string {
	return map[string]string{
		"missionId": "3",
		"status":    "done",
		"score":     "90",
		"notes":     "wrapped up",
	}
}

// ─────────────────────────────────────────────
// recordProgress
// ─────────────────────────────────────────────

func TestRecordProgress_Success(t *testing.T) {
	var gotPayload models.ProgressPayload
	progress := &mockProgressService{
		recordFn: func(_ context.Context, userID int64, payload models.ProgressPayload, upload *models.EvidenceUpload) (models.ProgressEvent, error) {
			gotPayload = payload
			return models.ProgressEvent{ProgressID: 11, UserID: userID, MissionID: payload.MissionID, Status: payload.Status, Score: *payload.Score}, nil
		},
	}
	h := newHandlerWithProgress(t, progress)

	body, contentType := progressForm(t, validProgressFields(), "", "")
	req := httptest.NewRequest(http.MethodPost, "/api/progress", body)
	req.Header.Set("Content-Type", contentType)
	req = req.WithContext(ctxWithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()

	h.recordProgress(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, gotPayload.Score)
	assert.Equal(t, int64(3), gotPayload.MissionID)
	assert.Equal(t, "done", gotPayload.Status)
	assert.Equal(t, 90, *gotPayload.Score)
	assert.Equal(t, "wrapped up", gotPayload.Notes)

	var saved models.ProgressEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, int64(11), saved.ProgressID)
}

func TestRecordProgress_WithImage(t *testing.T) {
	var gotUpload *models.EvidenceUpload
	var gotContent []byte
	progress := &mockProgressService{
		recordFn: func(_ context.Context, userID int64, payload models.ProgressPayload, upload *models.EvidenceUpload) (models.ProgressEvent, error) {
			gotUpload = upload
			if upload != nil {
				gotContent, _ = io.ReadAll(upload.Content)
			}
			return models.ProgressEvent{ProgressID: 11}, nil
		},
	}
	h := newHandlerWithProgress(t, progress)

	fields := validProgressFields()
	fields["imageDescription"] = "final state"
	body, contentType := progressForm(t, fields, "shot.png", "png-bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/progress", body)
	req.Header.Set("Content-Type", contentType)
	req = req.WithContext(ctxWithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()

	h.recordProgress(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, gotUpload)
	assert.Equal(t, "shot.png", gotUpload.FileName)
	assert.Equal(t, "final state", gotUpload.Description)
	assert.Equal(t, "png-bytes", string(gotContent))
}

func TestRecordProgress_MalformedFields(t *testing.T) {
	h := newHandlerWithProgress(t, &mockProgressService{})

	tests := map[string]map[string]string{
		"bad missionId":   {"missionId": "abc", "status": "done", "score": "90"},
		"bad score":       {"missionId": "3", "status": "done", "score": "ninety"},
		"bad completedAt": {"missionId": "3", "status": "done", "score": "90", "completedAt": "yesterday"},
	}
	for name, fields := range tests {
		body, contentType := progressForm(t, fields, "", "")
		req := httptest.NewRequest(http.MethodPost, "/api/progress", body)
		req.Header.Set("Content-Type", contentType)
		req = req.WithContext(ctxWithUserID(req.Context(), 7))
		rec := httptest.NewRecorder()

		h.recordProgress(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
}

func TestRecordProgress_InvalidPayload(t *testing.T) {
	progress := &mockProgressService{
		recordFn: func(_ context.Context, userID int64, payload models.ProgressPayload, upload *models.EvidenceUpload) (models.ProgressEvent, error) {
			return models.ProgressEvent{}, service.ErrInvalidPayload
		},
	}
	h := newHandlerWithProgress(t, progress)

	// missing score reaches the service and is rejected there
	body, contentType := progressForm(t, map[string]string{"missionId": "3", "status": "done"}, "", "")
	req := httptest.NewRequest(http.MethodPost, "/api/progress", body)
	req.Header.Set("Content-Type", contentType)
	req = req.WithContext(ctxWithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()

	h.recordProgress(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordProgress_MissionNotFound(t *testing.T) {
	progress := &mockProgressService{
		recordFn: func(_ context.Context, userID int64, payload models.ProgressPayload, upload *models.EvidenceUpload) (models.ProgressEvent, error) {
			return models.ProgressEvent{}, store.ErrMissionNotFound
		},
	}
	h := newHandlerWithProgress(t, progress)

	body, contentType := progressForm(t, validProgressFields(), "", "")
	req := httptest.NewRequest(http.MethodPost, "/api/progress", body)
	req.Header.Set("Content-Type", contentType)
	req = req.WithContext(ctxWithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()

	h.recordProgress(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordProgress_UnsupportedEvidenceType(t *testing.T) {
	progress := &mockProgressService{
		recordFn: func(_ context.Context, userID int64, payload models.ProgressPayload, upload *models.EvidenceUpload) (models.ProgressEvent, error) {
			return models.ProgressEvent{}, service.ErrUnsupportedMediaType
		},
	}
	h := newHandlerWithProgress(t, progress)

	body, contentType := progressForm(t, validProgressFields(), "payload.exe", "MZ")
	req := httptest.NewRequest(http.MethodPost, "/api/progress", body)
	req.Header.Set("Content-Type", contentType)
	req = req.WithContext(ctxWithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()

	h.recordProgress(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordProgress_Unauthenticated(t *testing.T) {
	h := newHandlerWithProgress(t, &mockProgressService{})

	body, contentType := progressForm(t, validProgressFields(), "", "")
	req := httptest.NewRequest(http.MethodPost, "/api/progress", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.recordProgress(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// previewProgress
// ─────────────────────────────────────────────

func TestPreviewProgress_EchoesWithoutID(t *testing.T) {
	progress := &mockProgressService{
		previewFn: func(_ context.Context, userID int64, payload models.ProgressPayload, upload *models.EvidenceUpload) (models.ProgressEvent, error) {
			return models.ProgressEvent{UserID: userID, MissionID: payload.MissionID, Status: payload.Status, Score: *payload.Score}, nil
		},
	}
	h := newHandlerWithProgress(t, progress)

	body, contentType := progressForm(t, validProgressFields(), "", "")
	req := httptest.NewRequest(http.MethodPost, "/api/progress/preview", body)
	req.Header.Set("Content-Type", contentType)
	req = req.WithContext(ctxWithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()

	h.previewProgress(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var echoed models.ProgressEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &echoed))
	assert.Zero(t, echoed.ProgressID)
	assert.Equal(t, int64(7), echoed.UserID)
	assert.Equal(t, "done", echoed.Status)
}

// ─────────────────────────────────────────────
// listDiary
// ─────────────────────────────────────────────

func TestListDiary_Success(t *testing.T) {
	progress := &mockProgressService{
		listDiaryFn: func(_ context.Context, userID int64) ([]models.DiaryEntry, error) {
			return []models.DiaryEntry{{DiaryID: 1, UserID: userID, Summary: "Mission 3 - status: done, score: 90"}}, nil
		},
	}
	h := newHandlerWithProgress(t, progress)

	req := httptest.NewRequest(http.MethodGet, "/api/diary", nil)
	req = req.WithContext(ctxWithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()

	h.listDiary(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var entries []models.DiaryEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Mission 3 - status: done, score: 90", entries[0].Summary)
}

func TestListDiary_Unauthenticated(t *testing.T) {
	h := newHandlerWithProgress(t, &mockProgressService{})

	req := httptest.NewRequest(http.MethodGet, "/api/diary", nil)
	rec := httptest.NewRecorder()

	h.listDiary(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
