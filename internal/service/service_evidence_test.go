package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmarquez/go-mission-log/internal/logger"
	"github.com/dmarquez/go-mission-log/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.EvidenceFileStorage
// ─────────────────────────────────────────────

type mockEvidenceFileStorage struct {
	saveFn   func(ctx context.Context, storageName string, content io.Reader) (string, error)
	removeFn func(ctx context.Context, ref string) error
}

func (m *mockEvidenceFileStorage) Save(ctx context.Context, storageName string, content io.Reader) (string, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, storageName, content)
	}
	return "uploads/" + storageName, nil
}

func (m *mockEvidenceFileStorage) Remove(ctx context.Context, ref string) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, ref)
	}
	return nil
}

// ─────────────────────────────────────────────
// Tests: Accept
// ─────────────────────────────────────────────

func TestAccept_NilUpload(t *testing.T) {
	evidenceService := NewEvidenceService(&mockEvidenceFileStorage{}, logger.Nop())

	ref, err := evidenceService.Accept(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, ref)
}

func TestAccept_AllowedExtensions(t *testing.T) {
	var savedNames []string
	fileStorage := &mockEvidenceFileStorage{
		saveFn: func(ctx context.Context, storageName string, content io.Reader) (string, error) {
			savedNames = append(savedNames, storageName)
			return "uploads/" + storageName, nil
		},
	}
	evidenceService := NewEvidenceService(fileStorage, logger.Nop())

	for _, fileName := range []string{"shot.jpg", "shot.JPEG", "shot.png", "shot.GIF"} {
		ref, err := evidenceService.Accept(context.Background(), &models.EvidenceUpload{
			FileName: fileName,
			Content:  strings.NewReader("bytes"),
		})
		require.NoError(t, err, fileName)
		require.NotNil(t, ref)
		assert.True(t, strings.HasPrefix(*ref, "uploads/evidence-"), *ref)
	}

	// the stored name keeps the lowercased original extension
	assert.True(t, strings.HasSuffix(savedNames[1], ".jpeg"))
	assert.True(t, strings.HasSuffix(savedNames[3], ".gif"))
}

func TestAccept_DisallowedExtension(t *testing.T) {
	saveCalled := false
	fileStorage := &mockEvidenceFileStorage{
		saveFn: func(ctx context.Context, storageName string, content io.Reader) (string, error) {
			saveCalled = true
			return "", nil
		},
	}
	evidenceService := NewEvidenceService(fileStorage, logger.Nop())

	for _, fileName := range []string{"payload.exe", "report.pdf", "noextension", "archive.tar.gz"} {
		_, err := evidenceService.Accept(context.Background(), &models.EvidenceUpload{
			FileName: fileName,
			Content:  strings.NewReader("bytes"),
		})
		require.ErrorIs(t, err, ErrUnsupportedMediaType, fileName)
	}
	assert.False(t, saveCalled, "rejected uploads must never reach storage")
}

func TestAccept_StorageFailure(t *testing.T) {
	storageErr := errors.New("disk full")
	fileStorage := &mockEvidenceFileStorage{
		saveFn: func(ctx context.Context, storageName string, content io.Reader) (string, error) {
			return "", storageErr
		},
	}
	evidenceService := NewEvidenceService(fileStorage, logger.Nop())

	_, err := evidenceService.Accept(context.Background(), &models.EvidenceUpload{
		FileName: "shot.png",
		Content:  strings.NewReader("bytes"),
	})
	require.ErrorIs(t, err, storageErr)
}

// ─────────────────────────────────────────────
// Tests: Discard
// ─────────────────────────────────────────────

func TestDiscard_DelegatesToStorage(t *testing.T) {
	var removedRef string
	fileStorage := &mockEvidenceFileStorage{
		removeFn: func(ctx context.Context, ref string) error {
			removedRef = ref
			return nil
		},
	}
	evidenceService := NewEvidenceService(fileStorage, logger.Nop())

	require.NoError(t, evidenceService.Discard(context.Background(), "uploads/evidence-1.png"))
	assert.Equal(t, "uploads/evidence-1.png", removedRef)
}

func TestDiscard_StorageFailure(t *testing.T) {
	storageErr := errors.New("not found")
	fileStorage := &mockEvidenceFileStorage{
		removeFn: func(ctx context.Context, ref string) error {
			return storageErr
		},
	}
	evidenceService := NewEvidenceService(fileStorage, logger.Nop())

	err := evidenceService.Discard(context.Background(), "uploads/evidence-1.png")
	require.ErrorIs(t, err, storageErr)
}
