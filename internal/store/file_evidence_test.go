package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmarquez/go-mission-log/internal/config"
	"github.com/dmarquez/go-mission-log/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvidenceStorage(t *testing.T) (EvidenceFileStorage, string) {
	t.Helper()
	dir := t.TempDir()
	storage := NewEvidenceFileStorage(config.Files{UploadsDir: dir}, logger.Nop())
	return storage, dir
}

func TestEvidenceSave_WritesFileAndReturnsRef(t *testing.T) {
	storage, dir := newTestEvidenceStorage(t)

	ref, err := storage.Save(context.Background(), "evidence-1-abc.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "uploads/evidence-1-abc.png", ref)

	content, err := os.ReadFile(filepath.Join(dir, "evidence-1-abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestEvidenceSave_RejectsPathTraversal(t *testing.T) {
	storage, _ := newTestEvidenceStorage(t)

	_, err := storage.Save(context.Background(), "../escape.png", strings.NewReader("x"))
	require.ErrorIs(t, err, ErrEvidenceNotSaved)
}

func TestEvidenceSave_RejectsCollision(t *testing.T) {
	storage, _ := newTestEvidenceStorage(t)

	_, err := storage.Save(context.Background(), "same.png", strings.NewReader("first"))
	require.NoError(t, err)

	_, err = storage.Save(context.Background(), "same.png", strings.NewReader("second"))
	require.ErrorIs(t, err, ErrEvidenceNotSaved)
}

func TestEvidenceRemove_DeletesSavedFile(t *testing.T) {
	storage, dir := newTestEvidenceStorage(t)

	ref, err := storage.Save(context.Background(), "gone.png", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, storage.Remove(context.Background(), ref))
	_, statErr := os.Stat(filepath.Join(dir, "gone.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestEvidenceRemove_MissingFile(t *testing.T) {
	storage, _ := newTestEvidenceStorage(t)

	err := storage.Remove(context.Background(), "uploads/never-existed.png")
	require.Error(t, err)
}
