package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/dmarquez/go-mission-log/internal/config"
	"github.com/dmarquez/go-mission-log/internal/logger"
)

// evidenceFileStorage is the filesystem implementation of
// [EvidenceFileStorage]. Accepted evidence files live flat inside a single
// uploads directory and are served from the public /uploads mount; the
// returned reference is the mount-relative path stored in the database.
type evidenceFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewEvidenceFileStorage constructs an [EvidenceFileStorage] rooted at the
// configured uploads directory.
func NewEvidenceFileStorage(cfg config.Files, logger *logger.Logger) EvidenceFileStorage {
	logger.Debug().Str("dir", cfg.UploadsDir).Msg("creating evidence file storage")
	return &evidenceFileStorage{
		dir:    cfg.UploadsDir,
		logger: logger,
	}
}

// Save writes the file content under storageName inside the uploads
// directory and returns the mount-relative reference (e.g.
// "uploads/evidence-....png"). The file is created exclusively; a name
// collision is an error rather than an overwrite.
func (s *evidenceFileStorage) Save(ctx context.Context, storageName string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	// storage names are generated server-side; the base check guards
	// against a traversal slipping in regardless
	if storageName == "" || storageName != filepath.Base(storageName) {
		return "", fmt.Errorf("%w: invalid storage name %q", ErrEvidenceNotSaved, storageName)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Err(err).Str("func", "*evidenceFileStorage.Save").Msg("failed to create uploads directory")
		return "", fmt.Errorf("%w: %w", ErrEvidenceNotSaved, err)
	}

	fullPath := filepath.Join(s.dir, storageName)
	file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*evidenceFileStorage.Save").Str("path", fullPath).Msg("failed to create evidence file")
		return "", fmt.Errorf("%w: %w", ErrEvidenceNotSaved, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		log.Err(err).Str("func", "*evidenceFileStorage.Save").Str("path", fullPath).Msg("failed to write evidence file")
		// remove the partial file so a retry with the same name can succeed
		os.Remove(fullPath)
		return "", fmt.Errorf("%w: %w", ErrEvidenceNotSaved, err)
	}

	return path.Join("uploads", storageName), nil
}

// Remove deletes a previously saved evidence file referenced by the
// mount-relative path Save returned. Only the base name is used, so a
// hostile reference cannot reach outside the uploads directory.
func (s *evidenceFileStorage) Remove(ctx context.Context, ref string) error {
	log := logger.FromContext(ctx)

	name := filepath.Base(ref)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("invalid evidence reference: %q", ref)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		log.Err(err).Str("func", "*evidenceFileStorage.Remove").Str("ref", ref).Msg("failed to remove evidence file")
		return fmt.Errorf("error removing evidence file: %w", err)
	}

	return nil
}
