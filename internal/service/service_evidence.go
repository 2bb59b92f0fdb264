package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmarquez/go-mission-log/internal/logger"
	"github.com/dmarquez/go-mission-log/internal/store"
	"github.com/dmarquez/go-mission-log/internal/utils"
	"github.com/dmarquez/go-mission-log/models"
)

// allowedEvidenceExtensions is the image allow-list for evidence uploads.
// The check is case-insensitive and runs before anything is written.
var allowedEvidenceExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

// evidenceService is the concrete implementation of EvidenceService.
type evidenceService struct {
	fileStorage   store.EvidenceFileStorage
	uuidGenerator *utils.UUIDGenerator
	logger        *logger.Logger
}

func NewEvidenceService(fileStorage store.EvidenceFileStorage, logger *logger.Logger) EvidenceService {
	return &evidenceService{
		fileStorage:   fileStorage,
		uuidGenerator: utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

// Accept validates the uploaded file against the image allow-list, stores it
// under a server-generated name and returns the public reference.
//
// A nil upload is not an error: it means the request carried no file and
// Accept returns a nil reference. A disallowed extension yields
// ErrUnsupportedMediaType without touching storage.
func (e *evidenceService) Accept(ctx context.Context, upload *models.EvidenceUpload) (*string, error) {
	if upload == nil {
		return nil, nil
	}

	log := logger.FromContext(ctx)

	ext := strings.ToLower(filepath.Ext(upload.FileName))
	if _, ok := allowedEvidenceExtensions[ext]; !ok {
		log.Error().Str("fileName", upload.FileName).Msg("evidence file type is not allowed")
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, ext)
	}

	storageName := fmt.Sprintf("evidence-%d-%s%s", time.Now().UnixNano(), e.uuidGenerator.Generate(), ext)
	ref, err := e.fileStorage.Save(ctx, storageName, upload.Content)
	if err != nil {
		log.Err(err).Str("fileName", upload.FileName).Msg("evidence file was not saved")
		return nil, fmt.Errorf("evidence file was not saved: %w", err)
	}

	return &ref, nil
}

// Discard removes an accepted evidence file by its reference.
func (e *evidenceService) Discard(ctx context.Context, ref string) error {
	log := logger.FromContext(ctx)

	if err := e.fileStorage.Remove(ctx, ref); err != nil {
		log.Err(err).Str("ref", ref).Msg("evidence file was not removed")
		return fmt.Errorf("evidence file was not removed: %w", err)
	}

	return nil
}
