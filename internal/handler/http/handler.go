package http

import (
	"github.com/dmarquez/go-mission-log/internal/config"
	"github.com/dmarquez/go-mission-log/internal/logger"
	"github.com/dmarquez/go-mission-log/internal/service"
)

type Handler struct {
	services *service.Services

	// uploadsDir is the directory the public /uploads mount serves from.
	uploadsDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Files, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		uploadsDir: cfg.UploadsDir,
		logger:     logger,
	}
}
