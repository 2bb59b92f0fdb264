package handler

import (
	"github.com/dmarquez/go-mission-log/internal/config"
	"github.com/dmarquez/go-mission-log/internal/handler/http"
	"github.com/dmarquez/go-mission-log/internal/logger"
	"github.com/dmarquez/go-mission-log/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Storage.Files, logger),
	}, nil
}
