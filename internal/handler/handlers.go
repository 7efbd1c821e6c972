package handler

import (
	"github.com/MKhiriev/idea-vault/internal/config"
	"github.com/MKhiriev/idea-vault/internal/handler/http"
	"github.com/MKhiriev/idea-vault/internal/logger"
	"github.com/MKhiriev/idea-vault/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, db http.Pinger, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, db, cfg.App, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
