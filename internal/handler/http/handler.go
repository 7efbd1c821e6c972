package http

import (
	"context"

	"github.com/MKhiriev/idea-vault/internal/config"
	"github.com/MKhiriev/idea-vault/internal/logger"
	"github.com/MKhiriev/idea-vault/internal/service"
)

// Pinger reports whether the persistence backend is reachable. Satisfied
// by store.DB; the health endpoint is its only consumer.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services

	// db is probed by the health endpoint. May be nil in tests that do not
	// exercise /api/health.
	db Pinger

	// environment gates how much detail a 500 response carries: outside
	// production the underlying error message is included.
	environment string

	logger *logger.Logger
}

func NewHandler(services *service.Services, db Pinger, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		db:          db,
		environment: cfg.Environment,
		logger:      logger,
	}
}
