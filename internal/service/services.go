package service

import (
	"github.com/MKhiriev/idea-vault/internal/config"
	"github.com/MKhiriev/idea-vault/internal/logger"
	"github.com/MKhiriev/idea-vault/internal/store"
	"github.com/MKhiriev/idea-vault/internal/validators"
)

type Services struct {
	AuthService AuthService
	IdeaService IdeaService
}

func NewServices(storages store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, validators.NewCredentialsValidator(), cfg.App, cfg.Auth, logger),
		IdeaService: NewIdeaService(storages.IdeaRepository, validators.NewIdeaValidator(), logger),
	}
}
