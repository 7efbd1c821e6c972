package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/idea-vault/internal/config"
	"github.com/MKhiriev/idea-vault/internal/logger"
)

// Storages bundles every repository backed by the shared database
// connection. DB is exposed for liveness probing.
type Storages struct {
	UserRepository UserRepository
	IdeaRepository IdeaRepository
	DB             *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// constructs all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		IdeaRepository: NewIdeaRepository(db, log),
		DB:             db,
	}, nil
}
