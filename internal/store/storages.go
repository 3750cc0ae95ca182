package store

import (
	"context"
	"fmt"

	"github.com/staykeeper/staykeeper/internal/config"
	"github.com/staykeeper/staykeeper/internal/logger"
)

// Storages groups all server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	UserRepository     UserRepository
	PropertyRepository PropertyRepository
	SectionRepository  SectionRepository
}

// NewStorages initialises the server storage layer: connects to PostgreSQL
// using the supplied configuration, runs pending schema migrations via
// [DB.Migrate] and wires all repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		PropertyRepository: NewPropertyRepository(db, log),
		SectionRepository:  NewSectionRepository(db, log),
	}, nil
}
