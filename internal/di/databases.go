package di

import (
	"fmt"
	"path/filepath"

	"github.com/aristath/etfoverlap/internal/config"
	"github.com/aristath/etfoverlap/internal/database"
	"github.com/rs/zerolog"
)

// InitializeDatabases opens client_data.db and applies its schema. With
// caching disabled the container is returned without a database.
func InitializeDatabases(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	container := &Container{}

	if !cfg.CacheEnabled {
		log.Info().Msg("Client data cache disabled")
		return container, nil
	}

	clientDataDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "client_data.db"),
		Profile: database.ProfileCache,
		Name:    "client_data",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize client_data database: %w", err)
	}

	if err := clientDataDB.Migrate(); err != nil {
		clientDataDB.Close()
		return nil, fmt.Errorf("failed to migrate client_data database: %w", err)
	}

	container.ClientDataDB = clientDataDB

	log.Info().Str("path", clientDataDB.Path()).Msg("Client data database initialized")

	return container, nil
}
