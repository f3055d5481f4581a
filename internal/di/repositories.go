package di

import (
	"github.com/aristath/etfoverlap/internal/clientdata"
	"github.com/rs/zerolog"
)

// InitializeRepositories creates repositories for the opened databases.
func InitializeRepositories(container *Container, log zerolog.Logger) error {
	if container.ClientDataDB != nil {
		container.ClientDataRepo = clientdata.NewRepository(container.ClientDataDB.Conn())
		log.Debug().Msg("Client data repository initialized")
	}
	return nil
}
