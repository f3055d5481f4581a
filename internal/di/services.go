package di

import (
	"github.com/aristath/etfoverlap/internal/clients/yahoo"
	"github.com/aristath/etfoverlap/internal/config"
	"github.com/aristath/etfoverlap/internal/modules/overlap"
	"github.com/aristath/etfoverlap/internal/modules/search"
	"github.com/rs/zerolog"
)

// InitializeServices creates the provider clients and the analysis services.
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) error {
	container.YahooClient = yahoo.NewClient(cfg.YahooBaseURL, container.ClientDataRepo, log)

	adapter := yahoo.NewAdapter(container.YahooClient)
	container.HoldingsProvider = adapter
	container.SymbolSearcher = adapter

	container.OverlapOrchestrator = overlap.NewOrchestrator(container.HoldingsProvider, cfg.FetchTimeout, log)
	container.OverlapService = overlap.NewService(container.OverlapOrchestrator, log)
	container.SearchService = search.NewService(container.SymbolSearcher, log)

	return nil
}
