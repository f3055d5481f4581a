// Package di provides dependency injection type definitions.
package di

import (
	"github.com/aristath/etfoverlap/internal/clientdata"
	"github.com/aristath/etfoverlap/internal/clients/yahoo"
	"github.com/aristath/etfoverlap/internal/database"
	"github.com/aristath/etfoverlap/internal/domain"
	"github.com/aristath/etfoverlap/internal/modules/overlap"
	"github.com/aristath/etfoverlap/internal/modules/search"
	"github.com/aristath/etfoverlap/internal/scheduler"
)

// Container holds all application dependencies. It is created by Wire and
// passed to the server and CLI.
type Container struct {
	// Databases
	ClientDataDB *database.DB // Provider response cache; nil when caching is disabled

	// Repositories
	ClientDataRepo *clientdata.Repository // nil when caching is disabled

	// Clients
	YahooClient      *yahoo.Client
	HoldingsProvider domain.HoldingsProvider
	SymbolSearcher   domain.SymbolSearcher

	// Services
	OverlapOrchestrator *overlap.Orchestrator
	OverlapService      *overlap.Service
	SearchService       *search.Service

	// Background jobs
	Scheduler *scheduler.Scheduler
}

// JobInstances holds job references for manual triggering
type JobInstances struct {
	ClientDataCleanup  scheduler.Job // nil when caching is disabled
	CacheDatabaseCheck scheduler.Job // nil when caching is disabled
}

// Close releases database connections held by the container.
func (c *Container) Close() error {
	if c == nil || c.ClientDataDB == nil {
		return nil
	}
	return c.ClientDataDB.Close()
}
