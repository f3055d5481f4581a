package di

import (
	"fmt"

	"github.com/aristath/etfoverlap/internal/clientdata"
	"github.com/aristath/etfoverlap/internal/config"
	"github.com/aristath/etfoverlap/internal/scheduler"
	"github.com/rs/zerolog"
)

// RegisterJobs creates the scheduler and registers background jobs.
// The scheduler is not started here.
func RegisterJobs(container *Container, cfg *config.Config, log zerolog.Logger) (*JobInstances, error) {
	instances := &JobInstances{}
	container.Scheduler = scheduler.New(log)

	if container.ClientDataRepo == nil {
		return instances, nil
	}

	cleanup := clientdata.NewCleanupJob(container.ClientDataRepo, log)
	if err := container.Scheduler.AddJob(cfg.CleanupSchedule, cleanup); err != nil {
		return nil, fmt.Errorf("failed to register client data cleanup: %w", err)
	}
	instances.ClientDataCleanup = cleanup

	check := scheduler.NewCheckCacheDatabaseJob(container.ClientDataDB, log)
	if err := container.Scheduler.AddJob(cfg.CheckSchedule, check); err != nil {
		return nil, fmt.Errorf("failed to register cache database check: %w", err)
	}
	instances.CacheDatabaseCheck = check

	return instances, nil
}
