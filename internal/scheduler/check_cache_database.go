package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/aristath/etfoverlap/internal/database"
	"github.com/rs/zerolog"
)

// walWarnFrames is the WAL size above which a passive checkpoint is reported as lagging.
const walWarnFrames = 1000

// CheckCacheDatabaseJob verifies the provider cache database and reports WAL growth.
type CheckCacheDatabaseJob struct {
	db  *database.DB
	log zerolog.Logger
}

// NewCheckCacheDatabaseJob creates a new CheckCacheDatabaseJob
func NewCheckCacheDatabaseJob(db *database.DB, log zerolog.Logger) *CheckCacheDatabaseJob {
	return &CheckCacheDatabaseJob{
		db:  db,
		log: log.With().Str("job", "check_cache_database").Logger(),
	}
}

// Name returns the job name
func (j *CheckCacheDatabaseJob) Name() string {
	return "check_cache_database"
}

// Run executes the integrity check followed by a passive WAL checkpoint
func (j *CheckCacheDatabaseJob) Run() error {
	if j.db == nil {
		j.log.Debug().Msg("Cache database not initialized, skipping")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := j.db.QuickCheck(ctx); err != nil {
		j.log.Error().Err(err).Str("database", j.db.Name()).Msg("Cache database integrity check failed")
		return err
	}

	// PRAGMA wal_checkpoint returns: busy, log, checkpointed
	var busy, walFrames, checkpointed int
	err := j.db.Conn().QueryRowContext(ctx, "PRAGMA wal_checkpoint(PASSIVE)").Scan(&busy, &walFrames, &checkpointed)
	if err != nil {
		return fmt.Errorf("failed to checkpoint %s: %w", j.db.Name(), err)
	}

	if walFrames > walWarnFrames {
		j.log.Warn().
			Str("database", j.db.Name()).
			Int("wal_frames", walFrames).
			Int("checkpointed", checkpointed).
			Msg("WAL file is large, checkpoint may be needed")
	} else {
		j.log.Debug().
			Str("database", j.db.Name()).
			Int("wal_frames", walFrames).
			Msg("Cache database OK")
	}

	return nil
}
