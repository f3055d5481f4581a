package overlap

import (
	"context"

	"github.com/aristath/etfoverlap/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service runs a complete overlap analysis for a ticker list.
type Service struct {
	orchestrator *Orchestrator
	log          zerolog.Logger
}

// NewService creates a new overlap service
func NewService(orchestrator *Orchestrator, log zerolog.Logger) *Service {
	return &Service{
		orchestrator: orchestrator,
		log:          log.With().Str("service", "overlap").Logger(),
	}
}

// Analyze fetches holdings for tickers, computes the matrix and assembles the
// response. It always returns a well-formed analysis; per-fund failures only
// show up as degraded entries. Callers validate the ticker list beforehand.
func (s *Service) Analyze(ctx context.Context, tickers []string) *Analysis {
	id := uuid.New().String()
	log := s.log.With().Str("analysis_id", id).Logger()
	timer := utils.NewTimer("overlap_analysis", log)

	log.Debug().Strs("tickers", tickers).Msg("Starting overlap analysis")

	sets, infos, degraded := s.orchestrator.fetchAndBuild(ctx, tickers)
	matrix := ComputeMatrix(tickers, sets)
	analysis := Assemble(tickers, sets, infos, matrix)
	analysis.ID = id
	analysis.Degraded = len(degraded)

	duration := timer.Stop()

	event := log.Info()
	if len(degraded) > 0 {
		event = log.Warn().Strs("degraded_tickers", degraded)
	}
	event.
		Int("funds", len(tickers)).
		Int("degraded", len(degraded)).
		Dur("duration", duration).
		Msg("Overlap analysis completed")

	return analysis
}
