package overlap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aristath/etfoverlap/internal/domain"
	"github.com/aristath/etfoverlap/internal/modules/holdings"
	"github.com/aristath/etfoverlap/internal/utils"
	"github.com/rs/zerolog"
)

// Orchestrator fetches fund holdings concurrently and builds holding sets.
type Orchestrator struct {
	provider     domain.HoldingsProvider
	fetchTimeout time.Duration
	log          zerolog.Logger
}

// NewOrchestrator creates an orchestrator. A zero fetchTimeout means each
// fetch is bounded only by the caller's context.
func NewOrchestrator(provider domain.HoldingsProvider, fetchTimeout time.Duration, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		provider:     provider,
		fetchTimeout: fetchTimeout,
		log:          log.With().Str("component", "overlap_orchestrator").Logger(),
	}
}

// fetchResult is owned by exactly one fetch goroutine until the join.
type fetchResult struct {
	set *holdings.FundHoldingsSet
	err error
}

// FetchAndBuild fetches every unique ticker once, in parallel, and returns
// one holding set and one info record per requested ticker. A ticker whose
// fetch fails is degraded to empty holdings and default info; it never fails
// the batch.
func (o *Orchestrator) FetchAndBuild(ctx context.Context, tickers []string) (map[string]*holdings.FundHoldingsSet, map[string]domain.FundInfo) {
	sets, infos, _ := o.fetchAndBuild(ctx, tickers)
	return sets, infos
}

// fetchAndBuild also reports which tickers were degraded.
func (o *Orchestrator) fetchAndBuild(ctx context.Context, tickers []string) (map[string]*holdings.FundHoldingsSet, map[string]domain.FundInfo, []string) {
	unique := utils.UniqueOrdered(tickers)
	results := make([]fetchResult, len(unique))

	var wg sync.WaitGroup
	for i, ticker := range unique {
		wg.Add(1)
		go func(slot *fetchResult, ticker string) {
			defer wg.Done()
			slot.set, slot.err = o.fetchOne(ctx, ticker)
		}(&results[i], ticker)
	}
	wg.Wait()

	sets := make(map[string]*holdings.FundHoldingsSet, len(unique))
	infos := make(map[string]domain.FundInfo, len(unique))
	var degraded []string
	for i, ticker := range unique {
		res := results[i]
		if res.err != nil {
			o.log.Warn().Err(res.err).Str("ticker", ticker).Msg("Holdings fetch failed, using empty holdings")
			res.set = holdings.Degraded(ticker)
			degraded = append(degraded, ticker)
		}
		sets[ticker] = res.set
		infos[ticker] = res.set.Info
	}

	return sets, infos, degraded
}

// fetchOne never panics; provider or adaptation panics come back as errors.
func (o *Orchestrator) fetchOne(ctx context.Context, ticker string) (set *holdings.FundHoldingsSet, err error) {
	defer func() {
		if r := recover(); r != nil {
			set, err = nil, fmt.Errorf("panic fetching %s: %v", ticker, r)
		}
	}()

	if o.provider == nil {
		return nil, fmt.Errorf("no holdings provider configured")
	}

	if o.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.fetchTimeout)
		defer cancel()
	}

	profile, err := o.provider.GetHoldings(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to get holdings for %s: %w", ticker, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("no holdings profile returned for %s", ticker)
	}

	return holdings.BuildHoldingsSet(ticker, profile.Holdings).WithInfo(completeInfo(ticker, profile.Info)), nil
}

// completeInfo fills missing display names with the ticker.
func completeInfo(ticker string, info domain.FundInfo) domain.FundInfo {
	if info.ShortName == "" {
		info.ShortName = ticker
	}
	if info.LongName == "" {
		info.LongName = ticker
	}
	return info
}
