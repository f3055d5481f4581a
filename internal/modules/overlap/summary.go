package overlap

import (
	"github.com/aristath/etfoverlap/internal/modules/holdings"
	"gonum.org/v1/gonum/stat"
)

// Pair is one off-diagonal comparison, reported once per unordered pair.
type Pair struct {
	A      string
	B      string
	Weight float64
	Count  int
}

// FundCoverage is the share of a fund described by its disclosed holdings.
type FundCoverage struct {
	Ticker   string
	Holdings int
	Weight   float64
}

// Summary holds statistics derived from an analysis for terminal output.
type Summary struct {
	Pairs       []Pair
	MeanOverlap float64
	MostOverlap *Pair // nil when there is no off-diagonal pair
	Coverage    []FundCoverage
}

// Summarize derives pair statistics from the upper triangle of the matrix.
// Cells comparing a ticker with itself are skipped.
func Summarize(a *Analysis) Summary {
	var summary Summary
	if a == nil {
		return summary
	}

	seen := make(map[string]bool, len(a.Tickers))
	for _, ticker := range a.Tickers {
		if seen[ticker] {
			continue
		}
		seen[ticker] = true
		set := holdings.BuildHoldingsSet(ticker, a.Holdings[ticker])
		summary.Coverage = append(summary.Coverage, FundCoverage{
			Ticker:   ticker,
			Holdings: set.Len(),
			Weight:   set.TotalWeight(),
		})
	}

	weights := make([]float64, 0)
	for i := 0; i < len(a.Tickers) && i < len(a.OverlapMatrix); i++ {
		for j := i + 1; j < len(a.Tickers) && j < len(a.OverlapMatrix[i]); j++ {
			if a.Tickers[i] == a.Tickers[j] {
				continue
			}
			cell := a.OverlapMatrix[i][j]
			summary.Pairs = append(summary.Pairs, Pair{
				A:      a.Tickers[i],
				B:      a.Tickers[j],
				Weight: cell.Weight,
				Count:  cell.Count,
			})
			weights = append(weights, cell.Weight)
		}
	}

	if len(weights) == 0 {
		return summary
	}

	summary.MeanOverlap = stat.Mean(weights, nil)
	for i := range summary.Pairs {
		if summary.MostOverlap == nil || summary.Pairs[i].Weight > summary.MostOverlap.Weight {
			summary.MostOverlap = &summary.Pairs[i]
		}
	}

	return summary
}
