package overlap

import (
	"github.com/aristath/etfoverlap/internal/domain"
	"github.com/aristath/etfoverlap/internal/modules/holdings"
)

// Assemble packages the run into the response document. Tickers keep the
// caller's order; every ticker gets a holdings list and an info record even
// if the inputs lack one.
func Assemble(
	tickers []string,
	sets map[string]*holdings.FundHoldingsSet,
	infos map[string]domain.FundInfo,
	matrix Matrix,
) *Analysis {
	a := &Analysis{
		Holdings:      make(map[string][]domain.Holding, len(tickers)),
		ETFInfo:       make(map[string]domain.FundInfo, len(tickers)),
		OverlapMatrix: matrix,
		Tickers:       make([]string, len(tickers)),
	}
	copy(a.Tickers, tickers)

	if a.OverlapMatrix == nil {
		a.OverlapMatrix = Matrix{}
	}

	for _, ticker := range tickers {
		a.Holdings[ticker] = sets[ticker].HoldingsOrEmpty()

		info, ok := infos[ticker]
		if !ok {
			info = holdings.DefaultInfo(ticker)
		}
		a.ETFInfo[ticker] = info
	}

	return a
}
