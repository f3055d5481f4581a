package yahoo

import (
	"strings"

	"github.com/aristath/etfoverlap/internal/domain"
)

// Yahoo quoteSummary field mapping:
//
//   price.shortName                      → FundInfo.ShortName
//   price.longName                       → FundInfo.LongName
//   price.currency / summaryDetail.currency → FundInfo.Currency
//   topHoldings.holdings[].symbol        → Holding.Symbol
//   topHoldings.holdings[].holdingName   → Holding.Name
//   topHoldings.holdings[].holdingPercent.raw → Holding.Percent (fraction, passed through)
//
// Missing names stay empty here; callers decide the fallback.

// transformQuoteSummaryToDomain converts a quoteSummary result into a fund profile
func transformQuoteSummaryToDomain(ticker string, r *QuoteSummaryResult) *domain.FundProfile {
	profile := &domain.FundProfile{
		Ticker:   ticker,
		Holdings: []domain.Holding{},
	}
	if r == nil {
		return profile
	}

	if r.Price != nil {
		profile.Info = domain.FundInfo{
			ShortName: strings.TrimSpace(r.Price.ShortName),
			LongName:  strings.TrimSpace(r.Price.LongName),
			Currency:  r.Price.Currency,
		}
	}
	if profile.Info.Currency == "" && r.SummaryDetail != nil {
		profile.Info.Currency = r.SummaryDetail.Currency
	}

	if r.TopHoldings != nil {
		profile.Holdings = transformTopHoldingsToDomain(r.TopHoldings.Holdings)
	}

	return profile
}

// transformTopHoldingsToDomain keeps disclosure order; a missing percent is 0
func transformTopHoldingsToDomain(holdings []TopHolding) []domain.Holding {
	result := make([]domain.Holding, len(holdings))
	for i, h := range holdings {
		result[i] = domain.Holding{
			Symbol: strings.TrimSpace(h.Symbol),
			Name:   strings.TrimSpace(h.HoldingName),
		}
		if h.HoldingPercent != nil {
			result[i].Percent = h.HoldingPercent.Raw
		}
	}
	return result
}

// transformSearchQuotesToDomain converts search quotes to domain search results
func transformSearchQuotesToDomain(quotes []SearchQuote) []domain.SearchResult {
	result := make([]domain.SearchResult, len(quotes))
	for i, q := range quotes {
		result[i] = domain.SearchResult{
			Symbol:    q.Symbol,
			ShortName: q.ShortName,
			LongName:  q.LongName,
			Exchange:  q.Exchange,
			QuoteType: q.QuoteType,
		}
	}
	return result
}
