package domain

import "context"

// HoldingsProvider returns the disclosed top holdings of a fund.
// Implementations return an error when nothing usable could be fetched;
// callers degrade that ticker rather than failing a whole batch.
type HoldingsProvider interface {
	GetHoldings(ctx context.Context, ticker string) (*FundProfile, error)
}

// SymbolSearcher performs free-text ticker/name search.
type SymbolSearcher interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
