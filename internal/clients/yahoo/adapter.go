package yahoo

import (
	"context"

	"github.com/aristath/etfoverlap/internal/domain"
)

// Adapter exposes Client through the provider-independent domain interfaces.
type Adapter struct {
	client *Client
}

// NewAdapter wraps client.
func NewAdapter(client *Client) *Adapter {
	return &Adapter{client: client}
}

// GetHoldings implements domain.HoldingsProvider
func (a *Adapter) GetHoldings(ctx context.Context, ticker string) (*domain.FundProfile, error) {
	summary, err := a.client.GetQuoteSummary(ctx, ticker)
	if err != nil {
		return nil, err
	}
	return transformQuoteSummaryToDomain(ticker, summary), nil
}

// Search implements domain.SymbolSearcher
func (a *Adapter) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	quotes, err := a.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return transformSearchQuotesToDomain(quotes), nil
}
