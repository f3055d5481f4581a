// Package search provides ETF-only symbol search.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/aristath/etfoverlap/internal/domain"
	"github.com/rs/zerolog"
)

// ETFMatch is one search hit as returned to clients.
type ETFMatch struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	Exchange  string `json:"exchange"`
}

// Service filters provider search results down to exchange-traded funds.
type Service struct {
	searcher domain.SymbolSearcher
	log      zerolog.Logger
}

// NewService creates a new search service
func NewService(searcher domain.SymbolSearcher, log zerolog.Logger) *Service {
	return &Service{
		searcher: searcher,
		log:      log.With().Str("service", "search").Logger(),
	}
}

// SearchETFs returns ETF matches for query in provider order. An empty query
// returns an empty list without calling the provider.
func (s *Service) SearchETFs(ctx context.Context, query string) ([]ETFMatch, error) {
	matches := make([]ETFMatch, 0)

	query = strings.TrimSpace(query)
	if query == "" {
		return matches, nil
	}

	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search %q: %w", query, err)
	}

	for _, r := range results {
		if r.QuoteType != domain.QuoteTypeETF {
			continue
		}
		matches = append(matches, ETFMatch{
			Symbol:    r.Symbol,
			ShortName: r.ShortName,
			LongName:  r.LongName,
			Exchange:  r.Exchange,
		})
	}

	s.log.Debug().
		Str("query", query).
		Int("results", len(results)).
		Int("etfs", len(matches)).
		Msg("Search completed")

	return matches, nil
}
