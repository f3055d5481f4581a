// Package holdings builds per-fund holding collections used by the overlap engine.
package holdings

import (
	"github.com/aristath/etfoverlap/internal/domain"
	"gonum.org/v1/gonum/floats"
)

// FundHoldingsSet is the normalized view of one fund's disclosed holdings.
// It is built once per request and never mutated afterwards.
type FundHoldingsSet struct {
	Ticker   string
	Holdings []domain.Holding // Disclosure order, including positions without a symbol
	Info     domain.FundInfo

	weightBySymbol map[string]float64
	nameBySymbol   map[string]string
	symbols        []string // Unique matchable symbols, first-occurrence order
}

// BuildHoldingsSet copies the provider holdings and derives the symbol lookups.
// A repeated symbol keeps its first name and its last weight. Holdings without
// a symbol stay in Holdings but are never matched. Never fails.
func BuildHoldingsSet(ticker string, providerHoldings []domain.Holding) *FundHoldingsSet {
	set := &FundHoldingsSet{
		Ticker:         ticker,
		Holdings:       make([]domain.Holding, len(providerHoldings)),
		Info:           DefaultInfo(ticker),
		weightBySymbol: make(map[string]float64, len(providerHoldings)),
		nameBySymbol:   make(map[string]string, len(providerHoldings)),
	}
	copy(set.Holdings, providerHoldings)

	for _, h := range set.Holdings {
		if h.Symbol == "" {
			continue
		}
		if _, seen := set.weightBySymbol[h.Symbol]; !seen {
			set.symbols = append(set.symbols, h.Symbol)
			set.nameBySymbol[h.Symbol] = h.Name
		}
		set.weightBySymbol[h.Symbol] = h.Percent
	}

	return set
}

// WithInfo returns the set with its display info replaced.
func (s *FundHoldingsSet) WithInfo(info domain.FundInfo) *FundHoldingsSet {
	s.Info = info
	return s
}

// Degraded is the empty set substituted for a ticker whose fetch failed.
func Degraded(ticker string) *FundHoldingsSet {
	return BuildHoldingsSet(ticker, nil)
}

// DefaultInfo is the fallback display info for ticker.
func DefaultInfo(ticker string) domain.FundInfo {
	return domain.DefaultFundInfo(ticker)
}

// Weight returns the weight recorded for symbol and whether the fund holds it.
func (s *FundHoldingsSet) Weight(symbol string) (float64, bool) {
	if s == nil || symbol == "" {
		return 0, false
	}
	w, ok := s.weightBySymbol[symbol]
	return w, ok
}

// Symbols returns the matchable symbols in first-occurrence order.
func (s *FundHoldingsSet) Symbols() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// Len is the number of unique matchable symbols.
func (s *FundHoldingsSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.symbols)
}

// NameOf returns the name recorded at the first occurrence of symbol.
func (s *FundHoldingsSet) NameOf(symbol string) string {
	if s == nil {
		return ""
	}
	return s.nameBySymbol[symbol]
}

// TotalWeight is the disclosed coverage of the fund: the sum of the weights of
// its unique symbols, in the provider's unit.
func (s *FundHoldingsSet) TotalWeight() float64 {
	if s.Len() == 0 {
		return 0
	}
	weights := make([]float64, 0, len(s.symbols))
	for _, sym := range s.symbols {
		weights = append(weights, s.weightBySymbol[sym])
	}
	return floats.Sum(weights)
}

// HoldingsOrEmpty returns the holdings list, never nil.
func (s *FundHoldingsSet) HoldingsOrEmpty() []domain.Holding {
	if s == nil || s.Holdings == nil {
		return []domain.Holding{}
	}
	return s.Holdings
}
