package testing

import (
	"context"
	"fmt"
	"sync"

	"github.com/aristath/etfoverlap/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockHoldingsProvider is an in-memory HoldingsProvider with per-ticker
// profiles, errors and panics. Safe for concurrent use.
type MockHoldingsProvider struct {
	mu       sync.Mutex
	profiles map[string]*domain.FundProfile
	errs     map[string]error
	panics   map[string]bool
	calls    map[string]int
}

// NewMockHoldingsProvider creates an empty provider; unknown tickers fail.
func NewMockHoldingsProvider() *MockHoldingsProvider {
	return &MockHoldingsProvider{
		profiles: make(map[string]*domain.FundProfile),
		errs:     make(map[string]error),
		panics:   make(map[string]bool),
		calls:    make(map[string]int),
	}
}

// SetProfile sets the profile returned for ticker. A nil profile is returned as-is.
func (m *MockHoldingsProvider) SetProfile(ticker string, profile *domain.FundProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[ticker] = profile
}

// SetHoldings is a shorthand for SetProfile with default info.
func (m *MockHoldingsProvider) SetHoldings(ticker string, holdings []domain.Holding) {
	m.SetProfile(ticker, &domain.FundProfile{
		Ticker:   ticker,
		Info:     domain.FundInfo{ShortName: ticker + " ETF", LongName: ticker + " Exchange Traded Fund", Currency: "USD"},
		Holdings: holdings,
	})
}

// SetError makes every fetch of ticker fail with err.
func (m *MockHoldingsProvider) SetError(ticker string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[ticker] = err
}

// SetPanic makes every fetch of ticker panic.
func (m *MockHoldingsProvider) SetPanic(ticker string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panics[ticker] = true
}

// Calls returns how many times ticker was fetched.
func (m *MockHoldingsProvider) Calls(ticker string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[ticker]
}

// GetHoldings implements domain.HoldingsProvider
func (m *MockHoldingsProvider) GetHoldings(ctx context.Context, ticker string) (*domain.FundProfile, error) {
	m.mu.Lock()
	m.calls[ticker]++
	profile, hasProfile := m.profiles[ticker]
	err := m.errs[ticker]
	shouldPanic := m.panics[ticker]
	m.mu.Unlock()

	if shouldPanic {
		panic(fmt.Sprintf("malformed payload for %s", ticker))
	}
	if err != nil {
		return nil, err
	}
	if !hasProfile {
		return nil, fmt.Errorf("unknown ticker %s", ticker)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return profile, nil
}

// MockSymbolSearcher is a testify mock of domain.SymbolSearcher.
type MockSymbolSearcher struct {
	mock.Mock
}

// Search implements domain.SymbolSearcher
func (m *MockSymbolSearcher) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	args := m.Called(ctx, query)
	results, _ := args.Get(0).([]domain.SearchResult)
	return results, args.Error(1)
}
