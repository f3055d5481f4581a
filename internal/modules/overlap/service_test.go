package overlap

import (
	"context"
	"errors"
	"testing"

	testutil "github.com/aristath/etfoverlap/internal/testing"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(provider *testutil.MockHoldingsProvider) *Service {
	return NewService(NewOrchestrator(provider, 0, zerolog.Nop()), zerolog.Nop())
}

func TestAnalyze_Scenario(t *testing.T) {
	provider := testutil.NewMockHoldingsProvider()
	provider.SetHoldings("A", testutil.FundAHoldings())
	provider.SetHoldings("B", testutil.FundBHoldings())

	a := newTestService(provider).Analyze(context.Background(), []string{"A", "B"})

	require.NotNil(t, a)
	assert.Equal(t, []string{"A", "B"}, a.Tickers)
	require.Len(t, a.OverlapMatrix, 2)
	assert.InDelta(t, 0.12, a.OverlapMatrix[0][1].Weight, 1e-12)
	assert.Equal(t, 2, a.OverlapMatrix[1][0].Count)
	assert.Equal(t, 1.0, a.OverlapMatrix[1][1].Weight)
	assert.Equal(t, "A ETF", a.ETFInfo["A"].ShortName)
	assert.Equal(t, 0, a.Degraded)

	_, err := uuid.Parse(a.ID)
	assert.NoError(t, err)
}

func TestAnalyze_ProviderOutage(t *testing.T) {
	provider := testutil.NewMockHoldingsProvider()
	provider.SetError("A", errors.New("down"))
	provider.SetError("B", errors.New("down"))

	a := newTestService(provider).Analyze(context.Background(), []string{"A", "B"})

	assert.Equal(t, 2, a.Degraded)
	assert.Equal(t, 0, a.OverlapMatrix[0][1].Count)
	assert.Equal(t, 0.0, a.OverlapMatrix[0][1].Weight)
	assert.Equal(t, 1.0, a.OverlapMatrix[0][0].Weight)
	assert.Empty(t, a.Holdings["A"])
	assert.Equal(t, "B", a.ETFInfo["B"].LongName)
}

func TestAnalyze_UniqueRunIDs(t *testing.T) {
	svc := newTestService(testutil.NewMockHoldingsProvider())

	first := svc.Analyze(context.Background(), []string{"A"})
	second := svc.Analyze(context.Background(), []string{"A"})

	assert.NotEqual(t, first.ID, second.ID)
}
