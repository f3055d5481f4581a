package overlap

import (
	"testing"

	"github.com/aristath/etfoverlap/internal/domain"
	testutil "github.com/aristath/etfoverlap/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	sets := buildSets(map[string][]domain.Holding{
		"A": testutil.FundAHoldings(),
		"B": testutil.FundBHoldings(),
		"X": testutil.DisjointHoldings(),
	})
	tickers := []string{"A", "B", "X"}
	a := Assemble(tickers, sets, nil, ComputeMatrix(tickers, sets))

	s := Summarize(a)

	require.Len(t, s.Pairs, 3)
	assert.InDelta(t, 0.04, s.MeanOverlap, 1e-12)
	require.NotNil(t, s.MostOverlap)
	assert.Equal(t, "A", s.MostOverlap.A)
	assert.Equal(t, "B", s.MostOverlap.B)
	assert.Equal(t, 2, s.MostOverlap.Count)

	require.Len(t, s.Coverage, 3)
	assert.Equal(t, "A", s.Coverage[0].Ticker)
	assert.Equal(t, 3, s.Coverage[0].Holdings)
	assert.InDelta(t, 0.21, s.Coverage[0].Weight, 1e-12)
}

func TestSummarize_SingleFund(t *testing.T) {
	sets := buildSets(map[string][]domain.Holding{"A": testutil.FundAHoldings()})
	a := Assemble([]string{"A"}, sets, nil, ComputeMatrix([]string{"A"}, sets))

	s := Summarize(a)

	assert.Empty(t, s.Pairs)
	assert.Nil(t, s.MostOverlap)
	assert.Equal(t, 0.0, s.MeanOverlap)
	assert.Len(t, s.Coverage, 1)
}

func TestSummarize_SkipsDuplicateTickers(t *testing.T) {
	sets := buildSets(map[string][]domain.Holding{
		"A": testutil.FundAHoldings(),
		"B": testutil.FundBHoldings(),
	})
	tickers := []string{"A", "A", "B"}
	a := Assemble(tickers, sets, nil, ComputeMatrix(tickers, sets))

	s := Summarize(a)

	assert.Len(t, s.Pairs, 2)
	assert.Len(t, s.Coverage, 2)
}

func TestSummarize_Nil(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
