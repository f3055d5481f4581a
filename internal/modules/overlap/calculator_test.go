package overlap

import (
	"testing"

	"github.com/aristath/etfoverlap/internal/domain"
	"github.com/aristath/etfoverlap/internal/modules/holdings"
	testutil "github.com/aristath/etfoverlap/internal/testing"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSets(byTicker map[string][]domain.Holding) map[string]*holdings.FundHoldingsSet {
	sets := make(map[string]*holdings.FundHoldingsSet, len(byTicker))
	for ticker, h := range byTicker {
		sets[ticker] = holdings.BuildHoldingsSet(ticker, h)
	}
	return sets
}

func TestComputeMatrix_SharedHoldings(t *testing.T) {
	sets := buildSets(map[string][]domain.Holding{
		"A": testutil.FundAHoldings(),
		"B": testutil.FundBHoldings(),
	})

	m := ComputeMatrix([]string{"A", "B"}, sets)

	require.Equal(t, 2, m.Size())
	ab := m[0][1]
	assert.InDelta(t, 0.12, ab.Weight, 1e-12)
	assert.Equal(t, 2, ab.Count)
	assert.Equal(t, []CommonHolding{
		{Symbol: "NVDA", Name: "NVIDIA Corp", WeightA: 0.08, WeightB: 0.05},
		{Symbol: "MSFT", Name: "Microsoft Corp", WeightA: 0.07, WeightB: 0.10},
	}, ab.Common)

	ba := m[1][0]
	assert.InDelta(t, 0.12, ba.Weight, 1e-12)
	assert.Equal(t, 2, ba.Count)
	assert.Equal(t, []CommonHolding{
		{Symbol: "NVDA", Name: "Nvidia Corporation", WeightA: 0.05, WeightB: 0.08},
		{Symbol: "MSFT", Name: "Microsoft Corporation", WeightA: 0.10, WeightB: 0.07},
	}, ba.Common, "names come from the row fund")
}

func TestComputeMatrix_Disjoint(t *testing.T) {
	sets := buildSets(map[string][]domain.Holding{
		"A": testutil.FundAHoldings(),
		"X": testutil.DisjointHoldings(),
	})

	m := ComputeMatrix([]string{"A", "X"}, sets)

	assert.Equal(t, 0.0, m[0][1].Weight)
	assert.Equal(t, 0, m[0][1].Count)
	assert.NotNil(t, m[0][1].Common)
	assert.Empty(t, m[0][1].Common)
}

func TestComputeMatrix_SingleFund(t *testing.T) {
	sets := buildSets(map[string][]domain.Holding{"A": testutil.FundAHoldings()})

	m := ComputeMatrix([]string{"A"}, sets)

	require.Len(t, m, 1)
	require.Len(t, m[0], 1)
	cell := m[0][0]
	assert.Equal(t, 1.0, cell.Weight)
	assert.Equal(t, 3, cell.Count)
	require.Len(t, cell.Common, 3)
	for _, c := range cell.Common {
		assert.Equal(t, c.WeightA, c.WeightB)
	}
	assert.Equal(t, "NVDA", cell.Common[0].Symbol)
}

func TestComputeMatrix_NoTickers(t *testing.T) {
	m := ComputeMatrix(nil, nil)
	assert.NotNil(t, m)
	assert.Equal(t, 0, m.Size())
}

func TestComputeMatrix_DiagonalIsIdentity(t *testing.T) {
	// Top holdings never sum to 1; the diagonal is still total
	sets := buildSets(map[string][]domain.Holding{
		"A": testutil.FundAHoldings(),
		"B": testutil.FundBHoldings(),
		"E": nil,
	})
	tickers := []string{"A", "B", "E"}

	m := ComputeMatrix(tickers, sets)

	for i := range tickers {
		assert.Equal(t, 1.0, m[i][i].Weight, tickers[i])
	}
	assert.Equal(t, 0, m[2][2].Count)
	assert.Empty(t, m[2][2].Common)
}

func TestComputeMatrix_DiagonalNameFallsBackToSymbol(t *testing.T) {
	sets := buildSets(map[string][]domain.Holding{
		"A": {{Symbol: "NVDA", Name: "", Percent: 0.1}},
		"B": {{Symbol: "NVDA", Name: "NVIDIA", Percent: 0.2}},
	})

	m := ComputeMatrix([]string{"A", "B"}, sets)

	assert.Equal(t, "NVDA", m[0][0].Common[0].Name)
	assert.Equal(t, "", m[0][1].Common[0].Name, "off-diagonal keeps the empty row-fund name")
	assert.Equal(t, "NVIDIA", m[1][0].Common[0].Name)
}

func TestComputeMatrix_EmptyFund(t *testing.T) {
	sets := buildSets(map[string][]domain.Holding{
		"A": testutil.FundAHoldings(),
		"E": {},
	})
	tickers := []string{"A", "E"}

	m := ComputeMatrix(tickers, sets)

	assert.Equal(t, 0.0, m[0][1].Weight)
	assert.Equal(t, 0, m[0][1].Count)
	assert.Equal(t, 0.0, m[1][0].Weight)
	assert.Equal(t, 0, m[1][0].Count)
	assert.Equal(t, 1.0, m[1][1].Weight)
	assert.Equal(t, 0, m[1][1].Count)
}

func TestComputeMatrix_MissingSetIsEmpty(t *testing.T) {
	sets := buildSets(map[string][]domain.Holding{"A": testutil.FundAHoldings()})

	m := ComputeMatrix([]string{"A", "GONE"}, sets)

	assert.Equal(t, 0, m[0][1].Count)
	assert.Equal(t, 0, m[1][0].Count)
	assert.Equal(t, 1.0, m[1][1].Weight)
	assert.Equal(t, 0, m[1][1].Count)
}

func TestComputeMatrix_DuplicateTickers(t *testing.T) {
	sets := buildSets(map[string][]domain.Holding{
		"A": testutil.FundAHoldings(),
		"B": testutil.FundBHoldings(),
	})

	m := ComputeMatrix([]string{"A", "B", "A"}, sets)

	require.Equal(t, 3, m.Size())
	assert.Equal(t, 1.0, m[0][2].Weight, "same ticker compares as identity")
	assert.Equal(t, m[0], m[2])
}

func TestComputeMatrix_RepeatedSymbolInFund(t *testing.T) {
	sets := buildSets(map[string][]domain.Holding{
		"A": {
			{Symbol: "AAPL", Name: "Apple first", Percent: 0.09},
			{Symbol: "AAPL", Name: "Apple second", Percent: 0.03},
		},
		"B": {{Symbol: "AAPL", Name: "Apple", Percent: 0.05}},
	})

	m := ComputeMatrix([]string{"A", "B"}, sets)

	require.Len(t, m[0][1].Common, 1)
	assert.Equal(t, CommonHolding{Symbol: "AAPL", Name: "Apple first", WeightA: 0.03, WeightB: 0.05}, m[0][1].Common[0])
	assert.Equal(t, 0.03, m[0][1].Weight)
	assert.Equal(t, 1, m[0][0].Count)
}

func TestComputeMatrix_EmptySymbolsNeverMatch(t *testing.T) {
	sets := buildSets(map[string][]domain.Holding{
		"A": {{Symbol: "", Name: "Cash", Percent: 0.02}, {Symbol: "MSFT", Name: "Microsoft", Percent: 0.05}},
		"B": {{Symbol: "", Name: "Cash", Percent: 0.04}},
	})

	m := ComputeMatrix([]string{"A", "B"}, sets)

	assert.Equal(t, 0, m[0][1].Count)
	assert.Equal(t, 1, m[0][0].Count)
	assert.Equal(t, 0, m[1][1].Count)
}

func TestComputeMatrix_Deterministic(t *testing.T) {
	sets := buildSets(map[string][]domain.Holding{
		"A": testutil.FundAHoldings(),
		"B": testutil.FundBHoldings(),
		"X": testutil.DisjointHoldings(),
	})
	tickers := []string{"B", "X", "A"}

	first := ComputeMatrix(tickers, sets)
	second := ComputeMatrix(tickers, sets)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ComputeMatrix not deterministic (-first +second):\n%s", diff)
	}
}

func TestComputeMatrix_SymmetryAndBounds(t *testing.T) {
	sets := buildSets(map[string][]domain.Holding{
		"A": testutil.FundAHoldings(),
		"B": testutil.FundBHoldings(),
		"C": {
			{Symbol: "MSFT", Name: "Microsoft", Percent: 0.30},
			{Symbol: "GOOG", Name: "Alphabet", Percent: 0.25},
			{Symbol: "AAPL", Name: "Apple", Percent: 0.45},
		},
		"X": testutil.DisjointHoldings(),
	})
	tickers := []string{"A", "B", "C", "X"}

	m := ComputeMatrix(tickers, sets)

	for i := range tickers {
		for j := range tickers {
			if i == j {
				continue
			}
			assert.InDelta(t, m[i][j].Weight, m[j][i].Weight, 1e-12)
			assert.Equal(t, m[i][j].Count, m[j][i].Count)
			assert.GreaterOrEqual(t, m[i][j].Weight, 0.0)
			assert.LessOrEqual(t, m[i][j].Weight, 1.0)

			reverse := make(map[string]CommonHolding, len(m[j][i].Common))
			for _, c := range m[j][i].Common {
				reverse[c.Symbol] = c
			}
			for _, c := range m[i][j].Common {
				r, ok := reverse[c.Symbol]
				require.True(t, ok, c.Symbol)
				assert.Equal(t, c.WeightA, r.WeightB)
				assert.Equal(t, c.WeightB, r.WeightA)
			}
		}
	}
}

func TestComputeMatrix_NoClamping(t *testing.T) {
	// Percent units pass through untouched
	sets := buildSets(map[string][]domain.Holding{
		"A": {{Symbol: "NVDA", Percent: 80}, {Symbol: "MSFT", Percent: 70}},
		"B": {{Symbol: "NVDA", Percent: 90}, {Symbol: "MSFT", Percent: 60}},
	})

	m := ComputeMatrix([]string{"A", "B"}, sets)

	assert.Equal(t, 140.0, m[0][1].Weight)
	assert.Equal(t, 1.0, m[0][0].Weight)
}
