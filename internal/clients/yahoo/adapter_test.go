package yahoo

import (
	"context"
	"testing"

	"github.com/aristath/etfoverlap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_GetHoldings(t *testing.T) {
	f := newFakeYahoo(t)
	var provider domain.HoldingsProvider = NewAdapter(f.client(nil))

	profile, err := provider.GetHoldings(context.Background(), "QQQ")
	require.NoError(t, err)

	assert.Equal(t, "QQQ", profile.Ticker)
	assert.Equal(t, domain.FundInfo{ShortName: "Invesco QQQ Trust", LongName: "Invesco QQQ Trust, Series 1", Currency: "USD"}, profile.Info)
	assert.Equal(t, []domain.Holding{
		{Symbol: "NVDA", Name: "NVIDIA Corp", Percent: 0.0912},
		{Symbol: "MSFT", Name: "Microsoft Corp", Percent: 0.0801},
		{Symbol: "", Name: "Cash", Percent: 0},
	}, profile.Holdings)
}

func TestAdapter_GetHoldingsError(t *testing.T) {
	f := newFakeYahoo(t)

	profile, err := NewAdapter(f.client(nil)).GetHoldings(context.Background(), "NOPE")

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdapter_Search(t *testing.T) {
	f := newFakeYahoo(t)
	var searcher domain.SymbolSearcher = NewAdapter(f.client(nil))

	results, err := searcher.Search(context.Background(), "qqq")
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, domain.SearchResult{
		Symbol: "QQQ", ShortName: "Invesco QQQ Trust", LongName: "Invesco QQQ Trust, Series 1", Exchange: "NMS", QuoteType: "ETF",
	}, results[0])
}
