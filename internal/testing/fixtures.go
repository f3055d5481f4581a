package testing

import "github.com/aristath/etfoverlap/internal/domain"

// FundAHoldings and FundBHoldings share NVDA and MSFT.
// Their overlap weight is min(0.08,0.05)+min(0.07,0.10) = 0.12.
func FundAHoldings() []domain.Holding {
	return []domain.Holding{
		{Symbol: "NVDA", Name: "NVIDIA Corp", Percent: 0.08},
		{Symbol: "MSFT", Name: "Microsoft Corp", Percent: 0.07},
		{Symbol: "AAPL", Name: "Apple Inc", Percent: 0.06},
	}
}

// FundBHoldings see FundAHoldings
func FundBHoldings() []domain.Holding {
	return []domain.Holding{
		{Symbol: "NVDA", Name: "Nvidia Corporation", Percent: 0.05},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Percent: 0.10},
		{Symbol: "GOOG", Name: "Alphabet Inc Class C", Percent: 0.04},
	}
}

// DisjointHoldings shares no symbol with FundAHoldings or FundBHoldings.
func DisjointHoldings() []domain.Holding {
	return []domain.Holding{
		{Symbol: "XOM", Name: "Exxon Mobil Corp", Percent: 0.09},
		{Symbol: "CVX", Name: "Chevron Corp", Percent: 0.06},
	}
}

// NewSearchFixtures returns a mixed search result list with ETF and equity quotes.
func NewSearchFixtures() []domain.SearchResult {
	return []domain.SearchResult{
		{Symbol: "QQQ", ShortName: "Invesco QQQ Trust", LongName: "Invesco QQQ Trust, Series 1", Exchange: "NMS", QuoteType: domain.QuoteTypeETF},
		{Symbol: "QCOM", ShortName: "QUALCOMM Inc", LongName: "QUALCOMM Incorporated", Exchange: "NMS", QuoteType: "EQUITY"},
		{Symbol: "QQQM", ShortName: "Invesco NASDAQ 100 ETF", LongName: "Invesco NASDAQ 100 ETF", Exchange: "NMS", QuoteType: domain.QuoteTypeETF},
	}
}
