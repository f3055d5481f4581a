// Package domain holds provider-independent fund types shared by the
// analysis modules and the data provider adapters.
package domain

// Holding is one disclosed position inside a fund.
// Percent is passed through in whatever unit the provider reports
// (a fraction in [0,1] for Yahoo); it is never rescaled.
type Holding struct {
	Symbol  string  `json:"symbol"` // Empty for non-equity positions; never matched across funds
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

// FundInfo is the display metadata of a fund.
type FundInfo struct {
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	Currency  string `json:"currency"`
}

// DefaultFundInfo is the info used when the provider has nothing for ticker.
func DefaultFundInfo(ticker string) FundInfo {
	return FundInfo{ShortName: ticker, LongName: ticker, Currency: ""}
}

// FundProfile is what a HoldingsProvider returns for one ticker:
// display info plus top holdings in disclosure order.
type FundProfile struct {
	Ticker   string
	Info     FundInfo
	Holdings []Holding
}

// SearchResult is one quote returned by a SymbolSearcher.
type SearchResult struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	Exchange  string `json:"exchange"`
	QuoteType string `json:"quoteType"`
}

// QuoteTypeETF is the quote type of exchange-traded funds.
const QuoteTypeETF = "ETF"
