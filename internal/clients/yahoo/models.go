package yahoo

// RawValue is Yahoo's numeric envelope, e.g. {"raw":0.0712,"fmt":"7.12%"}.
// Missing or empty envelopes decode to Raw == 0.
type RawValue struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt,omitempty"`
}

// quoteSummaryResponse is the envelope of /v10/finance/quoteSummary
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []QuoteSummaryResult `json:"result"`
		Error  *apiError            `json:"error"`
	} `json:"quoteSummary"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// QuoteSummaryResult holds the modules requested from quoteSummary.
// Any module may be absent.
type QuoteSummaryResult struct {
	Price         *PriceModule         `json:"price,omitempty"`
	TopHoldings   *TopHoldingsModule   `json:"topHoldings,omitempty"`
	SummaryDetail *SummaryDetailModule `json:"summaryDetail,omitempty"`
}

// PriceModule carries the display names and trading currency.
type PriceModule struct {
	Symbol    string `json:"symbol,omitempty"`
	ShortName string `json:"shortName,omitempty"`
	LongName  string `json:"longName,omitempty"`
	Currency  string `json:"currency,omitempty"`
	QuoteType string `json:"quoteType,omitempty"`
}

// TopHoldingsModule lists the disclosed top holdings (usually ten).
type TopHoldingsModule struct {
	Holdings []TopHolding `json:"holdings"`
}

// TopHolding is one disclosed position. Symbol is empty for bonds, cash
// and other positions without a listed ticker.
type TopHolding struct {
	Symbol         string    `json:"symbol"`
	HoldingName    string    `json:"holdingName"`
	HoldingPercent *RawValue `json:"holdingPercent,omitempty"`
}

// SummaryDetailModule is only consulted for the currency.
type SummaryDetailModule struct {
	Currency    string    `json:"currency,omitempty"`
	TotalAssets *RawValue `json:"totalAssets,omitempty"`
}

// searchResponse is the envelope of /v1/finance/search
type searchResponse struct {
	Quotes []SearchQuote `json:"quotes"`
}

// SearchQuote is one quote match from the search endpoint.
type SearchQuote struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	Exchange  string `json:"exchange"`
	QuoteType string `json:"quoteType"`
}
