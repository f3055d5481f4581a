package clientdata

import "time"

// TTL constants for different data types.
// These are added to time.Now() when storing to calculate expires_at.
const (
	// Top holdings are re-disclosed monthly or quarterly; a day keeps names fresh.
	TTLYahooHoldings = 24 * time.Hour

	// Search results only help pick tickers.
	TTLYahooSearch = 6 * time.Hour
)
