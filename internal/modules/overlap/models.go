// Package overlap computes pairwise holding overlap between funds.
package overlap

import "github.com/aristath/etfoverlap/internal/domain"

// CommonHolding is one symbol held by both funds of a cell.
// WeightA belongs to the row fund, WeightB to the column fund.
type CommonHolding struct {
	Symbol  string  `json:"symbol"`
	Name    string  `json:"name"`
	WeightA float64 `json:"weight_a"`
	WeightB float64 `json:"weight_b"`
}

// Cell is the comparison of the row fund against the column fund.
type Cell struct {
	Weight float64         `json:"weight"` // Sum of min(weight_a, weight_b); 1.0 on the diagonal
	Count  int             `json:"count"`
	Common []CommonHolding `json:"common"`
}

// Matrix is indexed like the ticker list it was computed from.
type Matrix [][]Cell

// Analysis is the full response of an overlap run.
type Analysis struct {
	Holdings      map[string][]domain.Holding `json:"holdings"`
	ETFInfo       map[string]domain.FundInfo  `json:"etf_info"`
	OverlapMatrix Matrix                      `json:"overlap_matrix"`
	Tickers       []string                    `json:"tickers"`

	// Run metadata, not part of the wire document
	ID       string `json:"-"`
	Degraded int    `json:"-"`
}

// Size returns the number of rows (and columns) of the matrix.
func (m Matrix) Size() int {
	return len(m)
}
