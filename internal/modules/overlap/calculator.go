package overlap

import "github.com/aristath/etfoverlap/internal/modules/holdings"

// ComputeMatrix builds the N×N overlap matrix for tickers. Row and column
// order follow tickers exactly, duplicates included. A ticker without an
// entry in sets is treated as a fund with no holdings. Pure and deterministic.
func ComputeMatrix(tickers []string, sets map[string]*holdings.FundHoldingsSet) Matrix {
	matrix := make(Matrix, len(tickers))
	for i, a := range tickers {
		row := make([]Cell, len(tickers))
		for j, b := range tickers {
			if a == b {
				row[j] = identityCell(sets[a])
			} else {
				row[j] = pairCell(sets[a], sets[b])
			}
		}
		matrix[i] = row
	}
	return matrix
}

// identityCell is total overlap by convention, regardless of how much of the
// fund the disclosed holdings cover.
func identityCell(set *holdings.FundHoldingsSet) Cell {
	symbols := set.Symbols()
	cell := Cell{Weight: 1.0, Count: len(symbols), Common: make([]CommonHolding, 0, len(symbols))}
	for _, sym := range symbols {
		w, _ := set.Weight(sym)
		name := set.NameOf(sym)
		if name == "" {
			name = sym
		}
		cell.Common = append(cell.Common, CommonHolding{Symbol: sym, Name: name, WeightA: w, WeightB: w})
	}
	return cell
}

// pairCell intersects a with b in a's disclosure order. Names always come from a.
func pairCell(a, b *holdings.FundHoldingsSet) Cell {
	cell := Cell{Common: []CommonHolding{}}
	for _, sym := range a.Symbols() {
		wb, ok := b.Weight(sym)
		if !ok {
			continue
		}
		wa, _ := a.Weight(sym)
		cell.Weight += min(wa, wb)
		cell.Common = append(cell.Common, CommonHolding{
			Symbol:  sym,
			Name:    a.NameOf(sym),
			WeightA: wa,
			WeightB: wb,
		})
	}
	cell.Count = len(cell.Common)
	return cell
}
