package parqetimport

import (
	"maps"
	"slices"
)

// Summary aggregates a Conversion for review.
type Summary struct {
	Accepted int
	Buys     int
	Sells    int
	Skipped  map[SkipReason]int
	Fiat     map[string]Money  // net fiat spent per currency, sells count negative
	Assets   map[string]Amount // net quantity acquired per asset, sells count negative
}

// NewSummary returns the summary of conv.
//
// Amounts are read back from the converted rows, so they are always valid.
func NewSummary(conv *Conversion) *Summary {
	s := &Summary{
		Accepted: len(conv.Rows),
		Skipped:  make(map[SkipReason]int),
		Fiat:     make(map[string]Money),
		Assets:   make(map[string]Amount),
	}
	for _, skip := range conv.Skipped {
		s.Skipped[skip.Reason]++
	}
	for _, row := range conv.Rows {
		fiat, _ := ParseAmount(row[ColAmountFiat])
		qty, _ := ParseAmount(row[ColAmountAsset])
		if row[ColTransactionType] == "sell" {
			s.Sells++
			fiat, qty = fiat.Neg(), qty.Neg()
		} else {
			s.Buys++
		}
		cur := row[ColFiat]
		m, ok := s.Fiat[cur]
		if !ok {
			m = M(Amount{}, cur)
		}
		s.Fiat[cur] = m.Add(fiat)
		s.Assets[row[ColAsset]] = s.Assets[row[ColAsset]].Add(qty)
	}
	return s
}

// TotalSkipped returns the number of skipped rows.
func (s *Summary) TotalSkipped() int {
	n := 0
	for _, c := range s.Skipped {
		n += c
	}
	return n
}

// Currencies returns the fiat currencies, sorted.
func (s *Summary) Currencies() []string { return slices.Sorted(maps.Keys(s.Fiat)) }

// AssetNames returns the assets, sorted.
func (s *Summary) AssetNames() []string { return slices.Sorted(maps.Keys(s.Assets)) }
