package parqetimport

import "fmt"

// SkipReason tells why a source row was left out of the conversion.
type SkipReason int

const (
	// NotFilled is an order whose status is not "FILLED".
	NotFilled SkipReason = iota
	// QuoteAsset is a trade whose asset is a stablecoin or fiat leg,
	// importing it would count the same money twice.
	QuoteAsset
	// ProblematicCurrency is a trade paid in a currency Parqet cannot
	// interpret.
	ProblematicCurrency
)

// SkipReasons lists every reason, in filter order.
var SkipReasons = []SkipReason{NotFilled, QuoteAsset, ProblematicCurrency}

func (r SkipReason) String() string {
	switch r {
	case NotFilled:
		return "not-filled"
	case QuoteAsset:
		return "quote-asset"
	case ProblematicCurrency:
		return "problematic-currency"
	default:
		return "unknown"
	}
}

// Skip records a source row left out of the conversion.
type Skip struct {
	Reason SkipReason
	Line   int    // position of the row in the export, the header being 1
	Detail string // the offending value
}

func (s Skip) String() string {
	return fmt.Sprintf("line %d: %s: %q", s.Line, s.Reason, s.Detail)
}
