package parqetimport

import (
	"fmt"
	"regexp"
)

// Rule maps a source column, selected by its name, onto a Row position.
type Rule struct {
	Pattern *regexp.Regexp // matched against the source column name
	Index   int            // target position in the Row
	Into    string         // target column name, for diagnostics
	Coerce  Coercion       // optional, the raw cell is copied when nil
}

// value returns the cell written into the Row for the raw source cell v.
func (r Rule) value(v string) (string, error) {
	if r.Coerce == nil {
		return v, nil
	}
	return r.Coerce(v)
}

// Rules is an ordered mapping table.
type Rules []Rule

// BinanceRules maps Binance's order history onto Parqet's Bitpanda format.
//
//	"Transaction ID",Timestamp,"Transaction Type",In/Out,"Amount Fiat",Fiat,"Amount Asset",Asset,"Asset market price","Asset market price currency","Asset class","Product ID",Fee,"Fee asset",Spread,"Spread Currency"
var BinanceRules = Rules{
	{Pattern: regexp.MustCompile(`Date.*UTC`), Index: ColTimestamp, Into: "Timestamp"},
	{Pattern: regexp.MustCompile(`Trading total`), Index: ColAmountFiat, Into: "Amount Fiat", Coerce: CoerceSuffixedNumber},
	{Pattern: regexp.MustCompile(`Trading total`), Index: ColFiat, Into: "Fiat", Coerce: CoerceTicker},
	{Pattern: regexp.MustCompile(`Order Amount`), Index: ColAmountAsset, Into: "Amount Asset", Coerce: CoerceSuffixedNumber},
	{Pattern: regexp.MustCompile(`Order Amount`), Index: ColAsset, Into: "Asset", Coerce: CoerceTicker},
	{Pattern: regexp.MustCompile(`Average Price`), Index: ColMarketPrice, Into: "Asset market price", Coerce: CoerceNumber},
	{Pattern: regexp.MustCompile(`Side`), Index: ColTransactionType, Into: "Transaction Type", Coerce: CoerceSide},
}

// Apply maps record onto a Row.
//
// Source columns are visited left to right, and every rule matching a column
// name writes its position. When several columns write the same position the
// last one wins.
func (rules Rules) Apply(h Header, record []string) (Row, error) {
	var row Row
	for i, cell := range record {
		name := h.Name(i)
		for _, rule := range rules {
			if !rule.Pattern.MatchString(name) {
				continue
			}
			v, err := rule.value(cell)
			if err != nil {
				return Row{}, &CellError{Column: name, Into: rule.Into, Err: err}
			}
			row[rule.Index] = v
		}
	}
	return row, nil
}

// CellError reports the cell a coercion failed on.
type CellError struct {
	Column string // source column name
	Into   string // target column name
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("column %q into %q: %v", e.Column, e.Into, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }
