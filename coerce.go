package parqetimport

import (
	"fmt"
	"regexp"
)

var (
	trailingLetters   = regexp.MustCompile(`[a-zA-Z]+$`)
	leadingNonLetters = regexp.MustCompile(`^[^a-zA-Z]+`)
)

// Coercion transforms a source cell into the value of a target cell.
type Coercion func(string) (string, error)

// CoerceSuffixedNumber reads a number followed by its unit, like "500.00EUR",
// and returns the number with 20 fraction digits.
func CoerceSuffixedNumber(v string) (string, error) {
	return CoerceNumber(trailingLetters.ReplaceAllString(v, ""))
}

// CoerceTicker returns the ticker that follows the number, "0.01BTC" gives
// "BTC".
//
// Pairs are not split: "0.01BTCUSDT" gives "BTCUSDT".
func CoerceTicker(v string) (string, error) {
	return leadingNonLetters.ReplaceAllString(v, ""), nil
}

// CoerceNumber returns the decimal number v with 20 fraction digits.
func CoerceNumber(v string) (string, error) {
	a, err := ParseAmount(v)
	if err != nil {
		return "", err
	}
	return a.Fixed(), nil
}

// CoerceSide maps Binance's order side to Parqet's transaction type.
func CoerceSide(v string) (string, error) {
	switch v {
	case "BUY":
		return "buy", nil
	case "SELL":
		return "sell", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTransactionType, v)
	}
}
