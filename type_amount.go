package parqetimport

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// fixedDigits is the number of fraction digits Parqet expects for amounts.
const fixedDigits = 20

// Amount is an exact decimal quantity, as read from the export.
type Amount struct {
	value decimal.Decimal
}

// ParseAmount parses a plain decimal string such as "0.01" or "-12.5".
func ParseAmount(s string) (Amount, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrCoercion, s)
	}
	return Amount{value: v}, nil
}

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) String() string      { return a.value.String() }

// Fixed renders the amount in fixed point with exactly 20 fraction digits.
func (a Amount) Fixed() string { return a.value.StringFixed(fixedDigits) }
