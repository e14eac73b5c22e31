package parqetimport

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount of the currency paid for a trade, fiat or a crypto quote.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns the money made of amount a in currency cur.
func M(a Amount, cur string) Money { return Money{value: a.value, cur: cur} }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the money formatted the way its currency is usually written,
// rounded to the currency's minor unit.
//
// Currencies unknown to go-money, like BTC or BNB used as quote, are written
// exactly, followed by their code.
func (m Money) String() string {
	if money.GetCurrency(m.cur) == nil {
		return m.Amount().String() + " " + m.cur
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string   { return m.cur }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Amount() Amount     { return Amount{value: m.value} }
func (m Money) Add(a Amount) Money { return Money{value: m.value.Add(a.value), cur: m.cur} }
