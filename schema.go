package parqetimport

import (
	"fmt"
	"regexp"
)

var statusPattern = regexp.MustCompile(`Status`)

// Header holds the column names of an export, in order.
//
// Names are not guaranteed to be unique: Binance repeats "Trading total" and
// "Order Amount".
type Header []string

// NewHeader returns the header defined by the first record of an export.
func NewHeader(cells []string) Header { return Header(cells) }

// Name returns the name of column i, or "" if the header is shorter.
func (h Header) Name(i int) string {
	if i < 0 || i >= len(h) {
		return ""
	}
	return h[i]
}

// Find returns the index of the first column whose name matches pattern.
func (h Header) Find(pattern *regexp.Regexp) (int, bool) {
	for i, name := range h {
		if pattern.MatchString(name) {
			return i, true
		}
	}
	return -1, false
}

// StatusColumn returns the index of the order status column.
func (h Header) StatusColumn() (int, error) {
	i, ok := h.Find(statusPattern)
	if !ok {
		return -1, fmt.Errorf("%w in header %q", ErrSchema, []string(h))
	}
	return i, nil
}
