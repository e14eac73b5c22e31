package parqetimport

import "errors"

// Errors that abort a conversion. They are wrapped with context, use
// errors.Is to test for them.
var (
	// ErrFileAccess is returned when the input path cannot be read.
	ErrFileAccess = errors.New("cannot access input file")
	// ErrParse is returned for malformed CSV, typically broken quoting.
	ErrParse = errors.New("malformed csv")
	// ErrSchema is returned when the header lacks a required column.
	ErrSchema = errors.New("status column not found")
	// ErrCoercion is returned when a numeric cell does not parse.
	ErrCoercion = errors.New("invalid number")
	// ErrUnknownTransactionType is returned for a side other than BUY or SELL.
	ErrUnknownTransactionType = errors.New("unknown transaction type")
)
