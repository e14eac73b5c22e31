package parqetimport

import "strings"

// Positions of a Row, in the order of Parqet's Bitpanda import.
const (
	ColTransactionID = iota
	ColTimestamp
	ColTransactionType
	ColInOut
	ColAmountFiat
	ColFiat
	ColAmountAsset
	ColAsset
	ColMarketPrice
	ColMarketPriceCurrency
	ColAssetClass
	ColProductID
	ColFee
	ColFeeAsset
	ColSpread
	ColSpreadCurrency

	rowWidth
)

// Row is one transaction in the target format. Unset cells are empty.
type Row [rowWidth]string

// String joins the cells with commas. Cells are not quoted.
func (r Row) String() string { return strings.Join(r[:], ",") }
