package parqetimport

import (
	"fmt"

	"github.com/rs/zerolog"
)

const (
	filled        = "FILLED"
	assetClass    = "Cryptocurrency"
	noFee         = "-"
	maxFiatLength = 3
)

// quoteAssets are stablecoin and fiat legs, they would flaw the import.
var quoteAssets = map[string]bool{"USDT": true, "USDC": true, "EUR": true}

// usdStablecoins are read as USD when used to pay.
var usdStablecoins = map[string]bool{"USDT": true, "USDC": true}

// Conversion is the result of converting an export.
type Conversion struct {
	Rows    []Row  // accepted rows, in input order
	Skipped []Skip // skipped rows, in input order
}

// Converter converts Binance records into Parqet rows.
type Converter struct {
	Rules Rules
	Log   zerolog.Logger
}

// NewConverter returns a Converter with the Binance rules, logging
// diagnostics to log.
func NewConverter(log zerolog.Logger) *Converter {
	return &Converter{Rules: BinanceRules, Log: log}
}

// Convert converts records, the first one being the header.
//
// Rows are skipped for business reasons, each skip is logged and recorded in
// the Conversion. Any other problem aborts the conversion.
func (c *Converter) Convert(records [][]string) (*Conversion, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty export", ErrSchema)
	}
	header := NewHeader(records[0])
	status, err := header.StatusColumn()
	if err != nil {
		return nil, err
	}
	c.Log.Debug().Int("column", status).Str("name", header.Name(status)).Int("records", len(records)-1).Msg("status column resolved")

	conv := &Conversion{}
	for i, record := range records[1:] {
		line := i + 2
		row, skip, err := c.convertRow(header, status, line, record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if skip != nil {
			conv.Skipped = append(conv.Skipped, *skip)
			continue
		}
		conv.Rows = append(conv.Rows, row)
	}
	c.Log.Debug().Int("accepted", len(conv.Rows)).Int("skipped", len(conv.Skipped)).Msg("conversion done")
	return conv, nil
}

// convertRow returns either the accepted row or the reason to skip it.
func (c *Converter) convertRow(h Header, status, line int, record []string) (Row, *Skip, error) {
	if st := cell(record, status); st != filled {
		c.Log.Warn().Int("line", line).Str("status", st).Msg("Order not filled. Skipping")
		return Row{}, &Skip{Reason: NotFilled, Line: line, Detail: st}, nil
	}

	row, err := c.Rules.Apply(h, record)
	if err != nil {
		return Row{}, nil, err
	}

	if asset := row[ColAsset]; quoteAssets[asset] {
		c.Log.Info().Int("line", line).Str("asset", asset).Msg("Stablecoin or fiat trade. Skipping")
		return Row{}, &Skip{Reason: QuoteAsset, Line: line, Detail: asset}, nil
	}

	if fiat := row[ColFiat]; len(fiat) > maxFiatLength {
		if !usdStablecoins[fiat] {
			ref := cell(record, 1)
			c.Log.Warn().Int("line", line).Str("ref", ref).Str("currency", fiat).Msg("Skipping transaction; problematic currency")
			return Row{}, &Skip{Reason: ProblematicCurrency, Line: line, Detail: fiat}, nil
		}
		row[ColFiat] = "USD"
	}

	row[ColAssetClass] = assetClass
	row[ColFee] = noFee
	return row, nil, nil
}

// cell returns record[i], or "" if the record is too short.
func cell(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
