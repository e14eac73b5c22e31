// Package parqetimport converts a Binance trade history export into the CSV
// format Parqet accepts for its Bitpanda import.
//
// The conversion is a single linear transform:
//   - Reading: the export is loaded in memory, as CSV text or as an xlsx
//     workbook.
//   - Parsing: the text is split into records, the first one being the header.
//   - Mapping: a declarative table of [Rule] maps source columns, matched by
//     name, onto the 16 positions of a [Row].
//   - Filtering: unfilled orders, stablecoin or fiat legs, and rows paid in a
//     currency Parqet cannot interpret are skipped, see [Skip].
//   - Encoding: the accepted rows are written after a fixed preamble and
//     header, see [Encode].
//
// Structural problems (unreadable file, malformed CSV, missing status column,
// malformed cell) abort the conversion. Business exclusions are reported as
// [Skip] values and never fail it.
//
// This package is the foundation of the `binance2parqet` command-line tool.
package parqetimport
