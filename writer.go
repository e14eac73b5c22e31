package parqetimport

import (
	"fmt"
	"io"
	"strings"
)

// Preamble is the account block Parqet expects before the header of a
// Bitpanda export. Its account details are placeholders.
const Preamble = `
"Disclaimer: All data is without guarantee, errors and changes are reserved."
"Robot, 2000-27-04"
robot@gmail.com
"Account opened at: 3/1/22, 4:46 PM"
"Venue: Bitpanda"
"Reported by Bitpanda GmbH"
`

// HeaderLine is the header of a Bitpanda export.
const HeaderLine = `"Transaction ID",Timestamp,"Transaction Type",In/Out,"Amount Fiat",Fiat,"Amount Asset",Asset,"Asset market price","Asset market price currency","Asset class","Product ID",Fee,"Fee asset",Spread,"Spread Currency"` + "\n"

// Encode writes rows to w in the Bitpanda export format.
//
// Cells are written as is: a cell containing a comma or a newline produces an
// invalid line.
func Encode(w io.Writer, rows []Row) error {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = row.String()
	}
	if _, err := io.WriteString(w, Preamble+HeaderLine+strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("cannot write Bitpanda format: %w", err)
	}
	return nil
}
