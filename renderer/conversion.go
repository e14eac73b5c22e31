package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/parqetimport"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the summary of a conversion of the export named
// source.
func SummaryMarkdown(source string, s *parqetimport.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Conversion of %s", source))
	doc.PlainText(fmt.Sprintf("%d transactions converted (%d buys, %d sells), %d rows skipped.",
		s.Accepted, s.Buys, s.Sells, s.TotalSkipped()))

	doc.H2("Skipped")
	skipped := md.TableSet{Header: []string{"Reason", "Rows"}}
	for _, r := range parqetimport.SkipReasons {
		skipped.Rows = append(skipped.Rows, []string{r.String(), strconv.Itoa(s.Skipped[r])})
	}
	doc.Table(skipped)

	if len(s.Fiat) > 0 {
		doc.H2("Cash")
		cash := md.TableSet{Header: []string{"Currency", "Net Spent"}}
		for _, cur := range s.Currencies() {
			cash.Rows = append(cash.Rows, []string{cur, s.Fiat[cur].String()})
		}
		doc.Table(cash)
	}

	if len(s.Assets) > 0 {
		doc.H2("Assets")
		assets := md.TableSet{Header: []string{"Asset", "Net Quantity"}}
		for _, a := range s.AssetNames() {
			assets.Rows = append(assets.Rows, []string{a, s.Assets[a].String()})
		}
		doc.Table(assets)
	}

	return doc.String()
}
