// Package renderer builds the markdown documents printed by the fbarcalc
// command-line tool.
package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/mfinelli/fbarcalc"
)

// ReportMarkdown renders the dual-currency maximum-value report.
func ReportMarkdown(r *fbarcalc.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Maximum Account Value")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Currency"),
			md.Bold("Maximum"),
		},
		Rows: [][]string{
			{r.Native.Currency(), r.Native.String()},
			{"USD", r.USD().String()},
		},
	})

	return doc.String()
}
