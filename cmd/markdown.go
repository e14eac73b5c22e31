package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders md for the terminal and writes it to w.
// The raw markdown is written if it cannot be rendered.
func printMarkdown(w io.Writer, md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		out = md
	}
	fmt.Fprint(w, out)
}
