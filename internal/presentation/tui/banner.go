package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the watch-mode header.
func PrintBanner(w io.Writer, p termenv.Profile, version, schemaPath, pattern string) {
	title := p.String("edmcheck " + version).Foreground(p.Color("#818cf8")).Bold()
	dim := func(s string) termenv.Style { return p.String(s).Foreground(p.Color("#a1a1aa")) }

	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, dim("  schema:  "+schemaPath))
	fmt.Fprintln(w, dim("  pattern: "+pattern))
	fmt.Fprintln(w)
}
