// Package key provides the runner logic for the symbol legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Minhthien4/study-room/pkg/glyph"
)

// Key prints the legend for the weekly strip symbols.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Symbol"), bold.Sprint("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		if g.Symbol == " " {
			continue
		}
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, "")
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
	return nil
}
