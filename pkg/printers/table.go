package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/catalog"
)

// Catalog renders the quick-add items.
func Catalog(w io.Writer, entries []catalog.Entry) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Item"), bold.Sprint("Icon"))
	for _, e := range entries {
		tbl.AddRow(e.Emoji, e.Name, e.Icon)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

// Summary renders one row per baggage with its packed progress.
func Summary(w io.Writer, c baggage.Collection) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = NameWidth
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Type"), bold.Sprint("Nickname"), bold.Sprint("Packed"))
	for _, b := range c {
		packed, total := b.Counts()
		tbl.AddRow(b.ID, b.Type.Label(), b.Nickname, fmt.Sprintf("%d/%d", packed, total))
	}
	tbl.RightAlign(3)
	_, _ = fmt.Fprintln(w, tbl)
}
