// Package key provides CLI helpers to display the quick-add catalog and the
// icon keys it uses.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/luggage/pkg/catalog"
	"tableflip.dev/luggage/pkg/commands/options"
	"tableflip.dev/luggage/pkg/printers"
)

// Key prints the catalog of quick-add items.
type Key struct {
	JSON bool
	Out  io.Writer
}

// Do renders the catalog.
func (k *Key) Do(_ context.Context) error {
	w := k.Out
	if w == nil {
		w = color.Output
	}
	entries := catalog.DefaultItems()
	if k.JSON {
		return options.PrintJSON(w, entries)
	}

	_, _ = fmt.Fprintln(w, "")
	printers.Catalog(w, entries)
	return nil
}
