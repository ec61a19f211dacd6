// Package complete provides the runners that pack and unpack items.
package complete

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/printers"
)

// Pack moves an item to the packed (or unpacked) state. Packing merges the
// item into an already packed item of the same name.
type Pack struct {
	Baggage string
	Item    string
	Packed  bool
	ShowID  bool
	Out     io.Writer

	Service *app.Service
}

// Do executes the pack operation for the configured item.
func (n *Pack) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not pack, no service")
	}
	b, err := n.Service.ResolveBaggage(n.Baggage)
	if err != nil {
		return err
	}
	// Prefer the item that is in the opposite state so "pack Socks" picks the
	// unpacked stack.
	it, err := app.ResolveItem(b, n.Item, !n.Packed)
	if err != nil {
		return err
	}
	if it.Packed != n.Packed {
		if b, err = n.Service.TogglePacked(ctx, b.ID, it.ID); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Baggage(b, false)
	return nil
}

// PackAll packs every item of a baggage, or unpacks them all when everything
// is already packed.
type PackAll struct {
	Baggage string
	ShowID  bool
	Out     io.Writer

	Service *app.Service
}

// Do executes the toggle.
func (n *PackAll) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not pack, no service")
	}
	b, err := n.Service.ResolveBaggage(n.Baggage)
	if err != nil {
		return err
	}
	if b, err = n.Service.TogglePackAll(ctx, b.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Baggage(b, false)
	return nil
}
