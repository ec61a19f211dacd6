// Package add provides the runners that put baggage and items on the list.
package add

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/catalog"
	"tableflip.dev/luggage/pkg/printers"
	"tableflip.dev/luggage/pkg/reconcile"
)

// Baggage adds a new, empty baggage.
type Baggage struct {
	Type     baggage.Type
	Nickname string
	ShowID   bool
	Out      io.Writer

	Service *app.Service
}

func (n *Baggage) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	b, err := n.Service.AddBaggage(ctx, n.Type)
	if err != nil {
		return err
	}
	if n.Nickname != "" {
		if b, err = n.Service.SetNickname(ctx, b.ID, n.Nickname); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Baggage(b, false)
	return nil
}

// Item adds one unit of an item to a baggage.
type Item struct {
	Baggage string
	Name    string
	Icon    string
	ShowID  bool
	Out     io.Writer

	Service *app.Service
}

func (n *Item) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	b, err := n.Service.ResolveBaggage(n.Baggage)
	if err != nil {
		return err
	}
	icon := n.Icon
	if icon == "" {
		icon = catalog.IconFor(n.Name)
	}
	if b, err = n.Service.AddItem(ctx, b.ID, n.Name, icon); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Baggage(b, false)
	return nil
}

// Quantity sets the quantity of an item. Quantities below one offer to
// remove the item instead.
type Quantity struct {
	Baggage   string
	Item      string
	Quantity  int
	ShowID    bool
	Out       io.Writer
	Confirmer app.Confirmer

	Service *app.Service
}

func (n *Quantity) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set quantity, no service")
	}
	b, err := n.Service.ResolveBaggage(n.Baggage)
	if err != nil {
		return err
	}
	it, err := app.ResolveItem(b, n.Item, false)
	if err != nil {
		return err
	}

	b, err = n.Service.SetQuantity(ctx, b.ID, it.ID, n.Quantity)
	if errors.Is(err, reconcile.ErrInvalidQuantity) {
		confirm := n.Confirmer
		if confirm == nil {
			return err
		}
		yes, cerr := confirm.Confirm(ctx, fmt.Sprintf("Quantity must be at least 1. Remove '%s' instead?", it.Name))
		if cerr != nil {
			return cerr
		}
		if !yes {
			return err
		}
		b, err = n.Service.DeleteItem(ctx, b.ID, it.ID)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Baggage(b, false)
	return nil
}
