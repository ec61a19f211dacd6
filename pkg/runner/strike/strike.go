// Package strike removes items from a baggage.
package strike

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/printers"
)

// Strike deletes one item.
type Strike struct {
	Baggage string
	Item    string
	ShowID  bool
	Out     io.Writer

	Service *app.Service
}

func (n *Strike) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	b, err := n.Service.ResolveBaggage(n.Baggage)
	if err != nil {
		return err
	}
	it, err := app.ResolveItem(b, n.Item, false)
	if err != nil {
		return err
	}
	if b, err = n.Service.DeleteItem(ctx, b.ID, it.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Baggage(b, false)
	return nil
}
