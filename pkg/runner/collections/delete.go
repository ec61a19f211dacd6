package collections

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/luggage/pkg/app"
)

// Delete removes a baggage. Baggage holding items need confirmation.
type Delete struct {
	Baggage string
	Out     io.Writer

	Service *app.Service
}

func (d *Delete) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not delete, no service")
	}
	b, err := d.Service.ResolveBaggage(d.Baggage)
	if err != nil {
		return err
	}
	deleted, err := d.Service.DeleteBaggage(ctx, b.ID)
	if err != nil {
		return err
	}
	if !deleted {
		_, _ = fmt.Fprintln(out(d.Out), "Nothing deleted.")
	}
	return nil
}

// Clear removes every baggage after one confirmation.
type Clear struct {
	Out io.Writer

	Service *app.Service
}

func (c *Clear) Do(ctx context.Context) error {
	if c.Service == nil {
		return errors.New("can not clear, no service")
	}
	cleared, err := c.Service.ClearAll(ctx)
	if err != nil {
		return err
	}
	if !cleared {
		_, _ = fmt.Fprintln(out(c.Out), "Nothing cleared.")
	}
	return nil
}
