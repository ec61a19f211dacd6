package collections

import (
	"context"
	"errors"

	"tableflip.dev/luggage/pkg/app"
)

// Collapse folds (or unfolds) one baggage or all of them. The state lives
// in the session store and is shared with the terminal UI.
type Collapse struct {
	Baggage   string
	All       bool
	Collapsed bool

	Service *app.Service
}

func (c *Collapse) Do(ctx context.Context) error {
	if c.Service == nil {
		return errors.New("can not collapse, no service")
	}
	if c.All {
		return c.Service.SetAllCollapsed(ctx, c.Collapsed)
	}
	if c.Baggage == "" {
		return errors.New("requires a baggage or --all")
	}
	b, err := c.Service.ResolveBaggage(c.Baggage)
	if err != nil {
		return err
	}
	return c.Service.SetCollapsed(ctx, b.ID, c.Collapsed)
}
