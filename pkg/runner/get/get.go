package get

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/commands/options"
	"tableflip.dev/luggage/pkg/printers"
)

type Get struct {
	ShowID  bool
	JSON    bool
	Summary bool
	// Baggage limits the output to one baggage, by id or nickname.
	Baggage string
	Out     io.Writer

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	w := n.Out
	if w == nil {
		w = color.Output
	}

	c := n.Service.Collection()
	collapsed := n.Service.Collapsed()
	if n.Baggage != "" {
		b, err := n.Service.ResolveBaggage(n.Baggage)
		if err != nil {
			return err
		}
		c = baggage.Collection{b}
		collapsed = baggage.CollapseMap{}
	}

	switch {
	case n.JSON:
		return options.PrintJSON(w, c)
	case n.Summary:
		printers.Summary(w, c)
	default:
		pp := printers.PrettyPrint{ShowID: n.ShowID, Out: w}
		pp.NewLine()
		pp.Collection(c, collapsed)
	}
	return nil
}
