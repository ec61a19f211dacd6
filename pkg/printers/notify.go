package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/luggage/pkg/effect"
)

// Notifier prints effects as one colored line each.
type Notifier struct {
	Out   io.Writer
	Quiet bool
}

// Notify implements effect.Sink.
func (n *Notifier) Notify(e effect.Effect) {
	if e.Kind == effect.None || (n.Quiet && !e.IsError()) {
		return
	}
	w := n.Out
	if w == nil {
		w = color.Error
	}
	_, _ = styleFor(e.Kind).Fprintln(w, e.Message())
}

func styleFor(k effect.Kind) *color.Color {
	switch k {
	case effect.Error:
		return color.New(color.FgRed, color.Bold)
	case effect.RemovedItem, effect.DeletedBaggage, effect.ClearedAll:
		return color.New(color.FgYellow)
	case effect.Merged, effect.IncreasedQuantity:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgGreen)
	}
}
