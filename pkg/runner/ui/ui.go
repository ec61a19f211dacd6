// Package ui launches the interactive terminal UI.
package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/luggage/pkg/app"
	teaui "tableflip.dev/luggage/pkg/tui/app"
)

// ErrNotTerminal is returned when stdout is not a terminal.
var ErrNotTerminal = errors.New("the luggage ui needs a terminal")

type UI struct {
	Service *app.Service
	// Force skips the terminal check.
	Force bool
}

func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not start the ui, no service")
	}
	if !d.Force && !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return ErrNotTerminal
	}
	return teaui.Run(d.Service)
}
