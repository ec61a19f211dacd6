// Package collections contains runners for baggage management commands.
package collections

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/baggage"
)

// Type configures the parameters for `luggage bag type`.
type Type struct {
	Baggage string
	Type    baggage.Type
	Out     io.Writer

	Service *app.Service
}

// Do executes the type assignment.
func (t *Type) Do(ctx context.Context) error {
	if t.Type == "" {
		return errors.New("baggage type is required")
	}
	if t.Service == nil {
		return errors.New("can not set type, no service")
	}
	b, err := t.Service.ResolveBaggage(t.Baggage)
	if err != nil {
		return err
	}
	if b, err = t.Service.SetType(ctx, b.ID, t.Type); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out(t.Out), "Baggage %q set to type %s\n", b.ID, b.Type.Label())
	return nil
}

// Rename sets the nickname of a baggage. An empty nickname clears it.
type Rename struct {
	Baggage  string
	Nickname string
	Out      io.Writer

	Service *app.Service
}

// Do executes the rename.
func (r *Rename) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not rename, no service")
	}
	b, err := r.Service.ResolveBaggage(r.Baggage)
	if err != nil {
		return err
	}
	if b, err = r.Service.SetNickname(ctx, b.ID, r.Nickname); err != nil {
		return err
	}

	if b.Nickname == "" {
		_, _ = fmt.Fprintf(out(r.Out), "Baggage %q nickname cleared\n", b.ID)
		return nil
	}
	_, _ = fmt.Fprintf(out(r.Out), "Baggage %q is now %q\n", b.ID, b.Nickname)
	return nil
}

func out(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
