package collections

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/printers"
)

// Seed fills an empty list with sample luggage.
type Seed struct {
	Out io.Writer

	Service *app.Service
}

func (s *Seed) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not seed, no service")
	}
	c, err := s.Service.Seed(ctx)
	if errors.Is(err, app.ErrNotEmpty) {
		return fmt.Errorf("refusing to seed: %w, run `luggage clear` first", err)
	}
	if err != nil {
		return err
	}
	printers.Summary(out(s.Out), c)
	return nil
}
