// Package snake holds the interactive terminal prompts used by the CLI.
package snake

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/manifoldco/promptui"
)

// Confirm asks a yes/no question on a terminal. It implements app.Confirmer.
type Confirm struct {
	In  io.Reader
	Out io.Writer
}

// Confirm shows prompt and reports whether the user answered yes. Anything
// but an explicit yes declines.
func (c *Confirm) Confirm(_ context.Context, prompt string) (bool, error) {
	validate := func(input string) error {
		if input == "" {
			return nil
		}
		_, err := ParseBool(input)
		return err
	}

	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
		Validate:  validate,
		Stdin:     readCloser(c.In),
		Stdout:    writeCloser(c.Out),
	}

	result, err := p.Run()
	switch {
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	case err != nil:
		return false, err
	}
	yes, _ := ParseBool(result)
	return yes, nil
}

func readCloser(r io.Reader) io.ReadCloser {
	if r == nil {
		r = os.Stdin
	}
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(r)
}

func writeCloser(w io.Writer) io.WriteCloser {
	if w == nil {
		w = os.Stdout
	}
	if wc, ok := w.(io.WriteCloser); ok {
		return wc
	}
	return nopWriteCloser{w}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
