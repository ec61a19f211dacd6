// Package transfer moves the luggage list in and out as CSV.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/interchange"
)

// Stdio is the file name meaning stdin or stdout.
const Stdio = "-"

// Export writes the list to File, or stdout when File is "-".
type Export struct {
	File   string
	Stdout io.Writer

	Service *app.Service
}

func (e *Export) Do(ctx context.Context) error {
	if e.Service == nil {
		return errors.New("can not export, no service")
	}
	name := e.File
	if name == "" {
		name = interchange.FileName
	}
	if name == Stdio {
		w := e.Stdout
		if w == nil {
			w = os.Stdout
		}
		_, err := e.Service.Export(ctx, w)
		return err
	}

	return writeFile(name, func(w io.Writer) error {
		_, err := e.Service.Export(ctx, w)
		return err
	})
}

// named reports the destination name while the data goes to a temp file.
type named struct {
	io.Writer
	name string
}

func (n named) Name() string { return n.name }

// writeFile writes name through a temp file in the same directory, so an
// existing file is only replaced once write has succeeded.
func writeFile(name string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := write(named{Writer: tmp, name: name}); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// Import replaces the whole list with the contents of File, or stdin when
// File is "-".
type Import struct {
	File  string
	Stdin io.Reader

	Service *app.Service
}

func (i *Import) Do(ctx context.Context) error {
	if i.Service == nil {
		return errors.New("can not import, no service")
	}
	if i.File == Stdio {
		r := i.Stdin
		if r == nil {
			r = os.Stdin
		}
		return i.Service.Import(ctx, r)
	}

	f, err := os.Open(i.File)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	defer f.Close()
	return i.Service.Import(ctx, f)
}
