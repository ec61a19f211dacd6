package options

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/snake"
)

// ConfirmOptions
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
}

// Confirmer picks how destructive actions are approved: --yes approves,
// a terminal gets an interactive prompt, anything else declines.
func (o *ConfirmOptions) Confirmer(cmd *cobra.Command) app.Confirmer {
	if o.Yes {
		return app.AlwaysConfirm
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok && isTerminal(f) {
		return &snake.Confirm{In: f, Out: cmd.OutOrStdout()}
	}
	return app.ConfirmFunc(func(_ context.Context, prompt string) (bool, error) {
		_, _ = fmt.Fprintln(color.Error, prompt)
		_, _ = color.New(color.Faint).Fprintln(color.Error, "stdin is not a terminal, re-run with --yes to confirm.")
		return false, nil
	})
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
