package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"tableflip.dev/luggage/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	var force bool

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the text-based user interface.",
		Example: `
luggage ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := globals.Config()
			if err != nil {
				return output.HandleError(err)
			}
			// Logs would draw over the alt screen.
			if cfg.Log.File == "" {
				cfg.Log.File = filepath.Join(cfg.Path, "luggage-ui.log")
			}
			env, err := openEnvWith(cmd, cfg, nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			i := ui.UI{Service: env.Service, Force: force}
			return output.HandleError(i.Do(cmd.Context()))
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Start even when stdout is not a terminal.")

	topLevel.AddCommand(cmd)
}
