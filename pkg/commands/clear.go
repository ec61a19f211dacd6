package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/luggage/pkg/commands/options"
	"tableflip.dev/luggage/pkg/runner/collections"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every baggage.",
		Example: `
luggage clear
luggage clear --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, co)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := collections.Clear{
				Out:     cmd.OutOrStdout(),
				Service: env.Service,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

func addSeed(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty list with sample luggage.",
		Example: `
luggage seed
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := collections.Seed{
				Out:     cmd.OutOrStdout(),
				Service: env.Service,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
