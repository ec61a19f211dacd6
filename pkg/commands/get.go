package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/luggage/pkg/commands/options"
	"tableflip.dev/luggage/pkg/runner/get"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list [bag]",
		Aliases: []string{"get", "ls"},
		Short:   "Print the luggage list.",
		Long: options.Wrap80("Print every baggage and its items. Collapsed baggage only show their " +
			"header; see `luggage bag collapse`. Name a baggage to print just that one."),
		Example: `
luggage list
luggage list "Weekend bag" --show-id
luggage list --json
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: baggageCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := get.Get{
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
				Service: env.Service,
			}
			if len(args) == 1 {
				s.Baggage = args[0]
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
