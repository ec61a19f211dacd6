package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/luggage/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the luggage list and where it is stored.",
		Example: `
luggage info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := info.Info{
				Env: env,
				Out: cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
