package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/luggage/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(luggage completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(luggage completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

// baggageCompletions offers the nicknames (or ids) of the stored baggage.
func baggageCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	env, err := openEnvWith(cmd, cfg, nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer env.Close()

	var out []string
	for _, b := range env.Service.Collection() {
		ref := b.Nickname
		if ref == "" {
			ref = b.ID
		}
		if strings.HasPrefix(strings.ToLower(ref), strings.ToLower(toComplete)) {
			out = append(out, ref)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
