package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/luggage/pkg/runner/key"
)

func addCatalog(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"key"},
		Short:   "Print the quick-add items and their icons.",
		Example: `
luggage catalog
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{JSON: output.JSON, Out: cmd.OutOrStdout()}
			err := k.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
