package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/luggage/pkg/commands/options"
	"tableflip.dev/luggage/pkg/interchange"
	"tableflip.dev/luggage/pkg/runner/transfer"
)

func addExport(topLevel *cobra.Command) {
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the luggage list as CSV.",
		Long: options.Wrap80("Write every item as one CSV row: baggageId, itemIcon, baggageType, " +
			"baggageNickname, itemName, quantity, packed. Use `--file -` to write to stdout."),
		Example: `
luggage export
luggage export --file - > trip.csv
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := transfer.Export{
				File:    file,
				Stdout:  cmd.OutOrStdout(),
				Service: env.Service,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", interchange.FileName, "File to write, - for stdout.")

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Replace the luggage list with a CSV file.",
		Long: options.Wrap80("Replace the whole list with the rows of a CSV file written by " +
			"`luggage export`. Rows missing an item name are skipped. Use - to read stdin."),
		Example: `
luggage import luggage-tracker.csv
cat trip.csv | luggage import -
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := transfer.Import{
				File:    args[0],
				Stdin:   cmd.InOrStdin(),
				Service: env.Service,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
