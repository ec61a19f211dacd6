package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/commands/options"
	"tableflip.dev/luggage/pkg/printers"
	"tableflip.dev/luggage/pkg/store"
)

var (
	output  = &options.OutputOptions{}
	globals = &options.GlobalOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "luggage",
		Short: base.Wrap80("Pack your bags on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddGlobalArgs(cmd, globals)
	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addBag(topLevel)
	addItem(topLevel)
	addList(topLevel)
	addCatalog(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addClear(topLevel)
	addSeed(topLevel)
	addInfo(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// openEnv loads the configuration and opens the luggage service for cmd.
// Effects print to stderr. A nil co declines every confirmation.
func openEnv(cmd *cobra.Command, co *options.ConfirmOptions) (*app.Env, error) {
	cfg, err := globals.Config()
	if err != nil {
		return nil, err
	}
	return openEnvWith(cmd, cfg, co)
}

func openEnvWith(cmd *cobra.Command, cfg *store.Config, co *options.ConfirmOptions) (*app.Env, error) {
	env, err := app.Load(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}
	env.Service.Sink = &printers.Notifier{Quiet: globals.Quiet || output.JSON}
	if co != nil {
		env.Service.Confirmer = co.Confirmer(cmd)
	}
	return env, nil
}
