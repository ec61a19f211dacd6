package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/luggage/pkg/store"
)

// GlobalOptions are persistent flags available on every command.
type GlobalOptions struct {
	Verbose bool
	Quiet   bool
}

func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug output to stderr.")
	cmd.PersistentFlags().BoolVarP(&o.Quiet, "quiet", "q", false,
		"Only report errors.")
}

// Config loads the configuration and applies the global flags to it.
func (o *GlobalOptions) Config() (*store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if o.Verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}
