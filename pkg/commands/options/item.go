package options

import (
	"github.com/spf13/cobra"
)

// ItemOptions
type ItemOptions struct {
	Icon string
}

func AddItemArgs(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().StringVar(&o.Icon, "icon", "",
		Wrap80("Icon key for the item. Defaults to the catalog icon for known items, PiCube otherwise."))
}
