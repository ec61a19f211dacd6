// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// BaggageOptions captures flags describing a baggage.
type BaggageOptions struct {
	Nickname string
}

// AddBaggageArgs wires baggage-related flags on the provided command.
func AddBaggageArgs(cmd *cobra.Command, o *BaggageOptions) {
	cmd.Flags().StringVarP(&o.Nickname, "nickname", "n", "",
		"Give the baggage a nickname.")
}

// CollapseOptions selects which baggage a collapse or expand applies to.
type CollapseOptions struct {
	All bool
}

// AddCollapseArgs registers flags that operate on every baggage.
func AddCollapseArgs(cmd *cobra.Command, o *CollapseOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Apply to every baggage.")
}
