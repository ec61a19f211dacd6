package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/commands/options"
	"tableflip.dev/luggage/pkg/runner/add"
	"tableflip.dev/luggage/pkg/runner/collections"
	"tableflip.dev/luggage/pkg/runner/complete"
	"tableflip.dev/luggage/pkg/runner/get"
	"tableflip.dev/luggage/pkg/snake"
)

func addBag(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "bag",
		Aliases: []string{"bags", "baggage"},
		Short:   "Manage baggage: suitcases, backpacks and carry-ons.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addBagAdd(cmd)
	addBagList(cmd)
	addBagDelete(cmd)
	addBagRename(cmd)
	addBagType(cmd)
	addBagPackAll(cmd)
	addBagCollapse(cmd, "collapse", true)
	addBagCollapse(cmd, "expand", false)

	topLevel.AddCommand(cmd)
}

func typeNames() []string {
	all := baggage.AllTypes()
	names := make([]string, 0, len(all))
	for _, t := range all {
		names = append(names, string(t))
	}
	return names
}

func addBagAdd(parent *cobra.Command) {
	bo := &options.BaggageOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}
	var t baggage.Type

	cmd := &cobra.Command{
		Use:   "add [type]",
		Short: "Add an empty baggage.",
		Long: options.Wrap80("Add an empty baggage. Types: " + strings.Join(typeNames(), ", ") +
			". Without a type the baggage is a carry-on, or pick one with --interactive."),
		Example: `
luggage bag add carry-on --nickname "Weekend bag"
luggage bag add backpack
luggage bag add -i
`,
		ValidArgs: typeNames(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("too many arguments, expected one baggage type")
			}
			if len(args) == 0 {
				t = baggage.TypeCarryOn
				return nil
			}
			var err error
			t, err = baggage.ParseType(args[0])
			return err
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if i.Interactive && len(args) == 0 {
				var err error
				t, err = snake.SelectType(cmd.InOrStdin(), cmd.OutOrStdout())
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := add.Baggage{
				Type:     t,
				Nickname: strings.TrimSpace(bo.Nickname),
				ShowID:   io.ShowID,
				Out:      cmd.OutOrStdout(),
				Service:  env.Service,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddBaggageArgs(cmd, bo)
	options.AddShowIDArgs(cmd, io)
	options.InteractiveArgs(cmd, i)

	parent.AddCommand(cmd)
}

func addBagList(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Summarize every baggage and its packing progress.",
		Example: `
luggage bag list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := get.Get{
				Summary: true,
				JSON:    output.JSON,
				ShowID:  io.ShowID,
				Out:     cmd.OutOrStdout(),
				Service: env.Service,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	options.AddShowIDArgs(cmd, io)

	parent.AddCommand(cmd)
}

func addBagDelete(parent *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete <bag>",
		Aliases: []string{"rm"},
		Short:   "Delete a baggage and everything in it.",
		Long: options.Wrap80("Delete a baggage by id or nickname. A baggage that still holds items " +
			"asks for confirmation first; pass --yes to skip the question."),
		Example: `
luggage bag delete "Weekend bag"
luggage bag delete 1712345678901-ab12cd34 --yes
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: baggageCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, co)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := collections.Delete{
				Baggage: args[0],
				Out:     cmd.OutOrStdout(),
				Service: env.Service,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	options.AddConfirmArgs(cmd, co)

	parent.AddCommand(cmd)
}

func addBagRename(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rename <bag> [nickname...]",
		Short: "Set or clear the nickname of a baggage.",
		Example: `
luggage bag rename bag-1 Weekend bag
luggage bag rename "Weekend bag"
`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: baggageCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := collections.Rename{
				Baggage:  args[0],
				Nickname: strings.TrimSpace(strings.Join(args[1:], " ")),
				Out:      cmd.OutOrStdout(),
				Service:  env.Service,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	parent.AddCommand(cmd)
}

func addBagType(parent *cobra.Command) {
	var t baggage.Type

	cmd := &cobra.Command{
		Use:   "type <bag> <type>",
		Short: "Change the type of a baggage.",
		Long:  options.Wrap80("Change the type of a baggage. Types: " + strings.Join(typeNames(), ", ") + "."),
		Example: `
luggage bag type "Weekend bag" large-checked
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected a baggage and a type, got %d arguments", len(args))
			}
			var err error
			t, err = baggage.ParseType(args[1])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := collections.Type{
				Baggage: args[0],
				Type:    t,
				Out:     cmd.OutOrStdout(),
				Service: env.Service,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	parent.AddCommand(cmd)
}

func addBagPackAll(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "pack-all <bag>",
		Short: "Pack every item, or unpack them all when everything is packed.",
		Example: `
luggage bag pack-all "Weekend bag"
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: baggageCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := complete.PackAll{
				Baggage: args[0],
				ShowID:  io.ShowID,
				Out:     cmd.OutOrStdout(),
				Service: env.Service,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	options.AddShowIDArgs(cmd, io)

	parent.AddCommand(cmd)
}

func addBagCollapse(parent *cobra.Command, verb string, collapsed bool) {
	co := &options.CollapseOptions{}

	cmd := &cobra.Command{
		Use:   verb + " [bag]",
		Short: strings.ToUpper(verb[:1]) + verb[1:] + " a baggage, or every baggage with --all.",
		Example: fmt.Sprintf(`
luggage bag %[1]s "Weekend bag"
luggage bag %[1]s --all
`, verb),
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: baggageCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := collections.Collapse{
				All:       co.All,
				Collapsed: collapsed,
				Service:   env.Service,
			}
			if len(args) == 1 {
				s.Baggage = args[0]
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	options.AddCollapseArgs(cmd, co)

	parent.AddCommand(cmd)
}
