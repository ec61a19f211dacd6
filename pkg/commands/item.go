package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/luggage/pkg/commands/options"
	"tableflip.dev/luggage/pkg/runner/add"
	"tableflip.dev/luggage/pkg/runner/complete"
	"tableflip.dev/luggage/pkg/runner/strike"
	"tableflip.dev/luggage/pkg/snake"
)

func addItem(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "item",
		Aliases: []string{"items"},
		Short:   "Manage the items packed in a baggage.",
		Long: options.Wrap80("Manage the items packed in a baggage. Baggage are referenced by id or " +
			"nickname, items by id or name."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addItemAdd(cmd)
	addItemPack(cmd, "pack", true)
	addItemPack(cmd, "unpack", false)
	addItemQuantity(cmd)
	addItemDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addItemAdd(parent *cobra.Command) {
	ito := &options.ItemOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}
	var name string

	cmd := &cobra.Command{
		Use:   "add <bag> [name...]",
		Short: "Add an item to a baggage.",
		Long: options.Wrap80("Add one unpacked item to a baggage. Adding a name that is already on " +
			"the list unpacked raises its quantity instead. Items from the catalog get their icon " +
			"automatically; see `luggage catalog`."),
		Example: `
luggage item add "Weekend bag" Socks
luggage item add bag-1 Rain jacket --icon GiMonclerJacket
luggage item add bag-1 -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a baggage")
			}
			name = strings.TrimSpace(strings.Join(args[1:], " "))
			if name == "" && !i.Interactive {
				return errors.New("requires an item name, or --interactive")
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !i.Interactive || name != "" {
				return nil
			}
			e, err := snake.SelectItem(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			name = e.Name
			if ito.Icon == "" {
				ito.Icon = e.Icon
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

			s := add.Item{
				Baggage: args[0],
				Name:    name,
				Icon:    ito.Icon,
				ShowID:  io.ShowID,
				Out:     cmd.OutOrStdout(),
				Service: env.Service,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddItemArgs(cmd, ito)
	options.AddShowIDArgs(cmd, io)
	options.InteractiveArgs(cmd, i)

	parent.AddCommand(cmd)
}

func addItemPack(parent *cobra.Command, verb string, packed bool) {
	io := &options.IDOptions{}

	long := "Mark an item as packed. Packing an item whose name is already packed merges the two."
	if !packed {
		long = "Mark a packed item as not packed."
	}

	cmd := &cobra.Command{
		Use:   verb + " <bag> <item...>",
		Short: strings.ToUpper(verb[:1]) + verb[1:] + " an item.",
		Long:  options.Wrap80(long),
		Example: fmt.Sprintf(`
luggage item %[1]s "Weekend bag" Socks
luggage item %[1]s bag-1 item-4
`, verb),
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: baggageCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := complete.Pack{
				Baggage: args[0],
				Item:    strings.Join(args[1:], " "),
				Packed:  packed,
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

func addItemQuantity(parent *cobra.Command) {
	co := &options.ConfirmOptions{}
	io := &options.IDOptions{}
	var quantity int

	cmd := &cobra.Command{
		Use:     "qty <bag> <item...> <n>",
		Aliases: []string{"quantity"},
		Short:   "Set how many of an item to bring.",
		Long: options.Wrap80("Set the quantity of an item. The quantity must be at least 1; asking " +
			"for less offers to remove the item instead."),
		Example: `
luggage item qty "Weekend bag" Socks 4
luggage item qty bag-1 T-Shirt 0 --yes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				return errors.New("requires a baggage, an item and a quantity")
			}
			var err error
			quantity, err = strconv.Atoi(args[len(args)-1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[len(args)-1])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, co)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := add.Quantity{
				Baggage:   args[0],
				Item:      strings.Join(args[1:len(args)-1], " "),
				Quantity:  quantity,
				ShowID:    io.ShowID,
				Out:       cmd.OutOrStdout(),
				Confirmer: env.Service.Confirmer,
				Service:   env.Service,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	options.AddConfirmArgs(cmd, co)
	options.AddShowIDArgs(cmd, io)

	parent.AddCommand(cmd)
}

func addItemDelete(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete <bag> <item...>",
		Aliases: []string{"rm", "strike"},
		Short:   "Remove an item from a baggage.",
		Example: `
luggage item delete "Weekend bag" Socks
`,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: baggageCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := openEnv(cmd, nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := strike.Strike{
				Baggage: args[0],
				Item:    strings.Join(args[1:], " "),
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
