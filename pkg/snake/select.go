package snake

import (
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/catalog"
)

type typeChoice struct {
	Type  baggage.Type
	Label string
}

// SelectType lets the user pick a baggage type.
func SelectType(in io.Reader, out io.Writer) (baggage.Type, error) {
	choices := make([]typeChoice, 0, len(baggage.AllTypes()))
	for _, t := range baggage.AllTypes() {
		choices = append(choices, typeChoice{Type: t, Label: t.Label()})
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Label | bold }}",
		Inactive: "   {{ .Label }}",
		Selected: "{{ .Label | green }}",
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Baggage type",
		Items:     choices,
		Templates: templates,
		Size:      len(choices),
		Stdin:     readCloser(in),
		Stdout:    writeCloser(out),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return choices[i].Type, nil
}

// SelectItem lets the user pick a quick-add item from the catalog, or choose
// "Other" and type a custom name.
func SelectItem(in io.Reader, out io.Writer) (catalog.Entry, error) {
	entries := append(catalog.DefaultItems(), catalog.Entry{Name: "Other...", Emoji: "✏️"})
	other := len(entries) - 1

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Emoji }} {{ .Name | bold }}",
		Inactive: "   {{ .Emoji }} {{ .Name }}",
		Selected: "{{ .Emoji }} {{ .Name | green }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.Replace(strings.ToLower(entries[index].Name), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Item",
		Items:     entries,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     readCloser(in),
		Stdout:    writeCloser(out),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return catalog.Entry{}, err
	}
	if i != other {
		return entries[i], nil
	}

	name, err := PromptText("Item name", in, out)
	if err != nil {
		return catalog.Entry{}, err
	}
	return catalog.Entry{Name: name, Icon: catalog.IconFor(name), Emoji: catalog.Emoji(catalog.IconFor(name))}, nil
}
