package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title  lipgloss.Style
	Card   CardTheme
	Item   ItemTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// CardTheme styles the baggage header rows.
type CardTheme struct {
	Header   lipgloss.Style
	Selected lipgloss.Style
	Nickname lipgloss.Style
	Progress lipgloss.Style
	Done     lipgloss.Style
	Empty    lipgloss.Style
}

// ItemTheme styles checklist rows.
type ItemTheme struct {
	Unpacked lipgloss.Style
	Packed   lipgloss.Style
	Selected lipgloss.Style
	Quantity lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
}

// ModalTheme styles centered overlays such as confirmations.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("244")

	header := lipgloss.NewStyle().Bold(true)
	item := lipgloss.NewStyle()

	return Theme{
		Title: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Card: CardTheme{
			Header:   header,
			Selected: header.Reverse(true),
			Nickname: lipgloss.NewStyle().Foreground(accent),
			Progress: lipgloss.NewStyle().Foreground(muted),
			Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Empty:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Item: ItemTheme{
			Unpacked: item,
			Packed:   item.Foreground(lipgloss.Color("241")).Strikethrough(true),
			Selected: item.Reverse(true),
			Quantity: lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			Prompt: lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}
