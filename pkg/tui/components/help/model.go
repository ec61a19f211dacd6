// Package help renders the key reference overlay.
package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/luggage/pkg/tui/theme"
)

//go:embed help.md
var keysMarkdown string

const (
	minWidth  = 32
	minHeight = 8
)

// Model is a scrollable, framed view of the key reference.
type Model struct {
	vp     viewport.Model
	styles theme.ModalTheme

	width, height int
	// wrap is the width the markdown was last rendered for.
	wrap int
}

// New returns the overlay sized to width x height.
func New(width, height int) *Model {
	m := &Model{
		vp: viewport.New(
			viewport.WithWidth(max(width, 1)),
			viewport.WithHeight(max(height, 1)),
		),
		styles: theme.Default().Modal,
	}
	m.vp.MouseWheelEnabled = true
	m.SetSize(width, height)
	return m
}

// Update scrolls the overlay.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	return m.styles.Frame.
		Width(m.width).
		Height(m.height).
		Render(m.vp.View())
}

// SetSize resizes the overlay, rendering the markdown again when the
// usable width changed.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, minWidth)
	m.height = max(height, minHeight)

	w := max(m.width-m.styles.Frame.GetHorizontalFrameSize(), 1)
	h := max(m.height-m.styles.Frame.GetVerticalFrameSize(), 1)
	m.vp.SetWidth(w)
	m.vp.SetHeight(h)
	if w != m.wrap {
		m.wrap = w
		m.vp.SetContent(render(w))
		m.vp.GotoTop()
	}
}

// render turns the key reference into plain wrapped text. Styling comes
// from the frame; glamour's colours are stripped so the overlay matches
// the rest of the UI.
func render(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(max(width, 10)),
	)
	if err != nil {
		return fallback(err)
	}
	out, err := r.Render(strings.TrimSpace(keysMarkdown))
	if err != nil {
		return fallback(err)
	}
	return strings.Trim(ansi.Strip(out), "\n")
}

func fallback(err error) string {
	return "help unavailable: " + err.Error() + "\n\n" + keysMarkdown
}
