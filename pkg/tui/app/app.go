// Package teaui hosts the Bubble Tea program for the luggage TUI.
package teaui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/effect"
	"tableflip.dev/luggage/pkg/store"
	"tableflip.dev/luggage/pkg/tui/components/help"
	"tableflip.dev/luggage/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeConfirm
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionAddItem
	actionRename
)

const defaultStatus = "space pack · a add · n new bag · ? help · q quit"

// Model contains UI state.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	mode   mode
	action action
	theme  theme.Theme

	collection baggage.Collection
	collapsed  baggage.CollapseMap
	rows       []row
	cursor     int
	offset     int

	input textinput.Model
	help  *help.Model

	// nextType is the type used by the next "new baggage".
	nextType baggage.Type
	toasts   *effect.Recorder
	status   string
	failed   bool

	confirmPrompt string
	onConfirm     func() error

	termWidth  int
	termHeight int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New creates a new UI model backed by the Service. The UI asks its own
// confirmation questions, so the service confirmer is set to approve.
func New(svc *app.Service) *Model {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Prompt = ""

	m := &Model{
		svc:      svc,
		ctx:      context.Background(),
		mode:     modeNormal,
		theme:    theme.Default(),
		input:    ti,
		nextType: baggage.TypeCarryOn,
		toasts:   &effect.Recorder{},
		status:   defaultStatus,
	}
	if svc != nil {
		svc.Sink = m.toasts
		svc.Confirmer = app.AlwaysConfirm
	}
	m.reload()
	return m
}

// Init starts watching storage for changes made by other processes.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.svc)
}

type errMsg struct{ err error }

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		if m.help != nil {
			m.help.SetSize(m.helpSize())
		}
		m.scrollToCursor()
	case errMsg:
		m.setError(msg.err)
	case watchStartedMsg:
		if msg.err != nil {
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent()
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
	case tea.KeyPressMsg:
		if cmd := m.handleKeyPress(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	default:
		if m.mode == modeHelp && m.help != nil {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			cmds = append(cmds, cmd)
		} else if m.mode == modeInsert {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// reload pulls the collection from the service and rebuilds the rows while
// keeping the cursor on the same row where possible.
func (m *Model) reload() {
	var current row
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		current = m.rows[m.cursor]
	}
	if m.svc == nil {
		m.collection, m.collapsed = nil, baggage.CollapseMap{}
	} else {
		m.collection = m.svc.Collection()
		m.collapsed = m.svc.Collapsed()
	}
	m.rows = buildRows(m.collection, m.collapsed)
	if current.bagID != "" {
		m.cursor = indexOf(m.rows, current, m.cursor)
	} else {
		m.cursor = clampIndex(m.cursor, len(m.rows))
	}
	m.scrollToCursor()
}

// after refreshes the view once a service call returned and moves the
// latest effect into the status line.
func (m *Model) after(err error) {
	m.reload()
	if err != nil {
		m.setError(err)
		m.toasts.Effects = nil
		return
	}
	if len(m.toasts.Effects) > 0 {
		last := m.toasts.Last()
		m.status = last.Message()
		m.failed = last.IsError()
		m.toasts.Effects = nil
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *Model) setError(err error) {
	m.status = "ERR: " + err.Error()
	m.failed = true
}

func (m *Model) selected() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) bag(id string) (baggage.Baggage, bool) {
	i, ok := m.collection.Find(id)
	if !ok {
		return baggage.Baggage{}, false
	}
	return m.collection[i], true
}

func (m *Model) item(r row) (baggage.Baggage, baggage.Item, bool) {
	b, ok := m.bag(r.bagID)
	if !ok || !r.isItem() {
		return b, baggage.Item{}, false
	}
	i, ok := b.Find(r.itemID)
	if !ok {
		return b, baggage.Item{}, false
	}
	return b, b.Items[i], true
}

func (m *Model) listHeight() int {
	if m.termHeight <= 0 {
		return 0
	}
	// title, blank line, blank line, footer and prompt
	return max(m.termHeight-5, 3)
}

func (m *Model) scrollToCursor() {
	h := m.listHeight()
	if h == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	m.offset = clampIndex(m.offset, len(m.rows))
}

func (m *Model) helpSize() (int, int) {
	w, h := m.termWidth, m.termHeight-2
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

// View renders the baggage list and the footer.
func (m *Model) View() string {
	if m.mode == modeHelp && m.help != nil {
		return m.help.View() + "\n" + m.theme.Footer.Help.Render("esc or ? to close")
	}

	sections := []string{m.renderTitle(), m.renderList()}
	switch m.mode {
	case modeInsert:
		prompt := "Add item: "
		if m.action == actionRename {
			prompt = "Nickname: "
		}
		sections = append(sections, m.theme.Footer.Prompt.Render(prompt)+m.input.View())
	case modeConfirm:
		sections = append(sections, m.theme.Modal.Frame.Render(
			m.theme.Modal.Title.Render(m.confirmPrompt)+"\n"+m.theme.Modal.Body.Render("y to confirm, n to cancel")))
	}
	sections = append(sections, m.renderStatus())
	return strings.Join(sections, "\n\n")
}

func (m *Model) renderTitle() string {
	packed, total := 0, 0
	for _, b := range m.collection {
		p, t := b.Counts()
		packed += p
		total += t
	}
	title := m.theme.Title.Render("🧳 Luggage")
	if total == 0 {
		return title
	}
	return title + "  " + m.theme.Card.Progress.Render(fmt.Sprintf("%d/%d packed", packed, total))
}

func (m *Model) renderList() string {
	if len(m.rows) == 0 {
		return m.theme.Card.Empty.Render("No luggage yet. Press n to add a baggage.")
	}

	end := len(m.rows)
	if h := m.listHeight(); h > 0 && m.offset+h < end {
		end = m.offset + h
	}
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(m.rows[i], i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(r row, selected bool) string {
	marker := "  "
	if selected {
		marker = "→ "
	}
	if !r.isItem() {
		b, _ := m.bag(r.bagID)
		style := m.theme.Card.Header
		if selected {
			style = m.theme.Card.Selected
		}
		packed, total := b.Counts()
		progress := m.theme.Card.Progress
		if total > 0 && packed == total {
			progress = m.theme.Card.Done
		}
		line := marker + style.Render(headerText(b, m.collapsed[b.ID])) + "  " + progress.Render(progressText(b))
		if len(b.Items) == 0 && !m.collapsed[b.ID] {
			line += "\n      " + m.theme.Card.Empty.Render("no items, press a to add one")
		}
		return line
	}

	_, it, _ := m.item(r)
	style := m.theme.Item.Unpacked
	if it.Packed {
		style = m.theme.Item.Packed
	}
	if selected {
		style = style.Reverse(true)
	}
	return marker + "   " + lipgloss.JoinHorizontal(lipgloss.Top,
		style.Render(itemText(it)), " ", m.theme.Item.Quantity.Render(fmt.Sprintf("×%d", it.Quantity)))
}

func (m *Model) renderStatus() string {
	if m.failed {
		return m.theme.Footer.Error.Render(m.status)
	}
	return m.theme.Footer.Status.Render(m.status)
}

// Run launches the interactive TUI program.
func Run(svc *app.Service) error {
	m := New(svc)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.stopWatch()
	return err
}
