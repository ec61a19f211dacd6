package teaui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/catalog"
	"tableflip.dev/luggage/pkg/tui/components/help"
)

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	switch m.mode {
	case modeHelp:
		return m.handleHelpKey(msg)
	case modeInsert:
		return m.handleInsertKey(msg)
	case modeConfirm:
		m.handleConfirmKey(msg)
		return nil
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc", "?":
		m.mode = modeNormal
		return nil
	}
	if m.help == nil {
		return nil
	}
	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	return cmd
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "?":
		if m.help == nil {
			m.help = help.New(m.helpSize())
		}
		m.mode = modeHelp
		return nil
	}
	if m.svc == nil {
		return nil
	}
	r, ok := m.selected()

	switch msg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "g", "home":
		m.cursor = 0
		m.scrollToCursor()
	case "G", "end":
		m.cursor = clampIndex(len(m.rows)-1, len(m.rows))
		m.scrollToCursor()
	case "n":
		t := m.nextType
		m.nextType = nextType(t)
		b, err := m.svc.AddBaggage(m.ctx, t)
		m.after(err)
		if err == nil {
			m.cursor = indexOf(m.rows, row{bagID: b.ID}, m.cursor)
			m.scrollToCursor()
		}
	case "C":
		err := m.svc.SetAllCollapsed(m.ctx, !m.collapsed.AnyCollapsed())
		m.after(err)
	case "D":
		if len(m.collection) == 0 {
			break
		}
		m.askConfirm(app.ClearPrompt, func() error {
			_, err := m.svc.ClearAll(m.ctx)
			return err
		})
	}
	if !ok {
		return nil
	}

	switch msg.String() {
	case "space", " ":
		if !r.isItem() {
			_, err := m.svc.ToggleCollapsed(m.ctx, r.bagID)
			m.after(err)
			break
		}
		_, err := m.svc.TogglePacked(m.ctx, r.bagID, r.itemID)
		m.after(err)
	case "enter", "c":
		_, err := m.svc.ToggleCollapsed(m.ctx, r.bagID)
		m.after(err)
		if err == nil {
			m.cursor = indexOf(m.rows, row{bagID: r.bagID}, m.cursor)
			m.scrollToCursor()
		}
	case "+", "=":
		if _, it, ok := m.item(r); ok {
			_, err := m.svc.SetQuantity(m.ctx, r.bagID, it.ID, it.Quantity+1)
			m.after(err)
		}
	case "-", "_":
		if _, it, ok := m.item(r); ok {
			if it.Quantity <= 1 {
				m.askConfirm(fmt.Sprintf("Quantity must be at least 1. Remove '%s' instead?", it.Name), func() error {
					_, err := m.svc.DeleteItem(m.ctx, r.bagID, it.ID)
					return err
				})
				break
			}
			_, err := m.svc.SetQuantity(m.ctx, r.bagID, it.ID, it.Quantity-1)
			m.after(err)
		}
	case "d", "x":
		if r.isItem() {
			_, err := m.svc.DeleteItem(m.ctx, r.bagID, r.itemID)
			m.after(err)
			break
		}
		m.deleteBaggage(r.bagID)
	case "p":
		_, err := m.svc.TogglePackAll(m.ctx, r.bagID)
		m.after(err)
	case "t":
		if b, ok := m.bag(r.bagID); ok {
			_, err := m.svc.SetType(m.ctx, r.bagID, nextType(b.Type))
			m.after(err)
		}
	case "a":
		return m.startInsert(actionAddItem, "Socks, T-Shirt, Hat...", "")
	case "r":
		b, _ := m.bag(r.bagID)
		return m.startInsert(actionRename, "Nickname", b.Nickname)
	}
	return nil
}

func (m *Model) move(delta int) {
	m.cursor = clampIndex(m.cursor+delta, len(m.rows))
	m.scrollToCursor()
}

func (m *Model) deleteBaggage(id string) {
	b, ok := m.bag(id)
	if !ok {
		return
	}
	del := func() error {
		_, err := m.svc.DeleteBaggage(m.ctx, id)
		return err
	}
	if len(b.Items) == 0 {
		m.after(del())
		return
	}
	m.askConfirm(app.DeletePrompt(b.DisplayName()), del)
}

func (m *Model) askConfirm(prompt string, fn func() error) {
	m.mode = modeConfirm
	m.confirmPrompt = prompt
	m.onConfirm = fn
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg) {
	switch strings.ToLower(msg.String()) {
	case "y":
		fn := m.onConfirm
		m.endConfirm()
		if fn != nil {
			m.after(fn())
		}
	case "n", "esc", "q":
		m.endConfirm()
		m.setStatus("Cancelled")
	}
}

func (m *Model) endConfirm() {
	m.mode = modeNormal
	m.confirmPrompt = ""
	m.onConfirm = nil
}

func (m *Model) startInsert(a action, placeholder, value string) tea.Cmd {
	m.mode = modeInsert
	m.action = a
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmds := []tea.Cmd{textinput.Blink}
	if cmd := m.input.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) endInsert() {
	m.mode = modeNormal
	m.action = actionNone
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.endInsert()
		m.setStatus("Cancelled")
		return nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		a := m.action
		m.endInsert()
		r, ok := m.selected()
		if !ok {
			return nil
		}
		switch a {
		case actionAddItem:
			if value == "" {
				m.setError(errors.New("item name is blank"))
				return nil
			}
			_, err := m.svc.AddItem(m.ctx, r.bagID, value, catalog.IconFor(value))
			m.after(err)
		case actionRename:
			_, err := m.svc.SetNickname(m.ctx, r.bagID, value)
			m.after(err)
			if err == nil {
				m.setStatus("Renamed")
			}
		}
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}
