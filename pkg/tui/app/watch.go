package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/store"
)

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil || svc.Watcher == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// handleWatchEvent reloads from storage after another process wrote to it.
func (m *Model) handleWatchEvent() {
	if m.svc == nil {
		return
	}
	if err := m.svc.Open(m.ctx); err != nil {
		m.setError(err)
		return
	}
	m.reload()
}
