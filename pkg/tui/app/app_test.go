package teaui

import (
	"context"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/persist"
	"tableflip.dev/luggage/pkg/store"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string { return ansi.ReplaceAllString(s, "") }

func newTestService(t *testing.T, durable *store.Memory) *app.Service {
	t.Helper()
	svc := &app.Service{
		Persistence: persist.New(durable, store.NewMemory(nil), nil),
		IDs:         &baggage.SequenceIDs{},
	}
	require.NoError(t, svc.Open(context.Background()))
	return svc
}

func newTestModel(t *testing.T) (*Model, *app.Service) {
	t.Helper()
	svc := newTestService(t, store.NewMemory(nil))
	m := New(svc)
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	return m, svc
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Text: k, Code: r}
}

func addItem(t *testing.T, m *Model, name string) {
	t.Helper()
	press(m, "a")
	require.Equal(t, modeInsert, m.mode)
	m.input.SetValue(name)
	press(m, "enter")
	require.Equal(t, modeNormal, m.mode)
}

func TestViewEmpty(t *testing.T) {
	m, _ := newTestModel(t)
	view := stripANSI(m.View())
	assert.Contains(t, view, "Luggage")
	assert.Contains(t, view, "No luggage yet")
}

func TestNewBaggageCyclesTypes(t *testing.T) {
	m, svc := newTestModel(t)

	press(m, "n", "n")

	c := svc.Collection()
	require.Len(t, c, 2)
	assert.Equal(t, baggage.TypeCarryOn, c[0].Type)
	assert.Equal(t, baggage.TypeMediumChecked, c[1].Type)
	assert.Equal(t, row{bagID: c[1].ID}, m.rows[m.cursor])
	assert.Equal(t, "Added new baggage: medium checked", m.status)
}

func TestAddItemUsesCatalogIcon(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n")

	addItem(t, m, "Socks")

	b := svc.Collection()[0]
	require.Len(t, b.Items, 1)
	assert.Equal(t, "Socks", b.Items[0].Name)
	assert.Equal(t, "PiSock", b.Items[0].Icon)
	assert.Equal(t, "Added item: 'Socks'", m.status)

	view := stripANSI(m.View())
	assert.Contains(t, view, "[ ] 🧦 Socks")
	assert.Contains(t, view, "0/1 packed")
}

func TestAddBlankItemIsRejected(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n")

	addItem(t, m, "   ")

	assert.Empty(t, svc.Collection()[0].Items)
	assert.True(t, m.failed)
}

func TestInsertEscapeCancels(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n", "a")
	m.input.SetValue("Hat")
	press(m, "esc")

	assert.Equal(t, modeNormal, m.mode)
	assert.Empty(t, svc.Collection()[0].Items)
	assert.Equal(t, "Cancelled", m.status)
}

func TestSpacePacksAndMerges(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n")
	addItem(t, m, "Socks")

	press(m, "down", "space")
	b := svc.Collection()[0]
	require.Len(t, b.Items, 1)
	assert.True(t, b.Items[0].Packed)

	// A second unpacked Socks merges into the packed one.
	press(m, "up")
	addItem(t, m, "Socks")
	require.Len(t, svc.Collection()[0].Items, 2)
	press(m, "G", "space")

	b = svc.Collection()[0]
	require.Len(t, b.Items, 1)
	assert.Equal(t, 2, b.Items[0].Quantity)
	assert.True(t, b.Items[0].Packed)
	assert.Equal(t, "Merged 'Socks' (now 2)", m.status)
	assert.Equal(t, row{bagID: b.ID}, m.rows[m.cursor])
}

func TestQuantityKeys(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n")
	addItem(t, m, "Hat")
	press(m, "down", "+", "+")
	assert.Equal(t, 3, svc.Collection()[0].Items[0].Quantity)

	press(m, "-")
	assert.Equal(t, 2, svc.Collection()[0].Items[0].Quantity)
}

func TestMinusAtOneAsksToRemove(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n")
	addItem(t, m, "Belt")
	press(m, "down", "-")

	require.Equal(t, modeConfirm, m.mode)
	assert.Contains(t, stripANSI(m.View()), "Remove 'Belt' instead?")

	press(m, "n")
	assert.Equal(t, modeNormal, m.mode)
	assert.Len(t, svc.Collection()[0].Items, 1)

	press(m, "-", "y")
	assert.Empty(t, svc.Collection()[0].Items)
	assert.Equal(t, "Removed item: 'Belt'", m.status)
}

func TestDeleteEmptyBaggageSkipsConfirm(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n", "d")

	assert.Equal(t, modeNormal, m.mode)
	assert.Empty(t, svc.Collection())
	assert.Equal(t, "Baggage deleted", m.status)
}

func TestDeleteBaggageWithItemsConfirms(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n")
	addItem(t, m, "Hat")
	press(m, "g", "d")

	require.Equal(t, modeConfirm, m.mode)
	assert.Equal(t, app.DeletePrompt("this baggage"), m.confirmPrompt)
	press(m, "esc")
	assert.Len(t, svc.Collection(), 1)

	press(m, "x", "y")
	assert.Empty(t, svc.Collection())
}

func TestDeleteItemKey(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n")
	addItem(t, m, "Hat")
	addItem(t, m, "Belt")
	press(m, "G", "x")

	items := svc.Collection()[0].Items
	require.Len(t, items, 1)
	assert.Equal(t, "Hat", items[0].Name)
}

func TestCollapseHidesItems(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n")
	addItem(t, m, "Hat")
	require.Len(t, m.rows, 2)

	press(m, "down", "c")
	assert.Len(t, m.rows, 1)
	assert.True(t, svc.Collapsed()[svc.Collection()[0].ID])
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, stripANSI(m.View()), "▸ carry on")

	press(m, "enter")
	assert.Len(t, m.rows, 2)
}

func TestCollapseAll(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n", "n", "C")
	for _, v := range svc.Collapsed() {
		assert.True(t, v)
	}
	press(m, "C")
	assert.False(t, svc.Collapsed().AnyCollapsed())
}

func TestPackAllToggles(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n")
	addItem(t, m, "Hat")
	addItem(t, m, "Belt")

	press(m, "p")
	packed, total := svc.Collection()[0].Counts()
	assert.Equal(t, 2, packed)
	assert.Equal(t, 2, total)

	press(m, "p")
	packed, _ = svc.Collection()[0].Counts()
	assert.Equal(t, 0, packed)
}

func TestRenameAndCycleType(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n", "r")
	require.Equal(t, modeInsert, m.mode)
	m.input.SetValue("Weekend bag")
	press(m, "enter", "t")

	b := svc.Collection()[0]
	assert.Equal(t, "Weekend bag", b.Nickname)
	assert.Equal(t, baggage.TypeMediumChecked, b.Type)
	assert.Contains(t, stripANSI(m.View()), "medium checked · Weekend bag")
}

func TestClearAllConfirms(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n", "n", "D")
	require.Equal(t, modeConfirm, m.mode)
	assert.Equal(t, app.ClearPrompt, m.confirmPrompt)

	press(m, "y")
	assert.Empty(t, svc.Collection())
	assert.Equal(t, "All luggage data cleared", m.status)
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "?")
	require.Equal(t, modeHelp, m.mode)
	assert.Contains(t, stripANSI(m.View()), "Luggage keys")

	press(m, "?")
	assert.Equal(t, modeNormal, m.mode)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestWatchEventReloads(t *testing.T) {
	durable := store.NewMemory(nil)
	svc := newTestService(t, durable)
	m := New(svc)

	other := newTestService(t, durable)
	_, err := other.AddBaggage(context.Background(), baggage.TypeBackpack)
	require.NoError(t, err)

	m.Update(watchEventMsg{})
	require.Len(t, m.collection, 1)
	assert.Equal(t, baggage.TypeBackpack, m.collection[0].Type)
}

func TestScrollFollowsCursor(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	for i := 0; i < 6; i++ {
		press(m, "n")
	}
	press(m, "G")
	assert.Equal(t, 5, m.cursor)
	assert.Equal(t, 3, m.offset)

	press(m, "g")
	assert.Equal(t, 0, m.offset)
	assert.True(t, strings.HasPrefix(strings.Split(stripANSI(m.renderList()), "\n")[0], "→ "))
}

func TestBuildRowsAndIndexOf(t *testing.T) {
	c := baggage.Collection{
		{ID: "b1", Items: []baggage.Item{{ID: "i1"}, {ID: "i2"}}},
		{ID: "b2", Items: []baggage.Item{{ID: "i3"}}},
	}
	rows := buildRows(c, baggage.CollapseMap{"b2": true})
	assert.Equal(t, []row{{bagID: "b1"}, {bagID: "b1", itemID: "i1"}, {bagID: "b1", itemID: "i2"}, {bagID: "b2"}}, rows)

	assert.Equal(t, 2, indexOf(rows, row{bagID: "b1", itemID: "i2"}, 0))
	assert.Equal(t, 3, indexOf(rows, row{bagID: "b2", itemID: "i3"}, 0))
	assert.Equal(t, 3, indexOf(rows, row{bagID: "gone"}, 9))
	assert.Equal(t, baggage.TypeCarryOn, nextType(baggage.TypeOther))
}
