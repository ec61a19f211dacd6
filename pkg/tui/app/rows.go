package teaui

import (
	"fmt"
	"strings"

	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/catalog"
	"tableflip.dev/luggage/pkg/printers"
)

// row is one selectable line: a baggage header or one of its items.
type row struct {
	bagID  string
	itemID string // empty for the baggage header
}

func (r row) isItem() bool { return r.itemID != "" }

// buildRows flattens the collection in display order. Items of collapsed
// baggage are skipped.
func buildRows(c baggage.Collection, collapsed baggage.CollapseMap) []row {
	rows := make([]row, 0, len(c))
	for _, b := range c {
		rows = append(rows, row{bagID: b.ID})
		if collapsed[b.ID] {
			continue
		}
		for _, it := range b.Items {
			rows = append(rows, row{bagID: b.ID, itemID: it.ID})
		}
	}
	return rows
}

// indexOf finds target in rows. When the item is gone the cursor falls back
// to its baggage, and then to fallback.
func indexOf(rows []row, target row, fallback int) int {
	bagIdx := -1
	for i, r := range rows {
		if r == target {
			return i
		}
		if r.bagID == target.bagID && !r.isItem() {
			bagIdx = i
		}
	}
	if bagIdx >= 0 {
		return bagIdx
	}
	return clampIndex(fallback, len(rows))
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func headerText(b baggage.Baggage, collapsed bool) string {
	arrow := "▾"
	if collapsed {
		arrow = "▸"
	}
	var sb strings.Builder
	sb.WriteString(arrow)
	sb.WriteString(" ")
	sb.WriteString(b.Type.Label())
	if b.Nickname != "" {
		sb.WriteString(" · ")
		sb.WriteString(printers.Clamp(b.Nickname))
	}
	return sb.String()
}

func progressText(b baggage.Baggage) string {
	packed, total := b.Counts()
	return fmt.Sprintf("%d/%d packed", packed, total)
}

func itemText(it baggage.Item) string {
	box := "[ ]"
	if it.Packed {
		box = "[x]"
	}
	return fmt.Sprintf("%s %s %s", box, catalog.Emoji(it.Icon), printers.Clamp(it.Name))
}

// nextType returns the type after t in baggage.AllTypes, wrapping around.
func nextType(t baggage.Type) baggage.Type {
	all := baggage.AllTypes()
	for i, candidate := range all {
		if candidate == t {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
