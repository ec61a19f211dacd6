// Package interchange flattens a collection into CSV rows and rebuilds a
// collection from them.
package interchange

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"tableflip.dev/luggage/pkg/baggage"
)

// FileName is the default export file name.
const FileName = "luggage-tracker.csv"

// ImportIcon is the icon given to imported items that have none.
const ImportIcon = "cube"

// Column names, in header order.
const (
	ColBaggageID       = "baggageId"
	ColItemIcon        = "itemIcon"
	ColBaggageType     = "baggageType"
	ColBaggageNickname = "baggageNickname"
	ColItemName        = "itemName"
	ColQuantity        = "quantity"
	ColPacked          = "packed"
)

// Header is the exported header row.
var Header = []string{
	ColBaggageID,
	ColItemIcon,
	ColBaggageType,
	ColBaggageNickname,
	ColItemName,
	ColQuantity,
	ColPacked,
}

// Row is one exported item together with its baggage.
type Row struct {
	BaggageID       string
	BaggageType     baggage.Type
	BaggageNickname string
	ItemIcon        string
	ItemName        string
	Quantity        int
	Packed          bool
}

// Record renders r in Header order.
func (r Row) Record() []string {
	return []string{
		r.BaggageID,
		r.ItemIcon,
		string(r.BaggageType),
		r.BaggageNickname,
		r.ItemName,
		strconv.Itoa(r.Quantity),
		strconv.FormatBool(r.Packed),
	}
}

// Export flattens c into one row per item, in baggage order and then item
// order. Baggage without items produce no rows.
func Export(c baggage.Collection) []Row {
	rows := make([]Row, 0)
	for _, b := range c {
		for _, it := range b.Items {
			rows = append(rows, Row{
				BaggageID:       b.ID,
				BaggageType:     b.Type,
				BaggageNickname: b.Nickname,
				ItemIcon:        it.Icon,
				ItemName:        it.Name,
				Quantity:        it.Quantity,
				Packed:          it.Packed,
			})
		}
	}
	return rows
}

// Import rebuilds a collection from decoded records. Records are grouped by
// baggageId in order of first appearance; records without a baggageId are
// skipped and records without an itemName only register their baggage.
func Import(records []map[string]string, ids baggage.IDGenerator) baggage.Collection {
	out := baggage.Collection{}
	index := make(map[string]int)

	for _, rec := range records {
		id := rec[ColBaggageID]
		if id == "" {
			continue
		}
		pos, ok := index[id]
		if !ok {
			b := baggage.New(id, baggage.TypeOrDefault(rec[ColBaggageType]))
			b.Nickname = rec[ColBaggageNickname]
			out = append(out, b)
			pos = len(out) - 1
			index[id] = pos
		}

		name := rec[ColItemName]
		if name == "" {
			continue
		}
		icon := rec[ColItemIcon]
		if icon == "" {
			icon = ImportIcon
		}
		out[pos].Items = append(out[pos].Items, baggage.Item{
			ID:       ids.ItemID(),
			Name:     name,
			Icon:     icon,
			Quantity: parseQuantity(rec[ColQuantity]),
			Packed:   rec[ColPacked] == "true",
		})
	}
	return out
}

// parseQuantity reads the leading integer of s ("3", " 2 pcs", "4.5" -> 4).
// Absent, unparseable or non-positive values become 1; values above
// baggage.MaxQuantity are capped.
func parseQuantity(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 1
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange) && n > 0, err == nil && n > baggage.MaxQuantity:
		return baggage.MaxQuantity
	case err != nil || n <= 0:
		return 1
	}
	return int(n)
}
