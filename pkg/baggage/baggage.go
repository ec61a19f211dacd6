package baggage

import "math"

// DefaultIcon is used when an item has no icon of its own.
const DefaultIcon = "PiCube"

// MaxQuantity is the largest quantity an item can hold. Stored data with a
// larger quantity is rejected as malformed, so every write path caps at it.
const MaxQuantity = math.MaxInt32

// AddQuantity returns a+b capped at MaxQuantity.
func AddQuantity(a, b int) int {
	if b > MaxQuantity-a {
		return MaxQuantity
	}
	return a + b
}

// Item is a single line on a baggage checklist.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Quantity int    `json:"quantity"`
	Packed   bool   `json:"packed"`
}

// Baggage is a container and the items that belong to it. Items keep their
// insertion order.
type Baggage struct {
	ID       string `json:"id"`
	Type     Type   `json:"type"`
	Nickname string `json:"nickname"`
	Items    []Item `json:"items"`
}

// New returns an empty baggage of the given type.
func New(id string, t Type) Baggage {
	return Baggage{
		ID:    id,
		Type:  t,
		Items: []Item{},
	}
}

// Find returns the index of the item with the given id.
func (b Baggage) Find(itemID string) (int, bool) {
	for i := range b.Items {
		if b.Items[i].ID == itemID {
			return i, true
		}
	}
	return -1, false
}

// DisplayName is the nickname when one is set, otherwise a generic label.
func (b Baggage) DisplayName() string {
	if b.Nickname != "" {
		return b.Nickname
	}
	return "this baggage"
}

// Counts returns the number of packed units and the total number of units.
func (b Baggage) Counts() (packed, total int) {
	for _, it := range b.Items {
		total += it.Quantity
		if it.Packed {
			packed += it.Quantity
		}
	}
	return packed, total
}

// Clone returns a deep copy of b.
func (b Baggage) Clone() Baggage {
	cp := b
	cp.Items = make([]Item, len(b.Items))
	copy(cp.Items, b.Items)
	return cp
}

// Collection is the ordered set of baggage owned by the application.
type Collection []Baggage

// Find returns the index of the baggage with the given id.
func (c Collection) Find(id string) (int, bool) {
	for i := range c {
		if c[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Clone returns a deep copy of c. A nil collection clones to an empty one.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for i := range c {
		out[i] = c[i].Clone()
	}
	return out
}

// CollapseMap records which baggage cards are collapsed, keyed by baggage id.
type CollapseMap map[string]bool

// Clone returns a copy of m.
func (m CollapseMap) Clone() CollapseMap {
	out := make(CollapseMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Prune drops entries whose ids are not present in c.
func (m CollapseMap) Prune(c Collection) CollapseMap {
	out := make(CollapseMap, len(m))
	for _, b := range c {
		if v, ok := m[b.ID]; ok {
			out[b.ID] = v
		}
	}
	return out
}

// AnyCollapsed reports whether at least one entry is collapsed.
func (m CollapseMap) AnyCollapsed() bool {
	for _, v := range m {
		if v {
			return true
		}
	}
	return false
}
