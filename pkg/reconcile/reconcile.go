// Package reconcile implements the item rules of a single baggage: adding,
// merging on pack, deleting and bulk toggling. Every function is pure and
// returns a new slice; inputs are never modified.
package reconcile

import (
	"errors"
	"fmt"

	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/effect"
)

// ErrInvalidQuantity is returned for quantity edits below one. Callers should
// delete the item instead.
var ErrInvalidQuantity = errors.New("reconcile: quantity must be at least 1")

// ErrQuantityTooLarge is returned for quantity edits above
// baggage.MaxQuantity.
var ErrQuantityTooLarge = fmt.Errorf("reconcile: quantity must be at most %d", baggage.MaxQuantity)

// AddItem adds one unit of name. An existing unpacked item with the same name
// is incremented; packed stacks are never incremented.
func AddItem(items []baggage.Item, name, icon string, ids baggage.IDGenerator) ([]baggage.Item, effect.Effect) {
	out := clone(items)
	for i := range out {
		if out[i].Name == name && !out[i].Packed {
			out[i].Quantity = baggage.AddQuantity(out[i].Quantity, 1)
			return out, effect.NewIncreasedQuantity(name, icon)
		}
	}
	out = append(out, baggage.Item{
		ID:       ids.ItemID(),
		Name:     name,
		Icon:     icon,
		Quantity: 1,
		Packed:   false,
	})
	return out, effect.NewAddedItem(name, icon)
}

// UpdateItem replaces the item with updated.ID. When the update packs a
// previously unpacked item and a packed sibling of the same name exists, the
// updated item is absorbed into that sibling instead.
func UpdateItem(items []baggage.Item, updated baggage.Item) ([]baggage.Item, effect.Effect) {
	idx := indexOf(items, updated.ID)
	if idx < 0 {
		return clone(items), effect.Effect{}
	}
	original := items[idx]

	if !original.Packed && updated.Packed {
		if sib := packedSibling(items, updated); sib >= 0 {
			out := make([]baggage.Item, 0, len(items)-1)
			quantity := 0
			for i, it := range items {
				switch i {
				case idx:
					continue
				case sib:
					it.Quantity = baggage.AddQuantity(it.Quantity, updated.Quantity)
					quantity = it.Quantity
				}
				out = append(out, it)
			}
			return out, effect.NewMerged(updated.Name, quantity)
		}
	}

	out := clone(items)
	out[idx] = updated
	return out, effect.Effect{}
}

// DeleteItem removes the item with itemID and returns it, or nil when no such
// item exists.
func DeleteItem(items []baggage.Item, itemID string) ([]baggage.Item, *baggage.Item) {
	idx := indexOf(items, itemID)
	if idx < 0 {
		return clone(items), nil
	}
	removed := items[idx]
	out := make([]baggage.Item, 0, len(items)-1)
	out = append(out, items[:idx]...)
	out = append(out, items[idx+1:]...)
	return out, &removed
}

// TogglePackAll unpacks everything when every item is packed and packs
// everything otherwise. Same-name stacks are not merged.
func TogglePackAll(items []baggage.Item) []baggage.Item {
	allPacked := true
	for _, it := range items {
		if !it.Packed {
			allPacked = false
			break
		}
	}
	out := clone(items)
	for i := range out {
		out[i].Packed = !allPacked
	}
	return out
}

// TogglePacked flips the packed flag of one item. Packing goes through
// UpdateItem so the merge rule applies.
func TogglePacked(items []baggage.Item, itemID string) ([]baggage.Item, effect.Effect) {
	idx := indexOf(items, itemID)
	if idx < 0 {
		return clone(items), effect.Effect{}
	}
	updated := items[idx]
	updated.Packed = !updated.Packed
	return UpdateItem(items, updated)
}

// CheckQuantity reports whether quantity can be stored on an item.
func CheckQuantity(quantity int) error {
	switch {
	case quantity <= 0:
		return ErrInvalidQuantity
	case quantity > baggage.MaxQuantity:
		return ErrQuantityTooLarge
	}
	return nil
}

// SetQuantity changes the quantity of one item. Values below one are
// rejected with ErrInvalidQuantity, values above baggage.MaxQuantity with
// ErrQuantityTooLarge.
func SetQuantity(items []baggage.Item, itemID string, quantity int) ([]baggage.Item, effect.Effect, error) {
	if err := CheckQuantity(quantity); err != nil {
		return clone(items), effect.Effect{}, err
	}
	idx := indexOf(items, itemID)
	if idx < 0 {
		return clone(items), effect.Effect{}, nil
	}
	updated := items[idx]
	updated.Quantity = quantity
	out, eff := UpdateItem(items, updated)
	return out, eff, nil
}

// SetNickname returns b with a new nickname.
func SetNickname(b baggage.Baggage, nickname string) baggage.Baggage {
	out := b.Clone()
	out.Nickname = nickname
	return out
}

// SetType returns b with a new type.
func SetType(b baggage.Baggage, t baggage.Type) baggage.Baggage {
	out := b.Clone()
	out.Type = t
	return out
}

func packedSibling(items []baggage.Item, updated baggage.Item) int {
	for i, it := range items {
		if it.ID != updated.ID && it.Name == updated.Name && it.Packed {
			return i
		}
	}
	return -1
}

func indexOf(items []baggage.Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func clone(items []baggage.Item) []baggage.Item {
	out := make([]baggage.Item, len(items))
	copy(out, items)
	return out
}
