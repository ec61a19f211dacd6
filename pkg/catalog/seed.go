package catalog

import (
	"tableflip.dev/luggage/pkg/baggage"
)

type seedItem struct {
	name     string
	icon     string
	quantity int
	packed   bool
}

type seedBag struct {
	typ      baggage.Type
	nickname string
	items    []seedItem
}

var sample = []seedBag{{
	typ:      baggage.TypeCarryOn,
	nickname: "Weekend bag",
	items: []seedItem{
		{"T-Shirt", "PiTShirt", 2, true},
		{"Socks", "PiSock", 3, true},
		{"Underwear", "GiUnderwearShorts", 3, false},
		{"Toothbrush", baggage.DefaultIcon, 1, false},
		{"Phone charger", baggage.DefaultIcon, 1, true},
	},
}, {
	typ:      baggage.TypeMediumChecked,
	nickname: "Main suitcase",
	items: []seedItem{
		{"Dress Shirt", "PiShirtFolded", 2, true},
		{"Dress Pants", "PiPants", 1, true},
		{"Jacket", "GiMonclerJacket", 1, false},
		{"Shoes", "PiSneaker", 2, true},
		{"Belt", "PiBelt", 1, true},
		{"Swimming Suit", "PiSwimming", 1, false},
		{"Pajama Pants", "PiBed", 1, false},
	},
}, {
	typ:      baggage.TypeBackpack,
	nickname: "Daypack",
	items: []seedItem{
		{"Hat", "PiBaseballCap", 1, true},
		{"Water bottle", baggage.DefaultIcon, 1, false},
		{"Sunglasses", baggage.DefaultIcon, 1, true},
	},
}}

// Seed builds the sample luggage with fresh ids.
func Seed(ids baggage.IDGenerator) baggage.Collection {
	out := make(baggage.Collection, 0, len(sample))
	for _, sb := range sample {
		b := baggage.New(ids.BaggageID(), sb.typ)
		b.Nickname = sb.nickname
		for _, si := range sb.items {
			b.Items = append(b.Items, baggage.Item{
				ID:       ids.ItemID(),
				Name:     si.name,
				Icon:     si.icon,
				Quantity: si.quantity,
				Packed:   si.packed,
			})
		}
		out = append(out, b)
	}
	return out
}
