// Package catalog holds the quick-add items and the sample luggage.
package catalog

import (
	"strings"

	"tableflip.dev/luggage/pkg/baggage"
)

// Entry is a quick-add item.
type Entry struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Emoji string `json:"emoji"`
}

var defaultItems = []Entry{
	{Name: "Sport Pants", Icon: "PiPants", Emoji: "👖"},
	{Name: "Dress Pants", Icon: "PiPants", Emoji: "👖"},
	{Name: "T-Shirt", Icon: "PiTShirt", Emoji: "👕"},
	{Name: "Polo Shirt", Icon: "PiTShirt", Emoji: "👕"},
	{Name: "Dress Shirt", Icon: "PiShirtFolded", Emoji: "👔"},
	{Name: "Socks", Icon: "PiSock", Emoji: "🧦"},
	{Name: "Underwear", Icon: "GiUnderwearShorts", Emoji: "🩲"},
	{Name: "Pajama Pants", Icon: "PiBed", Emoji: "🛏️"},
	{Name: "Pajama Shirt", Icon: "PiBed", Emoji: "🛏️"},
	{Name: "Hat", Icon: "PiBaseballCap", Emoji: "🧢"},
	{Name: "Gloves", Icon: "PiHand", Emoji: "🧤"},
	{Name: "Soccer Jersey", Icon: "PiSoccerBall", Emoji: "⚽"},
	{Name: "Swimming Suit", Icon: "PiSwimming", Emoji: "🏊"},
	{Name: "Shoes", Icon: "PiSneaker", Emoji: "👟"},
	{Name: "Belt", Icon: "PiBelt", Emoji: "👖"},
	{Name: "Jacket", Icon: "GiMonclerJacket", Emoji: "🧥"},
	{Name: "Shorts", Icon: "GiShorts", Emoji: "🩳"},
}

// FallbackEmoji is shown for icons without a known emoji.
const FallbackEmoji = "📦"

var emojis = func() map[string]string {
	m := map[string]string{
		baggage.DefaultIcon: FallbackEmoji,
	}
	for _, e := range defaultItems {
		if _, ok := m[e.Icon]; !ok {
			m[e.Icon] = e.Emoji
		}
	}
	return m
}()

// DefaultItems returns a copy of the quick-add catalog.
func DefaultItems() []Entry {
	out := make([]Entry, len(defaultItems))
	copy(out, defaultItems)
	return out
}

// Lookup finds a catalog entry by name, ignoring case and surrounding space.
func Lookup(name string) (Entry, bool) {
	name = strings.TrimSpace(name)
	for _, e := range defaultItems {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entry{}, false
}

// IconFor returns the catalog icon for name, or the default icon.
func IconFor(name string) string {
	if e, ok := Lookup(name); ok {
		return e.Icon
	}
	return baggage.DefaultIcon
}

// Emoji renders an icon key for the terminal.
func Emoji(icon string) string {
	if e, ok := emojis[icon]; ok {
		return e
	}
	return FallbackEmoji
}
