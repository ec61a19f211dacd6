package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/luggage/pkg/baggage"
)

func TestDefaultItems(t *testing.T) {
	items := DefaultItems()
	require.Len(t, items, 17)
	assert.Equal(t, Entry{Name: "Socks", Icon: "PiSock", Emoji: "🧦"}, items[5])

	items[0].Name = "changed"
	assert.Equal(t, "Sport Pants", DefaultItems()[0].Name)
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("  socks ")
	require.True(t, ok)
	assert.Equal(t, "PiSock", e.Icon)

	_, ok = Lookup("Toothbrush")
	assert.False(t, ok)

	assert.Equal(t, "GiMonclerJacket", IconFor("jacket"))
	assert.Equal(t, baggage.DefaultIcon, IconFor("Toothbrush"))
}

func TestEmoji(t *testing.T) {
	assert.Equal(t, "👕", Emoji("PiTShirt"))
	assert.Equal(t, "👖", Emoji("PiPants"))
	assert.Equal(t, FallbackEmoji, Emoji(baggage.DefaultIcon))
	assert.Equal(t, FallbackEmoji, Emoji("cube"))
	assert.Equal(t, FallbackEmoji, Emoji(""))
}

func TestSeed(t *testing.T) {
	c := Seed(&baggage.SequenceIDs{})
	require.Len(t, c, 3)
	assert.Equal(t, "Weekend bag", c[0].Nickname)
	assert.Equal(t, baggage.TypeMediumChecked, c[1].Type)
	assert.Equal(t, "Daypack", c[2].Nickname)

	packed, total := c[0].Counts()
	assert.Equal(t, 6, packed)
	assert.Equal(t, 10, total)

	// The sample is itself a valid stored collection.
	seen := map[string]bool{}
	for _, b := range c {
		assert.False(t, seen[b.ID])
		seen[b.ID] = true
		for _, it := range b.Items {
			assert.False(t, seen[it.ID])
			seen[it.ID] = true
			assert.GreaterOrEqual(t, it.Quantity, 1)
		}
	}
}
