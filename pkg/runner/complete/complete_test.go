package complete

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/persist"
	"tableflip.dev/luggage/pkg/store"
)

func init() {
	color.NoColor = true
}

func setup(t *testing.T) (*app.Service, string) {
	t.Helper()
	ctx := context.Background()
	svc := &app.Service{
		Persistence: persist.New(store.NewMemory(nil), store.NewMemory(nil), nil),
		IDs:         &baggage.SequenceIDs{},
	}
	require.NoError(t, svc.Open(ctx))
	b, err := svc.AddBaggage(ctx, baggage.TypeCarryOn)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, b.ID, "Socks", "PiSock")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, b.ID, "Charger", "")
	require.NoError(t, err)
	return svc, b.ID
}

func TestPackAndUnpack(t *testing.T) {
	ctx := context.Background()
	svc, id := setup(t)

	var buf bytes.Buffer
	require.NoError(t, (&Pack{Baggage: id, Item: "socks", Packed: true, Out: &buf, Service: svc}).Do(ctx))
	assert.Contains(t, buf.String(), "[x] 🧦 Socks")
	b, _ := svc.Baggage(id)
	assert.True(t, b.Items[0].Packed)

	// Already packed is a no-op.
	require.NoError(t, (&Pack{Baggage: id, Item: "Socks", Packed: true, Out: &bytes.Buffer{}, Service: svc}).Do(ctx))
	b, _ = svc.Baggage(id)
	assert.True(t, b.Items[0].Packed)

	require.NoError(t, (&Pack{Baggage: id, Item: "Socks", Packed: false, Out: &bytes.Buffer{}, Service: svc}).Do(ctx))
	b, _ = svc.Baggage(id)
	assert.False(t, b.Items[0].Packed)
}

func TestPackAllToggles(t *testing.T) {
	ctx := context.Background()
	svc, id := setup(t)

	require.NoError(t, (&PackAll{Baggage: id, Out: &bytes.Buffer{}, Service: svc}).Do(ctx))
	b, _ := svc.Baggage(id)
	packed, total := b.Counts()
	assert.Equal(t, total, packed)

	require.NoError(t, (&PackAll{Baggage: id, Out: &bytes.Buffer{}, Service: svc}).Do(ctx))
	b, _ = svc.Baggage(id)
	packed, _ = b.Counts()
	assert.Zero(t, packed)
}

func TestPackUnknownItem(t *testing.T) {
	svc, id := setup(t)
	err := (&Pack{Baggage: id, Item: "Passport", Packed: true, Out: &bytes.Buffer{}, Service: svc}).Do(context.Background())
	assert.ErrorIs(t, err, app.ErrNotFound)
}
