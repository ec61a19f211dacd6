package get

import (
	"bytes"
	"context"
	"encoding/json"
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

func seeded(t *testing.T) *app.Service {
	t.Helper()
	ctx := context.Background()
	svc := &app.Service{
		Persistence: persist.New(store.NewMemory(nil), store.NewMemory(nil), nil),
		IDs:         &baggage.SequenceIDs{},
	}
	require.NoError(t, svc.Open(ctx))

	b, err := svc.AddBaggage(ctx, baggage.TypeCarryOn)
	require.NoError(t, err)
	_, err = svc.SetNickname(ctx, b.ID, "Weekend bag")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, b.ID, "Socks", "PiSock")
	require.NoError(t, err)

	b2, err := svc.AddBaggage(ctx, baggage.TypeBackpack)
	require.NoError(t, err)
	_, err = svc.SetNickname(ctx, b2.ID, "Daypack")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, b2.ID, "Snacks", "")
	require.NoError(t, err)
	require.NoError(t, svc.SetCollapsed(ctx, b2.ID, true))
	return svc
}

func TestGetPretty(t *testing.T) {
	var buf bytes.Buffer
	g := Get{Out: &buf, Service: seeded(t)}
	require.NoError(t, g.Do(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "▾ carry on · Weekend bag  0/1 packed")
	assert.Contains(t, out, "Socks")
	assert.Contains(t, out, "▸ backpack · Daypack")
	assert.NotContains(t, out, "Snacks")
}

func TestGetOneBaggageIgnoresCollapse(t *testing.T) {
	var buf bytes.Buffer
	g := Get{Baggage: "daypack", Out: &buf, Service: seeded(t)}
	require.NoError(t, g.Do(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Snacks")
	assert.NotContains(t, out, "Weekend bag")
}

func TestGetJSON(t *testing.T) {
	var buf bytes.Buffer
	g := Get{JSON: true, Out: &buf, Service: seeded(t)}
	require.NoError(t, g.Do(context.Background()))

	var c baggage.Collection
	require.NoError(t, json.Unmarshal(buf.Bytes(), &c))
	require.Len(t, c, 2)
	assert.Equal(t, "Weekend bag", c[0].Nickname)
	assert.Equal(t, "Snacks", c[1].Items[0].Name)
}

func TestGetSummary(t *testing.T) {
	var buf bytes.Buffer
	g := Get{Summary: true, Out: &buf, Service: seeded(t)}
	require.NoError(t, g.Do(context.Background()))
	assert.Contains(t, buf.String(), "Daypack")
}

func TestGetErrors(t *testing.T) {
	assert.Error(t, (&Get{}).Do(context.Background()))

	g := Get{Baggage: "Trunk", Out: &bytes.Buffer{}, Service: seeded(t)}
	assert.ErrorIs(t, g.Do(context.Background()), app.ErrNotFound)
}
