package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/effect"
	"tableflip.dev/luggage/pkg/persist"
	"tableflip.dev/luggage/pkg/reconcile"
	"tableflip.dev/luggage/pkg/store"
)

type fixture struct {
	svc     *Service
	durable *store.Memory
	session *store.Memory
	effects *effect.Recorder
	prompts []string
}

func newFixture(t *testing.T, seed map[string]string) *fixture {
	t.Helper()
	f := &fixture{
		durable: store.NewMemory(seed),
		session: store.NewMemory(nil),
		effects: &effect.Recorder{},
	}
	f.svc = &Service{
		Persistence: persist.New(f.durable, f.session, nil),
		IDs:         &baggage.SequenceIDs{},
		Sink:        f.effects,
		Confirmer: ConfirmFunc(func(_ context.Context, prompt string) (bool, error) {
			f.prompts = append(f.prompts, prompt)
			return true, nil
		}),
	}
	require.NoError(t, f.svc.Open(context.Background()))
	return f
}

func (f *fixture) stored(t *testing.T) baggage.Collection {
	t.Helper()
	raw, ok, err := f.durable.Get(context.Background(), persist.CollectionKey)
	require.NoError(t, err)
	require.True(t, ok, "collection not stored")
	c, err := baggage.ValidateCollection([]byte(raw))
	require.NoError(t, err)
	return c
}

func (f *fixture) storedCollapsed(t *testing.T) baggage.CollapseMap {
	t.Helper()
	raw, ok, err := f.session.Get(context.Background(), persist.CollapsedKey)
	require.NoError(t, err)
	require.True(t, ok, "collapse map not stored")
	m := baggage.CollapseMap{}
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

// reopen loads a fresh service from the fixture's stores.
func (f *fixture) reopen(t *testing.T) *Service {
	t.Helper()
	svc := &Service{Persistence: persist.New(f.durable, f.session, nil)}
	require.NoError(t, svc.Open(context.Background()))
	return svc
}

func TestMutationBeforeOpen(t *testing.T) {
	svc := &Service{Persistence: persist.New(store.NewMemory(nil), store.NewMemory(nil), nil)}
	_, err := svc.AddBaggage(context.Background(), baggage.TypeBackpack)
	assert.ErrorIs(t, err, ErrNotOpen)
	_, err = svc.AddItem(context.Background(), "x", "Socks", "")
	assert.ErrorIs(t, err, ErrNotOpen)
}

func TestOpenDoesNotOverwriteStoredData(t *testing.T) {
	stored := `[{"id":"1","type":"backpack","nickname":"Daypack","items":[]}]`
	f := newFixture(t, map[string]string{persist.CollectionKey: stored})

	raw, _, _ := f.durable.Get(context.Background(), persist.CollectionKey)
	assert.Equal(t, stored, raw)
	c := f.svc.Collection()
	require.Len(t, c, 1)
	assert.Equal(t, "Daypack", c[0].Nickname)
}

func TestOpenPrunesCollapseMap(t *testing.T) {
	durable := store.NewMemory(map[string]string{
		persist.CollectionKey: `[{"id":"1","type":"backpack","nickname":"","items":[]}]`,
	})
	session := store.NewMemory(map[string]string{persist.CollapsedKey: `{"1":true,"gone":true}`})
	svc := &Service{Persistence: persist.New(durable, session, nil)}
	require.NoError(t, svc.Open(context.Background()))
	assert.Equal(t, baggage.CollapseMap{"1": true}, svc.Collapsed())
}

func TestAddBaggage(t *testing.T) {
	f := newFixture(t, nil)
	b, err := f.svc.AddBaggage(context.Background(), baggage.TypeCarryOn)
	require.NoError(t, err)

	assert.Equal(t, "bag-1", b.ID)
	assert.Equal(t, "", b.Nickname)
	assert.Empty(t, b.Items)
	assert.Equal(t, baggage.CollapseMap{"bag-1": false}, f.svc.Collapsed())
	assert.Equal(t, baggage.CollapseMap{"bag-1": false}, f.storedCollapsed(t))
	require.Len(t, f.stored(t), 1)
	assert.Equal(t, "Added new baggage: carry on", f.effects.Last().Message())

	_, err = f.svc.AddBaggage(context.Background(), baggage.Type("trunk"))
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestAddItemTwiceIncrements(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)

	_, err := f.svc.AddItem(ctx, b.ID, "Socks", "PiSock")
	require.NoError(t, err)
	got, err := f.svc.AddItem(ctx, b.ID, "  Socks ", "PiSock")
	require.NoError(t, err)

	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, []effect.Kind{effect.AddedBaggage, effect.AddedItem, effect.IncreasedQuantity}, f.effects.Kinds())
	assert.Equal(t, 2, f.stored(t)[0].Items[0].Quantity)
}

func TestAddItemValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)

	_, err := f.svc.AddItem(ctx, b.ID, "   ", "PiSock")
	assert.ErrorIs(t, err, ErrBlankName)

	got, err := f.svc.AddItem(ctx, b.ID, "Toothbrush", "")
	require.NoError(t, err)
	assert.Equal(t, baggage.DefaultIcon, got.Items[0].Icon)

	_, err = f.svc.AddItem(ctx, "missing", "Socks", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPackMergesIntoPackedSibling(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[string]string{persist.CollectionKey: `[{"id":"b","type":"carry-on","nickname":"","items":[
		{"id":"1","name":"Socks","icon":"PiSock","quantity":5,"packed":true},
		{"id":"2","name":"Socks","icon":"PiSock","quantity":1,"packed":false}]}]`})

	got, err := f.svc.TogglePacked(ctx, "b", "2")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, baggage.Item{ID: "1", Name: "Socks", Icon: "PiSock", Quantity: 6, Packed: true}, got.Items[0])
	assert.Equal(t, "Merged 'Socks' (now 6)", f.effects.Last().Message())
	assert.Len(t, f.stored(t)[0].Items, 1)
}

func TestItemOperationsUnknownItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)

	_, err := f.svc.TogglePacked(ctx, b.ID, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.svc.SetQuantity(ctx, b.ID, "nope", 3)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.svc.DeleteItem(ctx, b.ID, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.svc.UpdateItem(ctx, b.ID, baggage.Item{ID: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)
	b, _ = f.svc.AddItem(ctx, b.ID, "Socks", "PiSock")
	itemID := b.Items[0].ID

	got, err := f.svc.SetQuantity(ctx, b.ID, itemID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Items[0].Quantity)

	_, err = f.svc.SetQuantity(ctx, b.ID, itemID, 0)
	assert.ErrorIs(t, err, reconcile.ErrInvalidQuantity)
	assert.Equal(t, 4, f.stored(t)[0].Items[0].Quantity)
}

func TestLargestQuantitySurvivesReopen(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)
	b, _ = f.svc.AddItem(ctx, b.ID, "Socks", "PiSock")
	b, _ = f.svc.AddItem(ctx, b.ID, "Hat", "")
	socks := b.Items[0]

	_, err := f.svc.SetQuantity(ctx, b.ID, socks.ID, baggage.MaxQuantity)
	require.NoError(t, err)
	_, err = f.svc.SetQuantity(ctx, b.ID, socks.ID, baggage.MaxQuantity+1)
	assert.ErrorIs(t, err, reconcile.ErrQuantityTooLarge)
	socks.Quantity = baggage.MaxQuantity + 1
	_, err = f.svc.UpdateItem(ctx, b.ID, socks)
	assert.ErrorIs(t, err, reconcile.ErrQuantityTooLarge)
	got, err := f.svc.AddItem(ctx, b.ID, "Socks", "PiSock")
	require.NoError(t, err)
	assert.Equal(t, baggage.MaxQuantity, got.Items[0].Quantity)

	c := f.reopen(t).Collection()
	require.Len(t, c, 1)
	require.Len(t, c[0].Items, 2)
	assert.Equal(t, baggage.MaxQuantity, c[0].Items[0].Quantity)
	assert.Equal(t, "Hat", c[0].Items[1].Name)
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)
	b, _ = f.svc.AddItem(ctx, b.ID, "Socks", "PiSock")

	it := b.Items[0]
	it.Icon = "PiCube"
	got, err := f.svc.UpdateItem(ctx, b.ID, it)
	require.NoError(t, err)
	assert.Equal(t, "PiCube", got.Items[0].Icon)
}

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)
	b, _ = f.svc.AddItem(ctx, b.ID, "Socks", "PiSock")

	got, err := f.svc.DeleteItem(ctx, b.ID, b.Items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
	assert.Equal(t, "Removed item: 'Socks'", f.effects.Last().Message())
}

func TestTogglePackAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)
	f.svc.AddItem(ctx, b.ID, "Socks", "PiSock")
	f.svc.AddItem(ctx, b.ID, "Hat", "PiBaseballCap")

	got, err := f.svc.TogglePackAll(ctx, b.ID)
	require.NoError(t, err)
	for _, it := range got.Items {
		assert.True(t, it.Packed)
	}
	got, err = f.svc.TogglePackAll(ctx, b.ID)
	require.NoError(t, err)
	for _, it := range got.Items {
		assert.False(t, it.Packed)
	}
}

func TestNicknameAndType(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)

	got, err := f.svc.SetNickname(ctx, b.ID, "Daypack")
	require.NoError(t, err)
	assert.Equal(t, "Daypack", got.Nickname)

	got, err = f.svc.SetType(ctx, b.ID, baggage.TypeLargeChecked)
	require.NoError(t, err)
	assert.Equal(t, baggage.TypeLargeChecked, got.Type)
	assert.Equal(t, baggage.TypeLargeChecked, f.stored(t)[0].Type)

	_, err = f.svc.SetType(ctx, b.ID, "trunk")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestUpdateBaggage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)
	b.Nickname = "Renamed"
	require.NoError(t, f.svc.UpdateBaggage(ctx, b))
	assert.Equal(t, "Renamed", f.stored(t)[0].Nickname)

	assert.ErrorIs(t, f.svc.UpdateBaggage(ctx, baggage.Baggage{ID: "nope"}), ErrNotFound)
}

func TestDeleteEmptyBaggageSkipsConfirmation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)

	ok, err := f.svc.DeleteBaggage(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, f.prompts)
	assert.Empty(t, f.svc.Collection())
	assert.Empty(t, f.svc.Collapsed())
}

func TestDeleteBaggageDeclined(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)
	f.svc.AddItem(ctx, b.ID, "Socks", "PiSock")
	f.svc.Confirmer = ConfirmFunc(func(_ context.Context, prompt string) (bool, error) {
		f.prompts = append(f.prompts, prompt)
		return false, nil
	})

	ok, err := f.svc.DeleteBaggage(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"Are you sure you want to delete this baggage? This action cannot be undone."}, f.prompts)
	assert.Len(t, f.svc.Collection(), 1)
}

func TestDeleteBaggageConfirmed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)
	f.svc.SetNickname(ctx, b.ID, "Daypack")
	f.svc.AddItem(ctx, b.ID, "Socks", "PiSock")

	ok, err := f.svc.DeleteBaggage(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{DeletePrompt("Daypack")}, f.prompts)
	assert.Empty(t, f.stored(t))
	assert.Empty(t, f.storedCollapsed(t))
	assert.Equal(t, "Baggage deleted: Daypack", f.effects.Last().Message())
}

func TestDeleteBaggageConfirmError(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)
	f.svc.AddItem(ctx, b.ID, "Socks", "PiSock")
	boom := errors.New("no terminal")
	f.svc.Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return false, boom })

	_, err := f.svc.DeleteBaggage(ctx, b.ID)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, f.svc.Collection(), 1)
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	f.svc.AddBaggage(ctx, baggage.TypeBackpack)
	f.svc.AddBaggage(ctx, baggage.TypeCarryOn)

	ok, err := f.svc.ClearAll(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{ClearPrompt}, f.prompts)
	assert.Empty(t, f.svc.Collection())
	assert.False(t, f.durable.Has(persist.CollectionKey), "collection is erased, not overwritten")
	assert.Empty(t, f.storedCollapsed(t))
	assert.Equal(t, effect.ClearedAll, f.effects.Last().Kind)
}

func TestClearAllDeclined(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	f.svc.AddBaggage(ctx, baggage.TypeBackpack)
	f.svc.Confirmer = NeverConfirm

	ok, err := f.svc.ClearAll(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, f.svc.Collection(), 1)
}

func TestCollapse(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	a, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeCarryOn)

	require.NoError(t, f.svc.SetAllCollapsed(ctx, true))
	assert.Equal(t, baggage.CollapseMap{a.ID: true, b.ID: true}, f.storedCollapsed(t))

	v, err := f.svc.ToggleCollapsed(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, v)

	require.NoError(t, f.svc.SetCollapsed(ctx, b.ID, false))
	assert.Equal(t, baggage.CollapseMap{a.ID: false, b.ID: false}, f.svc.Collapsed())

	assert.ErrorIs(t, f.svc.SetCollapsed(ctx, "nope", true), ErrNotFound)
}

func TestPersistenceFailureDoesNotAbortMutation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	f.durable.FailWrites = errors.New("disk full")

	b, err := f.svc.AddBaggage(ctx, baggage.TypeBackpack)
	require.NoError(t, err)
	assert.Len(t, f.svc.Collection(), 1)
	assert.Equal(t, b.ID, f.svc.Collection()[0].ID)
	assert.Contains(t, f.effects.Kinds(), effect.Error)
	assert.Equal(t, effect.AddedBaggage, f.effects.Last().Kind)
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	_, err := f.svc.Seed(ctx)
	require.NoError(t, err)
	want := f.svc.Collection()

	var buf bytes.Buffer
	n, err := f.svc.Export(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 15, n)
	assert.Equal(t, effect.Exported, f.effects.Last().Kind)

	g := newFixture(t, nil)
	g.svc.IDs = &baggage.SequenceIDs{Prefix: "new-"}
	require.NoError(t, g.svc.Import(ctx, &buf))
	got := g.svc.Collection()

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Type, got[i].Type)
		assert.Equal(t, want[i].Nickname, got[i].Nickname)
		require.Len(t, got[i].Items, len(want[i].Items))
		for j, w := range want[i].Items {
			gi := got[i].Items[j]
			assert.Equal(t, []interface{}{w.Name, w.Icon, w.Quantity, w.Packed},
				[]interface{}{gi.Name, gi.Icon, gi.Quantity, gi.Packed})
		}
	}
	assert.False(t, g.svc.Collapsed().AnyCollapsed())
	assert.Len(t, g.svc.Collapsed(), 3)
	assert.Equal(t, effect.Imported, g.effects.Last().Kind)
	assert.Len(t, g.stored(t), 3)
}

func TestImportReplacesCollection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	old, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)
	require.NoError(t, f.svc.SetCollapsed(ctx, old.ID, true))

	csv := "baggageId,itemIcon,baggageType,baggageNickname,itemName,quantity,packed\n" +
		"1,,carry-on,X,Shirt,2,true\n"
	require.NoError(t, f.svc.Import(ctx, strings.NewReader(csv)))

	got := f.svc.Collection()
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, baggage.TypeCarryOn, got[0].Type)
	assert.Equal(t, "X", got[0].Nickname)
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, "cube", got[0].Items[0].Icon)
	assert.Equal(t, 2, got[0].Items[0].Quantity)
	assert.True(t, got[0].Items[0].Packed)
	assert.Equal(t, baggage.CollapseMap{"1": false}, f.svc.Collapsed())
}

func TestImportHugeQuantitySurvivesReopen(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	csv := "baggageId,itemIcon,baggageType,baggageNickname,itemName,quantity,packed\n" +
		"1,,carry-on,X,Shirt,9999999999,false\n" +
		"1,,carry-on,X,Socks,2,true\n"
	require.NoError(t, f.svc.Import(ctx, strings.NewReader(csv)))
	assert.Equal(t, baggage.MaxQuantity, f.svc.Collection()[0].Items[0].Quantity)

	c := f.reopen(t).Collection()
	require.Len(t, c, 1)
	require.Len(t, c[0].Items, 2)
	assert.Equal(t, baggage.MaxQuantity, c[0].Items[0].Quantity)
	assert.Equal(t, 2, c[0].Items[1].Quantity)
}

func TestImportDecodeFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	f.svc.AddBaggage(ctx, baggage.TypeBackpack)

	err := f.svc.Import(ctx, strings.NewReader(""))
	require.Error(t, err)
	assert.Len(t, f.svc.Collection(), 1)
	assert.Equal(t, effect.Error, f.effects.Last().Kind)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	c, err := f.svc.Seed(ctx)
	require.NoError(t, err)
	assert.Len(t, c, 3)
	assert.Len(t, f.stored(t), 3)

	_, err = f.svc.Seed(ctx)
	assert.ErrorIs(t, err, ErrNotEmpty)
}

func TestSnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	b, _ := f.svc.AddBaggage(ctx, baggage.TypeBackpack)
	f.svc.AddItem(ctx, b.ID, "Socks", "PiSock")

	c := f.svc.Collection()
	c[0].Items[0].Quantity = 99
	m := f.svc.Collapsed()
	m[b.ID] = true

	got, err := f.svc.Baggage(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Items[0].Quantity)
	assert.False(t, f.svc.Collapsed()[b.ID])

	_, err = f.svc.Baggage("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
