package transfer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/persist"
	"tableflip.dev/luggage/pkg/store"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	svc := &app.Service{
		Persistence: persist.New(store.NewMemory(nil), store.NewMemory(nil), nil),
		IDs:         &baggage.SequenceIDs{},
	}
	require.NoError(t, svc.Open(context.Background()))
	return svc
}

func TestExportImportStdio(t *testing.T) {
	ctx := context.Background()
	src := newService(t)
	b, err := src.AddBaggage(ctx, baggage.TypeBackpack)
	require.NoError(t, err)
	_, err = src.SetNickname(ctx, b.ID, "Daypack")
	require.NoError(t, err)
	_, err = src.AddItem(ctx, b.ID, "Water bottle", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, (&Export{File: Stdio, Stdout: &buf, Service: src}).Do(ctx))
	assert.True(t, strings.HasPrefix(buf.String(), "baggageId,"))
	assert.Contains(t, buf.String(), "Water bottle")

	dst := newService(t)
	require.NoError(t, (&Import{File: Stdio, Stdin: &buf, Service: dst}).Do(ctx))

	c := dst.Collection()
	require.Len(t, c, 1)
	assert.Equal(t, b.ID, c[0].ID)
	assert.Equal(t, "Daypack", c[0].Nickname)
	assert.Equal(t, baggage.TypeBackpack, c[0].Type)
	require.Len(t, c[0].Items, 1)
	assert.Equal(t, "Water bottle", c[0].Items[0].Name)
}

func TestExportImportFile(t *testing.T) {
	ctx := context.Background()
	src := newService(t)
	b, err := src.AddBaggage(ctx, baggage.TypeCarryOn)
	require.NoError(t, err)
	_, err = src.AddItem(ctx, b.ID, "Socks", "PiSock")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "trip.csv")
	require.NoError(t, (&Export{File: file, Service: src}).Do(ctx))
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Socks")

	dst := newService(t)
	require.NoError(t, (&Import{File: file, Service: dst}).Do(ctx))
	require.Len(t, dst.Collection(), 1)
	assert.Equal(t, "PiSock", dst.Collection()[0].Items[0].Icon)
}

func TestExportReplacesExistingFile(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	b, err := svc.AddBaggage(ctx, baggage.TypeCarryOn)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, b.ID, "Socks", "PiSock")
	require.NoError(t, err)

	dir := t.TempDir()
	file := filepath.Join(dir, "trip.csv")
	require.NoError(t, os.WriteFile(file, []byte("old export that is longer than the new one\n"+strings.Repeat("x", 512)), 0o644))

	require.NoError(t, (&Export{File: file, Service: svc}).Do(ctx))
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "baggageId,"))
	assert.Contains(t, string(data), "Socks")
	assert.NotContains(t, string(data), "old export")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "trip.csv", entries[0].Name())
}

func TestWriteFileFailureKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "trip.csv")
	require.NoError(t, os.WriteFile(file, []byte("previous export\n"), 0o644))

	boom := errors.New("encode failed")
	err := writeFile(file, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "previous export\n", string(data))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWriteFileReportsDestinationName(t *testing.T) {
	file := filepath.Join(t.TempDir(), "trip.csv")
	var got string
	require.NoError(t, writeFile(file, func(w io.Writer) error {
		got = w.(interface{ Name() string }).Name()
		return nil
	}))
	assert.Equal(t, file, got)
}

func TestImportMissingFile(t *testing.T) {
	svc := newService(t)
	err := (&Import{File: filepath.Join(t.TempDir(), "nope.csv"), Service: svc}).Do(context.Background())
	assert.Error(t, err)
}

func TestImportBadInputKeepsCollection(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	_, err := svc.AddBaggage(ctx, baggage.TypeCarryOn)
	require.NoError(t, err)

	err = (&Import{File: Stdio, Stdin: strings.NewReader(""), Service: svc}).Do(ctx)
	assert.Error(t, err)
	assert.Len(t, svc.Collection(), 1)
}

func TestImportUnreadableRecordKeepsCollection(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	b, err := svc.AddBaggage(ctx, baggage.TypeCarryOn)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, b.ID, "Socks", "PiSock")
	require.NoError(t, err)

	in := io.MultiReader(
		strings.NewReader("baggageId,itemIcon,baggageType,baggageNickname,itemName,quantity,packed\n"+
			"9,,backpack,New,Hat,1,false\n9,,backpack,New,Be"),
		iotest.ErrReader(errors.New("disk read failed")),
	)
	err = (&Import{File: Stdio, Stdin: in, Service: svc}).Do(ctx)
	assert.Error(t, err)

	c := svc.Collection()
	require.Len(t, c, 1)
	assert.Equal(t, b.ID, c[0].ID)
	require.Len(t, c[0].Items, 1)
	assert.Equal(t, "Socks", c[0].Items[0].Name)
}

func TestNoService(t *testing.T) {
	assert.Error(t, (&Export{}).Do(context.Background()))
	assert.Error(t, (&Import{}).Do(context.Background()))
}
