package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/luggage/pkg/baggage"
)

func init() {
	color.NoColor = true
}

func sandbox(t *testing.T) {
	t.Helper()
	t.Setenv("LUGGAGE_CONFIG_PATH", t.TempDir())
	t.Setenv("LUGGAGE_PATH", t.TempDir())
	t.Setenv("LUGGAGE_SESSION_BACKEND", "memory")
	t.Setenv("LUGGAGE_SESSION", "test")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--quiet"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBagAndItemFlow(t *testing.T) {
	sandbox(t)

	out, err := run(t, "bag", "add", "backpack", "--nickname", "Daypack")
	require.NoError(t, err)
	assert.Contains(t, out, "backpack · Daypack")

	out, err = run(t, "item", "add", "daypack", "Water", "bottle")
	require.NoError(t, err)
	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "Water bottle")

	_, err = run(t, "item", "qty", "Daypack", "Water", "bottle", "3")
	require.NoError(t, err)

	out, err = run(t, "item", "pack", "Daypack", "Water bottle")
	require.NoError(t, err)
	assert.Contains(t, out, "3/3 packed")

	out, err = run(t, "list", "--json")
	require.NoError(t, err)
	var c baggage.Collection
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	require.Len(t, c, 1)
	require.Len(t, c[0].Items, 1)
	assert.Equal(t, 3, c[0].Items[0].Quantity)
	assert.True(t, c[0].Items[0].Packed)

	out, err = run(t, "export", "--file", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Water bottle,3,true")
}

func TestItemQuantityRejectsText(t *testing.T) {
	sandbox(t)
	_, err := run(t, "bag", "add")
	require.NoError(t, err)

	_, err = run(t, "item", "qty", "x", "Socks", "lots")
	assert.Error(t, err)
}

func TestBagDeleteNeedsConfirmation(t *testing.T) {
	sandbox(t)
	_, err := run(t, "bag", "add", "carry-on", "--nickname", "Cabin")
	require.NoError(t, err)
	_, err = run(t, "item", "add", "Cabin", "Socks")
	require.NoError(t, err)

	out, err := run(t, "bag", "delete", "Cabin")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing deleted.")

	_, err = run(t, "bag", "delete", "Cabin", "--yes")
	require.NoError(t, err)

	out, err = run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No luggage yet.")
}

func TestSeedAndCatalog(t *testing.T) {
	sandbox(t)

	out, err := run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Weekend bag")

	_, err = run(t, "seed")
	assert.Error(t, err)

	out, err = run(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "Socks")
}

func TestBagAddRejectsUnknownType(t *testing.T) {
	sandbox(t)
	_, err := run(t, "bag", "add", "trunk")
	assert.Error(t, err)
}
