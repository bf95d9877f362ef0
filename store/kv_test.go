package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := OpenKV(filepath.Join(t.TempDir(), "pharmacy.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestKVStringRoundTrip(t *testing.T) {
	kv := newTestKV(t)

	_, ok, err := kv.GetString("missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, kv.SetString(KeyDarkMode, "true"))
	value, ok, err := kv.GetString(KeyDarkMode)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "true", value)

	// Overwrite wins
	require.NoError(t, kv.SetString(KeyDarkMode, "false"))
	value, _, err = kv.GetString(KeyDarkMode)
	require.NoError(t, err)
	require.Equal(t, "false", value)
}

func TestKVJSONRoundTrip(t *testing.T) {
	kv := newTestKV(t)

	in := map[string]int{"a": 1, "b": 2}
	require.NoError(t, kv.SetJSON("json-key", in))

	var out map[string]int
	found, err := kv.GetJSON("json-key", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, in, out)
}

func TestKVCorruptValueReadsAsEmpty(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.SetString(KeyInventory, "{not json"))

	var out []string
	found, err := kv.GetJSON(KeyInventory, &out)
	require.NoError(t, err, "corruption must never propagate as an error")
	require.False(t, found)
}

func TestKVDelete(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.SetString("k", "v"))
	require.NoError(t, kv.Delete("k"))
	_, ok, err := kv.GetString("k")
	require.NoError(t, err)
	require.False(t, ok)

	// Deleting again is fine
	require.NoError(t, kv.Delete("k"))
}
