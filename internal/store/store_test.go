package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Put(CanvasKey, []byte("payload")))
	got, err := s.Get(CanvasKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	// Overwrite replaces the old value.
	require.NoError(t, s.Put(CanvasKey, []byte("v2")))
	got, err = s.Get(CanvasKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestGetMissingKey(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get("nothing-here")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Put("k", []byte("v")))
	require.NoError(t, s.Delete("k"))
	_, err = s.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting twice is fine.
	assert.NoError(t, s.Delete("k"))
}

func TestInvalidKeysRejected(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "a/b", `a\b`, "../escape"} {
		assert.Error(t, s.Put(key, []byte("v")), "key %q", key)
		_, err := s.Get(key)
		assert.Error(t, err, "key %q", key)
	}
}
