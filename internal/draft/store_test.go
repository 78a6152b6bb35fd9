package draft

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	type value struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	s.Save("key", value{Name: "draft", Count: 3})

	var got value
	require.True(t, s.Load("key", &got))
	assert.Equal(t, value{Name: "draft", Count: 3}, got)
}

func TestStore_AbsentKey(t *testing.T) {
	s := newTestStore(t)

	var got string
	assert.False(t, s.Load("missing", &got))
}

func TestStore_MalformedEntryTreatedAsAbsent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	s, err := NewStore(dir)
	require.NoError(t, err)

	var got map[string]string
	assert.False(t, s.Load("bad", &got))
}

func TestStore_Clear(t *testing.T) {
	s := newTestStore(t)
	s.Save("key", "value")

	s.Clear("key")

	var got string
	assert.False(t, s.Load("key", &got))
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s1, err := NewStore(dir)
	require.NoError(t, err)
	s1.Save("key", 42)

	s2, err := NewStore(dir)
	require.NoError(t, err)

	var got int
	require.True(t, s2.Load("key", &got))
	assert.Equal(t, 42, got)
}

func TestStore_KeysFlattenedToSingleSegment(t *testing.T) {
	s := newTestStore(t)
	s.Save("nested/../key", "value")

	var got string
	require.True(t, s.Load("nested/../key", &got))
	assert.Equal(t, "value", got)

	entries, err := os.ReadDir(s.dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "nested_.._key.json", entries[0].Name())
}
