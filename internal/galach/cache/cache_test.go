package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomasPilar/query-translator/internal/galach/parser"
)

func TestCache_PutAndGet(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir)
	require.NoError(t, err)

	query := "a AND b"
	tree := parser.ParseString(query)
	require.NoError(t, c.Put(query, tree))

	entry, ok := c.Get(query)
	require.True(t, ok)
	assert.Equal(t, "a AND b", entry.Rendered)
	assert.Empty(t, entry.CorrectionKinds)
}

func TestCache_GetMissingEntry(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir)
	require.NoError(t, err)

	_, ok := c.Get("nothing cached yet")
	assert.False(t, ok)
}

func TestCache_ExpiredEntryIsNotReturned(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir)
	require.NoError(t, err)
	c.SetMaxAge(0)

	query := "a AND b"
	require.NoError(t, c.Put(query, parser.ParseString(query)))
	time.Sleep(time.Millisecond)

	_, ok := c.Get(query)
	assert.False(t, ok)
}

func TestCache_PersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()
	c1, err := Open(dir)
	require.NoError(t, err)

	query := "+urgent"
	require.NoError(t, c1.Put(query, parser.ParseString(query)))

	c2, err := Open(dir)
	require.NoError(t, err)
	entry, ok := c2.Get(query)
	require.True(t, ok)
	assert.Equal(t, "+urgent", entry.Rendered)
}

func TestCache_InvalidateAll(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir)
	require.NoError(t, err)

	query := "a AND b"
	require.NoError(t, c.Put(query, parser.ParseString(query)))
	require.NoError(t, c.InvalidateAll())

	_, ok := c.Get(query)
	assert.False(t, ok)
}
