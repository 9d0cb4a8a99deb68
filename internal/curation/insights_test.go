package curation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightStore_UpsertAndGet(t *testing.T) {
	store := NewInsightStore()

	first := store.Upsert("news-1", "worth tracking")
	assert.Equal(t, "news-1", first.NewsID)
	assert.False(t, first.UpdatedAt.IsZero())

	updated := store.Upsert("news-1", "revised note")
	got, ok := store.Get("news-1")
	require.True(t, ok)
	assert.Equal(t, "revised note", got.Insight)
	assert.Equal(t, updated, got)

	_, ok = store.Get("news-2")
	assert.False(t, ok)
}

func TestInsightStore_List(t *testing.T) {
	store := NewInsightStore()
	store.Upsert("a", "one")
	store.Upsert("b", "two")

	assert.Len(t, store.List(), 2)
}
