package search

import (
	"io"
	"log/slog"
	"strconv"
	"testing"

	"github.com/mmcdole/galleria/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistory(t *testing.T) *History {
	t.Helper()
	return NewHistory(store.NewMemoryStore(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHistoryRecordOrder(t *testing.T) {
	h := newHistory(t)
	assert.Empty(t, h.Terms())

	require.NoError(t, h.Record("cat"))
	require.NoError(t, h.Record("  dog "))
	require.NoError(t, h.Record(""))
	require.NoError(t, h.Record("   "))

	assert.Equal(t, []string{"dog", "cat"}, h.Terms())
}

func TestHistoryRecordMovesExistingToFront(t *testing.T) {
	h := newHistory(t)
	require.NoError(t, h.Record("cat"))
	require.NoError(t, h.Record("dog"))
	require.NoError(t, h.Record("bird"))
	require.NoError(t, h.Record("CAT"))

	assert.Equal(t, []string{"CAT", "bird", "dog"}, h.Terms())
}

func TestHistoryIsBounded(t *testing.T) {
	h := newHistory(t)
	for i := 0; i < 30; i++ {
		require.NoError(t, h.Record("term "+strconv.Itoa(i)))
	}

	terms := h.Terms()
	require.Len(t, terms, maxHistory)
	assert.Equal(t, "term 29", terms[0])
	assert.Equal(t, "term 10", terms[maxHistory-1])
}

func TestHistorySuggest(t *testing.T) {
	h := newHistory(t)
	for _, term := range []string{"mountain lake", "cathedral", "cat", "dog park"} {
		require.NoError(t, h.Record(term))
	}

	assert.Equal(t, []string{"dog park", "cat", "cathedral", "mountain lake"}, h.Suggest(""))

	got := h.Suggest("cat")
	require.NotEmpty(t, got)
	assert.Equal(t, "cat", got[0])
	assert.Contains(t, got, "cathedral")
	assert.NotContains(t, got, "dog park")

	assert.Equal(t, []string{"dog park"}, h.Suggest("DOG"))
	assert.Empty(t, h.Suggest("zebra"))
}

func TestHistoryClear(t *testing.T) {
	h := newHistory(t)
	require.NoError(t, h.Record("cat"))
	require.NoError(t, h.Clear())
	assert.Empty(t, h.Terms())
}

func TestHistoryIgnoresCorruptData(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(HistoryKey, []byte("not json")))
	h := NewHistory(st, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Empty(t, h.Terms())
	require.NoError(t, h.Record("cat"))
	assert.Equal(t, []string{"cat"}, h.Terms())
}
