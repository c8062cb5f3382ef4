package search

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/galleria/internal/domain"
)

// HistoryKey is the store key for recent search terms
const HistoryKey = "searchHistory"

const maxHistory = 20

// History keeps the most recent distinct search terms, newest first.
type History struct {
	store  domain.Store
	logger *slog.Logger
	mu     sync.Mutex
}

// NewHistory creates a history backed by store
func NewHistory(store domain.Store, logger *slog.Logger) *History {
	if logger == nil {
		logger = slog.Default()
	}
	return &History{store: store, logger: logger}
}

// Record moves term to the front. Blank terms are ignored; terms differing
// only in case count as the same term.
func (h *History) Record(term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	terms := []string{term}
	for _, t := range h.load() {
		if strings.EqualFold(t, term) {
			continue
		}
		terms = append(terms, t)
		if len(terms) == maxHistory {
			break
		}
	}
	return h.save(terms)
}

// Terms returns the stored terms, newest first
func (h *History) Terms() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

// Suggest returns stored terms matching query, best match first.
// Ties keep recency order. An empty query returns every term.
func (h *History) Suggest(query string) []string {
	terms := h.Terms()
	query = strings.TrimSpace(query)
	if query == "" {
		return terms
	}

	matches := fuzzy.RankFindFold(query, terms)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].OriginalIndex < matches[j].OriginalIndex
	})

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Target
	}
	return out
}

// Clear forgets every term
func (h *History) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.store.Delete(HistoryKey)
}

func (h *History) load() []string {
	data, ok, err := h.store.Get(HistoryKey)
	if err != nil {
		h.logger.Error("failed to read search history", "error", err)
		return []string{}
	}
	if !ok {
		return []string{}
	}

	var terms []string
	if err := json.Unmarshal(data, &terms); err != nil {
		h.logger.Warn("discarding unreadable search history", "error", err)
		return []string{}
	}
	if terms == nil {
		terms = []string{}
	}
	return terms
}

func (h *History) save(terms []string) error {
	data, err := json.Marshal(terms)
	if err != nil {
		return err
	}
	return h.store.Set(HistoryKey, data)
}
