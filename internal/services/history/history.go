// Package history keeps the most recent rolls in memory
package history

import (
	"sync"

	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
)

// MaxEntries is the hard cap on stored rolls
const MaxEntries = 50

// History is a bounded, newest-first list of roll results. When full, adding
// a roll evicts the oldest one.
type History struct {
	mu      sync.RWMutex
	limit   int
	entries []*dnd5e.RollResult
}

// New creates a history holding up to limit rolls. limit is clamped to
// 1..MaxEntries; 0 means MaxEntries.
func New(limit int) *History {
	if limit <= 0 || limit > MaxEntries {
		limit = MaxEntries
	}
	return &History{limit: limit}
}

// Add records a roll as the newest entry
func (h *History) Add(result *dnd5e.RollResult) {
	if result == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append([]*dnd5e.RollResult{result}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries[h.limit] = nil
		h.entries = h.entries[:h.limit]
	}
}

// List returns the stored rolls, newest first. The slice is a copy.
func (h *History) List() []*dnd5e.RollResult {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]*dnd5e.RollResult, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len reports how many rolls are stored
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Limit reports the capacity
func (h *History) Limit() int {
	return h.limit
}

// Clear drops every stored roll and reports how many there were
func (h *History) Clear() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.entries)
	h.entries = nil
	return n
}
