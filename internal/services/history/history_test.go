package history_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/services/history"
)

func roll(i int) *dnd5e.RollResult {
	return &dnd5e.RollResult{ID: fmt.Sprintf("roll_%d", i)}
}

func TestHistory_NewestFirst(t *testing.T) {
	h := history.New(0)
	h.Add(roll(1))
	h.Add(roll(2))
	h.Add(nil)

	list := h.List()
	require.Len(t, list, 2)
	assert.Equal(t, "roll_2", list[0].ID)
	assert.Equal(t, "roll_1", list[1].ID)
}

func TestHistory_EvictsOldestAtFifty(t *testing.T) {
	h := history.New(history.MaxEntries)
	for i := 1; i <= 75; i++ {
		h.Add(roll(i))
		assert.LessOrEqual(t, h.Len(), history.MaxEntries)
	}

	list := h.List()
	require.Len(t, list, 50)
	assert.Equal(t, "roll_75", list[0].ID)
	assert.Equal(t, "roll_26", list[49].ID)
}

func TestHistory_LimitClamped(t *testing.T) {
	assert.Equal(t, history.MaxEntries, history.New(500).Limit())
	assert.Equal(t, history.MaxEntries, history.New(-1).Limit())
	assert.Equal(t, 3, history.New(3).Limit())
}

func TestHistory_ListIsACopy(t *testing.T) {
	h := history.New(5)
	h.Add(roll(1))
	list := h.List()
	list[0] = roll(99)
	assert.Equal(t, "roll_1", h.List()[0].ID)
}

func TestHistory_Clear(t *testing.T) {
	h := history.New(5)
	h.Add(roll(1))
	h.Add(roll(2))
	assert.Equal(t, 2, h.Clear())
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.List())
}

func TestHistory_ConcurrentAdds(t *testing.T) {
	h := history.New(history.MaxEntries)
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h.Add(roll(i))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, history.MaxEntries, h.Len())
}
