package minheap

// White-box checks that Validate actually catches deliberately broken
// invariants; the exported surface offers no way to corrupt the heap.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildHealthy(t *testing.T) *Heap {
	t.Helper()
	h, err := New(8)
	require.NoError(t, err)
	for id, key := range []float64{4, 2, 7, 1, 9, 3} {
		require.NoError(t, h.Insert(id, key))
	}
	require.NoError(t, h.Validate())

	return h
}

// TestValidate_HeapOrderViolation forces a child key below its parent.
func TestValidate_HeapOrderViolation(t *testing.T) {
	h := buildHealthy(t)
	h.entries[len(h.entries)-1].key = -1 // leaf now beats the root

	assert.ErrorIs(t, h.Validate(), ErrCorrupt)
}

// TestValidate_BackPointerViolation desynchronizes the slot table.
func TestValidate_BackPointerViolation(t *testing.T) {
	h := buildHealthy(t)
	h.slot[h.entries[2].id] = 0 // points at the wrong slot

	assert.ErrorIs(t, h.Validate(), ErrCorrupt)
}

// TestValidate_StaleBackPointer marks an unqueued id as live.
func TestValidate_StaleBackPointer(t *testing.T) {
	h := buildHealthy(t)
	id, _, err := h.ExtractMin()
	require.NoError(t, err)
	h.slot[id] = 1 // resurrect the extracted node

	assert.ErrorIs(t, h.Validate(), ErrCorrupt)
}
