package cart

import (
	"path/filepath"
	"testing"

	"event-marketplace/internal/models"
	"event-marketplace/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	slot, err := storage.NewSlot(filepath.Join(t.TempDir(), "cart.json"))
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewStore(slot, logger)
}

func TestStore_AddItemMergesByKey(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AddItem("E1", "T1", 2, 5000))
	require.NoError(t, store.AddItem("E1", "T1", 1, 5000))
	require.NoError(t, store.AddItem("E1", "T1", 4, 5000))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestStore_AddItemPreservesInsertionOrder(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AddItem("E1", "T1", 1, 5000))
	require.NoError(t, store.AddItem("E2", "T3", 1, 2500))
	require.NoError(t, store.AddItem("E1", "T2", 1, 9900))
	require.NoError(t, store.AddItem("E1", "T1", 2, 5000))

	items := store.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "T1", items[0].TicketTypeID)
	assert.Equal(t, "T3", items[1].TicketTypeID)
	assert.Equal(t, "T2", items[2].TicketTypeID)
}

func TestStore_AddItemRejectsBadQuantity(t *testing.T) {
	store := newTestStore(t)

	assert.ErrorIs(t, store.AddItem("E1", "T1", 0, 5000), models.ErrInvalidInput)
	assert.ErrorIs(t, store.AddItem("E1", "T1", -2, 5000), models.ErrInvalidInput)
	assert.Empty(t, store.Items())
}

func TestStore_RemoveItemIdempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AddItem("E1", "T1", 2, 5000))
	require.NoError(t, store.AddItem("E1", "T2", 1, 9900))

	store.RemoveItem("E1", "T1")
	after := store.Items()

	store.RemoveItem("E1", "T1")
	assert.Equal(t, after, store.Items())

	// Removing a key that never existed is also a no-op
	store.RemoveItem("E9", "T9")
	assert.Equal(t, after, store.Items())
}

func TestStore_UpdateQuantity(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddItem("E1", "T1", 2, 5000))

	// Replace, not merge
	store.UpdateQuantity("E1", "T1", 5)
	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	// Zero or negative behaves as removal
	store.UpdateQuantity("E1", "T1", 0)
	assert.Empty(t, store.Items())

	// Updating a missing line is a silent no-op, not an insertion
	store.UpdateQuantity("E1", "T1", 3)
	assert.Empty(t, store.Items())
}

func TestStore_TotalsConsistency(t *testing.T) {
	store := newTestStore(t)

	checkTotals := func() {
		t.Helper()
		wantItems, wantAmount := 0, 0
		for _, line := range store.Items() {
			wantItems += line.Quantity
			wantAmount += line.Quantity * line.UnitPrice
		}
		snap := store.Snapshot()
		assert.Equal(t, wantItems, snap.TotalItems)
		assert.Equal(t, wantAmount, snap.TotalAmount)
	}

	checkTotals()
	require.NoError(t, store.AddItem("E1", "T1", 2, 5000))
	checkTotals()
	require.NoError(t, store.AddItem("E1", "T2", 3, 9900))
	checkTotals()
	store.UpdateQuantity("E1", "T2", 1)
	checkTotals()
	store.UpdateQuantity("E1", "T1", -1)
	checkTotals()
	store.Clear()
	checkTotals()
}

func TestStore_EmptyCartTotalsAreZero(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t, 0, store.TotalItems())
	assert.Equal(t, 0, store.TotalAmount())
}

func TestStore_CheckoutScenario(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AddItem("E1", "T1", 2, 50))
	assert.Equal(t, 2, store.TotalItems())
	assert.Equal(t, 100, store.TotalAmount())

	require.NoError(t, store.AddItem("E1", "T1", 1, 50))
	assert.Equal(t, 3, store.TotalItems())
	assert.Equal(t, 150, store.TotalAmount())

	store.UpdateQuantity("E1", "T1", 0)
	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItems())
	assert.Equal(t, 0, store.TotalAmount())
}

func TestStore_PersistenceRoundTrip(t *testing.T) {
	slot, err := storage.NewSlot(filepath.Join(t.TempDir(), "cart.json"))
	require.NoError(t, err)
	logger := logrus.New()

	store := NewStore(slot, logger)
	require.NoError(t, store.AddItem("E1", "T1", 2, 5000))
	require.NoError(t, store.AddItem("E2", "T4", 1, 7500))

	reloaded := NewStore(slot, logger)
	assert.Equal(t, store.Items(), reloaded.Items())
	assert.Equal(t, store.Snapshot(), reloaded.Snapshot())
}

func TestStore_StartsEmptyWithoutStoredValue(t *testing.T) {
	store := newTestStore(t)
	assert.Empty(t, store.Items())
}

func TestStore_NilSlot(t *testing.T) {
	store := NewStore(nil, logrus.New())

	require.NoError(t, store.AddItem("E1", "T1", 1, 100))
	assert.Equal(t, 1, store.TotalItems())
}
