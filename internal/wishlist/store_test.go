package wishlist

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sagarmatha/storefront/internal/catalog"
	"github.com/sagarmatha/storefront/pkg/kvslot"
	"github.com/sagarmatha/storefront/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testProduct(id int, name string) catalog.Product {
	return catalog.Product{
		ID:    id,
		Name:  name,
		Brand: "Bosch",
		Price: decimal.NewFromInt(int64(1000 * id)),
	}
}

func newTestStore(t *testing.T, slot kvslot.Slot) *Store {
	t.Helper()
	store, err := NewStore(context.Background(), StoreParams{
		Slot:   slot,
		Logger: logger.New(logger.Options{ServiceName: "test", Output: &bytes.Buffer{}}),
	})
	require.NoError(t, err)
	return store
}

func requireInvariant(t *testing.T, store *Store) {
	t.Helper()
	require.Equal(t, store.Count(), len(store.Items()), "count must equal list length")
}

func TestToggleAddsThenRemoves(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, kvslot.NewMemorySlot())

	added := store.Toggle(ctx, testProduct(3, "Heavy Duty Circuit Breaker"))
	require.True(t, added)
	require.Equal(t, 1, store.Count())
	require.True(t, store.Contains(3))
	requireInvariant(t, store)

	added = store.Toggle(ctx, testProduct(3, "Heavy Duty Circuit Breaker"))
	require.False(t, added)
	require.Equal(t, 0, store.Count())
	require.Empty(t, store.Items())
	requireInvariant(t, store)
}

func TestToggleSymmetryLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	slot := kvslot.NewMemorySlot()
	store := newTestStore(t, slot)

	store.Toggle(ctx, testProduct(1, "a"))
	before := store.Items()

	store.Toggle(ctx, testProduct(7, "b"))
	store.Toggle(ctx, testProduct(7, "b"))

	require.Equal(t, before, store.Items())
	requireInvariant(t, store)
}

func TestItemsKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, kvslot.NewMemorySlot())

	store.Toggle(ctx, testProduct(5, "first"))
	store.Toggle(ctx, testProduct(2, "second"))
	store.Toggle(ctx, testProduct(9, "third"))

	items := store.Items()
	require.Equal(t, []int{5, 2, 9}, []int{items[0].ID, items[1].ID, items[2].ID})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, kvslot.NewMemorySlot())

	store.Toggle(ctx, testProduct(1, "a"))
	store.Toggle(ctx, testProduct(2, "b"))

	store.Remove(ctx, 1)
	require.False(t, store.Contains(1))
	require.True(t, store.Contains(2))
	requireInvariant(t, store)

	// Removing an unknown id is a no-op.
	store.Remove(ctx, 42)
	require.Equal(t, 1, store.Count())
}

func TestClearEmptiesSetAndList(t *testing.T) {
	ctx := context.Background()
	slot := kvslot.NewMemorySlot()
	store := newTestStore(t, slot)

	store.Toggle(ctx, testProduct(1, "a"))
	store.Toggle(ctx, testProduct(2, "b"))
	store.Clear(ctx)

	require.Equal(t, 0, store.Count())
	require.Empty(t, store.Items())
	requireInvariant(t, store)

	raw, err := slot.Get(ctx, DefaultSlotKey)
	require.NoError(t, err)
	require.JSONEq(t, `{"ids":[],"items":[]}`, raw)
}

func TestPersistsOnEveryMutation(t *testing.T) {
	ctx := context.Background()
	slot := kvslot.NewMemorySlot()
	store := newTestStore(t, slot)

	store.Toggle(ctx, testProduct(3, "breaker"))

	raw, err := slot.Get(ctx, DefaultSlotKey)
	require.NoError(t, err)

	var state struct {
		IDs   []int             `json:"ids"`
		Items []catalog.Product `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &state))
	require.Equal(t, []int{3}, state.IDs)
	require.Len(t, state.Items, 1)
	require.Equal(t, "breaker", state.Items[0].Name)
}

func TestRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	slot := kvslot.NewMemorySlot()

	first := newTestStore(t, slot)
	first.Toggle(ctx, testProduct(3, "breaker"))
	first.Toggle(ctx, testProduct(7, "solar"))
	wantItems := first.Items()

	// A fresh store over the same slot sees the saved state: same ids,
	// same snapshots, same order.
	second := newTestStore(t, slot)
	require.Equal(t, 2, second.Count())
	require.True(t, second.Contains(3))
	require.True(t, second.Contains(7))
	require.Equal(t, wantItems, second.Items())
	requireInvariant(t, second)
}

func TestRestoreFromAbsentSlotStartsEmpty(t *testing.T) {
	store := newTestStore(t, kvslot.NewMemorySlot())
	require.Equal(t, 0, store.Count())
}

func TestRestoreFromMalformedPayloadStartsEmpty(t *testing.T) {
	ctx := context.Background()
	slot := kvslot.NewMemorySlot()
	require.NoError(t, slot.Set(ctx, DefaultSlotKey, `{"ids":[1,2`))

	store := newTestStore(t, slot)
	require.Equal(t, 0, store.Count())
	requireInvariant(t, store)
}

func TestRestoreRepairsDisagreeingIDs(t *testing.T) {
	ctx := context.Background()
	slot := kvslot.NewMemorySlot()
	// The ids array claims 1 and 2 but only product 1 has a snapshot;
	// the snapshots win and the invariant holds after hydration.
	require.NoError(t, slot.Set(ctx, DefaultSlotKey,
		`{"ids":[1,2],"items":[{"id":1,"name":"a","brand":"b","price":"100","originalPrice":"100","rating":4,"reviews":1,"power":"","category":"tools","discount":0,"inStock":true,"badge":""}]}`))

	store := newTestStore(t, slot)
	require.Equal(t, 1, store.Count())
	require.True(t, store.Contains(1))
	require.False(t, store.Contains(2))
	requireInvariant(t, store)
}

func TestPersistFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, &failingSlot{})

	added := store.Toggle(ctx, testProduct(1, "a"))
	require.True(t, added)
	require.Equal(t, 1, store.Count())
	requireInvariant(t, store)
}

func TestUnknownProductTogglesSymmetrically(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, kvslot.NewMemorySlot())

	ghost := testProduct(999, "not in catalog")
	require.True(t, store.Toggle(ctx, ghost))
	require.True(t, store.Contains(999))
	require.False(t, store.Toggle(ctx, ghost))
	require.Equal(t, 0, store.Count())
}

func TestCloseFlushesState(t *testing.T) {
	ctx := context.Background()
	slot := kvslot.NewMemorySlot()
	store := newTestStore(t, slot)

	store.Toggle(ctx, testProduct(4, "welder"))
	require.NoError(t, store.Close(ctx))

	raw, err := slot.Get(ctx, DefaultSlotKey)
	require.NoError(t, err)
	require.Contains(t, raw, `"welder"`)
}

func TestConcurrentTogglesKeepInvariant(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, kvslot.NewMemorySlot())

	done := make(chan struct{})
	for worker := 0; worker < 4; worker++ {
		go func(offset int) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 50; i++ {
				id := offset*50 + i
				store.Toggle(ctx, testProduct(id, "p"))
				if i%2 == 0 {
					store.Toggle(ctx, testProduct(id, "p"))
				}
			}
		}(worker)
	}
	for i := 0; i < 4; i++ {
		<-done
	}
	requireInvariant(t, store)
}

type failingSlot struct{}

func (f *failingSlot) Get(context.Context, string) (string, error) {
	return "", kvslot.ErrNotFound
}

func (f *failingSlot) Set(context.Context, string, string) error {
	return context.DeadlineExceeded
}

func (f *failingSlot) Delete(context.Context, string) error {
	return nil
}
