package wishlist

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sagarmatha/storefront/internal/catalog"
	"github.com/sagarmatha/storefront/pkg/kvslot"
	"github.com/sagarmatha/storefront/pkg/logger"
	"github.com/sagarmatha/storefront/pkg/metrics"
	"go.uber.org/multierr"
)

// DefaultSlotKey matches the key the storefront has always persisted under.
const DefaultSlotKey = "sagarmatha-wishlist"

// StoreParams groups dependencies for the wishlist store.
type StoreParams struct {
	Slot    kvslot.Slot
	Key     string
	Logger  *logger.Logger
	Metrics *metrics.WishlistMetrics
}

// Store is the single shared collection of saved products. It keeps a
// membership set for O(1) lookups and an ordered list of product snapshots
// for display; the two are mutated together under one lock, along with the
// durable write, so the pair is never observably out of sync.
//
// Snapshots are captured at toggle time and never refreshed from the
// catalog: a later catalog change does not rewrite what the user saved.
type Store struct {
	mu         sync.Mutex
	ids        map[int]struct{}
	items      []catalog.Product
	slot       kvslot.Slot
	key        string
	logg       *logger.Logger
	metrics    *metrics.WishlistMetrics
	instanceID string
}

// NewStore builds the store and hydrates it from the durable slot. An
// absent or malformed payload starts the store empty; it is logged, never
// returned, because a broken saved wishlist must not take the shop down.
func NewStore(ctx context.Context, params StoreParams) (*Store, error) {
	if params.Slot == nil {
		return nil, errors.New("wishlist: slot is required")
	}
	if params.Logger == nil {
		return nil, errors.New("wishlist: logger is required")
	}
	key := params.Key
	if key == "" {
		key = DefaultSlotKey
	}

	store := &Store{
		ids:        make(map[int]struct{}),
		slot:       params.Slot,
		key:        key,
		logg:       params.Logger,
		metrics:    params.Metrics,
		instanceID: uuid.NewString(),
	}
	store.restore(ctx)
	store.metrics.SetSize(len(store.ids))
	return store, nil
}

// InstanceID identifies this store instance in logs.
func (s *Store) InstanceID() string {
	return s.instanceID
}

// Toggle adds the product when absent and removes it when present,
// reporting whether the product is now a member. The passed product is
// authoritative; no catalog lookup happens, so ids unknown to the catalog
// toggle symmetrically like any other.
func (s *Store) Toggle(ctx context.Context, product catalog.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, present := s.ids[product.ID]
	if present {
		delete(s.ids, product.ID)
		s.removeItemLocked(product.ID)
		s.metrics.IncMutation("toggle_remove")
	} else {
		s.ids[product.ID] = struct{}{}
		s.items = append(s.items, product)
		s.metrics.IncMutation("toggle_add")
	}
	s.persistLocked(ctx)
	return !present
}

// Remove drops the product regardless of how it was added. Removing an
// absent id is a no-op and skips the durable write.
func (s *Store) Remove(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, present := s.ids[id]; !present {
		return
	}
	delete(s.ids, id)
	s.removeItemLocked(id)
	s.metrics.IncMutation("remove")
	s.persistLocked(ctx)
}

// Clear empties the wishlist. Set, list, and durable slot move together.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = make(map[int]struct{})
	s.items = nil
	s.metrics.IncMutation("clear")
	s.persistLocked(ctx)
}

// Contains reports membership by product id.
func (s *Store) Contains(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// Count returns the number of saved products.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// Items returns the saved snapshots in insertion order.
func (s *Store) Items() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Close flushes the current state one final time before shutdown.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs error
	if err := s.writeLocked(ctx); err != nil {
		errs = multierr.Append(errs, err)
	}
	if closer, ok := s.slot.(interface{ Close() error }); ok {
		errs = multierr.Append(errs, closer.Close())
	}
	return errs
}

func (s *Store) removeItemLocked(id int) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// persistLocked writes best-effort: the in-memory state is already
// mutated and a failed durable write only costs durability, not
// correctness, so the error is logged and swallowed.
func (s *Store) persistLocked(ctx context.Context) {
	s.metrics.SetSize(len(s.ids))
	if err := s.writeLocked(ctx); err != nil {
		s.logg.Error(s.ctxWithInstance(ctx), "persist wishlist", err)
	}
}

func (s *Store) writeLocked(ctx context.Context) error {
	ids := make([]int, 0, len(s.items))
	for _, item := range s.items {
		ids = append(ids, item.ID)
	}
	payload, err := encodeState(ids, s.items)
	if err != nil {
		return err
	}
	return s.slot.Set(ctx, s.key, payload)
}

func (s *Store) restore(ctx context.Context) {
	raw, err := s.slot.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, kvslot.ErrNotFound) {
			s.logg.Warn(s.ctxWithInstance(ctx), "read saved wishlist failed, starting empty")
		}
		return
	}

	state, err := decodeState(raw)
	if err != nil {
		s.logg.Warn(s.ctxWithInstance(ctx), "saved wishlist is malformed, starting empty")
		return
	}

	// The items list is the source of truth on restore; the set is
	// re-derived from it so the count invariant holds even if the saved
	// ids array disagrees.
	for _, item := range state.Items {
		if _, dup := s.ids[item.ID]; dup {
			continue
		}
		s.ids[item.ID] = struct{}{}
		s.items = append(s.items, item)
	}
}

func (s *Store) ctxWithInstance(ctx context.Context) context.Context {
	return s.logg.WithStoreInstance(s.logg.WithComponent(ctx, "wishlist"), s.instanceID)
}
