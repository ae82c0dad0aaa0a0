// Package cart owns the cart line-item list. Every mutation goes through
// Store and is mirrored to local storage; the in-memory list stays the
// source of truth for the session even when a mirror write fails.
package cart

import (
	"errors"
	"log/slog"
	"maps"
	"sync"

	"github.com/shopease/shopease/internal/localstore"
	"github.com/shopease/shopease/internal/models"
)

// StorageKey is the record name the cart is mirrored under.
const StorageKey = "cart"

// Item is one cart line. Price is the unit price frozen at the moment the
// product was first added (discount already applied, unrounded); later
// catalog changes never touch it. The json tags are the persisted layout.
type Item struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Price    float64           `json:"price"`
	Image    string            `json:"image"`
	Quantity int               `json:"quantity"`
	Variant  map[string]string `json:"variant,omitempty"`
}

// sameLine reports whether the item belongs to the given product+variant
// key. Variant comparison is order-independent key-value equality.
func (i Item) sameLine(productID string, variant map[string]string) bool {
	return i.ID == productID && maps.Equal(i.Variant, variant)
}

// Persister mirrors named records to durable local storage.
type Persister interface {
	Save(key string, value any) error
	Load(key string, out any) error
}

type Store struct {
	mu    sync.Mutex
	items []Item
	disk  Persister
	log   *slog.Logger
}

// NewStore builds the session's cart store, seeding it once from local
// storage. A missing or corrupt saved record means an empty cart, never an
// error.
func NewStore(disk Persister, log *slog.Logger) *Store {
	s := &Store{disk: disk, log: log}

	var saved []Item
	if err := disk.Load(StorageKey, &saved); err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			log.Warn("discarding saved cart", "error", err)
		}
		return s
	}
	for _, it := range saved {
		if it.Quantity < 1 {
			continue
		}
		s.items = append(s.items, it)
	}
	return s
}

// Add puts quantity units of the product into the cart. A quantity below 1
// is clamped to 1 rather than rejected, so a stored line can never hold a
// non-positive count. An existing line with the same product ID and variant
// absorbs the quantity; otherwise a new line is appended with the unit
// price frozen at the product's current effective price.
func (s *Store) Add(p models.Product, quantity int, variant map[string]string) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := p.ID.String()
	for i := range s.items {
		if s.items[i].sameLine(id, variant) {
			s.items[i].Quantity += quantity
			s.persistLocked()
			return
		}
	}

	s.items = append(s.items, Item{
		ID:       id,
		Name:     p.Name,
		Price:    p.EffectivePrice(),
		Image:    p.Image,
		Quantity: quantity,
		Variant:  maps.Clone(variant),
	})
	s.persistLocked()
}

// Remove drops every line whose product ID matches, across all variants.
// A miss is a no-op.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(s.items) {
		return
	}
	s.items = kept
	s.persistLocked()
}

// UpdateQuantity sets the quantity of every line with the given product ID
// to an exact value; it never merges and never removes. A value below 1 is
// ignored, callers remove the line instead of driving it to zero.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = quantity
			changed = true
		}
	}
	if changed {
		s.persistLocked()
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persistLocked()
}

// Items returns a snapshot of the lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	for i := range out {
		out[i].Variant = maps.Clone(out[i].Variant)
	}
	return out
}

// persistLocked mirrors the list to local storage. Failures are non-fatal:
// the session keeps running on the in-memory list.
func (s *Store) persistLocked() {
	if err := s.disk.Save(StorageKey, s.items); err != nil {
		s.log.Warn("cart not persisted, continuing in memory", "error", err)
	}
}
