// Package shop owns the purchasable catalog and the owned-item set.
// Purchases debit the task store's PalPoints balance through the
// PointsAccount interface; a failed purchase leaves every piece of state
// untouched.
package shop

import (
	"sync"

	"palplanner/internal/observe"
)

// PointsAccount is the balance a purchase debits. Debit must be atomic:
// either the full amount is withdrawn or nothing changes.
type PointsAccount interface {
	Balance() int
	Debit(amount int) bool
}

// Store holds the catalog in its seed order plus the owned set in
// acquisition order. Repurchase of an owned item is rejected regardless of
// funds.
type Store struct {
	mu      sync.Mutex
	catalog []Item
	owned   []string // item ids, acquisition order
	starter string   // id of the free pre-owned food item, self-healed into owned

	hub observe.Hub
}

// NewStore builds a shop over the given catalog. Items flagged owned in
// the seed start in the owned set; the first free food item among them is
// remembered as the unremovable starter.
func NewStore(catalog []Item) *Store {
	s := &Store{catalog: make([]Item, len(catalog))}
	copy(s.catalog, catalog)
	for _, item := range s.catalog {
		if item.Owned {
			s.owned = append(s.owned, item.ID)
			if s.starter == "" && item.Price == 0 && item.Category == CategoryFood {
				s.starter = item.ID
			}
		}
	}
	return s
}

// Subscribe registers for change pings.
func (s *Store) Subscribe() (<-chan struct{}, func()) { return s.hub.Subscribe() }

// healOwned re-inserts the starter item into the owned set if it has gone
// missing. Callers must hold s.mu.
func (s *Store) healOwned() {
	if s.starter == "" {
		return
	}
	for _, id := range s.owned {
		if id == s.starter {
			return
		}
	}
	s.owned = append([]string{s.starter}, s.owned...)
	if i := s.indexOf(s.starter); i >= 0 {
		s.catalog[i].Owned = true
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.catalog {
		if s.catalog[i].ID == id {
			return i
		}
	}
	return -1
}

// Purchase buys the item for the account's PalPoints. It fails, changing
// nothing, when the id is unknown, the item is already owned, or the
// balance does not cover the price.
func (s *Store) Purchase(id string, account PointsAccount) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 || s.catalog[i].Owned {
		s.mu.Unlock()
		return false
	}
	if !account.Debit(s.catalog[i].Price) {
		s.mu.Unlock()
		return false
	}
	s.catalog[i].Owned = true
	s.owned = append(s.owned, id)
	s.mu.Unlock()

	s.hub.Notify()
	return true
}

// Get returns a copy of the catalog entry with the given id.
func (s *Store) Get(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.catalog[i], true
	}
	return Item{}, false
}

// Owns reports whether the item is in the owned set.
func (s *Store) Owns(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healOwned()
	for _, owned := range s.owned {
		if owned == id {
			return true
		}
	}
	return false
}

// Items returns the full catalog in seed order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// ItemsByCategory filters the catalog, preserving its order.
func (s *Store) ItemsByCategory(category Category) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Item
	for _, item := range s.catalog {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// OwnedItems returns the owned set in acquisition order.
func (s *Store) OwnedItems() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healOwned()
	return s.ownedLocked()
}

// OwnedByCategory filters the owned set, preserving acquisition order.
func (s *Store) OwnedByCategory(category Category) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healOwned()
	var out []Item
	for _, item := range s.ownedLocked() {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func (s *Store) ownedLocked() []Item {
	out := make([]Item, 0, len(s.owned))
	for _, id := range s.owned {
		if i := s.indexOf(id); i >= 0 {
			out = append(out, s.catalog[i])
		}
	}
	return out
}

// MarkEquipped flags the owned item as equipped and clears the flag on
// every other item in its category, keeping the catalog's equip markers in
// step with the pet's single slot per category. Returns false for unknown
// or unowned items.
func (s *Store) MarkEquipped(id string) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 || !s.catalog[i].Owned {
		s.mu.Unlock()
		return false
	}
	category := s.catalog[i].Category
	for j := range s.catalog {
		if s.catalog[j].Category == category {
			s.catalog[j].Equipped = j == i
		}
	}
	s.mu.Unlock()

	s.hub.Notify()
	return true
}

// ClearEquipped unflags every item in the category.
func (s *Store) ClearEquipped(category Category) {
	s.mu.Lock()
	var changed bool
	for i := range s.catalog {
		if s.catalog[i].Category == category && s.catalog[i].Equipped {
			s.catalog[i].Equipped = false
			changed = true
		}
	}
	s.mu.Unlock()

	if changed {
		s.hub.Notify()
	}
}

// RemoveOwned drops an item from the owned set; the starter heals back on
// the next owned query. Used by tests and kept for symmetry with the
// self-healing invariant.
func (s *Store) RemoveOwned(id string) bool {
	s.mu.Lock()
	var removed bool
	for i, owned := range s.owned {
		if owned == id {
			s.owned = append(s.owned[:i], s.owned[i+1:]...)
			if j := s.indexOf(id); j >= 0 {
				s.catalog[j].Owned = false
			}
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.hub.Notify()
	}
	return removed
}
