package shop

import (
	"sync"
	"testing"
)

// fakeAccount implements PointsAccount over a plain integer.
type fakeAccount struct {
	mu      sync.Mutex
	balance int
}

func (a *fakeAccount) Balance() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *fakeAccount) Debit(amount int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount < 0 || a.balance < amount {
		return false
	}
	a.balance -= amount
	return true
}

func TestPurchaseScenario(t *testing.T) {
	s := NewStore(DefaultCatalog())
	account := &fakeAccount{balance: 100}

	if !s.Purchase("pizza", account) {
		t.Fatalf("purchase of pizza (50) with balance 100 failed")
	}
	if got := account.Balance(); got != 50 {
		t.Fatalf("balance=%d, want 50", got)
	}
	if !s.Owns("pizza") {
		t.Fatalf("pizza not owned after purchase")
	}

	// Repurchase of an owned item is rejected regardless of funds.
	if s.Purchase("pizza", account) {
		t.Fatalf("repurchase of owned item succeeded")
	}
	if got := account.Balance(); got != 50 {
		t.Fatalf("rejected repurchase changed balance to %d", got)
	}

	// Owned exactly once.
	count := 0
	for _, item := range s.OwnedItems() {
		if item.ID == "pizza" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("pizza appears %d times in owned set, want 1", count)
	}
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	s := NewStore(DefaultCatalog())
	account := &fakeAccount{balance: 20}

	if s.Purchase("ball", account) {
		t.Fatalf("purchase of ball (30) with balance 20 succeeded")
	}
	if got := account.Balance(); got != 20 {
		t.Fatalf("failed purchase changed balance to %d", got)
	}
	if s.Owns("ball") {
		t.Fatalf("ball owned after failed purchase")
	}
	item, _ := s.Get("ball")
	if item.Owned {
		t.Fatalf("catalog entry marked owned after failed purchase")
	}
}

func TestPurchaseUnknownItem(t *testing.T) {
	s := NewStore(DefaultCatalog())
	account := &fakeAccount{balance: 1000}
	if s.Purchase("jetpack", account) {
		t.Fatalf("purchase of unknown item succeeded")
	}
	if got := account.Balance(); got != 1000 {
		t.Fatalf("unknown-item purchase debited the account")
	}
}

func TestStarterPreOwned(t *testing.T) {
	s := NewStore(DefaultCatalog())
	if !s.Owns("basic-food") {
		t.Fatalf("starter food not pre-owned")
	}
	owned := s.OwnedItems()
	if len(owned) != 1 || owned[0].ID != "basic-food" {
		t.Fatalf("owned set=%v, want just the starter", owned)
	}
}

func TestStarterSelfHeals(t *testing.T) {
	s := NewStore(DefaultCatalog())
	if !s.RemoveOwned("basic-food") {
		t.Fatalf("could not remove starter for the test")
	}

	// The starter is re-inserted before any owned query is answered.
	if !s.Owns("basic-food") {
		t.Fatalf("starter missing from owned set after heal")
	}
	owned := s.OwnedByCategory(CategoryFood)
	if len(owned) != 1 || owned[0].ID != "basic-food" {
		t.Fatalf("owned food=%v, want the healed starter", owned)
	}
	item, _ := s.Get("basic-food")
	if !item.Owned {
		t.Fatalf("starter catalog entry not re-marked owned")
	}
}

func TestItemsByCategoryPreservesOrder(t *testing.T) {
	catalog := []Item{
		{ID: "a", Name: "A", Category: CategoryToy, Price: 1},
		{ID: "b", Name: "B", Category: CategoryFood, Price: 1},
		{ID: "c", Name: "C", Category: CategoryToy, Price: 1},
		{ID: "d", Name: "D", Category: CategoryToy, Price: 1},
	}
	s := NewStore(catalog)

	toys := s.ItemsByCategory(CategoryToy)
	if len(toys) != 3 || toys[0].ID != "a" || toys[1].ID != "c" || toys[2].ID != "d" {
		t.Fatalf("toy order=%v, want a,c,d", toys)
	}
	if len(s.ItemsByCategory(CategoryAccessory)) != 0 {
		t.Fatalf("expected no accessories")
	}
}

func TestOwnedByCategoryAcquisitionOrder(t *testing.T) {
	s := NewStore(DefaultCatalog())
	account := &fakeAccount{balance: 500}
	s.Purchase("tshirt", account)
	s.Purchase("pizza", account)

	food := s.OwnedByCategory(CategoryFood)
	if len(food) != 2 || food[0].ID != "basic-food" || food[1].ID != "pizza" {
		t.Fatalf("owned food=%v, want starter then pizza", food)
	}
}

func TestMarkEquippedSingleSlot(t *testing.T) {
	s := NewStore(DefaultCatalog())
	account := &fakeAccount{balance: 500}
	s.Purchase("pizza", account)

	if !s.MarkEquipped("basic-food") {
		t.Fatalf("MarkEquipped failed for owned starter")
	}
	if !s.MarkEquipped("pizza") {
		t.Fatalf("MarkEquipped failed for owned pizza")
	}

	starter, _ := s.Get("basic-food")
	pizza, _ := s.Get("pizza")
	if starter.Equipped {
		t.Fatalf("starter still flagged equipped after equipping pizza")
	}
	if !pizza.Equipped {
		t.Fatalf("pizza not flagged equipped")
	}

	// Unowned items cannot be equipped.
	if s.MarkEquipped("ball") {
		t.Fatalf("MarkEquipped succeeded for unowned item")
	}

	s.ClearEquipped(CategoryFood)
	pizza, _ = s.Get("pizza")
	if pizza.Equipped {
		t.Fatalf("pizza still flagged equipped after ClearEquipped")
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := ParseCategory(" Food "); err != nil || c != CategoryFood {
		t.Fatalf("ParseCategory(Food)=%v,%v", c, err)
	}
	if _, err := ParseCategory("hat"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}
