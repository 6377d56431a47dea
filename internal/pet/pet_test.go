package pet

import (
	"math"
	"testing"
	"time"

	"palplanner/internal/shop"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func foodItem() shop.Item {
	return shop.Item{ID: "basic-food", Name: "Basic Pet Food", Category: shop.CategoryFood, Owned: true}
}

func TestNewDefaults(t *testing.T) {
	p := New("")
	if p.Name() != DefaultName {
		t.Fatalf("name=%q, want %q", p.Name(), DefaultName)
	}
	happiness, energy, mood := p.Stats()
	if !almostEqual(happiness, 0.8) || !almostEqual(energy, 0.7) {
		t.Fatalf("stats=%v/%v, want 0.8/0.7", happiness, energy)
	}
	if mood != MoodHappy {
		t.Fatalf("mood=%s, want happy (avg 0.75)", mood)
	}
}

func TestFeedRequiresEquippedFood(t *testing.T) {
	p := New("Timo")

	before, beforeEnergy, _ := p.Stats()
	if p.Feed() {
		t.Fatalf("Feed succeeded with no food equipped")
	}
	happiness, energy, _ := p.Stats()
	if !almostEqual(happiness, before) || !almostEqual(energy, beforeEnergy) {
		t.Fatalf("failed Feed changed stats")
	}

	p.Equip(foodItem())
	if !p.HasFoodEquipped() {
		t.Fatalf("food not reported equipped")
	}
	if !p.Feed() {
		t.Fatalf("Feed failed with food equipped")
	}
	_, energy, _ = p.Stats()
	if !almostEqual(energy, 0.9) {
		t.Fatalf("energy=%v, want 0.9", energy)
	}

	// Cap at 1.0.
	p.Feed()
	_, energy, _ = p.Stats()
	if !almostEqual(energy, 1.0) {
		t.Fatalf("energy=%v, want capped at 1.0", energy)
	}
}

func TestPlay(t *testing.T) {
	p := New("Timo")
	p.Play()
	happiness, energy, _ := p.Stats()
	if !almostEqual(happiness, 1.0) {
		t.Fatalf("happiness=%v, want 1.0 (0.8+0.2)", happiness)
	}
	if !almostEqual(energy, 0.6) {
		t.Fatalf("energy=%v, want 0.6 (0.7-0.1)", energy)
	}
}

func TestDecayMoodScenario(t *testing.T) {
	p := New("Timo")

	// 0.8/0.7 averages 0.75: happy.
	if _, _, mood := p.Stats(); mood != MoodHappy {
		t.Fatalf("initial mood=%s, want happy", mood)
	}

	// One decay tick: 0.75/0.65 averages exactly 0.70; the happy
	// threshold is exclusive, so the mood drops to neutral.
	p.DecayTick()
	happiness, energy, mood := p.Stats()
	if !almostEqual(happiness, 0.75) || !almostEqual(energy, 0.65) {
		t.Fatalf("stats=%v/%v, want 0.75/0.65", happiness, energy)
	}
	if mood != MoodNeutral {
		t.Fatalf("mood=%s, want neutral at avg 0.70", mood)
	}
}

func TestDecayFloorsAtZero(t *testing.T) {
	p := New("Timo")
	for i := 0; i < 40; i++ {
		p.DecayTick()
	}
	happiness, energy, mood := p.Stats()
	if happiness != 0 || energy != 0 {
		t.Fatalf("stats=%v/%v, want 0/0", happiness, energy)
	}
	if mood != MoodSad {
		t.Fatalf("mood=%s, want sad", mood)
	}
}

func TestEquipReplacesSlotOccupant(t *testing.T) {
	p := New("Timo")
	p.Equip(shop.Item{ID: "ball", Name: "Ball", Category: shop.CategoryToy})
	p.Equip(shop.Item{ID: "kite", Name: "Kite", Category: shop.CategoryToy})

	item, ok := p.EquippedItem(shop.CategoryToy)
	if !ok || item.ID != "kite" {
		t.Fatalf("toy slot=%v, want the kite", item)
	}
	if len(p.EquippedItems()) != 1 {
		t.Fatalf("expected a single occupied slot")
	}
}

func TestUnequip(t *testing.T) {
	p := New("Timo")
	p.Equip(foodItem())
	p.Unequip(shop.CategoryFood)
	if p.HasFoodEquipped() {
		t.Fatalf("food still equipped after Unequip")
	}
	// No-op on an empty slot.
	p.Unequip(shop.CategoryFood)
	p.Unequip(shop.CategoryAccessory)
}

func TestRename(t *testing.T) {
	p := New("Timo")
	p.Rename("Biscuit")
	if p.Name() != "Biscuit" {
		t.Fatalf("name=%q, want Biscuit", p.Name())
	}
	p.Rename("")
	if p.Name() != "Biscuit" {
		t.Fatalf("empty rename changed the name")
	}
}

func TestSubscribeSeesMutations(t *testing.T) {
	p := New("Timo")
	ch, cancel := p.Subscribe()
	defer cancel()

	p.Play()
	select {
	case <-ch:
	default:
		t.Fatalf("no ping after Play")
	}
}

func TestDecayTickerStops(t *testing.T) {
	p := New("Timo")
	p.StartDecay(5 * time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	p.Close()
	p.Close() // idempotent

	happiness, _, _ := p.Stats()
	if happiness >= 0.8 {
		t.Fatalf("no decay observed before Close")
	}
	// No tick after Close.
	after, _, _ := p.Stats()
	time.Sleep(20 * time.Millisecond)
	later, _, _ := p.Stats()
	if after != later {
		t.Fatalf("stats changed after Close: %v -> %v", after, later)
	}
}

func TestCloseWithoutStart(t *testing.T) {
	p := New("Timo")
	p.Close()
	p.Close()
}
