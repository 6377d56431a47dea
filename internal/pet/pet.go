// Package pet owns the companion's state: happiness, energy, the derived
// mood, and the equipped-item slots. Stats are clamped to [0,1] on every
// mutation and the mood is recomputed as a side effect of every
// stat-mutating call, so it is never stale.
package pet

import (
	"sync"
	"time"

	"palplanner/internal/observe"
	"palplanner/internal/shop"
)

const (
	// DefaultName is the companion's name until renamed.
	DefaultName = "Timo"

	initialHappiness = 0.8
	initialEnergy    = 0.7

	feedEnergyGain    = 0.2
	playHappinessGain = 0.2
	playEnergyCost    = 0.1
	decayStep         = 0.05
)

// DefaultDecayInterval is how often background neglect lowers the stats.
const DefaultDecayInterval = time.Hour

// Pet is the single long-lived companion instance. All mutations are
// serialized by an internal mutex; queries observe prior mutations
// immediately.
type Pet struct {
	mu        sync.Mutex
	name      string
	happiness float64
	energy    float64
	mood      Mood
	equipped  map[shop.Category]shop.Item

	hub observe.Hub

	stopOnce sync.Once
	started  bool
	stop     chan struct{}
	done     chan struct{}
}

// New builds a pet with the standard starting stats. An empty name falls
// back to DefaultName.
func New(name string) *Pet {
	if name == "" {
		name = DefaultName
	}
	p := &Pet{
		name:      name,
		happiness: initialHappiness,
		energy:    initialEnergy,
		equipped:  make(map[shop.Category]shop.Item),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	p.mood = ComputeMood(p.happiness, p.energy)
	return p
}

// Subscribe registers for change pings. The returned cancel must be called
// when the subscriber goes away.
func (p *Pet) Subscribe() (<-chan struct{}, func()) { return p.hub.Subscribe() }

func (p *Pet) Name() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name
}

// Rename changes the companion's name. Empty input is a no-op.
func (p *Pet) Rename(name string) {
	if name == "" {
		return
	}
	p.mu.Lock()
	p.name = name
	p.mu.Unlock()
	p.hub.Notify()
}

// Stats returns the current happiness, energy, and mood as one consistent
// snapshot.
func (p *Pet) Stats() (happiness, energy float64, mood Mood) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.happiness, p.energy, p.mood
}

// Feed succeeds only when a food item is equipped; on success it raises
// energy by 0.2 (capped at 1.0). Returns false, state unchanged, otherwise.
func (p *Pet) Feed() bool {
	p.mu.Lock()
	if _, ok := p.equipped[shop.CategoryFood]; !ok {
		p.mu.Unlock()
		return false
	}
	p.energy = clamp01(p.energy + feedEnergyGain)
	p.mood = ComputeMood(p.happiness, p.energy)
	p.mu.Unlock()
	p.hub.Notify()
	return true
}

// HasFoodEquipped reports whether feeding would succeed.
func (p *Pet) HasFoodEquipped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.equipped[shop.CategoryFood]
	return ok
}

// Play always succeeds: happiness +0.2, energy -0.1, both clamped.
func (p *Pet) Play() {
	p.mu.Lock()
	p.happiness = clamp01(p.happiness + playHappinessGain)
	p.energy = clamp01(p.energy - playEnergyCost)
	p.mood = ComputeMood(p.happiness, p.energy)
	p.mu.Unlock()
	p.hub.Notify()
}

// Equip assigns the item to its category slot, replacing any prior
// occupant. Ownership is the caller's responsibility; the app layer checks
// the shop's owned set before calling this.
func (p *Pet) Equip(item shop.Item) {
	p.mu.Lock()
	p.equipped[item.Category] = item
	p.mu.Unlock()
	p.hub.Notify()
}

// Unequip clears the slot for the category; no-op when empty.
func (p *Pet) Unequip(category shop.Category) {
	p.mu.Lock()
	_, had := p.equipped[category]
	delete(p.equipped, category)
	p.mu.Unlock()
	if had {
		p.hub.Notify()
	}
}

// EquippedItem returns the item occupying the category slot, if any.
func (p *Pet) EquippedItem(category shop.Category) (shop.Item, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	item, ok := p.equipped[category]
	return item, ok
}

// EquippedItems returns a copy of the slot mapping.
func (p *Pet) EquippedItems() map[shop.Category]shop.Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[shop.Category]shop.Item, len(p.equipped))
	for c, item := range p.equipped {
		out[c] = item
	}
	return out
}

// DecayTick models background neglect: happiness and energy each drop by
// 0.05, floored at 0.
func (p *Pet) DecayTick() {
	p.mu.Lock()
	p.happiness = clamp01(p.happiness - decayStep)
	p.energy = clamp01(p.energy - decayStep)
	p.mood = ComputeMood(p.happiness, p.energy)
	p.mu.Unlock()
	p.hub.Notify()
}

// StartDecay runs DecayTick once per interval until Close. It must be
// called at most once.
func (p *Pet) StartDecay(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultDecayInterval
	}
	p.mu.Lock()
	p.started = true
	p.mu.Unlock()
	go func() {
		defer close(p.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.DecayTick()
			case <-p.stop:
				return
			}
		}
	}()
}

// Close stops the decay ticker; no tick is delivered after it returns.
// Safe to call multiple times and without a prior StartDecay.
func (p *Pet) Close() {
	p.stopOnce.Do(func() {
		close(p.stop)
		p.mu.Lock()
		started := p.started
		p.mu.Unlock()
		if !started {
			close(p.done)
		}
	})
	<-p.done
}
