// Package app wires the three stores together with their collaborators
// and owns the operations that span more than one store: purchases debit
// the task store's balance, and equipping requires ownership in the shop.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"palplanner/internal/config"
	"palplanner/internal/notify"
	"palplanner/internal/pet"
	"palplanner/internal/shop"
	"palplanner/internal/task"
)

// App holds the constructed stores. Everything is in-memory for the
// process lifetime.
type App struct {
	Cfg    *config.Config
	Tasks  *task.Store
	Pet    *pet.Pet
	Shop   *shop.Store
	Logger *slog.Logger
}

// New builds the stores from configuration. The shop catalog comes from
// the configured YAML file or the built-in seed. No tickers run until
// Start.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	catalog := shop.DefaultCatalog()
	if cfg.CatalogPath != "" {
		loaded, err := shop.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("shop catalog: %w", err)
		}
		catalog = loaded
	}

	a := &App{
		Cfg: cfg,
		Tasks: task.NewStore(
			task.WithScheduler(notify.NewLog(logger)),
			task.WithStartingBalance(cfg.StartingBalance),
			task.WithLead(cfg.NotifyLead),
		),
		Pet:    pet.New(cfg.PetName),
		Shop:   shop.NewStore(catalog),
		Logger: logger,
	}

	if cfg.SeedSamples {
		seedSampleTasks(a.Tasks)
	}
	return a, nil
}

// Start launches the expiration sweeper and the pet decay ticker.
func (a *App) Start() {
	a.Tasks.StartSweeper(a.Cfg.SweepInterval)
	a.Pet.StartDecay(a.Cfg.DecayInterval)
	a.Logger.Debug("tickers started",
		"sweep", a.Cfg.SweepInterval, "decay", a.Cfg.DecayInterval)
}

// Close stops both tickers; no further tick fires after it returns.
func (a *App) Close() {
	a.Tasks.Close()
	a.Pet.Close()
}

// Purchase buys a shop item with PalPoints from the task store.
func (a *App) Purchase(itemID string) bool {
	return a.Shop.Purchase(itemID, a.Tasks)
}

// Equip puts an owned item into the pet's slot for its category,
// replacing any prior occupant. Unowned or unknown items are rejected, so
// the pet never wears something the shop has not sold.
func (a *App) Equip(itemID string) bool {
	item, ok := a.Shop.Get(itemID)
	if !ok || !a.Shop.Owns(itemID) {
		return false
	}
	a.Pet.Equip(item)
	a.Shop.MarkEquipped(itemID)
	return true
}

// Unequip clears the pet's slot for the category.
func (a *App) Unequip(category shop.Category) {
	a.Pet.Unequip(category)
	a.Shop.ClearEquipped(category)
}

// seedSampleTasks adds the original demo tasks: a workout this morning, a
// study session tomorrow afternoon, and shopping the evening after.
func seedSampleTasks(store *task.Store) {
	today := time.Now()
	at := func(h, m int) time.Time {
		return time.Date(today.Year(), today.Month(), today.Day(), h, m, 0, 0, today.Location())
	}
	samples := []task.Spec{
		{Title: "Morning Workout", Description: "30 minutes of cardio", Date: today, DueTime: at(8, 0), Points: 15},
		{Title: "Study Session", Description: "Review this week's notes", Date: today.AddDate(0, 0, 1), DueTime: at(14, 30), Points: 20},
		{Title: "Grocery Shopping", Description: "Buy fruits and vegetables", Date: today.AddDate(0, 0, 2), DueTime: at(19, 0), Points: 10},
	}
	for _, spec := range samples {
		_, _ = store.Add(spec)
	}
}
