package planner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"meal-planner/internal/catalog"
)

// ErrNotFound is returned when there is no current week or the requested
// variation does not belong to it.
var ErrNotFound = errors.New("not found")

// HistoryStore persists the single MealPlanHistory record.
type HistoryStore interface {
	Load(ctx context.Context) (*MealPlanHistory, error)
	Save(ctx context.Context, history *MealPlanHistory) error
}

// Transition tells which branch GenerateNewPlan took.
type Transition int

const (
	// NewWeek means the previous current week (if any) was retired and a
	// fresh plan started.
	NewWeek Transition = iota
	// Variation means an alternate menu was added to the current week.
	Variation
)

func (t Transition) String() string {
	if t == Variation {
		return "variation"
	}
	return "plan"
}

// Manager runs the week state machine over a HistoryStore. Every operation
// loads the record, mutates it and saves it back; operations on the same
// Manager are serialized.
type Manager struct {
	store    HistoryStore
	gen      *Generator
	maxWeeks int
	mu       sync.Mutex
}

// NewManager creates a new Manager that keeps catalog.MaxHistoryWeeks
// retired weeks.
func NewManager(store HistoryStore, gen *Generator) *Manager {
	return &Manager{
		store:    store,
		gen:      gen,
		maxWeeks: catalog.MaxHistoryWeeks,
	}
}

// load never fails: a missing or unreadable record is the empty history.
func (m *Manager) load(ctx context.Context) *MealPlanHistory {
	history, err := m.store.Load(ctx)
	if err != nil || history == nil {
		if err != nil {
			log.Printf("Warning: failed to load meal plan history, starting empty: %v", err)
		}
		return NewHistory()
	}
	if history.PreviousWeeks == nil {
		history.PreviousWeeks = []WeeklyMealPlan{}
	}
	return history
}

// GetHistory returns the stored history, or the empty history when the
// store cannot be read.
func (m *Manager) GetHistory(ctx context.Context) *MealPlanHistory {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(ctx)
}

// GenerateNewPlan adds a variation when the current week is still the ISO
// week of now, otherwise retires it and starts a new week.
func (m *Manager) GenerateNewPlan(ctx context.Context) (*WeeklyMealPlan, error) {
	plan, _, err := m.Advance(ctx)
	return plan, err
}

// Advance is GenerateNewPlan, also reporting which branch was taken.
func (m *Manager) Advance(ctx context.Context) (*WeeklyMealPlan, Transition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := m.load(ctx)
	year, week := WeekOf(m.gen.Now())

	if current := history.CurrentWeek; current != nil && current.SameWeek(year, week) {
		variation, err := m.gen.GenerateVariation(current)
		if err != nil {
			return nil, Variation, fmt.Errorf("failed to generate variation: %w", err)
		}
		current.Variations = append(current.Variations, *variation)
		current.SelectedVariationID = variation.ID

		if err := m.store.Save(ctx, history); err != nil {
			return nil, Variation, fmt.Errorf("failed to save meal plan history: %w", err)
		}
		return variation, Variation, nil
	}

	plan, err := m.gen.GenerateWeeklyPlan()
	if err != nil {
		return nil, NewWeek, fmt.Errorf("failed to generate weekly plan: %w", err)
	}
	history.retire(m.maxWeeks)
	history.CurrentWeek = plan

	if err := m.store.Save(ctx, history); err != nil {
		return nil, NewWeek, fmt.Errorf("failed to save meal plan history: %w", err)
	}
	return plan, NewWeek, nil
}

// SelectVariation marks variationID as the displayed plan of the current
// week. Passing the current week's own id selects the original menu.
func (m *Manager) SelectVariation(ctx context.Context, variationID string) (*WeeklyMealPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := m.load(ctx)
	current := history.CurrentWeek
	if current == nil {
		return nil, fmt.Errorf("no current week: %w", ErrNotFound)
	}

	var selected *WeeklyMealPlan
	if variationID == current.ID {
		selected = current
	} else {
		v, ok := current.FindVariation(variationID)
		if !ok {
			return nil, fmt.Errorf("variation %q: %w", variationID, ErrNotFound)
		}
		selected = v
	}

	current.SelectedVariationID = variationID
	if err := m.store.Save(ctx, history); err != nil {
		return nil, fmt.Errorf("failed to save meal plan history: %w", err)
	}
	return selected, nil
}

// ClearHistory resets the store to the empty history.
func (m *Manager) ClearHistory(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(ctx, NewHistory()); err != nil {
		return fmt.Errorf("failed to clear meal plan history: %w", err)
	}
	return nil
}
