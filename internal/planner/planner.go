package planner

import (
	"fmt"
	"time"

	"meal-planner/internal/catalog"

	"github.com/google/uuid"
)

const daysPerWeek = 7

// Generator builds weekly meal plans from a catalog.
type Generator struct {
	catalog *catalog.Catalog
	rng     RandSource
	now     func() time.Time
	newID   func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandSource sets the source used to shuffle catalog items.
func WithRandSource(rng RandSource) Option {
	return func(g *Generator) { g.rng = rng }
}

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithIDGenerator sets the function used to assign plan ids.
func WithIDGenerator(newID func() string) Option {
	return func(g *Generator) { g.newID = newID }
}

// NewGenerator creates a new Generator instance.
func NewGenerator(c *catalog.Catalog, opts ...Option) *Generator {
	g := &Generator{
		catalog: c,
		rng:     globalRand{},
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Now returns the generator's current time.
func (g *Generator) Now() time.Time {
	return g.now()
}

// GenerateWeeklyPlan creates a fresh plan for the week containing now.
func (g *Generator) GenerateWeeklyPlan() (*WeeklyMealPlan, error) {
	now := g.now()
	monday := MondayOf(now)
	sunday := monday.AddDate(0, 0, daysPerWeek-1)
	year, week := monday.ISOWeek()

	meals, err := g.generateMeals()
	if err != nil {
		return nil, err
	}

	return &WeeklyMealPlan{
		ID:         g.newID(),
		WeekNumber: week,
		Year:       year,
		StartDate:  monday.Format(dateLayout),
		EndDate:    sunday.Format(dateLayout),
		CreatedAt:  now.UTC(),
		Meals:      meals,
	}, nil
}

// GenerateVariation creates an alternate menu for the same calendar week as
// original. Variations and selection state are not copied.
func (g *Generator) GenerateVariation(original *WeeklyMealPlan) (*WeeklyMealPlan, error) {
	meals, err := g.generateMeals()
	if err != nil {
		return nil, err
	}

	id := g.newID()
	for id == original.ID {
		id = g.newID()
	}

	return &WeeklyMealPlan{
		ID:         id,
		WeekNumber: original.WeekNumber,
		Year:       original.Year,
		StartDate:  original.StartDate,
		EndDate:    original.EndDate,
		CreatedAt:  g.now().UTC(),
		Meals:      meals,
	}, nil
}

// generateMeals draws each category independently and zips them against
// the canonical day order.
func (g *Generator) generateMeals() ([]DayMeal, error) {
	breads, err := SelectForWeek(g.rng, g.catalog.Breads, daysPerWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to select breads: %w", err)
	}
	fruits, err := SelectForWeek(g.rng, g.catalog.Fruits, daysPerWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to select fruits: %w", err)
	}
	drinks, err := SelectForWeek(g.rng, g.catalog.Drinks, daysPerWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to select drinks: %w", err)
	}
	lunches, err := SelectForWeek(g.rng, g.catalog.Lunches, daysPerWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to select lunches: %w", err)
	}

	days := catalog.DaysOfWeek()
	meals := make([]DayMeal, len(days))
	for i, day := range days {
		meals[i] = DayMeal{
			Day: day,
			Breakfast: Breakfast{
				Drink: drinks[i],
				Bread: breads[i],
				Fruit: fruits[i],
			},
			Lunch: lunches[i],
		}
	}
	return meals, nil
}
