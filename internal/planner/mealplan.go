package planner

import (
	"time"

	"meal-planner/internal/catalog"
)

// Breakfast is the three-part breakfast of a single day.
type Breakfast struct {
	Drink catalog.FoodItem  `json:"drink"`
	Bread catalog.BreadItem `json:"bread"`
	Fruit catalog.FoodItem  `json:"fruit"`
}

// DayMeal represents the meals for a single day.
type DayMeal struct {
	Day       catalog.DayOfWeek `json:"day"`
	Breakfast Breakfast         `json:"breakfast"`
	Lunch     catalog.FoodItem  `json:"lunch"`
}

// WeeklyMealPlan represents a full Monday-to-Sunday meal plan.
// Only the current week owns Variations; a variation is a plain plan.
type WeeklyMealPlan struct {
	ID                  string           `json:"id"`
	WeekNumber          int              `json:"weekNumber"`
	Year                int              `json:"year"`
	StartDate           string           `json:"startDate"` // YYYY-MM-DD, a Monday
	EndDate             string           `json:"endDate"`   // YYYY-MM-DD, the following Sunday
	CreatedAt           time.Time        `json:"createdAt"`
	Meals               []DayMeal        `json:"meals"`
	Variations          []WeeklyMealPlan `json:"variations,omitempty"`
	SelectedVariationID string           `json:"selectedVariationId,omitempty"`
}

// FindVariation returns the variation with the given id.
func (p *WeeklyMealPlan) FindVariation(id string) (*WeeklyMealPlan, bool) {
	for i := range p.Variations {
		if p.Variations[i].ID == id {
			return &p.Variations[i], true
		}
	}
	return nil, false
}

// Displayed resolves the plan that should be shown for this week: the
// selected variation when it still exists, the plan itself otherwise.
func (p *WeeklyMealPlan) Displayed() *WeeklyMealPlan {
	if p.SelectedVariationID == "" || p.SelectedVariationID == p.ID {
		return p
	}
	if v, ok := p.FindVariation(p.SelectedVariationID); ok {
		return v
	}
	return p
}

// SameWeek reports whether the plan belongs to the given ISO week.
func (p *WeeklyMealPlan) SameWeek(year, week int) bool {
	return p.Year == year && p.WeekNumber == week
}

// MealPlanHistory is the single persisted record: the current week plus
// the most recent retired weeks, newest first.
type MealPlanHistory struct {
	CurrentWeek   *WeeklyMealPlan  `json:"currentWeek"`
	PreviousWeeks []WeeklyMealPlan `json:"previousWeeks"`
}

// NewHistory returns the canonical empty history.
func NewHistory() *MealPlanHistory {
	return &MealPlanHistory{PreviousWeeks: []WeeklyMealPlan{}}
}

// retire moves the current week to the front of PreviousWeeks and keeps at
// most maxWeeks entries.
func (h *MealPlanHistory) retire(maxWeeks int) {
	if h.CurrentWeek == nil {
		return
	}
	h.PreviousWeeks = append([]WeeklyMealPlan{*h.CurrentWeek}, h.PreviousWeeks...)
	if len(h.PreviousWeeks) > maxWeeks {
		h.PreviousWeeks = h.PreviousWeeks[:maxWeeks]
	}
	h.CurrentWeek = nil
}
