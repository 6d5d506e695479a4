package app

import (
	"context"
	"errors"
	"log"
	"time"

	"meal-planner/internal/catalog"
	"meal-planner/internal/metrics"
	"meal-planner/internal/planner"
)

// User-facing failure messages.
const (
	MsgGenerateFailed = "No se pudo generar el plan de comidas."
	MsgSelectNotFound = "No se encontró la variación."
	MsgSelectFailed   = "No se pudo seleccionar la variación."
	MsgClearFailed    = "No se pudo limpiar el historial."
)

// Result is the uniform shape returned to every front-end.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`

	// Err keeps the underlying error for callers that map it to a status code.
	Err error `json:"-"`
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](msg string, err error) Result[T] {
	return Result[T]{Error: msg, Err: err}
}

// IsNotFound reports whether the result failed because the target did not exist.
func (r Result[T]) IsNotFound() bool {
	return errors.Is(r.Err, planner.ErrNotFound)
}

// EventRecorder receives one event per successful mutation.
type EventRecorder interface {
	Record(ctx context.Context, e metrics.GenerationEvent) error
}

// App holds the application's dependencies.
type App struct {
	manager *planner.Manager
	catalog *catalog.Catalog
	events  EventRecorder
}

// NewApp creates and initializes a new App instance. events may be nil.
func NewApp(manager *planner.Manager, c *catalog.Catalog, events EventRecorder) *App {
	return &App{
		manager: manager,
		catalog: c,
		events:  events,
	}
}

// GetHistory returns the stored history. An unreadable store yields the
// empty history, so this never fails.
func (a *App) GetHistory(ctx context.Context) Result[*planner.MealPlanHistory] {
	return ok(a.manager.GetHistory(ctx))
}

// GenerateNewPlan starts a new week or adds a variation to the current one.
func (a *App) GenerateNewPlan(ctx context.Context) Result[*planner.WeeklyMealPlan] {
	start := time.Now()
	plan, transition, err := a.manager.Advance(ctx)
	if err != nil {
		log.Printf("Error generating meal plan: %v", err)
		return fail[*planner.WeeklyMealPlan](MsgGenerateFailed, err)
	}

	a.record(ctx, transition.String(), plan, start)
	return ok(plan)
}

// SelectVariation marks a variation, or the original plan, as displayed.
func (a *App) SelectVariation(ctx context.Context, variationID string) Result[*planner.WeeklyMealPlan] {
	start := time.Now()
	plan, err := a.manager.SelectVariation(ctx, variationID)
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			return fail[*planner.WeeklyMealPlan](MsgSelectNotFound, err)
		}
		log.Printf("Error selecting variation %s: %v", variationID, err)
		return fail[*planner.WeeklyMealPlan](MsgSelectFailed, err)
	}

	a.record(ctx, metrics.KindSelect, plan, start)
	return ok(plan)
}

// ClearHistory wipes all weeks and returns the resulting empty history.
func (a *App) ClearHistory(ctx context.Context) Result[*planner.MealPlanHistory] {
	start := time.Now()
	if err := a.manager.ClearHistory(ctx); err != nil {
		log.Printf("Error clearing history: %v", err)
		return fail[*planner.MealPlanHistory](MsgClearFailed, err)
	}

	a.record(ctx, metrics.KindClear, nil, start)
	return ok(planner.NewHistory())
}

// Catalog returns the food options plans are drawn from.
func (a *App) Catalog() Result[*catalog.Catalog] {
	return ok(a.catalog)
}

// record is best effort; a metrics failure never fails the operation.
func (a *App) record(ctx context.Context, kind string, plan *planner.WeeklyMealPlan, start time.Time) {
	if a.events == nil {
		return
	}
	e := metrics.GenerationEvent{
		Kind:      kind,
		LatencyMS: time.Since(start).Milliseconds(),
		Timestamp: time.Now().UTC(),
	}
	if plan != nil {
		e.PlanID = plan.ID
		e.WeekNumber = plan.WeekNumber
		e.Year = plan.Year
	}
	if err := a.events.Record(ctx, e); err != nil {
		log.Printf("Warning: failed to record %s event: %v", kind, err)
	}
}
