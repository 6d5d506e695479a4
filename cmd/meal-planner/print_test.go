package main

import (
	"bytes"
	"strings"
	"testing"

	"meal-planner/internal/catalog"
	"meal-planner/internal/planner"
)

func TestPrintPlanAndVariations(t *testing.T) {
	c := catalog.Default()
	meal := planner.DayMeal{
		Day:       catalog.Monday,
		Breakfast: planner.Breakfast{Drink: c.Drinks[3], Bread: c.Breads[1], Fruit: c.Fruits[1]},
		Lunch:     c.Lunches[0],
	}
	current := &planner.WeeklyMealPlan{
		ID:        "orig",
		StartDate: "2025-01-06",
		EndDate:   "2025-01-12",
		Meals:     []planner.DayMeal{meal},
		Variations: []planner.WeeklyMealPlan{
			{ID: "var-1", StartDate: "2025-01-06", EndDate: "2025-01-12"},
		},
		SelectedVariationID: "var-1",
	}

	var buf bytes.Buffer
	printVariations(&buf, current)
	printPlan(&buf, current, "Esta Semana")
	out := buf.String()

	if !strings.Contains(out, "   Original  orig") {
		t.Errorf("Expected unmarked original, got:\n%s", out)
	}
	if !strings.Contains(out, " * Var. 1    var-1") {
		t.Errorf("Expected marked variation, got:\n%s", out)
	}
	if !strings.Contains(out, "Esta Semana (Ene 6 - 12, 2025)") {
		t.Errorf("Missing title, got:\n%s", out)
	}
	if !strings.Contains(out, "Desayuno: Jugo de Naranja, Pan con Huevo, Plátano") {
		t.Errorf("Missing breakfast, got:\n%s", out)
	}
	if !strings.Contains(out, "Almuerzo: Lentejas") {
		t.Errorf("Missing lunch, got:\n%s", out)
	}
}

func TestPrintHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, nil)
	if buf.String() != "Sin semanas anteriores.\n" {
		t.Errorf("Unexpected output %q", buf.String())
	}
}

func TestPrintOptions(t *testing.T) {
	var buf bytes.Buffer
	printOptions(&buf, catalog.Default())
	out := buf.String()
	if !strings.HasPrefix(out, "Opciones de Comida (40 opciones)") {
		t.Errorf("Unexpected header:\n%s", out)
	}
	for _, name := range []string{"Panes (7)", "Frutas (8)", "Bebidas (11)", "Almuerzos (14)"} {
		if !strings.Contains(out, name) {
			t.Errorf("Missing category %s", name)
		}
	}
}
