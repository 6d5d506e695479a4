package main

import (
	"fmt"
	"io"
	"strings"

	"meal-planner/internal/catalog"
	"meal-planner/internal/metrics"
	"meal-planner/internal/planner"
)

func weekRange(p *planner.WeeklyMealPlan) string {
	r, err := planner.FormatWeekRange(p.StartDate, p.EndDate)
	if err != nil {
		return p.StartDate + " - " + p.EndDate
	}
	return r
}

func printPlan(w io.Writer, plan *planner.WeeklyMealPlan, title string) {
	fmt.Fprintf(w, "%s (%s)\n", title, weekRange(plan))
	fmt.Fprintln(w, strings.Repeat("=", 40))
	for _, m := range plan.Meals {
		fmt.Fprintf(w, "%-10s Desayuno: %s, %s, %s\n", m.Day,
			m.Breakfast.Drink.Name, m.Breakfast.Bread.Name, m.Breakfast.Fruit.Name)
		fmt.Fprintf(w, "%-10s Almuerzo: %s\n", "", m.Lunch.Name)
	}
}

func printVariations(w io.Writer, current *planner.WeeklyMealPlan) {
	if len(current.Variations) == 0 {
		return
	}
	displayedID := current.Displayed().ID
	marker := func(id string) string {
		if id == displayedID {
			return "*"
		}
		return " "
	}

	fmt.Fprintln(w, "Variaciones:")
	fmt.Fprintf(w, " %s Original  %s\n", marker(current.ID), current.ID)
	for i, v := range current.Variations {
		fmt.Fprintf(w, " %s Var. %-4d %s\n", marker(v.ID), i+1, v.ID)
	}
	fmt.Fprintln(w)
}

func printHistory(w io.Writer, weeks []planner.WeeklyMealPlan) {
	if len(weeks) == 0 {
		fmt.Fprintln(w, "Sin semanas anteriores.")
		return
	}
	fmt.Fprintf(w, "Semanas Anteriores (%d)\n", len(weeks))
	for i := range weeks {
		fmt.Fprintln(w)
		printPlan(w, weeks[i].Displayed(), fmt.Sprintf("Semana %d", weeks[i].WeekNumber))
	}
}

func printOptions(w io.Writer, c *catalog.Catalog) {
	fmt.Fprintf(w, "Opciones de Comida (%d opciones)\n", c.Count())
	for _, cat := range c.Categories() {
		fmt.Fprintf(w, "\n%s %s (%d)\n", cat.Emoji, cat.Name, len(cat.Items))
		for _, item := range cat.Items {
			fmt.Fprintf(w, "  %-10s %s %s\n", item.ID, item.Emoji, item.Name)
		}
	}
}

func printMetrics(w io.Writer, activity []metrics.DailyActivity, dataDir string) {
	fmt.Fprintln(w, "Actividad reciente")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	if len(activity) == 0 {
		fmt.Fprintln(w, "  (sin datos)")
	}
	for _, d := range activity {
		fmt.Fprintf(w, "  %s  planes=%d variaciones=%d selecciones=%d borrados=%d\n",
			d.Date, d.Plans, d.Variations, d.Selections, d.Clears)
	}

	fmt.Fprintln(w, "\nSistema")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	for _, line := range strings.Split(metrics.GetSysHealth(dataDir).Summary(), "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
