package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"meal-planner/internal/catalog"
	"meal-planner/internal/metrics"
	"meal-planner/internal/planner"
)

// keyboardRowSize is the number of variation buttons per keyboard row.
const keyboardRowSize = 4

func formatPlanMarkdown(plan *planner.WeeklyMealPlan, title string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 *%s*\n", title)
	if r, err := planner.FormatWeekRange(plan.StartDate, plan.EndDate); err == nil {
		fmt.Fprintf(&sb, "_%s_\n", r)
	}
	sb.WriteString("\n")

	for _, m := range plan.Meals {
		fmt.Fprintf(&sb, "*%s*\n", m.Day)
		fmt.Fprintf(&sb, "🌅 %s, %s, %s\n",
			itemLabel(m.Breakfast.Drink.Emoji, m.Breakfast.Drink.Name),
			itemLabel(m.Breakfast.Bread.Emoji, m.Breakfast.Bread.Name),
			itemLabel(m.Breakfast.Fruit.Emoji, m.Breakfast.Fruit.Name),
		)
		fmt.Fprintf(&sb, "🍽️ %s\n\n", itemLabel(m.Lunch.Emoji, m.Lunch.Name))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func itemLabel(emoji, name string) string {
	if emoji == "" {
		return name
	}
	return emoji + " " + name
}

// variationKeyboard offers "Original" plus one button per variation. It is
// nil when the week has no variations.
func variationKeyboard(current *planner.WeeklyMealPlan) *tgbotapi.InlineKeyboardMarkup {
	if len(current.Variations) == 0 {
		return nil
	}
	displayedID := current.Displayed().ID

	button := func(label, id string) tgbotapi.InlineKeyboardButton {
		if id == displayedID {
			label = "✓ " + label
		}
		return tgbotapi.NewInlineKeyboardButtonData(label, selectPrefix+id)
	}

	buttons := []tgbotapi.InlineKeyboardButton{button("Original", current.ID)}
	for i, v := range current.Variations {
		buttons = append(buttons, button(fmt.Sprintf("Var. %d", i+1), v.ID))
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for len(buttons) > 0 {
		n := min(keyboardRowSize, len(buttons))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons[:n]...))
		buttons = buttons[n:]
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &keyboard
}

func formatHistoryMarkdown(weeks []planner.WeeklyMealPlan) string {
	if len(weeks) == 0 {
		return "🗂️ *Semanas Anteriores*\n\n_Sin semanas anteriores_"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🗂️ *Semanas Anteriores* (%d)\n", len(weeks))
	for _, w := range weeks {
		shown := w.Displayed()
		r, err := planner.FormatWeekRange(w.StartDate, w.EndDate)
		if err != nil {
			r = w.StartDate
		}
		fmt.Fprintf(&sb, "\n*Semana %d*: %s\n", w.WeekNumber, r)
		for _, m := range shown.Meals {
			fmt.Fprintf(&sb, "• %s: %s\n", m.Day, itemLabel(m.Lunch.Emoji, m.Lunch.Name))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatOptionsMarkdown(c *catalog.Catalog) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🍴 *Opciones de Comida* (%d opciones)\n", c.Count())
	for _, cat := range c.Categories() {
		fmt.Fprintf(&sb, "\n%s *%s* (%d)\n", cat.Emoji, cat.Name, len(cat.Items))
		names := make([]string, len(cat.Items))
		for i, item := range cat.Items {
			names[i] = itemLabel(item.Emoji, item.Name)
		}
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatMetricsMarkdown(activity []metrics.DailyActivity, health metrics.SysHealth) string {
	var sb strings.Builder
	sb.WriteString("📊 *Uso y Estado*\n\n")

	sb.WriteString("🗓 *Actividad reciente*\n")
	if len(activity) == 0 {
		sb.WriteString("_Sin datos_\n")
	}
	for _, d := range activity {
		fmt.Fprintf(&sb, "• *%s*: %d planes, %d variaciones, %d selecciones, %d borrados\n",
			d.Date, d.Plans, d.Variations, d.Selections, d.Clears)
	}

	sb.WriteString("\n🧠 *Sistema*\n")
	for _, line := range strings.Split(health.Summary(), "\n") {
		fmt.Fprintf(&sb, "• %s\n", line)
	}
	return strings.TrimRight(sb.String(), "\n")
}
