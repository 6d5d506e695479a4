package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxHistoryWeeks is the number of retired weeks kept in history.
const MaxHistoryWeeks = 4

// FoodItem is a single selectable food.
type FoodItem struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Emoji string `json:"emoji,omitempty" yaml:"emoji,omitempty"`
}

// BreadItem is a breakfast bread together with its filling.
type BreadItem struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Emoji   string `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Filling string `json:"filling" yaml:"filling"`
}

// DayOfWeek is one of the seven canonical day names.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Lunes"
	Tuesday   DayOfWeek = "Martes"
	Wednesday DayOfWeek = "Miércoles"
	Thursday  DayOfWeek = "Jueves"
	Friday    DayOfWeek = "Viernes"
	Saturday  DayOfWeek = "Sábado"
	Sunday    DayOfWeek = "Domingo"
)

// DaysOfWeek returns the canonical Monday-first day order.
func DaysOfWeek() []DayOfWeek {
	return []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Catalog holds the food items available for each meal category.
type Catalog struct {
	Breads  []BreadItem `json:"breads" yaml:"breads"`
	Fruits  []FoodItem  `json:"fruits" yaml:"fruits"`
	Drinks  []FoodItem  `json:"drinks" yaml:"drinks"`
	Lunches []FoodItem  `json:"lunches" yaml:"lunches"`
}

// Validate reports the first empty category or duplicated id.
func (c *Catalog) Validate() error {
	if len(c.Breads) == 0 {
		return fmt.Errorf("catalog category %q is empty", "breads")
	}
	breadIDs := make([]string, len(c.Breads))
	for i, b := range c.Breads {
		breadIDs[i] = b.ID
	}
	if err := checkIDs("breads", breadIDs); err != nil {
		return err
	}

	categories := []struct {
		name  string
		items []FoodItem
	}{
		{"fruits", c.Fruits},
		{"drinks", c.Drinks},
		{"lunches", c.Lunches},
	}
	for _, cat := range categories {
		if len(cat.items) == 0 {
			return fmt.Errorf("catalog category %q is empty", cat.name)
		}
		ids := make([]string, len(cat.items))
		for i, item := range cat.items {
			ids[i] = item.ID
		}
		if err := checkIDs(cat.name, ids); err != nil {
			return err
		}
	}
	return nil
}

func checkIDs(category string, ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("catalog category %q has an item without id", category)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("catalog category %q has duplicate id %q", category, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// LoadFile reads a YAML catalog from path. Categories missing from the file
// keep the values of Default().
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Category is a display group of catalog items.
type Category struct {
	Name  string     `json:"name"`
	Emoji string     `json:"emoji"`
	Items []FoodItem `json:"items"`
}

// Categories lists the catalog in display order: breads, fruits, drinks, lunches.
func (c *Catalog) Categories() []Category {
	breads := make([]FoodItem, len(c.Breads))
	for i, b := range c.Breads {
		breads[i] = FoodItem{ID: b.ID, Name: b.Name, Emoji: b.Emoji}
	}
	return []Category{
		{Name: "Panes", Emoji: "🍞", Items: breads},
		{Name: "Frutas", Emoji: "🍎", Items: c.Fruits},
		{Name: "Bebidas", Emoji: "🥤", Items: c.Drinks},
		{Name: "Almuerzos", Emoji: "🍲", Items: c.Lunches},
	}
}

// Count returns the total number of options across all categories.
func (c *Catalog) Count() int {
	return len(c.Breads) + len(c.Fruits) + len(c.Drinks) + len(c.Lunches)
}
