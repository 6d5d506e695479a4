package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"meal-planner/internal/planner"
)

// ErrNoHistory is returned by Load when nothing has been saved yet.
var ErrNoHistory = errors.New("no meal plan history stored")

// FileHistoryStore keeps the meal plan history in a single JSON file.
type FileHistoryStore struct {
	path string
}

var _ planner.HistoryStore = (*FileHistoryStore)(nil)

// NewFileHistoryStore creates a new FileHistoryStore and ensures the parent directory exists.
func NewFileHistoryStore(path string) (*FileHistoryStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return &FileHistoryStore{path: path}, nil
}

// Path returns the location of the history file.
func (s *FileHistoryStore) Path() string {
	return s.path
}

// Load reads the history file.
func (s *FileHistoryStore) Load(ctx context.Context) (*planner.MealPlanHistory, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoHistory
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	return decodeHistory(data)
}

// Save replaces the history file atomically.
func (s *FileHistoryStore) Save(ctx context.Context, history *planner.MealPlanHistory) error {
	data, err := encodeHistory(history)
	if err != nil {
		return err
	}
	if err := AtomicWriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

func encodeHistory(history *planner.MealPlanHistory) ([]byte, error) {
	if history.PreviousWeeks == nil {
		copied := *history
		copied.PreviousWeeks = []planner.WeeklyMealPlan{}
		history = &copied
	}
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history: %w", err)
	}
	return data, nil
}

func decodeHistory(data []byte) (*planner.MealPlanHistory, error) {
	var history planner.MealPlanHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}
	if history.PreviousWeeks == nil {
		history.PreviousWeeks = []planner.WeeklyMealPlan{}
	}
	return &history, nil
}
