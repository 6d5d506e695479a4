package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"meal-planner/internal/planner"
)

// historyRowID is the primary key of the only row in meal_plan_history.
const historyRowID = 1

// SQLiteHistoryStore keeps the history document in a single-row table.
// The schema is created by database.RunMigrations.
type SQLiteHistoryStore struct {
	db *sql.DB
}

var _ planner.HistoryStore = (*SQLiteHistoryStore)(nil)

// NewSQLiteHistoryStore creates a new SQLiteHistoryStore.
func NewSQLiteHistoryStore(db *sql.DB) *SQLiteHistoryStore {
	return &SQLiteHistoryStore{db: db}
}

func (s *SQLiteHistoryStore) Load(ctx context.Context) (*planner.MealPlanHistory, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM meal_plan_history WHERE id = ?", historyRowID,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoHistory
		}
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	return decodeHistory([]byte(data))
}

func (s *SQLiteHistoryStore) Save(ctx context.Context, history *planner.MealPlanHistory) error {
	data, err := encodeHistory(history)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO meal_plan_history (id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		historyRowID, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert history: %w", err)
	}
	return nil
}
