package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// timestampLayout sorts lexicographically, so range filters can compare strings.
const timestampLayout = "2006-01-02 15:04:05"

// Event kinds recorded by the app layer.
const (
	KindPlan      = "plan"
	KindVariation = "variation"
	KindSelect    = "select"
	KindClear     = "clear"
)

// GenerationEvent records metadata for a single history mutation.
type GenerationEvent struct {
	Kind       string
	PlanID     string
	WeekNumber int
	Year       int
	LatencyMS  int64
	Timestamp  time.Time
}

// Store handles persistence of metrics to SQLite.
type Store struct {
	db *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record saves an event to the database.
func (s *Store) Record(ctx context.Context, e GenerationEvent) error {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generation_events (kind, plan_id, week_number, year, latency_ms, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.Kind, e.PlanID, e.WeekNumber, e.Year, e.LatencyMS, ts.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to insert generation event: %w", err)
	}
	return nil
}

// DailyActivity represents event totals for a single day.
type DailyActivity struct {
	Date       string
	Plans      int
	Variations int
	Selections int
	Clears     int
	Total      int
}

// GetDailyActivity retrieves activity for the last N days, newest day first.
func (s *Store) GetDailyActivity(ctx context.Context, days int) ([]DailyActivity, error) {
	since := time.Now().UTC().AddDate(0, 0, -days).Format(timestampLayout)
	rows, err := s.db.QueryContext(ctx, `
		SELECT substr(timestamp, 1, 10) AS day,
			SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END),
			SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END),
			SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END),
			SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END),
			COUNT(*)
		FROM generation_events
		WHERE timestamp >= ?
		GROUP BY day
		ORDER BY day DESC`,
		KindPlan, KindVariation, KindSelect, KindClear, since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily activity: %w", err)
	}
	defer rows.Close()

	var results []DailyActivity
	for rows.Next() {
		var a DailyActivity
		if err := rows.Scan(&a.Date, &a.Plans, &a.Variations, &a.Selections, &a.Clears, &a.Total); err != nil {
			return nil, fmt.Errorf("failed to scan daily activity: %w", err)
		}
		results = append(results, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily activity: %w", err)
	}
	return results, nil
}

// Cleanup removes records older than the specified number of days.
func (s *Store) Cleanup(ctx context.Context, olderThanDays int) (int64, error) {
	threshold := time.Now().UTC().AddDate(0, 0, -olderThanDays).Format(timestampLayout)
	res, err := s.db.ExecContext(ctx, "DELETE FROM generation_events WHERE timestamp < ?", threshold)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up generation events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n, nil
}
