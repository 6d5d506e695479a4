package planner

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.UTC)
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"Monday", date(2025, time.January, 6), "2025-01-06"},
		{"Wednesday", date(2025, time.January, 8), "2025-01-06"},
		{"Sunday", date(2024, time.January, 7), "2024-01-01"},
		{"AcrossYear", date(2025, time.January, 2), "2024-12-30"},
		{"AcrossMonth", date(2025, time.March, 1), "2025-02-24"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MondayOf(tt.in)
			if got.Format(dateLayout) != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got.Format(dateLayout))
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Errorf("Expected midnight, got %s", got)
			}
		})
	}
}

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Time
		wantYear int
		wantWeek int
	}{
		{"MidYear", date(2025, time.October, 18), 2025, 42},
		{"SundayEndsWeek53", date(2021, time.January, 3), 2020, 53},
		{"DecemberInWeekOne", date(2024, time.December, 30), 2025, 1},
		{"ThursdayWeek53", date(2026, time.December, 31), 2026, 53},
		{"JanuaryFirstSunday", date(2023, time.January, 1), 2022, 52},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, week := WeekOf(tt.in)
			if year != tt.wantYear || week != tt.wantWeek {
				t.Errorf("Expected %d-W%d, got %d-W%d", tt.wantYear, tt.wantWeek, year, week)
			}
		})
	}
}

func TestFormatWeekRange(t *testing.T) {
	tests := []struct {
		start, end, want string
	}{
		{"2025-01-06", "2025-01-12", "Ene 6 - 12, 2025"},
		{"2025-01-27", "2025-02-02", "Ene 27 - Feb 2, 2025"},
		{"2024-12-30", "2025-01-05", "Dic 30 - Ene 5, 2025"},
	}
	for _, tt := range tests {
		got, err := FormatWeekRange(tt.start, tt.end)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}

	if _, err := FormatWeekRange("not-a-date", "2025-01-05"); err == nil {
		t.Error("Expected an error for an invalid start date, got nil")
	}
}
