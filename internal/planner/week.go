package planner

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// MondayOf returns midnight of the Monday on or before t, in t's location.
// Sunday counts as the seventh day of the week.
func MondayOf(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	y, m, d := t.Date()
	return time.Date(y, m, d-(weekday-1), 0, 0, 0, 0, t.Location())
}

// WeekOf returns the ISO-8601 year and week number of the week containing t.
func WeekOf(t time.Time) (year, week int) {
	return MondayOf(t).ISOWeek()
}

var monthAbbrevs = [...]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// FormatWeekRange renders a start/end date pair as "Ene 6 - 12, 2025", or
// "Ene 30 - Feb 5, 2025" when the range spans two months.
func FormatWeekRange(startDate, endDate string) (string, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return "", fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return "", fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	startMonth := monthAbbrevs[start.Month()-1]
	endMonth := monthAbbrevs[end.Month()-1]
	if startMonth == endMonth {
		return fmt.Sprintf("%s %d - %d, %d", startMonth, start.Day(), end.Day(), end.Year()), nil
	}
	return fmt.Sprintf("%s %d - %s %d, %d", startMonth, start.Day(), endMonth, end.Day(), end.Year()), nil
}
