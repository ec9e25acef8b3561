package entity

import "time"

// DateLayout is the calendar date format used for meal dates on the wire.
const DateLayout = "2006-01-02"

// Meal is a single meal log record. It is unrelated to Entry.
type Meal struct {
	ID        int64
	MealName  string
	Calories  int
	Date      time.Time // calendar date, midnight UTC
	UserEmail string    // empty when not provided
	CreatedAt time.Time
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
