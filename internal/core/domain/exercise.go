package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the only calendar-date format accepted from clients
// (the `date`, `from` and `to` inputs).
const DateLayout = "2006-01-02"

// dateStringLayout matches JavaScript's Date.toDateString(), which is the
// format the API renders dates in: "Mon May 15 2023".
const dateStringLayout = "Mon Jan 02 2006"

// Exercise is a single logged activity. UserID is a by-value reference to a
// User; nothing enforces it beyond the lookup performed at creation time.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"user_id"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"`
	Date        time.Time          `bson:"date"`
}

// ParseDate parses a client-supplied calendar date. The result is midnight UTC
// of that day, so range comparisons ignore time-of-day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders a date the way the log endpoints return it.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateStringLayout)
}

// Today returns the current calendar date at midnight UTC.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
