package daytime

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DayBounds returns the first and last instants of t's calendar day in
// t's own frame.
func DayBounds(t time.Time) (start, end time.Time) {
	return StartOfDay(t), EndOfDay(t)
}

// ZoneDayBounds returns, in UTC, the first and last instants of t's local
// day in the given zone.
func ZoneDayBounds(t time.Time, loc *time.Location) (start, end time.Time) {
	return StartOfZoneDay(t, loc), EndOfZoneDay(t, loc)
}

// DateBounds returns, in UTC, the bounds of the wall-clock date given as
// "2006-01-02" in the given zone. The end is the last instant of that
// local day, one tick before the next local midnight, which keeps the pair
// correct on dates containing a DST transition.
func DateBounds(date string, loc *time.Location) (start, end time.Time, err error) {
	t, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	return StartOfZoneDay(t.UTC(), loc), EndOfZoneDay(t.UTC(), loc), nil
}
