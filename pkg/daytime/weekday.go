package daytime

import (
	"fmt"
	"strings"
	"time"
)

// DayOfWeek returns the weekday of t's calendar date in t's own frame.
// For the weekday in a particular zone, convert first: DayOfWeek(t.In(loc)).
func DayOfWeek(t time.Time) time.Weekday {
	return t.Weekday()
}

// ParseWeekday maps a weekday name to its time.Weekday value. Full names
// ("Sunday") and three-letter abbreviations ("sun") are accepted,
// case-insensitively. The mapping round-trips with Weekday.String and with
// ordinal construction time.Weekday(n).
func ParseWeekday(name string) (time.Weekday, error) {
	n := strings.ToLower(name)
	for d := time.Sunday; d <= time.Saturday; d++ {
		s := strings.ToLower(d.String())
		if n == s || n == s[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}
