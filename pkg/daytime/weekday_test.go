package daytime

import (
	"testing"
	"time"
)

// 2023-03-12 through 2023-03-18 covers Sunday through Saturday.
func TestDayOfWeek_AllDays(t *testing.T) {
	for i := 0; i < 7; i++ {
		in := time.Date(2023, 3, 12+i, 12, 0, 0, 0, time.UTC)
		want := time.Weekday(i)
		if got := DayOfWeek(in); got != want {
			t.Errorf("DayOfWeek(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestDayOfWeek_ZoneNaive(t *testing.T) {
	tokyo, err := LoadZone("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadZone failed: %v", err)
	}

	// 2023-06-17T20:00Z is Saturday in UTC but already Sunday in Tokyo.
	in := time.Date(2023, 6, 17, 20, 0, 0, 0, time.UTC)
	if got := DayOfWeek(in); got != time.Saturday {
		t.Errorf("DayOfWeek(%v) = %v, want Saturday", in, got)
	}
	if got := DayOfWeek(in.In(tokyo)); got != time.Sunday {
		t.Errorf("DayOfWeek(%v in tokyo) = %v, want Sunday", in, got)
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{name: "full name", in: "Sunday", want: time.Sunday},
		{name: "lowercase", in: "wednesday", want: time.Wednesday},
		{name: "abbreviation", in: "Fri", want: time.Friday},
		{name: "lowercase abbreviation", in: "sat", want: time.Saturday},
		{name: "unknown", in: "Funday", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekday(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekday(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseWeekday(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// Name and ordinal construction must agree for every variant.
func TestParseWeekday_RoundTrip(t *testing.T) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		byName, err := ParseWeekday(d.String())
		if err != nil {
			t.Fatalf("ParseWeekday(%q) failed: %v", d.String(), err)
		}
		if byName != d {
			t.Errorf("ParseWeekday(%q) = %v, want %v", d.String(), byName, d)
		}
		if byOrdinal := time.Weekday(int(d)); byOrdinal != byName {
			t.Errorf("ordinal %d = %v, by name = %v", int(d), byOrdinal, byName)
		}
	}
}
