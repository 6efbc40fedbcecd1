package watch

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/bft-labs/daybound/pkg/daytime"
	"github.com/bft-labs/daybound/pkg/log"
)

// recordLogger captures log entries in order for assertions.
type recordLogger struct {
	mu      sync.Mutex
	entries []recordEntry
}

type recordEntry struct {
	msg    string
	fields []log.Field
}

func (r *recordLogger) record(msg string, fields []log.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, recordEntry{msg: msg, fields: fields})
}

func (r *recordLogger) Debug(msg string, fields ...log.Field) { r.record(msg, fields) }
func (r *recordLogger) Info(msg string, fields ...log.Field)  { r.record(msg, fields) }
func (r *recordLogger) Warn(msg string, fields ...log.Field)  { r.record(msg, fields) }
func (r *recordLogger) Error(msg string, fields ...log.Field) { r.record(msg, fields) }

// snapshot returns a copy of the recorded entries.
func (r *recordLogger) snapshot() []recordEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordEntry(nil), r.entries...)
}

// fieldTime extracts a time-valued field by key.
func fieldTime(e recordEntry, key string) (time.Time, bool) {
	for _, f := range e.fields {
		if f.Key == key {
			if v, ok := f.Value.(time.Time); ok {
				return v, true
			}
		}
	}
	return time.Time{}, false
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid single zone",
			cfg:  Config{Zones: []string{"UTC"}},
		},
		{
			name: "valid multiple zones",
			cfg:  Config{Zones: []string{"America/New_York", "Asia/Tokyo"}},
		},
		{
			name:    "no zones",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name:    "unknown zone",
			cfg:     Config{Zones: []string{"Not/AZone"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWatcher_NextRollover(t *testing.T) {
	w, err := New(Config{Zones: []string{"America/New_York", "Asia/Tokyo"}})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// At 12:00Z Tokyo's next midnight (15:00Z) comes before New York's
	// (04:00Z or 05:00Z the next day).
	now := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	at, due := w.nextRollover(now)

	wantAt := time.Date(2023, 6, 15, 15, 0, 0, 0, time.UTC)
	if !at.Equal(wantAt) {
		t.Errorf("at = %v, want %v", at, wantAt)
	}
	if !reflect.DeepEqual(due, []string{"Asia/Tokyo"}) {
		t.Errorf("due = %v, want [Asia/Tokyo]", due)
	}
}

func TestWatcher_NextRollover_Simultaneous(t *testing.T) {
	// Two names for the same offset roll over at the same instant.
	w, err := New(Config{Zones: []string{"UTC", "Etc/UTC"}})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	now := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	at, due := w.nextRollover(now)

	wantAt := time.Date(2023, 6, 16, 0, 0, 0, 0, time.UTC)
	if !at.Equal(wantAt) {
		t.Errorf("at = %v, want %v", at, wantAt)
	}
	if !reflect.DeepEqual(due, []string{"Etc/UTC", "UTC"}) {
		t.Errorf("due = %v, want both zones", due)
	}
}

// Across the spring-forward night the next New York rollover is 23 hours
// of wall time away, not 24.
func TestWatcher_NextRollover_SpringForward(t *testing.T) {
	w, err := New(Config{Zones: []string{"America/New_York"}})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	now := time.Date(2023, 3, 12, 5, 0, 0, 0, time.UTC) // 00:00 EST Mar 12
	at, _ := w.nextRollover(now)

	wantAt := time.Date(2023, 3, 13, 4, 0, 0, 0, time.UTC) // 00:00 EDT Mar 13
	if !at.Equal(wantAt) {
		t.Errorf("at = %v, want %v", at, wantAt)
	}
	if got := at.Sub(now); got != 23*time.Hour {
		t.Errorf("until rollover = %v, want 23h", got)
	}
}

func TestWatcher_SetZones(t *testing.T) {
	w, err := New(Config{Zones: []string{"UTC"}})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := w.SetZones([]string{"Asia/Tokyo", "Europe/Berlin"}); err != nil {
		t.Fatalf("SetZones() failed: %v", err)
	}
	want := []string{"Asia/Tokyo", "Europe/Berlin"}
	if got := w.ZoneNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ZoneNames() = %v, want %v", got, want)
	}

	// Unknown zone keeps the current set.
	if err := w.SetZones([]string{"Not/AZone"}); err == nil {
		t.Error("SetZones(Not/AZone) = nil error, want error")
	}
	if got := w.ZoneNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ZoneNames() after bad reload = %v, want %v", got, want)
	}
}

// A zone-set change while the rollover loop sleeps must wake it so the
// new set's earlier boundary is scheduled, not slept past.
func TestWatcher_RescheduleOnSetZones(t *testing.T) {
	rec := &recordLogger{}
	w, err := New(Config{
		Zones:  []string{"UTC"},
		Logger: rec,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Pin the clock far in the future so the real timer never fires and
	// only a wakeup can produce a second scheduling entry.
	now := time.Date(2100, 1, 1, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return now }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	defer w.Stop()

	waitScheduled := func(n int) []recordEntry {
		deadline := time.Now().Add(2 * time.Second)
		for time.Now().Before(deadline) {
			var scheduled []recordEntry
			for _, e := range rec.snapshot() {
				if e.msg == "rollover scheduled" {
					scheduled = append(scheduled, e)
				}
			}
			if len(scheduled) >= n {
				return scheduled
			}
			time.Sleep(10 * time.Millisecond)
		}
		t.Fatalf("saw fewer than %d scheduling entries", n)
		return nil
	}

	waitScheduled(1)

	if err := w.SetZones([]string{"Asia/Tokyo"}); err != nil {
		t.Fatalf("SetZones() failed: %v", err)
	}
	scheduled := waitScheduled(2)

	tokyo, err := daytime.LoadZone("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadZone() failed: %v", err)
	}
	wantAt := daytime.StartOfNextZoneDay(now, tokyo) // 15:00Z, before UTC's 00:00Z
	at, ok := fieldTime(scheduled[len(scheduled)-1], "at")
	if !ok {
		t.Fatal("scheduling entry has no at field")
	}
	if !at.Equal(wantAt) {
		t.Errorf("rescheduled at = %v, want %v", at, wantAt)
	}
}

func TestWatcher_StartStop(t *testing.T) {
	w, err := New(Config{
		Zones:  []string{"UTC"},
		Logger: log.NewNoopLogger(),
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if err := w.Start(ctx); err == nil {
		t.Error("second Start() = nil error, want error")
	}
	if err := w.Stop(); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}
	if err := w.Stop(); err == nil {
		t.Error("second Stop() = nil error, want error")
	}
}
