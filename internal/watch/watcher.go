// Package watch runs the day-rollover watcher. It tracks a set of zones,
// sleeps until the earliest upcoming local-day start among them, and logs
// each rollover. When a config path is given it also reloads the zone
// list on config file changes.
package watch

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bft-labs/daybound/pkg/daytime"
	"github.com/bft-labs/daybound/pkg/log"
)

// Config holds configuration options for the watcher.
type Config struct {
	// Zones are IANA zone names to track. At least one is required.
	Zones []string

	// ConfigPath is the config file to watch for zone-list reloads.
	// Empty disables reloading.
	ConfigPath string

	// DebounceDelay is the settle time after a file change before the
	// config is re-read. Default: 100 milliseconds.
	DebounceDelay time.Duration

	// Logger receives rollover and reload events. Default: no-op.
	Logger log.Logger
}

// Watcher logs local-day rollovers for a set of zones.
// Use New() to create an instance, then Start() to begin watching.
type Watcher struct {
	mu    sync.RWMutex
	zones map[string]*time.Location

	configPath    string
	debounceDelay time.Duration
	logger        log.Logger

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer

	// reschedule wakes the rollover loop after a zone-set change so it
	// recomputes the next boundary instead of sleeping out a stale timer.
	reschedule chan struct{}

	// reloadCh hands debounced config-file changes to the reload loop.
	reloadCh chan struct{}

	// now is swappable for tests.
	now func() time.Time
}

// New creates a new watcher with the given configuration.
// All configured zones are resolved up front; an unknown zone is an error.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Zones) == 0 {
		return nil, fmt.Errorf("at least one zone is required")
	}
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}

	zones, err := resolveZones(cfg.Zones)
	if err != nil {
		return nil, err
	}

	return &Watcher{
		zones:         zones,
		configPath:    cfg.ConfigPath,
		debounceDelay: cfg.DebounceDelay,
		logger:        cfg.Logger,
		reschedule:    make(chan struct{}, 1),
		reloadCh:      make(chan struct{}, 1),
		now:           func() time.Time { return time.Now().UTC() },
	}, nil
}

// Start begins watching in the background and returns immediately.
// The provided context bounds the lifetime of the watch loops.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.cancel != nil {
		w.mu.Unlock()
		return fmt.Errorf("watcher already started")
	}
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.mu.Unlock()

	w.logger.Info("watcher started", log.Int("zones", len(w.ZoneNames())))

	w.wg.Add(1)
	go w.rolloverLoop(runCtx)

	if w.configPath != "" {
		w.wg.Add(1)
		go w.reloadLoop(runCtx)
	}

	return nil
}

// Stop cancels the watch loops and waits for them to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	if w.debounce != nil {
		w.debounce.Stop()
		w.debounce = nil
	}
	w.mu.Unlock()

	if cancel == nil {
		return fmt.Errorf("watcher not started")
	}
	cancel()
	w.wg.Wait()
	w.logger.Info("watcher stopped")
	return nil
}

// SetZones replaces the tracked zone set and wakes the rollover loop so
// the next boundary is recomputed against the new set. Unknown zones
// leave the current set untouched.
func (w *Watcher) SetZones(names []string) error {
	zones, err := resolveZones(names)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.zones = zones
	w.mu.Unlock()

	ping(w.reschedule)
	return nil
}

// ping delivers a wakeup without blocking; a signal already pending
// covers this one.
func ping(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// ZoneNames returns the tracked zone names, sorted.
func (w *Watcher) ZoneNames() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	names := make([]string, 0, len(w.zones))
	for name := range w.zones {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// rolloverLoop sleeps until the next local-day start among the tracked
// zones, logs the rollover, and goes back to sleep.
func (w *Watcher) rolloverLoop(ctx context.Context) {
	defer w.wg.Done()

	for {
		at, due := w.nextRollover(w.now())
		w.logger.Debug("rollover scheduled", log.Time("at", at), log.Int("zones", len(due)))

		timer := time.NewTimer(time.Until(at))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-w.reschedule:
			// Zone set changed; drop the stale timer and recompute.
			timer.Stop()
			continue
		case <-timer.C:
		}

		for _, name := range due {
			w.logRollover(name, at)
		}
	}
}

// nextRollover returns the earliest upcoming local-day start across the
// tracked zones and the names of the zones that roll over at that instant.
func (w *Watcher) nextRollover(now time.Time) (at time.Time, due []string) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for name, loc := range w.zones {
		next := daytime.StartOfNextZoneDay(now, loc)
		switch {
		case at.IsZero() || next.Before(at):
			at = next
			due = []string{name}
		case next.Equal(at):
			due = append(due, name)
		}
	}
	sort.Strings(due)
	return at, due
}

func (w *Watcher) logRollover(name string, at time.Time) {
	w.mu.RLock()
	loc, ok := w.zones[name]
	w.mu.RUnlock()
	if !ok {
		// Zone was reloaded away while the timer slept.
		return
	}

	local := at.In(loc)
	dayLen := daytime.StartOfNextZoneDay(at, loc).Sub(at)

	w.logger.Info("day rollover",
		log.String("zone", name),
		log.String("local_date", local.Format("2006-01-02")),
		log.String("weekday", daytime.DayOfWeek(local).String()),
		log.Time("utc", at),
		log.Duration("day_length", dayLen),
	)
}

func resolveZones(names []string) (map[string]*time.Location, error) {
	zones := make(map[string]*time.Location, len(names))
	for _, name := range names {
		loc, err := daytime.LoadZone(name)
		if err != nil {
			return nil, err
		}
		zones[name] = loc
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("at least one zone is required")
	}
	return zones, nil
}
