package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/daybound/internal/cliconfig"
	"github.com/bft-labs/daybound/internal/watch"
	"github.com/bft-labs/daybound/pkg/daytime"
	logpkg "github.com/bft-labs/daybound/pkg/log"
)

const helpDescription = `
Compute calendar-day boundaries for an instant in any IANA timezone.

daybound converts a UTC instant into local wall-clock time, truncates to
the day boundary there, and converts back to UTC, so results stay correct
across DST transitions. By default it prints the boundaries for the
configured zones and exits; with --watch it keeps running and logs every
local-day rollover.

Configure via flags, DAYBOUND_* environment variables, or a TOML file
(default $HOME/.daybound/config.toml); flags win over env, env over file.
`

var exampleUsage = strings.TrimSpace(`
  daybound --zone America/New_York --zone Asia/Tokyo
  daybound --zone America/New_York --at 2023-03-12T12:00:00Z --format json
  daybound --watch --config $HOME/.daybound/config.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	root := &cobra.Command{
		Use:     "daybound",
		Short:   "Compute timezone-aware calendar-day boundaries",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first, then env, then flag overrides
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.Watch {
				return runWatch(cfg, cfgFile, log)
			}
			return runReport(cfg, cmd)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.daybound/config.toml)")
	root.Flags().StringSliceVar(&cfg.Zones, "zone", cfg.Zones, "IANA zone name (repeatable)")
	root.Flags().StringVar(&cfg.At, "at", cfg.At, "reference instant in RFC3339 (default: now)")
	root.Flags().StringVar(&cfg.Format, "format", cfg.Format, "output format: text or json")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "keep running and log local-day rollovers")
	root.Flags().BoolVar(&cfg.Reload, "reload", cfg.Reload, "reload zones on config file changes (watch mode)")
	root.Flags().DurationVar(&cfg.DebounceDelay, "debounce", cfg.DebounceDelay, "settle time before applying a config reload")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("daybound failed")
		os.Exit(1)
	}
}

// zoneReport holds the day boundaries of one zone for one instant,
// all expressed in UTC.
type zoneReport struct {
	Zone      string `json:"zone"`
	Instant   string `json:"instant"`
	LocalDate string `json:"local_date"`
	Weekday   string `json:"weekday"`

	StartOfDay         string `json:"start_of_day"`
	EndOfDay           string `json:"end_of_day"`
	StartOfPreviousDay string `json:"start_of_previous_day"`
	EndOfPreviousDay   string `json:"end_of_previous_day"`
	StartOfNextDay     string `json:"start_of_next_day"`
	EndOfNextDay       string `json:"end_of_next_day"`
}

func buildReport(t time.Time, name string) (zoneReport, error) {
	loc, err := daytime.LoadZone(name)
	if err != nil {
		return zoneReport{}, err
	}

	local := t.In(loc)
	utc := func(v time.Time) string { return v.Format(time.RFC3339Nano) }

	return zoneReport{
		Zone:      name,
		Instant:   utc(t),
		LocalDate: local.Format("2006-01-02"),
		Weekday:   daytime.DayOfWeek(local).String(),

		StartOfDay:         utc(daytime.StartOfZoneDay(t, loc)),
		EndOfDay:           utc(daytime.EndOfZoneDay(t, loc)),
		StartOfPreviousDay: utc(daytime.StartOfPreviousZoneDay(t, loc)),
		EndOfPreviousDay:   utc(daytime.EndOfPreviousZoneDay(t, loc)),
		StartOfNextDay:     utc(daytime.StartOfNextZoneDay(t, loc)),
		EndOfNextDay:       utc(daytime.EndOfNextZoneDay(t, loc)),
	}, nil
}

func runReport(cfg cliconfig.Config, cmd *cobra.Command) error {
	t, err := cfg.ReferenceTime()
	if err != nil {
		return err
	}

	reports := make([]zoneReport, 0, len(cfg.Zones))
	for _, name := range cfg.Zones {
		r, err := buildReport(t, name)
		if err != nil {
			return err
		}
		reports = append(reports, r)
	}

	out := cmd.OutOrStdout()

	if cfg.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s (%s, %s)\n", r.Zone, r.LocalDate, r.Weekday)
		fmt.Fprintf(out, "  instant:        %s\n", r.Instant)
		fmt.Fprintf(out, "  start of day:   %s\n", r.StartOfDay)
		fmt.Fprintf(out, "  end of day:     %s\n", r.EndOfDay)
		fmt.Fprintf(out, "  previous day:   %s .. %s\n", r.StartOfPreviousDay, r.EndOfPreviousDay)
		fmt.Fprintf(out, "  next day:       %s .. %s\n", r.StartOfNextDay, r.EndOfNextDay)
	}
	return nil
}

func runWatch(cfg cliconfig.Config, cfgFile string, log zerolog.Logger) error {
	watchCfg := watch.Config{
		Zones:         cfg.Zones,
		DebounceDelay: cfg.DebounceDelay,
		Logger:        logpkg.NewZerologAdapterWithLogger(log),
	}
	if cfg.Reload && cfgFile != "" && cliconfig.FileExists(cfgFile) {
		watchCfg.ConfigPath = cfgFile
	}

	w, err := watch.New(watchCfg)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	<-sigCh
	log.Info().Msg("received signal, stopping...")

	if err := w.Stop(); err != nil {
		return fmt.Errorf("stop watcher: %w", err)
	}
	return nil
}
