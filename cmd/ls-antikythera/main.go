// Command ls-antikythera is a terminal planetarium: it computes and draws
// the sky above an observer at a simulated instant.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-antikythera/internal/almanac"
	"github.com/litescript/ls-antikythera/internal/config"
	"github.com/litescript/ls-antikythera/internal/logging"
	"github.com/litescript/ls-antikythera/internal/state"
	"github.com/litescript/ls-antikythera/internal/ui"
	"github.com/litescript/ls-antikythera/internal/version"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	chartMode     bool
	jsonPath      string
	watchInterval time.Duration
	showVersion   bool
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	lat := flag.Float64("lat", 0, "Observer latitude in degrees (overrides config)")
	lon := flag.Float64("lon", 0, "Observer longitude in degrees (overrides config)")
	startStr := flag.String("time", "", "Simulated start time, RFC 3339 (default: now)")
	rate := flag.Float64("rate", 0, "Simulated seconds per wall second (overrides config)")
	starsPath := flag.String("stars", "", "Star catalog file (default: embedded)")
	planetsPath := flag.String("planets", "", "Planet table file (default: embedded)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Log to file instead of stderr")
	flag.BoolVar(&summaryMode, "summary", false, "Print the almanac table instead of the TUI")
	flag.BoolVar(&chartMode, "chart", false, "Print a one-shot ASCII chart instead of the TUI")
	flag.StringVar(&jsonPath, "json", "", "Export the sky as JSON to file (use - for stdout)")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 30s)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("ls-antikythera v" + version.Version)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Flag overrides win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			cfg.Observer.LatitudeDeg = *lat
		case "lon":
			cfg.Observer.LongitudeDeg = *lon
		case "time":
			cfg.Time.Start = *startStr
		case "rate":
			cfg.Time.Rate = *rate
		case "stars":
			cfg.Catalog.Stars = *starsPath
		case "planets":
			cfg.Catalog.Planets = *planetsPath
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-file":
			cfg.Log.File = *logFile
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Open(logging.ParseLevel(cfg.Log.Level), cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	stars, err := cfg.LoadStars()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	planets, err := cfg.LoadPlanets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("Loaded %d stars, %d planets", len(stars), len(planets))

	obs := state.Observer{LatRad: cfg.LatRad(), LonRad: cfg.LonRad()}
	stateCfg := state.DefaultConfig()
	stateCfg.Start = cfg.StartTime()
	stateCfg.Rate = cfg.Time.Rate
	stateMgr := state.NewManager(stateCfg, obs, stars, planets)

	logger.Info("Observer at %.4f°, %.4f°; clock starts %s at %gx",
		cfg.Observer.LatitudeDeg, cfg.Observer.LongitudeDeg,
		stateCfg.Start.Format(time.RFC3339), stateCfg.Rate)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Headless mode: no TUI. A non-terminal stdout implies it too.
	headless := summaryMode || chartMode || jsonPath != "" || !term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		go func() {
			<-sigCh
			cancel()
		}()
		runHeadless(ctx, stateMgr, logger)
		return
	}

	model := ui.New(stateMgr)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		select {
		case <-sigCh:
			p.Quit()
		case <-ctx.Done():
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless prints the almanac once, or repeatedly in watch mode with the
// simulated clock running between outputs.
func runHeadless(ctx context.Context, stateMgr *state.Manager, logger *logging.Logger) {
	outputOnce := func() error {
		snap := stateMgr.Snapshot()

		if jsonPath != "" {
			export := almanac.ExportSky(snap.Sky)
			if jsonPath == "-" {
				return export.WriteJSON(os.Stdout)
			}
			f, err := os.Create(jsonPath)
			if err != nil {
				return fmt.Errorf("create JSON file: %w", err)
			}
			defer f.Close()
			if err := export.WriteJSON(f); err != nil {
				return fmt.Errorf("write JSON: %w", err)
			}
		}

		if chartMode {
			width, height := 80, 36
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				width, height = w, h-2
			}
			chart := ui.NewChartModel().SetSize(width, height).UpdateData(snap)
			fmt.Println(chart.View())
		}

		if summaryMode || (jsonPath == "" && !chartMode) {
			almanac.WriteTable(os.Stdout, snap.Sky)
		}
		return nil
	}

	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watch loop shutting down")
			return
		case <-ticker.C:
			stateMgr.Advance(watchInterval)
			fmt.Println()
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
