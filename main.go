package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/sadopc/bulletproof/internal/config"
	"github.com/sadopc/bulletproof/internal/history"
	"github.com/sadopc/bulletproof/internal/logging"
	"github.com/sadopc/bulletproof/internal/plan"
	"github.com/sadopc/bulletproof/internal/program"
	"github.com/sadopc/bulletproof/internal/store"
	"github.com/sadopc/bulletproof/internal/tui"
)

// BuildVersion is set at compile time via -ldflags.
var BuildVersion = "dev"

func main() {
	configPath := flag.String("config", "", "path for the TOML config file (default ~/.config/bulletproof/config.toml)")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("bulletproof", BuildVersion)
		return
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, closer, err := logging.Setup(logging.SetupParams{
		FileName:   cfg.Log.File,
		Level:      cfg.Log.Level,
		FormatJSON: cfg.Log.JSON,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	prog, err := loadProgram(cfg.Program.Path)
	if err != nil {
		return err
	}

	s, err := store.New(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer s.Close()

	var checkins history.Store = s
	if cfg.Storage.Backend == config.BackendCSV {
		checkins = history.NewCSVLog(cfg.Storage.CSVPath)
	}

	tracker := history.NewTracker(checkins, log)
	streak := startupStreak(tracker, log)
	log.WithFields(logrus.Fields{
		"version": BuildVersion,
		"backend": cfg.Storage.Backend,
		"db":      cfg.Storage.DBPath,
		"streak":  streak,
	}).Info("starting")

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	app := tui.NewApp(tui.Deps{
		Program:    prog,
		Resolver:   plan.NewResolver(prog),
		Tracker:    tracker,
		Store:      s,
		Log:        log,
		ExportDir:  home,
		StartPhase: cfg.Program.Phase,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return err
	}
	log.Info("stopped")
	return nil
}

// startupStreak reads the streak for the startup log line. An unreadable log
// is reported here and again by the dashboard, never fatal.
func startupStreak(tr *history.Tracker, log logrus.FieldLogger) int {
	streak, err := tr.Streak()
	if err != nil {
		log.WithError(err).Warn("history not readable at startup")
		return 0
	}
	return streak
}

func loadProgram(path string) (*program.Config, error) {
	if path == "" {
		return program.Default()
	}
	return program.Load(path)
}
