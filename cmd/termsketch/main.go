package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"termsketch/internal/apps/counter"
	"termsketch/internal/apps/pong"
	"termsketch/internal/config"
	"termsketch/internal/diagram"
	"termsketch/internal/engine"
)

const usage = "usage: termsketch [diagrams|counter|pong]"

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	name := "diagrams"
	if len(args) > 0 {
		name = args[0]
	}
	app, err := newApp(name, cfg)
	if err != nil {
		return err
	}

	e := engine.New(app)
	e.SetTargetFPS(cfg.FPS)

	mouse := tea.WithMouseAllMotion()
	if !cfg.AllMotion {
		mouse = tea.WithMouseCellMotion()
	}
	p := tea.NewProgram(e, tea.WithAltScreen(), mouse)

	engine.Logger().Info("starting", "app", name, "fps", cfg.FPS)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

func newApp(name string, cfg *config.Config) (engine.App, error) {
	switch name {
	case "diagrams", "diagram":
		intent, err := diagram.ParseIntent(cfg.Intent)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		return diagram.New(diagram.WithIntent(intent), diagram.WithColor(cfg.Color)), nil
	case "counter":
		return counter.New(), nil
	case "pong":
		return pong.New(), nil
	}
	return nil, fmt.Errorf("unknown app %q\n%s", name, usage)
}

// setupLogging sends engine logs to the configured file. Without one the
// logger stays silent since the terminal is in use.
func setupLogging(cfg *config.Config) (func(), error) {
	if cfg.LogFile == "" {
		return func() {}, nil
	}
	f, err := tea.LogToFile(cfg.LogFile, "termsketch")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	engine.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel})))
	return func() { f.Close() }, nil
}
