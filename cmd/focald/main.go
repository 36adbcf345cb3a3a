package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focald/internal/config"
	"github.com/sandeepkv93/focald/internal/scheduler"
	"github.com/sandeepkv93/focald/internal/storage"
	"github.com/sandeepkv93/focald/internal/store"
	"github.com/sandeepkv93/focald/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "focald failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a focald config file (yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if dir := filepath.Dir(cfg.Database.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	repo, err := storage.OpenSQLite(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer repo.Close()
	if err := storage.MigrateUp(repo.DB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	engine := scheduler.NewEngine(cfg.Scheduler.Buffer)
	engine.Start()
	defer engine.Stop()

	svc := store.NewService(repo, engine)

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.Notifications.Desktop {
		notifier = update.ExecDesktopNotifier{}
	}

	program := tea.NewProgram(update.NewModelWithRuntime(svc, engine, notifier, cfg))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
