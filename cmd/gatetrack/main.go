package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/gatetrack/internal/catalog"
	"github.com/alexanderramin/gatetrack/internal/cli"
	"github.com/alexanderramin/gatetrack/internal/config"
	"github.com/alexanderramin/gatetrack/internal/db"
	"github.com/alexanderramin/gatetrack/internal/importer"
	"github.com/alexanderramin/gatetrack/internal/repository"
	"github.com/alexanderramin/gatetrack/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	cfg := config.LoadConfig()

	plan := catalog.GATE()
	if cfg.PlanFile != "" {
		loaded, err := importer.LoadCatalog(cfg.PlanFile)
		if err != nil {
			return fmt.Errorf("loading plan: %w", err)
		}
		plan = loaded
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)
	store := repository.NewSQLiteKVStore(database, uow)

	interactive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// GATETRACK_THEME replaces the terminal probe when set.
	probe := service.ThemeProbeFunc(func() bool {
		if cfg.Theme != "" {
			return cfg.Theme.IsDark()
		}
		return isatty.IsTerminal(os.Stdout.Fd()) && lipgloss.HasDarkBackground()
	})

	progress := service.NewProgressService(ctx, plan, store,
		service.WithThemeProbe(probe),
		service.WithObserver(service.NewLogUseCaseObserver(os.Stderr, cfg.LogLevel)),
	)

	app := &cli.App{
		Progress:      progress,
		IsInteractive: interactive,
	}
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
