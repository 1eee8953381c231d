// Command billsplit is the bill split calculator on the command line.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/cli"
	"github.com/mmynk/billsplit/internal/config"
	"github.com/mmynk/billsplit/internal/storage"
	"github.com/mmynk/billsplit/internal/storage/sqlite"
	"github.com/mmynk/billsplit/pkg/logging"
)

func main() {
	cfg := config.Load()
	dbPath := flag.String("db", cfg.DBPath, "Path to the SQLite database holding the form.")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	flag.Parse()

	logging.SetupWithLevel(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(*dbPath)
	if err != nil {
		slog.Error("Failed to open storage", "database", *dbPath, "error", err)
		os.Exit(1)
	}

	cli.Register(subcommands.DefaultCommander, &cli.App{
		Forms:    storage.NewForms(store),
		Calc:     calculator.New(cfg.Tolerance),
		Currency: cfg.Currency,
		Out:      os.Stdout,
		Err:      os.Stderr,
	})

	status := subcommands.Execute(context.Background())
	store.Close()
	os.Exit(int(status))
}
