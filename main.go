package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/Supermarket-List/create-list/api"
	"github.com/Supermarket-List/create-list/cli"
	"github.com/Supermarket-List/create-list/cliparse"
	"github.com/Supermarket-List/create-list/db"
	"github.com/Supermarket-List/create-list/session"
)

func main() {
	// Optional .env for local overrides; absence is fine
	_ = godotenv.Load()

	// Parse configuration
	cfg, args, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open durable session storage
	conn, err := db.Open(cfg.StoragePath)
	if err != nil {
		slog.Error("session storage failed", "path", cfg.StoragePath, "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Restore the saved session, if any
	sess, err := session.New(conn)
	if err != nil {
		slog.Error("session restore failed", "error", err)
		os.Exit(1)
	}

	// Ctrl-C cancels outstanding requests
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Config:  cfg,
		Session: sess,
		API:     api.New(cfg.APIBaseURL, cfg.RequestTimeout),
		In:      os.Stdin,
		Out:     os.Stdout,
	}

	if err := app.Run(ctx, args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
