// Command zamekd runs the HTTP daemon that serves the dashboard API and
// the signed command-link endpoint.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zamek/internal/config"
	"zamek/internal/daemon"
	"zamek/internal/journal"
	"zamek/internal/logging"
	"zamek/internal/notion"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("prepare directories: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	opts := []notion.Option{
		notion.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Notion.RequestTimeout) * time.Second}),
	}
	if cfg.Notion.BaseURL != "" {
		opts = append(opts, notion.WithBaseURL(cfg.Notion.BaseURL))
	}
	client, err := notion.New(cfg.Notion.Token, opts...)
	if err != nil {
		fatal(logger, "create workspace client", err)
	}
	workspace, err := notion.NewWorkspace(client, cfg.Notion.DatabaseID)
	if err != nil {
		fatal(logger, "create workspace", err)
	}

	store, err := journal.Open(cfg.Daemon.StateDir)
	if err != nil {
		fatal(logger, "open command journal", err)
	}
	defer store.Close()

	d, err := daemon.New(cfg, logger, workspace, store)
	if err != nil {
		fatal(logger, "create daemon", err)
	}
	if err := d.Start(ctx); err != nil {
		fatal(logger, "start daemon", err)
	}
	defer d.Stop()

	logger.Info("zamekd listening", slog.String("addr", d.Addr()))

	<-ctx.Done()
	logger.Info("zamekd shutting down")
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, slog.String("error", err.Error()))
	os.Exit(1)
}
