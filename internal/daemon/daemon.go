package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/gofrs/flock"

	"zamek/internal/command"
	"zamek/internal/config"
	"zamek/internal/journal"
	"zamek/internal/notion"
)

// Workspace is the collaborator surface the daemon serves: the command
// dispatch contract plus database metadata for diagnostics.
type Workspace interface {
	command.Workspace
	Database(ctx context.Context) (*notion.Database, error)
}

// Daemon coordinates the HTTP server and enforces single-instance
// execution.
type Daemon struct {
	cfg       *config.Config
	logger    *slog.Logger
	workspace Workspace
	processor *command.Processor
	journal   *journal.Store
	server    *apiServer

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	cancel  context.CancelFunc
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, logger *slog.Logger, workspace Workspace, store *journal.Store) (*Daemon, error) {
	if cfg == nil || logger == nil || workspace == nil {
		return nil, errors.New("daemon requires config, logger, and workspace")
	}

	dispatcher, err := command.NewDispatcher(workspace, logger)
	if err != nil {
		return nil, err
	}
	signer, err := command.NewSigner(cfg.Command.SharedSecret)
	if err != nil {
		return nil, err
	}
	processor, err := command.NewProcessor(signer, dispatcher)
	if err != nil {
		return nil, err
	}

	lockPath := filepath.Join(cfg.Daemon.StateDir, "zamekd.lock")
	d := &Daemon{
		cfg:       cfg,
		logger:    logger,
		workspace: workspace,
		processor: processor,
		journal:   store,
		lockPath:  lockPath,
		lock:      flock.New(lockPath),
	}
	d.server = newAPIServer(cfg, d, logger)
	return d, nil
}

// Start acquires the daemon lock and begins serving HTTP.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another zamekd instance is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	if err := d.server.start(runCtx); err != nil {
		cancel()
		_ = d.lock.Unlock()
		return err
	}
	d.cancel = cancel
	d.running.Store(true)
	d.logger.Info("zamekd started", slog.String("lock", d.lockPath))
	return nil
}

// Stop shuts the server down and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}
	if d.cancel != nil {
		d.cancel()
	}
	d.server.stop()
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("release lock", slog.String("error", err.Error()))
	}
	d.running.Store(false)
	d.logger.Info("zamekd stopped")
}

// Addr returns the bound listen address once the server is running.
func (d *Daemon) Addr() string {
	return d.server.addr()
}
