package main

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"zamek/internal/command"
	"zamek/internal/config"
	"zamek/internal/notion"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	workspaceOnce sync.Once
	workspace     *notion.Workspace
	workspaceErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureWorkspace() (*notion.Workspace, error) {
	c.workspaceOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.workspaceErr = err
			return
		}
		opts := []notion.Option{
			notion.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Notion.RequestTimeout) * time.Second}),
		}
		if cfg.Notion.BaseURL != "" {
			opts = append(opts, notion.WithBaseURL(cfg.Notion.BaseURL))
		}
		client, err := notion.New(cfg.Notion.Token, opts...)
		if err != nil {
			c.workspaceErr = err
			return
		}
		c.workspace, c.workspaceErr = notion.NewWorkspace(client, cfg.Notion.DatabaseID)
	})
	return c.workspace, c.workspaceErr
}

func (c *commandContext) dispatcher() (*command.Dispatcher, error) {
	ws, err := c.ensureWorkspace()
	if err != nil {
		return nil, err
	}
	return command.NewDispatcher(ws, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (c *commandContext) signer() (*command.Signer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return command.NewSigner(cfg.Command.SharedSecret)
}

func (c *commandContext) processor() (*command.Processor, error) {
	signer, err := c.signer()
	if err != nil {
		return nil, err
	}
	dispatcher, err := c.dispatcher()
	if err != nil {
		return nil, err
	}
	return command.NewProcessor(signer, dispatcher)
}
