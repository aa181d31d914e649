package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeNotion()
	c.normalizeCommand()
	if err := c.normalizeDaemon(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeNotion() {
	c.Notion.Token = strings.TrimSpace(c.Notion.Token)
	if c.Notion.Token == "" {
		c.Notion.Token = os.Getenv("NOTION_TOKEN")
	}
	c.Notion.DatabaseID = strings.TrimSpace(c.Notion.DatabaseID)
	if c.Notion.DatabaseID == "" {
		c.Notion.DatabaseID = os.Getenv("NOTION_DATABASE_ID")
	}
	c.Notion.BaseURL = strings.TrimRight(strings.TrimSpace(c.Notion.BaseURL), "/")
	if c.Notion.BaseURL == "" {
		c.Notion.BaseURL = defaultNotionBaseURL
	}
	if c.Notion.RequestTimeout <= 0 {
		c.Notion.RequestTimeout = defaultRequestTimeout
	}
}

func (c *Config) normalizeCommand() {
	c.Command.SharedSecret = strings.TrimSpace(c.Command.SharedSecret)
	if c.Command.SharedSecret == "" {
		c.Command.SharedSecret = os.Getenv("COMMAND_SHARED_SECRET")
	}
	c.Command.BaseURL = strings.TrimRight(strings.TrimSpace(c.Command.BaseURL), "/")
	if c.Command.BaseURL == "" {
		c.Command.BaseURL = os.Getenv("APP_BASE_URL")
	}
}

func (c *Config) normalizeDaemon() error {
	c.Daemon.APIBind = strings.TrimSpace(c.Daemon.APIBind)
	if c.Daemon.APIBind == "" {
		c.Daemon.APIBind = defaultAPIBind
	}
	c.Daemon.APIToken = strings.TrimSpace(c.Daemon.APIToken)
	if strings.TrimSpace(c.Daemon.StateDir) == "" {
		c.Daemon.StateDir = defaultStateDir
	}
	expanded, err := ExpandPath(c.Daemon.StateDir)
	if err != nil {
		return fmt.Errorf("daemon.state_dir: %w", err)
	}
	c.Daemon.StateDir = expanded
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		if tz := os.Getenv("TIMEZONE"); tz != "" {
			c.Timezone = tz
		} else {
			c.Timezone = defaultTimezone
		}
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Dir != "" {
		expanded, err := ExpandPath(c.Logging.Dir)
		if err != nil {
			return fmt.Errorf("logging.dir: %w", err)
		}
		c.Logging.Dir = expanded
	}
	return nil
}
