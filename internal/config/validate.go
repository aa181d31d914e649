package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate ensures the configuration is usable. Missing required
// secrets halt startup with a diagnostic naming the knob to set.
func (c *Config) Validate() error {
	if err := c.validateNotion(); err != nil {
		return err
	}
	if err := c.validateCommand(); err != nil {
		return err
	}
	return c.validateTimezone()
}

func (c *Config) validateNotion() error {
	if c.Notion.Token == "" {
		return fmt.Errorf("notion.token is required. Set NOTION_TOKEN env var or edit %s (create with 'zamek config init')", configHint())
	}
	if c.Notion.DatabaseID == "" {
		return fmt.Errorf("notion.database_id is required. Set NOTION_DATABASE_ID env var or edit %s", configHint())
	}
	return nil
}

func (c *Config) validateCommand() error {
	if c.Command.SharedSecret == "" {
		return fmt.Errorf("command.shared_secret is required. Set COMMAND_SHARED_SECRET env var or edit %s", configHint())
	}
	return nil
}

func (c *Config) validateTimezone() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return errors.New("timezone must be a valid IANA zone name, e.g. Europe/Warsaw")
	}
	return nil
}

func configHint() string {
	path, err := DefaultConfigPath()
	if err != nil {
		return "~/.config/zamek/config.toml"
	}
	return path
}
