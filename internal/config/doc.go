// Package config loads, normalizes, and validates Zamek configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such
// as NOTION_TOKEN and COMMAND_SHARED_SECRET. The Config type centralizes
// every knob the CLI and daemon need: workspace credentials, the command
// signing secret, the daemon bind address, and logging options.
//
// Always obtain settings through this package so downstream code
// receives sanitized paths, a validated timezone, and clear errors when
// required secrets are missing.
package config
