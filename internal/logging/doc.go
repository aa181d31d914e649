// Package logging builds the slog loggers used by the CLI and daemon.
//
// It maps the config logging section onto handler construction: console
// (text) or JSON format, a parsed level, and an optional log file
// mirrored alongside stdout. Obtain loggers through NewFromConfig so
// every process logs the same way.
package logging
