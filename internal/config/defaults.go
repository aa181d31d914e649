package config

const (
	defaultTimezone       = "Europe/Warsaw"
	defaultNotionBaseURL  = "https://api.notion.com"
	defaultRequestTimeout = 30
	defaultAPIBind        = "127.0.0.1:8632"
	defaultStateDir       = "~/.local/share/zamek"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults. Timezone
// stays empty here so normalize can consult the TIMEZONE environment
// fallback before settling on the default.
func Default() Config {
	return Config{
		Notion: Notion{
			BaseURL:        defaultNotionBaseURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Daemon: Daemon{
			APIBind:  defaultAPIBind,
			StateDir: defaultStateDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
