package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"zamek/internal/episode"
	"zamek/internal/notion"
)

func newDiagCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "diag",
		Short: "Check configuration and inspect the live database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			fmt.Fprintln(out, renderStatusLine("notion.token", settingKind(cfg.Notion.Token != ""), "", colorize))
			fmt.Fprintln(out, renderStatusLine("notion.database_id", settingKind(cfg.Notion.DatabaseID != ""), "", colorize))
			fmt.Fprintln(out, renderStatusLine("command.shared_secret", settingKind(cfg.Command.SharedSecret != ""), "", colorize))
			if cfg.Command.BaseURL == "" {
				fmt.Fprintln(out, renderStatusLine("command.base_url", statusWarn, "unset, link generation needs --base-url", colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("command.base_url", statusOK, cfg.Command.BaseURL, colorize))
			}

			ws, err := ctx.ensureWorkspace()
			if err != nil {
				return err
			}
			db, err := ws.Database(cmd.Context())
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("database", statusError, err.Error(), colorize))
				return fmt.Errorf("reach database: %w", err)
			}
			fmt.Fprintln(out, renderStatusLine("database", statusOK, db.TitleText(), colorize))

			schema := notion.SchemaFromDatabase(db)
			for _, name := range []string{episode.PropTitle, episode.PropStatus, episode.PropNumber, episode.PropRelease, episode.PropRecording, episode.PropGuest, episode.PropTopic} {
				if schema.Has(name) {
					fmt.Fprintln(out, renderStatusLine(name, statusOK, string(schema[name]), colorize))
				} else {
					fmt.Fprintln(out, renderStatusLine(name, statusWarn, "missing from database", colorize))
				}
			}

			names := make([]string, 0, len(schema))
			for name := range schema {
				names = append(names, name)
			}
			sort.Strings(names)

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, []string{name, string(schema[name])})
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable([]string{"Property", "Type"}, rows, nil))
			return nil
		},
	}
}

func settingKind(ok bool) statusKind {
	if ok {
		return statusOK
	}
	return statusError
}
