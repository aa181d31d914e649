package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"zamek/internal/episode"
)

func newEpisodesCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "episodes",
		Short: "List episodes from the workspace database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ws, err := ctx.ensureWorkspace()
			if err != nil {
				return err
			}
			episodes, err := ws.Episodes(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch episodes: %w", err)
			}

			if asJSON {
				return writeJSON(cmd, episodes)
			}

			out := cmd.OutOrStdout()
			if len(episodes) == 0 {
				fmt.Fprintln(out, "No episodes found")
				return nil
			}

			headers := []string{"Title", "#", "Status", "Topic", "Guest", "Recording", "Release"}
			rows := make([][]string, 0, len(episodes))
			for _, e := range episodes {
				number := ""
				if e.Number != nil {
					number = strconv.Itoa(*e.Number)
				}
				rows = append(rows, []string{
					e.Title, number, e.Status, e.Topic, e.Guest, e.RecordingDate, e.ReleaseDate,
				})
			}
			fmt.Fprintln(out, renderStyledTable(headers, rows, []columnAlignment{alignLeft, alignRight}, shouldColorize(out)))
			fmt.Fprintf(out, "%d episodes, as of %s\n", len(episodes),
				time.Now().In(cfg.Location()).Format("2006-01-02 15:04 MST"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newReportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print a quick production report grouped by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := ctx.ensureWorkspace()
			if err != nil {
				return err
			}
			episodes, err := ws.Episodes(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch episodes: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), episode.QuickReport(episodes))
			return nil
		},
	}
}
