package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"zamek/internal/command"
	"zamek/internal/episode"
)

func newLinkCommand(ctx *commandContext) *cobra.Command {
	var baseURL string

	linkCmd := &cobra.Command{
		Use:   "link [file]",
		Short: "Generate signed command links",
		Long: "Generate a signed command link from a JSON payload read from a " +
			"file or stdin, or use the update/checklist subcommands to build " +
			"the payload from flags.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			var err error
			if len(args) == 1 && args[0] != "-" {
				raw, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read command file: %w", err)
				}
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}
			payload, err := command.Parse(string(raw))
			if err != nil {
				return err
			}
			return emitLink(ctx, cmd, baseURL, payload)
		},
	}

	linkCmd.Flags().StringVar(&baseURL, "base-url", "", "Link endpoint (defaults to command.base_url from the config)")
	linkCmd.AddCommand(newLinkUpdateCommand(ctx))
	linkCmd.AddCommand(newLinkChecklistCommand(ctx))
	return linkCmd
}

func newLinkUpdateCommand(ctx *commandContext) *cobra.Command {
	flags := &updateFlags{}
	var baseURL string

	cmd := &cobra.Command{
		Use:   "update <episode>",
		Short: "Generate a signed link that updates episode properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props := flags.props(cmd)
			if len(props) == 0 {
				return errors.New("nothing to encode: pass at least one of --status, --release, --recording, --topic, --guest")
			}
			return emitLink(ctx, cmd, baseURL, command.Command{
				Op:    command.OpUpdateProperties,
				Page:  args[0],
				Props: props,
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Link endpoint (defaults to command.base_url from the config)")
	return cmd
}

func newLinkChecklistCommand(ctx *commandContext) *cobra.Command {
	var items []string
	var baseURL string

	cmd := &cobra.Command{
		Use:   "checklist <episode>",
		Short: "Generate a signed link that appends a checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checklist := items
			if len(checklist) == 0 {
				checklist = episode.DefaultChecklist
			}
			return emitLink(ctx, cmd, baseURL, command.Command{
				Op:    command.OpAddChecklist,
				Page:  args[0],
				Items: checklist,
			})
		},
	}

	cmd.Flags().StringArrayVar(&items, "item", nil, "Checklist item (repeatable, replaces the defaults)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Link endpoint (defaults to command.base_url from the config)")
	return cmd
}

func emitLink(ctx *commandContext, cmd *cobra.Command, baseURL string, payload command.Command) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	target := strings.TrimSpace(baseURL)
	if target == "" {
		target = cfg.Command.BaseURL
	}
	if target == "" {
		return errors.New("no link endpoint: set command.base_url in the config or pass --base-url")
	}

	signer, err := ctx.signer()
	if err != nil {
		return err
	}
	link, err := command.BuildLink(signer, target, payload)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), link)
	return nil
}
