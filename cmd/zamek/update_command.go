package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"zamek/internal/command"
	"zamek/internal/episode"
)

type updateFlags struct {
	status    string
	release   string
	recording string
	topic     string
	guest     string
}

func (f *updateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.status, "status", "", "New status value")
	cmd.Flags().StringVar(&f.release, "release", "", "Release date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.recording, "recording", "", "Recording date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.topic, "topic", "", "Episode topic")
	cmd.Flags().StringVar(&f.guest, "guest", "", "Guest name (empty value clears the field)")
}

// props collects only the flags the caller actually set, so that an
// explicit empty value still reaches the workspace as a clear.
func (f *updateFlags) props(cmd *cobra.Command) map[string]string {
	props := map[string]string{}
	set := func(flag, key, value string) {
		if cmd.Flags().Changed(flag) {
			props[key] = value
		}
	}
	set("status", command.PropKeyStatus, f.status)
	set("release", command.PropKeyRelease, f.release)
	set("recording", command.PropKeyRecording, f.recording)
	set("topic", command.PropKeyTopic, f.topic)
	set("guest", command.PropKeyGuest, f.guest)
	return props
}

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	flags := &updateFlags{}

	cmd := &cobra.Command{
		Use:   "update <episode>",
		Short: "Update episode properties",
		Long: "Update properties of an episode identified by its label, " +
			"for example \"#12\" or \"#12 Historia zamku\".",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props := flags.props(cmd)
			if len(props) == 0 {
				return errors.New("nothing to update: pass at least one of --status, --release, --recording, --topic, --guest")
			}
			dispatcher, err := ctx.dispatcher()
			if err != nil {
				return err
			}
			result, err := dispatcher.Apply(cmd.Context(), command.Command{
				Op:    command.OpUpdateProperties,
				Page:  args[0],
				Props: props,
			})
			printResult(cmd, result)
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

func newChecklistCommand(ctx *commandContext) *cobra.Command {
	var items []string
	var useDefaults bool

	cmd := &cobra.Command{
		Use:   "checklist <episode>",
		Short: "Append a production checklist to an episode page",
		Long: "Append the standard production checklist to an episode page. " +
			"Pass --item to replace the default items.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if useDefaults && len(items) > 0 {
				return errors.New("--defaults and --item are mutually exclusive")
			}
			checklist := items
			if len(checklist) == 0 {
				checklist = episode.DefaultChecklist
			}
			dispatcher, err := ctx.dispatcher()
			if err != nil {
				return err
			}
			result, err := dispatcher.Apply(cmd.Context(), command.Command{
				Op:    command.OpAddChecklist,
				Page:  args[0],
				Items: checklist,
			})
			printResult(cmd, result)
			return err
		},
	}

	cmd.Flags().StringArrayVar(&items, "item", nil, "Checklist item (repeatable, replaces the defaults)")
	cmd.Flags().BoolVar(&useDefaults, "defaults", false, "Use the standard checklist (the default when no --item is given)")
	return cmd
}

func printResult(cmd *cobra.Command, result command.Result) {
	out := cmd.OutOrStdout()
	if result.Message != "" {
		fmt.Fprintln(out, result.Message)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(out, "warning: %s\n", warning)
	}
}
