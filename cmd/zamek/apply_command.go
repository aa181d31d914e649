package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"zamek/internal/command"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "apply [file]",
		Short: "Execute a command payload from a JSON file or stdin",
		Args:  cobra.MaximumNArgs(1),
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
			if strings.TrimSpace(string(raw)) == "" {
				return fmt.Errorf("empty command payload")
			}

			parsed, err := command.Parse(string(raw))
			if err != nil {
				return err
			}
			dispatcher, err := ctx.dispatcher()
			if err != nil {
				return err
			}
			result, applyErr := dispatcher.Apply(cmd.Context(), parsed)
			if asJSON {
				if err := writeJSON(cmd, result); err != nil {
					return err
				}
				return applyErr
			}
			printResult(cmd, result)
			return applyErr
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the result as JSON")
	return cmd
}
