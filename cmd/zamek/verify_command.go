package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"zamek/internal/command"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var execute bool
	var sigFlag string

	cmd := &cobra.Command{
		Use:   "verify <link|token> [signature]",
		Short: "Verify a signed command link and show its payload",
		Long: "Verify the signature of a command link and print the decoded payload. " +
			"Accepts a full link, or the cmd token with the signature as a second " +
			"argument or via --sig.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, sig, err := splitLinkArgs(args, sigFlag)
			if err != nil {
				return err
			}

			if execute {
				processor, err := ctx.processor()
				if err != nil {
					return err
				}
				result, execErr := processor.Process(cmd.Context(), token, sig)
				printResult(cmd, result)
				return execErr
			}

			signer, err := ctx.signer()
			if err != nil {
				return err
			}
			dispatcher, err := command.NewDispatcher(noopWorkspace{}, nil)
			if err != nil {
				return err
			}
			processor, err := command.NewProcessor(signer, dispatcher)
			if err != nil {
				return err
			}
			payload, err := processor.Preview(token, sig)
			if err != nil {
				if errors.Is(err, command.ErrSignatureMismatch) {
					return errors.New("invalid command signature, do not trust this link")
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Signature valid")
			return writeJSON(cmd, payload)
		},
	}

	cmd.Flags().BoolVar(&execute, "execute", false, "Execute the command after verifying it")
	cmd.Flags().StringVar(&sigFlag, "sig", "", "Signature for a bare cmd token")
	return cmd
}

func splitLinkArgs(args []string, sigFlag string) (token, sig string, err error) {
	if len(args) == 2 {
		return strings.TrimSpace(args[0]), strings.TrimSpace(args[1]), nil
	}
	if sigFlag != "" {
		return strings.TrimSpace(args[0]), strings.TrimSpace(sigFlag), nil
	}

	raw := strings.TrimSpace(args[0])
	if !strings.Contains(raw, "?") {
		return "", "", errors.New("expected a full link or a token and signature pair")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("parse link: %w", err)
	}
	query := parsed.Query()
	token = query.Get("cmd")
	sig = query.Get("sig")
	if token == "" || sig == "" {
		return "", "", errors.New("link is missing cmd or sig query parameters")
	}
	return token, sig, nil
}
