// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"io"

	"github.com/golangee/rlx"
	"github.com/golangee/rlx/internal/repl"
	"github.com/spf13/cobra"
)

func newREPLCmd(a *app) *cobra.Command {
	var tokens bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Long: `Reads rule descriptions line by line and prints the parsed rules.
Errors are reported and the session continues. Enter :e to quit.

Examples:
  rlx repl
  rlx repl --tokens --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runREPL(cmd, tokens)
		},
	}

	cmd.Flags().BoolVarP(&tokens, "tokens", "t", false, "print the token stream of each line using the configured lexicon")

	return cmd
}

func (a *app) runREPL(cmd *cobra.Command, tokens bool) error {
	eval := func(name, line string, out io.Writer) error {
		rules, err := rlx.Parse(name, line)
		if err != nil {
			return err
		}

		return a.encoder(out).EncodeRules(rules)
	}

	if tokens {
		eval = func(name, line string, out io.Writer) error {
			return a.tokenize(out, name, line)
		}
	}

	r := repl.New(cmd.InOrStdin(), cmd.OutOrStdout(), eval,
		repl.WithPrompt(a.cfg.REPL.Prompt),
		repl.WithExitCommand(a.cfg.REPL.ExitCommand),
		repl.WithLogger(a.logger),
	)

	return r.Run(cmd.Context())
}
