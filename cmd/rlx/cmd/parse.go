// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/golangee/rlx"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a rule description and print its rules",
		Long: `Parses all rules of a file and prints them in the configured format.

Examples:
  rlx parse grammar.rules
  rlx parse --format yaml grammar.rules`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd, args[0])
		},
	}
}

func (a *app) runParse(cmd *cobra.Command, path string) error {
	src, err := rlx.ReadFile(path)
	if err != nil {
		return err
	}

	rules, err := rlx.Parse(path, src)
	if err != nil {
		a.logger.Debug("parse failed", "path", path, "err", err)
		return withSource(err, src)
	}

	a.logger.Debug("parsed", "path", path, "rules", len(rules))

	return a.encoder(cmd.OutOrStdout()).EncodeRules(rules)
}
