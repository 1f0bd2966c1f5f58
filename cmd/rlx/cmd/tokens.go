// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"io"
	"strings"

	"github.com/golangee/rlx"
	"github.com/golangee/rlx/encoder"
	"github.com/golangee/rlx/internal/config"
	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	var lexicon string

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a file",
		Long: `Tokenizes a file and prints every token including whitespace and comments.

Lexicons:
  rules   - the rule description language (default)
  script  - the general purpose script language

Examples:
  rlx tokens grammar.rules
  rlx tokens --lexicon script main.src`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("lexicon") {
				a.cfg.Tokens.Lexicon = lexicon
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}

			src, err := rlx.ReadFile(args[0])
			if err != nil {
				return err
			}

			return withSource(a.tokenize(cmd.OutOrStdout(), args[0], src), src)
		},
	}

	cmd.Flags().StringVarP(&lexicon, "lexicon", "l", config.LexiconRules, "token table (rules, script)")

	return cmd
}

// tokenize prints the tokens of src using the configured lexicon.
func (a *app) tokenize(w io.Writer, name, src string) error {
	enc := a.encoder(w)

	if strings.EqualFold(a.cfg.Tokens.Lexicon, config.LexiconScript) {
		tokens, err := rlx.TokenizeScript(name, src)
		if err != nil {
			return err
		}

		a.logger.Debug("tokenized", "name", name, "lexicon", config.LexiconScript, "tokens", len(tokens))

		return encoder.EncodeTokens(enc, tokens)
	}

	tokens, err := rlx.Tokenize(name, src)
	if err != nil {
		return err
	}

	a.logger.Debug("tokenized", "name", name, "lexicon", config.LexiconRules, "tokens", len(tokens))

	return encoder.EncodeTokens(enc, tokens)
}
