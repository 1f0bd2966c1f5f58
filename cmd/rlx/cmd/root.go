// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package cmd contains the commands of the rlx binary.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/golangee/rlx"
	"github.com/golangee/rlx/encoder"
	"github.com/golangee/rlx/internal/config"
	"github.com/golangee/rlx/token"
	"github.com/spf13/cobra"
)

const usage = "Usage: rlx [script]"

var errUsage = errors.New("wrong number of arguments")

// app holds the state shared by all commands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	format  string
	color   bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd creates the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "rlx [file]",
		Short: "rlx - reads rule descriptions",
		Long: `rlx tokenizes and parses rule descriptions like

  list := $Name (Comma $Name)*

Without arguments rlx starts an interactive session, with a single
file argument it parses the file and prints the rules.

Examples:
  rlx grammar.rules
  rlx --format json grammar.rules
  rlx tokens --lexicon script main.src
  rlx repl`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errUsage
			}

			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.runREPL(cmd, false)
			}

			return a.runParse(cmd, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $RLX_CONFIG, ./rlx.toml or ~/.config/rlx/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", string(encoder.Text), "output format (text, json, yaml, xml)")
	rootCmd.PersistentFlags().BoolVar(&a.color, "color", false, "styled text output")

	rootCmd.AddCommand(
		newParseCmd(a),
		newTokensCmd(a),
		newREPLCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command line and reports a failure on stderr.
func Execute() error {
	rootCmd := NewRootCmd()

	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}

	return err
}

// setup loads the configuration, applies the flags on top of it and creates the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()

	path := a.cfgFile
	if path == "" {
		path = config.Locate()
	}

	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if err := cfg.CheckVersion(Version); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}

	if flags.Changed("color") {
		cfg.Output.Color = a.color
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.LogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded", "path", path, "format", cfg.Output.Format, "lexicon", cfg.Tokens.Lexicon)

	return nil
}

// encoder creates an output encoder for w according to the configuration.
func (a *app) encoder(w io.Writer) *encoder.Encoder {
	format, _ := encoder.ParseFormat(a.cfg.Output.Format)

	return encoder.New(w, format, encoder.WithColor(a.cfg.Output.Color))
}

// sourceError attaches the source text to a positioned error, so that it can be explained.
type sourceError struct {
	err error
	src string
}

func (e *sourceError) Error() string {
	return e.err.Error()
}

func (e *sourceError) Unwrap() error {
	return e.err
}

func withSource(err error, src string) error {
	if err == nil {
		return nil
	}

	return &sourceError{err: err, src: src}
}

func printError(w io.Writer, err error) {
	if errors.Is(err, errUsage) {
		fmt.Fprintln(w, usage)
		return
	}

	var fileErr *rlx.FileError
	if errors.As(err, &fileErr) {
		fmt.Fprintf(w, "Error reading file %q:\n%v\n", fileErr.Path, fileErr.Err)
		return
	}

	fmt.Fprintf(w, "Error: %v\n", err)

	var srcErr *sourceError
	var ex token.Explainer
	if errors.As(err, &srcErr) && errors.As(err, &ex) {
		fmt.Fprint(w, token.Explain(srcErr.err, srcErr.src))
	}
}
