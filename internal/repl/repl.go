// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package repl implements the interactive line loop of the rlx command.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/golangee/rlx/token"
	"github.com/google/uuid"
)

// Evaluator handles a single input line. The name identifies the line in positions.
// A returned error is reported and the loop continues.
type Evaluator func(name, line string, out io.Writer) error

// Option configures a REPL.
type Option func(r *REPL)

// WithPrompt replaces the default prompt "> ".
func WithPrompt(prompt string) Option {
	return func(r *REPL) {
		r.prompt = prompt
	}
}

// WithExitCommand replaces the default exit command ":e". It is compared case-insensitively.
func WithExitCommand(cmd string) Option {
	return func(r *REPL) {
		r.exit = strings.TrimSpace(cmd)
	}
}

// WithLogger sets the logger for diagnostics. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(r *REPL) {
		r.logger = logger
	}
}

// REPL reads lines from in and evaluates each of them until the exit command or the end of input.
type REPL struct {
	in      io.Reader
	out     io.Writer
	eval    Evaluator
	prompt  string
	exit    string
	logger  *slog.Logger
	session string
}

// New creates a REPL. Every REPL gets its own session id, which is attached to all log records.
func New(in io.Reader, out io.Writer, eval Evaluator, opts ...Option) *REPL {
	r := &REPL{
		in:      in,
		out:     out,
		eval:    eval,
		prompt:  "> ",
		exit:    ":e",
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		session: uuid.New().String(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.logger = r.logger.With("session", r.session)

	return r
}

// Session returns the id of this session.
func (r *REPL) Session() string {
	return r.session
}

// Run loops until the exit command was entered, the input is exhausted or ctx is done.
// Evaluation errors are printed and do not stop the loop, only read and write errors are returned.
func (r *REPL) Run(ctx context.Context) error {
	r.logger.Debug("session started")

	scanner := bufio.NewScanner(r.in)
	for no := 1; ; no++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := io.WriteString(r.out, r.prompt); err != nil {
			return err
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("unable to read input: %w", err)
			}

			r.logger.Debug("end of input", "lines", no-1)
			_, err := io.WriteString(r.out, "\n")

			return err
		}

		line := scanner.Text()
		if strings.EqualFold(strings.TrimSpace(line), r.exit) {
			r.logger.Debug("exit command", "lines", no-1)
			_, err := io.WriteString(r.out, "exit\n")

			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		name := "stdin#" + strconv.Itoa(no)
		if err := r.eval(name, line, r.out); err != nil {
			r.logger.Debug("evaluation failed", "line", no, "err", err)

			if err := r.report(err, line); err != nil {
				return err
			}
		}
	}
}

// report prints err with a source excerpt if it carries a position.
func (r *REPL) report(err error, line string) error {
	msg := "Error: " + err.Error() + "\n"

	var ex token.Explainer
	if errors.As(err, &ex) {
		msg += token.Explain(err, line)
	}

	_, werr := io.WriteString(r.out, msg)

	return werr
}
