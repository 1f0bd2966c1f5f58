// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package repl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/golangee/rlx"
	"github.com/golangee/rlx/ast"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// echo prints the rules of every line.
func echo(name, line string, out io.Writer) error {
	rules, err := rlx.Parse(name, line)
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, ast.String(rules))

	return err
}

func run(t *testing.T, input string, opts ...Option) string {
	t.Helper()

	out := &bytes.Buffer{}
	err := New(strings.NewReader(input), out, echo, opts...).Run(context.Background())
	require.NoError(t, err)

	return out.String()
}

func TestExitCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exit", ":e\nx := y\n", "> exit\n"},
		{"case insensitive", "  :E  \n", "> exit\n"},
		{"after a rule", "a := b c\n:e\n", "> a := b c\n> exit\n"},
		{"end of input", "a := b", "> a := b\n> \n"},
		{"blank lines", "\n\n:e\n", "> > > exit\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, run(t, tt.input))
		})
	}
}

func TestErrorsContinue(t *testing.T) {
	got := run(t, "a := (b\nc := @\nd := e\n:e\n")

	want := "> Error: expected RightParen, got EOF at line 1 col 8\n" +
		"stdin#1:1:8\n" +
		"  |\n" +
		"1 |a := (b\n" +
		"  |       ^~~~ expected RightParen, got EOF\n" +
		"> Error: unexpected character '@' at line 1 col 6\n" +
		"stdin#2:1:6\n" +
		"  |\n" +
		"1 |c := @\n" +
		"  |     ^~~~ unexpected character '@'\n" +
		"> d := e\n" +
		"> exit\n"

	require.Equal(t, want, got)
}

func TestPlainErrors(t *testing.T) {
	failing := func(name, line string, out io.Writer) error {
		return fmt.Errorf("cannot handle %s", line)
	}

	out := &bytes.Buffer{}
	err := New(strings.NewReader("x\n"), out, failing).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, "> Error: cannot handle x\n> \n", out.String())
}

func TestOptions(t *testing.T) {
	got := run(t, "a := b\nquit\n", WithPrompt("rlx> "), WithExitCommand(" QUIT "))
	require.Equal(t, "rlx> a := b\nrlx> exit\n", got)
}

func TestLineNames(t *testing.T) {
	var names []string
	record := func(name, line string, out io.Writer) error {
		names = append(names, name)
		return nil
	}

	err := New(strings.NewReader("a\n\nb\n"), io.Discard, record).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"stdin#1", "stdin#3"}, names)
}

func TestSession(t *testing.T) {
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := New(strings.NewReader(":e\n"), io.Discard, echo, WithLogger(logger))
	_, err := uuid.Parse(r.Session())
	require.NoError(t, err)
	require.NotEqual(t, r.Session(), New(nil, nil, echo).Session())

	require.NoError(t, r.Run(context.Background()))
	require.Contains(t, logs.String(), "session="+r.Session())
	require.Contains(t, logs.String(), "exit command")
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(strings.NewReader("a := b\n"), io.Discard, echo).Run(ctx)
	require.True(t, errors.Is(err, context.Canceled))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriteError(t *testing.T) {
	err := New(strings.NewReader("a := b\n"), failingWriter{}, echo).Run(context.Background())
	require.EqualError(t, err, "closed")
}
