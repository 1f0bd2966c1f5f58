// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token_test

import (
	"errors"
	"testing"

	"github.com/golangee/rlx/lexicon"
	"github.com/golangee/rlx/token"
	"github.com/stretchr/testify/require"
)

func TestEscapeChar(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{0, `\0`},
		{'\n', `\n`},
		{'\t', `\t`},
		{'\r', `\r`},
		{'@', "@"},
		{'ß', "ß"},
	}

	for _, tt := range tests {
		if got := token.EscapeChar(tt.r); got != tt.want {
			t.Errorf("EscapeChar(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestExplainLexError(t *testing.T) {
	src := "x := @"

	_, err := lexicon.NewRuleScanner("").Scan(src, lexicon.EOF)
	require.Error(t, err)

	want := ":1:6\n" +
		"  |\n" +
		"1 |x := @\n" +
		"  |     ^~~~ unexpected character '@'\n"

	require.Equal(t, want, token.Explain(err, src))
}

func TestExplainDetails(t *testing.T) {
	src := "a := b\nc := a\n"
	first := token.NewNode(token.Pos{File: "g.rules", Line: 2, Col: 1}, token.Pos{File: "g.rules", Line: 2, Col: 2})
	second := token.NewNode(token.Pos{File: "g.rules", Line: 1, Col: 1}, token.Pos{File: "g.rules", Line: 1, Col: 2})

	err := token.NewPosError(first, "rule c", token.NewErrDetail(second, "refers to rule a")).SetHint("rules may be declared in any order")

	want := "g.rules:2:1\n" +
		"  |\n" +
		"2 |c := a\n" +
		"  |^~~~ rule c\n" +
		" ...\n" +
		"  |\n" +
		"1 |a := b\n" +
		"  |^~~~ refers to rule a\n" +
		"  |\n" +
		"  = hint: rules may be declared in any order\n"

	require.Equal(t, want, token.Explain(err, src))
}

func TestPosErrorCause(t *testing.T) {
	cause := errors.New("boom")
	node := token.NewNode(token.Pos{Line: 1, Col: 1}, token.Pos{Line: 1, Col: 4})
	err := token.NewPosError(node, "while parsing").SetCause(cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, "while parsing: boom", err.Error())
	require.Contains(t, err.Explain("abc"), "^^^ while parsing")
}

func TestExplainPlainError(t *testing.T) {
	require.Equal(t, "plain", token.Explain(errors.New("plain"), "src"))
}
