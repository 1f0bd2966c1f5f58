// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser_test

import (
	"errors"
	"testing"

	"github.com/golangee/rlx/parser"
	"github.com/golangee/rlx/token"
	"github.com/stretchr/testify/require"
)

type letter string

func (l letter) String() string {
	return string(l)
}

var letters = token.MustTable(
	token.Rule[letter]{Kind: "a", Pattern: `a`},
	token.Rule[letter]{Kind: "b", Pattern: `b`},
	token.Rule[letter]{Kind: "c", Pattern: `c`},
	token.Rule[letter]{Kind: "eof", Pattern: `\z`},
)

func cursor(t *testing.T, text string, opts ...parser.Option) *parser.Cursor[letter] {
	t.Helper()

	tokens, err := token.NewScanner("", letters).Scan(text, "eof")
	require.NoError(t, err)

	return parser.NewCursor(tokens, opts...)
}

func requireSyntaxError(t *testing.T, err error, msg string) {
	t.Helper()

	var se *parser.SyntaxError
	require.True(t, errors.As(err, &se), "expected SyntaxError, got %v", err)
	require.Equal(t, msg, se.Error())
}

func TestConsume(t *testing.T) {
	c := cursor(t, "ab")
	tokens := c.Tokens()

	tok, err := parser.Consume[letter]("b", tokens, 1)
	require.NoError(t, err)
	require.Equal(t, letter("b"), tok.Kind)

	_, err = parser.Consume[letter]("a", tokens, 1)
	requireSyntaxError(t, err, "expected a, got b at line 1 col 2")

	_, err = parser.Consume[letter]("a", tokens, 3)
	requireSyntaxError(t, err, "unexpected end of input, expected a")

	// consume is pure
	require.Equal(t, 0, c.Pos())
}

func TestOr(t *testing.T) {
	for _, mode := range []parser.Lookahead{parser.OrderedChoice, parser.ShiftedLookahead} {
		t.Run(mode.String(), func(t *testing.T) {
			c := cursor(t, "ab", parser.WithLookahead(mode))

			tok, err := c.Or("a", "b")
			require.NoError(t, err)
			require.Equal(t, letter("a"), tok.Kind)
			require.Equal(t, 1, c.Pos())

			_, err = c.Or("a", "c")
			require.Error(t, err)
			require.Equal(t, 1, c.Pos())
		})
	}
}

func TestOrOrdered(t *testing.T) {
	c := cursor(t, "bc")

	tok, err := c.Or("a", "b")
	require.NoError(t, err)
	require.Equal(t, letter("b"), tok.Kind)
	require.Equal(t, 1, c.Pos())

	_, err = c.Or("a", "b")
	requireSyntaxError(t, err, "expected a or b, got c at line 1 col 2")
	require.Equal(t, 1, c.Pos())
}

func TestOrShifted(t *testing.T) {
	// the second alternative is tried one token behind the cursor
	c := cursor(t, "cb", parser.WithShiftedLookahead())
	require.Equal(t, parser.ShiftedLookahead, c.Lookahead())

	tok, err := c.Or("a", "b")
	require.NoError(t, err)
	require.Equal(t, letter("b"), tok.Kind)
	require.Equal(t, 2, tok.Col())
	require.Equal(t, 1, c.Pos())

	// and a b at the cursor is not found by the second alternative
	c = cursor(t, "b", parser.WithShiftedLookahead())
	_, err = c.Or("a", "b")
	requireSyntaxError(t, err, "expected a or b, got eof at line 1 col 2")
	require.Equal(t, 0, c.Pos())
}

func TestAnd(t *testing.T) {
	c := cursor(t, "abab")

	first, second, err := c.And("a", "b")
	require.NoError(t, err)
	require.Equal(t, letter("a"), first.Kind)
	require.Equal(t, letter("b"), second.Kind)
	require.Equal(t, 2, c.Pos())

	_, _, err = c.And("a", "c")
	requireSyntaxError(t, err, "expected a followed by c, got b at line 1 col 4")
	require.Equal(t, 2, c.Pos())

	_, _, err = c.And("b", "a")
	requireSyntaxError(t, err, "expected b followed by a, got a at line 1 col 3")
	require.Equal(t, 2, c.Pos())
}

func TestChoice(t *testing.T) {
	c := cursor(t, "cab")

	_, err := c.Choice()
	require.ErrorIs(t, err, parser.ErrNoOptions)

	tok, err := c.Choice("c")
	require.NoError(t, err)
	require.Equal(t, letter("c"), tok.Kind)
	require.Equal(t, 1, c.Pos())

	tok, err = c.Choice("b", "c", "a")
	require.NoError(t, err)
	require.Equal(t, letter("a"), tok.Kind)
	require.Equal(t, 2, c.Pos())

	_, err = c.Choice("a", "c")
	requireSyntaxError(t, err, "expected a or c, got b at line 1 col 3")
	require.Equal(t, 2, c.Pos())
}

func TestChoiceShifted(t *testing.T) {
	c := cursor(t, "ab", parser.WithShiftedLookahead())

	tok, err := c.Choice("c", "b")
	require.NoError(t, err)
	require.Equal(t, letter("b"), tok.Kind)
	require.Equal(t, 1, c.Pos())

	// a single b cannot be found by [a, b], the b is expected behind it
	c = cursor(t, "b", parser.WithShiftedLookahead())

	_, err = c.Choice("a", "b")
	requireSyntaxError(t, err, "expected a or b, got eof at line 1 col 2")
	require.Equal(t, 0, c.Pos())
}

func TestSequence(t *testing.T) {
	c := cursor(t, "abc")

	_, err := c.Sequence("a")
	require.ErrorIs(t, err, parser.ErrTooFewKinds)

	_, err = c.Sequence("a", "b", "b")
	requireSyntaxError(t, err, "expected a followed by b followed by b, got c at line 1 col 3")
	require.Equal(t, 0, c.Pos())

	tokens, err := c.Sequence("a", "b", "c")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	require.Equal(t, []int{1, 2, 3}, []int{tokens[0].Col(), tokens[1].Col(), tokens[2].Col()})

	// the cursor points to the end of input token
	require.Equal(t, 3, c.Pos())
	require.True(t, c.Is("eof"))

	_, err = c.Sequence("eof", "a")
	requireSyntaxError(t, err, "unexpected end of input, expected eof followed by a")
}

func TestCursorNavigation(t *testing.T) {
	c := cursor(t, "ab")

	tok, ok := c.Peek(1)
	require.True(t, ok)
	require.Equal(t, letter("b"), tok.Kind)

	_, ok = c.Peek(5)
	require.False(t, ok)

	_, err := c.Expect("a")
	require.NoError(t, err)

	tok, ok = c.Current()
	require.True(t, ok)
	require.Equal(t, letter("b"), tok.Kind)

	requireSyntaxError(t, c.Fail("a", "c"), "expected a or c, got b at line 1 col 2")

	_, err = c.Sequence("b", "eof")
	require.NoError(t, err)
	require.True(t, c.AtEnd())

	requireSyntaxError(t, c.Fail("a"), "unexpected end of input, expected a")

	c.Reset()
	require.Equal(t, 0, c.Pos())
}

func TestParseLookahead(t *testing.T) {
	for _, mode := range []parser.Lookahead{parser.OrderedChoice, parser.ShiftedLookahead} {
		got, err := parser.ParseLookahead(mode.String())
		require.NoError(t, err)
		require.Equal(t, mode, got)
	}

	_, err := parser.ParseLookahead("greedy")
	require.Error(t, err)
}

func TestSkip(t *testing.T) {
	c := cursor(t, "abcab")

	rest := parser.Skip(c.Tokens(), "a", "c")

	kinds := make([]letter, 0, len(rest))
	for _, tok := range rest {
		kinds = append(kinds, tok.Kind)
	}

	require.Equal(t, []letter{"b", "b", "eof"}, kinds)
}
