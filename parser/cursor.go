// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"fmt"

	"github.com/golangee/rlx/token"
)

// Lookahead selects how Or and Choice try their alternatives.
type Lookahead int

const (
	// OrderedChoice tries every alternative at the cursor and takes the first which matches.
	OrderedChoice Lookahead = iota
	// ShiftedLookahead tries the second alternative of each pair one token behind the cursor,
	// as if the failed first alternative had occupied a slot. A successful match still advances
	// the cursor by one. This mode exists for compatibility with grammars written against it.
	ShiftedLookahead
)

func (l Lookahead) String() string {
	switch l {
	case OrderedChoice:
		return "ordered"
	case ShiftedLookahead:
		return "shifted"
	default:
		return fmt.Sprintf("Lookahead(%d)", int(l))
	}
}

// ParseLookahead parses the names returned by Lookahead.String.
func ParseLookahead(s string) (Lookahead, error) {
	switch s {
	case "ordered", "":
		return OrderedChoice, nil
	case "shifted":
		return ShiftedLookahead, nil
	default:
		return 0, fmt.Errorf("unknown lookahead mode %q", s)
	}
}

// Option configures a Cursor.
type Option func(o *options)

type options struct {
	lookahead Lookahead
}

// WithLookahead sets the lookahead mode.
func WithLookahead(l Lookahead) Option {
	return func(o *options) {
		o.lookahead = l
	}
}

// WithShiftedLookahead is a shortcut for WithLookahead(ShiftedLookahead).
func WithShiftedLookahead() Option {
	return WithLookahead(ShiftedLookahead)
}

// Consume returns the token at pos if it is of the given kind. It never changes any state.
func Consume[K token.Kind](kind K, tokens []token.Token[K], pos int) (token.Token[K], error) {
	if pos < 0 || pos >= len(tokens) {
		return token.Token[K]{}, newEOFError(tokens, joinOr, kind)
	}

	tok := tokens[pos]
	if tok.Kind != kind {
		return token.Token[K]{}, newSyntaxError(tok, joinOr, kind)
	}

	return tok, nil
}

// Skip returns the tokens which are not of one of the given kinds.
func Skip[K token.Kind](tokens []token.Token[K], kinds ...K) []token.Token[K] {
	res := make([]token.Token[K], 0, len(tokens))

	for _, t := range tokens {
		skip := false

		for _, k := range kinds {
			if t.Kind == k {
				skip = true
				break
			}
		}

		if !skip {
			res = append(res, t)
		}
	}

	return res
}

// A Cursor walks a token stream. The combinator methods only move the cursor
// if they succeed, so a failed combinator can be followed by another attempt
// at the same position. A Cursor must not be used concurrently.
type Cursor[K token.Kind] struct {
	tokens []token.Token[K]
	pos    int
	opts   options
}

// NewCursor creates a cursor at the first of the given tokens.
func NewCursor[K token.Kind](tokens []token.Token[K], opts ...Option) *Cursor[K] {
	c := &Cursor[K]{tokens: tokens}
	for _, opt := range opts {
		opt(&c.opts)
	}

	return c
}

// Lookahead returns the configured lookahead mode.
func (c *Cursor[K]) Lookahead() Lookahead {
	return c.opts.lookahead
}

// Pos returns the index of the next token.
func (c *Cursor[K]) Pos() int {
	return c.pos
}

// Reset moves the cursor back to the first token.
func (c *Cursor[K]) Reset() {
	c.pos = 0
}

// Tokens returns the walked stream.
func (c *Cursor[K]) Tokens() []token.Token[K] {
	return c.tokens
}

// AtEnd reports whether all tokens have been consumed.
func (c *Cursor[K]) AtEnd() bool {
	return c.pos >= len(c.tokens)
}

// Peek returns the token offset positions behind the cursor.
func (c *Cursor[K]) Peek(offset int) (token.Token[K], bool) {
	i := c.pos + offset
	if i < 0 || i >= len(c.tokens) {
		return token.Token[K]{}, false
	}

	return c.tokens[i], true
}

// Current returns the token at the cursor. It returns false at the end of the stream.
func (c *Cursor[K]) Current() (token.Token[K], bool) {
	return c.Peek(0)
}

// Is reports whether the token at the cursor is of the given kind.
func (c *Cursor[K]) Is(kind K) bool {
	t, ok := c.Current()
	return ok && t.Kind == kind
}

// Fail returns the error a Choice of the expected kinds would report at the cursor,
// without trying to match anything.
func (c *Cursor[K]) Fail(expected ...K) error {
	t, ok := c.Current()
	if !ok {
		return newEOFError(c.tokens, joinOr, expected...)
	}

	return newSyntaxError(t, joinOr, expected...)
}

// Expect consumes a single token of the given kind.
func (c *Cursor[K]) Expect(kind K) (token.Token[K], error) {
	t, err := Consume(kind, c.tokens, c.pos)
	if err != nil {
		return t, err
	}

	c.pos++

	return t, nil
}

// Or consumes a token of kind a or of kind b and advances by one.
func (c *Cursor[K]) Or(a, b K) (token.Token[K], error) {
	if t, err := Consume(a, c.tokens, c.pos); err == nil {
		c.pos++
		return t, nil
	}

	second := c.pos
	if c.opts.lookahead == ShiftedLookahead {
		second++
	}

	t, err := Consume(b, c.tokens, second)
	if err != nil {
		return t, c.retarget(err, joinOr, a, b)
	}

	c.pos++

	return t, nil
}

// And consumes a token of kind a followed by a token of kind b and advances by two.
// Nothing is consumed if either of them does not match.
func (c *Cursor[K]) And(a, b K) (token.Token[K], token.Token[K], error) {
	var zero token.Token[K]

	first, err := Consume(a, c.tokens, c.pos)
	if err != nil {
		return zero, zero, c.retarget(err, joinFollowed, a, b)
	}

	second, err := Consume(b, c.tokens, c.pos+1)
	if err != nil {
		return zero, zero, c.retarget(err, joinFollowed, a, b)
	}

	c.pos += 2

	return first, second, nil
}

// Choice consumes one token of any of the given kinds. The kinds are tried in
// order and the first match wins.
func (c *Cursor[K]) Choice(kinds ...K) (token.Token[K], error) {
	switch len(kinds) {
	case 0:
		return token.Token[K]{}, ErrNoOptions
	case 1:
		return c.Expect(kinds[0])
	}

	if c.opts.lookahead == ShiftedLookahead {
		return c.shiftedChoice(kinds)
	}

	for _, k := range kinds {
		if t, err := Consume(k, c.tokens, c.pos); err == nil {
			c.pos++
			return t, nil
		}
	}

	return token.Token[K]{}, c.Fail(kinds...)
}

// shiftedChoice slides a window over adjacent pairs of kinds and applies Or to each of them.
func (c *Cursor[K]) shiftedChoice(kinds []K) (token.Token[K], error) {
	var err error

	for i := 0; i+1 < len(kinds); i++ {
		var t token.Token[K]

		t, err = c.Or(kinds[i], kinds[i+1])
		if err == nil {
			return t, nil
		}
	}

	return token.Token[K]{}, c.retarget(err, joinOr, kinds...)
}

// Sequence consumes one token of each given kind, in order. Either all of them
// match and the cursor advances by len(kinds), or nothing is consumed.
func (c *Cursor[K]) Sequence(kinds ...K) ([]token.Token[K], error) {
	if len(kinds) < 2 {
		return nil, ErrTooFewKinds
	}

	res := make([]token.Token[K], 0, len(kinds))

	// adjacent pairs overlap, so every pair adds its second token
	for i := 0; i+1 < len(kinds); i++ {
		first, err := Consume(kinds[i], c.tokens, c.pos+i)
		if err != nil {
			return nil, c.retarget(err, joinFollowed, kinds...)
		}

		second, err := Consume(kinds[i+1], c.tokens, c.pos+i+1)
		if err != nil {
			return nil, c.retarget(err, joinFollowed, kinds...)
		}

		if i == 0 {
			res = append(res, first)
		}

		res = append(res, second)
	}

	c.pos += len(kinds)

	return res, nil
}

// retarget replaces the expected kinds of a SyntaxError by the full list of a combinator.
func (c *Cursor[K]) retarget(err error, joiner string, kinds ...K) error {
	se, ok := err.(*SyntaxError)
	if !ok {
		return err
	}

	res := *se
	res.Expected = labels(kinds)
	res.Joiner = joiner

	return &res
}
