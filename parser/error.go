// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golangee/rlx/token"
)

var (
	// ErrNoOptions is returned by Choice if called without kinds.
	ErrNoOptions = errors.New("choice without options")
	// ErrTooFewKinds is returned by Sequence if called with less than two kinds.
	ErrTooFewKinds = errors.New("sequence needs at least two kinds")
	// ErrUnexpectedKind is returned if a combinator returned a kind the caller did not ask for.
	ErrUnexpectedKind = errors.New("unexpected token kind")
)

const (
	joinOr       = "or"
	joinFollowed = "followed by"
)

// SyntaxError is returned when the tokens at the cursor do not match what a combinator expected.
type SyntaxError struct {
	// Expected contains the labels of the expected kinds.
	Expected []string
	// Joiner is the word used to list multiple expected labels, "or" for alternatives and
	// "followed by" for sequences.
	Joiner string
	// Found is the label of the kind which was found instead. It is empty if EOF is set.
	Found string
	// Range covers the offending token.
	Range token.Position
	// EOF is set if the stream ended before the expected kind could be matched.
	EOF bool
}

func newSyntaxError[K token.Kind](tok token.Token[K], joiner string, expected ...K) *SyntaxError {
	return &SyntaxError{
		Expected: labels(expected),
		Joiner:   joiner,
		Found:    tok.Label(),
		Range:    tok.Position,
	}
}

func newEOFError[K token.Kind](tokens []token.Token[K], joiner string, expected ...K) *SyntaxError {
	err := &SyntaxError{
		Expected: labels(expected),
		Joiner:   joiner,
		EOF:      true,
	}

	if len(tokens) > 0 {
		end := tokens[len(tokens)-1].End()
		err.Range = token.Position{BeginPos: end, EndPos: end}
	}

	return err
}

func labels[K token.Kind](kinds []K) []string {
	res := make([]string, 0, len(kinds))
	for _, k := range kinds {
		res = append(res, k.String())
	}

	return res
}

// ExpectedString joins the expected labels, e.g. "Var or Identifier".
func (e *SyntaxError) ExpectedString() string {
	return strings.Join(e.Expected, " "+e.Joiner+" ")
}

func (e *SyntaxError) Error() string {
	if e.EOF {
		return fmt.Sprintf("unexpected end of input, expected %s", e.ExpectedString())
	}

	return fmt.Sprintf("expected %s, got %s at line %d col %d", e.ExpectedString(), e.Found, e.Range.BeginPos.Line, e.Range.BeginPos.Col)
}

// Begin returns the position of the offending token.
func (e *SyntaxError) Begin() token.Pos {
	return e.Range.Begin()
}

// End returns the position behind the offending token.
func (e *SyntaxError) End() token.Pos {
	return e.Range.End()
}

// PosError converts the error for token.Explain.
func (e *SyntaxError) PosError() *token.PosError {
	if e.EOF {
		return token.NewPosError(e, "unexpected end of input").SetHint("expected " + e.ExpectedString())
	}

	return token.NewPosError(e, fmt.Sprintf("expected %s, got %s", e.ExpectedString(), e.Found))
}
