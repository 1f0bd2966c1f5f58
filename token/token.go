// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"fmt"
	"strconv"
)

// Kind is the capability every token kind enumeration must provide.
// Kinds are used as table keys and their String value is the human-readable label,
// e.g. the "Identifier" in "expected Identifier, got WS".
type Kind interface {
	comparable
	fmt.Stringer
}

// A Token is a lexical unit matched by a Table.
// Tokens are created by a Scanner and never modified afterwards.
type Token[K Kind] struct {
	Position
	Kind K
	// Text is the matched input. It is empty for matches which span a line break.
	Text string
}

// Line returns the one-based line the token starts at.
func (t Token[K]) Line() int {
	return t.BeginPos.Line
}

// Col returns the one-based column the token starts at.
func (t Token[K]) Col() int {
	return t.BeginPos.Col
}

// Label returns the label of the token kind.
func (t Token[K]) Label() string {
	return t.Kind.String()
}

// String renders the token as `Kind "text" - line:col`.
func (t Token[K]) String() string {
	return t.Kind.String() + " " + strconv.Quote(t.Text) + " - " + strconv.Itoa(t.Line()) + ":" + strconv.Itoa(t.Col())
}
