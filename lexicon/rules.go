// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package lexicon contains the token kinds and pattern tables of the languages rlx understands:
// the rule description language and a general purpose script language.
package lexicon

import (
	"strconv"

	"github.com/golangee/rlx/token"
)

// Kind is a token kind of the rule description language, e.g.
//
//	// numbers and names
//	literal := $Integer | name
//	call    := name LeftParen (literal Comma?)* RightParen
type Kind int

const (
	InlineComment Kind = iota
	Identifier
	WS
	NL
	Assign
	Var
	Or
	LeftParen
	RightParen
	Star
	Plus
	Question
	EOF
)

var kindNames = [...]string{
	InlineComment: "InlineComment",
	Identifier:    "Identifier",
	WS:            "WS",
	NL:            "NL",
	Assign:        "Assign",
	Var:           "Var",
	Or:            "Or",
	LeftParen:     "LeftParen",
	RightParen:    "RightParen",
	Star:          "Star",
	Plus:          "Plus",
	Question:      "Question",
	EOF:           "EOF",
}

// String returns the label of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Trivia are the kinds without syntactic meaning.
var Trivia = []Kind{WS, NL, InlineComment}

// IsTrivia reports whether k is one of Trivia.
func (k Kind) IsTrivia() bool {
	return k == WS || k == NL || k == InlineComment
}

var rules = token.MustTable(
	token.Rule[Kind]{Kind: InlineComment, Pattern: `//[^\n]*`},
	token.Rule[Kind]{Kind: Identifier, Pattern: `[a-zA-Z_][a-zA-Z0-9_-]*`},
	token.Rule[Kind]{Kind: WS, Pattern: `[\t ]+`},
	token.Rule[Kind]{Kind: NL, Pattern: `(?:\r?\n)+`},
	token.Rule[Kind]{Kind: Assign, Pattern: `:=`},
	token.Rule[Kind]{Kind: Var, Pattern: `\$[a-zA-Z][a-zA-Z0-9_-]*`},
	token.Rule[Kind]{Kind: Or, Pattern: `\|`},
	token.Rule[Kind]{Kind: LeftParen, Pattern: `\(`},
	token.Rule[Kind]{Kind: RightParen, Pattern: `\)`},
	token.Rule[Kind]{Kind: Star, Pattern: `\*`},
	token.Rule[Kind]{Kind: Plus, Pattern: `\+`},
	token.Rule[Kind]{Kind: Question, Pattern: `\?`},
	token.Rule[Kind]{Kind: EOF, Pattern: `\z`},
)

// Rules returns the pattern table of the rule description language.
func Rules() *token.Table[Kind] {
	return rules
}

// NewRuleScanner returns a scanner for rule descriptions.
func NewRuleScanner(filename string) *token.Scanner[Kind] {
	return token.NewScanner(filename, rules)
}
