// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package lexicon

import (
	"strconv"

	"github.com/golangee/rlx/token"
)

// ScriptKind is a token kind of the general purpose script language.
// The language itself has no parser yet, its table is used to inspect token streams.
type ScriptKind int

const (
	ScriptInlineComment ScriptKind = iota
	ScriptWS
	ScriptNL
	ScriptKeyword
	ScriptIdentifier
	ScriptCapitalIdentifier
	ScriptGenericIdentifier
	ScriptString
	ScriptChar
	ScriptFloat
	ScriptInteger
	ScriptLeftParen
	ScriptRightParen
	ScriptLeftBrace
	ScriptRightBrace
	ScriptLeftBracket
	ScriptRightBracket
	ScriptColon
	ScriptSemiColon
	ScriptComma
	ScriptDot
	ScriptEqual
	ScriptDash
	ScriptPlus
	ScriptStar
	ScriptSlash
	ScriptGreaterThan
	ScriptHash
	ScriptEOF
)

var scriptKindNames = [...]string{
	ScriptInlineComment:     "InlineComment",
	ScriptWS:                "WS",
	ScriptNL:                "NL",
	ScriptKeyword:           "Keyword",
	ScriptIdentifier:        "Identifier",
	ScriptCapitalIdentifier: "CapitalIdentifier",
	ScriptGenericIdentifier: "GenericIdentifier",
	ScriptString:            "String",
	ScriptChar:              "Char",
	ScriptFloat:             "Float",
	ScriptInteger:           "Integer",
	ScriptLeftParen:         "LeftParen",
	ScriptRightParen:        "RightParen",
	ScriptLeftBrace:         "LeftBrace",
	ScriptRightBrace:        "RightBrace",
	ScriptLeftBracket:       "LeftBracket",
	ScriptRightBracket:      "RightBracket",
	ScriptColon:             "Colon",
	ScriptSemiColon:         "SemiColon",
	ScriptComma:             "Comma",
	ScriptDot:               "Dot",
	ScriptEqual:             "Equal",
	ScriptDash:              "Dash",
	ScriptPlus:              "Plus",
	ScriptStar:              "Star",
	ScriptSlash:             "Slash",
	ScriptGreaterThan:       "GreaterThan",
	ScriptHash:              "Hash",
	ScriptEOF:               "EOF",
}

func (k ScriptKind) String() string {
	if k < 0 || int(k) >= len(scriptKindNames) {
		return "ScriptKind(" + strconv.Itoa(int(k)) + ")"
	}

	return scriptKindNames[k]
}

// Keyword comes before the identifier entries, so "struct" is never an Identifier.
// Char must precede GenericIdentifier and Float must precede Integer.
var script = token.MustTable(
	token.Rule[ScriptKind]{Kind: ScriptInlineComment, Pattern: `//.*`},
	token.Rule[ScriptKind]{Kind: ScriptWS, Pattern: `[\t ]+`},
	token.Rule[ScriptKind]{Kind: ScriptNL, Pattern: `(?:\r?\n)+`},
	token.Rule[ScriptKind]{Kind: ScriptKeyword, Pattern: `struct\b`},
	token.Rule[ScriptKind]{Kind: ScriptIdentifier, Pattern: `[a-z][a-zA-Z0-9_-]*`},
	token.Rule[ScriptKind]{Kind: ScriptCapitalIdentifier, Pattern: `[A-Z][a-zA-Z0-9_-]*`},
	token.Rule[ScriptKind]{Kind: ScriptString, Pattern: `"[^"]*"`},
	token.Rule[ScriptKind]{Kind: ScriptChar, Pattern: `'[^']'`},
	token.Rule[ScriptKind]{Kind: ScriptGenericIdentifier, Pattern: `'[a-z]`},
	token.Rule[ScriptKind]{Kind: ScriptFloat, Pattern: `(?:0|[1-9][0-9]*)f|(?:0|[1-9][0-9]*)\.[0-9]*`},
	token.Rule[ScriptKind]{Kind: ScriptInteger, Pattern: `0|[1-9][0-9]*`},
	token.Rule[ScriptKind]{Kind: ScriptLeftParen, Pattern: `\(`},
	token.Rule[ScriptKind]{Kind: ScriptRightParen, Pattern: `\)`},
	token.Rule[ScriptKind]{Kind: ScriptLeftBrace, Pattern: `\{`},
	token.Rule[ScriptKind]{Kind: ScriptRightBrace, Pattern: `\}`},
	token.Rule[ScriptKind]{Kind: ScriptLeftBracket, Pattern: `\[`},
	token.Rule[ScriptKind]{Kind: ScriptRightBracket, Pattern: `\]`},
	token.Rule[ScriptKind]{Kind: ScriptColon, Pattern: `:`},
	token.Rule[ScriptKind]{Kind: ScriptSemiColon, Pattern: `;`},
	token.Rule[ScriptKind]{Kind: ScriptComma, Pattern: `,`},
	token.Rule[ScriptKind]{Kind: ScriptDot, Pattern: `\.`},
	token.Rule[ScriptKind]{Kind: ScriptEqual, Pattern: `=`},
	token.Rule[ScriptKind]{Kind: ScriptDash, Pattern: `-`},
	token.Rule[ScriptKind]{Kind: ScriptPlus, Pattern: `\+`},
	token.Rule[ScriptKind]{Kind: ScriptStar, Pattern: `\*`},
	token.Rule[ScriptKind]{Kind: ScriptSlash, Pattern: `/`},
	token.Rule[ScriptKind]{Kind: ScriptGreaterThan, Pattern: `>`},
	token.Rule[ScriptKind]{Kind: ScriptHash, Pattern: `#`},
	token.Rule[ScriptKind]{Kind: ScriptEOF, Pattern: `\z`},
)

// Script returns the pattern table of the script language.
func Script() *token.Table[ScriptKind] {
	return script
}

// NewScriptScanner returns a scanner for script sources.
func NewScriptScanner(filename string) *token.Scanner[ScriptKind] {
	return token.NewScanner(filename, script)
}
