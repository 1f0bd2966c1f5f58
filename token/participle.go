// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2/lexer"
)

// Definition adapts a Table to participle's lexer.Definition, so that a participle
// grammar can be built on top of the same pattern table. Symbol names are the kind labels.
type Definition[K Kind] struct {
	table   *Table[K]
	eof     K
	symbols map[string]rune
	types   map[K]rune
}

var _ lexer.Definition = (*Definition[stringKind])(nil)

// NewDefinition creates a participle lexer definition for the table.
// Tokens of the eof kind are reported as lexer.EOF.
func NewDefinition[K Kind](table *Table[K], eof K) *Definition[K] {
	d := &Definition[K]{
		table:   table,
		eof:     eof,
		symbols: map[string]rune{"EOF": lexer.EOF},
		types:   map[K]rune{eof: lexer.EOF},
	}

	for i, k := range table.Kinds() {
		if k == eof {
			continue
		}

		typ := lexer.EOF - 1 - rune(i)
		d.symbols[k.String()] = typ
		d.types[k] = typ
	}

	return d
}

// Symbols returns the participle token types by kind label.
func (d *Definition[K]) Symbols() map[string]rune {
	return d.symbols
}

// Lex reads r completely and scans it with the table.
func (d *Definition[K]) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", filename, err)
	}

	tokens, err := NewScanner(filename, d.table).Scan(string(buf), d.eof)
	if err != nil {
		return nil, err
	}

	return &streamLexer[K]{def: d, tokens: tokens}, nil
}

// Type returns the participle token type of kind.
func (d *Definition[K]) Type(kind K) rune {
	return d.types[kind]
}

// streamLexer replays an already scanned token stream.
type streamLexer[K Kind] struct {
	def    *Definition[K]
	tokens []Token[K]
	pos    int
}

func (l *streamLexer[K]) Next() (lexer.Token, error) {
	if l.pos >= len(l.tokens) {
		last := l.tokens[len(l.tokens)-1]
		return lexer.EOFToken(last.Begin().Participle()), nil
	}

	t := l.tokens[l.pos]
	l.pos++

	return lexer.Token{
		Type:  l.def.Type(t.Kind),
		Value: t.Text,
		Pos:   t.Begin().Participle(),
	}, nil
}

// stringKind only exists for the interface assertion above.
type stringKind string

func (s stringKind) String() string {
	return string(s)
}
