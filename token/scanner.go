// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"strings"
	"unicode/utf8"
)

// Scanner converts text into a token stream using a pattern table.
// The Scanner keeps no state between calls to Scan, so a single instance
// may be shared between goroutines.
type Scanner[K Kind] struct {
	table    *Table[K]
	filename string
}

// NewScanner creates a Scanner for the given table. The filename is only used for positions.
func NewScanner[K Kind](filename string, table *Table[K]) *Scanner[K] {
	return &Scanner[K]{
		table:    table,
		filename: filename,
	}
}

// Table returns the pattern table of the scanner.
func (s *Scanner[K]) Table() *Table[K] {
	return s.table
}

// scan holds the position state of a single Scan call.
type scan[K Kind] struct {
	text   string
	tokens []Token[K]
	// pos is the position of the next byte to match.
	pos Pos
}

// Scan tokenizes the whole text. The returned stream always ends with exactly
// one token of kind eof. Scanning stops at the first position no table entry
// matches, in which case a *LexError is returned.
func (s *Scanner[K]) Scan(text string, eof K) ([]Token[K], error) {
	sc := &scan[K]{
		text: text,
		pos: Pos{
			File: s.filename,
			Line: 1,
			Col:  1,
		},
	}

	for sc.pos.Offset < len(text) {
		rest := text[sc.pos.Offset:]

		kind, n, ok := s.table.match(rest)
		if !ok {
			r, _ := utf8.DecodeRuneInString(rest)
			return nil, &LexError{Char: r, Pos: sc.pos}
		}

		if n == 0 {
			return nil, &TableError{Kind: kind.String(), Err: ErrEmptyMatch, Pos: sc.pos}
		}

		sc.push(kind, rest[:n])
	}

	sc.tokens = append(sc.tokens, Token[K]{
		Position: Position{BeginPos: sc.pos, EndPos: sc.pos},
		Kind:     eof,
	})

	return sc.tokens, nil
}

// push appends a token for the matched value and advances the position.
func (sc *scan[K]) push(kind K, value string) {
	begin := sc.pos
	lines := strings.Count(value, "\n")

	sc.pos.Offset += len(value)
	sc.pos.Line += lines

	if lines > 0 {
		tail := value[strings.LastIndexByte(value, '\n')+1:]
		sc.pos.Col = utf8.RuneCountInString(tail) + 1
		// multi-line payloads are not propagated
		value = ""
	} else {
		sc.pos.Col += utf8.RuneCountInString(value)
	}

	sc.tokens = append(sc.tokens, Token[K]{
		Position: Position{BeginPos: begin, EndPos: sc.pos},
		Kind:     kind,
		Text:     value,
	})
}
