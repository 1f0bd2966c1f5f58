// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

// Node contains access to the start and end positions of a token.
type Node interface {
	Begin() Pos
	End() Pos
}

// A Pos describes a resolved position within a file.
type Pos struct {
	// File contains the file name the position refers to. May be empty for in-memory input.
	File string
	// Line denotes the one-based line number in the denoted File.
	Line int
	// Col denotes the one-based column number in the denoted Line. Columns count runes.
	Col int
	// Offset is the zero-based byte offset into the input.
	Offset int
}

// String returns the content in the "file:line:col" format.
func (p Pos) String() string {
	return p.File + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// Participle converts the position into the position type used by participle.
func (p Pos) Participle() lexer.Position {
	return lexer.Position{
		Filename: p.File,
		Offset:   p.Offset,
		Line:     p.Line,
		Column:   p.Col,
	}
}

// PosFromParticiple converts a participle position into a Pos.
func PosFromParticiple(p lexer.Position) Pos {
	return Pos{
		File:   p.Filename,
		Line:   p.Line,
		Col:    p.Column,
		Offset: p.Offset,
	}
}

// Position is a range between two positions and implements Node.
type Position struct {
	BeginPos Pos
	EndPos   Pos
}

// Begin returns the first position of the range.
func (p Position) Begin() Pos {
	return p.BeginPos
}

// End returns the position just behind the range.
func (p Position) End() Pos {
	return p.EndPos
}

type defaultNode struct {
	begin, end Pos
}

func (d defaultNode) Begin() Pos {
	return d.begin
}

func (d defaultNode) End() Pos {
	return d.end
}

// NewNode creates a Node spanning begin to end.
func NewNode(begin, end Pos) Node {
	return defaultNode{begin, end}
}
