// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrDuplicateKind is returned by NewTable if a kind is declared twice.
	ErrDuplicateKind = errors.New("token kind declared twice")
	// ErrEmptyMatch is returned by Scan if a pattern matches the empty string before the end of input.
	// Such a table can never make progress and is a configuration bug.
	ErrEmptyMatch = errors.New("pattern matched the empty string")
)

// LexError is returned when no table entry matches at the current position.
type LexError struct {
	// Char is the first rune which could not be matched.
	Char rune
	Pos  Pos
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character '%s' at line %d col %d", EscapeChar(e.Char), e.Pos.Line, e.Pos.Col)
}

// Begin returns the position of the offending character.
func (e *LexError) Begin() Pos {
	return e.Pos
}

// End returns the position behind the offending character.
func (e *LexError) End() Pos {
	end := e.Pos
	end.Col++

	return end
}

// PosError converts the error for Explain.
func (e *LexError) PosError() *PosError {
	return NewPosError(e, fmt.Sprintf("unexpected character '%s'", EscapeChar(e.Char)))
}

// TableError describes a broken pattern table.
type TableError struct {
	// Kind is the label of the offending entry.
	Kind string
	// Pos is only set for errors detected while scanning.
	Pos Pos
	Err error
}

func (e *TableError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("token kind %s at line %d col %d: %v", e.Kind, e.Pos.Line, e.Pos.Col, e.Err)
	}

	return fmt.Sprintf("token kind %s: %v", e.Kind, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// EscapeChar returns a printable representation of r, escaping control characters.
func EscapeChar(r rune) string {
	switch r {
	case 0:
		return `\0`
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	default:
		return string(r)
	}
}

// ErrDetail is a positioned message within a PosError.
type ErrDetail struct {
	Node    Node
	Message string
}

// NewErrDetail creates a detail for a PosError.
func NewErrDetail(node Node, msg string) ErrDetail {
	return ErrDetail{
		Node:    node,
		Message: msg,
	}
}

// PosError represents a very specific positional error with a lot of explaining noise. Use Explain.
type PosError struct {
	Details []ErrDetail
	Cause   error
	Hint    string
}

// NewPosError creates a new PosError with the given root cause and optional details.
func NewPosError(node Node, msg string, details ...ErrDetail) *PosError {
	tmp := append([]ErrDetail{}, ErrDetail{
		Node:    node,
		Message: msg,
	})
	tmp = append(tmp, details...)

	return &PosError{
		Details: tmp,
	}
}

func (p *PosError) SetCause(err error) *PosError {
	p.Cause = err
	return p
}

func (p *PosError) SetHint(str string) *PosError {
	p.Hint = str
	return p
}

func (p *PosError) Unwrap() error {
	return p.Cause
}

func (p *PosError) firstDetail() ErrDetail {
	if len(p.Details) > 0 {
		return p.Details[0]
	}

	return ErrDetail{}
}

func (p *PosError) Error() string {
	if p.Cause == nil {
		return p.firstDetail().Message
	}

	return p.firstDetail().Message + ": " + p.Cause.Error()
}

// Explainer is implemented by errors that can describe themselves as a PosError.
type Explainer interface {
	error
	PosError() *PosError
}

// Explain renders err with an excerpt of src if err carries a position.
// Other errors are returned as their plain message.
func Explain(err error, src string) string {
	var pe *PosError
	if errors.As(err, &pe) {
		return pe.Explain(src)
	}

	var ex Explainer
	if errors.As(err, &ex) {
		return ex.PosError().Explain(src)
	}

	return err.Error()
}

// posLine returns the line from lines which fits to the given pos.
func posLine(lines []string, pos Pos) string {
	no := pos.Line - 1

	if no >= len(lines) {
		no = len(lines) - 1
	}

	ltext := ""
	if no < len(lines) && no >= 0 {
		ltext = strings.TrimRight(lines[no], "\r")
	}

	return ltext
}

// Explain returns a multi-line text suited to be printed into the console.
func (p *PosError) Explain(src string) string {
	// grab the required indent for the line numbers
	indent := 0

	for _, detail := range p.Details {
		l := len(strconv.Itoa(detail.Node.Begin().Line))
		if l > indent {
			indent = l
		}
	}

	source := strings.Split(src, "\n")
	sb := &strings.Builder{}

	for i, detail := range p.Details {
		line := posLine(source, detail.Node.Begin())

		if i == 0 || detail.Node.Begin().File != p.Details[i-1].Node.Begin().File {
			sb.WriteString(detail.Node.Begin().String())
			sb.WriteString("\n")
		}

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |\n", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"d |", detail.Node.Begin().Line))
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |", ""))
		sb.WriteString(strings.Repeat(" ", max(detail.Node.Begin().Col-1, 0)))

		width := detail.Node.End().Col - detail.Node.Begin().Col
		if width <= 1 || detail.Node.End().Line != detail.Node.Begin().Line {
			sb.WriteString("^~~~ ")
		} else {
			sb.WriteString(strings.Repeat("^", width))
			sb.WriteRune(' ')
		}

		sb.WriteString(detail.Message)
		sb.WriteString("\n")

		if i < len(p.Details)-1 {
			sb.WriteString(strings.Repeat(" ", indent))
			sb.WriteString("...\n")
		}
	}

	if p.Hint != "" {
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |\n", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s = hint: %s\n", "", p.Hint))
	}

	return sb.String()
}
