// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package encoder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/golangee/rlx/ast"
	"github.com/golangee/rlx/token"
)

// textEncoder renders rules as trees and tokens as a listing, one token per line.
type textEncoder struct {
	writer *bufio.Writer
	color  bool

	rule, typ, value, pos lipgloss.Style
}

func newTextEncoder(w io.Writer, color bool) *textEncoder {
	e := &textEncoder{
		writer: bufio.NewWriter(w),
		color:  color,
	}

	if color {
		r := lipgloss.NewRenderer(w)
		e.rule = r.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
		e.typ = r.NewStyle().Foreground(lipgloss.Color("6"))
		e.value = r.NewStyle().Foreground(lipgloss.Color("2"))
		e.pos = r.NewStyle().Faint(true)
	}

	return e
}

func (e *textEncoder) render(style lipgloss.Style, s string) string {
	if !e.color {
		return s
	}

	return style.Render(s)
}

// encodeRules writes every rule followed by the tree of its body.
func (e *textEncoder) encodeRules(rules []*ast.Assign) error {
	for _, r := range rules {
		t := tree.Root(e.render(e.rule, r.String()))
		if r.Value != nil {
			t.Child(e.subtree(FromExpr(r.Value)))
		}

		if _, err := e.writer.WriteString(t.String() + "\n"); err != nil {
			return err
		}
	}

	return e.flush()
}

func (e *textEncoder) subtree(n *Node) any {
	label := e.label(n)
	if len(n.Children) == 0 {
		return label
	}

	t := tree.Root(label)
	for _, c := range n.Children {
		t.Child(e.subtree(c))
	}

	return t
}

func (e *textEncoder) label(n *Node) string {
	s := e.render(e.typ, n.Type)
	if n.Value != "" {
		s += " " + e.render(e.value, n.Value)
	}

	if n.Line > 0 {
		s += " " + e.render(e.pos, strconv.Itoa(n.Line)+":"+strconv.Itoa(n.Col))
	}

	return s
}

func encodeTextTokens[K token.Kind](e *textEncoder, tokens []token.Token[K]) error {
	for _, t := range tokens {
		line := t.String()
		if e.color {
			line = e.render(e.typ, t.Label()) + " " + e.render(e.value, strconv.Quote(t.Text)) + " - " +
				e.render(e.pos, strconv.Itoa(t.Line())+":"+strconv.Itoa(t.Col()))
		}

		if _, err := e.writer.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	return e.flush()
}

func (e *textEncoder) flush() error {
	if err := e.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush written text: %w", err)
	}

	return nil
}
