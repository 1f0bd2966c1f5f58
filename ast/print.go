// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

import "strings"

// The printers insert parentheses wherever the parser would otherwise build a
// different tree, so that parsing the output yields an Equal expression.

func (n *Val) String() string {
	return n.Token.Text
}

func (n *Sequence) String() string {
	return joinItems(n.Items)
}

func (n *Or) String() string {
	right := str(n.Right)
	if _, ok := n.Right.(*Or); ok {
		right = "(" + right + ")"
	}

	return str(n.Left) + " | " + right
}

func (n *Many) String() string {
	return repeat(n.Items, "*")
}

func (n *ManyOne) String() string {
	return repeat(n.Items, "+")
}

func (n *Optional) String() string {
	if _, ok := n.Expr.(*Val); ok {
		return str(n.Expr) + "?"
	}

	return "(" + str(n.Expr) + ")?"
}

func (n *Group) String() string {
	return "(" + str(n.Expr) + ")"
}

func (n *Assign) String() string {
	return n.Name.Text + " := " + str(n.Value)
}

// String renders a list of rules, one rule per line.
func String(rules []*Assign) string {
	var sb strings.Builder
	for _, r := range rules {
		sb.WriteString(r.String())
		sb.WriteString("\n")
	}

	return sb.String()
}

func str(e Expr) string {
	if e == nil {
		return ""
	}

	return e.String()
}

// joinItems renders items as a sequence. Alternatives and sequences bind weaker
// than sequence items and need parentheses.
func joinItems(items []Expr) string {
	tmp := make([]string, 0, len(items))
	for _, item := range items {
		switch item.(type) {
		case *Or, *Sequence:
			tmp = append(tmp, "("+item.String()+")")
		default:
			tmp = append(tmp, str(item))
		}
	}

	return strings.Join(tmp, " ")
}

func repeat(items []Expr, op string) string {
	if len(items) == 1 {
		if v, ok := items[0].(*Val); ok {
			return v.String() + op
		}

		return "(" + str(items[0]) + ")" + op
	}

	return "(" + joinItems(items) + ")" + op
}
