// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package encoder

import (
	"github.com/golangee/rlx/ast"
	"github.com/golangee/rlx/token"
)

// Node types of the encoded trees.
const (
	TypeRule     = "Rule"
	TypeVal      = "Val"
	TypeVar      = "Var"
	TypeSequence = "Sequence"
	TypeOr       = "Or"
	TypeMany     = "Many"
	TypeManyOne  = "ManyOne"
	TypeOptional = "Optional"
	TypeGroup    = "Group"
)

// Node is the format independent representation of an expression, as written by the
// JSON, YAML and XML encoders.
type Node struct {
	Type string `json:"type" yaml:"type"`
	// Value is the rule name of a Rule or the referenced name of a Val or Var.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	// Source is the rule in rule description syntax, only set for a Rule.
	Source   string  `json:"source,omitempty" yaml:"source,omitempty"`
	Line     int     `json:"line,omitempty" yaml:"line,omitempty"`
	Col      int     `json:"col,omitempty" yaml:"col,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// TokenRecord is the format independent representation of a token.
type TokenRecord struct {
	Kind string `json:"kind" yaml:"kind"`
	Text string `json:"text" yaml:"text"`
	Line int    `json:"line" yaml:"line"`
	Col  int    `json:"col" yaml:"col"`
}

// FromRules converts rules into nodes.
func FromRules(rules []*ast.Assign) []*Node {
	res := make([]*Node, 0, len(rules))
	for _, r := range rules {
		res = append(res, FromRule(r))
	}

	return res
}

// FromRule converts a rule into a node with the rule body as its only child.
func FromRule(rule *ast.Assign) *Node {
	n := newNode(TypeRule, rule.Name.Begin())
	n.Value = rule.Name.Text
	n.Source = rule.String()

	if rule.Value != nil {
		n.Children = []*Node{FromExpr(rule.Value)}
	}

	return n
}

// FromExpr converts an expression tree into a node tree.
func FromExpr(e ast.Expr) *Node {
	var n *Node

	switch x := e.(type) {
	case *ast.Val:
		typ := TypeVal
		if x.IsVar() {
			typ = TypeVar
		}

		n = newNode(typ, x.Begin())
		n.Value = x.Name()

		return n
	case *ast.Assign:
		return FromRule(x)
	case *ast.Sequence:
		n = newNode(TypeSequence, x.Begin())
	case *ast.Or:
		n = newNode(TypeOr, x.Begin())
	case *ast.Many:
		n = newNode(TypeMany, x.Begin())
	case *ast.ManyOne:
		n = newNode(TypeManyOne, x.Begin())
	case *ast.Optional:
		n = newNode(TypeOptional, x.Begin())
	case *ast.Group:
		n = newNode(TypeGroup, x.Begin())
	default:
		return nil
	}

	for _, c := range ast.Children(e) {
		if child := FromExpr(c); child != nil {
			n.Children = append(n.Children, child)
		}
	}

	return n
}

// FromTokens converts tokens into records.
func FromTokens[K token.Kind](tokens []token.Token[K]) []TokenRecord {
	res := make([]TokenRecord, 0, len(tokens))
	for _, t := range tokens {
		res = append(res, TokenRecord{
			Kind: t.Label(),
			Text: t.Text,
			Line: t.Line(),
			Col:  t.Col(),
		})
	}

	return res
}

func newNode(typ string, pos token.Pos) *Node {
	return &Node{
		Type: typ,
		Line: pos.Line,
		Col:  pos.Col,
	}
}
