// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package ast contains the syntax tree of rule descriptions.
// A rule description is a list of rules like
//
//	call := name LeftParen (arg (Comma arg)*)? RightParen
//
// Every rule is parsed into an Assign, whose Value is a tree of the other expression types.
package ast

import (
	"github.com/golangee/rlx/lexicon"
	"github.com/golangee/rlx/token"
)

// Token is a token of the rule description language.
type Token = token.Token[lexicon.Kind]

// Expr is a node of the rule syntax tree.
type Expr interface {
	token.Node
	// String returns the expression in rule description syntax.
	String() string
	exprNode()
}

// Val references a terminal or another rule, by Identifier or by Var.
type Val struct {
	Token Token
}

// Sequence matches its items one after another.
type Sequence struct {
	Items []Expr
	Range token.Position
}

// Or matches either Left or Right. Lists of alternatives are folded to the left,
// so that a | b | c is Or{Or{a, b}, c}.
type Or struct {
	Left  Expr
	Right Expr
	Range token.Position
}

// Many is the zero-or-more repetition (x)*.
type Many struct {
	Items []Expr
	Range token.Position
}

// ManyOne is the one-or-more repetition (x)+.
type ManyOne struct {
	Items []Expr
	Range token.Position
}

// Optional is the zero-or-one repetition x?.
type Optional struct {
	Expr  Expr
	Range token.Position
}

// Group is a parenthesized expression. It is kept for printing only and
// has the same meaning as its content.
type Group struct {
	Expr  Expr
	Range token.Position
}

// Assign is a whole rule: Name := Value.
type Assign struct {
	Name  Token
	Value Expr
	Range token.Position
}

func (*Val) exprNode()      {}
func (*Sequence) exprNode() {}
func (*Or) exprNode()       {}
func (*Many) exprNode()     {}
func (*ManyOne) exprNode()  {}
func (*Optional) exprNode() {}
func (*Group) exprNode()    {}
func (*Assign) exprNode()   {}

func (n *Val) Begin() token.Pos      { return n.Token.Begin() }
func (n *Val) End() token.Pos        { return n.Token.End() }
func (n *Sequence) Begin() token.Pos { return n.Range.Begin() }
func (n *Sequence) End() token.Pos   { return n.Range.End() }
func (n *Or) Begin() token.Pos       { return n.Range.Begin() }
func (n *Or) End() token.Pos         { return n.Range.End() }
func (n *Many) Begin() token.Pos     { return n.Range.Begin() }
func (n *Many) End() token.Pos       { return n.Range.End() }
func (n *ManyOne) Begin() token.Pos  { return n.Range.Begin() }
func (n *ManyOne) End() token.Pos    { return n.Range.End() }
func (n *Optional) Begin() token.Pos { return n.Range.Begin() }
func (n *Optional) End() token.Pos   { return n.Range.End() }
func (n *Group) Begin() token.Pos    { return n.Range.Begin() }
func (n *Group) End() token.Pos      { return n.Range.End() }
func (n *Assign) Begin() token.Pos   { return n.Range.Begin() }
func (n *Assign) End() token.Pos     { return n.Range.End() }

// Name returns the referenced name, including the leading $ of a Var.
func (n *Val) Name() string {
	return n.Token.Text
}

// IsVar reports whether the value is a $variable reference.
func (n *Val) IsVar() bool {
	return n.Token.Kind == lexicon.Var
}

// Alternatives returns the flattened list of alternatives of a left folded Or.
func (n *Or) Alternatives() []Expr {
	if left, ok := n.Left.(*Or); ok {
		return append(left.Alternatives(), n.Right)
	}

	return []Expr{n.Left, n.Right}
}

// Ident creates an Identifier value without position, e.g. for building expected trees.
func Ident(name string) *Val {
	return &Val{Token: Token{Kind: lexicon.Identifier, Text: name}}
}

// Variable creates a Var value without position. The leading $ is added if missing.
func Variable(name string) *Val {
	if len(name) == 0 || name[0] != '$' {
		name = "$" + name
	}

	return &Val{Token: Token{Kind: lexicon.Var, Text: name}}
}

// NewSequence creates a Sequence of the given items.
func NewSequence(items ...Expr) *Sequence {
	return &Sequence{Items: items}
}

// NewOr creates a binary alternative.
func NewOr(left, right Expr) *Or {
	return &Or{Left: left, Right: right}
}

// Alternatives folds the given expressions to the left into nested Or nodes.
// A single expression is returned as is, no expressions result in nil.
func Alternatives(exprs ...Expr) Expr {
	if len(exprs) == 0 {
		return nil
	}

	res := exprs[0]
	for _, e := range exprs[1:] {
		res = NewOr(res, e)
	}

	return res
}

// NewMany creates a zero-or-more repetition.
func NewMany(items ...Expr) *Many {
	return &Many{Items: items}
}

// NewManyOne creates a one-or-more repetition.
func NewManyOne(items ...Expr) *ManyOne {
	return &ManyOne{Items: items}
}

// NewOptional creates a zero-or-one repetition.
func NewOptional(expr Expr) *Optional {
	return &Optional{Expr: expr}
}

// NewGroup wraps expr into parentheses.
func NewGroup(expr Expr) *Group {
	return &Group{Expr: expr}
}

// NewAssign creates the rule name := value.
func NewAssign(name string, value Expr) *Assign {
	return &Assign{
		Name:  Token{Kind: lexicon.Identifier, Text: name},
		Value: value,
	}
}
