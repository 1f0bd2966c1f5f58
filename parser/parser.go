// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package parser contains generic parser combinators over token streams and
// the parser for rule descriptions, which is built from them.
package parser

import (
	"fmt"

	"github.com/golangee/rlx/ast"
	"github.com/golangee/rlx/lexicon"
	"github.com/golangee/rlx/token"
)

// Parser converts a rule description into a list of rules.
// The grammar of rule descriptions is
//
//	rules := rule*
//	rule  := Identifier ":=" alt
//	alt   := seq ("|" seq)*
//	seq   := term+
//	term  := (Var | Identifier | "(" alt ")") ("*" | "+" | "?")?
//
// A seq ends in front of the next rule, which is detected by looking ahead for
// an Identifier followed by ":=". Whitespace, line breaks and comments have no
// meaning and are removed before parsing.
type Parser struct {
	tokens []ast.Token
	cursor *Cursor[lexicon.Kind]
}

// New tokenizes src and prepares a Parser for it. A *token.LexError is returned
// if src contains characters outside of the rule description language.
func New(filename, src string) (*Parser, error) {
	tokens, err := lexicon.NewRuleScanner(filename).Scan(src, lexicon.EOF)
	if err != nil {
		return nil, err
	}

	return &Parser{
		tokens: tokens,
		cursor: NewCursor(Skip(tokens, lexicon.Trivia...)),
	}, nil
}

// Tokens returns the complete token stream, including whitespace and comments.
func (p *Parser) Tokens() []ast.Token {
	return p.tokens
}

// Parse parses all rules. The first syntax error aborts the whole parse.
// Parse may be called again, it starts over at the first token.
func (p *Parser) Parse() ([]*ast.Assign, error) {
	p.cursor.Reset()

	var rules []*ast.Assign

	for !p.cursor.AtEnd() && !p.cursor.Is(lexicon.EOF) {
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}

		rules = append(rules, rule)
	}

	return rules, nil
}

// ParseTerminal consumes a Var or an Identifier and returns it as a value.
func (p *Parser) ParseTerminal() (*ast.Val, error) {
	tok, err := p.cursor.Choice(lexicon.Var, lexicon.Identifier)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lexicon.Var, lexicon.Identifier:
		return &ast.Val{Token: tok}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedKind, tok)
	}
}

func (p *Parser) parseRule() (*ast.Assign, error) {
	head, err := p.cursor.Sequence(lexicon.Identifier, lexicon.Assign)
	if err != nil {
		return nil, err
	}

	value, err := p.parseAlt()
	if err != nil {
		return nil, err
	}

	return &ast.Assign{
		Name:  head[0],
		Value: value,
		Range: span(head[0], value),
	}, nil
}

func (p *Parser) parseAlt() (ast.Expr, error) {
	left, err := p.parseSeq()
	if err != nil {
		return nil, err
	}

	for p.cursor.Is(lexicon.Or) {
		if _, err := p.cursor.Expect(lexicon.Or); err != nil {
			return nil, err
		}

		right, err := p.parseSeq()
		if err != nil {
			return nil, err
		}

		left = &ast.Or{
			Left:  left,
			Right: right,
			Range: span(left, right),
		}
	}

	return left, nil
}

func (p *Parser) parseSeq() (ast.Expr, error) {
	var items []ast.Expr

	for !p.atSeqEnd() {
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		items = append(items, term)
	}

	switch len(items) {
	case 0:
		return nil, p.cursor.Fail(lexicon.Var, lexicon.Identifier, lexicon.LeftParen)
	case 1:
		return items[0], nil
	default:
		return &ast.Sequence{
			Items: items,
			Range: span(items[0], items[len(items)-1]),
		}, nil
	}
}

// atSeqEnd reports whether the cursor is at a token which cannot continue a sequence.
func (p *Parser) atSeqEnd() bool {
	if p.cursor.AtEnd() {
		return true
	}

	if p.cursor.Is(lexicon.Or) || p.cursor.Is(lexicon.RightParen) || p.cursor.Is(lexicon.EOF) {
		return true
	}

	// the head of the next rule
	next, ok := p.cursor.Peek(1)

	return p.cursor.Is(lexicon.Identifier) && ok && next.Kind == lexicon.Assign
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	var term ast.Expr

	if p.cursor.Is(lexicon.LeftParen) {
		group, err := p.parseGroup()
		if err != nil {
			return nil, err
		}

		term = group
	} else {
		val, err := p.ParseTerminal()
		if err != nil {
			return nil, err
		}

		term = val
	}

	op, err := p.cursor.Choice(lexicon.Star, lexicon.Plus, lexicon.Question)
	if err != nil {
		// no repetition
		return term, nil
	}

	return repetition(term, op), nil
}

func (p *Parser) parseGroup() (*ast.Group, error) {
	open, err := p.cursor.Expect(lexicon.LeftParen)
	if err != nil {
		return nil, err
	}

	inner, err := p.parseAlt()
	if err != nil {
		return nil, err
	}

	closing, err := p.cursor.Expect(lexicon.RightParen)
	if err != nil {
		return nil, err
	}

	return &ast.Group{
		Expr:  inner,
		Range: span(open, closing),
	}, nil
}

// repetition applies the postfix operator op to term. A group is replaced by
// its content, and the items of a grouped sequence become the repeated items.
func repetition(term ast.Expr, op ast.Token) ast.Expr {
	content := term
	if g, ok := term.(*ast.Group); ok {
		content = g.Expr
	}

	items := []ast.Expr{content}
	if seq, ok := content.(*ast.Sequence); ok {
		items = seq.Items
	}

	r := span(term, op)

	switch op.Kind {
	case lexicon.Star:
		return &ast.Many{Items: items, Range: r}
	case lexicon.Plus:
		return &ast.ManyOne{Items: items, Range: r}
	default:
		return &ast.Optional{Expr: content, Range: r}
	}
}

func span(first, last token.Node) token.Position {
	return token.Position{
		BeginPos: first.Begin(),
		EndPos:   last.End(),
	}
}
