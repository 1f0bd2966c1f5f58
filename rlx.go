// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package rlx reads rule descriptions, a small notation for grammars like
//
//	// a comma separated list of names
//	list := $Name (Comma $Name)*
//
// into syntax trees. Every rule consists of a name, the assignment operator := and
// a body built from references to other rules or $variables, alternatives (a | b),
// sequences (a b), groups and the repetitions x* (zero or more), x+ (one or more)
// and x? (optional).
//
// The rules are not validated, e.g. referencing an undeclared rule is not an error.
package rlx

import (
	"fmt"
	"os"

	"github.com/golangee/rlx/ast"
	"github.com/golangee/rlx/lexicon"
	"github.com/golangee/rlx/parser"
	"github.com/golangee/rlx/token"
)

// FileError is returned if a file could not be read. Lexical and syntax errors
// in the content of the file are never wrapped into a FileError.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("error reading file %q: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Tokenize returns the tokens of a rule description, including whitespace and comments.
// The filename is only used for positions.
func Tokenize(filename, src string) ([]ast.Token, error) {
	return lexicon.NewRuleScanner(filename).Scan(src, lexicon.EOF)
}

// TokenizeScript returns the tokens of a text in the general purpose script language.
func TokenizeScript(filename, src string) ([]token.Token[lexicon.ScriptKind], error) {
	return lexicon.NewScriptScanner(filename).Scan(src, lexicon.ScriptEOF)
}

// Parse parses the rules of a rule description. Errors are either a *token.LexError
// or a *parser.SyntaxError, both can be rendered with token.Explain.
func Parse(filename, src string) ([]*ast.Assign, error) {
	p, err := parser.New(filename, src)
	if err != nil {
		return nil, err
	}

	return p.Parse()
}

// ReadFile loads a file for Parse or Tokenize. A failure is returned as *FileError.
func ReadFile(path string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}

	return string(buf), nil
}

// ParseFile reads and parses the rule description at path.
func ParseFile(path string) ([]*ast.Assign, error) {
	src, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(path, src)
}
