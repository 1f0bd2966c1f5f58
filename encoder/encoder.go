// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package encoder renders rules and token streams for humans and other tools.
package encoder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golangee/rlx/ast"
	"github.com/golangee/rlx/token"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects the output format of an Encoder.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	XML  Format = "xml"
)

// Formats lists all supported formats.
var Formats = []Format{Text, JSON, YAML, XML}

// ParseFormat returns the format of the given case-insensitive name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Option configures an Encoder.
type Option func(e *Encoder)

// WithColor enables styled text output. It has no effect on the other formats.
func WithColor(color bool) Option {
	return func(e *Encoder) {
		e.color = color
	}
}

// Encoder writes rules or tokens in one of the supported formats.
type Encoder struct {
	w      io.Writer
	format Format
	color  bool
}

// New creates an Encoder writing to w.
func New(w io.Writer, format Format, opts ...Option) *Encoder {
	e := &Encoder{
		w:      w,
		format: format,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Format returns the output format.
func (e *Encoder) Format() Format {
	return e.format
}

// EncodeRules writes the given rules.
func (e *Encoder) EncodeRules(rules []*ast.Assign) error {
	switch e.format {
	case Text:
		return newTextEncoder(e.w, e.color).encodeRules(rules)
	case JSON:
		return e.json(FromRules(rules))
	case YAML:
		return e.yaml(FromRules(rules))
	case XML:
		return NewXMLEncoder(e.w).EncodeRules(rules)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, e.format)
	}
}

// EncodeTokens writes the given tokens with e.
func EncodeTokens[K token.Kind](e *Encoder, tokens []token.Token[K]) error {
	switch e.format {
	case Text:
		return encodeTextTokens(newTextEncoder(e.w, e.color), tokens)
	case JSON:
		return e.json(FromTokens(tokens))
	case YAML:
		return e.yaml(FromTokens(tokens))
	case XML:
		return NewXMLEncoder(e.w).EncodeTokens(FromTokens(tokens))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, e.format)
	}
}

func (e *Encoder) json(v interface{}) error {
	enc := json.NewEncoder(e.w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("unable to encode json: %w", err)
	}

	return nil
}

func (e *Encoder) yaml(v interface{}) error {
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("unable to encode yaml: %w", err)
	}

	return enc.Close()
}
