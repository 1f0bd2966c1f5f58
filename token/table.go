// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"fmt"
	"regexp"
)

// Rule pairs a token kind with the regular expression that matches it.
// Pattern must not contain its own start anchor, the Table anchors every pattern.
type Rule[K Kind] struct {
	Kind    K
	Pattern string
}

type entry[K Kind] struct {
	kind K
	re   *regexp.Regexp
}

// Table is an ordered, immutable pattern table. Matching tries the entries in the
// order they were declared and the first entry that matches wins, even if a later
// entry would match a longer span.
// A Table is safe for concurrent use.
type Table[K Kind] struct {
	entries []entry[K]
	index   map[K]int
}

// NewTable compiles the given rules in order. Every kind may appear only once.
func NewTable[K Kind](rules ...Rule[K]) (*Table[K], error) {
	t := &Table[K]{
		entries: make([]entry[K], 0, len(rules)),
		index:   make(map[K]int, len(rules)),
	}

	for _, r := range rules {
		if _, ok := t.index[r.Kind]; ok {
			return nil, &TableError{Kind: r.Kind.String(), Err: ErrDuplicateKind}
		}

		re, err := regexp.Compile(`^(?:` + r.Pattern + `)`)
		if err != nil {
			return nil, &TableError{Kind: r.Kind.String(), Err: fmt.Errorf("invalid pattern %q: %w", r.Pattern, err)}
		}

		t.index[r.Kind] = len(t.entries)
		t.entries = append(t.entries, entry[K]{kind: r.Kind, re: re})
	}

	return t, nil
}

// MustTable is like NewTable but panics on error. Use it for package level tables.
func MustTable[K Kind](rules ...Rule[K]) *Table[K] {
	t, err := NewTable(rules...)
	if err != nil {
		panic(err)
	}

	return t
}

// Kinds returns all kinds in declaration order.
func (t *Table[K]) Kinds() []K {
	res := make([]K, 0, len(t.entries))
	for _, e := range t.entries {
		res = append(res, e.kind)
	}

	return res
}

// Has reports whether the kind is part of the table.
func (t *Table[K]) Has(kind K) bool {
	_, ok := t.index[kind]
	return ok
}

// Index returns the declaration index of kind or -1.
func (t *Table[K]) Index(kind K) int {
	i, ok := t.index[kind]
	if !ok {
		return -1
	}

	return i
}

// Len returns the number of entries.
func (t *Table[K]) Len() int {
	return len(t.entries)
}

// match returns the kind and the byte length of the first entry matching at the start of s.
func (t *Table[K]) match(s string) (K, int, bool) {
	for _, e := range t.entries {
		loc := e.re.FindStringIndex(s)
		if loc != nil {
			return e.kind, loc[1], true
		}
	}

	var zero K

	return zero, 0, false
}
