// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package util contains small helpers shared by the encoders.
package util

import "strconv"

// Attribute represents a single key value pair of an encoded node.
type Attribute struct {
	Key   string
	Value string
}

// AttributeList is an ordered list of attributes with unique keys.
// The zero value is an empty list.
type AttributeList struct {
	attributes []Attribute
}

// NewAttributeList creates a list from alternating keys and values.
// A trailing key without value is ignored.
func NewAttributeList(keyValues ...string) AttributeList {
	l := AttributeList{}
	for i := 0; i+1 < len(keyValues); i += 2 {
		l.Set(keyValues[i], keyValues[i+1])
	}

	return l
}

// Len returns the number of attributes in the list.
func (l *AttributeList) Len() int {
	return len(l.attributes)
}

// Set the given attribute if it already exists or append a new
// one otherwise. Returns true if an existing attribute got overwritten.
func (l *AttributeList) Set(key, value string) bool {
	for i := range l.attributes {
		if l.attributes[i].Key == key {
			l.attributes[i].Value = value
			return true
		}
	}

	l.attributes = append(l.attributes, Attribute{Key: key, Value: value})

	return false
}

// SetInt is Set for integer values.
func (l *AttributeList) SetInt(key string, value int) bool {
	return l.Set(key, strconv.Itoa(value))
}

// Get returns the attribute for a given key, or nil if it does not exist.
func (l *AttributeList) Get(key string) *Attribute {
	for i := range l.attributes {
		if l.attributes[i].Key == key {
			return &l.attributes[i]
		}
	}

	return nil
}

// Pop returns the *first* attribute and removes it from the list.
// Returns nil if the list is empty.
func (l *AttributeList) Pop() *Attribute {
	if l.Len() == 0 {
		return nil
	}

	a := l.attributes[0]
	l.attributes = l.attributes[1:]

	return &a
}

// All returns a copy of the attributes in insertion order.
func (l *AttributeList) All() []Attribute {
	return append([]Attribute(nil), l.attributes...)
}

// Merge the current list with another list.
// Attributes in "other" will be prioritized.
func (l AttributeList) Merge(other AttributeList) AttributeList {
	result := AttributeList{}

	for _, a := range l.attributes {
		result.Set(a.Key, a.Value)
	}

	for _, a := range other.attributes {
		result.Set(a.Key, a.Value)
	}

	return result
}
