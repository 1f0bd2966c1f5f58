// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package encoder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golangee/rlx/ast"
	"github.com/golangee/rlx/util"
)

// XMLEncoder writes rules or tokens as indented XML.
type XMLEncoder struct {
	writer *bufio.Writer

	// openNodes is a stack of elements that are currently opened,
	// so that the closing tag and other information can be written correctly.
	openNodes []*node
	// indent is the current level of indentation for emitting XML.
	indent uint
}

// node is a node that we are currently working on.
type node struct {
	// name is the name in the XML tag which we need to save so that the closing tag can be written.
	name string
	// attributes is a list of attributes this node has.
	attributes util.AttributeList
	// openTagWritten is set to true once we have written the starting XML tag.
	openTagWritten bool
}

func NewXMLEncoder(w io.Writer) *XMLEncoder {
	return &XMLEncoder{
		writer: bufio.NewWriter(w),
	}
}

// EncodeRules writes all rules into a rules element.
func (e *XMLEncoder) EncodeRules(rules []*ast.Assign) error {
	e.open("rules", util.AttributeList{})

	for _, n := range FromRules(rules) {
		if err := e.encodeNode(n); err != nil {
			return err
		}
	}

	if err := e.Close(); err != nil {
		return err
	}

	return e.Finalize()
}

// EncodeTokens writes all tokens into a tokens element.
func (e *XMLEncoder) EncodeTokens(tokens []TokenRecord) error {
	e.open("tokens", util.AttributeList{})

	for _, t := range tokens {
		attrs := util.NewAttributeList("kind", t.Kind, "text", t.Text)
		attrs.SetInt("line", t.Line)
		attrs.SetInt("col", t.Col)

		if err := e.openNode("token", attrs); err != nil {
			return err
		}

		if err := e.Close(); err != nil {
			return err
		}
	}

	if err := e.Close(); err != nil {
		return err
	}

	return e.Finalize()
}

func (e *XMLEncoder) encodeNode(n *Node) error {
	attrs := util.AttributeList{}
	if n.Value != "" {
		attrs.Set("value", n.Value)
	}

	if n.Line > 0 {
		attrs.SetInt("line", n.Line)
		attrs.SetInt("col", n.Col)
	}

	if err := e.openNode(n.Type, attrs); err != nil {
		return err
	}

	if n.Source != "" {
		if err := e.Comment(n.Source); err != nil {
			return err
		}
	}

	for _, c := range n.Children {
		if err := e.encodeNode(c); err != nil {
			return err
		}
	}

	return e.Close()
}

// Comment writes an XML comment into the current element.
func (e *XMLEncoder) Comment(comment string) error {
	if err := e.writeTopNodeOpen(); err != nil {
		return err
	}

	return e.writeString(fmt.Sprintf("%s<!-- %s -->\n", e.indentString(), escapeXMLComment(comment)))
}

// Close writes the closing tag of the current element.
func (e *XMLEncoder) Close() error {
	if err := e.writeTopNodeOpen(); err != nil {
		return err
	}

	e.indent--

	top := e.pop()

	return e.writeString(fmt.Sprintf("%s</%s>\n", e.indentString(), top.name))
}

// Finalize flushes all buffered output.
func (e *XMLEncoder) Finalize() error {
	if err := e.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush written XML: %w", err)
	}

	return nil
}

// writeString is a convenience method to write strings to the underlying writer.
func (e *XMLEncoder) writeString(s string) error {
	_, err := e.writer.WriteString(s)

	return err
}

// openNode puts a node on our working stack but does not write it yet.
// However, its parent node might get written out, since we know that it will not get any more attributes.
func (e *XMLEncoder) openNode(name string, attrs util.AttributeList) error {
	if err := e.writeTopNodeOpen(); err != nil {
		return err
	}

	e.open(name, attrs)

	return nil
}

func (e *XMLEncoder) open(name string, attrs util.AttributeList) {
	e.push(&node{
		name:       name,
		attributes: attrs,
	})
}

// writeTopNodeOpen writes the topmost stack node to the writer.
func (e *XMLEncoder) writeTopNodeOpen() error {
	top := e.peek()
	if top != nil && !top.openTagWritten {
		top.openTagWritten = true

		// Build the opening tag with all attributes
		var tag strings.Builder

		tag.WriteString(e.indentString())
		tag.WriteString("<")
		tag.WriteString(top.name)

		for {
			attr := top.attributes.Pop()
			if attr == nil {
				break
			}

			tag.WriteString(fmt.Sprintf(` %s="%s"`, attr.Key, escapeXMLSafe(attr.Value)))
		}

		tag.WriteString(">\n")

		e.indent++

		return e.writeString(tag.String())
	}

	return nil
}

// push a node onto our working stack.
func (e *XMLEncoder) push(n *node) {
	e.openNodes = append(e.openNodes, n)
}

// peek at the top element in our working stack. Might return nil if the stack is empty.
func (e *XMLEncoder) peek() *node {
	if len(e.openNodes) > 0 {
		return e.openNodes[len(e.openNodes)-1]
	}

	return nil
}

// pop the top node from the working stack. Might return nil if the stack is empty.
func (e *XMLEncoder) pop() *node {
	if len(e.openNodes) > 0 {
		n := e.openNodes[len(e.openNodes)-1]
		e.openNodes = e.openNodes[:len(e.openNodes)-1]

		return n
	}

	return nil
}

// indentString returns a string with a number of spaces that matches the
// current indentation level.
func (e *XMLEncoder) indentString() string {
	return strings.Repeat("    ", int(e.indent))
}

// escapeXMLSafe replaces all occurrences of reserved characters in XML: <>&".
func escapeXMLSafe(s string) string {
	replacer := strings.NewReplacer("<", "&lt;", ">", "&gt;", "&", "&amp;", `"`, "&quot;")

	return replacer.Replace(s)
}

// escapeXMLComment makes s safe to be placed into a comment, which must not contain "--".
func escapeXMLComment(s string) string {
	return strings.ReplaceAll(escapeXMLSafe(s), "--", "- -")
}
