/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package ast

import (
	"io"
	"strings"
)

// Print uses a set of formatting rules (compatible with graphql-js) to convert an operation into
// query text.
func Print(op *Operation) string {
	var buf strings.Builder
	FPrint(&buf, op)
	return buf.String()
}

// FPrint "pretty-prints" an operation to out.
func FPrint(out io.StringWriter, op *Operation) {
	(&printer{
		StringWriter: out,
	}).printOperation(op)
}

type printer struct {
	io.StringWriter
	indentLevel int
}

func (p *printer) beginBlock() {
	p.WriteString("{\n")
	p.indentLevel++
}

func (p *printer) endBlock() {
	p.indentLevel--
	p.writeNewLineWithIndent()
	p.WriteString("}")
}

func (p *printer) writeNewLineWithIndent() {
	p.WriteString("\n")
	p.writeIndent()
}

func (p *printer) writeIndent() {
	p.WriteString(strings.Repeat(" ", 2*p.indentLevel))
}

func (p *printer) printOperation(op *Operation) {
	// An anonymous query prints as the shorthand selection set.
	if op.IsQuery() && len(op.Name) == 0 {
		p.printSelectionSet(op.fields)
		return
	}

	p.WriteString(string(op.Type))
	if len(op.Name) > 0 {
		p.WriteString(" ")
		p.WriteString(string(op.Name))
	}
	if len(op.fields) > 0 {
		p.WriteString(" ")
		p.printSelectionSet(op.fields)
	}
}

func (p *printer) printSelectionSet(fields []*Field) {
	if len(fields) > 0 {
		p.beginBlock()
		p.writeIndent()
		p.printField(fields[0])
		for _, field := range fields[1:] {
			p.writeNewLineWithIndent()
			p.printField(field)
		}
		p.endBlock()
	}
}

func (p *printer) printField(field *Field) {
	if len(field.Alias) > 0 {
		p.WriteString(string(field.Alias))
		p.WriteString(": ")
	}
	p.WriteString(string(field.Name))
	p.printArguments(field.Arguments)
	if len(field.Fields) > 0 {
		p.WriteString(" ")
		p.printSelectionSet(field.Fields)
	}
}

func (p *printer) printArguments(args []Argument) {
	if len(args) > 0 {
		p.WriteString("(")
		p.printArgument(args[0])
		for _, arg := range args[1:] {
			p.WriteString(", ")
			p.printArgument(arg)
		}
		p.WriteString(")")
	}
}

func (p *printer) printArgument(arg Argument) {
	if !arg.IsPositional() {
		p.WriteString(string(arg.Name))
		p.WriteString(": ")
	}
	p.WriteString(arg.Value.String())
}
