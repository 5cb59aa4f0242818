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
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// ValueKind identifies the variant of a Value.
type ValueKind uint8

// Enumeration of ValueKind
const (
	NullKind ValueKind = iota
	StringKind
	NameKind
	ArrayKind
)

func (kind ValueKind) String() string {
	switch kind {
	case NullKind:
		return "Null"
	case StringKind:
		return "String"
	case NameKind:
		return "Name"
	case ArrayKind:
		return "Array"
	}
	return "Unknown"
}

// Value is a literal in query source. The set of variants is closed: NullValue, StringValue,
// NameValue and ArrayValue.
type Value interface {
	// Kind returns the variant.
	Kind() ValueKind

	// String renders the value as GraphQL literal text.
	String() string

	// isValue prevents other packages from adding variants.
	isValue()
}

// NullValue is the literal null.
type NullValue struct{}

// StringValue is a quoted string or block string literal.
type StringValue struct {
	Value string
}

// NameValue is an unquoted literal: an enum value, a boolean, a number or any other bare
// identifier.
type NameValue struct {
	Name Name
}

// ArrayValue is a list literal. Elements may be any Value including nested arrays.
type ArrayValue struct {
	Values []Value
}

var (
	_ Value = NullValue{}
	_ Value = StringValue{}
	_ Value = NameValue{}
	_ Value = ArrayValue{}
)

// Kind implements Value.
func (NullValue) Kind() ValueKind { return NullKind }

// Kind implements Value.
func (StringValue) Kind() ValueKind { return StringKind }

// Kind implements Value.
func (NameValue) Kind() ValueKind { return NameKind }

// Kind implements Value.
func (ArrayValue) Kind() ValueKind { return ArrayKind }

func (NullValue) isValue()   {}
func (StringValue) isValue() {}
func (NameValue) isValue()   {}
func (ArrayValue) isValue()  {}

// String implements Value.
func (NullValue) String() string {
	return "null"
}

// stringQuoter encodes string literals with JSON escaping, which GraphQL string syntax shares.
var stringQuoter = jsoniter.Config{EscapeHTML: false}.Froze()

func quoteString(s string) string {
	quoted, err := stringQuoter.MarshalToString(s)
	if err != nil {
		// Marshaling a Go string cannot fail.
		panic(err)
	}
	return quoted
}

// String implements Value.
func (value StringValue) String() string {
	return quoteString(value.Value)
}

// String implements Value.
func (value NameValue) String() string {
	return string(value.Name)
}

// String implements Value.
func (value ArrayValue) String() string {
	var b strings.Builder
	writeValue(&b, value)
	return b.String()
}

func writeValue(b *strings.Builder, value Value) {
	array, ok := value.(ArrayValue)
	if !ok {
		b.WriteString(value.String())
		return
	}

	b.WriteByte('[')
	for i, v := range array.Values {
		if i > 0 {
			b.WriteString(", ")
		}
		writeValue(b, v)
	}
	b.WriteByte(']')
}

// Equal reports whether a and b are structurally equal. A nil Value only equals nil.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch a := a.(type) {
	case NullValue:
		_, ok := b.(NullValue)
		return ok

	case StringValue:
		b, ok := b.(StringValue)
		return ok && a.Value == b.Value

	case NameValue:
		b, ok := b.(NameValue)
		return ok && a.Name == b.Name

	case ArrayValue:
		b, ok := b.(ArrayValue)
		if !ok || len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}

	return false
}
