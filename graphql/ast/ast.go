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

// Package ast defines the in-memory representation of a parsed query: operations, fields,
// arguments and the literal values that appear in them.
package ast

import (
	"github.com/botobag/qlcore/graphql"
	"github.com/botobag/qlcore/graphql/token"
)

// Name is an identifier. It names fields, types and aliases and, when used as a literal, stands for
// an enum-like value.
type Name string

// String returns the identifier text.
func (name Name) String() string {
	return string(name)
}

// ID is an opaque entity identifier. It is obtained by converting a NameValue.
type ID string

// String returns the identifier text.
func (id ID) String() string {
	return string(id)
}

// Argument is a (name, value) pair supplied to a field. A positional argument (e.g., the 202 in
// human(202)) has an empty Name.
type Argument struct {
	Name  Name
	Value Value
}

// IsPositional returns true if the argument was given without a name.
func (arg Argument) IsPositional() bool {
	return len(arg.Name) == 0
}

// Field is one selection in a query.
type Field struct {
	// Alias renames the field in the result; empty when the field is not aliased.
	Alias Name

	Name Name

	// Arguments in source order. Names are not required to be unique.
	Arguments []Argument

	// Nested selections in source order.
	Fields []*Field

	// Position of the first token of the field in the source; zero for fields built in code.
	Position token.Position
}

// NewField is a convenience for building fields in code.
func NewField(name Name, args []Argument, fields ...*Field) *Field {
	return &Field{
		Name:      name,
		Arguments: args,
		Fields:    fields,
	}
}

// ResponseKey returns the key under which the field's value appears in the result.
func (field *Field) ResponseKey() string {
	if len(field.Alias) > 0 {
		return string(field.Alias)
	}
	return string(field.Name)
}

// FindArg returns the value of the first argument named name. Later duplicates are never visible.
func (field *Field) FindArg(name Name) (Value, bool) {
	for _, arg := range field.Arguments {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return nil, false
}

// OperationType is either query or mutation.
type OperationType string

// Enumeration of OperationType
const (
	OperationTypeQuery    OperationType = "query"
	OperationTypeMutation OperationType = "mutation"
)

// Operation is a parsed top-level request. A query owns its top-level fields. A mutation is a
// marker without payload: it is recognized by the parser but cannot be executed.
type Operation struct {
	Type OperationType

	// Name is optional.
	Name Name

	fields []*Field
}

// NewQuery creates a query operation selecting the given top-level fields.
func NewQuery(name Name, fields ...*Field) *Operation {
	return &Operation{
		Type:   OperationTypeQuery,
		Name:   name,
		fields: fields,
	}
}

// NewMutation creates a mutation marker.
func NewMutation(name Name) *Operation {
	return &Operation{
		Type: OperationTypeMutation,
		Name: name,
	}
}

// IsQuery returns true for a query operation.
func (op *Operation) IsQuery() bool {
	return op.Type == OperationTypeQuery
}

// IsMutation returns true for a mutation operation.
func (op *Operation) IsMutation() bool {
	return op.Type == OperationTypeMutation
}

// RootFields returns the top-level fields of a query. It fails with ErrKindUnsupported for a
// mutation and for a query that selects nothing.
func (op *Operation) RootFields() ([]*Field, error) {
	const opName graphql.Op = "ast.Operation.RootFields"

	if op.IsMutation() {
		return nil, graphql.NewUnsupportedError(opName, "Mutation operations are not supported.")
	}
	if len(op.fields) == 0 {
		return nil, graphql.NewUnsupportedError(opName, "Operation selects no fields.")
	}
	return op.fields, nil
}

// RootField returns the first top-level field of a query. It fails the same way as RootFields.
func (op *Operation) RootField() (*Field, error) {
	fields, err := op.RootFields()
	if err != nil {
		return nil, err
	}
	return fields[0], nil
}

// Variables maps variable names to the values supplied at execution time.
type Variables map[string]Value
