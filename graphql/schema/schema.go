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

// Package schema describes the types and fields a root serves. Schemas are built from schema
// definition language (SDL) text; the SDL itself is parsed and checked by gqlparser and then
// converted into the read-only type graph defined here.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/botobag/qlcore/graphql"

	"github.com/vektah/gqlparser/v2"
	gqlast "github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// TypeKind classifies a named type.
type TypeKind string

// Enumeration of TypeKind
const (
	ScalarKind      TypeKind = "SCALAR"
	ObjectKind      TypeKind = "OBJECT"
	InterfaceKind   TypeKind = "INTERFACE"
	UnionKind       TypeKind = "UNION"
	EnumKind        TypeKind = "ENUM"
	InputObjectKind TypeKind = "INPUT_OBJECT"
)

// Schema is the set of types served by a root. It is immutable after construction and safe for
// concurrent use.
type Schema struct {
	// QueryType is the root type of query operations.
	QueryType *Type

	// MutationType is nil if the schema does not support mutations.
	MutationType *Type

	// Types indexes every named type (built-in scalars included) by name. Introspection types are
	// not part of the map.
	Types map[string]*Type
}

// Type returns the named type or nil.
func (schema *Schema) Type(name string) *Type {
	return schema.Types[name]
}

// Type is a named type.
type Type struct {
	Name        string
	Kind        TypeKind
	Description string

	// Fields of an object, interface or input object in definition order.
	Fields []*Field

	// EnumValues of an enum in definition order.
	EnumValues []string

	// PossibleTypes of a union or interface.
	PossibleTypes []string
}

// Field returns the field with the given name or nil.
func (t *Type) Field(name string) *Field {
	for _, field := range t.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// FieldNames returns the names of all fields in definition order.
func (t *Type) FieldNames() []string {
	names := make([]string, len(t.Fields))
	for i, field := range t.Fields {
		names[i] = field.Name
	}
	return names
}

// HasEnumValue returns true if name is one of the values of an enum type.
func (t *Type) HasEnumValue(name string) bool {
	for _, value := range t.EnumValues {
		if value == name {
			return true
		}
	}
	return false
}

// IsLeaf returns true for scalar and enum types.
func (t *Type) IsLeaf() bool {
	return t.Kind == ScalarKind || t.Kind == EnumKind
}

// IsComposite returns true for object, interface and union types.
func (t *Type) IsComposite() bool {
	return t.Kind == ObjectKind || t.Kind == InterfaceKind || t.Kind == UnionKind
}

// Field is a field of an object, interface or input object.
type Field struct {
	Name        string
	Description string
	Type        *TypeRef

	// Arguments in definition order.
	Arguments []*Argument
}

// Argument returns the argument with the given name or nil.
func (field *Field) Argument(name string) *Argument {
	for _, arg := range field.Arguments {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}

// ArgumentNames returns the names of all arguments in definition order.
func (field *Field) ArgumentNames() []string {
	names := make([]string, len(field.Arguments))
	for i, arg := range field.Arguments {
		names[i] = arg.Name
	}
	return names
}

// Argument is a declared field argument.
type Argument struct {
	Name string
	Type *TypeRef

	// HasDefault is true if the argument declares a default value.
	HasDefault bool
}

// IsRequired returns true for a non-null argument without default.
func (arg *Argument) IsRequired() bool {
	return arg.Type.IsNonNull() && !arg.HasDefault
}

// TypeRefKind classifies a TypeRef.
type TypeRefKind uint8

// Enumeration of TypeRefKind
const (
	NamedRef TypeRefKind = iota
	ListRef
	NonNullRef
)

// TypeRef is a reference to a type as written in a field or argument declaration: a type name
// possibly wrapped in list and non-null modifiers.
type TypeRef struct {
	Kind TypeRefKind

	// Name is set for NamedRef.
	Name string

	// OfType is set for ListRef and NonNullRef.
	OfType *TypeRef
}

// Named creates a reference to a named type.
func Named(name string) *TypeRef {
	return &TypeRef{Kind: NamedRef, Name: name}
}

// ListOf wraps t in a list.
func ListOf(t *TypeRef) *TypeRef {
	return &TypeRef{Kind: ListRef, OfType: t}
}

// NonNullOf wraps t in a non-null modifier.
func NonNullOf(t *TypeRef) *TypeRef {
	return &TypeRef{Kind: NonNullRef, OfType: t}
}

// IsNonNull returns true if the reference is wrapped in a non-null modifier.
func (t *TypeRef) IsNonNull() bool {
	return t.Kind == NonNullRef
}

// IsList returns true if the reference is a list, ignoring a non-null wrapper.
func (t *TypeRef) IsList() bool {
	return t.Nullable().Kind == ListRef
}

// Nullable strips a non-null wrapper.
func (t *TypeRef) Nullable() *TypeRef {
	if t.Kind == NonNullRef {
		return t.OfType
	}
	return t
}

// NamedType returns the name of the innermost named type.
func (t *TypeRef) NamedType() string {
	for t.Kind != NamedRef {
		t = t.OfType
	}
	return t.Name
}

// String returns the type in SDL notation (e.g., "[Episode!]!").
func (t *TypeRef) String() string {
	switch t.Kind {
	case ListRef:
		return "[" + t.OfType.String() + "]"
	case NonNullRef:
		return t.OfType.String() + "!"
	}
	return t.Name
}

// Parse builds a Schema from SDL text. Built-in scalars are predeclared. The name identifies the
// source in error messages.
func Parse(name string, sdl string) (*Schema, error) {
	const op graphql.Op = "schema.Parse"

	def, err := gqlparser.LoadSchema(&gqlast.Source{
		Name:  name,
		Input: sdl,
	})
	if err != nil {
		return nil, convertError(op, err)
	}

	if def.Query == nil {
		return nil, graphql.NewError("Schema does not define a query root type.", op, graphql.ErrKindValidation)
	}

	return fromDefinition(def), nil
}

// MustParse is like Parse but panics on error. It suits schemas declared as package-level
// variables.
func MustParse(name string, sdl string) *Schema {
	schema, err := Parse(name, sdl)
	if err != nil {
		panic(err)
	}
	return schema
}

func convertError(op graphql.Op, err error) error {
	var gqlErr *gqlerror.Error
	if !errors.As(err, &gqlErr) {
		return graphql.NewError(err.Error(), op, graphql.ErrKindValidation)
	}

	var locations []graphql.ErrorLocation
	for _, location := range gqlErr.Locations {
		if location.Line <= 0 {
			continue
		}
		locations = append(locations, graphql.ErrorLocation{
			Line:   uint(location.Line),
			Column: uint(location.Column),
		})
	}

	return graphql.NewError(gqlErr.Message, op, graphql.ErrKindValidation, locations)
}

func isIntrospection(name string) bool {
	return strings.HasPrefix(name, "__")
}

func fromDefinition(def *gqlast.Schema) *Schema {
	schema := &Schema{
		Types: make(map[string]*Type, len(def.Types)),
	}

	for name, d := range def.Types {
		if isIntrospection(name) {
			continue
		}
		schema.Types[name] = convertType(def, d)
	}

	schema.QueryType = schema.Types[def.Query.Name]
	if def.Mutation != nil {
		schema.MutationType = schema.Types[def.Mutation.Name]
	}

	return schema
}

func convertType(def *gqlast.Schema, d *gqlast.Definition) *Type {
	t := &Type{
		Name:        d.Name,
		Kind:        TypeKind(d.Kind),
		Description: d.Description,
	}

	for _, f := range d.Fields {
		// Introspection fields added to the query type are not served.
		if isIntrospection(f.Name) {
			continue
		}
		t.Fields = append(t.Fields, convertField(f))
	}

	for _, v := range d.EnumValues {
		t.EnumValues = append(t.EnumValues, v.Name)
	}

	if d.IsAbstractType() {
		for _, possible := range def.GetPossibleTypes(d) {
			t.PossibleTypes = append(t.PossibleTypes, possible.Name)
		}
	}

	return t
}

func convertField(f *gqlast.FieldDefinition) *Field {
	field := &Field{
		Name:        f.Name,
		Description: f.Description,
		Type:        convertTypeRef(f.Type),
	}

	for _, a := range f.Arguments {
		field.Arguments = append(field.Arguments, &Argument{
			Name:       a.Name,
			Type:       convertTypeRef(a.Type),
			HasDefault: a.DefaultValue != nil,
		})
	}

	return field
}

func convertTypeRef(t *gqlast.Type) *TypeRef {
	if t.NonNull {
		nullable := *t
		nullable.NonNull = false
		return NonNullOf(convertTypeRef(&nullable))
	}
	if t.Elem != nil {
		return ListOf(convertTypeRef(t.Elem))
	}
	return Named(t.NamedType)
}

// String describes the schema for debugging.
func (schema *Schema) String() string {
	mutation := "<none>"
	if schema.MutationType != nil {
		mutation = schema.MutationType.Name
	}
	return fmt.Sprintf("Schema(query: %s, mutation: %s, %d types)",
		schema.QueryType.Name, mutation, len(schema.Types))
}
