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

package validator

import (
	"fmt"

	"github.com/botobag/qlcore/graphql/ast"
	"github.com/botobag/qlcore/graphql/schema"
)

// A rule checks one aspect of an operation according to one of the sections under "Validation" in
// specification [0]. Every rule implements FieldRule, ArgumentRule or both.
//
// [0]: https://graphql.github.io/graphql-spec/June2018/#sec-Validation

// FieldRule validates a field selection.
type FieldRule interface {
	CheckField(ctx *ValidationContext, field *FieldInfo)
}

// ArgumentRule validates an argument given to a field.
type ArgumentRule interface {
	CheckArgument(ctx *ValidationContext, field *FieldInfo, arg *ArgumentInfo)
}

// typenameFieldDef is the meta field available on every composite type.
var typenameFieldDef = &schema.Field{
	Name: "__typename",
	Type: schema.NonNullOf(schema.Named("String")),
}

// FieldInfo provides information of the field to be checked for FieldRule and ArgumentRule.
type FieldInfo struct {
	parentType *schema.Type
	def        *schema.Field
	node       *ast.Field
	args       []*ArgumentInfo
}

func newFieldInfo(parentType *schema.Type, node *ast.Field) *FieldInfo {
	def := parentType.Field(string(node.Name))
	if def == nil && node.Name == "__typename" && parentType.IsComposite() {
		def = typenameFieldDef
	}

	info := &FieldInfo{
		parentType: parentType,
		def:        def,
		node:       node,
		args:       make([]*ArgumentInfo, len(node.Arguments)),
	}

	for i, arg := range node.Arguments {
		info.args[i] = &ArgumentInfo{
			node: arg,
			def:  info.bindArgument(arg),
		}
	}

	return info
}

// bindArgument finds the declaration of arg. A positional argument binds to the first declared
// argument.
func (info *FieldInfo) bindArgument(arg ast.Argument) *schema.Argument {
	if info.def == nil {
		return nil
	}
	if arg.IsPositional() {
		if len(info.def.Arguments) == 0 {
			return nil
		}
		return info.def.Arguments[0]
	}
	return info.def.Argument(string(arg.Name))
}

// ParentType returns the type that includes the field. It is always a composite type.
func (info *FieldInfo) ParentType() *schema.Type {
	return info.parentType
}

// Def returns the field definition in schema or nil for unknown fields.
func (info *FieldInfo) Def() *schema.Field {
	return info.def
}

// Type returns the type of the field or nil if the field definition is not available.
func (info *FieldInfo) Type() *schema.TypeRef {
	if info.def != nil {
		return info.def.Type
	}
	return nil
}

// Node returns the field node being checked.
func (info *FieldInfo) Node() *ast.Field {
	return info.node
}

// Name returns field name.
func (info *FieldInfo) Name() string {
	return string(info.node.Name)
}

// Arguments returns the arguments given to the field in source order.
func (info *FieldInfo) Arguments() []*ArgumentInfo {
	return info.args
}

// ArgumentInfo provides information of an argument given to a field.
type ArgumentInfo struct {
	node ast.Argument
	def  *schema.Argument
}

// Node returns the argument as given.
func (info *ArgumentInfo) Node() ast.Argument {
	return info.node
}

// Def returns the declaration the argument binds to or nil.
func (info *ArgumentInfo) Def() *schema.Argument {
	return info.def
}

// Name returns the name of the declaration for a bound argument and the name as given otherwise.
func (info *ArgumentInfo) Name() string {
	if info.def != nil {
		return info.def.Name
	}
	return string(info.node.Name)
}

// Value returns the argument value.
func (info *ArgumentInfo) Value() ast.Value {
	return info.node.Value
}

// rules is a list of rules in the order they run. Each implements FieldRule, ArgumentRule or both.
type rules []interface{}

func buildRules(rs ...interface{}) *rules {
	result := make(rules, 0, len(rs))
	for _, r := range rs {
		_, isFieldRule := r.(FieldRule)
		_, isArgumentRule := r.(ArgumentRule)
		if !isFieldRule && !isArgumentRule {
			panic(fmt.Sprintf("%T is not a validation rule (must implement either "+
				"validator.FieldRule or validator.ArgumentRule)", r))
		}
		result = append(result, r)
	}
	return &result
}
