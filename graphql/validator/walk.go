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
	"github.com/botobag/qlcore/graphql"
	"github.com/botobag/qlcore/graphql/ast"
	messages "github.com/botobag/qlcore/graphql/internal/validator"
	"github.com/botobag/qlcore/graphql/schema"
)

// walk visits the fields of ctx.Operation() depth-first in source order, running every rule on each
// field. It stops at the first error.
func walk(ctx *ValidationContext) {
	rootType := ctx.schema.QueryType
	if ctx.operation.IsMutation() {
		if ctx.schema.MutationType == nil {
			ctx.ReportError(messages.NoMutationTypeMessage(), nil)
			return
		}
		rootType = ctx.schema.MutationType
	} else if rootType == nil {
		ctx.ReportError(messages.NoQueryTypeMessage(), nil)
		return
	}

	fields, err := ctx.operation.RootFields()
	if err != nil {
		// Mutations and empty operations cannot be executed. Report them as they are.
		ctx.err = err
		return
	}

	type taskData struct {
		parentType *schema.Type
		field      *ast.Field
	}

	// stack is LIFO so place the fields in reverse order.
	stack := make([]taskData, 0, len(fields))
	for i := len(fields) - 1; i >= 0; i-- {
		stack = append(stack, taskData{rootType, fields[i]})
	}

	for len(stack) > 0 {
		var task taskData
		task, stack = stack[len(stack)-1], stack[:len(stack)-1]

		info := newFieldInfo(task.parentType, task.field)
		if checkField(ctx, info); ctx.err != nil {
			return
		}

		// Descend into the selection of a known composite field.
		if info.def == nil || len(task.field.Fields) == 0 {
			continue
		}
		childType := ctx.schema.Type(info.def.Type.NamedType())
		if childType == nil || !childType.IsComposite() {
			continue
		}
		children := task.field.Fields
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, taskData{childType, children[i]})
		}
	}
}

// checkField runs every rule on a field and its arguments.
func checkField(ctx *ValidationContext, info *FieldInfo) {
	for _, rule := range *ctx.rules {
		if rule, ok := rule.(FieldRule); ok {
			if rule.CheckField(ctx, info); ctx.err != nil {
				return
			}
		}

		if rule, ok := rule.(ArgumentRule); ok {
			for _, arg := range info.args {
				if rule.CheckArgument(ctx, info, arg); ctx.err != nil {
					return
				}
			}
		}
	}
}

// Validate checks that operation can be executed against s. Validation runs synchronously and
// returns the first error encountered as a *graphql.Error, or nil if the operation is valid. An
// error of kind ErrKindValidation means the operation does not match s; a mutation is reported with
// ErrKindUnsupported.
//
// It uses the standard rules registered by the rules package.
func Validate(operation *ast.Operation, s *schema.Schema) error {
	return validate(operation, s, StandardRules())
}

// ValidateWithRules runs a list of specific validation rules on operation. Every rule in rs must
// implement at least one of the following interfaces:
//
//	FieldRule
//	ArgumentRule
//
// The checks on the root types of s are always performed.
func ValidateWithRules(operation *ast.Operation, s *schema.Schema, rs ...interface{}) error {
	return validate(operation, s, buildRules(rs...))
}

func validate(operation *ast.Operation, s *schema.Schema, rules *rules) error {
	const op graphql.Op = "validator.Validate"

	if operation == nil {
		return graphql.NewError("Must provide an operation.", op, graphql.ErrKindInternal)
	}
	if s == nil {
		return graphql.NewError("Must provide a schema.", op, graphql.ErrKindInternal)
	}

	ctx := newValidationContext(s, operation, rules)
	walk(ctx)
	return ctx.Err()
}
