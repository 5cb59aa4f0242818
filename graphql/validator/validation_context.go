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
	"github.com/botobag/qlcore/graphql/schema"
)

// A ValidationContext holds the state of one validation request. Validation stops at the first
// reported error.
type ValidationContext struct {
	schema    *schema.Schema
	operation *ast.Operation
	rules     *rules
	err       error
}

func newValidationContext(s *schema.Schema, operation *ast.Operation, rules *rules) *ValidationContext {
	return &ValidationContext{
		schema:    s,
		operation: operation,
		rules:     rules,
	}
}

// Schema returns the schema being validated against.
func (ctx *ValidationContext) Schema() *schema.Schema {
	return ctx.schema
}

// Operation returns the operation being validated.
func (ctx *ValidationContext) Operation() *ast.Operation {
	return ctx.operation
}

// ReportError reports a validation error at the given field. Only the first error is kept.
func (ctx *ValidationContext) ReportError(message string, field *ast.Field) {
	if ctx.err != nil {
		return
	}

	args := []interface{}{graphql.ErrKindValidation}
	if field != nil && field.Position.IsValid() {
		args = append(args, graphql.ErrorLocationOf(field.Position))
	}
	ctx.err = graphql.NewError(message, args...)
}

// Err returns the reported error or nil.
func (ctx *ValidationContext) Err() error {
	return ctx.err
}
