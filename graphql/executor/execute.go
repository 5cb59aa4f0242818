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

package executor

import (
	"context"

	"github.com/botobag/qlcore/graphql"
	"github.com/botobag/qlcore/graphql/ast"
	"github.com/botobag/qlcore/graphql/result"
	"github.com/botobag/qlcore/graphql/schema"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Execute runs a validated operation against root and returns the value produced by the root
// resolver unchanged. When s is nil, root.Schema() is used. A nil c is treated as
// context.Background(). Execution stops at the first error.
//
// A mutation cannot be executed: Execute returns the ErrKindUnsupported error of
// ast.Operation.RootFields and never calls the resolver.
func Execute(
	c context.Context,
	op *ast.Operation,
	vars ast.Variables,
	s *schema.Schema,
	root Root,
	opts ...Option) (result.Value, error) {
	const opName graphql.Op = "executor.Execute"

	if op == nil {
		return nil, graphql.NewError("Must provide an operation.", opName, graphql.ErrKindInternal)
	}
	if root == nil {
		return nil, graphql.NewError("Must provide a root resolver.", opName, graphql.ErrKindInternal)
	}
	if s == nil {
		s = root.Schema()
	}
	if c == nil {
		c = context.Background()
	}

	o := newOptions(opts)
	ctx := newContext(c, op, vars, s, o.logger)

	spanCtx, span := o.tracer.Start(c, "graphql.execute", trace.WithAttributes(
		attribute.String("graphql.operation.type", string(op.Type)),
		attribute.String("graphql.operation.name", string(op.Name)),
		attribute.String("graphql.execution.id", ctx.executionID.String()),
	))
	defer span.End()
	ctx.ctx = spanCtx

	value, err := execute(ctx, root)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		ctx.logger.Debug("execution failed", zap.Error(err))
		return nil, err
	}

	return value, nil
}

func execute(ctx *Context, root Root) (result.Value, error) {
	fields, err := ctx.operation.RootFields()
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(fields))
	for i, field := range fields {
		keys[i] = field.ResponseKey()
	}
	trace.SpanFromContext(ctx.ctx).SetAttributes(attribute.StringSlice("graphql.root_fields", keys))

	ctx.logger.Debug("executing operation",
		zap.String("operation", string(ctx.operation.Type)),
		zap.Strings("root_fields", keys))

	// Errors are attributed to the first top-level field.
	rootCtx := ctx.Sub(fields[0])

	value, err := root.Resolve(ctx, fields)
	if err != nil {
		return nil, rootCtx.WrapError(err)
	}
	if value == nil {
		return nil, rootCtx.WrapError(graphql.NewError("resolver returned no value"))
	}

	return value, nil
}
