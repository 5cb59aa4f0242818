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
	"errors"

	"github.com/botobag/qlcore/graphql"
	"github.com/botobag/qlcore/graphql/ast"
	"github.com/botobag/qlcore/graphql/schema"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// A Context carries the state of one execution into resolvers: the caller's context.Context, the
// operation being executed, the variables supplied with it and the field currently being resolved.
// A Context is never modified after creation; Sub and Index derive child scopes.
type Context struct {
	// Context for the execution
	ctx context.Context

	// executionID identifies the execution in logs and traces.
	executionID uuid.UUID

	// operation being executed.
	operation *ast.Operation

	// schema served by the root resolver.
	schema *schema.Schema

	// variables contains values supplied for the parameters of current operation. They are carried
	// as given and never substituted into arguments.
	variables ast.Variables

	// field being resolved; nil at the root scope.
	field *ast.Field

	// path to the response value produced by the current scope.
	path graphql.ResponsePath

	logger *zap.Logger
}

// newContext initializes the root scope of an execution.
func newContext(
	ctx context.Context,
	operation *ast.Operation,
	variables ast.Variables,
	s *schema.Schema,
	logger *zap.Logger) *Context {
	id := uuid.New()
	return &Context{
		ctx:         ctx,
		executionID: id,
		operation:   operation,
		schema:      s,
		variables:   variables,
		logger:      logger.With(zap.String("execution_id", id.String())),
	}
}

// Context returns the context.Context of the caller of Execute.
func (c *Context) Context() context.Context {
	return c.ctx
}

// ExecutionID returns the identifier generated for the execution.
func (c *Context) ExecutionID() uuid.UUID {
	return c.executionID
}

// Operation returns the operation being executed.
func (c *Context) Operation() *ast.Operation {
	return c.operation
}

// Schema returns the schema the operation is executed against.
func (c *Context) Schema() *schema.Schema {
	return c.schema
}

// Variables returns the variables supplied with the operation.
func (c *Context) Variables() ast.Variables {
	return c.variables
}

// Variable looks up a single variable.
func (c *Context) Variable(name string) (ast.Value, bool) {
	v, ok := c.variables[name]
	return v, ok
}

// Field returns the field of the current scope or nil at the root.
func (c *Context) Field() *ast.Field {
	return c.field
}

// Path returns the response path of the current scope.
func (c *Context) Path() graphql.ResponsePath {
	return c.path
}

// Logger returns a logger annotated with the execution id.
func (c *Context) Logger() *zap.Logger {
	return c.logger
}

// Sub returns the scope for resolving field beneath the current one. The response path is extended
// with the field's response key.
func (c *Context) Sub(field *ast.Field) *Context {
	sub := *c
	sub.field = field
	sub.path = c.path.WithFieldName(field.ResponseKey())
	return &sub
}

// Index returns the scope for the element at index of a list produced by the current scope.
func (c *Context) Index(index int) *Context {
	sub := *c
	sub.path = c.path.WithIndex(index)
	return &sub
}

// WrapError annotates err with the path and location of the current scope. The kind of a
// *graphql.Error found anywhere in err's chain is preserved; any other error becomes an
// ErrKindExecution error. An error whose chain already carries a path is returned unchanged.
func (c *Context) WrapError(err error) error {
	if err == nil {
		return nil
	}

	var (
		message = err.Error()
		kind    = graphql.ErrKindExecution
		args    []interface{}
	)

	var e *graphql.Error
	if errors.As(err, &e) {
		if !e.Path.Empty() {
			return err
		}
		if e == err {
			message = e.Message
		}
		if e.Kind != graphql.ErrKindOther {
			kind = e.Kind
		}
		if len(e.Locations) > 0 {
			args = append(args, e.Locations)
		}
	}

	if len(args) == 0 && c.field != nil && c.field.Position.IsValid() {
		args = append(args, graphql.ErrorLocationOf(c.field.Position))
	}

	if !c.path.Empty() {
		args = append(args, c.path)
	}

	return graphql.NewError(message, append(args, kind, err)...)
}
