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
	"github.com/botobag/qlcore/graphql/ast"
	"github.com/botobag/qlcore/graphql/result"
	"github.com/botobag/qlcore/graphql/schema"
)

// Resolver resolves a sequence of sibling fields into a result value. For the root resolver the
// fields are the top-level fields of the operation; ctx is the root scope and ctx.Sub derives the
// scope of each field.
type Resolver interface {
	Resolve(ctx *Context, fields []*ast.Field) (result.Value, error)
}

// ResolverFunc is an adapter to allow the use of ordinary functions as Resolver.
type ResolverFunc func(ctx *Context, fields []*ast.Field) (result.Value, error)

// Resolve calls f(ctx, fields).
func (f ResolverFunc) Resolve(ctx *Context, fields []*ast.Field) (result.Value, error) {
	return f(ctx, fields)
}

// Root is supplied by the embedding application. Besides resolving the top-level fields it reports
// the schema it serves. Schema must not depend on the state of the receiver.
type Root interface {
	Resolver
	Schema() *schema.Schema
}

// rootFunc pairs a schema with a ResolverFunc.
type rootFunc struct {
	schema   *schema.Schema
	resolver ResolverFunc
}

// NewRoot creates a Root serving s with f.
func NewRoot(s *schema.Schema, f ResolverFunc) Root {
	return rootFunc{s, f}
}

// Resolve implements Resolver.
func (root rootFunc) Resolve(ctx *Context, fields []*ast.Field) (result.Value, error) {
	return root.resolver(ctx, fields)
}

// Schema implements Root.
func (root rootFunc) Schema() *schema.Schema {
	return root.schema
}
