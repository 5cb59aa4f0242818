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

// Package graphql holds the pieces shared by every phase of processing an operation: the Error
// type with its kinds, response paths and locations.
//
// An operation goes through the following packages in order:
//
//	lexer     -> tokens of a source text (token.Source)
//	parser    -> an ast.Operation
//	validator -> checks the operation against a schema.Schema
//	executor  -> calls a Root resolver and produces a result.Value
//
// Resolvers read arguments through the value package, which translates literals into Go values.
//
// Error Handling
//
// The first Error raised in any phase aborts that phase and is returned to the caller. Use KindOf
// or IsKind to tell the phases apart:
//
//	ErrKindLex, ErrKindSyntax   parsing failed
//	ErrKindValidation           the operation does not match the schema
//	ErrKindTranslation          a literal cannot be read as the requested Go value
//	ErrKindExecution            a resolver failed
//	ErrKindUnsupported          the operation is well-formed but cannot be executed (mutations)
//
// Errors encode to the response format with json-iterator and omit Op and Kind.
package graphql
