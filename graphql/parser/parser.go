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

// Package parser implements a recursive-descent parser for the query language. The accepted
// grammar is a subset of GraphQL executable documents:
//
//	Operation    :: OperationType Name? SelectionSet | SelectionSet
//	SelectionSet :: { Field+ }
//	Field        :: Alias? Name Arguments? SelectionSet?
//	Arguments    :: ( Argument+ )
//	Argument     :: Name : Value | Value
//	Value        :: null | StringValue | Name | IntValue | FloatValue | [ Value* ]
//
// Variables, directives, fragments and object literals are rejected.
package parser

import (
	"github.com/botobag/qlcore/graphql/ast"
	"github.com/botobag/qlcore/graphql/token"
)

// parser implements the grammar on top of a cursor.
type parser struct {
	*cursor
}

func newParser(source *token.Source) (*parser, error) {
	c, err := newCursor(source)
	if err != nil {
		return nil, err
	}
	return &parser{c}, nil
}

// Parse parses the given source which must contain exactly one operation.
func Parse(source *token.Source) (*ast.Operation, error) {
	p, err := newParser(source)
	if err != nil {
		return nil, err
	}

	op, err := p.parseOperation()
	if err != nil {
		return nil, err
	}

	// Exactly one operation per document.
	if p.peek().Kind != token.KindEOF {
		return nil, p.unexpected()
	}

	return op, nil
}

// ParseOperation is a shorthand for parsing operation text from an unnamed source.
func ParseOperation(text string) (*ast.Operation, error) {
	return Parse(token.NewSourceFromString(text))
}

// ParseValue parses a source containing a single value literal (e.g., `[A_NEW_HOPE, "x"]`).
func ParseValue(source *token.Source) (ast.Value, error) {
	p, err := newParser(source)
	if err != nil {
		return nil, err
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindEOF); err != nil {
		return nil, err
	}

	return value, nil
}

//	Operation ::
//		OperationType Name? SelectionSet
//		SelectionSet
//
//	OperationType :: one of
//		query mutation
func (p *parser) parseOperation() (*ast.Operation, error) {
	if p.peek().Kind == token.KindLeftBrace {
		// Query shorthand
		fields, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return ast.NewQuery("", fields...), nil
	}

	var isMutation bool
	switch {
	case p.skipKeyword("query"):
	case p.skipKeyword("mutation"):
		isMutation = true
	default:
		return nil, p.unexpected()
	}

	var name ast.Name
	if p.peek().Kind == token.KindName {
		name = ast.Name(p.advance().Value)
	}

	fields, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	if isMutation {
		// Mutations are checked for syntax only and carry no selection.
		return ast.NewMutation(name), nil
	}
	return ast.NewQuery(name, fields...), nil
}

//	SelectionSet ::
//		{ Field+ }
func (p *parser) parseSelectionSet() ([]*ast.Field, error) {
	fields := make([]*ast.Field, 0, 1)
	err := p.delimited(token.KindLeftBrace, token.KindRightBrace, func() error {
		field, err := p.parseField()
		if err != nil {
			return err
		}
		fields = append(fields, field)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fields, nil
}

//	Field ::
//		Alias? Name Arguments? SelectionSet?
//
//	Alias ::
//		Name :
func (p *parser) parseField() (*ast.Field, error) {
	start := p.peek()

	nameOrAlias, err := p.parseName()
	if err != nil {
		return nil, err
	}

	field := &ast.Field{
		Position: p.position(start),
	}

	if p.skip(token.KindColon) {
		field.Alias = nameOrAlias
		if field.Name, err = p.parseName(); err != nil {
			return nil, err
		}
	} else {
		field.Name = nameOrAlias
	}

	if p.peek().Kind == token.KindLeftParen {
		if field.Arguments, err = p.parseArguments(); err != nil {
			return nil, err
		}
	}

	if p.peek().Kind == token.KindLeftBrace {
		if field.Fields, err = p.parseSelectionSet(); err != nil {
			return nil, err
		}
	}

	return field, nil
}

//	Arguments ::
//		( Argument+ )
func (p *parser) parseArguments() ([]ast.Argument, error) {
	arguments := make([]ast.Argument, 0, 1)
	err := p.delimited(token.KindLeftParen, token.KindRightParen, func() error {
		argument, err := p.parseArgument()
		if err != nil {
			return err
		}
		arguments = append(arguments, argument)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return arguments, nil
}

//	Argument ::
//		Name : Value
//		Value
//
// The second form is a positional argument which has an empty name.
func (p *parser) parseArgument() (ast.Argument, error) {
	var argument ast.Argument

	if p.peek().Kind == token.KindName && p.peekAt(1).Kind == token.KindColon {
		argument.Name = ast.Name(p.advance().Value)
		p.advance()
	}

	value, err := p.parseValue()
	if err != nil {
		return ast.Argument{}, err
	}
	argument.Value = value

	return argument, nil
}

//	Value ::
//		NullValue
//		StringValue
//		Name
//		IntValue
//		FloatValue
//		ListValue
//
// Booleans, numbers and enum values all become ast.NameValue carrying the token text.
func (p *parser) parseValue() (ast.Value, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.KindString, token.KindBlockString:
		p.advance()
		return ast.StringValue{Value: tok.Value}, nil

	case token.KindName:
		p.advance()
		if tok.Value == "null" {
			return ast.NullValue{}, nil
		}
		return ast.NameValue{Name: ast.Name(tok.Value)}, nil

	case token.KindInt, token.KindFloat:
		p.advance()
		return ast.NameValue{Name: ast.Name(tok.Value)}, nil

	case token.KindLeftBracket:
		return p.parseListValue()
	}

	return nil, p.unexpected()
}

//	ListValue ::
//		[ ]
//		[ Value+ ]
func (p *parser) parseListValue() (ast.Value, error) {
	if _, err := p.expect(token.KindLeftBracket); err != nil {
		return nil, err
	}

	values := []ast.Value{}
	for !p.skip(token.KindRightBracket) {
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	return ast.ArrayValue{Values: values}, nil
}
