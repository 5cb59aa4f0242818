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

package parser

import (
	"fmt"

	"github.com/botobag/qlcore/graphql"
	"github.com/botobag/qlcore/graphql/ast"
	"github.com/botobag/qlcore/graphql/lexer"
	"github.com/botobag/qlcore/graphql/token"
)

// cursor walks a fully lexed token stream. The stream always ends with an <EOF> token and the
// cursor never moves past it, so peek and peekAt are always valid.
//
// Every primitive either consumes input and succeeds or leaves the cursor untouched and returns an
// error. Callers propagate the first error; nothing resumes after a failure.
type cursor struct {
	source *token.Source
	tokens []token.Token
	pos    int
}

func newCursor(source *token.Source) (*cursor, error) {
	if source == nil {
		return nil, graphql.NewError("Must provide Source. Received: nil")
	}

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}

	return &cursor{
		source: source,
		tokens: tokens,
	}, nil
}

// peek returns the current token without consuming it.
func (c *cursor) peek() token.Token {
	return c.tokens[c.pos]
}

// peekAt returns the token n positions after the current one. Looking past the end yields <EOF>.
func (c *cursor) peekAt(n int) token.Token {
	if i := c.pos + n; i < len(c.tokens) {
		return c.tokens[i]
	}
	return c.tokens[len(c.tokens)-1]
}

// advance consumes and returns the current token.
func (c *cursor) advance() token.Token {
	tok := c.tokens[c.pos]
	if tok.Kind != token.KindEOF {
		c.pos++
	}
	return tok
}

// If the next token is of the given kind, return true after advancing the cursor. Otherwise, do not
// change the cursor and return false.
func (c *cursor) skip(kind token.Kind) bool {
	if c.peek().Kind == kind {
		c.advance()
		return true
	}
	return false
}

// If the next token is of the given kind, return that token after advancing the cursor. Otherwise,
// do not change the cursor and return an error.
func (c *cursor) expect(kind token.Kind) (token.Token, error) {
	tok := c.peek()
	if tok.Kind == kind {
		return c.advance(), nil
	}
	return token.Token{}, c.errorAt(tok, fmt.Sprintf("Expected %v, found %s", kind, tok.Description()))
}

// If the next token is a keyword with the given value, return true after advancing the cursor.
// Otherwise, do not change the cursor and return false.
func (c *cursor) skipKeyword(keyword string) bool {
	if c.peek().Is(keyword) {
		c.advance()
		return true
	}
	return false
}

// unexpected creates an error for the current token.
func (c *cursor) unexpected() error {
	tok := c.peek()
	return c.errorAt(tok, fmt.Sprintf("Unexpected %s", tok.Description()))
}

func (c *cursor) errorAt(tok token.Token, description string) error {
	return graphql.NewSyntaxError(c.source, tok.Location, description)
}

// position resolves the line and column of a token.
func (c *cursor) position(tok token.Token) token.Position {
	return c.source.PositionOf(tok.Location)
}

// parseName converts a name token into an ast.Name.
func (c *cursor) parseName() (ast.Name, error) {
	tok, err := c.expect(token.KindName)
	if err != nil {
		return "", err
	}
	return ast.Name(tok.Value), nil
}

// delimited parses "open item+ close", calling parseItem for each item. Commas are lexed as
// whitespace so items may be separated by commas, line breaks or nothing at all.
func (c *cursor) delimited(open token.Kind, close token.Kind, parseItem func() error) error {
	if _, err := c.expect(open); err != nil {
		return err
	}

	for {
		if err := parseItem(); err != nil {
			return err
		}

		// Stop on close token.
		if c.skip(close) {
			return nil
		}
	}
}
