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
	"github.com/botobag/qlcore/graphql"
	"github.com/botobag/qlcore/graphql/ast"
	"github.com/botobag/qlcore/graphql/token"
	"github.com/botobag/qlcore/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func mustCursor(text string) *cursor {
	c, err := newCursor(token.NewSourceFromString(text))
	Expect(err).ShouldNot(HaveOccurred())
	return c
}

var _ = Describe("cursor", func() {
	It("looks ahead without consuming", func() {
		c := mustCursor("a : b")
		Expect(c.peekAt(0).Value).Should(Equal("a"))
		Expect(c.peekAt(1).Kind).Should(Equal(token.KindColon))
		Expect(c.peekAt(2).Value).Should(Equal("b"))
		Expect(c.peekAt(3).Kind).Should(Equal(token.KindEOF))
		Expect(c.peekAt(42).Kind).Should(Equal(token.KindEOF))
		Expect(c.peek().Value).Should(Equal("a"))
	})

	It("stays on EOF", func() {
		c := mustCursor("a")
		Expect(c.advance().Value).Should(Equal("a"))
		Expect(c.advance().Kind).Should(Equal(token.KindEOF))
		Expect(c.advance().Kind).Should(Equal(token.KindEOF))
		Expect(c.peek().Kind).Should(Equal(token.KindEOF))
	})

	It("skips only the requested kind", func() {
		c := mustCursor("{ }")
		Expect(c.skip(token.KindRightBrace)).Should(BeFalse())
		Expect(c.skip(token.KindLeftBrace)).Should(BeTrue())
		Expect(c.skip(token.KindRightBrace)).Should(BeTrue())
		Expect(c.peek().Kind).Should(Equal(token.KindEOF))
	})

	It("does not move on a failed expectation", func() {
		c := mustCursor("query")

		_, err := c.expect(token.KindLeftBrace)
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual(`Syntax Error: Expected {, found Name "query"`),
			testutil.LocationEqual(graphql.ErrorLocation{Line: 1, Column: 1}),
			testutil.KindIs(graphql.ErrKindSyntax),
		))

		Expect(c.skipKeyword("mutation")).Should(BeFalse())
		Expect(c.skipKeyword("query")).Should(BeTrue())
		Expect(c.peek().Kind).Should(Equal(token.KindEOF))
	})

	It("parses delimited items separated by commas or line breaks", func() {
		c := mustCursor("(a, b\n c d)")

		var names []ast.Name
		err := c.delimited(token.KindLeftParen, token.KindRightParen, func() error {
			name, err := c.parseName()
			if err != nil {
				return err
			}
			names = append(names, name)
			return nil
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(names).Should(Equal([]ast.Name{"a", "b", "c", "d"}))
		Expect(c.peek().Kind).Should(Equal(token.KindEOF))
	})

	It("requires at least one delimited item", func() {
		c := mustCursor("()")
		err := c.delimited(token.KindLeftParen, token.KindRightParen, func() error {
			_, err := c.parseName()
			return err
		})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Syntax Error: Expected Name, found )"),
			testutil.LocationEqual(graphql.ErrorLocation{Line: 1, Column: 2}),
		))
	})

	It("reports lexical errors before parsing", func() {
		_, err := newCursor(token.NewSourceFromString("{ a } ?"))
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.KindIs(graphql.ErrKindLex),
			testutil.LocationEqual(graphql.ErrorLocation{Line: 1, Column: 7}),
		))
	})
})
