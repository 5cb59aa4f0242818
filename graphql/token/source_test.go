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

package token_test

import (
	"github.com/botobag/qlcore/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Source", func() {
	It("has a default name", func() {
		Expect(token.NewSourceFromString("{ a }").Name()).Should(Equal("GraphQL request"))
		Expect(token.NewSource(&token.SourceConfig{
			Body: token.SourceBody("{ a }"),
			Name: "hero.graphql",
		}).Name()).Should(Equal("hero.graphql"))
	})

	It("converts byte positions to locations", func() {
		source := token.NewSourceFromString("{ a }")
		location := source.LocationFromPos(2)
		Expect(location.IsValid()).Should(BeTrue())
		Expect(source.PositionOf(location).Offset).Should(Equal(uint(2)))

		Expect(func() { source.LocationFromPos(6) }).Should(Panic())
	})

	It("computes line and column", func() {
		source := token.NewSourceFromString("{\n  a\r\n  b\r  c\n}")

		Expect(source.PositionOf(source.LocationFromPos(0))).Should(Equal(token.Position{
			Offset: 0, Line: 1, Column: 1,
		}))
		Expect(source.PositionOf(source.LocationFromPos(4))).Should(Equal(token.Position{
			Offset: 4, Line: 2, Column: 3,
		}))
		Expect(source.PositionOf(source.LocationFromPos(9))).Should(Equal(token.Position{
			Offset: 9, Line: 3, Column: 3,
		}))
		Expect(source.PositionOf(source.LocationFromPos(13))).Should(Equal(token.Position{
			Offset: 13, Line: 4, Column: 3,
		}))
		Expect(source.PositionOf(source.LocationFromPos(15))).Should(Equal(token.Position{
			Offset: 15, Line: 5, Column: 1,
		}))
	})

	It("returns the zero position for an unknown location", func() {
		source := token.NewSourceFromString("{ a }")
		position := source.PositionOf(token.NoSourceLocation)
		Expect(position.IsValid()).Should(BeFalse())
		Expect(position.String()).Should(Equal("-"))
	})

	It("prints a position", func() {
		Expect(token.Position{Offset: 9, Line: 3, Column: 3}.String()).Should(Equal("3:3"))
	})

	It("reads runes", func() {
		body := token.SourceBody("é!")
		r, size := body.RuneAt(0)
		Expect(r).Should(Equal('é'))
		Expect(size).Should(Equal(uint(2)))
		Expect(body.At(2)).Should(Equal(byte('!')))
		Expect(body.Size()).Should(Equal(uint(3)))
	})
})

var _ = Describe("Token", func() {
	It("describes itself", func() {
		Expect(token.Token{Kind: token.KindEOF}.Description()).Should(Equal("<EOF>"))
		Expect(token.Token{Kind: token.KindName, Value: "hero"}.Description()).Should(Equal(`Name "hero"`))
		Expect(token.Token{Kind: token.KindInt, Value: "2"}.Description()).Should(Equal(`Int "2"`))
	})

	It("matches keywords", func() {
		Expect(token.Token{Kind: token.KindName, Value: "query"}.Is("query")).Should(BeTrue())
		Expect(token.Token{Kind: token.KindString, Value: "query"}.Is("query")).Should(BeFalse())
	})

	It("names unknown kinds", func() {
		Expect(token.Kind(100).String()).Should(Equal("Kind(100)"))
	})
})
