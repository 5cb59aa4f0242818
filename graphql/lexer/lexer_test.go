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

package lexer_test

import (
	"strings"

	"github.com/botobag/qlcore/graphql"
	"github.com/botobag/qlcore/graphql/lexer"
	"github.com/botobag/qlcore/graphql/token"
	"github.com/botobag/qlcore/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func lexOne(str string) (token.Token, error) {
	return lexer.New(token.NewSourceFromString(str)).Next()
}

func expectLexError(text string, message string, location graphql.ErrorLocation) {
	_, err := lexOne(text)
	Expect(err).Should(testutil.MatchGraphQLError(
		testutil.MessageContainSubstring(message),
		testutil.LocationEqual(location),
		testutil.KindIs(graphql.ErrKindLex),
	))
}

func descriptions(tokens []token.Token) []string {
	result := make([]string, len(tokens))
	for i, tok := range tokens {
		result[i] = tok.Description()
	}
	return result
}

var _ = Describe("Lexer", func() {
	It("disallows uncommon control characters", func() {
		expectLexError("\u0007", `Cannot contain the invalid character "\u0007"`, graphql.ErrorLocation{
			Line:   1,
			Column: 1,
		})
	})

	It("accepts BOM header", func() {
		Expect(lexOne("\uFEFF foo")).Should(Equal(token.Token{
			Kind:     token.KindName,
			Location: token.SourceLocation(5),
			Length:   3,
			Value:    "foo",
		}))
	})

	It("records line and column", func() {
		source := token.NewSourceFromString("\n \r\n \r  foo\n")
		tok, err := lexer.New(source).Next()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(tok).Should(Equal(token.Token{
			Kind:     token.KindName,
			Location: token.SourceLocation(9),
			Length:   3,
			Value:    "foo",
		}))
		Expect(source.PositionOf(tok.Location)).Should(Equal(token.Position{
			Offset: 8,
			Line:   4,
			Column: 3,
		}))
	})

	It("skips whitespace and comments", func() {
		Expect(lexOne(`

    foo


`)).Should(Equal(token.Token{
			Kind:     token.KindName,
			Location: token.SourceLocation(7),
			Length:   3,
			Value:    "foo",
		}))

		Expect(lexOne(`
    #comment
    foo#comment
`)).Should(Equal(token.Token{
			Kind:     token.KindName,
			Location: token.SourceLocation(19),
			Length:   3,
			Value:    "foo",
		}))

		Expect(lexOne(",,,foo,,,")).Should(Equal(token.Token{
			Kind:     token.KindName,
			Location: token.SourceLocation(4),
			Length:   3,
			Value:    "foo",
		}))
	})

	It("lexes strings", func() {
		Expect(lexOne(`"simple"`)).Should(Equal(token.Token{
			Kind:     token.KindString,
			Location: token.SourceLocation(1),
			Length:   8,
			Value:    "simple",
		}))

		Expect(lexOne(`" white space "`)).Should(Equal(token.Token{
			Kind:     token.KindString,
			Location: token.SourceLocation(1),
			Length:   15,
			Value:    " white space ",
		}))

		Expect(lexOne(`"quote \""`)).Should(Equal(token.Token{
			Kind:     token.KindString,
			Location: token.SourceLocation(1),
			Length:   10,
			Value:    `quote "`,
		}))

		Expect(lexOne(`"escaped \n\r\b\t\f"`)).Should(Equal(token.Token{
			Kind:     token.KindString,
			Location: token.SourceLocation(1),
			Length:   20,
			Value:    "escaped \n\r\b\t\f",
		}))

		Expect(lexOne(`"slashes \\ \/"`)).Should(Equal(token.Token{
			Kind:     token.KindString,
			Location: token.SourceLocation(1),
			Length:   15,
			Value:    `slashes \ /`,
		}))

		Expect(lexOne(`"unicode \u1234\u5678\u90AB\uCDEF"`)).Should(Equal(token.Token{
			Kind:     token.KindString,
			Location: token.SourceLocation(1),
			Length:   34,
			Value:    "unicode \u1234\u5678\u90AB\uCDEF",
		}))

		Expect(lexOne(`""`)).Should(Equal(token.Token{
			Kind:     token.KindString,
			Location: token.SourceLocation(1),
			Length:   2,
		}))

		Expect(lexOne(`"snow ☃ é"`)).Should(Equal(token.Token{
			Kind:     token.KindString,
			Location: token.SourceLocation(1),
			Length:   13,
			Value:    "snow ☃ é",
		}))
	})

	It("reports useful string errors", func() {
		tests := []struct {
			text    string
			message string
			column  uint
		}{
			{`"`, "Unterminated string.", 2},
			{`"no end quote`, "Unterminated string.", 14},
			{"\"contains unescaped \u0007 control char\"", `Invalid character within String: "\u0007".`, 21},
			{"\"null-byte is not \u0000 end of file\"", `Invalid character within String: "\u0000".`, 19},
			{"\"multi\nline\"", "Unterminated string.", 7},
			{"\"multi\rline\"", "Unterminated string.", 7},
			{`"bad \z esc"`, `Invalid character escape sequence: \z.`, 7},
			{`"bad \x esc"`, `Invalid character escape sequence: \x.`, 7},
			{`"bad \u1 esc"`, `Invalid character escape sequence: \u1 es.`, 7},
			{`"bad \u0XX1 esc"`, `Invalid character escape sequence: \u0XX1.`, 7},
			{`"bad \uXXXX esc"`, `Invalid character escape sequence: \uXXXX.`, 7},
			{`"bad \uFXXX esc"`, `Invalid character escape sequence: \uFXXX.`, 7},
			{`"bad \uXXXF esc"`, `Invalid character escape sequence: \uXXXF.`, 7},
			{`"\u"`, `Invalid character escape sequence: \u`, 3},
			{`"\u000"`, `Invalid character escape sequence: \u000`, 3},
			{`"trailing \`, "Unterminated string.", 12},
			{"\"bad \xff byte\"", "Invalid UTF-8 byte within String: 0xFF.", 6},
			{"\"cut \xe2\x98\"", "Invalid UTF-8 byte within String: 0xE2.", 6},
		}

		for _, test := range tests {
			expectLexError(test.text, test.message, graphql.ErrorLocation{
				Line:   1,
				Column: test.column,
			})
		}
	})

	It("lexes block strings", func() {
		Expect(lexOne(`"""simple"""`)).Should(Equal(token.Token{
			Kind:     token.KindBlockString,
			Location: token.SourceLocation(1),
			Length:   12,
			Value:    "simple",
		}))

		Expect(lexOne(`"""contains " quote"""`)).Should(Equal(token.Token{
			Kind:     token.KindBlockString,
			Location: token.SourceLocation(1),
			Length:   22,
			Value:    `contains " quote`,
		}))

		Expect(lexOne(`"""contains \""" triplequote"""`)).Should(Equal(token.Token{
			Kind:     token.KindBlockString,
			Location: token.SourceLocation(1),
			Length:   31,
			Value:    `contains """ triplequote`,
		}))

		Expect(lexOne(`"""unescaped \n\r\b\t\f\u1234"""`)).Should(Equal(token.Token{
			Kind:     token.KindBlockString,
			Location: token.SourceLocation(1),
			Length:   32,
			Value:    `unescaped \n\r\b\t\f\u1234`,
		}))

		Expect(lexOne("\"\"\"\n\n        spans\n          multiple\n            lines\n\n        \"\"\"")).
			Should(Equal(token.Token{
				Kind:     token.KindBlockString,
				Location: token.SourceLocation(1),
				Length:   68,
				Value:    "spans\n  multiple\n    lines",
			}))
	})

	It("removes common indentation from block strings", func() {
		raw := strings.Join([]string{
			`"""`,
			`    Hello,`,
			`      World!`,
			``,
			`    Yours,`,
			`      GraphQL.`,
			`"""`,
		}, "\r\n")

		tok, err := lexOne(raw)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(tok.Value).Should(Equal(strings.Join([]string{
			"Hello,",
			"  World!",
			"",
			"Yours,",
			"  GraphQL.",
		}, "\n")))
	})

	It("reports useful block string errors", func() {
		expectLexError(`"""`, "Unterminated string.", graphql.ErrorLocation{
			Line:   1,
			Column: 4,
		})

		expectLexError(`"""no end quote`, "Unterminated string.", graphql.ErrorLocation{
			Line:   1,
			Column: 16,
		})

		expectLexError(
			"\"\"\"contains unescaped \u0007 control char\"\"\"",
			`Invalid character within String: "\u0007".`,
			graphql.ErrorLocation{
				Line:   1,
				Column: 23,
			},
		)

		expectLexError(
			"\"\"\"bad \xfe byte\"\"\"",
			"Invalid UTF-8 byte within String: 0xFE.",
			graphql.ErrorLocation{
				Line:   1,
				Column: 8,
			},
		)
	})

	It("lexes numbers", func() {
		tests := []struct {
			text string
			kind token.Kind
		}{
			{"4", token.KindInt},
			{"4.123", token.KindFloat},
			{"-4", token.KindInt},
			{"9", token.KindInt},
			{"0", token.KindInt},
			{"-4.123", token.KindFloat},
			{"0.123", token.KindFloat},
			{"123e4", token.KindFloat},
			{"123E4", token.KindFloat},
			{"123e-4", token.KindFloat},
			{"123e+4", token.KindFloat},
			{"-1.123e4", token.KindFloat},
			{"-1.123E4567", token.KindFloat},
		}

		for _, test := range tests {
			Expect(lexOne(test.text)).Should(Equal(token.Token{
				Kind:     test.kind,
				Location: token.SourceLocation(1),
				Length:   uint(len(test.text)),
				Value:    test.text,
			}), "lexing %s", test.text)
		}
	})

	It("reports useful number errors", func() {
		tests := []struct {
			text    string
			message string
			column  uint
		}{
			{"00", `Invalid number, unexpected digit after 0: "0".`, 2},
			{"+1", `Cannot parse the unexpected character "+".`, 1},
			{"1.", "Invalid number, expected digit after decimal point ('.') but got: <EOF>.", 3},
			{"1.e1", `Invalid number, expected digit after decimal point ('.') but got: "e".`, 3},
			{".123", `Cannot parse the unexpected character ".".`, 1},
			{"1.A", `Invalid number, expected digit after decimal point ('.') but got: "A".`, 3},
			{"-A", `Invalid number, expected digit after '-' but got: "A".`, 2},
			{"1.0e", `Invalid number, expected digit but got: <EOF>.`, 5},
			{"1.0eA", `Invalid number, expected digit but got: "A".`, 5},
			{"12abc", `Invalid number, expected digit but got: "a".`, 3},
		}

		for _, test := range tests {
			expectLexError(test.text, test.message, graphql.ErrorLocation{
				Line:   1,
				Column: test.column,
			})
		}
	})

	It("lexes punctuation", func() {
		tests := []struct {
			text string
			kind token.Kind
		}{
			{"!", token.KindBang},
			{"$", token.KindDollar},
			{"&", token.KindAmp},
			{"(", token.KindLeftParen},
			{")", token.KindRightParen},
			{"...", token.KindSpread},
			{":", token.KindColon},
			{"=", token.KindEquals},
			{"@", token.KindAt},
			{"[", token.KindLeftBracket},
			{"]", token.KindRightBracket},
			{"{", token.KindLeftBrace},
			{"|", token.KindPipe},
			{"}", token.KindRightBrace},
		}

		for _, test := range tests {
			Expect(lexOne(test.text)).Should(Equal(token.Token{
				Kind:     test.kind,
				Location: token.SourceLocation(1),
				Length:   uint(len(test.text)),
			}), "lexing %s", test.text)
		}
	})

	It("reports useful unknown character error", func() {
		expectLexError("..", `Cannot parse the unexpected character ".".`, graphql.ErrorLocation{
			Line:   1,
			Column: 1,
		})

		expectLexError("?", `Cannot parse the unexpected character "?".`, graphql.ErrorLocation{
			Line:   1,
			Column: 1,
		})

		expectLexError("\u203B", `Cannot parse the unexpected character "\u203B".`, graphql.ErrorLocation{
			Line:   1,
			Column: 1,
		})

		expectLexError("'name'", "Unexpected single quote character ('), did you mean to use a double quote (\")?", graphql.ErrorLocation{
			Line:   1,
			Column: 1,
		})
	})

	It("reports useful information for dashes in names", func() {
		l := lexer.New(token.NewSourceFromString("a-b"))

		Expect(l.Next()).Should(Equal(token.Token{
			Kind:     token.KindName,
			Location: token.SourceLocation(1),
			Length:   1,
			Value:    "a",
		}))

		_, err := l.Next()
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual(`Syntax Error: Invalid number, expected digit after '-' but got: "b".`),
			testutil.LocationEqual(graphql.ErrorLocation{Line: 1, Column: 3}),
			testutil.KindIs(graphql.ErrKindLex),
		))
	})

	It("keeps returning EOF at the end of source", func() {
		l := lexer.New(token.NewSourceFromString("  "))
		for i := 0; i < 3; i++ {
			tok, err := l.Next()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tok.Kind).Should(Equal(token.KindEOF))
			Expect(tok.Location).Should(Equal(token.SourceLocation(3)))
		}
	})

	Describe("Tokenize", func() {
		It("produces tokens without comments ending with EOF", func() {
			tokens, err := lexer.Tokenize(token.NewSourceFromString(`{
      #comment
      field
    }`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(descriptions(tokens)).Should(Equal([]string{
				"{",
				`Name "field"`,
				"}",
				"<EOF>",
			}))
		})

		It("splits an operation into its tokens", func() {
			tokens, err := lexer.Tokenize(token.NewSourceFromString(`query { human(id: "1000") { name, friends } }`))
			Expect(err).ShouldNot(HaveOccurred())

			kinds := make([]token.Kind, len(tokens))
			for i, tok := range tokens {
				kinds[i] = tok.Kind
			}
			Expect(kinds).Should(Equal([]token.Kind{
				token.KindName,
				token.KindLeftBrace,
				token.KindName,
				token.KindLeftParen,
				token.KindName,
				token.KindColon,
				token.KindString,
				token.KindRightParen,
				token.KindLeftBrace,
				token.KindName,
				token.KindName,
				token.KindRightBrace,
				token.KindRightBrace,
				token.KindEOF,
			}))
		})

		It("yields only EOF for an empty source", func() {
			tokens, err := lexer.Tokenize(token.NewSourceFromString(""))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tokens).Should(HaveLen(1))
			Expect(tokens[0].Kind).Should(Equal(token.KindEOF))
		})

		It("returns the first error", func() {
			_, err := lexer.Tokenize(token.NewSourceFromString(`{ field ? }`))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Syntax Error: Cannot parse the unexpected character "?".`),
				testutil.LocationEqual(graphql.ErrorLocation{Line: 1, Column: 9}),
				testutil.KindIs(graphql.ErrKindLex),
			))
		})
	})
})
