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

// Package lexer converts GraphQL source text into a stream of classified tokens. Insignificant
// characters (whitespace, line terminators, commas, the byte order mark and comments) are skipped.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/botobag/qlcore/graphql"
	"github.com/botobag/qlcore/graphql/token"
)

// Lexer is a stateful stream generator in that every time it is advanced, it returns the next
// token in the Source. Assuming the source lexes, the final Token emitted by the lexer will be of
// kind EOF, after which the lexer will repeatedly return the same EOF token whenever called.
type Lexer struct {
	source *token.Source
	body   token.SourceBody

	// Current offset into the source body
	bytePos uint

	// This caches the value of source.Body().Size().
	bodySize uint
}

// New initializes a Lexer for given Source object.
func New(source *token.Source) *Lexer {
	return &Lexer{
		source:   source,
		body:     source.Body(),
		bodySize: source.Body().Size(),
	}
}

// Tokenize lexes the whole source into a token slice terminated by an <EOF> token. The slice can be
// replayed and indexed for arbitrary lookahead.
func Tokenize(source *token.Source) ([]token.Token, error) {
	lexer := New(source)
	// A rough guess: one token every four bytes.
	tokens := make([]token.Token, 0, lexer.bodySize/4+1)
	for {
		tok, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.KindEOF {
			return tokens, nil
		}
	}
}

// Next lexes and returns the next significant token.
func (lexer *Lexer) Next() (token.Token, error) {
	lexer.skipIgnored()

	if lexer.bytePos >= lexer.bodySize {
		return token.Token{
			Kind:     token.KindEOF,
			Location: lexer.locationAt(lexer.bodySize),
		}, nil
	}

	char := lexer.body[lexer.bytePos]
	if kind, ok := punctuators[char]; ok {
		lexer.bytePos++
		return lexer.makeToken(kind, 1, ""), nil
	}

	switch {
	case char == '.':
		if lexer.body.At(lexer.bytePos+1) == '.' && lexer.body.At(lexer.bytePos+2) == '.' {
			lexer.bytePos += 3
			return lexer.makeToken(token.KindSpread, 3, ""), nil
		}
		return token.Token{}, lexer.unexpectedCharacter(lexer.bytePos)

	case isNameStart(char):
		return lexer.lexName(), nil

	case char == '-' || isDigit(char):
		return lexer.lexNumber()

	case char == '"':
		if lexer.body.At(lexer.bytePos+1) == '"' && lexer.body.At(lexer.bytePos+2) == '"' {
			return lexer.lexBlockString()
		}
		return lexer.lexString()
	}

	return token.Token{}, lexer.unexpectedCharacter(lexer.bytePos)
}

var punctuators = map[byte]token.Kind{
	'!': token.KindBang,
	'$': token.KindDollar,
	'&': token.KindAmp,
	'(': token.KindLeftParen,
	')': token.KindRightParen,
	':': token.KindColon,
	'=': token.KindEquals,
	'@': token.KindAt,
	'[': token.KindLeftBracket,
	']': token.KindRightBracket,
	'{': token.KindLeftBrace,
	'|': token.KindPipe,
	'}': token.KindRightBrace,
}

func isNameStart(char byte) bool {
	return char == '_' || (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')
}

func isNameContinue(char byte) bool {
	return isNameStart(char) || isDigit(char)
}

func isDigit(char byte) bool {
	return char >= '0' && char <= '9'
}

func (lexer *Lexer) locationAt(bytePos uint) token.SourceLocation {
	return lexer.source.LocationFromPos(bytePos)
}

// makeToken creates a token that ends at the current position.
func (lexer *Lexer) makeToken(kind token.Kind, length uint, value string) token.Token {
	return token.Token{
		Kind:     kind,
		Location: lexer.locationAt(lexer.bytePos - length),
		Length:   length,
		Value:    value,
	}
}

func (lexer *Lexer) errorAt(bytePos uint, format string, args ...interface{}) error {
	return graphql.NewLexError(lexer.source, lexer.locationAt(bytePos), fmt.Sprintf(format, args...))
}

// skipIgnored advances bytePos over whitespace, line terminators, commas, a leading BOM and
// comments.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Source-Text.Ignored-Tokens
func (lexer *Lexer) skipIgnored() {
	body := lexer.body
	bodySize := lexer.bodySize
	bytePos := lexer.bytePos

	// Handle BOM at the beginning of source specially.
	if bytePos == 0 && bodySize >= 3 &&
		body[0] == '\xEF' && body[1] == '\xBB' && body[2] == '\xBF' {
		bytePos = 3
	}

	for bytePos < bodySize {
		switch body[bytePos] {
		case '\t', ' ', ',', '\n', '\r':
			bytePos++

		case '#':
			// CommentChar :: SourceCharacter but not LineTerminator
			bytePos++
			for bytePos < bodySize {
				if char := body[bytePos]; char > 0x1F || char == '\t' {
					bytePos++
					continue
				}
				break
			}

		default:
			lexer.bytePos = bytePos
			return
		}
	}

	lexer.bytePos = bytePos
}

// charAtPosToStr describes the character at bytePos for error messages.
func (lexer *Lexer) charAtPosToStr(bytePos uint) string {
	if bytePos >= lexer.bodySize {
		return "<EOF>"
	}

	r, _ := lexer.body.RuneAt(bytePos)

	// Print as ASCII for printable range.
	if r >= 0x20 && r < 0x7F {
		return fmt.Sprintf(`"%c"`, r)
	}

	// Print the escaped form. e.g. `"\\u0007"`
	return fmt.Sprintf(`"\u%04X"`, r)
}

// unexpectedCharacter creates an error to indicate an unexpected character at the given offset was
// encountered.
func (lexer *Lexer) unexpectedCharacter(bytePos uint) error {
	char := lexer.body.At(bytePos)
	switch {
	case char < 0x0020 && char != '\t' && char != '\n' && char != '\r':
		return lexer.errorAt(bytePos, "Cannot contain the invalid character %s.", lexer.charAtPosToStr(bytePos))
	case char == '\'':
		return lexer.errorAt(bytePos,
			"Unexpected single quote character ('), did you mean to use a double quote (\")?")
	}
	return lexer.errorAt(bytePos, "Cannot parse the unexpected character %s.", lexer.charAtPosToStr(bytePos))
}

// lexName lexes a Name token from source.
//
//	Name ::
//		/[_A-Za-z][_0-9A-Za-z]*/
func (lexer *Lexer) lexName() token.Token {
	startPos := lexer.bytePos
	lexer.bytePos++
	for lexer.bytePos < lexer.bodySize && isNameContinue(lexer.body[lexer.bytePos]) {
		lexer.bytePos++
	}
	length := lexer.bytePos - startPos
	return lexer.makeToken(token.KindName, length, string(lexer.body[startPos:lexer.bytePos]))
}

// skipDigits consumes digits and returns the number of digits consumed.
func (lexer *Lexer) skipDigits() uint {
	startPos := lexer.bytePos
	for lexer.bytePos < lexer.bodySize && isDigit(lexer.body[lexer.bytePos]) {
		lexer.bytePos++
	}
	return lexer.bytePos - startPos
}

// lexNumber reads a number token from the source file, either a float or an int depending on
// whether a fractional part or an exponent appears. The token value is the raw text.
//
//	IntValue ::
//		-? (0 | [1-9][0-9]*)
//
//	FloatValue ::
//		IntValue FractionalPart
//		IntValue ExponentPart
//		IntValue FractionalPart ExponentPart
func (lexer *Lexer) lexNumber() (token.Token, error) {
	startPos := lexer.bytePos
	kind := token.KindInt

	if lexer.body.At(lexer.bytePos) == '-' {
		lexer.bytePos++
	}

	switch char := lexer.body.At(lexer.bytePos); {
	case char == '0':
		lexer.bytePos++
		if isDigit(lexer.body.At(lexer.bytePos)) {
			return token.Token{}, lexer.errorAt(lexer.bytePos,
				"Invalid number, unexpected digit after 0: %s.", lexer.charAtPosToStr(lexer.bytePos))
		}
	case isDigit(char):
		lexer.skipDigits()
	default:
		return token.Token{}, lexer.errorAt(lexer.bytePos,
			"Invalid number, expected digit after '-' but got: %s.", lexer.charAtPosToStr(lexer.bytePos))
	}

	if lexer.body.At(lexer.bytePos) == '.' {
		kind = token.KindFloat
		lexer.bytePos++
		if lexer.skipDigits() == 0 {
			return token.Token{}, lexer.errorAt(lexer.bytePos,
				"Invalid number, expected digit after decimal point ('.') but got: %s.",
				lexer.charAtPosToStr(lexer.bytePos))
		}
	}

	if char := lexer.body.At(lexer.bytePos); char == 'E' || char == 'e' {
		kind = token.KindFloat
		lexer.bytePos++
		if char := lexer.body.At(lexer.bytePos); char == '+' || char == '-' {
			lexer.bytePos++
		}
		if lexer.skipDigits() == 0 {
			return token.Token{}, lexer.errorAt(lexer.bytePos,
				"Invalid number, expected digit but got: %s.", lexer.charAtPosToStr(lexer.bytePos))
		}
	}

	// A name character right after a number (e.g., "123abc") is not allowed.
	if char := lexer.body.At(lexer.bytePos); char == '.' || isNameStart(char) {
		return token.Token{}, lexer.errorAt(lexer.bytePos,
			"Invalid number, expected digit but got: %s.", lexer.charAtPosToStr(lexer.bytePos))
	}

	length := lexer.bytePos - startPos
	return lexer.makeToken(kind, length, string(lexer.body[startPos:lexer.bytePos])), nil
}

// lexString reads a string token from the source file.
//
//	StringCharacter ::
//		SourceCharacter but not " or \ or LineTerminator
//		\u EscapedUnicode
//		\ EscapedCharacter
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-String-Value
func (lexer *Lexer) lexString() (token.Token, error) {
	startPos := lexer.bytePos
	// Consume the opening quote.
	lexer.bytePos++

	var value strings.Builder
	for lexer.bytePos < lexer.bodySize {
		char := lexer.body[lexer.bytePos]

		if char == '\n' || char == '\r' {
			break
		}

		if char == '"' {
			lexer.bytePos++
			return lexer.makeToken(token.KindString, lexer.bytePos-startPos, value.String()), nil
		}

		if char < 0x0020 && char != '\t' {
			return token.Token{}, lexer.errorAt(lexer.bytePos,
				"Invalid character within String: %s.", lexer.charAtPosToStr(lexer.bytePos))
		}

		if char != '\\' {
			if !lexer.copyChar(&value) {
				return token.Token{}, lexer.invalidUTF8(lexer.bytePos)
			}
			continue
		}
		lexer.bytePos++

		// Errors in an escape sequence point at the character following the backslash.
		escapePos := lexer.bytePos
		if escapePos >= lexer.bodySize {
			break
		}
		char = lexer.body[lexer.bytePos]
		lexer.bytePos++
		switch char {
		case '"', '\\', '/':
			value.WriteByte(char)
		case 'b':
			value.WriteByte('\b')
		case 'f':
			value.WriteByte('\f')
		case 'n':
			value.WriteByte('\n')
		case 'r':
			value.WriteByte('\r')
		case 't':
			value.WriteByte('\t')
		case 'u':
			if lexer.bodySize-lexer.bytePos >= 4 {
				charCode := uniCharCode(lexer.body[lexer.bytePos : lexer.bytePos+4])
				if charCode >= 0 {
					value.WriteRune(charCode)
					lexer.bytePos += 4
					break
				}
			}
			end := lexer.bytePos + 4
			if end > lexer.bodySize {
				end = lexer.bodySize
			}
			return token.Token{}, lexer.errorAt(escapePos,
				"Invalid character escape sequence: \\u%s.", string(lexer.body[lexer.bytePos:end]))
		default:
			return token.Token{}, lexer.errorAt(escapePos,
				"Invalid character escape sequence: \\%c.", char)
		}
	}

	return token.Token{}, lexer.errorAt(lexer.bytePos, "Unterminated string.")
}

// copyChar appends the character at the current position to b and advances past it. It returns
// false without moving when the bytes there are not valid UTF-8.
func (lexer *Lexer) copyChar(b *strings.Builder) bool {
	r, size := lexer.body.RuneAt(lexer.bytePos)
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	b.Write(lexer.body[lexer.bytePos : lexer.bytePos+size])
	lexer.bytePos += size
	return true
}

func (lexer *Lexer) invalidUTF8(bytePos uint) error {
	return lexer.errorAt(bytePos, "Invalid UTF-8 byte within String: 0x%02X.", lexer.body.At(bytePos))
}

// uniCharCode converts four hexadecimal chars to the integer that the string represents. Returns a
// negative number if any char is not a hex digit.
func uniCharCode(hex []byte) rune {
	var code rune
	for _, c := range hex {
		code = (code << 4) | char2hex(c)
	}
	return code
}

// char2hex converts a hex character to its integer value. Returns -1 on error which makes any
// subsequent OR in uniCharCode negative.
func char2hex(a byte) rune {
	switch {
	case a >= '0' && a <= '9':
		return rune(a - '0')
	case a >= 'A' && a <= 'F':
		return rune(a-'A') + 10
	case a >= 'a' && a <= 'f':
		return rune(a-'a') + 10
	}
	return -1
}

// lexBlockString reads a block string token from the source file.
//
//	BlockStringCharacter ::
//		SourceCharacter but not """ or \"""
//		\"""
func (lexer *Lexer) lexBlockString() (token.Token, error) {
	startPos := lexer.bytePos
	// Consume the opening triple-quote.
	lexer.bytePos += 3

	var raw strings.Builder
	for lexer.bytePos < lexer.bodySize {
		rest := lexer.body[lexer.bytePos:]
		switch {
		case len(rest) >= 3 && rest[0] == '"' && rest[1] == '"' && rest[2] == '"':
			lexer.bytePos += 3
			return lexer.makeToken(
				token.KindBlockString,
				lexer.bytePos-startPos,
				blockStringValue(raw.String())), nil

		case len(rest) >= 4 && rest[0] == '\\' && rest[1] == '"' && rest[2] == '"' && rest[3] == '"':
			raw.WriteString(`"""`)
			lexer.bytePos += 4

		default:
			char := rest[0]
			if char < 0x0020 && char != '\t' && char != '\r' && char != '\n' {
				return token.Token{}, lexer.errorAt(lexer.bytePos,
					"Invalid character within String: %s.", lexer.charAtPosToStr(lexer.bytePos))
			}
			if !lexer.copyChar(&raw) {
				return token.Token{}, lexer.invalidUTF8(lexer.bytePos)
			}
		}
	}

	return token.Token{}, lexer.errorAt(lexer.bytePos, "Unterminated string.")
}
