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

package token

import (
	"sort"
	"sync"
	"unicode/utf8"
)

// SourceBody contains contents of a GraphQL document in a byte sequence.
type SourceBody []byte

// RuneAt decodes a rune at given pos. It also returns the number of bytes occupied by the
// rune.
func (body SourceBody) RuneAt(pos uint) (rune, uint) {
	if uint(len(body)) <= pos {
		// Return -1 to indicate an <EOF>.
		return -1, 0
	}

	// Fast path: characters below Runeself are represented as themselves in a single byte.
	c := body[pos]
	if c < utf8.RuneSelf {
		return rune(c), 1
	}

	r, n := utf8.DecodeRune(body[pos:])
	return r, uint(n)
}

// At returns the byte in the source at given position. Return 0 if the given position is out of
// body's range.
func (body SourceBody) At(pos uint) byte {
	if body.Size() <= pos {
		return 0
	}
	return body[pos]
}

// Size returns the body size in bytes.
func (body SourceBody) Size() uint {
	return uint(len(body))
}

// SourceConfig specifies configuration of a Source.
type SourceConfig struct {
	Body SourceBody

	// Name is optional and defaults to "GraphQL request". It is useful for clients who store
	// GraphQL documents in source files (e.g., "human.graphql").
	Name string
}

// Source represent a GraphQL source text. A Source is safe for concurrent use.
type Source struct {
	config SourceConfig

	// Byte offsets at which each line begins; computed on first use.
	lineStartsOnce sync.Once
	lineStarts     []uint
}

// NewSource initializes a Source instance from given config.
func NewSource(config *SourceConfig) *Source {
	source := &Source{
		config: *config,
	}
	if len(config.Name) == 0 {
		source.config.Name = "GraphQL request"
	}
	return source
}

// NewSourceFromString is a shorthand for creating an unnamed Source from text.
func NewSourceFromString(text string) *Source {
	return NewSource(&SourceConfig{
		Body: SourceBody(text),
	})
}

// Body returns source.config.Body.
func (source *Source) Body() SourceBody {
	return source.config.Body
}

// Name returns source.config.Name.
func (source *Source) Name() string {
	return source.config.Name
}

// LocationFromPos returns a SourceLocation that represent the location for given position in the
// body.
func (source *Source) LocationFromPos(bytePos uint) SourceLocation {
	if bytePos > source.Body().Size() {
		panic("illegal byte position value")
	}
	return SourceLocation(bytePos + 1)
}

// computeLineStarts records the offset of the first byte of every line. "\r\n", "\n" and a lone
// "\r" all terminate a line.
func (source *Source) computeLineStarts() {
	body := source.Body()
	bodySize := body.Size()

	lineStarts := []uint{0}
	for i := uint(0); i < bodySize; i++ {
		switch body[i] {
		case '\r':
			if i+1 < bodySize && body[i+1] == '\n' {
				i++
			}
			lineStarts = append(lineStarts, i+1)

		case '\n':
			lineStarts = append(lineStarts, i+1)
		}
	}
	source.lineStarts = lineStarts
}

// PositionOf computes the line and column for a SourceLocation. It returns the zero Position for
// NoSourceLocation.
func (source *Source) PositionOf(loc SourceLocation) Position {
	if !loc.IsValid() {
		return Position{}
	}

	source.lineStartsOnce.Do(source.computeLineStarts)

	offset := uint(loc) - 1
	if size := source.Body().Size(); offset > size {
		offset = size
	}

	// Find the last line that starts at or before offset.
	lineStarts := source.lineStarts
	line := sort.Search(len(lineStarts), func(i int) bool {
		return lineStarts[i] > offset
	}) - 1

	return Position{
		Offset: offset,
		Line:   uint(line) + 1,
		Column: offset - lineStarts[line] + 1,
	}
}
