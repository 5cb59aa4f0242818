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

package lexer

import (
	"strings"
)

// splitLines breaks a raw block string at "\r\n", "\n" or a lone "\r".
func splitLines(raw string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\r':
			lines = append(lines, raw[start:i])
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			start = i + 1
		case '\n':
			lines = append(lines, raw[start:i])
			start = i + 1
		}
	}
	return append(lines, raw[start:])
}

// blockStringValue produces the value of a block string from its raw text: common indentation of
// all lines but the first is removed, as are leading and trailing blank lines. Lines are rejoined
// with "\n".
//
// See https://graphql.github.io/graphql-spec/June2018/#BlockStringValue().
func blockStringValue(raw string) string {
	lines := splitLines(raw)

	commonIndent := -1
	for _, line := range lines[1:] {
		indent := indentOf(line)
		if indent < len(line) && (commonIndent < 0 || indent < commonIndent) {
			commonIndent = indent
		}
	}

	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) < commonIndent {
				lines[i] = ""
			} else {
				lines[i] = lines[i][commonIndent:]
			}
		}
	}

	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

// indentOf counts the spaces and tabs that start the line.
func indentOf(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

func isBlank(line string) bool {
	return indentOf(line) == len(line)
}
