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

package util

import (
	"io"
)

// OrList writes a list like ["A", "B", "C"] as `A, B, or C` to out. If quoted is true, items are
// double-quoted: `"A", "B", or "C"`. A positive limit truncates the list to its first limit items.
func OrList(out io.StringWriter, items []string, limit int, quoted bool) {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	writeItem := func(item string) {
		if quoted {
			out.WriteString(`"`)
			out.WriteString(item)
			out.WriteString(`"`)
		} else {
			out.WriteString(item)
		}
	}

	for i, item := range items {
		if i > 0 {
			if len(items) > 2 {
				out.WriteString(", ")
			} else {
				out.WriteString(" ")
			}
			if i == len(items)-1 {
				out.WriteString("or ")
			}
		}
		writeItem(item)
	}
}
