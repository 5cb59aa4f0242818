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

package rules

import (
	messages "github.com/botobag/qlcore/graphql/internal/validator"
	"github.com/botobag/qlcore/graphql/validator"
)

// UniqueArgumentNames implements the "Argument Uniqueness" validation rule. A positional argument
// counts as the first declared argument.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Argument-Uniqueness.
type UniqueArgumentNames struct{}

// CheckField implements validator.FieldRule.
func (rule UniqueArgumentNames) CheckField(ctx *validator.ValidationContext, field *validator.FieldInfo) {
	args := field.Arguments()
	if len(args) < 2 {
		return
	}

	knownArgNames := make(map[string]bool, len(args))
	for _, arg := range args {
		name := arg.Name()
		if knownArgNames[name] {
			ctx.ReportError(messages.DuplicateArgMessage(name), field.Node())
			return
		}
		knownArgNames[name] = true
	}
}
