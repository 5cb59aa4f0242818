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

// ProvidedRequiredArguments implements the "Required Arguments" validation rule.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Required-Arguments.
type ProvidedRequiredArguments struct{}

// CheckField implements validator.FieldRule.
func (rule ProvidedRequiredArguments) CheckField(ctx *validator.ValidationContext, field *validator.FieldInfo) {
	fieldDef := field.Def()
	if fieldDef == nil {
		return
	}

check_next_arg:
	for _, argDef := range fieldDef.Arguments {
		if !argDef.IsRequired() {
			continue
		}

		for _, arg := range field.Arguments() {
			if arg.Def() == argDef {
				continue check_next_arg
			}
		}

		ctx.ReportError(
			messages.MissingFieldArgMessage(field.Name(), argDef.Name, argDef.Type.String()),
			field.Node(),
		)
		return
	}
}
