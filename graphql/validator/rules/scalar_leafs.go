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

// ScalarLeafs implements the "Leaf Field Selections" validation rule.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Leaf-Field-Selections.
type ScalarLeafs struct{}

// CheckField implements validator.FieldRule.
func (rule ScalarLeafs) CheckField(ctx *validator.ValidationContext, field *validator.FieldInfo) {
	// A GraphQL operation is valid only if all leaf fields (fields without sub selections) are of
	// scalar or enum types.
	fieldType := field.Type()
	if fieldType == nil {
		return
	}

	namedType := ctx.Schema().Type(fieldType.NamedType())
	if namedType == nil {
		return
	}

	hasSelection := len(field.Node().Fields) > 0
	if namedType.IsLeaf() {
		if hasSelection {
			ctx.ReportError(
				messages.NoSubselectionAllowedMessage(field.Name(), fieldType.String()),
				field.Node(),
			)
		}
	} else if !hasSelection {
		ctx.ReportError(
			messages.RequiredSubselectionMessage(field.Name(), fieldType.String()),
			field.Node(),
		)
	}
}
