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
	"github.com/botobag/qlcore/internal/util"
)

// FieldsOnCorrectType implements the "Field Selections on Objects, Interfaces, and Unions Types"
// validation rule.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Field-Selections-on-Objects-Interfaces-and-Unions-Types.
type FieldsOnCorrectType struct{}

// CheckField implements validator.FieldRule.
func (rule FieldsOnCorrectType) CheckField(ctx *validator.ValidationContext, field *validator.FieldInfo) {
	// A GraphQL operation is only valid if all fields selected are defined by the parent type, or are
	// the meta field __typename.
	if field.Def() != nil {
		return
	}

	var (
		parentType = field.ParentType()
		fieldName  = field.Name()
	)
	ctx.ReportError(
		messages.UndefinedFieldMessage(
			fieldName,
			parentType.Name,
			util.SuggestionList(fieldName, parentType.FieldNames()),
		),
		field.Node(),
	)
}
