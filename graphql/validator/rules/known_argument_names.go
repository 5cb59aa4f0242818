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

// KnownArgumentNames implements the "Argument Names" validation rule. A positional argument is
// known if the field declares at least one argument.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Argument-Names.
type KnownArgumentNames struct{}

// CheckArgument implements validator.ArgumentRule.
func (rule KnownArgumentNames) CheckArgument(
	ctx *validator.ValidationContext,
	field *validator.FieldInfo,
	arg *validator.ArgumentInfo) {

	fieldDef := field.Def()
	if arg.Def() != nil || fieldDef == nil {
		return
	}

	if arg.Node().IsPositional() {
		ctx.ReportError(
			messages.UnexpectedPositionalArgMessage(field.Name(), field.ParentType().Name),
			field.Node(),
		)
		return
	}

	argName := arg.Name()
	ctx.ReportError(
		messages.UnknownArgMessage(
			argName,
			field.Name(),
			field.ParentType().Name,
			util.SuggestionList(argName, fieldDef.ArgumentNames()),
		),
		field.Node(),
	)
}
