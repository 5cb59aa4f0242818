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
	"regexp"
	"strconv"

	"github.com/botobag/qlcore/graphql/ast"
	messages "github.com/botobag/qlcore/graphql/internal/validator"
	"github.com/botobag/qlcore/graphql/schema"
	"github.com/botobag/qlcore/graphql/validator"
	"github.com/botobag/qlcore/internal/util"
)

// ValuesOfCorrectType implements the "Values of Correct Type" validation rule. Numbers and booleans
// are written as names in this grammar, so scalars are checked by the lexical shape of the name.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Values-of-Correct-Type.
type ValuesOfCorrectType struct{}

// CheckArgument implements validator.ArgumentRule.
func (rule ValuesOfCorrectType) CheckArgument(
	ctx *validator.ValidationContext,
	field *validator.FieldInfo,
	arg *validator.ArgumentInfo) {

	argDef := arg.Def()
	if argDef == nil {
		return
	}

	if message := rule.checkValue(ctx.Schema(), argDef.Type, arg.Value()); len(message) > 0 {
		ctx.ReportError(message, field.Node())
	}
}

// checkValue returns the message describing why value is not a valid literal of valueType or an
// empty string if it is.
func (rule ValuesOfCorrectType) checkValue(s *schema.Schema, valueType *schema.TypeRef, value ast.Value) string {
	_, isNull := value.(ast.NullValue)

	switch valueType.Kind {
	case schema.NonNullRef:
		if isNull {
			return messages.BadValueMessage(valueType.String(), value.String(), "")
		}
		return rule.checkValue(s, valueType.OfType, value)

	case schema.ListRef:
		if isNull {
			return ""
		}
		list, ok := value.(ast.ArrayValue)
		if !ok {
			// Input coercion accepts a single item for a list.
			return rule.checkValue(s, valueType.OfType, value)
		}
		for _, item := range list.Values {
			if message := rule.checkValue(s, valueType.OfType, item); len(message) > 0 {
				return message
			}
		}
		return ""
	}

	if isNull {
		return ""
	}

	namedType := s.Type(valueType.Name)
	if namedType == nil {
		// Unknown types cannot be checked.
		return ""
	}

	switch namedType.Kind {
	case schema.EnumKind:
		if name, ok := value.(ast.NameValue); ok && namedType.HasEnumValue(string(name.Name)) {
			return ""
		}
		return messages.BadValueMessage(
			valueType.String(),
			value.String(),
			messages.EnumValueHint(util.SuggestionList(literalText(value), namedType.EnumValues)),
		)

	case schema.ScalarKind:
		if isValidScalar(namedType.Name, value) {
			return ""
		}
	}

	// Input objects have no literal in this grammar.
	return messages.BadValueMessage(valueType.String(), value.String(), "")
}

// literalText returns the text of a name or string for making suggestions.
func literalText(value ast.Value) string {
	switch value := value.(type) {
	case ast.NameValue:
		return string(value.Name)
	case ast.StringValue:
		return value.Value
	}
	return value.String()
}

var (
	intPattern   = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)
	floatPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)
	namePattern  = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)
)

// isValidScalar checks a literal against a built-in scalar. Custom scalars accept any string or
// name.
func isValidScalar(typeName string, value ast.Value) bool {
	switch value := value.(type) {
	case ast.StringValue:
		switch typeName {
		case "Int", "Float", "Boolean":
			return false
		}
		return true

	case ast.NameValue:
		name := string(value.Name)
		switch typeName {
		case "String":
			return false
		case "Int":
			if !intPattern.MatchString(name) {
				return false
			}
			_, err := strconv.ParseInt(name, 10, 32)
			return err == nil
		case "Float":
			return floatPattern.MatchString(name)
		case "Boolean":
			return name == "true" || name == "false"
		case "ID":
			return intPattern.MatchString(name) ||
				(namePattern.MatchString(name) && name != "true" && name != "false")
		}
		return true
	}

	return false
}
