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

// Package validator contains the messages reported by validation rules. They live in an internal
// package so both the rules and their tests share the exact wording.
package validator

import (
	"fmt"
	"strings"

	"github.com/botobag/qlcore/internal/util"
)

// maxSuggestions is the number of suggestions shown in a "Did you mean" hint.
const maxSuggestions = 5

// didYouMean appends a hint listing suggestions to message.
func didYouMean(message *strings.Builder, suggestions []string) {
	if len(suggestions) > 0 {
		message.WriteString(" Did you mean ")
		util.OrList(message, suggestions, maxSuggestions, true /*quoted*/)
		message.WriteString("?")
	}
}

// NoQueryTypeMessage is reported when a schema has no query root type.
func NoQueryTypeMessage() string {
	return "Schema does not define the required query root type."
}

// NoMutationTypeMessage is reported for a mutation against a schema without mutation root type.
func NoMutationTypeMessage() string {
	return "Schema is not configured for mutations."
}

// UndefinedFieldMessage returns message describing error occurred in rule "Field Selections on
// Objects, Interfaces, and Unions Types" (rules.FieldsOnCorrectType).
func UndefinedFieldMessage(fieldName string, parentTypeName string, suggestedFieldNames []string) string {
	var message strings.Builder
	fmt.Fprintf(&message, `Cannot query field "%s" on type "%s".`, fieldName, parentTypeName)
	didYouMean(&message, suggestedFieldNames)
	return message.String()
}

// UnknownArgMessage returns message describing error occurred in rule "Argument Names"
// (rules.KnownArgumentNames).
func UnknownArgMessage(
	argName string,
	fieldName string,
	typeName string,
	suggestedArgs []string) string {

	var message strings.Builder
	fmt.Fprintf(&message, `Unknown argument "%s" on field "%s" of type "%s".`, argName, fieldName, typeName)
	didYouMean(&message, suggestedArgs)
	return message.String()
}

// UnexpectedPositionalArgMessage is reported by rules.KnownArgumentNames for a positional argument
// given to a field that declares no arguments.
func UnexpectedPositionalArgMessage(fieldName string, typeName string) string {
	return fmt.Sprintf(`Field "%s" of type "%s" does not accept a positional argument.`, fieldName, typeName)
}

// DuplicateArgMessage returns message describing error occurred in rule "Argument Uniqueness"
// (rules.UniqueArgumentNames).
func DuplicateArgMessage(argName string) string {
	return fmt.Sprintf(`There can be only one argument named "%s".`, argName)
}

// MissingFieldArgMessage returns message describing error occurred in rule "Required Arguments"
// (rules.ProvidedRequiredArguments).
func MissingFieldArgMessage(fieldName string, argName string, typeName string) string {
	return fmt.Sprintf(`Field "%s" argument "%s" of type "%s" is required, but it was not provided.`,
		fieldName, argName, typeName)
}

// BadValueMessage returns message describing error occurred in rule "Values of Correct Type"
// (rules.ValuesOfCorrectType). hint is optional.
func BadValueMessage(typeName string, value string, hint string) string {
	if len(hint) > 0 {
		return fmt.Sprintf(`Expected type %s, found %s; %s`, typeName, value, hint)
	}
	return fmt.Sprintf(`Expected type %s, found %s.`, typeName, value)
}

// EnumValueHint suggests enum values for a bad value. It returns an empty string when there is
// nothing to suggest.
func EnumValueHint(suggestedValues []string) string {
	if len(suggestedValues) == 0 {
		return ""
	}
	var message strings.Builder
	message.WriteString("Did you mean the enum value ")
	util.OrList(&message, suggestedValues, maxSuggestions, false /*quoted*/)
	message.WriteString("?")
	return message.String()
}

// NoSubselectionAllowedMessage returns message describing error occurred in rule "Leaf Field
// Selections" (rules.ScalarLeafs) for a leaf field with a sub-selection.
func NoSubselectionAllowedMessage(fieldName string, typeName string) string {
	return fmt.Sprintf(`Field "%s" must not have a selection since type "%s" has no subfields.`,
		fieldName, typeName)
}

// RequiredSubselectionMessage returns message describing error occurred in rule "Leaf Field
// Selections" (rules.ScalarLeafs) for a composite field without sub-selection.
func RequiredSubselectionMessage(fieldName string, typeName string) string {
	return fmt.Sprintf(`Field "%s" of type "%s" must have a selection of subfields. Did you mean "%s { ... }"?`,
		fieldName, typeName, fieldName)
}
