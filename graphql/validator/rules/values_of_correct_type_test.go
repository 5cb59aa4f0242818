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

package rules_test

import (
	"github.com/botobag/qlcore/graphql/validator/rules"

	. "github.com/onsi/ginkgo"
)

// graphql-js/src/validation/__tests__/ValuesOfCorrectType-test.js@8c96dc8
var _ = Describe("Validate: Values of correct type", func() {
	rule := rules.ValuesOfCorrectType{}

	// complicatedArgs wraps a field selection of ComplicatedArgs into a query.
	complicatedArgs := func(selection string) string {
		return "{\n  complicatedArgs {\n    " + selection + "\n  }\n}"
	}

	validValues := []struct {
		description string
		selection   string
	}{
		{"good int value", `intArgField(intArg: 2)`},
		{"good negative int value", `intArgField(intArg: -2)`},
		{"good boolean value", `booleanArgField(booleanArg: true)`},
		{"good string value", `stringArgField(stringArg: "foo")`},
		{"good float value", `floatArgField(floatArg: 1.1)`},
		{"good float value with exponent", `floatArgField(floatArg: 1e10)`},
		{"int into float", `floatArgField(floatArg: 1)`},
		{"int into ID", `idArgField(idArg: 1)`},
		{"string into ID", `idArgField(idArg: "someIdString")`},
		{"name into ID", `idArgField(idArg: abc123)`},
		{"good enum value", `enumArgField(enumArg: BROWN)`},
		{"null into nullable type", `intArgField(intArg: null)`},
		{"good list value", `stringListArgField(stringListArg: ["one", null, "two"])`},
		{"empty list value", `stringListArgField(stringListArg: [])`},
		{"null list value", `stringListArgField(stringListArg: null)`},
		{"single value into list", `stringListArgField(stringListArg: "one")`},
		{"non-null items", `stringListNonNullArgField(stringListNonNullArg: ["one", "two"])`},
		{"custom scalar accepts strings", `customArgField(customArg: "anything")`},
		{"custom scalar accepts names", `customArgField(customArg: 123)`},
		{"positional argument", `intArgField(2)`},
		{"arg on optional arg", `multipleOpts(opt1: 1, opt2: 2)`},
		{"unknown argument is ignored", `intArgField(unknown: "x")`},
	}

	for _, test := range validValues {
		test := test
		It(test.description, func() {
			expectValid(rule, complicatedArgs(test.selection))
		})
	}

	invalidValues := []struct {
		description string
		selection   string
		message     string
	}{
		{
			"string into int",
			`intArgField(intArg: "3")`,
			`Expected type Int, found "3".`,
		},
		{
			"big int into int",
			`intArgField(intArg: 829384293849283498239482938)`,
			`Expected type Int, found 829384293849283498239482938.`,
		},
		{
			"float into int",
			`intArgField(intArg: 3.0)`,
			`Expected type Int, found 3.0.`,
		},
		{
			"unquoted string into int",
			`intArgField(intArg: FOO)`,
			`Expected type Int, found FOO.`,
		},
		{
			"string into float",
			`floatArgField(floatArg: "3.333")`,
			`Expected type Float, found "3.333".`,
		},
		{
			"boolean into float",
			`floatArgField(floatArg: true)`,
			`Expected type Float, found true.`,
		},
		{
			"int into string",
			`stringArgField(stringArg: 1)`,
			`Expected type String, found 1.`,
		},
		{
			"unquoted string into string",
			`stringArgField(stringArg: BAR)`,
			`Expected type String, found BAR.`,
		},
		{
			"uppercase boolean",
			`booleanArgField(booleanArg: TRUE)`,
			`Expected type Boolean, found TRUE.`,
		},
		{
			"string into boolean",
			`booleanArgField(booleanArg: "true")`,
			`Expected type Boolean, found "true".`,
		},
		{
			"float into ID",
			`idArgField(idArg: 1.0)`,
			`Expected type ID, found 1.0.`,
		},
		{
			"boolean into ID",
			`idArgField(idArg: true)`,
			`Expected type ID, found true.`,
		},
		{
			"lowercase enum value",
			`enumArgField(enumArg: brown)`,
			`Expected type FurColor, found brown; Did you mean the enum value BROWN?`,
		},
		{
			"string into enum",
			`enumArgField(enumArg: "BROWN")`,
			`Expected type FurColor, found "BROWN"; Did you mean the enum value BROWN?`,
		},
		{
			"unknown enum value",
			`enumArgField(enumArg: PURPLE)`,
			`Expected type FurColor, found PURPLE.`,
		},
		{
			"null into non-null",
			`nonNullIntArgField(nonNullIntArg: null)`,
			`Expected type Int!, found null.`,
		},
		{
			"incorrect item type",
			`stringListArgField(stringListArg: ["one", 2])`,
			`Expected type String, found 2.`,
		},
		{
			"null item in non-null list",
			`stringListNonNullArgField(stringListNonNullArg: ["one", null])`,
			`Expected type String!, found null.`,
		},
		{
			"single incorrect value into list",
			`stringListArgField(stringListArg: 1)`,
			`Expected type String, found 1.`,
		},
		{
			"list into scalar",
			`intArgField(intArg: [1])`,
			`Expected type Int, found [1].`,
		},
		{
			"list into custom scalar",
			`customArgField(customArg: [])`,
			`Expected type Custom, found [].`,
		},
		{
			"incorrect positional argument",
			`intArgField("2")`,
			`Expected type Int, found "2".`,
		},
	}

	for _, test := range invalidValues {
		test := test
		It(test.description, func() {
			expectError(rule, complicatedArgs(test.selection), test.message, 3, 5)
		})
	}
})
