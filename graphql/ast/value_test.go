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

package ast_test

import (
	"github.com/botobag/qlcore/graphql/ast"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Value", func() {
	It("renders literal text", func() {
		Expect(ast.NullValue{}.String()).Should(Equal("null"))
		Expect(ast.NameValue{Name: "A_NEW_HOPE"}.String()).Should(Equal("A_NEW_HOPE"))
		Expect(ast.StringValue{Value: "Luke"}.String()).Should(Equal(`"Luke"`))
		Expect(ast.StringValue{Value: "say \"hi\"\n<b>"}.String()).Should(Equal(`"say \"hi\"\n<b>"`))
		Expect(ast.ArrayValue{}.String()).Should(Equal("[]"))
		Expect(ast.ArrayValue{Values: []ast.Value{
			ast.NameValue{Name: "ok"},
			ast.StringValue{Value: "bad"},
			ast.ArrayValue{Values: []ast.Value{ast.NullValue{}}},
		}}.String()).Should(Equal(`[ok, "bad", [null]]`))
	})

	It("reports its kind", func() {
		Expect(ast.NullValue{}.Kind()).Should(Equal(ast.NullKind))
		Expect(ast.StringValue{}.Kind()).Should(Equal(ast.StringKind))
		Expect(ast.NameValue{}.Kind()).Should(Equal(ast.NameKind))
		Expect(ast.ArrayValue{}.Kind()).Should(Equal(ast.ArrayKind))
		Expect(ast.ArrayKind.String()).Should(Equal("Array"))
	})

	Describe("Equal", func() {
		It("compares structurally", func() {
			a := ast.ArrayValue{Values: []ast.Value{ast.NameValue{Name: "x"}, ast.NullValue{}}}
			b := ast.ArrayValue{Values: []ast.Value{ast.NameValue{Name: "x"}, ast.NullValue{}}}
			Expect(ast.Equal(a, b)).Should(BeTrue())
			Expect(ast.Equal(ast.NullValue{}, ast.NullValue{})).Should(BeTrue())
			Expect(ast.Equal(nil, nil)).Should(BeTrue())
		})

		It("distinguishes variants with the same text", func() {
			Expect(ast.Equal(ast.NameValue{Name: "x"}, ast.StringValue{Value: "x"})).Should(BeFalse())
			Expect(ast.Equal(ast.NullValue{}, ast.NameValue{Name: "null"})).Should(BeFalse())
			Expect(ast.Equal(ast.NullValue{}, nil)).Should(BeFalse())
		})

		It("compares array length and order", func() {
			x := ast.NameValue{Name: "x"}
			y := ast.NameValue{Name: "y"}
			Expect(ast.Equal(
				ast.ArrayValue{Values: []ast.Value{x, y}},
				ast.ArrayValue{Values: []ast.Value{y, x}},
			)).Should(BeFalse())
			Expect(ast.Equal(
				ast.ArrayValue{Values: []ast.Value{x}},
				ast.ArrayValue{Values: []ast.Value{x, x}},
			)).Should(BeFalse())
		})
	})
})
