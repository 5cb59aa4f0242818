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

package result_test

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/botobag/qlcore/graphql"
	"github.com/botobag/qlcore/graphql/result"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Value", func() {
	It("reports kinds", func() {
		Expect(result.Null{}.Kind()).Should(Equal(result.NullKind))
		Expect(result.Boolean(true).Kind()).Should(Equal(result.BooleanKind))
		Expect(result.Int(1).Kind()).Should(Equal(result.IntKind))
		Expect(result.Float(1.5).Kind()).Should(Equal(result.FloatKind))
		Expect(result.String("s").Kind()).Should(Equal(result.StringKind))
		Expect(result.Enum("E").Kind()).Should(Equal(result.EnumKind))
		Expect(result.List{}.Kind()).Should(Equal(result.ListKind))
		Expect(result.Object{}.Kind()).Should(Equal(result.ObjectKind))
	})

	It("looks up object fields in order", func() {
		object := result.Object{
			result.Field("name", result.String("Luke")),
			result.Field("height", result.Float(1.72)),
			result.Field("name", result.String("shadowed")),
		}

		Expect(object.Keys()).Should(Equal([]string{"name", "height", "name"}))

		v, ok := object.Get("name")
		Expect(ok).Should(BeTrue())
		Expect(v).Should(Equal(result.String("Luke")))

		_, ok = object.Get("mass")
		Expect(ok).Should(BeFalse())
	})
})

var _ = Describe("FromGo", func() {
	It("converts scalars", func() {
		Expect(result.FromGo(nil)).Should(Equal(result.Null{}))
		Expect(result.FromGo(true)).Should(Equal(result.Boolean(true)))
		Expect(result.FromGo("Luke")).Should(Equal(result.String("Luke")))
		Expect(result.FromGo(202)).Should(Equal(result.Int(202)))
		Expect(result.FromGo(int32(-3))).Should(Equal(result.Int(-3)))
		Expect(result.FromGo(uint16(7))).Should(Equal(result.Int(7)))
		Expect(result.FromGo(1.5)).Should(Equal(result.Float(1.5)))
	})

	It("passes values through", func() {
		Expect(result.FromGo(result.Enum("JEDI"))).Should(Equal(result.Enum("JEDI")))
	})

	It("converts decoded lists and maps", func() {
		v, err := result.FromGo(map[string]interface{}{
			"name":      "Luke",
			"appearsIn": []interface{}{"NEWHOPE", "EMPIRE"},
			"friends":   []interface{}{},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal(result.Object{
			result.Field("appearsIn", result.List{result.String("NEWHOPE"), result.String("EMPIRE")}),
			result.Field("friends", result.List{}),
			result.Field("name", result.String("Luke")),
		}))
	})

	It("converts typed slices and maps through reflection", func() {
		Expect(result.FromGo([]string{"a", "b"})).Should(Equal(result.List{
			result.String("a"),
			result.String("b"),
		}))

		Expect(result.FromGo(map[string]int{"b": 2, "a": 1})).Should(Equal(result.Object{
			result.Field("a", result.Int(1)),
			result.Field("b", result.Int(2)),
		}))
	})

	It("rejects integers that overflow", func() {
		_, err := result.FromGo(uint64(1) << 63)
		Expect(err).Should(MatchError("integer 9223372036854775808 overflows result value"))
	})

	It("rejects unsupported types", func() {
		_, err := result.FromGo(struct{}{})
		Expect(err).Should(HaveOccurred())

		_, err = result.FromGo([]interface{}{"ok", make(chan int)})
		Expect(err).Should(HaveOccurred())
	})
})

var _ = Describe("Marshal", func() {
	It("keeps field order", func() {
		data, err := result.Marshal(result.Object{
			result.Field("name", result.String("Luke")),
			result.Field("appearsIn", result.List{result.Enum("A_NEW_HOPE")}),
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(data)).Should(Equal(`{"name":"Luke","appearsIn":["A_NEW_HOPE"]}`))
	})

	It("writes every kind of value", func() {
		data, err := result.Marshal(result.List{
			result.Null{},
			result.Boolean(false),
			result.Int(-42),
			result.Float(0.5),
			result.String(`say "hi"`),
			result.Enum("JEDI"),
			result.List{},
			result.Object{},
			result.Object{result.Field("a", result.List{result.Int(1), result.Int(2)})},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(data)).Should(Equal(
			`[null,false,-42,0.5,"say \"hi\"","JEDI",[],{},{"a":[1,2]}]`))
	})

	It("produces valid JSON for nested trees", func() {
		tree := result.Object{
			result.Field("hero", result.Object{
				result.Field("name", result.String("R2-D2")),
				result.Field("friends", result.List{
					result.Object{result.Field("name", result.String("Luke"))},
					result.Object{result.Field("name", result.String("Han"))},
				}),
			}),
		}

		data, err := result.Marshal(tree)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(json.Valid(data)).Should(BeTrue())
		Expect(data).Should(MatchJSON(
			`{"hero":{"name":"R2-D2","friends":[{"name":"Luke"},{"name":"Han"}]}}`))
	})

	It("indents nested values", func() {
		data, err := result.MarshalIndent(result.Object{
			result.Field("a", result.List{result.Int(1)}),
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(data)).Should(Equal("{\n  \"a\": [\n    1\n  ]\n}"))
	})

	It("is used by encoding/json", func() {
		data, err := json.Marshal(result.Object{result.Field("n", result.Int(1))})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(data)).Should(Equal(`{"n":1}`))
	})
})

var _ = Describe("Response", func() {
	It("writes data only when there are no errors", func() {
		response := result.Response{
			Data: result.Object{result.Field("name", result.String("Luke"))},
		}
		data, err := response.MarshalJSON()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(data)).Should(Equal(`{"data":{"name":"Luke"}}`))
	})

	It("places errors before data", func() {
		response := result.Response{
			Data: result.Null{},
			Errors: []*graphql.Error{
				{
					Message:   "boom",
					Locations: []graphql.ErrorLocation{{Line: 1, Column: 9}},
				},
			},
		}
		data, err := response.MarshalJSON()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(data)).Should(Equal(
			`{"errors":[{"message":"boom","locations":[{"line":1,"column":9}]}],"data":null}`))
	})

	It("omits data when execution did not start", func() {
		response := result.NewErrorResponse(errors.New("no operation"))
		data, err := response.MarshalJSON()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(data)).Should(Equal(`{"errors":[{"message":"no operation"}]}`))
	})

	It("keeps a graphql.Error as is", func() {
		e := graphql.NewError("Syntax Error: Unexpected <EOF>", graphql.ErrKindSyntax)
		response := result.NewErrorResponse(e)
		Expect(response.Errors).Should(HaveLen(1))
		Expect(response.Errors[0]).Should(BeIdenticalTo(e))
	})

	It("writes to a stream with a trailing newline", func() {
		response := result.Response{
			Data: result.Object{result.Field("ok", result.Boolean(true))},
		}

		var buf bytes.Buffer
		Expect(response.MarshalJSONTo(&buf, false)).Should(Succeed())
		Expect(buf.String()).Should(Equal("{\"data\":{\"ok\":true}}\n"))

		buf.Reset()
		Expect(response.MarshalJSONTo(&buf, true)).Should(Succeed())
		Expect(buf.String()).Should(Equal("{\n  \"data\": {\n    \"ok\": true\n  }\n}\n"))
	})
})
