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

// graphql-js/src/validation/__tests__/ScalarLeafs-test.js@8c96dc8
var _ = Describe("Validate: Scalar leafs", func() {
	rule := rules.ScalarLeafs{}

	It("valid scalar selection", func() {
		expectValid(rule, `
      {
        dog {
          barks
          __typename
        }
      }
    `)
	})

	It("object type missing selection", func() {
		expectError(rule, `
      {
        human
      }
    `, `Field "human" of type "Human" must have a selection of subfields. Did you mean "human { ... }"?`, 2, 3)
	})

	It("interface type missing selection", func() {
		expectError(rule, `
      {
        human {
          pets
        }
      }
    `, `Field "pets" of type "[Pet]" must have a selection of subfields. Did you mean "pets { ... }"?`, 3, 5)
	})

	It("valid scalar selection with args", func() {
		expectValid(rule, `
      {
        dog {
          doesKnowCommand(dogCommand: SIT)
        }
      }
    `)
	})

	It("scalar selection not allowed on Boolean", func() {
		expectError(rule, `
      {
        dog {
          barks {
            sinceWhen
          }
        }
      }
    `, `Field "barks" must not have a selection since type "Boolean" has no subfields.`, 3, 5)
	})

	It("scalar selection not allowed on Enum", func() {
		expectError(rule, `
      {
        cat {
          furColor {
            inHexdec
          }
        }
      }
    `, `Field "furColor" must not have a selection since type "FurColor" has no subfields.`, 3, 5)
	})

	It("scalar selection not allowed with args", func() {
		expectError(rule, `
      {
        dog {
          doesKnowCommand(dogCommand: SIT) {
            sinceWhen
          }
        }
      }
    `, `Field "doesKnowCommand" must not have a selection since type "Boolean" has no subfields.`, 3, 5)
	})

	It("selection not allowed on __typename", func() {
		expectError(rule, `
      {
        dog {
          __typename {
            name
          }
        }
      }
    `, `Field "__typename" must not have a selection since type "String!" has no subfields.`, 3, 5)
	})
})
