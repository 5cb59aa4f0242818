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

package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/botobag/qlcore/graphql"
	"github.com/botobag/qlcore/graphql/ast"
	"github.com/botobag/qlcore/graphql/parser"
	"github.com/botobag/qlcore/graphql/token"
)

// readSource reads the operation text named by args. A missing argument or "-" means standard
// input.
func readSource(cmd *cobra.Command, args []string) (*token.Source, error) {
	const op graphql.Op = "cli.readSource"

	var (
		name string
		body []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		name = "<stdin>"
		body, err = io.ReadAll(cmd.InOrStdin())
	} else {
		name = args[0]
		body, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, graphql.NewError("Cannot read operation.", op, err)
	}

	return token.NewSource(&token.SourceConfig{
		Body: token.SourceBody(body),
		Name: name,
	}), nil
}

// parseOperation reads and parses the operation named by args.
func parseOperation(cmd *cobra.Command, args []string) (*ast.Operation, error) {
	source, err := readSource(cmd, args)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "read operation", err)
	}
	return parser.Parse(source)
}
