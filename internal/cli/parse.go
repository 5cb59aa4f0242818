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
	"github.com/spf13/cobra"

	"github.com/botobag/qlcore/graphql/ast"
	"github.com/botobag/qlcore/graphql/result"
)

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [operation-file]",
		Short: "Parse an operation and print it",
		Long: `Parse an operation and print it back in canonical form.

The text format prints the operation as query text. The JSON format describes the
operation type, its name and its top-level response keys.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, cmd, args)
		},
	}
}

func runParse(opts *RootOptions, cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	operation, err := parseOperation(cmd, args)
	if err != nil {
		if GetExitCode(err) == ExitCommandError {
			return err
		}
		return failWith(w, opts.Format, "parse failed", err)
	}

	if opts.Format == "text" {
		_, err := w.Write([]byte(ast.Print(operation) + "\n"))
		return err
	}

	response := result.Response{
		Data: describeOperation(operation),
	}
	return writeResponse(w, opts.Format, &response)
}

// describeOperation summarizes an operation as a result object.
func describeOperation(operation *ast.Operation) result.Object {
	description := result.Object{
		result.Field("type", result.Enum(operation.Type)),
	}
	if len(operation.Name) > 0 {
		description = append(description, result.Field("name", result.String(operation.Name)))
	}

	// A mutation carries no fields.
	if fields, err := operation.RootFields(); err == nil {
		keys := make(result.List, 0, len(fields))
		for _, field := range fields {
			keys = append(keys, result.String(field.ResponseKey()))
		}
		description = append(description, result.Field("rootFields", keys))
	}

	return append(description, result.Field("query", result.String(ast.Print(operation))))
}
