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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botobag/qlcore/graphql/result"
	"github.com/botobag/qlcore/graphql/validator"

	// Load standard rules for validating operations.
	_ "github.com/botobag/qlcore/graphql/validator/rules"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [operation-file]",
		Short: "Validate an operation against the schema",
		Long: `Validate an operation against the schema without executing it.

The first validation error is reported with its location. The exit code is 1 if the
operation is invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd, args)
		},
	}
}

func runValidate(opts *RootOptions, cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	s, err := opts.loadSchema()
	if err != nil {
		return WrapExitError(ExitCommandError, "load schema", err)
	}

	operation, err := parseOperation(cmd, args)
	if err != nil {
		if GetExitCode(err) == ExitCommandError {
			return err
		}
		return failWith(w, opts.Format, "parse failed", err)
	}

	if err := validator.Validate(operation, s); err != nil {
		return failWith(w, opts.Format, "validation failed", err)
	}

	if opts.Format == "text" {
		_, err := fmt.Fprintln(w, "valid")
		return err
	}

	response := result.Response{
		Data: result.Object{
			result.Field("valid", result.Boolean(true)),
		},
	}
	return writeResponse(w, opts.Format, &response)
}
