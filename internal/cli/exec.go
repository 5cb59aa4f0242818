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
	"go.uber.org/zap"

	"github.com/botobag/qlcore/graphql/ast"
	"github.com/botobag/qlcore/graphql/executor"
	"github.com/botobag/qlcore/graphql/result"
	"github.com/botobag/qlcore/graphql/validator"
	"github.com/botobag/qlcore/internal/fixture"
)

// ExecOptions holds flags of the exec command.
type ExecOptions struct {
	*RootOptions

	// DataFile is the YAML file with the sample characters. The embedded data is used when empty.
	DataFile string

	// Variables are "name=value" pairs.
	Variables []string

	// VariablesFile is a YAML mapping from variable names to values.
	VariablesFile string

	// SkipValidation executes the operation without validating it first.
	SkipValidation bool
}

// NewExecCommand creates the exec command.
func NewExecCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExecOptions{
		RootOptions: rootOpts,
	}

	cmd := &cobra.Command{
		Use:   "exec [operation-file]",
		Short: "Validate and execute an operation against the sample data",
		Long: `Validate an operation and execute it against the Star Wars sample data.

The response is printed with "errors" first. Variables are made available to resolvers
but are not substituted into arguments.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(opts, cmd, args)
		},
	}

	cmd.Flags().StringVar(&opts.DataFile, "data", "", "YAML data file (default: the embedded sample data)")
	cmd.Flags().StringArrayVar(&opts.Variables, "var", nil, `variable as "name=value" where value is a literal (repeatable)`)
	cmd.Flags().StringVar(&opts.VariablesFile, "vars", "", "YAML file mapping variable names to values")
	cmd.Flags().BoolVar(&opts.SkipValidation, "skip-validation", false, "execute without validating first")

	return cmd
}

func runExec(opts *ExecOptions, cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	logger, err := opts.newLogger()
	if err != nil {
		return WrapExitError(ExitCommandError, "create logger", err)
	}
	defer logger.Sync() //nolint:errcheck

	s, err := opts.loadSchema()
	if err != nil {
		return WrapExitError(ExitCommandError, "load schema", err)
	}

	data := fixture.DefaultData()
	if len(opts.DataFile) > 0 {
		if data, err = fixture.DecodeFile(opts.DataFile); err != nil {
			return WrapExitError(ExitCommandError, "load data", err)
		}
	}

	vars := ast.Variables{}
	if len(opts.VariablesFile) > 0 {
		if err := decodeVariablesFile(vars, opts.VariablesFile); err != nil {
			return WrapExitError(ExitCommandError, "load variables", err)
		}
	}
	if err := parseVariableFlags(vars, opts.Variables); err != nil {
		return WrapExitError(ExitCommandError, "parse variables", err)
	}

	operation, err := parseOperation(cmd, args)
	if err != nil {
		if GetExitCode(err) == ExitCommandError {
			return err
		}
		return failWith(w, opts.Format, "parse failed", err)
	}

	if !opts.SkipValidation {
		if err := validator.Validate(operation, s); err != nil {
			return failWith(w, opts.Format, "validation failed", err)
		}
	}

	logger.Debug("executing", zap.String("operation", ast.Print(operation)), zap.Int("variables", len(vars)))

	value, err := executor.Execute(cmd.Context(), operation, vars, s, fixture.NewRoot(data),
		executor.WithLogger(logger))
	if err != nil {
		return failWith(w, opts.Format, "execution failed", err)
	}

	response := result.Response{
		Data: value,
	}
	return writeResponse(w, opts.Format, &response)
}
