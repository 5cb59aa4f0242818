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

// Package cli implements the qlcore command line tool. It parses, validates and executes
// operations against the Star Wars sample application in internal/fixture.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/botobag/qlcore/graphql"
	"github.com/botobag/qlcore/graphql/schema"
	"github.com/botobag/qlcore/internal/fixture"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool

	// Format is "json" or "text".
	Format string

	// SchemaFile is the SDL file to validate and execute against. The sample schema is used when
	// empty.
	SchemaFile string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of the qlcore tool.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "qlcore",
		Short: "qlcore - parse, validate and execute GraphQL-style operations",
		Long: `qlcore reads an operation from a file (or standard input when the file is "-" or
omitted) and parses, validates or executes it against the Star Wars sample data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log execution details to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "json", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.SchemaFile, "schema", "", "schema SDL file (default: the sample schema)")

	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewExecCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newLogger builds a development logger in verbose mode and a production logger otherwise.
func (opts *RootOptions) newLogger() (*zap.Logger, error) {
	if opts.Verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadSchema loads the schema named by --schema or the sample schema.
func (opts *RootOptions) loadSchema() (*schema.Schema, error) {
	if len(opts.SchemaFile) == 0 {
		return fixture.Schema(), nil
	}

	sdl, err := os.ReadFile(opts.SchemaFile)
	if err != nil {
		return nil, graphql.NewError("Cannot read schema file.", graphql.Op("cli.loadSchema"), err)
	}
	return schema.Parse(opts.SchemaFile, string(sdl))
}
