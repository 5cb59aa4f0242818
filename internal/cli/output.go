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
	"errors"
	"fmt"
	"io"

	"github.com/botobag/qlcore/graphql"
	"github.com/botobag/qlcore/graphql/result"
)

// Exit codes.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The operation failed to parse, validate or execute
	ExitCommandError = 2 // Command error (bad flags, unreadable files, etc.)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. It returns ExitFailure if the error is not an
// ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// writeResponse prints a response in the selected format. In text format, errors are printed one
// per line with their location and path, followed by the indented data.
func writeResponse(w io.Writer, format string, response *result.Response) error {
	if format == "json" {
		return response.MarshalJSONTo(w, true /*indent*/)
	}

	for _, err := range response.Errors {
		if _, e := fmt.Fprintf(w, "error: %s\n", describeError(err)); e != nil {
			return e
		}
	}

	if response.Data == nil {
		return nil
	}

	data, err := result.MarshalIndent(response.Data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// describeError formats err as "message (at line:column) (path a.b[0])".
func describeError(err *graphql.Error) string {
	description := err.Message
	for _, location := range err.Locations {
		description += fmt.Sprintf(" (at %d:%d)", location.Line, location.Column)
	}
	if !err.Path.Empty() {
		description += fmt.Sprintf(" (path %s)", err.Path.String())
	}
	return description
}

// failWith prints err as an error response and returns the ExitError for it.
func failWith(w io.Writer, format string, message string, err error) error {
	response := result.NewErrorResponse(err)
	if e := writeResponse(w, format, &response); e != nil {
		return e
	}
	return WrapExitError(ExitFailure, message, err)
}
