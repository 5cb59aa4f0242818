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

package graphql

import (
	"fmt"

	"github.com/botobag/qlcore/graphql/token"
)

//===----------------------------------------------------------------------------------------====//
// Syntax Error
//===----------------------------------------------------------------------------------------====//

// sourceLocations resolves a location in source into the list form taken by NewError.
func sourceLocations(source *token.Source, location token.SourceLocation) []ErrorLocation {
	if source == nil || !location.IsValid() {
		return nil
	}
	return []ErrorLocation{ErrorLocationOf(source.PositionOf(location))}
}

// NewSyntaxError produces an error representing a grammar violation, containing useful descriptive
// information about the syntax error's position in the source.
func NewSyntaxError(source *token.Source, location token.SourceLocation, description string) error {
	return NewError(
		fmt.Sprintf("Syntax Error: %s", description),
		sourceLocations(source, location),
		ErrKindSyntax)
}

// NewLexError produces an error for an unrecognized character or malformed token. The message has
// the same "Syntax Error: " prefix as NewSyntaxError but the kind is ErrKindLex.
func NewLexError(source *token.Source, location token.SourceLocation, description string) error {
	return NewError(
		fmt.Sprintf("Syntax Error: %s", description),
		sourceLocations(source, location),
		ErrKindLex)
}

//===----------------------------------------------------------------------------------------====//
// Translation Error
//===----------------------------------------------------------------------------------------====//

// Keys into the Extensions of a translation error.
const (
	TranslationValueKey = "value"
	TranslationTypeKey  = "type"
)

// NewTranslationError produces an error indicating that the literal (in its textual form) cannot be
// converted into the named target type.
func NewTranslationError(literal string, typeName string) error {
	return NewError(
		fmt.Sprintf("Cannot translate %s into %s.", literal, typeName),
		ErrKindTranslation,
		ErrorExtensions{
			TranslationValueKey: literal,
			TranslationTypeKey:  typeName,
		})
}

//===----------------------------------------------------------------------------------------====//
// Unsupported Operation
//===----------------------------------------------------------------------------------------====//

// NewUnsupportedError produces an error for a well-formed request that the engine cannot execute.
func NewUnsupportedError(op Op, message string) error {
	return NewError(message, op, ErrKindUnsupported)
}
