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

// Package value converts untyped literal values from a parsed query into native Go values.
// Resolvers use it to read field arguments.
//
// The set of target types is open: any type can take part by implementing Converter.
package value

import (
	"fmt"
	"strconv"

	"github.com/botobag/qlcore/graphql"
	"github.com/botobag/qlcore/graphql/ast"
)

// Converter produces a T from a literal value or fails with a translation error.
type Converter[T any] interface {
	Convert(value ast.Value) (T, error)
}

// ConverterFunc is an adapter to allow the use of ordinary functions as Converter.
type ConverterFunc[T any] func(value ast.Value) (T, error)

// Convert implements Converter by calling f(value).
func (f ConverterFunc[T]) Convert(value ast.Value) (T, error) {
	return f(value)
}

// Built-in converters
var (
	// String accepts a StringValue.
	String Converter[string] = ConverterFunc[string](convertString)

	// ID accepts a NameValue and wraps its text.
	ID Converter[ast.ID] = ConverterFunc[ast.ID](convertID)

	// Name accepts a NameValue.
	Name Converter[ast.Name] = ConverterFunc[ast.Name](convertName)

	// Int accepts a NameValue holding a base-10 32-bit integer.
	Int Converter[int32] = ConverterFunc[int32](convertInt)

	// Boolean accepts the names true and false.
	Boolean Converter[bool] = ConverterFunc[bool](convertBoolean)
)

// NewTranslationError reports that value cannot be converted into the named type. The error
// message and extensions carry the literal text of value.
func NewTranslationError(value ast.Value, typeName string) error {
	literal := "<missing>"
	if value != nil {
		literal = value.String()
	}
	return graphql.NewTranslationError(literal, typeName)
}

// IsTranslationError returns true if err is (or wraps) a translation error.
func IsTranslationError(err error) bool {
	return graphql.IsKind(err, graphql.ErrKindTranslation)
}

func convertString(value ast.Value) (string, error) {
	if s, ok := value.(ast.StringValue); ok {
		return s.Value, nil
	}
	return "", NewTranslationError(value, "String")
}

func convertID(value ast.Value) (ast.ID, error) {
	if name, ok := value.(ast.NameValue); ok {
		return ast.ID(name.Name), nil
	}
	return "", NewTranslationError(value, "Id")
}

func convertName(value ast.Value) (ast.Name, error) {
	if name, ok := value.(ast.NameValue); ok {
		return name.Name, nil
	}
	return "", NewTranslationError(value, "Name")
}

func convertInt(value ast.Value) (int32, error) {
	if name, ok := value.(ast.NameValue); ok {
		if i, err := strconv.ParseInt(string(name.Name), 10, 32); err == nil {
			return int32(i), nil
		}
	}
	return 0, NewTranslationError(value, "Int")
}

func convertBoolean(value ast.Value) (bool, error) {
	if name, ok := value.(ast.NameValue); ok {
		switch name.Name {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, NewTranslationError(value, "Boolean")
}

// List converts an ArrayValue element by element. The first element that fails aborts the
// conversion with that element's error.
func List[T any](elem Converter[T]) Converter[[]T] {
	return ConverterFunc[[]T](func(value ast.Value) ([]T, error) {
		array, ok := value.(ast.ArrayValue)
		if !ok {
			return nil, NewTranslationError(value, "Array")
		}

		result := make([]T, 0, len(array.Values))
		for _, v := range array.Values {
			r, err := elem.Convert(v)
			if err != nil {
				return nil, err
			}
			result = append(result, r)
		}
		return result, nil
	})
}

// Nullable yields nil for NullValue and otherwise delegates to elem.
func Nullable[T any](elem Converter[T]) Converter[*T] {
	return ConverterFunc[*T](func(value ast.Value) (*T, error) {
		if _, ok := value.(ast.NullValue); ok {
			return nil, nil
		}

		r, err := elem.Convert(value)
		if err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// Arg looks up the first argument named name on field and converts it. A missing argument is a
// translation error.
func Arg[T any](field *ast.Field, name ast.Name, conv Converter[T]) (T, error) {
	v, ok := field.FindArg(name)
	if !ok {
		var zero T
		return zero, missingArgError(field, name)
	}
	return conv.Convert(v)
}

// OptionalArg is like Arg but treats a missing argument like null.
func OptionalArg[T any](field *ast.Field, name ast.Name, conv Converter[T]) (*T, error) {
	v, ok := field.FindArg(name)
	if !ok {
		return nil, nil
	}
	return Nullable(conv).Convert(v)
}

func missingArgError(field *ast.Field, name ast.Name) error {
	message := fmt.Sprintf(`Field "%s" is missing argument "%s".`, field.Name, name)
	if len(name) == 0 {
		message = fmt.Sprintf(`Field "%s" is missing its positional argument.`, field.Name)
	}

	args := []interface{}{graphql.ErrKindTranslation}
	if field.Position.IsValid() {
		args = append(args, graphql.ErrorLocationOf(field.Position))
	}
	return graphql.NewError(message, args...)
}
