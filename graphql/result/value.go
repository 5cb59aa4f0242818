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

// Package result defines the value tree produced by executing an operation and its JSON encoding.
package result

import (
	"fmt"
	"math"
	"reflect"
	"sort"
)

// Kind identifies the variant of a Value.
type Kind uint8

// Enumeration of Kind
const (
	NullKind Kind = iota
	BooleanKind
	IntKind
	FloatKind
	StringKind
	EnumKind
	ListKind
	ObjectKind
)

// Value is a node in a result tree. The set of variants is closed.
type Value interface {
	Kind() Kind
	isValue()
}

// Null is the null value.
type Null struct{}

// Boolean is a boolean leaf.
type Boolean bool

// Int is an integer leaf.
type Int int64

// Float is a floating point leaf.
type Float float64

// String is a string leaf.
type String string

// Enum is an enum value leaf; it encodes to JSON like a string.
type Enum string

// List is an ordered sequence of values.
type List []Value

// ObjectField is a single entry of an Object.
type ObjectField struct {
	Key   string
	Value Value
}

// Object is an ordered set of fields. Field order follows the order in which fields were selected
// and is preserved in the JSON encoding.
type Object []ObjectField

var (
	_ Value = Null{}
	_ Value = Boolean(false)
	_ Value = Int(0)
	_ Value = Float(0)
	_ Value = String("")
	_ Value = Enum("")
	_ Value = List(nil)
	_ Value = Object(nil)
)

// Kind implements Value.
func (Null) Kind() Kind { return NullKind }

// Kind implements Value.
func (Boolean) Kind() Kind { return BooleanKind }

// Kind implements Value.
func (Int) Kind() Kind { return IntKind }

// Kind implements Value.
func (Float) Kind() Kind { return FloatKind }

// Kind implements Value.
func (String) Kind() Kind { return StringKind }

// Kind implements Value.
func (Enum) Kind() Kind { return EnumKind }

// Kind implements Value.
func (List) Kind() Kind { return ListKind }

// Kind implements Value.
func (Object) Kind() Kind { return ObjectKind }

func (Null) isValue()    {}
func (Boolean) isValue() {}
func (Int) isValue()     {}
func (Float) isValue()   {}
func (String) isValue()  {}
func (Enum) isValue()    {}
func (List) isValue()    {}
func (Object) isValue()  {}

// Field is a shorthand for constructing an ObjectField.
func Field(key string, value Value) ObjectField {
	return ObjectField{
		Key:   key,
		Value: value,
	}
}

// Get returns the value of the first field with the given key.
func (object Object) Get(key string) (Value, bool) {
	for _, field := range object {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// Keys returns the field keys in order.
func (object Object) Keys() []string {
	keys := make([]string, len(object))
	for i, field := range object {
		keys[i] = field.Key
	}
	return keys
}

// FromGo converts plain Go data, as produced by decoding JSON or YAML into interface{}, into a
// Value. Map keys are sorted since Go maps are unordered. A Value passes through unchanged.
func FromGo(v interface{}) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return v, nil
	case bool:
		return Boolean(v), nil
	case string:
		return String(v), nil
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint8:
		return Int(v), nil
	case uint16:
		return Int(v), nil
	case uint32:
		return Int(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows result value", v)
		}
		return Int(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows result value", v)
		}
		return Int(v), nil
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil

	case []interface{}:
		list := make(List, len(v))
		for i, elem := range v {
			value, err := FromGo(elem)
			if err != nil {
				return nil, err
			}
			list[i] = value
		}
		return list, nil

	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		object := make(Object, len(keys))
		for i, key := range keys {
			value, err := FromGo(v[key])
			if err != nil {
				return nil, err
			}
			object[i] = Field(key, value)
		}
		return object, nil
	}

	// Fall back to reflection for typed slices and maps.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]interface{}, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return FromGo(elems)

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		entries := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries[iter.Key().String()] = iter.Value().Interface()
		}
		return FromGo(entries)

	case reflect.Ptr:
		if rv.IsNil() {
			return Null{}, nil
		}
		return FromGo(rv.Elem().Interface())
	}

	return nil, fmt.Errorf("cannot convert %T into a result value", v)
}
