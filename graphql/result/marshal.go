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

package result

import (
	"errors"
	"io"

	"github.com/botobag/qlcore/graphql"

	jsoniter "github.com/json-iterator/go"
)

var (
	compactConfig  = jsoniter.Config{EscapeHTML: true}.Froze()
	indentedConfig = jsoniter.Config{EscapeHTML: true, IndentionStep: 2}.Froze()
)

// Marshal returns the compact JSON encoding of v.
func Marshal(v Value) ([]byte, error) {
	return marshal(compactConfig, v)
}

// MarshalIndent is like Marshal but indents nested values by two spaces.
func MarshalIndent(v Value) ([]byte, error) {
	return marshal(indentedConfig, v)
}

func marshal(config jsoniter.API, v Value) ([]byte, error) {
	stream := config.BorrowStream(nil)
	defer config.ReturnStream(stream)

	WriteTo(stream, v)
	if stream.Error != nil {
		return nil, stream.Error
	}

	// Copy the buffer since the stream is returned to the pool.
	buf := stream.Buffer()
	data := make([]byte, len(buf))
	copy(data, buf)
	return data, nil
}

// Markers pushed onto the work stack of WriteTo.
type writeTask uint8

const (
	objectEndTask writeTask = iota + 1
	arrayEndTask
	moreTask
)

// fieldKey is pushed onto the work stack to write the key of an object field.
type fieldKey string

// WriteTo encodes v to the stream. The tree is walked with an explicit stack so deeply nested
// results do not grow the goroutine stack.
func WriteTo(stream *jsoniter.Stream, v Value) {
	stack := []interface{}{v}

	for len(stack) > 0 {
		var task interface{}
		task, stack = stack[len(stack)-1], stack[:len(stack)-1]

		switch task := task.(type) {
		case writeTask:
			switch task {
			case objectEndTask:
				stream.WriteObjectEnd()
			case arrayEndTask:
				stream.WriteArrayEnd()
			case moreTask:
				stream.WriteMore()
			}

		case fieldKey:
			stream.WriteObjectField(string(task))

		case nil, Null:
			stream.WriteNil()

		case Boolean:
			stream.WriteBool(bool(task))

		case Int:
			stream.WriteInt64(int64(task))

		case Float:
			stream.WriteFloat64(float64(task))

		case String:
			stream.WriteString(string(task))

		case Enum:
			stream.WriteString(string(task))

		case List:
			if len(task) == 0 {
				stream.WriteEmptyArray()
				break
			}

			stream.WriteArrayStart()
			stack = append(stack, arrayEndTask)
			// Push in reverse order so elements pop in order.
			for i := len(task) - 1; i >= 0; i-- {
				stack = append(stack, task[i], moreTask)
			}
			// Pop the moreTask at the top. Don't write "," before first element.
			stack = stack[:len(stack)-1]

		case Object:
			if len(task) == 0 {
				stream.WriteEmptyObject()
				break
			}

			stream.WriteObjectStart()
			stack = append(stack, objectEndTask)
			for i := len(task) - 1; i >= 0; i-- {
				stack = append(stack, task[i].Value, fieldKey(task[i].Key), moreTask)
			}
			// Pop the moreTask at the top. Don't write "," before first field.
			stack = stack[:len(stack)-1]
		}
	}
}

// MarshalJSON implements json.Marshaler.
func (list List) MarshalJSON() ([]byte, error) {
	return Marshal(list)
}

// MarshalJSON implements json.Marshaler.
func (object Object) MarshalJSON() ([]byte, error) {
	return Marshal(object)
}

// Response is the envelope returned to clients: the data produced by execution and the errors
// raised while producing it.
type Response struct {
	// Data is nil if execution did not start.
	Data Value

	Errors []*graphql.Error
}

// NewErrorResponse creates a Response carrying err. An error that is not a *graphql.Error is
// reported by its message.
func NewErrorResponse(err error) Response {
	var e *graphql.Error
	if !errors.As(err, &e) {
		e = &graphql.Error{
			Message: err.Error(),
		}
	}
	return Response{
		Errors: []*graphql.Error{e},
	}
}

func (response *Response) writeTo(stream *jsoniter.Stream) {
	stream.WriteObjectStart()

	// Place "errors" first to make them stand out.
	//
	// See the note for https://graphql.github.io/graphql-spec/June2018/#sec-Response-Format.
	if len(response.Errors) > 0 {
		stream.WriteObjectField("errors")
		stream.WriteArrayStart()
		for i, err := range response.Errors {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteVal(err)
		}
		stream.WriteArrayEnd()
		if response.Data != nil {
			stream.WriteMore()
		}
	}

	if response.Data != nil {
		stream.WriteObjectField("data")
		WriteTo(stream, response.Data)
	}

	stream.WriteObjectEnd()
}

// MarshalJSON implements json.Marshaler.
func (response Response) MarshalJSON() ([]byte, error) {
	stream := compactConfig.BorrowStream(nil)
	defer compactConfig.ReturnStream(stream)

	response.writeTo(stream)
	if stream.Error != nil {
		return nil, stream.Error
	}

	buf := stream.Buffer()
	data := make([]byte, len(buf))
	copy(data, buf)
	return data, nil
}

// MarshalJSONTo writes the JSON encoding of response followed by a newline to w. When indent is
// true, nested values are indented by two spaces.
func (response *Response) MarshalJSONTo(w io.Writer, indent bool) error {
	config := compactConfig
	if indent {
		config = indentedConfig
	}

	stream := jsoniter.NewStream(config, w, 512)
	response.writeTo(stream)
	stream.WriteRaw("\n")
	return stream.Flush()
}
