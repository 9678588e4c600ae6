// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package invoke

import (
	"errors"
	"fmt"
	"reflect"
)

// Exception is a general purpose error. Callables can return or panic with it
// to report a failure whose errorType is "Exception".
type Exception struct {
	Message string
}

func NewException(format string, args ...interface{}) *Exception {
	return &Exception{Message: fmt.Sprintf(format, args...)}
}

func (e *Exception) Error() string {
	return e.Message
}

// ErrMissingFraming means the request announced neither a Content-Length nor
// a chunked Transfer-Encoding.
var ErrMissingFraming = errors.New("request has neither Content-Length nor Transfer-Encoding: chunked")

// FramingError wraps failures to read a framed request body. It is a caller
// bug, not an invocation outcome.
type FramingError struct {
	Framing FramingMode
	Err     error
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("could not read %s request body: %s", e.Framing, e.Err)
}

func (e *FramingError) Unwrap() error {
	return e.Err
}

type InvalidUTF8Error struct {
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("payload is not valid UTF-8: invalid byte at offset %d", e.Offset)
}

// errorTyper lets errors choose the errorType reported to the caller.
type errorTyper interface {
	ErrorType() string
}

// errorTypeOf names v the way aws-lambda-go does: the Go type name with
// pointer indirection removed.
func errorTypeOf(v interface{}) string {
	if typed, ok := v.(errorTyper); ok {
		return typed.ErrorType()
	}
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Ptr {
		return t.Elem().Name()
	}
	return t.Name()
}
