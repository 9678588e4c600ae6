// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package invoke

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

const nullPayload = "null"

// FunctionError is the in-band error body of an unhandled invocation failure.
type FunctionError struct {
	ErrorMessage string   `json:"errorMessage"`
	ErrorType    string   `json:"errorType"`
	StackTrace   []string `json:"stackTrace"`
}

// Response is the outcome of one invocation. Exactly one of Payload and
// Error is meaningful.
type Response struct {
	Payload []byte
	Error   *FunctionError
}

func NewSuccessResponse(payload []byte) *Response {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		payload = []byte(nullPayload)
	}
	return &Response{Payload: payload}
}

// NewErrorResponse captures v, an error or any recovered panic value, with
// the given stack trace.
func NewErrorResponse(v interface{}, stackTrace []string) *Response {
	message := ""
	if err, ok := v.(error); ok {
		message = err.Error()
	} else if v != nil {
		message = fmt.Sprint(v)
	}
	if stackTrace == nil {
		stackTrace = []string{}
	}
	return &Response{Error: &FunctionError{
		ErrorMessage: message,
		ErrorType:    errorTypeOf(v),
		StackTrace:   stackTrace,
	}}
}

func (r *Response) IsError() bool {
	return r.Error != nil
}

// Body returns the wire body: the payload, or the compact JSON error document.
func (r *Response) Body() ([]byte, error) {
	if !r.IsError() {
		return r.Payload, nil
	}

	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.Error); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Write sends the response. Errors are reported with status 200 and the
// X-Amz-Function-Error header, as the Lambda invoke API does.
func (r *Response) Write(w http.ResponseWriter) error {
	body, err := r.Body()
	if err != nil {
		return err
	}

	w.Header().Set(ContentTypeHeader, jsonContentType)
	if r.IsError() {
		w.Header().Set(FunctionErrorHeader, FunctionErrorUnhandled)
	}
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(body)
	return err
}
