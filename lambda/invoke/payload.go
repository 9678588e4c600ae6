// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package invoke

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// FramingMode is how the caller delimited the request body.
type FramingMode int

const (
	// FramingContentLength is used by SDK clients.
	FramingContentLength FramingMode = iota
	// FramingChunked is used by Step Functions Local.
	FramingChunked
)

func (m FramingMode) String() string {
	switch m {
	case FramingContentLength:
		return "content-length"
	case FramingChunked:
		return "chunked"
	}
	return fmt.Sprintf("FramingMode(%d)", int(m))
}

// emptyPayload stands in for a zero length body so that it still decodes as JSON.
const emptyPayload = "{}"

type InvokeRequest struct {
	FunctionIdentifier string
	RawBody            []byte
	Framing            FramingMode
	RequestID          string
}

// NewInvokeRequest reads the full body of r. The returned error is either
// ErrMissingFraming or a *FramingError; both mean the connection should be
// dropped rather than answered.
func NewInvokeRequest(r *http.Request, identifier string) (*InvokeRequest, error) {
	framing, body, err := ReadPayload(r)
	if err != nil {
		return nil, err
	}

	requestID := r.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	return &InvokeRequest{
		FunctionIdentifier: identifier,
		RawBody:            body,
		Framing:            framing,
		RequestID:          requestID,
	}, nil
}

// ReadPayload returns the request body for both framings accepted by the
// invoke API. net/http has already removed the chunk size lines and CRLF
// terminators by the time the body is read, so a chunked body is the plain
// concatenation of its chunks.
func ReadPayload(r *http.Request) (FramingMode, []byte, error) {
	if isChunked(r.TransferEncoding) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return FramingChunked, nil, &FramingError{Framing: FramingChunked, Err: err}
		}
		if len(body) == 0 {
			body = []byte(emptyPayload)
		}
		return FramingChunked, body, nil
	}

	_, declared := r.Header[ContentLengthHeader]
	if !declared && r.ContentLength <= 0 {
		return FramingContentLength, nil, ErrMissingFraming
	}

	if r.ContentLength <= 0 {
		return FramingContentLength, []byte(emptyPayload), nil
	}

	body := make([]byte, r.ContentLength)
	if _, err := io.ReadFull(r.Body, body); err != nil {
		return FramingContentLength, nil, &FramingError{Framing: FramingContentLength, Err: err}
	}
	return FramingContentLength, body, nil
}

func isChunked(transferEncoding []string) bool {
	for _, te := range transferEncoding {
		if strings.EqualFold(te, "chunked") {
			return true
		}
	}
	return false
}
