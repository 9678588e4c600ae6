// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package invoke

import (
	"context"
	"encoding/json"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/aws/stepfunctions-lambda-emulator/lambda/logging"
	"github.com/aws/stepfunctions-lambda-emulator/lambda/registry"
)

// Resolver finds the handler registered under a function identifier.
// *registry.Registry implements it.
type Resolver interface {
	Resolve(identifier string) (lambda.Handler, error)
}

type Dispatcher struct {
	resolver Resolver
}

func NewDispatcher(resolver Resolver) *Dispatcher {
	return &Dispatcher{resolver: resolver}
}

// Dispatch decodes, resolves and runs req. It always produces a Response:
// errors returned by any step and panics raised by the callable become an
// unhandled function error.
func (d *Dispatcher) Dispatch(ctx context.Context, req *InvokeRequest) (resp *Response) {
	defer func() {
		if v := recover(); v != nil {
			resp = NewErrorResponse(v, callerStack(1))
			logging.Warn(ctx, "function panicked", "errorType", resp.Error.ErrorType)
		}
	}()

	payload, err := d.invoke(ctx, req)
	if err != nil {
		resp = NewErrorResponse(err, callerStack(0))
		logging.Debug(ctx, "function failed", "errorType", resp.Error.ErrorType, "err", err)
		return resp
	}
	return NewSuccessResponse(payload)
}

func (d *Dispatcher) invoke(ctx context.Context, req *InvokeRequest) ([]byte, error) {
	if _, _, err := registry.SplitIdentifier(req.FunctionIdentifier); err != nil {
		return nil, err
	}

	ic := NewInvocationContext(req.FunctionIdentifier, req.RequestID)

	if _, err := DecodeEvent(req.RawBody); err != nil {
		return nil, err
	}

	handler, err := d.resolver.Resolve(req.FunctionIdentifier)
	if err != nil {
		return nil, err
	}

	logging.Debug(ctx, "invoking function", "function", req.FunctionIdentifier, "framing", req.Framing.String())
	return handler.Invoke(NewContext(ctx, ic), req.RawBody)
}

// DecodeEvent decodes body as UTF-8 JSON into a value of arbitrary shape.
func DecodeEvent(body []byte) (interface{}, error) {
	if !utf8.Valid(body) {
		return nil, &InvalidUTF8Error{Offset: invalidUTF8Offset(body)}
	}

	var event interface{}
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, err
	}
	return event, nil
}

func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
