// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package emulator

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/aws/stepfunctions-lambda-emulator/lambda/invoke"
	"github.com/aws/stepfunctions-lambda-emulator/lambda/logging"
)

type HTTPHandler struct {
	router         *chi.Mux
	dispatcher     *invoke.Dispatcher
	platformLogger logging.PlatformLogger
}

// NewHTTPHandler serves the Lambda invoke API for functions known to
// resolver. platformLogger may be nil.
func NewHTTPHandler(resolver invoke.Resolver, platformLogger logging.PlatformLogger) *HTTPHandler {
	if platformLogger == nil {
		platformLogger = logging.NoOpPlatformLogger()
	}

	h := &HTTPHandler{
		dispatcher:     invoke.NewDispatcher(resolver),
		platformLogger: platformLogger,
	}

	router := chi.NewRouter()
	router.Use(accessLog)
	router.Post(invoke.Route, h.invokeFunction)
	router.NotFound(h.unrecognizedPath)
	router.MethodNotAllowed(h.unrecognizedPath)
	h.router = router

	return h
}

func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *HTTPHandler) invokeFunction(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, invoke.FunctionIdentifierParam)

	invokeReq, err := invoke.NewInvokeRequest(r, identifier)
	if err != nil {
		// The caller broke the framing contract, nothing sensible can be
		// answered on this connection.
		logging.Error(r.Context(), "dropping connection", "function", identifier, "err", err)
		panic(http.ErrAbortHandler)
	}

	ctx := logging.WithRequestID(r.Context(), invokeReq.RequestID)
	logging.Debug(ctx, "invoke received", "function", identifier, "framing", invokeReq.Framing.String(), "bytes", len(invokeReq.RawBody))

	h.platformLogger.LogStart(invokeReq.RequestID, invoke.DefaultFunctionVersion)
	start := time.Now()
	resp := h.dispatcher.Dispatch(ctx, invokeReq)
	h.platformLogger.LogEnd(invokeReq.RequestID)
	h.platformLogger.LogReport(invokeReq.RequestID, time.Since(start), invoke.DefaultMemoryLimitInMB)

	h.respond(ctx, w, resp)
}

func (h *HTTPHandler) unrecognizedPath(w http.ResponseWriter, r *http.Request) {
	uri := r.RequestURI
	if uri == "" {
		uri = r.URL.RequestURI()
	}
	logging.Warn(r.Context(), "unrecognized path", "method", r.Method, "uri", uri)
	h.respond(r.Context(), w, invoke.NewRouteErrorResponse(uri))
}

func (h *HTTPHandler) respond(ctx context.Context, w http.ResponseWriter, resp *invoke.Response) {
	if resp.IsError() {
		logging.Info(ctx, "invoke failed", "errorType", resp.Error.ErrorType, "errorMessage", resp.Error.ErrorMessage)
	}
	if err := resp.Write(w); err != nil {
		logging.Error(ctx, "could not write invoke response", "err", err)
	}
}
