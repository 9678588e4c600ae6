// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package emulator

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/aws/stepfunctions-lambda-emulator/lambda/invoke"
)

// accessLog records one line per request. Invocation failures are answered
// with 200, so the function error header is logged alongside the status.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		entry := log.WithFields(log.Fields{
			"method":   r.Method,
			"uri":      r.RequestURI,
			"status":   status,
			"bytes":    ww.BytesWritten(),
			"duration": time.Since(start),
		})
		if fnErr := ww.Header().Get(invoke.FunctionErrorHeader); fnErr != "" {
			entry = entry.WithField("functionError", fnErr)
		}

		if status/100 != 2 {
			entry.Warn("emulator request")
		} else {
			entry.Debug("emulator request")
		}
	})
}
