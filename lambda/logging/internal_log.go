// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/sirupsen/logrus"
)

const RequestIDField = "requestId"

type loggerKey int

const (
	ctxLoggerKey loggerKey = iota
)

// SetOutput configures logging output for standard loggers.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
	logrus.SetOutput(w)
}

// SetLogLevel parses level (e.g. "debug", "info") and applies it to the
// standard logrus logger.
func SetLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q, valid levels are %v: %w", level, logrus.AllLevels, err)
	}
	logrus.SetLevel(lvl)
	return nil
}

// WithFields returns a context whose logger carries the given key/value pairs.
func WithFields(ctx context.Context, args ...interface{}) context.Context {
	entry := FromContext(ctx).WithFields(toFields(args))
	return context.WithValue(ctx, ctxLoggerKey, entry)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return WithFields(ctx, RequestIDField, requestID)
}

func Debug(ctx context.Context, msg string, args ...interface{}) {
	FromContext(ctx).WithFields(toFields(args)).Debug(msg)
}

func Info(ctx context.Context, msg string, args ...interface{}) {
	FromContext(ctx).WithFields(toFields(args)).Info(msg)
}

func Warn(ctx context.Context, msg string, args ...interface{}) {
	FromContext(ctx).WithFields(toFields(args)).Warn(msg)
}

func Error(ctx context.Context, msg string, args ...interface{}) {
	FromContext(ctx).WithFields(toFields(args)).Error(msg)
}

func FromContext(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(ctxLoggerKey).(*logrus.Entry); ok {
		return entry
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// toFields pairs up alternating keys and values. A trailing key without a
// value is kept under "!BADKEY", like log/slog does.
func toFields(args []interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || i+1 == len(args) {
			fields["!BADKEY"] = args[i]
			continue
		}
		fields[key] = args[i+1]
	}
	return fields
}
