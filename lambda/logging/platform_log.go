// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"io"
	"log"
	"math"
	"time"
)

// PlatformLogger writes the START, END and REPORT lines that frame an
// invocation in a function's log stream.
type PlatformLogger interface {
	LogStart(requestID, functionVersion string)
	LogEnd(requestID string)
	LogReport(requestID string, duration time.Duration, memorySizeMB int)
}

// FormattedPlatformLogger formats platform lines the way Lambda does.
type FormattedPlatformLogger struct {
	logger *log.Logger
}

// NewPlatformLogger is a logger for logging Platform log lines into output.
func NewPlatformLogger(output io.Writer) *FormattedPlatformLogger {
	prefix, flags := "", 0
	return &FormattedPlatformLogger{
		logger: log.New(output, prefix, flags),
	}
}

func (l *FormattedPlatformLogger) LogStart(requestID, functionVersion string) {
	l.logger.Printf("START RequestId: %s Version: %s\n", requestID, functionVersion)
}

func (l *FormattedPlatformLogger) LogEnd(requestID string) {
	l.logger.Printf("END RequestId: %s\n", requestID)
}

// LogReport reports used memory equal to the memory size, there is no
// meaningful way to measure it for an in-process callable.
func (l *FormattedPlatformLogger) LogReport(requestID string, duration time.Duration, memorySizeMB int) {
	durationMs := float64(duration.Nanoseconds()) / float64(time.Millisecond)
	l.logger.Printf(
		"REPORT RequestId: %s\tDuration: %.2f ms\tBilled Duration: %.f ms\tMemory Size: %d MB\tMax Memory Used: %d MB\t\n",
		requestID, durationMs, math.Ceil(durationMs), memorySizeMB, memorySizeMB)
}

type noOpPlatformLogger struct{}

func (noOpPlatformLogger) LogStart(string, string)              {}
func (noOpPlatformLogger) LogEnd(string)                        {}
func (noOpPlatformLogger) LogReport(string, time.Duration, int) {}

// NoOpPlatformLogger discards platform lines.
func NoOpPlatformLogger() PlatformLogger {
	return noOpPlatformLogger{}
}

var _ PlatformLogger = (*FormattedPlatformLogger)(nil)
