// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package invoke

import (
	"fmt"
	"runtime"
	"strings"
)

const maxStackFrames = 32

// callerStack renders the stack of the calling goroutine, skipping skip
// frames above the caller of callerStack. Frames inside the Go runtime are
// dropped; when called from a deferred recover they still include the frames
// that panicked.
func callerStack(skip int) []string {
	pcs := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip+2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	trace := []string{}
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			trace = append(trace, formatFrame(frame))
		}
		if !more {
			break
		}
	}
	return trace
}

func formatFrame(frame runtime.Frame) string {
	return fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function)
}
