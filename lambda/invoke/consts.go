// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package invoke

const (
	ContentTypeHeader      = "Content-Type"
	ContentLengthHeader    = "Content-Length"
	FunctionErrorHeader    = "X-Amz-Function-Error"
	RequestIDHeader        = "X-Amzn-RequestId"
	FunctionErrorUnhandled = "Unhandled"

	jsonContentType = "application/json"
)

const (
	DefaultFunctionVersion = "$LATEST"
	DefaultMemoryLimitInMB = 128
	DefaultRegion          = "us-east-1"
	DefaultAccountID       = "123456789012"
)
