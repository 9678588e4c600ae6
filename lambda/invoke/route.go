// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package invoke

import (
	"github.com/aws/stepfunctions-lambda-emulator/lambda/registry"
)

// FunctionIdentifierParam is the route parameter carrying the function identifier.
const FunctionIdentifierParam = "functionIdentifier"

// Route is the only path served by the emulator, in chi pattern syntax.
const Route = "/2015-03-31/functions/{" + FunctionIdentifierParam + ":" + registry.IdentifierPattern + "}/invocations"

// Path returns the invoke path for identifier.
func Path(identifier string) string {
	return "/2015-03-31/functions/" + identifier + "/invocations"
}

// NewRouteError is raised for any request that does not match Route. uri is
// the request target exactly as received.
func NewRouteError(uri string) error {
	return NewException("Unrecognized path: %s", uri)
}

// NewRouteErrorResponse is the response for a request that does not match
// Route.
func NewRouteErrorResponse(uri string) *Response {
	return NewErrorResponse(NewRouteError(uri), callerStack(0))
}
