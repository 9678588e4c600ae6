// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package invoke

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

// InvocationContext describes the emulated function to the callable. It is
// rebuilt for every request from fixed defaults; only AwsRequestID varies.
type InvocationContext struct {
	FunctionName       string `json:"functionName"`
	FunctionVersion    string `json:"functionVersion"`
	MemoryLimitInMB    int    `json:"memoryLimitInMB"`
	InvokedFunctionArn string `json:"invokedFunctionArn"`
	AwsRequestID       string `json:"awsRequestId"`
}

func NewInvocationContext(identifier, requestID string) *InvocationContext {
	return &InvocationContext{
		FunctionName:       identifier,
		FunctionVersion:    DefaultFunctionVersion,
		MemoryLimitInMB:    DefaultMemoryLimitInMB,
		InvokedFunctionArn: fmt.Sprintf("arn:aws:lambda:%s:%s:function:%s", DefaultRegion, DefaultAccountID, identifier),
		AwsRequestID:       requestID,
	}
}

type contextKey struct{}

// NewContext returns a child of parent carrying ic. The request id and ARN are
// also exposed through lambdacontext so that handlers written against
// aws-lambda-go find them where they expect.
func NewContext(parent context.Context, ic *InvocationContext) context.Context {
	ctx := context.WithValue(parent, contextKey{}, ic)
	return lambdacontext.NewContext(ctx, &lambdacontext.LambdaContext{
		AwsRequestID:       ic.AwsRequestID,
		InvokedFunctionArn: ic.InvokedFunctionArn,
	})
}

func InvocationContextFromContext(ctx context.Context) (*InvocationContext, bool) {
	ic, ok := ctx.Value(contextKey{}).(*InvocationContext)
	return ic, ok
}
