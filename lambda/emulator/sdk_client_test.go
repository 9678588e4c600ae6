// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package emulator

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	awslambda "github.com/aws/aws-sdk-go/service/lambda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aws/stepfunctions-lambda-emulator/lambda/invoke"
)

func newLambdaClient(t *testing.T, s *Server) *awslambda.Lambda {
	t.Helper()
	sess, err := session.NewSession(&aws.Config{
		Endpoint:    aws.String(s.URL()),
		Region:      aws.String(invoke.DefaultRegion),
		Credentials: credentials.NewStaticCredentials("AKIDEXAMPLE", "secret", ""),
		MaxRetries:  aws.Int(0),
	})
	require.NoError(t, err)
	return awslambda.New(sess)
}

func TestLambdaClientInvoke(t *testing.T) {
	client := newLambdaClient(t, startTestServer(t))

	out, err := client.Invoke(&awslambda.InvokeInput{
		FunctionName: aws.String("pkg.mod.add"),
		Payload:      []byte(`{"a":3,"b":4}`),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(200), aws.Int64Value(out.StatusCode))
	assert.Nil(t, out.FunctionError)
	assert.Equal(t, "7", string(out.Payload))
}

func TestLambdaClientInvokeUnhandledError(t *testing.T) {
	client := newLambdaClient(t, startTestServer(t))

	out, err := client.Invoke(&awslambda.InvokeInput{
		FunctionName: aws.String("pkg.mod.fail"),
		Payload:      []byte(`{}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "Unhandled", aws.StringValue(out.FunctionError))

	var fnErr invoke.FunctionError
	require.NoError(t, json.Unmarshal(out.Payload, &fnErr))
	assert.Equal(t, "qq qq qq", fnErr.ErrorMessage)
	assert.Equal(t, "Exception", fnErr.ErrorType)
}

func TestLambdaClientInvokeUnknownFunction(t *testing.T) {
	client := newLambdaClient(t, startTestServer(t))

	out, err := client.Invoke(&awslambda.InvokeInput{
		FunctionName: aws.String("pkg.mod.missing"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Unhandled", aws.StringValue(out.FunctionError))

	var fnErr invoke.FunctionError
	require.NoError(t, json.Unmarshal(out.Payload, &fnErr))
	assert.Equal(t, "MemberNotFoundError", fnErr.ErrorType)
}
