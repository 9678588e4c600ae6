// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package invoke

import (
	lambda "github.com/aws/aws-lambda-go/lambda"
	mock "github.com/stretchr/testify/mock"
)

type MockResolver struct {
	mock.Mock
}

func (_m *MockResolver) Resolve(identifier string) (lambda.Handler, error) {
	ret := _m.Called(identifier)

	if len(ret) == 0 {
		panic("no return value specified for Resolve")
	}

	var r0 lambda.Handler
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (lambda.Handler, error)); ok {
		return rf(identifier)
	}
	if rf, ok := ret.Get(0).(func(string) lambda.Handler); ok {
		r0 = rf(identifier)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(lambda.Handler)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(identifier)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func NewMockResolver(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockResolver {
	mock := &MockResolver{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
