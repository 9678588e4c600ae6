// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package registry maps function identifiers such as "orders.billing.charge"
// to Go callables. The emulator resolves invoke requests against it, so it is
// populated during test setup and only read afterwards.
//
// A callable is either a lambda.Handler or any function accepted by
// lambda.NewHandler from github.com/aws/aws-lambda-go:
//
//	func()
//	func() error
//	func(TIn) error
//	func() (TOut, error)
//	func(TIn) (TOut, error)
//	func(context.Context) error
//	func(context.Context, TIn) error
//	func(context.Context) (TOut, error)
//	func(context.Context, TIn) (TOut, error)
package registry

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/aws/aws-lambda-go/lambda"
)

// Default is the process-wide registry used by the package level helpers.
var Default = New()

type Registry struct {
	mu      sync.RWMutex
	modules map[string]map[string]lambda.Handler
}

func New() *Registry {
	return &Registry{
		modules: map[string]map[string]lambda.Handler{},
	}
}

// Register makes handler resolvable under identifier. Each identifier can be
// registered once.
func (r *Registry) Register(identifier string, handler interface{}) error {
	if !ValidIdentifier(identifier) {
		return &InvalidIdentifierError{Identifier: identifier, Reason: "must match " + IdentifierPattern}
	}

	module, member, err := SplitIdentifier(identifier)
	if err != nil {
		return err
	}
	if module == "" || member == "" {
		return &InvalidIdentifierError{Identifier: identifier, Reason: "module and member must not be empty"}
	}

	h, err := newHandler(handler)
	if err != nil {
		return fmt.Errorf("%s: %w", identifier, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.modules[module]
	if !ok {
		members = map[string]lambda.Handler{}
		r.modules[module] = members
	}
	if _, exists := members[member]; exists {
		return fmt.Errorf("%s: %w", identifier, ErrAlreadyRegistered)
	}
	members[member] = h
	return nil
}

// MustRegister is like Register but panics on error. Intended for init
// functions and test setup.
func (r *Registry) MustRegister(identifier string, handler interface{}) {
	if err := r.Register(identifier, handler); err != nil {
		panic(err)
	}
}

// Resolve looks up the handler registered under identifier.
func (r *Registry) Resolve(identifier string) (lambda.Handler, error) {
	module, member, err := SplitIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.modules[module]
	if !ok {
		return nil, &ModuleNotFoundError{Module: module}
	}
	h, ok := members[member]
	if !ok {
		return nil, &MemberNotFoundError{Module: module, Member: member}
	}
	return h, nil
}

// Identifiers returns every registered identifier in lexical order.
func (r *Registry) Identifiers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for module, members := range r.modules {
		for member := range members {
			ids = append(ids, module+"."+member)
		}
	}
	sort.Strings(ids)
	return ids
}

func Register(identifier string, handler interface{}) error {
	return Default.Register(identifier, handler)
}

func MustRegister(identifier string, handler interface{}) {
	Default.MustRegister(identifier, handler)
}

func newHandler(handler interface{}) (lambda.Handler, error) {
	if h, ok := handler.(lambda.Handler); ok {
		return h, nil
	}
	if handler == nil || reflect.TypeOf(handler).Kind() != reflect.Func {
		return nil, ErrNotCallable
	}
	if err := validateSignature(reflect.TypeOf(handler)); err != nil {
		return nil, err
	}
	return lambda.NewHandler(handler), nil
}

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// validateSignature applies the rules lambda.NewHandler enforces lazily, so a
// bad callable fails at registration instead of on its first invoke.
func validateSignature(fn reflect.Type) error {
	switch fn.NumIn() {
	case 0, 1:
	case 2:
		if !fn.In(0).Implements(contextType) {
			return fmt.Errorf("%w: first of two arguments must be context.Context, got %s", ErrNotCallable, fn.In(0))
		}
	default:
		return fmt.Errorf("%w: takes %d arguments, at most 2 are supported", ErrNotCallable, fn.NumIn())
	}

	switch fn.NumOut() {
	case 0:
	case 1, 2:
		if last := fn.Out(fn.NumOut() - 1); !last.Implements(errorType) {
			return fmt.Errorf("%w: last return value must be error, got %s", ErrNotCallable, last)
		}
	default:
		return fmt.Errorf("%w: returns %d values, at most 2 are supported", ErrNotCallable, fn.NumOut())
	}
	return nil
}
