// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func add(event map[string]int) (map[string]int, error) {
	return map[string]int{"answer": event["a"] + event["b"]}, nil
}

type staticHandler []byte

func (h staticHandler) Invoke(_ context.Context, _ []byte) ([]byte, error) {
	return h, nil
}

func TestRegisterAndResolve(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("pkg.mod.add", add))

	h, err := r.Resolve("pkg.mod.add")
	require.NoError(t, err)

	out, err := h.Invoke(context.Background(), []byte(`{"a":3,"b":4}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":7}`, string(out))
}

func TestRegisterHandlerInterface(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("static.value", staticHandler(`"v"`)))

	h, err := r.Resolve("static.value")
	require.NoError(t, err)

	out, err := h.Invoke(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, `"v"`, string(out))
}

func TestRegisterRejectsInvalidIdentifiers(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
	}{
		{name: "empty", identifier: ""},
		{name: "no_separator", identifier: "add"},
		{name: "illegal_character", identifier: "pkg.mod-x.add"},
		{name: "slash", identifier: "pkg/mod.add"},
		{name: "empty_member", identifier: "pkg.mod."},
		{name: "empty_module", identifier: ".add"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Register(tt.identifier, add)

			var invalid *InvalidIdentifierError
			require.True(t, errors.As(err, &invalid), "got %v", err)
			assert.Equal(t, tt.identifier, invalid.Identifier)
		})
	}
}

func TestRegisterRejectsNonCallables(t *testing.T) {
	r := New()
	assert.True(t, errors.Is(r.Register("pkg.mod.value", 42), ErrNotCallable))
	assert.True(t, errors.Is(r.Register("pkg.mod.nothing", nil), ErrNotCallable))
	assert.Empty(t, r.Identifiers())
}

func TestRegisterRejectsUnsupportedSignatures(t *testing.T) {
	tests := []struct {
		name    string
		handler interface{}
	}{
		{name: "three_arguments", handler: func(context.Context, int, int) error { return nil }},
		{name: "two_arguments_without_context", handler: func(int, int) error { return nil }},
		{name: "result_without_error", handler: func(int) int { return 0 }},
		{name: "three_results", handler: func() (int, int, error) { return 0, 0, nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Register("pkg.mod.fn", tt.handler)
			assert.True(t, errors.Is(err, ErrNotCallable), "got %v", err)
		})
	}
}

func TestRegisterTwice(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("pkg.mod.add", add))

	err := r.Register("pkg.mod.add", add)
	assert.True(t, errors.Is(err, ErrAlreadyRegistered))
}

func TestMustRegisterPanics(t *testing.T) {
	r := New()
	assert.Panics(t, func() { r.MustRegister("nodot", add) })
	assert.NotPanics(t, func() { r.MustRegister("pkg.mod.add", add) })
}

func TestResolveFailures(t *testing.T) {
	r := New()
	r.MustRegister("pkg.mod.add", add)

	t.Run("no_separator", func(t *testing.T) {
		_, err := r.Resolve("add")
		var invalid *InvalidIdentifierError
		assert.True(t, errors.As(err, &invalid))
	})

	t.Run("unknown_module", func(t *testing.T) {
		_, err := r.Resolve("pkg.other.add")
		var notFound *ModuleNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "pkg.other", notFound.Module)
		assert.Equal(t, "No module named 'pkg.other'", err.Error())
	})

	t.Run("unknown_member", func(t *testing.T) {
		_, err := r.Resolve("pkg.mod.sub")
		var notFound *MemberNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "module 'pkg.mod' has no attribute 'sub'", err.Error())
	})
}

func TestSplitIdentifier(t *testing.T) {
	module, member, err := SplitIdentifier("pkg.mod.add")
	require.NoError(t, err)
	assert.Equal(t, "pkg.mod", module)
	assert.Equal(t, "add", member)

	_, _, err = SplitIdentifier("add")
	assert.Error(t, err)
}

func TestIdentifiersSorted(t *testing.T) {
	r := New()
	r.MustRegister("b.two", add)
	r.MustRegister("a.one", add)
	r.MustRegister("b.one", add)

	assert.Equal(t, []string{"a.one", "b.one", "b.two"}, r.Identifiers())
}

func TestConcurrentRegisterAndResolve(t *testing.T) {
	r := New()
	r.MustRegister("pkg.mod.add", add)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, r.Register(fmt.Sprintf("pkg.gen.fn%d", i), add))
		}(i)
		go func() {
			defer wg.Done()
			_, err := r.Resolve("pkg.mod.add")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, r.Identifiers(), 33)
}
