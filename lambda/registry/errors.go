// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyRegistered = errors.New("function already registered")
	ErrNotCallable       = errors.New("handler is not callable")
)

// InvalidIdentifierError is returned for identifiers that cannot name a
// registered function.
type InvalidIdentifierError struct {
	Identifier string
	Reason     string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid function identifier %q: %s", e.Identifier, e.Reason)
}

type ModuleNotFoundError struct {
	Module string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("No module named '%s'", e.Module)
}

type MemberNotFoundError struct {
	Module string
	Member string
}

func (e *MemberNotFoundError) Error() string {
	return fmt.Sprintf("module '%s' has no attribute '%s'", e.Module, e.Member)
}
