// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import "github.com/bytecodealliance/wasmtime-go/v25"

// MockValidator is a mock implementation of runtime.ModuleValidator for testing
type MockValidator struct {
	ValidateFunc func(*wasmtime.Module) error

	// Calls is the number of modules validated
	Calls int
}

// NewMockValidator returns a MockValidator accepting every module
func NewMockValidator() *MockValidator {
	return &MockValidator{
		ValidateFunc: func(*wasmtime.Module) error { return nil },
	}
}

// NewRejectingValidator returns a MockValidator failing every module with err
func NewRejectingValidator(err error) *MockValidator {
	return &MockValidator{
		ValidateFunc: func(*wasmtime.Module) error { return err },
	}
}

func (m *MockValidator) Validate(mod *wasmtime.Module) error {
	m.Calls++
	return m.ValidateFunc(mod)
}
