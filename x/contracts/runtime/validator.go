// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"errors"
	"fmt"

	"github.com/bytecodealliance/wasmtime-go/v25"
)

var (
	// ErrInvalidModule indicates that a WebAssembly module is invalid
	ErrInvalidModule = errors.New("invalid module")
	// ErrResourceLimitExceeded indicates that a resource limit was exceeded
	ErrResourceLimitExceeded = errors.New("resource limit exceeded")
	// ErrInvalidInstruction indicates that an instruction has no cost under
	// the active rules
	ErrInvalidInstruction = errors.New("invalid instruction")
)

// Validation rule names reported in ValidationError.Rule.
const (
	RuleInstructionCost = "instruction-cost"
	RuleBrTableSize     = "br-table-size"
	RuleLocals          = "locals"
	RuleResourceLimits  = "resource-limits"
	RuleParse           = "parse"
)

// ValidationError represents an error that occurs during WebAssembly validation
type ValidationError struct {
	Message string // General error message
	Rule    string // Optional: specific validation rule that failed
	Cause   error  // Optional: underlying error
}

func (e *ValidationError) Error() string {
	if e.Rule != "" {
		if e.Cause != nil {
			return fmt.Sprintf("validation failed for rule %s: %s: %v", e.Rule, e.Message, e.Cause)
		}
		return fmt.Sprintf("validation failed for rule %s: %s", e.Rule, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new ValidationError with an optional rule name
func NewValidationError(msg string, rule string, err error) error {
	return &ValidationError{
		Message: msg,
		Rule:    rule,
		Cause:   err,
	}
}

// ModuleValidator checks a compiled module against the structural limits of
// a schedule before it is instrumented.
type ModuleValidator interface {
	Validate(mod *wasmtime.Module) error
}

// ValidateModule compiles bytes with engine and runs every validator on the
// result.
func ValidateModule(engine *wasmtime.Engine, bytes []byte, validators ...ModuleValidator) error {
	mod, err := wasmtime.NewModule(engine, bytes)
	if err != nil {
		return NewValidationError("failed to parse module", RuleParse, fmt.Errorf("%w: %w", ErrInvalidModule, err))
	}
	for _, v := range validators {
		if err := v.Validate(mod); err != nil {
			return err
		}
	}
	return nil
}
