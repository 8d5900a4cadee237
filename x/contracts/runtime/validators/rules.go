// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validators

import (
	"fmt"

	"github.com/bytecodealliance/wasmtime-go/v25"

	"github.com/ava-labs/wasm-schedule/x/contracts/runtime"
)

// RuleFloatingPoint is the rule reported for floating point signatures.
const RuleFloatingPoint = "floating-point"

var _ runtime.ModuleValidator = (*FloatingPointValidator)(nil)

// FloatingPointValidator rejects modules whose imported or exported functions
// take or return floats. Floating point instructions have no cost under
// enforced determinism, so such modules could never be instrumented.
type FloatingPointValidator struct{}

// NewFloatingPointValidator returns a FloatingPointValidator
func NewFloatingPointValidator() *FloatingPointValidator {
	return &FloatingPointValidator{}
}

// Validate implements runtime.ModuleValidator
func (*FloatingPointValidator) Validate(mod *wasmtime.Module) error {
	for _, et := range externTypes(mod) {
		ft := et.typ.FuncType()
		if ft == nil {
			continue
		}
		for _, param := range ft.Params() {
			if isFloat(param.Kind()) {
				return runtime.NewValidationError(
					fmt.Sprintf("invalid parameter type in %s", et.name),
					RuleFloatingPoint,
					runtime.ErrInvalidModule,
				)
			}
		}
		for _, result := range ft.Results() {
			if isFloat(result.Kind()) {
				return runtime.NewValidationError(
					fmt.Sprintf("invalid result type in %s", et.name),
					RuleFloatingPoint,
					runtime.ErrInvalidModule,
				)
			}
		}
	}
	return nil
}

func isFloat(kind wasmtime.ValKind) bool {
	return kind == wasmtime.KindF32 || kind == wasmtime.KindF64
}
