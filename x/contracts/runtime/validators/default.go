// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validators

import (
	"fmt"

	"github.com/bytecodealliance/wasmtime-go/v25"

	"github.com/ava-labs/wasm-schedule/x/contracts/runtime"
	"github.com/ava-labs/wasm-schedule/x/contracts/schedule"
)

var _ runtime.ModuleValidator = (*LimitsValidator)(nil)

// LimitsValidator checks the imports and exports of a module against
// resource limits. Items that are neither imported nor exported are not
// visible to it and are left to the instrumentor.
type LimitsValidator struct {
	limits runtime.ResourceLimits
}

// NewLimitsValidator creates a LimitsValidator enforcing limits
func NewLimitsValidator(limits runtime.ResourceLimits) *LimitsValidator {
	return &LimitsValidator{limits: limits}
}

// Default returns the validators for code deployed under s with determinism d
func Default(s *schedule.Schedule, d runtime.Determinism) []runtime.ModuleValidator {
	validators := []runtime.ModuleValidator{
		NewLimitsValidator(runtime.NewResourceLimits(s.Limits)),
	}
	if d == runtime.Enforced {
		validators = append(validators, NewFloatingPointValidator())
	}
	return validators
}

// Validate implements runtime.ModuleValidator
func (v *LimitsValidator) Validate(mod *wasmtime.Module) error {
	types := externTypes(mod)

	var globalCount uint32
	for _, et := range types {
		if ft := et.typ.FuncType(); ft != nil {
			if params := uint32(len(ft.Params())); params > v.limits.MaxParameters {
				return limitError(fmt.Sprintf("%s has %d parameters, limit is %d", et.name, params, v.limits.MaxParameters))
			}
		}
		if et.typ.GlobalType() != nil {
			globalCount++
		}
	}
	if globalCount > v.limits.MaxGlobals {
		return limitError(fmt.Sprintf("global count %d exceeds limit %d", globalCount, v.limits.MaxGlobals))
	}

	for _, et := range types {
		if memType := et.typ.MemoryType(); memType != nil {
			if minPages := uint64(memType.Minimum()); minPages > uint64(v.limits.MaxMemoryPages) {
				return limitError(fmt.Sprintf("minimum memory pages %d of %s exceeds limit %d", minPages, et.name, v.limits.MaxMemoryPages))
			}
			if ok, maxVal := memType.Maximum(); ok && uint64(maxVal) > uint64(v.limits.MaxMemoryPages) {
				return limitError(fmt.Sprintf("maximum memory pages %d of %s exceeds limit %d", maxVal, et.name, v.limits.MaxMemoryPages))
			}
		}
		if tableType := et.typ.TableType(); tableType != nil {
			if minSize := uint64(tableType.Minimum()); minSize > uint64(v.limits.MaxTableSize) {
				return limitError(fmt.Sprintf("minimum table size %d of %s exceeds limit %d", minSize, et.name, v.limits.MaxTableSize))
			}
			if ok, maxVal := tableType.Maximum(); ok && uint64(maxVal) > uint64(v.limits.MaxTableSize) {
				return limitError(fmt.Sprintf("maximum table size %d of %s exceeds limit %d", maxVal, et.name, v.limits.MaxTableSize))
			}
		}
	}

	return nil
}

func limitError(msg string) error {
	return runtime.NewValidationError(msg, runtime.RuleResourceLimits, runtime.ErrResourceLimitExceeded)
}

type namedExternType struct {
	name string
	typ  *wasmtime.ExternType
}

// externTypes lists the imports and exports of mod, named for error messages
func externTypes(mod *wasmtime.Module) []namedExternType {
	imports := mod.Imports()
	exports := mod.Exports()
	types := make([]namedExternType, 0, len(imports)+len(exports))
	for _, imp := range imports {
		importName := ""
		if name := imp.Name(); name != nil {
			importName = *name
		}
		types = append(types, namedExternType{
			name: fmt.Sprintf("import %s::%s", imp.Module(), importName),
			typ:  imp.Type(),
		})
	}
	for _, exp := range exports {
		types = append(types, namedExternType{
			name: "export " + exp.Name(),
			typ:  exp.Type(),
		})
	}
	return types
}
