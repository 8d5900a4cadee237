// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"fmt"

	"github.com/ava-labs/wasm-schedule/x/contracts/schedule"
)

// Function is a function body as handed to the instrumentor.
type Function struct {
	// Locals is the number of declared locals, parameters excluded.
	Locals uint32
	Code   []Instruction
}

// CheckInstructions returns the summed cost of code under rules. It fails on
// the first instruction rules cannot price; such code must be rejected.
func CheckInstructions(rules Rules, code []Instruction) (uint64, error) {
	var total uint64
	for i, instr := range code {
		cost, ok := rules.InstructionCost(instr)
		if !ok {
			return 0, NewValidationError(
				fmt.Sprintf("code uses disallowed or unbenchmarked instruction %s at offset %d", instr, i),
				RuleInstructionCost,
				ErrInvalidInstruction,
			)
		}
		total += uint64(cost)
	}
	return total, nil
}

// CheckFunction checks fn against limits and returns its static cost under
// rules: the cost of its instructions plus the per-local cost of entering it.
func CheckFunction(rules Rules, limits ResourceLimits, params uint32, fn Function) (uint64, error) {
	if params > limits.MaxParameters {
		return 0, NewValidationError(
			fmt.Sprintf("parameter count %d exceeds limit %d", params, limits.MaxParameters),
			RuleResourceLimits,
			ErrResourceLimitExceeded,
		)
	}
	if locals := uint64(params) + uint64(fn.Locals); locals > uint64(limits.MaxLocals) {
		return 0, NewValidationError(
			fmt.Sprintf("local count %d exceeds limit %d", locals, limits.MaxLocals),
			RuleLocals,
			ErrResourceLimitExceeded,
		)
	}
	for _, instr := range fn.Code {
		if instr.Op == BrTable && instr.BrTableTargets > limits.MaxBrTableSize {
			return 0, NewValidationError(
				fmt.Sprintf("br_table with %d targets exceeds limit %d", instr.BrTableTargets, limits.MaxBrTableSize),
				RuleBrTableSize,
				ErrResourceLimitExceeded,
			)
		}
	}

	cost, err := CheckInstructions(rules, fn.Code)
	if err != nil {
		return 0, err
	}
	return cost + uint64(rules.CallPerLocalCost())*uint64(fn.Locals), nil
}

// NeedsReinstrumentation reports whether code instrumented under codeVersion
// must be instrumented again before it runs under s.
func NeedsReinstrumentation(codeVersion uint32, s *schedule.Schedule) bool {
	return s.InstructionWeights.NeedsReinstrumentation(codeVersion)
}
