// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

import (
	"fmt"
	"reflect"
)

// ValidateUpgrade checks that next may replace prev on a live chain:
// no limit may decrease, and instruction weights may only change together
// with a higher version. Host function weights are free to change.
func ValidateUpgrade(prev, next *Schedule) error {
	pl := reflect.ValueOf(prev.Limits)
	nl := reflect.ValueOf(next.Limits)
	for i := 0; i < pl.NumField(); i++ {
		before, after := pl.Field(i).Uint(), nl.Field(i).Uint()
		if after < before {
			return fmt.Errorf("%w: %s %d -> %d", ErrLimitDecreased, pl.Type().Field(i).Name, before, after)
		}
	}

	pw, nw := prev.InstructionWeights, next.InstructionWeights
	switch {
	case nw.Version < pw.Version:
		return fmt.Errorf("%w: %d -> %d", ErrVersionDecreased, pw.Version, nw.Version)
	case nw.Version == pw.Version && !sameCosts(pw, nw):
		return fmt.Errorf("%w: version %d", ErrVersionNotBumped, nw.Version)
	}
	return nil
}

// sameCosts compares every field but Version.
func sameCosts(a, b InstructionWeights) bool {
	a.Version, b.Version = 0, 0
	return a == b
}

// IntegrityCheck verifies that the limits of s are consistent with each other
// and that the runtime, which can spend at most maxRuntimeMemory bytes on a
// call stack, can honour them. A zero maxRuntimeMemory skips the runtime
// check.
func IntegrityCheck(s *Schedule, maxRuntimeMemory uint32) error {
	l := s.Limits
	if l.MaxMemorySize() > uint64(l.RuntimeMemory) {
		return fmt.Errorf("%w: linear memory of %d bytes exceeds runtime memory of %d bytes",
			ErrIntegrity, l.MaxMemorySize(), l.RuntimeMemory)
	}
	if l.Parameters > l.Locals {
		return fmt.Errorf("%w: %d parameters exceed %d locals", ErrIntegrity, l.Parameters, l.Locals)
	}
	if maxRuntimeMemory != 0 && l.RuntimeMemory > maxRuntimeMemory {
		return fmt.Errorf("%w: runtime memory %d exceeds runtime ceiling %d",
			ErrIntegrity, l.RuntimeMemory, maxRuntimeMemory)
	}
	return nil
}
