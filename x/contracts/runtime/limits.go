// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import "github.com/ava-labs/wasm-schedule/x/contracts/schedule"

// ResourceLimits defines the structural constraints a module must satisfy,
// as seen by the validators and the instrumentation gate
type ResourceLimits struct {
	// Maximum number of parameters of any function
	MaxParameters uint32

	// Maximum number of locals of any function, parameters included
	MaxLocals uint32

	// Maximum number of globals in a module
	MaxGlobals uint32

	// Maximum memory pages (64KB per page), both initial and after growth
	MaxMemoryPages uint32

	// Maximum table size
	MaxTableSize uint32

	// Maximum number of targets of a br_table instruction
	MaxBrTableSize uint32
}

// NewResourceLimits returns the resource limits enforced by the schedule
// limits l
func NewResourceLimits(l schedule.Limits) ResourceLimits {
	return ResourceLimits{
		MaxParameters:  l.Parameters,
		MaxLocals:      l.Locals,
		MaxGlobals:     l.Globals,
		MaxMemoryPages: l.MemoryPages,
		MaxTableSize:   l.TableSize,
		MaxBrTableSize: l.BrTableSize,
	}
}

// DefaultResourceLimits returns resource limits with safe default values
func DefaultResourceLimits() ResourceLimits {
	return NewResourceLimits(schedule.DefaultLimits())
}
