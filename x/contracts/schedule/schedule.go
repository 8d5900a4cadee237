// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

import (
	"github.com/ava-labs/avalanchego/ids"
	"golang.org/x/crypto/blake2b"
)

// Schedule is the complete cost policy for contract execution. A Schedule is
// built once and never mutated afterwards; an upgrade replaces it with a new
// value. It is safe to read from any number of goroutines.
type Schedule struct {
	Limits             Limits             `json:"limits" yaml:"limits"`
	InstructionWeights InstructionWeights `json:"instruction_weights" yaml:"instruction_weights"`
	HostFnWeights      HostFnWeights      `json:"host_fn_weights" yaml:"host_fn_weights"`
}

// New derives a schedule with default limits from the benchmark results
// reported by info.
func New(info WeightInfo, opts ...Option) *Schedule {
	return &Schedule{
		Limits:             DefaultLimits(),
		InstructionWeights: NewInstructionWeights(info, opts...),
		HostFnWeights:      NewHostFnWeights(info, opts...),
	}
}

// Default returns the schedule derived from the reference benchmark results.
func Default() *Schedule {
	return New(DefaultWeightInfo())
}

// Hash identifies the schedule by the blake2b-256 digest of its binary
// encoding.
func (s *Schedule) Hash() (ids.ID, error) {
	b, err := EncodeBinary(s)
	if err != nil {
		return ids.Empty, err
	}
	return ids.ID(blake2b.Sum256(b)), nil
}

// Equal reports whether s and other hold the same values.
func (s *Schedule) Equal(other *Schedule) bool {
	if s == nil || other == nil {
		return s == other
	}
	return *s == *other
}
