// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

import (
	safemath "github.com/ava-labs/avalanchego/utils/math"
	"golang.org/x/exp/constraints"
)

// SaturatingAdd returns a + b, or the maximum value of T on overflow.
func SaturatingAdd[T constraints.Unsigned](a, b T) T {
	sum, err := safemath.Add(a, b)
	if err != nil {
		return safemath.MaxUint[T]()
	}
	return sum
}

// SaturatingSub returns a - b, or zero on underflow.
func SaturatingSub[T constraints.Unsigned](a, b T) T {
	diff, err := safemath.Sub(a, b)
	if err != nil {
		return 0
	}
	return diff
}

// SaturatingMul returns a * b, or the maximum value of T on overflow.
func SaturatingMul[T constraints.Unsigned](a, b T) T {
	product, err := safemath.Mul(a, b)
	if err != nil {
		return safemath.MaxUint[T]()
	}
	return product
}

// ClampUint32 narrows v to the 32-bit range used by instruction weights.
func ClampUint32(v uint64) uint32 {
	if v > uint64(safemath.MaxUint[uint32]()) {
		return safemath.MaxUint[uint32]()
	}
	return uint32(v)
}
