// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

import "fmt"

// Weight is a two-dimensional cost: execution time and the proof size
// (witness bytes) an operation contributes.
type Weight struct {
	// RefTime is measured in picoseconds of reference hardware time.
	RefTime uint64 `json:"ref_time" yaml:"ref_time"`
	// ProofSize is measured in bytes.
	ProofSize uint64 `json:"proof_size" yaml:"proof_size"`
}

// ZeroWeight costs nothing.
var ZeroWeight = Weight{}

// NewWeight returns a Weight with both components set.
func NewWeight(refTime, proofSize uint64) Weight {
	return Weight{RefTime: refTime, ProofSize: proofSize}
}

// FromRefTime returns a Weight with no proof size component.
func FromRefTime(refTime uint64) Weight {
	return Weight{RefTime: refTime}
}

// SaturatingAdd adds component-wise, clamping each component at its maximum.
func (w Weight) SaturatingAdd(other Weight) Weight {
	return Weight{
		RefTime:   SaturatingAdd(w.RefTime, other.RefTime),
		ProofSize: SaturatingAdd(w.ProofSize, other.ProofSize),
	}
}

// SaturatingSub subtracts component-wise, clamping each component at zero.
func (w Weight) SaturatingSub(other Weight) Weight {
	return Weight{
		RefTime:   SaturatingSub(w.RefTime, other.RefTime),
		ProofSize: SaturatingSub(w.ProofSize, other.ProofSize),
	}
}

// SaturatingMul scales both components by n, clamping each at its maximum.
func (w Weight) SaturatingMul(n uint64) Weight {
	return Weight{
		RefTime:   SaturatingMul(w.RefTime, n),
		ProofSize: SaturatingMul(w.ProofSize, n),
	}
}

// WithProofSize returns a copy of w with the proof size replaced.
func (w Weight) WithProofSize(proofSize uint64) Weight {
	w.ProofSize = proofSize
	return w
}

// AnyGT reports whether any component of w is strictly greater than the same
// component of other.
func (w Weight) AnyGT(other Weight) bool {
	return w.RefTime > other.RefTime || w.ProofSize > other.ProofSize
}

// IsZero reports whether both components are zero.
func (w Weight) IsZero() bool {
	return w.RefTime == 0 && w.ProofSize == 0
}

func (w Weight) String() string {
	return fmt.Sprintf("Weight(ref_time: %d, proof_size: %d)", w.RefTime, w.ProofSize)
}
