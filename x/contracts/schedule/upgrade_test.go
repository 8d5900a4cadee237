// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUpgrade(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Schedule)
		wantErr error
	}{
		{
			name:   "unchanged",
			mutate: func(*Schedule) {},
		},
		{
			name:   "limit increased",
			mutate: func(s *Schedule) { s.Limits.MemoryPages++ },
		},
		{
			name:    "limit decreased",
			mutate:  func(s *Schedule) { s.Limits.BrTableSize-- },
			wantErr: ErrLimitDecreased,
		},
		{
			name:   "host function weight changed",
			mutate: func(s *Schedule) { s.HostFnWeights.Transfer.RefTime++ },
		},
		{
			name:    "instruction weight changed without version bump",
			mutate:  func(s *Schedule) { s.InstructionWeights.I64Mul-- },
			wantErr: ErrVersionNotBumped,
		},
		{
			name:    "fallback changed without version bump",
			mutate:  func(s *Schedule) { s.InstructionWeights.Fallback = 10 },
			wantErr: ErrVersionNotBumped,
		},
		{
			name: "instruction weight changed with version bump",
			mutate: func(s *Schedule) {
				s.InstructionWeights.I64Mul--
				s.InstructionWeights.Version++
			},
		},
		{
			name:   "version bumped alone",
			mutate: func(s *Schedule) { s.InstructionWeights.Version++ },
		},
		{
			name:    "version decreased",
			mutate:  func(s *Schedule) { s.InstructionWeights.Version-- },
			wantErr: ErrVersionDecreased,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := Default()
			next := Default()
			tt.mutate(next)

			err := ValidateUpgrade(prev, next)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateUpgradeNamesLimit(t *testing.T) {
	next := Default()
	next.Limits.PayloadLen = 1
	err := ValidateUpgrade(Default(), next)
	require.ErrorIs(t, err, ErrLimitDecreased)
	require.Contains(t, err.Error(), "PayloadLen 16384 -> 1")
}

func TestIntegrityCheck(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(l *Limits)
		runtimeMax uint32
		wantErr    bool
	}{
		{name: "defaults", mutate: func(*Limits) {}},
		{name: "defaults within runtime ceiling", mutate: func(*Limits) {}, runtimeMax: 256 << 20},
		{name: "runtime ceiling too low", mutate: func(*Limits) {}, runtimeMax: 64 << 20, wantErr: true},
		{
			name:    "memory larger than runtime memory",
			mutate:  func(l *Limits) { l.MemoryPages = 4096 },
			wantErr: true,
		},
		{
			name:    "more parameters than locals",
			mutate:  func(l *Limits) { l.Parameters = l.Locals + 1 },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s.Limits)
			err := IntegrityCheck(s, tt.runtimeMax)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrIntegrity)
				return
			}
			require.NoError(t, err)
		})
	}
}
