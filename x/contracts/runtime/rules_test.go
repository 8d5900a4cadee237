// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"math"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/wasm-schedule/x/contracts/schedule"
)

func withFallback(fallback uint32) *schedule.Schedule {
	s := schedule.Default()
	s.InstructionWeights.Fallback = fallback
	return s
}

func TestInstructionCostGrouping(t *testing.T) {
	s := schedule.Default()
	w := s.InstructionWeights
	rules := NewScheduleRules(s, Enforced)

	tests := []struct {
		op       Opcode
		expected uint32
	}{
		{End, 0},
		{Unreachable, 0},
		{Return, 0},
		{Else, 0},
		{I32Const, w.I64Const},
		{I64Const, w.I64Const},
		{Block, w.I64Const},
		{Loop, w.I64Const},
		{Nop, w.I64Const},
		{Drop, w.I64Const},
		{I32Load, w.I64Load},
		{I64Load32U, w.I64Load},
		{I32Load8S, w.I64Load},
		{I32Store, w.I64Store},
		{I64Store32, w.I64Store},
		{Select, w.Select},
		{If, w.If},
		{Br, w.Br},
		{BrIf, w.BrIf},
		{Call, w.Call},
		{CallIndirect, w.CallIndirect},
		{LocalGet, w.LocalGet},
		{LocalSet, w.LocalSet},
		{LocalTee, w.LocalTee},
		{GlobalGet, w.GlobalGet},
		{GlobalSet, w.GlobalSet},
		{MemorySize, w.MemoryCurrent},
		{MemoryGrow, w.MemoryGrow},
		{I32Clz, w.I64Clz},
		{I64Popcnt, w.I64Popcnt},
		{I32Eqz, w.I64Eqz},
		{I64ExtendI32S, w.I64ExtendSI32},
		{I64ExtendI32U, w.I64ExtendUI32},
		{I32WrapI64, w.I32WrapI64},
		{I32Eq, w.I64Eq},
		{I64GeU, w.I64GeU},
		{I32Add, w.I64Add},
		{I64Add, w.I64Add},
		{I32Mul, w.I64Mul},
		{I32DivS, w.I64DivS},
		{I64RemU, w.I64RemU},
		{I32Xor, w.I64Xor},
		{I32ShrU, w.I64ShrU},
		{I64Rotr, w.I64Rotr},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			cost, ok := rules.InstructionCost(Instruction{Op: tt.op})
			require.True(t, ok)
			require.Equal(t, tt.expected, cost)
		})
	}
}

func TestInstructionCostWithoutEntry(t *testing.T) {
	unpriced := []Opcode{F32Add, F64Const, F32Load, F64Store, I32TruncF32S, F64PromoteF32, I32Extend8S, I64Extend32S, Opcode(0xfc)}

	tests := []struct {
		name        string
		determinism Determinism
		fallback    uint32
		expected    uint32
		ok          bool
	}{
		{name: "enforced without fallback", determinism: Enforced},
		{name: "enforced ignores fallback", determinism: Enforced, fallback: 17},
		{name: "relaxed without fallback", determinism: Relaxed},
		{name: "relaxed with fallback", determinism: Relaxed, fallback: 17, expected: 17, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := NewScheduleRules(withFallback(tt.fallback), tt.determinism)
			for _, op := range unpriced {
				cost, ok := rules.InstructionCost(Instruction{Op: op})
				require.Equal(t, tt.ok, ok, op.String())
				require.Equal(t, tt.expected, cost, op.String())
			}
		})
	}
}

func TestFallbackDoesNotOverrideEntries(t *testing.T) {
	s := withFallback(1_000_000)
	rules := NewScheduleRules(s, Relaxed)

	cost, ok := rules.InstructionCost(Instruction{Op: I64Add})
	require.True(t, ok)
	require.Equal(t, s.InstructionWeights.I64Add, cost)

	cost, ok = rules.InstructionCost(Instruction{Op: End})
	require.True(t, ok)
	require.Zero(t, cost)
}

func TestBrTableCost(t *testing.T) {
	s := schedule.Default()
	w := s.InstructionWeights
	rules := NewScheduleRules(s, Enforced)

	for _, n := range []uint32{0, 1, 1000} {
		cost, ok := rules.InstructionCost(Instruction{Op: BrTable, BrTableTargets: n})
		require.True(t, ok)
		require.Equal(t, w.BrTable+w.BrTablePerEntry*n, cost)
	}

	s.InstructionWeights.BrTablePerEntry = math.MaxUint32
	cost, ok := NewScheduleRules(s, Enforced).InstructionCost(Instruction{Op: BrTable, BrTableTargets: 2})
	require.True(t, ok)
	require.Equal(t, uint32(math.MaxUint32), cost)

	s.InstructionWeights.BrTable = math.MaxUint32
	s.InstructionWeights.BrTablePerEntry = 1
	cost, ok = NewScheduleRules(s, Enforced).InstructionCost(Instruction{Op: BrTable, BrTableTargets: 1})
	require.True(t, ok)
	require.Equal(t, uint32(math.MaxUint32), cost)
}

func TestMemoryGrowCost(t *testing.T) {
	for _, d := range []Determinism{Enforced, Relaxed} {
		rules := NewScheduleRules(withFallback(5), d)
		require.Equal(t, MemoryGrowFree, rules.MemoryGrowCost())
		require.True(t, rules.MemoryGrowCost().IsFree())
	}
}

func TestCallPerLocalCost(t *testing.T) {
	s := schedule.Default()
	s.InstructionWeights.CallPerLocal = 123
	require.Equal(t, uint32(123), NewScheduleRules(s, Enforced).CallPerLocalCost())
}

func TestRulesMetrics(t *testing.T) {
	r := require.New(t)

	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	r.NoError(err)

	_, err = NewMetrics(reg)
	r.Error(err)

	relaxed := NewScheduleRules(withFallback(3), Relaxed, WithMetrics(m), WithLogger(logging.NoLog{}))
	enforced := NewScheduleRules(withFallback(3), Enforced, WithMetrics(m))

	_, ok := relaxed.InstructionCost(Instruction{Op: I64Add})
	r.True(ok)
	_, ok = relaxed.InstructionCost(Instruction{Op: F32Add})
	r.True(ok)
	_, ok = enforced.InstructionCost(Instruction{Op: F32Add})
	r.False(ok)
	_, ok = enforced.InstructionCost(Instruction{Op: LocalGet})
	r.True(ok)

	r.Equal(2.0, testutil.ToFloat64(m.lookups.WithLabelValues(lookupPriced)))
	r.Equal(1.0, testutil.ToFloat64(m.lookups.WithLabelValues(lookupFallback)))
	r.Equal(1.0, testutil.ToFloat64(m.lookups.WithLabelValues(lookupRejected)))
}

func TestRulesAccessors(t *testing.T) {
	rules := NewScheduleRules(schedule.Default(), Relaxed)
	require.Equal(t, Relaxed, rules.Determinism())
	require.Equal(t, schedule.InstructionWeightsVersion, rules.Version())
}

func TestParseDeterminism(t *testing.T) {
	tests := []struct {
		in       string
		expected Determinism
		wantErr  bool
	}{
		{in: "enforced", expected: Enforced},
		{in: "strict", expected: Enforced},
		{in: "relaxed", expected: Relaxed},
		{in: "permissive", expected: Relaxed},
		{in: "loose", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDeterminism(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, d)
		})
	}
	require.Equal(t, "enforced", Enforced.String())
	require.Equal(t, "relaxed", Relaxed.String())
	require.Equal(t, "determinism(7)", Determinism(7).String())
}
