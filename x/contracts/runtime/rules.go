// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/wasm-schedule/x/contracts/schedule"
)

// Determinism selects how instructions without a dedicated cost are treated.
type Determinism uint8

const (
	// Enforced rejects every instruction without a dedicated cost.
	Enforced Determinism = iota
	// Relaxed charges the fallback cost, if there is one, for instructions
	// without a dedicated cost.
	Relaxed
)

func (d Determinism) String() string {
	switch d {
	case Enforced:
		return "enforced"
	case Relaxed:
		return "relaxed"
	default:
		return fmt.Sprintf("determinism(%d)", uint8(d))
	}
}

// ParseDeterminism parses the String form of a Determinism.
func ParseDeterminism(s string) (Determinism, error) {
	switch s {
	case "enforced", "strict":
		return Enforced, nil
	case "relaxed", "permissive":
		return Relaxed, nil
	default:
		return 0, fmt.Errorf("unknown determinism %q", s)
	}
}

// MemoryGrowCost is the additional cost charged per page when a contract
// grows its memory, on top of the cost of the memory.grow instruction.
type MemoryGrowCost struct {
	PerPage uint32
}

// MemoryGrowFree charges nothing beyond the memory.grow instruction itself.
var MemoryGrowFree = MemoryGrowCost{}

// IsFree reports whether growing memory has no per-page cost.
func (c MemoryGrowCost) IsFree() bool {
	return c.PerPage == 0
}

// Rules prices instructions for the instrumentor.
type Rules interface {
	// InstructionCost returns the cost of instr, and false if instr has no
	// cost and must be rejected.
	InstructionCost(instr Instruction) (uint32, bool)
	// MemoryGrowCost returns the per-page cost of growing memory.
	MemoryGrowCost() MemoryGrowCost
	// CallPerLocalCost returns the cost charged per declared local of the
	// callee of every call.
	CallPerLocalCost() uint32
}

// RulesOption configures ScheduleRules.
type RulesOption func(*ScheduleRules)

// WithLogger reports rejected instructions to log.
func WithLogger(log logging.Logger) RulesOption {
	return func(r *ScheduleRules) {
		if log != nil {
			r.log = log
		}
	}
}

// WithMetrics counts lookups in m.
func WithMetrics(m *Metrics) RulesOption {
	return func(r *ScheduleRules) {
		r.metrics = m
	}
}

var _ Rules = (*ScheduleRules)(nil)

// ScheduleRules is a read-only view of a schedule under a determinism mode.
// It is safe for concurrent use.
type ScheduleRules struct {
	weights     *schedule.InstructionWeights
	determinism Determinism

	log     logging.Logger
	metrics *Metrics
}

// NewScheduleRules returns the rules of s under determinism d. s must not be
// modified while the rules are in use.
func NewScheduleRules(s *schedule.Schedule, d Determinism, opts ...RulesOption) *ScheduleRules {
	r := &ScheduleRules{
		weights:     &s.InstructionWeights,
		determinism: d,
		log:         logging.NoLog{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Determinism returns the mode the rules were created with.
func (r *ScheduleRules) Determinism() Determinism {
	return r.determinism
}

// Version returns the version of the instruction weights the rules price
// with.
func (r *ScheduleRules) Version() uint32 {
	return r.weights.Version
}

func (r *ScheduleRules) InstructionCost(instr Instruction) (uint32, bool) {
	if cost, ok := dedicatedCost(r.weights, instr); ok {
		r.metrics.observe(lookupPriced)
		return cost, true
	}
	if r.determinism == Relaxed && r.weights.Fallback > 0 {
		r.metrics.observe(lookupFallback)
		return r.weights.Fallback, true
	}
	r.metrics.observe(lookupRejected)
	r.log.Debug("instruction has no cost",
		zap.Stringer("instruction", instr),
		zap.Stringer("determinism", r.determinism),
		zap.Uint32("fallback", r.weights.Fallback),
	)
	return 0, false
}

func (*ScheduleRules) MemoryGrowCost() MemoryGrowCost {
	// memory is preallocated up to the limit, the instruction weight covers
	// the rest
	return MemoryGrowFree
}

func (r *ScheduleRules) CallPerLocalCost() uint32 {
	return r.weights.CallPerLocal
}

// dedicatedCost returns the cost of instr from its own entry in w. 32-bit
// operators share the entry of their 64-bit counterpart.
func dedicatedCost(w *schedule.InstructionWeights, instr Instruction) (uint32, bool) {
	switch op := instr.Op; op {
	case End, Unreachable, Return, Else:
		return 0, true
	case I32Const, I64Const, Block, Loop, Nop, Drop:
		return w.I64Const, true
	case I32Load, I64Load, I32Load8S, I32Load8U, I32Load16S, I32Load16U,
		I64Load8S, I64Load8U, I64Load16S, I64Load16U, I64Load32S, I64Load32U:
		return w.I64Load, true
	case I32Store, I64Store, I32Store8, I32Store16, I64Store8, I64Store16, I64Store32:
		return w.I64Store, true
	case Select:
		return w.Select, true
	case If:
		return w.If, true
	case Br:
		return w.Br, true
	case BrIf:
		return w.BrIf, true
	case BrTable:
		return schedule.SaturatingAdd(w.BrTable, schedule.SaturatingMul(w.BrTablePerEntry, instr.BrTableTargets)), true
	case Call:
		return w.Call, true
	case CallIndirect:
		return w.CallIndirect, true
	case LocalGet:
		return w.LocalGet, true
	case LocalSet:
		return w.LocalSet, true
	case LocalTee:
		return w.LocalTee, true
	case GlobalGet:
		return w.GlobalGet, true
	case GlobalSet:
		return w.GlobalSet, true
	case MemorySize:
		return w.MemoryCurrent, true
	case MemoryGrow:
		return w.MemoryGrow, true

	case I32Clz, I64Clz:
		return w.I64Clz, true
	case I32Ctz, I64Ctz:
		return w.I64Ctz, true
	case I32Popcnt, I64Popcnt:
		return w.I64Popcnt, true
	case I32Eqz, I64Eqz:
		return w.I64Eqz, true
	case I64ExtendI32S:
		return w.I64ExtendSI32, true
	case I64ExtendI32U:
		return w.I64ExtendUI32, true
	case I32WrapI64:
		return w.I32WrapI64, true

	case I32Eq, I64Eq:
		return w.I64Eq, true
	case I32Ne, I64Ne:
		return w.I64Ne, true
	case I32LtS, I64LtS:
		return w.I64LtS, true
	case I32LtU, I64LtU:
		return w.I64LtU, true
	case I32GtS, I64GtS:
		return w.I64GtS, true
	case I32GtU, I64GtU:
		return w.I64GtU, true
	case I32LeS, I64LeS:
		return w.I64LeS, true
	case I32LeU, I64LeU:
		return w.I64LeU, true
	case I32GeS, I64GeS:
		return w.I64GeS, true
	case I32GeU, I64GeU:
		return w.I64GeU, true
	case I32Add, I64Add:
		return w.I64Add, true
	case I32Sub, I64Sub:
		return w.I64Sub, true
	case I32Mul, I64Mul:
		return w.I64Mul, true
	case I32DivS, I64DivS:
		return w.I64DivS, true
	case I32DivU, I64DivU:
		return w.I64DivU, true
	case I32RemS, I64RemS:
		return w.I64RemS, true
	case I32RemU, I64RemU:
		return w.I64RemU, true
	case I32And, I64And:
		return w.I64And, true
	case I32Or, I64Or:
		return w.I64Or, true
	case I32Xor, I64Xor:
		return w.I64Xor, true
	case I32Shl, I64Shl:
		return w.I64Shl, true
	case I32ShrS, I64ShrS:
		return w.I64ShrS, true
	case I32ShrU, I64ShrU:
		return w.I64ShrU, true
	case I32Rotl, I64Rotl:
		return w.I64Rotl, true
	case I32Rotr, I64Rotr:
		return w.I64Rotr, true
	}
	return 0, false
}
