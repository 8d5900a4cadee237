// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

import "go.uber.org/zap"

// InstructionWeightsVersion is the version of the default instruction weights.
// It must be bumped whenever any default instruction cost changes.
const InstructionWeightsVersion uint32 = 4

// InstructionWeights holds the cost of each wasm instruction category.
//
// 32 and 64 bit variants of an instruction share the i64 entry. End,
// Unreachable, Return and Else are free and have no entry.
type InstructionWeights struct {
	// Version is recorded with instrumented code. Code whose version differs
	// from the live schedule is re-instrumented before it runs, so Version has
	// to be incremented whenever any other field of this struct changes.
	Version uint32 `json:"version" yaml:"version"`

	// Fallback is charged for instructions without a dedicated entry. It is
	// only used when non-deterministic code is allowed; zero rejects such
	// code altogether.
	Fallback uint32 `json:"fallback" yaml:"fallback"`

	I64Const        uint32 `json:"i64const" yaml:"i64const"`
	I64Load         uint32 `json:"i64load" yaml:"i64load"`
	I64Store        uint32 `json:"i64store" yaml:"i64store"`
	Select          uint32 `json:"select" yaml:"select"`
	If              uint32 `json:"if" yaml:"if"`
	Br              uint32 `json:"br" yaml:"br"`
	BrIf            uint32 `json:"br_if" yaml:"br_if"`
	BrTable         uint32 `json:"br_table" yaml:"br_table"`
	BrTablePerEntry uint32 `json:"br_table_per_entry" yaml:"br_table_per_entry"`
	Call            uint32 `json:"call" yaml:"call"`
	CallIndirect    uint32 `json:"call_indirect" yaml:"call_indirect"`
	CallPerLocal    uint32 `json:"call_per_local" yaml:"call_per_local"`
	LocalGet        uint32 `json:"local_get" yaml:"local_get"`
	LocalSet        uint32 `json:"local_set" yaml:"local_set"`
	LocalTee        uint32 `json:"local_tee" yaml:"local_tee"`
	GlobalGet       uint32 `json:"global_get" yaml:"global_get"`
	GlobalSet       uint32 `json:"global_set" yaml:"global_set"`
	MemoryCurrent   uint32 `json:"memory_current" yaml:"memory_current"`
	MemoryGrow      uint32 `json:"memory_grow" yaml:"memory_grow"`
	I64Clz          uint32 `json:"i64clz" yaml:"i64clz"`
	I64Ctz          uint32 `json:"i64ctz" yaml:"i64ctz"`
	I64Popcnt       uint32 `json:"i64popcnt" yaml:"i64popcnt"`
	I64Eqz          uint32 `json:"i64eqz" yaml:"i64eqz"`
	I64ExtendSI32   uint32 `json:"i64extendsi32" yaml:"i64extendsi32"`
	I64ExtendUI32   uint32 `json:"i64extendui32" yaml:"i64extendui32"`
	I32WrapI64      uint32 `json:"i32wrapi64" yaml:"i32wrapi64"`
	I64Eq           uint32 `json:"i64eq" yaml:"i64eq"`
	I64Ne           uint32 `json:"i64ne" yaml:"i64ne"`
	I64LtS          uint32 `json:"i64lts" yaml:"i64lts"`
	I64LtU          uint32 `json:"i64ltu" yaml:"i64ltu"`
	I64GtS          uint32 `json:"i64gts" yaml:"i64gts"`
	I64GtU          uint32 `json:"i64gtu" yaml:"i64gtu"`
	I64LeS          uint32 `json:"i64les" yaml:"i64les"`
	I64LeU          uint32 `json:"i64leu" yaml:"i64leu"`
	I64GeS          uint32 `json:"i64ges" yaml:"i64ges"`
	I64GeU          uint32 `json:"i64geu" yaml:"i64geu"`
	I64Add          uint32 `json:"i64add" yaml:"i64add"`
	I64Sub          uint32 `json:"i64sub" yaml:"i64sub"`
	I64Mul          uint32 `json:"i64mul" yaml:"i64mul"`
	I64DivS         uint32 `json:"i64divs" yaml:"i64divs"`
	I64DivU         uint32 `json:"i64divu" yaml:"i64divu"`
	I64RemS         uint32 `json:"i64rems" yaml:"i64rems"`
	I64RemU         uint32 `json:"i64remu" yaml:"i64remu"`
	I64And          uint32 `json:"i64and" yaml:"i64and"`
	I64Or           uint32 `json:"i64or" yaml:"i64or"`
	I64Xor          uint32 `json:"i64xor" yaml:"i64xor"`
	I64Shl          uint32 `json:"i64shl" yaml:"i64shl"`
	I64ShrS         uint32 `json:"i64shrs" yaml:"i64shrs"`
	I64ShrU         uint32 `json:"i64shru" yaml:"i64shru"`
	I64Rotl         uint32 `json:"i64rotl" yaml:"i64rotl"`
	I64Rotr         uint32 `json:"i64rotr" yaml:"i64rotr"`
}

// NeedsReinstrumentation reports whether code instrumented under codeVersion
// has to be instrumented again before it runs against these weights.
func (w *InstructionWeights) NeedsReinstrumentation(codeVersion uint32) bool {
	return codeVersion != w.Version
}

// instructionBenchmark binds a benchmark to the field it prices. overhead is
// the number of i64.const/drop instructions the benchmark has to emit around
// every instance of the measured instruction to produce a valid module.
type instructionBenchmark struct {
	benchmark Benchmark
	overhead  uint32
	field     func(*InstructionWeights) *uint32
}

var instructionBenchmarks = []instructionBenchmark{
	{InstrI64Const, 0, func(w *InstructionWeights) *uint32 { return &w.I64Const }},
	{InstrI64Load, 2, func(w *InstructionWeights) *uint32 { return &w.I64Load }},
	{InstrI64Store, 2, func(w *InstructionWeights) *uint32 { return &w.I64Store }},
	{InstrSelect, 3, func(w *InstructionWeights) *uint32 { return &w.Select }},
	{InstrIf, 3, func(w *InstructionWeights) *uint32 { return &w.If }},
	{InstrBr, 2, func(w *InstructionWeights) *uint32 { return &w.Br }},
	{InstrBrIf, 3, func(w *InstructionWeights) *uint32 { return &w.BrIf }},
	{InstrBrTable, 3, func(w *InstructionWeights) *uint32 { return &w.BrTable }},
	{InstrBrTablePerEntry, 0, func(w *InstructionWeights) *uint32 { return &w.BrTablePerEntry }},
	{InstrCall, 2, func(w *InstructionWeights) *uint32 { return &w.Call }},
	{InstrCallIndirect, 3, func(w *InstructionWeights) *uint32 { return &w.CallIndirect }},
	{InstrCallPerLocal, 0, func(w *InstructionWeights) *uint32 { return &w.CallPerLocal }},
	{InstrLocalGet, 1, func(w *InstructionWeights) *uint32 { return &w.LocalGet }},
	{InstrLocalSet, 1, func(w *InstructionWeights) *uint32 { return &w.LocalSet }},
	{InstrLocalTee, 2, func(w *InstructionWeights) *uint32 { return &w.LocalTee }},
	{InstrGlobalGet, 1, func(w *InstructionWeights) *uint32 { return &w.GlobalGet }},
	{InstrGlobalSet, 1, func(w *InstructionWeights) *uint32 { return &w.GlobalSet }},
	{InstrMemoryCurrent, 1, func(w *InstructionWeights) *uint32 { return &w.MemoryCurrent }},
	{InstrMemoryGrow, 1, func(w *InstructionWeights) *uint32 { return &w.MemoryGrow }},
	{InstrI64Clz, 1, func(w *InstructionWeights) *uint32 { return &w.I64Clz }},
	{InstrI64Ctz, 1, func(w *InstructionWeights) *uint32 { return &w.I64Ctz }},
	{InstrI64Popcnt, 1, func(w *InstructionWeights) *uint32 { return &w.I64Popcnt }},
	{InstrI64Eqz, 1, func(w *InstructionWeights) *uint32 { return &w.I64Eqz }},
	{InstrI64ExtendSI32, 1, func(w *InstructionWeights) *uint32 { return &w.I64ExtendSI32 }},
	{InstrI64ExtendUI32, 1, func(w *InstructionWeights) *uint32 { return &w.I64ExtendUI32 }},
	{InstrI32WrapI64, 1, func(w *InstructionWeights) *uint32 { return &w.I32WrapI64 }},
	{InstrI64Eq, 2, func(w *InstructionWeights) *uint32 { return &w.I64Eq }},
	{InstrI64Ne, 2, func(w *InstructionWeights) *uint32 { return &w.I64Ne }},
	{InstrI64LtS, 2, func(w *InstructionWeights) *uint32 { return &w.I64LtS }},
	{InstrI64LtU, 2, func(w *InstructionWeights) *uint32 { return &w.I64LtU }},
	{InstrI64GtS, 2, func(w *InstructionWeights) *uint32 { return &w.I64GtS }},
	{InstrI64GtU, 2, func(w *InstructionWeights) *uint32 { return &w.I64GtU }},
	{InstrI64LeS, 2, func(w *InstructionWeights) *uint32 { return &w.I64LeS }},
	{InstrI64LeU, 2, func(w *InstructionWeights) *uint32 { return &w.I64LeU }},
	{InstrI64GeS, 2, func(w *InstructionWeights) *uint32 { return &w.I64GeS }},
	{InstrI64GeU, 2, func(w *InstructionWeights) *uint32 { return &w.I64GeU }},
	{InstrI64Add, 2, func(w *InstructionWeights) *uint32 { return &w.I64Add }},
	{InstrI64Sub, 2, func(w *InstructionWeights) *uint32 { return &w.I64Sub }},
	{InstrI64Mul, 2, func(w *InstructionWeights) *uint32 { return &w.I64Mul }},
	{InstrI64DivS, 2, func(w *InstructionWeights) *uint32 { return &w.I64DivS }},
	{InstrI64DivU, 2, func(w *InstructionWeights) *uint32 { return &w.I64DivU }},
	{InstrI64RemS, 2, func(w *InstructionWeights) *uint32 { return &w.I64RemS }},
	{InstrI64RemU, 2, func(w *InstructionWeights) *uint32 { return &w.I64RemU }},
	{InstrI64And, 2, func(w *InstructionWeights) *uint32 { return &w.I64And }},
	{InstrI64Or, 2, func(w *InstructionWeights) *uint32 { return &w.I64Or }},
	{InstrI64Xor, 2, func(w *InstructionWeights) *uint32 { return &w.I64Xor }},
	{InstrI64Shl, 2, func(w *InstructionWeights) *uint32 { return &w.I64Shl }},
	{InstrI64ShrS, 2, func(w *InstructionWeights) *uint32 { return &w.I64ShrS }},
	{InstrI64ShrU, 2, func(w *InstructionWeights) *uint32 { return &w.I64ShrU }},
	{InstrI64Rotl, 2, func(w *InstructionWeights) *uint32 { return &w.I64Rotl }},
	{InstrI64Rotr, 2, func(w *InstructionWeights) *uint32 { return &w.I64Rotr }},
}

// Overhead returns the number of supporting instructions emitted around every
// instance of the instruction measured by b, and false if b is not an
// instruction benchmark.
func Overhead(b Benchmark) (uint32, bool) {
	for _, ib := range instructionBenchmarks {
		if ib.benchmark == b {
			return ib.overhead, true
		}
	}
	return 0, false
}

// IsolatedCost is the cost of a single instruction once the cost of its k
// supporting instructions is removed from the measured delta. A delta below
// the overhead yields zero.
func IsolatedCost(rawDelta, supportingUnit uint64, k uint32) uint32 {
	return ClampUint32(SaturatingSub(rawDelta, SaturatingMul(supportingUnit, uint64(k))))
}

// SupportingUnit is the cost of one supporting instruction. The i64.const
// benchmark measures a constant push followed by a drop, which are assumed to
// cost the same.
func SupportingUnit(info WeightInfo) uint64 {
	return supportingUnit(rawDelta(info, InstrI64Const, 1).RefTime)
}

func supportingUnit(i64ConstDelta uint64) uint64 {
	return i64ConstDelta / 2
}

// NewInstructionWeights derives instruction weights from benchmark results.
// Fallback is zero.
func NewInstructionWeights(info WeightInfo, opts ...Option) InstructionWeights {
	d := newDeriver(info, opts)

	// instructionBenchmarks[0] is i64.const, which every other entry depends on.
	deltas := make([]uint64, len(instructionBenchmarks))
	for i, ib := range instructionBenchmarks {
		deltas[i] = d.cost(ib.benchmark).RefTime
	}
	unit := supportingUnit(deltas[0])

	w := InstructionWeights{
		Version:  InstructionWeightsVersion,
		Fallback: 0,
	}
	for i, ib := range instructionBenchmarks {
		overhead := SaturatingMul(unit, uint64(ib.overhead))
		if deltas[i] < overhead {
			d.log.Debug("benchmark delta below supporting overhead",
				zap.String("benchmark", string(ib.benchmark)),
				zap.Uint64("delta", deltas[i]),
				zap.Uint64("overhead", overhead),
			)
		}
		*ib.field(&w) = IsolatedCost(deltas[i], unit, ib.overhead)
	}
	return w
}
