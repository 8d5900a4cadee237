// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

import "github.com/ava-labs/avalanchego/utils/units"

// PageSize is the size of a linear memory page.
const PageSize = 64 * units.KiB

// Limits are the structural bounds the sandbox accepts for contract code.
//
// Limits must never be decreased on a live chain: code that was accepted under
// a larger limit has to stay valid after an upgrade.
type Limits struct {
	// Maximum number of topics an event can have.
	EventTopics uint32 `json:"event_topics" yaml:"event_topics"`

	// Maximum number of globals a module may declare.
	Globals uint32 `json:"globals" yaml:"globals"`

	// Maximum number of locals a function may declare, parameters included.
	Locals uint32 `json:"locals" yaml:"locals"`

	// Maximum number of parameters a function may have.
	Parameters uint32 `json:"parameters" yaml:"parameters"`

	// Maximum number of linear memory pages (64KiB per page).
	MemoryPages uint32 `json:"memory_pages" yaml:"memory_pages"`

	// Maximum number of elements in a table.
	TableSize uint32 `json:"table_size" yaml:"table_size"`

	// Maximum number of entries in a br_table instruction.
	BrTableSize uint32 `json:"br_table_size" yaml:"br_table_size"`

	// Maximum length of the subject passed to the random host function.
	SubjectLen uint32 `json:"subject_len" yaml:"subject_len"`

	// Maximum size in bytes of an event payload or a storage value.
	PayloadLen uint32 `json:"payload_len" yaml:"payload_len"`

	// Maximum total amount of memory the runtime may spend on a contract
	// call stack, used only for integrity checks.
	RuntimeMemory uint32 `json:"runtime_memory" yaml:"runtime_memory"`
}

// DefaultLimits returns the limits enforced for newly deployed code.
func DefaultLimits() Limits {
	return Limits{
		EventTopics:   4,
		Globals:       256,
		Locals:        1024,
		Parameters:    128,
		MemoryPages:   16, // 1MiB
		TableSize:     4096,
		BrTableSize:   256,
		SubjectLen:    32,
		PayloadLen:    16 * units.KiB,
		RuntimeMemory: 128 * units.MiB,
	}
}

// MaxMemorySize returns the largest linear memory, in bytes, a module may
// reach under these limits.
func (l Limits) MaxMemorySize() uint64 {
	return uint64(l.MemoryPages) * PageSize
}
