// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpcodeNames(t *testing.T) {
	require.Len(t, opcodeNames, len(opcodesByName))
	for op, name := range opcodeNames {
		parsed, ok := ParseOpcode(name)
		require.True(t, ok, name)
		require.Equal(t, op, parsed)
		require.True(t, op.Known())
	}

	require.Equal(t, "i64.extend_i32_u", I64ExtendI32U.String())
	require.Equal(t, "br_table[3]", Instruction{Op: BrTable, BrTableTargets: 3}.String())
	require.Equal(t, "opcode(0xfc)", Opcode(0xfc).String())
	require.False(t, Opcode(0xfc).Known())

	_, ok := ParseOpcode("v128.load")
	require.False(t, ok)
}
