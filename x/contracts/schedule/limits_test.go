// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultLimits(t *testing.T) {
	require.Equal(t, Limits{
		EventTopics:   4,
		Globals:       256,
		Locals:        1024,
		Parameters:    128,
		MemoryPages:   16,
		TableSize:     4096,
		BrTableSize:   256,
		SubjectLen:    32,
		PayloadLen:    16384,
		RuntimeMemory: 134217728,
	}, DefaultLimits())
}

func TestMaxMemorySize(t *testing.T) {
	tests := []struct {
		pages    uint32
		expected uint64
	}{
		{0, 0},
		{1, 65536},
		{16, 1048576},
		{65536, 4294967296},
		{math.MaxUint32, uint64(math.MaxUint32) * 65536},
	}
	for _, tt := range tests {
		l := Limits{MemoryPages: tt.pages}
		require.Equal(t, tt.expected, l.MaxMemorySize(), "pages %d", tt.pages)
	}

	require.Equal(t, uint64(1024*1024), DefaultLimits().MaxMemorySize())
}
