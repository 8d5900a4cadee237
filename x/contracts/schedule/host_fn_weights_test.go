// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewHostFnWeightsSingleComponent(t *testing.T) {
	r := require.New(t)

	table := DefaultWeightInfo()
	table[SealCaller] = hostFn(1_000, 50, NewWeight(300, 7))
	table[SealGas] = hostFn(1_000, 50, NewWeight(300, 7))

	w := NewHostFnWeights(table)
	r.Equal(NewWeight(300, 7), w.Caller)
	r.Equal(NewWeight(300, 0), w.Gas, "gas has no proof size")
}

func TestNewHostFnWeightsMultipleComponents(t *testing.T) {
	r := require.New(t)

	table := DefaultWeightInfo()
	table[SealDepositEventPerTopicAndByte] = hostFn(1_000, 100, NewWeight(40, 4), NewWeight(3, 1))
	table[SealCallPerTransferCloneByte] = hostFn(5_000, 200, NewWeight(70, 0), NewWeight(2, 0))
	table[SealInstantiatePerTransferInputSaltByte] = hostFn(
		9_000, 300,
		NewWeight(500, 5),
		NewWeight(6, 0),
		NewWeight(8, 1),
	)

	w := NewHostFnWeights(table)
	r.Equal(NewWeight(40, 4), w.DepositEventPerTopic)
	r.Equal(NewWeight(3, 1), w.DepositEventPerByte)
	r.Equal(NewWeight(70, 0), w.CallTransferSurcharge)
	r.Equal(NewWeight(2, 0), w.CallPerClonedByte)
	r.Equal(NewWeight(500, 5), w.InstantiateTransferSurcharge)
	r.Equal(NewWeight(6, 0), w.InstantiatePerInputByte)
	r.Equal(NewWeight(8, 1), w.InstantiatePerSaltByte)
}

func TestNewHostFnWeightsSamplesCorners(t *testing.T) {
	r := require.New(t)

	seen := make(map[Benchmark][][]uint32)
	info := WeightInfoFunc(func(b Benchmark, components ...uint32) Weight {
		seen[b] = append(seen[b], append([]uint32(nil), components...))
		return ZeroWeight
	})
	NewHostFnWeights(info)

	r.Equal([][]uint32{{1}, {0}}, seen[SealCaller])
	r.Equal([][]uint32{{1, 0}, {0, 0}, {0, 1}, {0, 0}}, seen[SealDepositEventPerTopicAndByte])
	r.Equal([][]uint32{
		{1, 0, 0}, {0, 0, 0},
		{0, 1, 0}, {0, 0, 0},
		{0, 0, 1}, {0, 0, 0},
	}, seen[SealInstantiatePerTransferInputSaltByte])
	r.Len(seen, len(hostFnBenchmarks))
}

func TestNewHostFnWeightsSaturates(t *testing.T) {
	// A benchmark whose baseline is more expensive than the measurement is
	// noise; it must price the call at zero instead of wrapping around.
	info := WeightInfoFunc(func(b Benchmark, components ...uint32) Weight {
		for _, c := range components {
			if c != 0 {
				return NewWeight(10, 10)
			}
		}
		return NewWeight(20, 5)
	})

	w := NewHostFnWeights(info)
	require.Equal(t, NewWeight(0, 5), w.Caller)
	require.Equal(t, NewWeight(0, 5), w.InstantiatePerSaltByte)
	require.Equal(t, ZeroWeight, w.Gas)
}
