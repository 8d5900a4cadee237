// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

import (
	"math"
	"reflect"
	"sync"
)

// linearInfo prices every benchmark as base + slope*c for each component c,
// except for the overrides.
func linearInfo(base, slope uint64, overrides map[Benchmark]uint64) WeightInfo {
	return WeightInfoFunc(func(b Benchmark, components ...uint32) Weight {
		s := slope
		if o, ok := overrides[b]; ok {
			s = o
		}
		w := FromRefTime(base)
		for _, c := range components {
			w = w.SaturatingAdd(FromRefTime(s * uint64(c)))
		}
		return w
	})
}

// countingInfo records how often each benchmark is sampled.
type countingInfo struct {
	WeightInfo

	mu    sync.Mutex
	calls map[Benchmark]int
}

func newCountingInfo(info WeightInfo) *countingInfo {
	return &countingInfo{WeightInfo: info, calls: make(map[Benchmark]int)}
}

func (c *countingInfo) Weight(b Benchmark, components ...uint32) Weight {
	c.mu.Lock()
	c.calls[b]++
	c.mu.Unlock()
	return c.WeightInfo.Weight(b, components...)
}

// filledSchedule returns a schedule with every integer field set to v,
// narrowed to the field's width.
func filledSchedule(v uint64) *Schedule {
	s := &Schedule{}
	fill(reflect.ValueOf(s).Elem(), v)
	return s
}

func fill(v reflect.Value, n uint64) {
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			fill(v.Field(i), n)
		}
	case reflect.Uint32:
		if n > math.MaxUint32 {
			v.SetUint(math.MaxUint32)
		} else {
			v.SetUint(n)
		}
	case reflect.Uint64:
		v.SetUint(n)
	}
}

func typeOf(v interface{}) reflect.Type {
	return reflect.TypeOf(v)
}
