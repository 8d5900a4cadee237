// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

import (
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
)

// Option configures how a Schedule is derived.
type Option func(*deriver)

// WithLogger reports derivation details, such as benchmark results that were
// clamped to zero, to log.
func WithLogger(log logging.Logger) Option {
	return func(d *deriver) {
		if log != nil {
			d.log = log
		}
	}
}

type deriver struct {
	info WeightInfo
	log  logging.Logger
}

func newDeriver(info WeightInfo, opts []Option) *deriver {
	d := &deriver{
		info: info,
		log:  logging.NoLog{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// cost samples b at the given corner and at the all-zero baseline and returns
// the difference. Without components b is sampled at 1.
func (d *deriver) cost(b Benchmark, components ...uint32) Weight {
	if len(components) == 0 {
		components = []uint32{1}
	}
	measured := d.info.Weight(b, components...)
	baseline := d.info.Weight(b, make([]uint32, len(components))...)
	if baseline.AnyGT(measured) {
		d.log.Debug("benchmark baseline exceeds measurement",
			zap.String("benchmark", string(b)),
			zap.Uint32s("components", components),
			zap.Stringer("measured", measured),
			zap.Stringer("baseline", baseline),
		)
	}
	return measured.SaturatingSub(baseline)
}

// rawDelta returns W(components) - W(0, ..., 0) for benchmark b.
func rawDelta(info WeightInfo, b Benchmark, components ...uint32) Weight {
	return (&deriver{info: info, log: logging.NoLog{}}).cost(b, components...)
}
