// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
)

var (
	ErrMissingBenchmark = errors.New("missing benchmark")
	ErrUnknownBenchmark = errors.New("unknown benchmark")
	ErrInvalidModel     = errors.New("invalid benchmark model")
)

// LinearModel is a benchmark result fitted to
// Base + Slopes[0]*c0 + Slopes[1]*c1 + ...
type LinearModel struct {
	Base   Weight   `json:"base" yaml:"base"`
	Slopes []Weight `json:"slopes" yaml:"slopes"`
}

// Eval evaluates the model. Components without a slope are ignored.
func (m LinearModel) Eval(components ...uint32) Weight {
	w := m.Base
	for i, c := range components {
		if i >= len(m.Slopes) {
			break
		}
		w = w.SaturatingAdd(m.Slopes[i].SaturatingMul(uint64(c)))
	}
	return w
}

// BenchmarkTable is a WeightInfo backed by fitted benchmark results, as
// produced by the benchmarking harness.
type BenchmarkTable map[Benchmark]LinearModel

// Weight implements WeightInfo. Benchmarks absent from the table weigh
// nothing; use Validate to reject incomplete tables.
func (t BenchmarkTable) Weight(b Benchmark, components ...uint32) Weight {
	m, ok := t[b]
	if !ok {
		return ZeroWeight
	}
	return m.Eval(components...)
}

// Benchmarks returns the names in the table in sorted order.
func (t BenchmarkTable) Benchmarks() []Benchmark {
	names := maps.Keys(t)
	slices.Sort(names)
	return names
}

// Validate checks that t holds a model with the right number of slopes for
// every benchmark a Schedule is derived from, and nothing else.
func (t BenchmarkTable) Validate() error {
	required := make(map[Benchmark]struct{})
	for _, b := range RequiredBenchmarks() {
		required[b] = struct{}{}
		m, ok := t[b]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingBenchmark, b)
		}
		if len(m.Slopes) != b.Arity() {
			return fmt.Errorf("%w: %s has %d slopes, expected %d", ErrInvalidModel, b, len(m.Slopes), b.Arity())
		}
	}
	for _, b := range t.Benchmarks() {
		if _, ok := required[b]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownBenchmark, b)
		}
	}
	return nil
}

// ParseBenchmarkTable decodes and validates a benchmark table. format is
// "json" or "yaml".
func ParseBenchmarkTable(data []byte, format string) (BenchmarkTable, error) {
	if len(data) == 0 {
		return nil, errors.New("benchmark table data cannot be empty")
	}
	var t BenchmarkTable
	switch strings.ToLower(format) {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to parse benchmark table JSON: %w", err)
		}
	case FormatYAML, "yml":
		if err := yaml.UnmarshalStrict(data, &t); err != nil {
			return nil, fmt.Errorf("failed to parse benchmark table YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported benchmark table format %q", format)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadBenchmarkTable reads a benchmark table from path. The format is taken
// from the file extension.
func LoadBenchmarkTable(path string) (BenchmarkTable, error) {
	if path == "" {
		return nil, errors.New("benchmark table path cannot be empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark table: %w", err)
	}
	return ParseBenchmarkTable(data, strings.TrimPrefix(filepath.Ext(path), "."))
}
