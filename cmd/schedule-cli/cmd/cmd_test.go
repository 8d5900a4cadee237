// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/wasm-schedule/x/contracts/schedule"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func writeSchedule(t *testing.T, name string, s *schedule.Schedule) string {
	t.Helper()
	data, err := encode(s, formatOf(name))
	require.NoError(t, err)
	return writeFile(t, name, data)
}

func TestShow(t *testing.T) {
	for _, format := range []string{schedule.FormatJSON, schedule.FormatYAML, formatHex} {
		t.Run(format, func(t *testing.T) {
			out, err := run(t, "show", "--format", format)
			require.NoError(t, err)

			s, err := decode([]byte(out), format)
			require.NoError(t, err)
			require.Equal(t, schedule.Default(), s)
		})
	}

	_, err := run(t, "show", "--format", "xml")
	require.ErrorContains(t, err, "unsupported output format")
}

func TestHash(t *testing.T) {
	expected, err := schedule.Default().Hash()
	require.NoError(t, err)

	out, err := run(t, "hash")
	require.NoError(t, err)
	require.Equal(t, expected.String()+"\n", out)
}

func TestDerive(t *testing.T) {
	_, err := run(t, "derive")
	require.ErrorIs(t, err, errBenchmarksRequired)

	data, err := json.Marshal(schedule.DefaultWeightInfo())
	require.NoError(t, err)
	table := writeFile(t, "benchmarks.json", data)

	out, err := run(t, "derive", "--benchmarks", table)
	require.NoError(t, err)
	s, err := schedule.DecodeJSON([]byte(out))
	require.NoError(t, err)
	require.Equal(t, schedule.Default(), s)

	incomplete := writeFile(t, "benchmarks.yaml", []byte("instr_i64const:\n  base: {ref_time: 1, proof_size: 0}\n  slopes: [{ref_time: 2, proof_size: 0}]\n"))
	_, err = run(t, "derive", "--benchmarks", incomplete)
	require.ErrorIs(t, err, schedule.ErrMissingBenchmark)
}

func TestEncodeDecode(t *testing.T) {
	in := writeSchedule(t, "schedule.json", schedule.Default())

	hexOut, err := run(t, "encode", "--in", in)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hexOut, "0x"))

	hexFile := writeFile(t, "schedule.hex", []byte(hexOut))
	yamlOut, err := run(t, "decode", "--in", hexFile, "--to", schedule.FormatYAML)
	require.NoError(t, err)

	s, err := schedule.DecodeYAML([]byte(yamlOut))
	require.NoError(t, err)
	require.Equal(t, schedule.Default(), s)

	_, err = run(t, "encode")
	require.ErrorIs(t, err, errInputRequired)

	truncated := writeFile(t, "truncated.hex", []byte(strings.TrimSpace(hexOut)[:100]))
	_, err = run(t, "decode", "--in", truncated)
	require.ErrorIs(t, err, schedule.ErrTruncated)
}

func TestLookup(t *testing.T) {
	w := schedule.Default().InstructionWeights

	tests := []struct {
		name     string
		args     []string
		env      map[string]string
		expected string
		wantErr  bool
	}{
		{
			name:     "priced",
			args:     []string{"i32.add"},
			expected: fmt.Sprintf("i32.add: %d\n", w.I64Add),
		},
		{
			name:     "br_table",
			args:     []string{"br_table", "--targets", "2"},
			expected: fmt.Sprintf("br_table[2]: %d\n", w.BrTable+2*w.BrTablePerEntry),
		},
		{
			name:     "rejected when enforced",
			args:     []string{"f32.add", "--fallback", "7"},
			expected: "f32.add: rejected (enforced determinism)\n",
		},
		{
			name:     "fallback when relaxed",
			args:     []string{"f32.add", "--determinism", "relaxed", "--fallback", "7"},
			expected: "f32.add: 7\n",
		},
		{
			name:     "determinism from environment",
			args:     []string{"f32.add", "--fallback", "3"},
			env:      map[string]string{"SCHEDULE_DETERMINISM": "relaxed"},
			expected: "f32.add: 3\n",
		},
		{
			name:     "relaxed without fallback",
			args:     []string{"f32.add", "--determinism", "relaxed"},
			expected: "f32.add: rejected (relaxed determinism)\n",
		},
		{
			name:     "maximum fallback",
			args:     []string{"f32.add", "--determinism", "relaxed", "--fallback", "4294967295"},
			expected: "f32.add: 4294967295\n",
		},
		{
			name:    "fallback out of range",
			args:    []string{"f32.add", "--determinism", "relaxed", "--fallback", "4294967296"},
			wantErr: true,
		},
		{
			name:    "negative fallback",
			args:    []string{"f32.add", "--determinism", "relaxed", "--fallback=-1"},
			wantErr: true,
		},
		{
			name:    "unknown instruction",
			args:    []string{"i32.frobnicate"},
			wantErr: true,
		},
		{
			name:    "unknown determinism",
			args:    []string{"i32.add", "--determinism", "sometimes"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			out, err := run(t, append([]string{"lookup"}, tt.args...)...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "config.yaml", []byte("format: yaml\nlog-level: debug\n"))

	out, err := run(t, "show", "--config", cfg)
	require.NoError(t, err)
	s, err := schedule.DecodeYAML([]byte(out))
	require.NoError(t, err)
	require.Equal(t, schedule.Default(), s)

	out, err = run(t, "show", "--config", cfg, "--format", "json")
	require.NoError(t, err)
	_, err = schedule.DecodeJSON([]byte(out))
	require.NoError(t, err)

	_, err = run(t, "show", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestCheckUpgrade(t *testing.T) {
	prev := writeSchedule(t, "prev.yaml", schedule.Default())

	changed := schedule.Default()
	changed.InstructionWeights.I64Mul++
	notBumped := writeSchedule(t, "next.json", changed)

	changed.InstructionWeights.Version++
	bumped := writeSchedule(t, "bumped.hex", changed)

	lowered := schedule.Default()
	lowered.Limits.Globals--
	decreased := writeSchedule(t, "decreased.json", lowered)

	tests := []struct {
		name     string
		args     []string
		expected string
		errType  error
	}{
		{
			name:     "unchanged",
			args:     []string{"--prev", prev, "--next", prev},
			expected: "upgrade ok\n",
		},
		{
			name:     "version bumped",
			args:     []string{"--prev", prev, "--next", bumped},
			expected: "upgrade ok, code instrumented under version 4 will be reinstrumented\n",
		},
		{
			name:    "version not bumped",
			args:    []string{"--prev", prev, "--next", notBumped},
			errType: schedule.ErrVersionNotBumped,
		},
		{
			name:    "limit decreased",
			args:    []string{"--prev", prev, "--next", decreased},
			errType: schedule.ErrLimitDecreased,
		},
		{
			name:    "runtime memory too small",
			args:    []string{"--prev", prev, "--next", prev, "--max-runtime-memory", "1024"},
			errType: schedule.ErrIntegrity,
		},
		{
			name:    "missing next",
			args:    []string{"--prev", prev},
			errType: errPrevNextRequired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"check-upgrade"}, tt.args...)...)
			if tt.errType != nil {
				require.ErrorIs(t, err, tt.errType)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}
}
