// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ava-labs/avalanchego/utils/formatting"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ava-labs/wasm-schedule/x/contracts/runtime"
	"github.com/ava-labs/wasm-schedule/x/contracts/schedule"
)

const (
	envPrefix = "SCHEDULE"

	configKey      = "config"
	logLevelKey    = "log-level"
	determinismKey = "determinism"
	benchmarksKey  = "benchmarks"
	formatKey      = "format"

	// formatHex is the hex form of the binary encoding.
	formatHex = "hex"
)

type config struct {
	LogLevel    logging.Level
	Determinism runtime.Determinism
	Benchmarks  string
	Format      string
}

func addGlobalFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.String(configKey, "", "config file (json or yaml)")
	fs.String(logLevelKey, logging.Info.String(), "log level")
	fs.String(determinismKey, runtime.Enforced.String(), "determinism mode (enforced or relaxed)")
	fs.String(benchmarksKey, "", "benchmark table to derive the schedule from (json or yaml)")
	fs.String(formatKey, schedule.FormatJSON, "output format (json, yaml or hex)")
}

// loadConfig merges flags, SCHEDULE_ environment variables and the optional
// config file, in that order of precedence.
func loadConfig(cmd *cobra.Command) (*config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	if path := v.GetString(configKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	level, err := logging.ToLevel(v.GetString(logLevelKey))
	if err != nil {
		return nil, err
	}
	determinism, err := runtime.ParseDeterminism(v.GetString(determinismKey))
	if err != nil {
		return nil, err
	}
	format := v.GetString(formatKey)
	switch format {
	case schedule.FormatJSON, schedule.FormatYAML, formatHex:
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return &config{
		LogLevel:    level,
		Determinism: determinism,
		Benchmarks:  v.GetString(benchmarksKey),
		Format:      format,
	}, nil
}

func newLogger(cmd *cobra.Command, level logging.Level) logging.Logger {
	return logging.NewLogger("schedule-cli", logging.NewWrappedCore(
		level,
		nopCloser{cmd.ErrOrStderr()},
		logging.Colors.ConsoleEncoder(),
	))
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// buildSchedule derives the schedule from the configured benchmark table, or
// returns the default schedule.
func buildSchedule(cfg *config, log logging.Logger) (*schedule.Schedule, error) {
	if cfg.Benchmarks == "" {
		return schedule.New(schedule.DefaultWeightInfo(), schedule.WithLogger(log)), nil
	}
	table, err := schedule.LoadBenchmarkTable(cfg.Benchmarks)
	if err != nil {
		return nil, err
	}
	return schedule.New(table, schedule.WithLogger(log)), nil
}

// formatOf returns the encoding of a schedule file from its extension. Files
// without a json or yaml extension hold hex.
func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return schedule.FormatJSON
	case ".yaml", ".yml":
		return schedule.FormatYAML
	default:
		return formatHex
	}
}

func encode(s *schedule.Schedule, format string) ([]byte, error) {
	if format != formatHex {
		return schedule.Encode(s, format)
	}
	b, err := schedule.EncodeBinary(s)
	if err != nil {
		return nil, err
	}
	str, err := formatting.Encode(formatting.HexNC, b)
	if err != nil {
		return nil, err
	}
	return []byte(str + "\n"), nil
}

func decode(data []byte, format string) (*schedule.Schedule, error) {
	if format != formatHex {
		return schedule.Decode(data, format)
	}
	b, err := formatting.Decode(formatting.HexNC, strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex: %w", err)
	}
	return schedule.DecodeBinary(b)
}

func readSchedule(path, format string) (*schedule.Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule: %w", err)
	}
	if format == "" {
		format = formatOf(path)
	}
	return decode(data, format)
}
