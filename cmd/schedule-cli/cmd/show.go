// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/wasm-schedule/x/contracts/schedule"
)

var errBenchmarksRequired = errors.New("--benchmarks is required")

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the schedule",
		Long: `Print the default schedule, or the schedule derived from --benchmarks,
in the configured --format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := buildSchedule(cfg, newLogger(cmd, cfg.LogLevel))
			if err != nil {
				return err
			}
			return printSchedule(cmd, s, cfg.Format)
		},
	}
}

func newDeriveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "derive --benchmarks <file>",
		Short: "Derive a schedule from benchmark results",
		Long: `Derive a schedule from a benchmark table. The table maps every benchmark
to a linear model:

  instr_i64const:
    base: {ref_time: 1397000, proof_size: 0}
    slopes:
      - {ref_time: 2848, proof_size: 0}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Benchmarks == "" {
				return errBenchmarksRequired
			}
			log := newLogger(cmd, cfg.LogLevel)
			s, err := buildSchedule(cfg, log)
			if err != nil {
				return err
			}
			hash, err := s.Hash()
			if err != nil {
				return err
			}
			log.Info("derived schedule",
				zap.String("benchmarks", cfg.Benchmarks),
				zap.Stringer("hash", hash),
			)
			return printSchedule(cmd, s, cfg.Format)
		},
	}
}

func newHashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash",
		Short: "Print the hash of the schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := buildSchedule(cfg, newLogger(cmd, cfg.LogLevel))
			if err != nil {
				return err
			}
			hash, err := s.Hash()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func printSchedule(cmd *cobra.Command, s *schedule.Schedule, format string) error {
	out, err := encode(s, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
