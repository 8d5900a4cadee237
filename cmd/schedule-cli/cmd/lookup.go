// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/wasm-schedule/x/contracts/runtime"
)

func newLookupCommand() *cobra.Command {
	var (
		targets  uint32
		fallback uint32
	)
	cmd := &cobra.Command{
		Use:   "lookup <instruction>",
		Short: "Print the cost of an instruction",
		Long: `Print the cost the instrumentor charges for an instruction, by its text
format name, under the configured determinism.

Example:
  schedule-cli lookup br_table --targets 16
  schedule-cli lookup f32.add --determinism relaxed --fallback 5000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := runtime.ParseOpcode(args[0])
			if !ok {
				return fmt.Errorf("unknown instruction %q", args[0])
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := newLogger(cmd, cfg.LogLevel)
			s, err := buildSchedule(cfg, log)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fallback") {
				s.InstructionWeights.Fallback = fallback
			}

			rules := runtime.NewScheduleRules(s, cfg.Determinism, runtime.WithLogger(log))
			instr := runtime.Instruction{Op: op, BrTableTargets: targets}
			out := cmd.OutOrStdout()
			cost, ok := rules.InstructionCost(instr)
			if !ok {
				color.New(color.FgRed).Fprintf(out, "%s: rejected (%s determinism)\n", instr, cfg.Determinism)
				return nil
			}
			color.New(color.FgGreen).Fprintf(out, "%s: %d\n", instr, cost)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&targets, "targets", 0, "number of br_table targets")
	cmd.Flags().Uint32Var(&fallback, "fallback", 0, "override the fallback cost")
	return cmd
}
