// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/wasm-schedule/x/contracts/schedule"
)

var errPrevNextRequired = errors.New("--prev and --next are required")

func newCheckUpgradeCommand() *cobra.Command {
	var prev, next string
	var maxRuntimeMemory uint32
	cmd := &cobra.Command{
		Use:   "check-upgrade --prev <file> --next <file>",
		Short: "Check that a schedule may replace another",
		Long: `Check that the schedule in --next may replace the schedule in --prev on a
live chain: no limit may decrease, and instruction weights may only change
together with a higher version. The new schedule must also pass the integrity
check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if prev == "" || next == "" {
				return errPrevNextRequired
			}
			p, err := readSchedule(prev, "")
			if err != nil {
				return fmt.Errorf("%s: %w", prev, err)
			}
			n, err := readSchedule(next, "")
			if err != nil {
				return fmt.Errorf("%s: %w", next, err)
			}
			if err := schedule.ValidateUpgrade(p, n); err != nil {
				return err
			}
			if err := schedule.IntegrityCheck(n, maxRuntimeMemory); err != nil {
				return err
			}

			msg := "upgrade ok"
			if n.InstructionWeights.NeedsReinstrumentation(p.InstructionWeights.Version) {
				msg = fmt.Sprintf("upgrade ok, code instrumented under version %d will be reinstrumented",
					p.InstructionWeights.Version)
			}
			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&prev, "prev", "", "current schedule")
	cmd.Flags().StringVar(&next, "next", "", "proposed schedule")
	cmd.Flags().Uint32Var(&maxRuntimeMemory, "max-runtime-memory", 0, "memory available to the runtime, in bytes (0 skips the check)")
	return cmd
}
