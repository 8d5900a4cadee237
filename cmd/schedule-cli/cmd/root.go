// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCommand returns the schedule-cli command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "schedule-cli",
		Short: "Inspect, derive and convert contract cost schedules",
		Long: `schedule-cli works with the cost schedule that prices contract execution.

It can:
  • Derive a schedule from benchmark results
  • Convert schedules between their binary, JSON and YAML encodings
  • Look up the cost of an instruction under a determinism mode
  • Check that a new schedule may replace the current one`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addGlobalFlags(root)
	root.AddCommand(
		newShowCommand(),
		newDeriveCommand(),
		newEncodeCommand(),
		newDecodeCommand(),
		newLookupCommand(),
		newCheckUpgradeCommand(),
		newHashCommand(),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
