// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ava-labs/wasm-schedule/x/contracts/schedule"
)

var errInputRequired = errors.New("--in is required")

func newEncodeCommand() *cobra.Command {
	var in, from, to string
	cmd := &cobra.Command{
		Use:   "encode --in <file>",
		Short: "Encode a JSON or YAML schedule",
		Long: `Read a schedule from a JSON or YAML file and write it in another encoding,
hex of the binary encoding by default.

Example:
  schedule-cli encode --in schedule.yaml --to hex`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return convert(cmd, in, from, to)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "schedule file")
	cmd.Flags().StringVar(&from, "from", "", "input encoding (json or yaml), taken from the file extension by default")
	cmd.Flags().StringVar(&to, "to", formatHex, "output encoding (hex, json or yaml)")
	return cmd
}

func newDecodeCommand() *cobra.Command {
	var in, to string
	cmd := &cobra.Command{
		Use:   "decode --in <file>",
		Short: "Decode a hex encoded schedule",
		Long: `Read a schedule in hex of its binary encoding and write it as JSON or YAML.

Example:
  schedule-cli decode --in schedule.hex --to yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return convert(cmd, in, formatHex, to)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "schedule file")
	cmd.Flags().StringVar(&to, "to", schedule.FormatJSON, "output encoding (json, yaml or hex)")
	return cmd
}

func convert(cmd *cobra.Command, in, from, to string) error {
	if in == "" {
		return errInputRequired
	}
	s, err := readSchedule(in, from)
	if err != nil {
		return err
	}
	return printSchedule(cmd, s, to)
}
