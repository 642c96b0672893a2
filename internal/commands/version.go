// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typesquash/cli/internal/version"
)

func registerVersionCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Example: `  # Show the typesquash version
  typesquash version`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return nil
		},
	}
	parent.AddCommand(cmd)
}
