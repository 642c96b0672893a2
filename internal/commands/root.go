// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/typesquash/cli/internal/logging"
)

// NewRootCmd creates and returns the root command for the CLI. Running the
// root command itself performs the generate flow, so the common invocation
// stays short: typesquash --input payload.json. getenv supplies the process
// environment; TYPESQUASH_LOG_LEVEL and TYPESQUASH_LOG_FILE seed the
// logging flag defaults, and the flags still win when set.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	opts := &generateOptions{}
	logCfg := logging.DefaultConfig()
	if getenv != nil {
		if v := getenv("TYPESQUASH_LOG_LEVEL"); v != "" {
			logCfg.Level = v
		}
		if v := getenv("TYPESQUASH_LOG_FILE"); v != "" {
			logCfg.FilePath = v
		}
	}
	var cleanup func() error

	rootCmd := &cobra.Command{
		Use:   "typesquash",
		Short: "Generate deduplicated TypeScript types from a JSON document",
		Long: `typesquash reads a JSON document, infers a minimal structural type for
it, and emits TypeScript type declarations. Structures that repeat in the
document are squashed into a single shared named type.`,
		Example: `  # Infer types from a file and print them
  typesquash --input payload.json

  # Write the declarations to a file
  typesquash --input payload.json --output payload.ts

  # Keep every structure inlined
  typesquash --input payload.json --squash=false`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cleanup, err = logging.Setup(logCfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.input, "input", "i", "", "Path to the JSON input document")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: standard output)")
	rootCmd.Flags().BoolVarP(&opts.squash, "squash", "s", true, "Factor repeated structures into shared declarations")
	rootCmd.Flags().StringVar(&opts.rootName, "root-name", "", "Name of the root declaration (default: DefaultType)")

	rootCmd.PersistentFlags().StringVar(&logCfg.Level, "log-level", logCfg.Level, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logCfg.FilePath, "log-file", logCfg.FilePath, "Log to a rotating file instead of stderr")

	registerVersionCmd(rootCmd)

	return rootCmd
}
