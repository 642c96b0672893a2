// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/typesquash/cli/internal/config"
	"github.com/typesquash/cli/internal/infer"
	"github.com/typesquash/cli/internal/jsonvalue"
	"github.com/typesquash/cli/internal/prompts"
	"github.com/typesquash/cli/internal/render/typescript"
)

type generateOptions struct {
	input    string
	output   string
	squash   bool
	rootName string
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", config.DefaultFileName, err)
	}

	inferOpts := resolveInferOptions(cmd, opts, cfg)
	renderer := resolveRenderer(cfg)

	// Prompt for the input path when the flag was omitted, but only on an
	// interactive terminal; scripted runs fail fast instead of blocking.
	if opts.input == "" {
		if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return errors.New("--input is required")
		}
		if err := prompts.RunInputForm(&opts.input); err != nil {
			return fmt.Errorf("--input is required: %w", err)
		}
	}

	data, err := os.ReadFile(opts.input) //nolint:gosec // path is provided by caller
	if err != nil {
		return fmt.Errorf("could not read file %q: %w", opts.input, err)
	}
	slog.Info("read input file", "path", opts.input, "bytes", len(data))

	doc, err := jsonvalue.Decode(data)
	if err != nil {
		return fmt.Errorf("could not parse %q as JSON: %w", opts.input, err)
	}

	result := infer.Infer(doc, inferOpts)
	slog.Info("inferred types",
		"nodes", result.Stats.Nodes,
		"distinct", result.Stats.Distinct,
		"squashed", result.Stats.Squashed,
		"declarations", len(result.Declarations))

	rendered := renderer.Render(result.Declarations)

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(rendered)
		return err
	}

	if err := os.WriteFile(opts.output, rendered, 0o600); err != nil {
		return fmt.Errorf("could not write to file %q: %w", opts.output, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Input", Value: opts.input},
		{Label: "Output", Value: opts.output},
		{Label: "Declarations", Value: fmt.Sprintf("%d (%d shared)", len(result.Declarations), result.Stats.Squashed)},
	}, "Types generated")

	return nil
}

// resolveInferOptions layers flag values over config values over the
// built-in defaults.
func resolveInferOptions(cmd *cobra.Command, opts *generateOptions, cfg *config.Config) infer.Options {
	inferOpts := infer.DefaultOptions()

	if cfg.RootName != "" {
		inferOpts.RootName = cfg.RootName
	}
	if opts.rootName != "" {
		inferOpts.RootName = opts.rootName
	}

	if cfg.Squash != nil {
		inferOpts.Squash = *cfg.Squash
	}
	if cmd.Flags().Changed("squash") {
		inferOpts.Squash = opts.squash
	}

	return inferOpts
}

func resolveRenderer(cfg *config.Config) *typescript.Renderer {
	renderer := typescript.New()
	if cfg.Indent > 0 {
		renderer.Indent = strings.Repeat(" ", cfg.Indent)
	}
	if cfg.Semicolons != nil {
		renderer.Semicolons = *cfg.Semicolons
	}
	return renderer
}
