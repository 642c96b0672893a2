// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

package infer

import "github.com/typesquash/cli/internal/jsonvalue"

// DefaultRootName is the name of the root declaration when no override is
// configured.
const DefaultRootName = "DefaultType"

// Options controls one inference run.
type Options struct {
	// RootName names the root declaration; generated shared types take
	// RootName plus a numeric suffix. Empty means DefaultRootName.
	RootName string
	// Squash controls whether repeated structures are factored into
	// shared declarations. When false every node is emitted inline.
	Squash bool
}

// DefaultOptions returns the standard configuration: squashing on, the
// default root name.
func DefaultOptions() Options {
	return Options{RootName: DefaultRootName, Squash: true}
}

// Stats summarizes one run for logging.
type Stats struct {
	Nodes    int // non-root nodes registered
	Distinct int // distinct fingerprints observed
	Squashed int // shared declarations minted
}

// Result is the ordered declaration sequence for one document plus run
// statistics.
type Result struct {
	Declarations []Declaration
	Stats        Stats
}

// Infer runs the full pipeline over one decoded document: build the typed
// tree, fingerprint it bottom-up, register every non-root fingerprint,
// mint shared declarations for repeats, and emit the dependency-ordered
// declaration plan. Each of the passes is a complete traversal; all state
// is local to the call and discarded on return.
func Infer(doc jsonvalue.Value, opts Options) Result {
	if opts.RootName == "" {
		opts.RootName = DefaultRootName
	}

	root := Build(doc)
	ComputeFingerprints(root)
	reg := BuildRegistry(root)

	var cache *Cache
	if opts.Squash {
		cache = BuildCache(reg, opts.RootName, root.Fingerprint)
	}

	return Result{
		Declarations: EmitDeclarations(root, cache, opts.RootName),
		Stats: Stats{
			Nodes:    reg.Total(),
			Distinct: reg.Len(),
			Squashed: cache.Len(),
		},
	}
}
