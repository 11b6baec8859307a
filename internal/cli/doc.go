// Package cli defines the Cobra command tree for the ktbridge CLI. Each
// file in this package registers one top-level command (init, sync, config,
// version) with the root command. Command implementations delegate to
// internal packages for the planning, generation, and reconciliation logic
// and only handle flag parsing and user-facing output.
package cli
