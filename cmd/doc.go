// Package cmd implements the command-line interface for prefkit. It
// provides a hierarchical command structure for reading and modifying
// typed preferences in a file-backed store.
//
// The package is organized into several subpackages:
//
//   - pref: Commands for preference operations (get, set, incr, toggle, etc.)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See prefkit -help for a list of all commands.
package cmd
