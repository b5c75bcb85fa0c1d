// Package types defines the shared vocabulary of inikit: typed errors with
// stable categories, the wire-stable operation flags of the plugin call
// surface, per-document settings, and the sealed operation variants the
// call surface decodes flags into.
//
// Design goals:
//   - Typed errors callers can branch on (not-open/not-found/invalid/io).
//   - Flag values that never change once shipped to game scripts.
//   - One variant per operation, each with its own fields.
//
// This package has no dependencies beyond the standard library.
package types
