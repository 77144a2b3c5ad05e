// Package axiom holds project-level constants shared by the CLI and tooling.
package axiom

// Version is the current axiom release.
const Version = "0.1.0"
