// Package cli defines the Cobra command tree for the newmodule CLI. Each file
// in this package registers one top-level command (create, reset, doctor,
// etc.) with the root command. Commands delegate the file work to
// internal/scaffold and only handle flag parsing, prompting and output.
package cli
