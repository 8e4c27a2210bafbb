// Package cli provides shared output helpers for the command-line
// commands: the --output flag vocabulary (table, json, yaml), JSON and
// YAML rendering, and the house table style.
package cli
