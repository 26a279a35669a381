// Package app wires application dependencies for the CLI.
//
// It loads Config through viper, builds the concrete stores and high-level
// services from it and exposes them via the App and Wire structs for
// commands to use.
package app
