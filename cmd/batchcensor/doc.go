// Package main hosts the batchcensor CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into censor
// configuration loading, reconciliation against the project tree, and the
// parallel censoring run. It centralizes settings resolution and structured
// logging setup so subcommands can focus on user experience instead of
// wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
