// Package main hosts the biaslab CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into calls
// against the bias analysis service: article submission, score and highlight
// rendering, narrative browsing, local history, and configuration
// scaffolding. It centralizes configuration resolution, client construction,
// and structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
