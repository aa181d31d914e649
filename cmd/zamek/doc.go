// Package main hosts the Zamek CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces episode listings, property
// updates, checklist provisioning, signed-link generation and
// verification, and configuration scaffolding. It centralizes
// configuration resolution and workspace client construction so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the
// internal packages first, then surface it through dedicated commands
// or flags here.
package main
