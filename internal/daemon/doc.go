// Package daemon hosts the zamekd HTTP server: the dashboard API, the
// signed command-link entrypoint, and the command journal around it.
//
// The daemon enforces single-instance execution with a lock file, which
// makes the protocol's single-trusted-verifier assumption operational:
// only one process holding the shared secret verifies and executes
// links. The /api/ surface is optionally protected by a bearer token;
// /command is authenticated by the HMAC signature itself.
package daemon
