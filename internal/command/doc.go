// Package command implements the remote command protocol: a compact
// URL-safe token encoding of a dashboard operation, an HMAC signature
// proving the token was issued by a holder of the shared secret, and the
// dispatcher that validates and executes a verified command against the
// workspace.
//
// The pipeline is Encode -> Sign on the issuing side and Verify ->
// Decode -> Apply on the receiving side. Signature and decode failures
// are terminal for a command; nothing is partially executed. The
// dispatcher talks to the workspace only through the Workspace
// interface, keeps no state, and persists nothing.
package command
