package command

import "errors"

// Failure classes for the command pipeline. Dispatch boundaries map
// these to short user-facing messages; none of them carries internal
// identifiers.
var (
	// ErrDecode marks a malformed token: bad padding, characters
	// outside the URL-safe alphabet, or unparseable command content.
	ErrDecode = errors.New("cannot decode command")

	// ErrSignatureMismatch marks a token whose signature does not match
	// the recomputed value. Such a command is never executed.
	ErrSignatureMismatch = errors.New("command signature mismatch")

	// ErrTargetNotFound marks a label or id that resolves to no episode.
	ErrTargetNotFound = errors.New("episode page not found")

	// ErrEmptyChecklist marks an add_checklist command with no items.
	ErrEmptyChecklist = errors.New("checklist has no items")

	// ErrUnsupportedOperation marks an unrecognized operation tag.
	ErrUnsupportedOperation = errors.New("unknown operation")
)
