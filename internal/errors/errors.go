// Package errors provides shared error variables used across the pomgen codebase.
//
// Errors are organized by domain:
//   - Git errors: Related to reading metadata from a .git directory
//   - Project errors: Related to the project description
package errors

import "errors"

// Git errors are returned by git metadata readers.
var (
	// ErrNotFound is returned when a git directory, ref or config file does not exist.
	// Callers treat it as "no SCM metadata" rather than a failure.
	ErrNotFound = errors.New("git metadata not found")

	// ErrNotGitRepository is returned when a directory has no .git entry.
	ErrNotGitRepository = errors.New("not a git repository")
)

// Project errors are returned while loading or validating a project description.
var (
	// ErrInvalidProject is returned when a project description cannot be used.
	ErrInvalidProject = errors.New("invalid project description")

	// ErrMissingField is returned when a required identity field is empty.
	ErrMissingField = errors.New("missing required field")
)
