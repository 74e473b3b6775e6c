// Package errs is the project-wide error vocabulary: thin wrappers over
// cockroachdb/errors so call sites never import it directly.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg, preserving the original chain.
// A nil err stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr as a secondary identity without losing the cause.
// Marks live outside the stdlib unwrap chain, so matches against a marked
// sentinel must go through Is.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches ref, honoring both wrap chains and marks.
func Is(err error, ref error) bool {
	return cr.Is(err, ref)
}
