package cmdline

import (
	"fmt"
	"strings"
)

// MissingTypeAnnotationError indicates that a constructor parameter carries
// no declared type. It is fatal at interface-build time: the grammar cannot
// be derived for that target.
type MissingTypeAnnotationError struct {
	// Target is the name of the target type whose manifest failed.
	Target string
	// Operation is the signature owning the parameter ("constructor" for
	// base parameters).
	Operation string
	// Param is the offending parameter name.
	Param string
}

// Error returns a human-readable description of the missing annotation.
func (e *MissingTypeAnnotationError) Error() string {
	return fmt.Sprintf("%s: parameter %q of %s has no type annotation; cannot derive a grammar",
		e.Target, e.Param, e.Operation)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *MissingTypeAnnotationError) Is(target error) bool {
	_, ok := target.(*MissingTypeAnnotationError)
	return ok
}

// UsageError indicates invalid user input: an unknown action token, a
// missing required flag, or a malformed value. It is raised before any
// target object is constructed.
type UsageError struct {
	// Token is the offending input, when one exists.
	Token string
	// Choices enumerates the accepted values, when the input is an
	// enumerated selector.
	Choices []string
	// Message overrides the derived description when set.
	Message string
}

// Error returns a human-readable usage message.
func (e *UsageError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Choices) > 0 {
		return fmt.Sprintf("invalid action %q (choose from: %s)", e.Token, strings.Join(e.Choices, ", "))
	}
	return fmt.Sprintf("invalid argument %q", e.Token)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *UsageError) Is(target error) bool {
	_, ok := target.(*UsageError)
	return ok
}
