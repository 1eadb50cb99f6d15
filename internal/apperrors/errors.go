// Package apperrors defines the typed, caller-recoverable outcomes of the
// inventory core. Anything not covered here is an unexpected fault and is
// surfaced to clients as a generic server error.
package apperrors

import (
	"errors"
	"fmt"
)

// Conflict reasons carried by ConflictError.
const (
	ReasonDuplicateName   = "duplicate_name"
	ReasonHasDependents   = "has_dependents"
	ReasonAttachmentLimit = "attachment_limit"
)

// ValidationError reports a malformed or out-of-range input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError means the id did not resolve inside the caller's tenant
// scope. A row owned by another tenant reports the same outcome as a row
// that does not exist.
type NotFoundError struct {
	Kind string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

// ConflictError reports a state conflict: a duplicate category name, a
// delete blocked by dependent items, or a full attachment set. Name and
// Count carry enough detail for a precise user-facing message.
type ConflictError struct {
	Reason string
	Name   string
	Count  int64
}

func (e *ConflictError) Error() string {
	switch e.Reason {
	case ReasonDuplicateName:
		return fmt.Sprintf("a category named %q already exists", e.Name)
	case ReasonHasDependents:
		return fmt.Sprintf("cannot delete %q because it contains %d item(s)", e.Name, e.Count)
	case ReasonAttachmentLimit:
		return fmt.Sprintf("no more than %d images may be attached", e.Count)
	}
	return e.Reason
}

// InvalidReferenceError reports a reference field pointing at a nonexistent
// or foreign-owned entity.
type InvalidReferenceError struct {
	Field string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s does not reference an existing entity", e.Field)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
