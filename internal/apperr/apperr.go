// Package apperr defines the error taxonomy surfaced by the chat core:
// conflicts (duplicate room pair), not-found (unknown user/room) and
// validation failures. Errors propagate to callers unmodified; nothing in
// the core retries internally.
package apperr

import (
	"errors"
	"fmt"
)

// ConflictError reports that a durable record already exists, e.g. a chat
// room for the same unordered participant pair.
type ConflictError struct {
	Resource string
	Detail   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.Detail)
}

// NotFoundError reports a lookup miss for a user, room or message.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// ValidationError reports a malformed request, e.g. a room request pairing
// a user with themselves or a message without a room.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Detail
}

// Conflict builds a ConflictError.
func Conflict(resource, detail string) error {
	return &ConflictError{Resource: resource, Detail: detail}
}

// NotFound builds a NotFoundError.
func NotFound(resource, key string) error {
	return &NotFoundError{Resource: resource, Key: key}
}

// Validation builds a ValidationError.
func Validation(detail string) error {
	return &ValidationError{Detail: detail}
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}
