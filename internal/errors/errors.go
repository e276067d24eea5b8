package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// DeletionFailedError represents a delete that affected no rows even though
// the entity existed moments before (lost update or storage inconsistency)
type DeletionFailedError struct {
	Entity string
}

func (e *DeletionFailedError) Error() string {
	return fmt.Sprintf("failed to delete %s: no rows affected", e.Entity)
}

// Is enables errors.Is() comparison for DeletionFailedError
func (e *DeletionFailedError) Is(target error) bool {
	t, ok := target.(*DeletionFailedError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// Entity Not Found Errors
var (
	ErrKeywordNotFound   = &NotFoundError{Entity: "keyword"}
	ErrSubredditNotFound = &NotFoundError{Entity: "subreddit"}
	ErrPostNotFound      = &NotFoundError{Entity: "post"}
)

// Already Exists Errors
var (
	ErrKeywordExists   = &AlreadyExistsError{Entity: "keyword", Context: "with this keyword"}
	ErrSubredditExists = &AlreadyExistsError{Entity: "subreddit", Context: "with this name"}
	ErrPostExists      = &AlreadyExistsError{Entity: "post", Context: "with this title"}
)

// Deletion Failed Errors
var (
	ErrKeywordDeletionFailed   = &DeletionFailedError{Entity: "keyword"}
	ErrSubredditDeletionFailed = &DeletionFailedError{Entity: "subreddit"}
	ErrPostDeletionFailed      = &DeletionFailedError{Entity: "post"}
)

// Input Errors
var (
	ErrInvalidID        = &ValidationError{Field: "id", Message: "must be a positive integer"}
	ErrEmptySearchQuery = &ValidationError{Field: "query", Message: "search query must not be empty"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsDeletionFailed checks if an error is a DeletionFailedError
func IsDeletionFailed(err error) bool {
	var deletionErr *DeletionFailedError
	return errors.As(err, &deletionErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
