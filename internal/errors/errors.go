package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for type checking
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateColor   = errors.New("duplicate color")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDelivery         = errors.New("delivery failed")
	ErrMenuConflict     = errors.New("menu id conflict")
)

// Wire error codes returned in message responses. Validation failures are
// reported with these codes rather than thrown across the message boundary.
const (
	CodeCapacityExceeded = "CapacityExceeded"
	CodeDuplicateColor   = "DuplicateColor"
	CodeNotFound         = "NotFound"
	CodeMissingID        = "MissingId"
)

// NotFoundError indicates a resource doesn't exist.
type NotFoundError struct {
	Resource string // "color", "page", "group"
	ID       string // The identifier that wasn't found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// DuplicateColorError indicates an add would collide with an existing color
// value. Comparison is case-insensitive.
type DuplicateColorError struct {
	Color string // The canonical hex value that already exists
}

func (e *DuplicateColorError) Error() string {
	return fmt.Sprintf("color already exists: %s", e.Color)
}

func (e *DuplicateColorError) Unwrap() error {
	return ErrDuplicateColor
}

// CapacityExceededError indicates the color collection is full.
type CapacityExceededError struct {
	Limit int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("color limit reached (max %d)", e.Limit)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// ValidationError indicates invalid input on a request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// DeliveryError indicates a push to a page could not be delivered. These are
// expected (pages navigate away) and are logged, never surfaced to the
// mutation that triggered the push.
type DeliveryError struct {
	PageID string
	Cause  error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to page %s failed: %v", e.PageID, e.Cause)
}

func (e *DeliveryError) Unwrap() error {
	return ErrDelivery
}

// MenuConflictError indicates a menu entry id already exists, typically from
// a stale rebuild racing a fresh one. Rebuilds skip these.
type MenuConflictError struct {
	MenuID string
}

func (e *MenuConflictError) Error() string {
	return fmt.Sprintf("menu entry already exists: %s", e.MenuID)
}

func (e *MenuConflictError) Unwrap() error {
	return ErrMenuConflict
}

// Helper constructors for common cases

func ColorNotFound(id string) error {
	return &NotFoundError{Resource: "color", ID: id}
}

func PageNotFound(url string) error {
	return &NotFoundError{Resource: "page", ID: url}
}

func GroupNotFound(id string) error {
	return &NotFoundError{Resource: "group", ID: id}
}

func DuplicateColor(color string) error {
	return &DuplicateColorError{Color: color}
}

func CapacityExceeded(limit int) error {
	return &CapacityExceededError{Limit: limit}
}

func InvalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func MissingID(field string) error {
	return &ValidationError{Field: field, Message: "is required"}
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateColor checks if an error is a duplicate-color error.
func IsDuplicateColor(err error) bool {
	return errors.Is(err, ErrDuplicateColor)
}

// IsCapacityExceeded checks if an error is a capacity error.
func IsCapacityExceeded(err error) bool {
	return errors.Is(err, ErrCapacityExceeded)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsMenuConflict checks if an error is a menu id conflict.
func IsMenuConflict(err error) bool {
	return errors.Is(err, ErrMenuConflict)
}

// Code maps a domain error to its wire error code for message responses.
// Returns an empty string for errors with no stable code.
func Code(err error) string {
	switch {
	case IsCapacityExceeded(err):
		return CodeCapacityExceeded
	case IsDuplicateColor(err):
		return CodeDuplicateColor
	case IsNotFound(err):
		return CodeNotFound
	case IsValidationError(err):
		return CodeMissingID
	}
	return ""
}
