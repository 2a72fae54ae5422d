// Package util provides utility functions and common error types.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for pipeline failures
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnresolved       = errors.New("unresolved reference")
	ErrValidationFailed = errors.New("validation failed")
	ErrNoTemplateSet    = errors.New("no template set found")
	ErrRenderFailed     = errors.New("render failed")
)

// BuildError represents a failed build for one switch with field context.
// The wrapped sentinel distinguishes unresolved references from inputs that
// are outright invalid.
type BuildError struct {
	Switch   string
	Field    string
	Reason   string
	sentinel error
}

func (e *BuildError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("build failed for %s: %s: %s", e.Switch, e.Field, e.Reason)
	}
	return fmt.Sprintf("build failed for %s: %s", e.Switch, e.Reason)
}

func (e *BuildError) Unwrap() error {
	return e.sentinel
}

// NewBuildError creates a build error for a reference that could not be
// resolved against the topology or templates
func NewBuildError(switchName, field, reason string) *BuildError {
	return &BuildError{Switch: switchName, Field: field, Reason: reason, sentinel: ErrUnresolved}
}

// NewBuildInputError creates a build error for an input field whose value is
// invalid regardless of what else the topology declares
func NewBuildInputError(switchName, field, reason string) *BuildError {
	return &BuildError{Switch: switchName, Field: field, Reason: reason, sentinel: ErrInvalidInput}
}

// RenderError represents a template rendering failure for one section
type RenderError struct {
	Section string
	Reason  string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed for section %s: %s", e.Section, e.Reason)
}

func (e *RenderError) Unwrap() error {
	return ErrRenderFailed
}

// NewRenderError creates a render error for a section
func NewRenderError(section, reason string) *RenderError {
	return &RenderError{Section: section, Reason: reason}
}

// InputError represents a malformed topology description field
type InputError struct {
	Path   string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input at %s: %s", e.Path, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInputError creates an input error with a field path
func NewInputError(path, reason string) *InputError {
	return &InputError{Path: path, Reason: reason}
}

// ValidationError represents one or more validation failures
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "validation failed: " + e.Errors[0]
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a validation error from messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}

// ValidationBuilder helps accumulate validation errors
type ValidationBuilder struct {
	errors []string
}

// Add adds an error message if condition is false
func (v *ValidationBuilder) Add(condition bool, message string) *ValidationBuilder {
	if !condition {
		v.errors = append(v.errors, message)
	}
	return v
}

// AddError adds an error message unconditionally
func (v *ValidationBuilder) AddError(message string) *ValidationBuilder {
	v.errors = append(v.errors, message)
	return v
}

// AddErrorf adds a formatted error message
func (v *ValidationBuilder) AddErrorf(format string, args ...interface{}) *ValidationBuilder {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
	return v
}

// HasErrors returns true if there are validation errors
func (v *ValidationBuilder) HasErrors() bool {
	return len(v.errors) > 0
}

// Build returns the validation error or nil if no errors
func (v *ValidationBuilder) Build() error {
	if len(v.errors) == 0 {
		return nil
	}
	return &ValidationError{Errors: v.errors}
}
