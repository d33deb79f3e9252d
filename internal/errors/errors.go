// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrEmptyCatalog     = errors.New("reference catalog is empty")
	ErrTraderNotFound   = errors.New("trader profile not found")
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrCatalogInvalid   = errors.New("invalid reference catalog")
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrInputValidation  = errors.New("input validation failed")
)

// GenerationError reports a scenario run that could not be produced.
type GenerationError struct {
	Stage   string
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation error [%s]: %s: %v", e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("generation error [%s]: %s", e.Stage, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(stage, message string, err error) *GenerationError {
	return &GenerationError{
		Stage:   stage,
		Message: message,
		Err:     err,
	}
}

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// Is lets errors.Is(err, ErrInputValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInputValidation
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// CatalogError represents a defect in reference data.
type CatalogError struct {
	Section string
	Message string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog error [%s]: %s", e.Section, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return ErrCatalogInvalid
}

// NewCatalogError creates a new CatalogError.
func NewCatalogError(section, message string) *CatalogError {
	return &CatalogError{
		Section: section,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
