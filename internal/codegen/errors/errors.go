// Package errors provides structured error handling for the jsonbind
// generator. It defines error codes, categories, and formatting for both
// human-readable terminal output and machine-parseable JSON.
package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a unique error code in the jsonbind generator
type ErrorCode string

// ErrorCategory represents the category of generator error
type ErrorCategory string

const (
	// CategoryConfig represents backend option errors (CFG001-099)
	CategoryConfig ErrorCategory = "config"
	// CategoryInvariant represents pipeline invariant violations (INV100-199)
	CategoryInvariant ErrorCategory = "invariant"
	// CategoryAttribute represents attribute merge errors (ATR200-299)
	CategoryAttribute ErrorCategory = "attribute"
	// CategoryEmission represents code emission errors (GEN300-399)
	CategoryEmission ErrorCategory = "emission"
)

// ErrorSeverity indicates the severity level of an error
type ErrorSeverity string

const (
	// SeverityError indicates an error that aborts the render
	SeverityError ErrorSeverity = "error"
	// SeverityWarning indicates a warning that suggests potential issues
	SeverityWarning ErrorSeverity = "warning"
)

// GeneratorError represents a structured generator error. Every
// generator-time failure is fatal for its render invocation: the caller
// corrects the input graph or options and re-invokes.
type GeneratorError struct {
	// Code is the unique error code (e.g., "CFG001", "INV101")
	Code ErrorCode `json:"code"`
	// Type is a machine-readable error type identifier
	Type string `json:"type"`
	// Category is the error category
	Category ErrorCategory `json:"category"`
	// Severity is the error severity level
	Severity ErrorSeverity `json:"severity"`
	// Message is the primary error message
	Message string `json:"message"`
	// Suggestion provides a hint for fixing the error (optional)
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface
func (e *GeneratorError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ToJSON returns the error as a JSON string
func (e *GeneratorError) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// WithSuggestion sets a fix hint on the error
func (e *GeneratorError) WithSuggestion(s string) *GeneratorError {
	e.Suggestion = s
	return e
}

func newError(code ErrorCode, errType string, category ErrorCategory, severity ErrorSeverity, message string) *GeneratorError {
	return &GeneratorError{
		Code:     code,
		Type:     errType,
		Category: category,
		Severity: severity,
		Message:  message,
	}
}
