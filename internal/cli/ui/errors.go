package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jsonbind-lang/jsonbind/internal/codegen/backend"
	generrors "github.com/jsonbind-lang/jsonbind/internal/codegen/errors"
)

// ErrorLevel represents the severity of a message
type ErrorLevel int

const (
	ErrorLevelError ErrorLevel = iota
	ErrorLevelWarning
	ErrorLevelInfo
)

// ErrorOptions configures the error message formatting
type ErrorOptions struct {
	Level        ErrorLevel
	Context      string
	Problem      string
	Suggestions  []string
	HelpCommands []string
	NoColor      bool
}

// FormatError creates a standardized error message with suggestions and help commands
//
// Example output:
//
//	❌ CFG001: package name "my-models" is not a valid identifier
//
//	   Did you mean: my_models?
//
//	   → Get help: jsonbind generate --help
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	// Determine colors and symbol based on level
	var headerColor *color.Color
	var symbol string

	switch opts.Level {
	case ErrorLevelError:
		headerColor = color.New(color.FgRed, color.Bold)
		symbol = "❌"
	case ErrorLevelWarning:
		headerColor = color.New(color.FgYellow, color.Bold)
		symbol = "⚠️"
	case ErrorLevelInfo:
		headerColor = color.New(color.FgCyan, color.Bold)
		symbol = "ℹ️"
	}

	// Disable colors if requested
	if opts.NoColor {
		headerColor.DisableColor()
	}

	// Header line with context
	if opts.Context != "" {
		headerColor.Fprintf(&b, "%s %s: %s\n", symbol, strings.ToUpper(opts.Context), opts.Problem)
	} else {
		headerColor.Fprintf(&b, "%s %s\n", symbol, opts.Problem)
	}

	// Suggestions
	if len(opts.Suggestions) > 0 {
		b.WriteString("\n")
		yellow := color.New(color.FgYellow)
		if opts.NoColor {
			yellow.DisableColor()
		}
		yellow.Fprintf(&b, "   Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	// Help commands
	if len(opts.HelpCommands) > 0 {
		b.WriteString("\n")
		cyan := color.New(color.FgCyan)
		if opts.NoColor {
			cyan.DisableColor()
		}
		for _, cmd := range opts.HelpCommands {
			cyan.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

// WriteError writes a formatted error message to the writer
func WriteError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

// FormatGeneratorError renders a structured generation error with its code,
// category, and suggestion if one is attached.
func FormatGeneratorError(err *generrors.GeneratorError, noColor bool) string {
	opts := ErrorOptions{
		Level:   ErrorLevelError,
		Context: string(err.Category),
		Problem: fmt.Sprintf("%s: %s", err.Code, err.Message),
		HelpCommands: []string{
			"Get help: jsonbind generate --help",
		},
		NoColor: noColor,
	}
	if err.Suggestion != "" {
		opts.Suggestions = []string{err.Suggestion}
	}
	return FormatError(opts)
}

// FormatDiagnostic renders one generation warning. These accompany a
// successful render; the output file was still written.
func FormatDiagnostic(d backend.Diagnostic, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:   ErrorLevelWarning,
		Problem: d.Message,
		NoColor: noColor,
	})
}

// WriteDiagnostics writes every generation warning to the writer.
func WriteDiagnostics(w io.Writer, diags []backend.Diagnostic, noColor bool) {
	for _, d := range diags {
		fmt.Fprint(w, FormatDiagnostic(d, noColor))
	}
}

// FormatSuccess creates a success message
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success message to the writer
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}

// UnknownFormatError creates an error for an unrecognized input format,
// with fuzzy suggestions from the supported set.
func UnknownFormatError(format string, supported []string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:       ErrorLevelError,
		Context:     "UNKNOWN FORMAT",
		Problem:     fmt.Sprintf("Cannot read samples as '%s'.", format),
		Suggestions: FindSimilar(format, supported, nil),
		HelpCommands: []string{
			"Get help: jsonbind generate --help",
		},
		NoColor: noColor,
	})
}
