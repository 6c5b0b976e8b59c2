// Package golang is the reference backend: it renders the type graph as Go
// struct declarations plus JSON conversion code. Generated output imports
// pkg/jsonrt for the runtime behavior the generator promises (strict and
// permissive reads, the union predicate table, declared-order encoding).
package golang

import (
	"strings"
	"unicode"

	"github.com/jsonbind-lang/jsonbind/internal/codegen/backend"
	"github.com/jsonbind-lang/jsonbind/internal/codegen/graph"
	"github.com/jsonbind-lang/jsonbind/internal/codegen/names"
)

// RuntimeImport is the package generated code pulls its runtime from.
const RuntimeImport = "github.com/jsonbind-lang/jsonbind/pkg/jsonrt"

// Backend implements the rendering contract for Go output.
type Backend struct{}

// New creates the Go backend. It holds no per-render state; all emission
// state lives in the driver's context.
func New() *Backend { return &Backend{} }

// Name identifies the backend.
func (b *Backend) Name() string { return "go" }

// goKeywords plus predeclared identifiers form the forbidden-name set of
// the root naming scope.
var goKeywords = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type",
	"var",
}

var goPredeclared = []string{
	"any", "append", "bool", "byte", "cap", "clear", "close", "complex",
	"complex64", "complex128", "copy", "delete", "error", "false", "float32",
	"float64", "imag", "int", "int8", "int16", "int32", "int64", "iota",
	"len", "make", "max", "min", "new", "nil", "panic", "print", "println",
	"real", "recover", "rune", "string", "true", "uint", "uint8", "uint16",
	"uint32", "uint64", "uintptr",
}

// ForbiddenNames returns Go's keywords and predeclared identifiers, plus
// the package names generated imports claim.
func (b *Backend) ForbiddenNames() []string {
	forbidden := make([]string, 0, len(goKeywords)+len(goPredeclared)+2)
	forbidden = append(forbidden, goKeywords...)
	forbidden = append(forbidden, goPredeclared...)
	forbidden = append(forbidden, "json", "jsonrt")
	return forbidden
}

// Naming returns the Go identifier styles. Top-levels, named types, and
// properties all render as exported PascalCase; they are parameterized
// separately because the contract requires it, not because Go distinguishes
// them.
func (b *Backend) Naming() backend.NamingConventions {
	style := names.Style{Sanitize: sanitizeIdentifier, Casing: toPascalCase}
	return backend.NamingConventions{
		TopLevels:  style,
		NamedTypes: style,
		Properties: style,
	}
}

// PropertyScoping puts every property name into one shared namespace across
// all classes.
func (b *Backend) PropertyScoping() backend.PropertyScoping {
	return backend.ScopeShared
}

// IsNameWorthy reports whether a top-level root already denotes a generated
// named type: classes and unions reuse their own name, everything else gets
// an alias.
func (b *Backend) IsNameWorthy(t graph.Type) bool {
	switch t.Kind() {
	case graph.Class, graph.Union:
		return true
	default:
		return false
	}
}

// sanitizeIdentifier replaces every character that is illegal in a Go
// identifier with a word break, so casing can absorb it.
func sanitizeIdentifier(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// initialisms that render all-caps in Go names, as gofmt'd code does.
var initialisms = map[string]string{
	"id":   "ID",
	"url":  "URL",
	"uri":  "URI",
	"uuid": "UUID",
	"api":  "API",
	"http": "HTTP",
	"json": "JSON",
	"xml":  "XML",
	"html": "HTML",
	"sql":  "SQL",
	"ip":   "IP",
}

// toPascalCase converts a sanitized, space-separated name to PascalCase,
// splitting snake_case-style words and honoring common initialisms.
func toPascalCase(name string) string {
	words := strings.Fields(name)
	var sb strings.Builder
	for _, word := range words {
		for _, part := range splitCamel(word) {
			lower := strings.ToLower(part)
			if upper, ok := initialisms[lower]; ok {
				sb.WriteString(upper)
				continue
			}
			sb.WriteString(strings.ToUpper(part[:1]))
			sb.WriteString(strings.ToLower(part[1:]))
		}
	}
	out := sb.String()
	if out == "" {
		return out
	}
	// Identifiers cannot start with a digit.
	if unicode.IsDigit(rune(out[0])) {
		out = "The" + out
	}
	return out
}

// splitCamel breaks an existing camelCase word at its case boundaries so
// recasing does not destroy them.
func splitCamel(word string) []string {
	var parts []string
	start := 0
	runes := []rune(word)
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	parts = append(parts, string(runes[start:]))
	return parts
}
