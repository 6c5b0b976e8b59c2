package backend

import (
	"fmt"
	"strings"

	generrors "github.com/jsonbind-lang/jsonbind/internal/codegen/errors"
	"github.com/jsonbind-lang/jsonbind/internal/codegen/graph"
	"github.com/jsonbind-lang/jsonbind/internal/codegen/names"
)

// Context is the per-render emission state handed to backend callbacks: the
// assigned name tables, the accumulating output text, and the diagnostics
// gathered so far. A backend holds no state of its own across renders.
type Context struct {
	Options Options

	buf    strings.Builder
	indent int

	typeNames     map[graph.Named]*names.Token
	propertyNames map[*graph.ClassType][]*names.Token
	ordered       []graph.Named
	topLevels     []ResolvedTopLevel

	diagnostics []Diagnostic
}

// Line writes one formatted line at the current indentation. An empty
// format writes a blank line.
func (c *Context) Line(format string, args ...interface{}) {
	if format == "" {
		c.buf.WriteString("\n")
		return
	}
	for i := 0; i < c.indent; i++ {
		c.buf.WriteString("\t")
	}
	if len(args) > 0 {
		fmt.Fprintf(&c.buf, format, args...)
	} else {
		c.buf.WriteString(format)
	}
	c.buf.WriteString("\n")
}

// Indent increases the indentation level for subsequent lines.
func (c *Context) Indent() { c.indent++ }

// Dedent decreases the indentation level.
func (c *Context) Dedent() { c.indent-- }

// NameOf returns the token assigned to a named type. Rendering a type that
// never went through name assignment is a pipeline invariant violation.
func (c *Context) NameOf(n graph.Named) (*names.Token, error) {
	tok, ok := c.typeNames[n]
	if !ok {
		return nil, generrors.NewUnresolvedName(n.Hint())
	}
	return tok, nil
}

// PropertyNames returns the tokens for a class's properties, in declared
// property order.
func (c *Context) PropertyNames(class *graph.ClassType) []*names.Token {
	return c.propertyNames[class]
}

// NamedTypes returns every named type of this render in the dependency-safe
// order they were (or will be) declared.
func (c *Context) NamedTypes() []graph.Named { return c.ordered }

// TopLevels returns the resolved top-level bindings in input order.
func (c *Context) TopLevels() []ResolvedTopLevel { return c.topLevels }

// Issue records one diagnostic for an any/null placeholder position.
func (c *Context) Issue(kind AnnotationKind, path string) {
	var message string
	switch kind {
	case AnnotationAmbiguousAny:
		message = fmt.Sprintf("%s: input shape is ambiguous, falling back to a raw JSON value", path)
	case AnnotationNullPlaceholder:
		message = fmt.Sprintf("%s: input was only ever null, falling back to a raw JSON value", path)
	default:
		message = fmt.Sprintf("%s: unresolved input shape", path)
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{Kind: kind, Path: path, Message: message})
}

func (c *Context) source() string { return c.buf.String() }
