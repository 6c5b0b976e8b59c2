// Package backend defines the contract every per-language generator
// implements and the driver that invokes it. The driver owns sequencing and
// name assignment; backends own type mapping and text emission. Backends are
// plain interface implementations, not subclasses with override hooks, so
// they stay swappable.
package backend

import (
	"github.com/jsonbind-lang/jsonbind/internal/codegen/graph"
	"github.com/jsonbind-lang/jsonbind/internal/codegen/names"
)

// NamingConventions carries the backend's identifier styles, separately
// parameterizable for top-level bindings, named types, and properties.
type NamingConventions struct {
	TopLevels  names.Style
	NamedTypes names.Style
	Properties names.Style
}

// PropertyScoping decides how property names are namespaced.
type PropertyScoping int

const (
	// ScopeShared puts every property of every class into one shared
	// namespace. Uniqueness is stricter than strictly necessary, which
	// keeps cross-class helper generation simple.
	ScopeShared PropertyScoping = iota
	// ScopePerClass gives each class its own property namespace.
	ScopePerClass
)

// Backend is the set of operations a per-language generator supplies. The
// emission callbacks are invoked by Render in a fixed order: preamble, named
// types in dependency-safe order, top-level aliases, serializers.
type Backend interface {
	// Name identifies the backend (e.g. "go").
	Name() string

	// Naming returns the backend's identifier styles.
	Naming() NamingConventions

	// ForbiddenNames returns the reserved words forming the root naming
	// scope's forbidden set.
	ForbiddenNames() []string

	// PropertyScoping returns the backend's property collision rule.
	PropertyScoping() PropertyScoping

	// IsNameWorthy reports whether a top-level root type already denotes a
	// named type. If so, the top-level binding reuses that generated name
	// instead of minting a redundant alias.
	IsNameWorthy(t graph.Type) bool

	EmitPreamble(ctx *Context) error
	EmitClass(ctx *Context, class *graph.ClassType) error
	EmitUnion(ctx *Context, union *graph.UnionType) error
	EmitTopLevel(ctx *Context, binding ResolvedTopLevel) error
	EmitSerializers(ctx *Context) error
}

// TopLevel is one user-facing root binding handed to Render.
type TopLevel struct {
	Hint string
	Type graph.Type
}

// ResolvedTopLevel is a top-level binding after name assignment. Alias is
// false when the root already denotes a named type and the binding passes
// through without its own declaration.
type ResolvedTopLevel struct {
	Name  *names.Token
	Type  graph.Type
	Alias bool
}

// Result is one completed render: the full generated source plus the issue
// diagnostics collected along the way, returned separately so callers can
// surface warnings without parsing the output.
type Result struct {
	Source      string
	Diagnostics []Diagnostic
}
