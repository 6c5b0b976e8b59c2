// Package names allocates final, collision-free identifiers for generated
// code. Backends describe what a legal name looks like (sanitizer + casing)
// and which names are forbidden; this package owns uniqueness. Backends
// receive opaque tokens and render them verbatim, never inventing
// identifiers of their own.
package names

import "fmt"

// Token is an allocated identifier. It is opaque to backends: the only
// legal operation at emission time is rendering String() verbatim.
type Token struct {
	value string
}

func (t *Token) String() string { return t.value }

// SanitizeFunc strips or replaces characters that are illegal in the
// target's identifiers.
type SanitizeFunc func(string) string

// CasingFunc applies the target's casing convention to a sanitized name.
type CasingFunc func(string) string

// Style pairs a sanitizer with a casing transform. Backends parameterize
// top-level bindings, named types, and properties separately.
type Style struct {
	Sanitize SanitizeFunc
	Casing   CasingFunc
}

func (s Style) apply(hint string) string {
	name := hint
	if s.Sanitize != nil {
		name = s.Sanitize(name)
	}
	if s.Casing != nil {
		name = s.Casing(name)
	}
	return name
}

// Resolver hands out scopes that share one forbidden-name set: the reserved
// words of the target language plus anything the backend pre-claims.
type Resolver struct {
	forbidden map[string]bool
}

// NewResolver creates a resolver with the given forbidden-name set.
func NewResolver(forbidden []string) *Resolver {
	set := make(map[string]bool, len(forbidden))
	for _, name := range forbidden {
		set[name] = true
	}
	return &Resolver{forbidden: set}
}

// NewScope creates a scope. Names are unique within one scope; two scopes
// may allocate the same name. Every scope respects the resolver's forbidden
// set.
func (r *Resolver) NewScope() *Scope {
	return &Scope{resolver: r, taken: map[string]bool{}}
}

// Scope is one uniqueness domain. Allocation is deterministic: the same
// sequence of Assign calls yields the same tokens.
type Scope struct {
	resolver *Resolver
	taken    map[string]bool
}

// Assign styles hint and returns a token for the first legal, unclaimed
// variant. Collisions are resolved by numeric suffixing in request order.
func (s *Scope) Assign(hint string, style Style) *Token {
	base := style.apply(hint)
	if base == "" {
		base = style.apply("empty")
	}

	name := base
	for suffix := 1; s.resolver.forbidden[name] || s.taken[name]; suffix++ {
		name = fmt.Sprintf("%s%d", base, suffix)
	}
	s.taken[name] = true
	return &Token{value: name}
}
