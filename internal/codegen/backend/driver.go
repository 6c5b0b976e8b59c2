package backend

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jsonbind-lang/jsonbind/internal/codegen/graph"
	"github.com/jsonbind-lang/jsonbind/internal/codegen/names"
)

// Render drives one generation pass: assign names, then invoke the
// backend's emission callbacks in the fixed order: named classes and unions
// interleaved dependency-safe, then top-level aliases, then serialization
// helpers. Rendering is purely functional over its inputs: the same (graph,
// options) pair always produces byte-identical output.
func Render(topLevels []TopLevel, b Backend, opts Options, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	roots := make([]graph.Type, len(topLevels))
	for i, tl := range topLevels {
		roots[i] = tl.Type
	}

	ctx := &Context{
		Options:       opts,
		typeNames:     map[graph.Named]*names.Token{},
		propertyNames: map[*graph.ClassType][]*names.Token{},
	}

	conventions := b.Naming()
	resolver := names.NewResolver(b.ForbiddenNames())
	rootScope := resolver.NewScope()

	// Name assignment walks first-appearance order so tokens do not depend
	// on the declaration order chosen below.
	appearance := graph.NamedIn(roots...)
	for _, n := range appearance {
		ctx.typeNames[n] = rootScope.Assign(n.Hint(), conventions.NamedTypes)
	}

	propScope := rootScope
	if b.PropertyScoping() == ScopeShared {
		propScope = resolver.NewScope()
	}
	for _, n := range appearance {
		class, ok := n.(*graph.ClassType)
		if !ok {
			continue
		}
		if b.PropertyScoping() == ScopePerClass {
			propScope = resolver.NewScope()
		}
		tokens := make([]*names.Token, len(class.Properties))
		for i, p := range class.Properties {
			tokens[i] = propScope.Assign(p.JSONKey, conventions.Properties)
		}
		ctx.propertyNames[class] = tokens
	}

	for _, tl := range topLevels {
		resolved := ResolvedTopLevel{Type: tl.Type}
		if b.IsNameWorthy(tl.Type) {
			named, ok := tl.Type.(graph.Named)
			if !ok {
				return nil, fmt.Errorf("backend %s: IsNameWorthy accepted a type with no name: %s", b.Name(), tl.Type.Kind())
			}
			resolved.Name = ctx.typeNames[named]
		} else {
			resolved.Name = rootScope.Assign(tl.Hint, conventions.TopLevels)
			resolved.Alias = true
		}
		ctx.topLevels = append(ctx.topLevels, resolved)
	}

	ctx.ordered = graph.DependencyOrder(roots...)

	logger.Debug("render starting",
		zap.String("backend", b.Name()),
		zap.String("namespace", opts.Namespace),
		zap.Int("named_types", len(ctx.ordered)),
		zap.Int("top_levels", len(topLevels)))

	if err := b.EmitPreamble(ctx); err != nil {
		return nil, fmt.Errorf("emit preamble: %w", err)
	}

	for _, n := range ctx.ordered {
		switch t := n.(type) {
		case *graph.ClassType:
			if err := b.EmitClass(ctx, t); err != nil {
				return nil, fmt.Errorf("emit class %q: %w", t.Hint(), err)
			}
		case *graph.UnionType:
			if err := b.EmitUnion(ctx, t); err != nil {
				return nil, fmt.Errorf("emit union %q: %w", t.Hint(), err)
			}
		default:
			panic(fmt.Sprintf("backend: unknown named type %T", n))
		}
	}

	for _, tl := range ctx.topLevels {
		if !tl.Alias {
			continue
		}
		if err := b.EmitTopLevel(ctx, tl); err != nil {
			return nil, fmt.Errorf("emit top-level %q: %w", tl.Name, err)
		}
	}

	if err := b.EmitSerializers(ctx); err != nil {
		return nil, fmt.Errorf("emit serializers: %w", err)
	}

	logger.Debug("render complete",
		zap.Int("bytes", len(ctx.source())),
		zap.Int("diagnostics", len(ctx.diagnostics)))

	return &Result{Source: ctx.source(), Diagnostics: ctx.diagnostics}, nil
}
