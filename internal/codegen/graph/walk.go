package graph

import (
	"fmt"

	generrors "github.com/jsonbind-lang/jsonbind/internal/codegen/errors"
)

// NamedIn returns every named type reachable from the roots, deduplicated,
// in first-appearance pre-order. This order is what makes repeated renders
// byte-identical: it depends only on the graph shape, never on map iteration.
func NamedIn(roots ...Type) []Named {
	var result []Named
	seen := map[Named]bool{}

	var visit func(t Type)
	visit = func(t Type) {
		switch n := t.(type) {
		case *PrimitiveType:
			// leaf
		case *ArrayType:
			visit(n.Items)
		case *MapType:
			visit(n.Values)
		case *ClassType:
			if seen[n] {
				return
			}
			seen[n] = true
			result = append(result, n)
			for _, p := range n.Properties {
				visit(p.Type)
			}
		case *UnionType:
			if seen[n] {
				return
			}
			seen[n] = true
			result = append(result, n)
			for _, m := range n.members {
				visit(m)
			}
		default:
			panic(generrors.NewUnknownTypeKind(fmt.Sprintf("%T", t)))
		}
	}

	for _, root := range roots {
		visit(root)
	}
	return result
}

// DependencyOrder returns the named types reachable from the roots such that
// no named type appears before a named type it references, except where a
// reference cycle forces a break; cycles are broken at the first-appearance
// point. Post-order DFS with a stable visit sequence.
func DependencyOrder(roots ...Type) []Named {
	var result []Named
	done := map[Named]bool{}
	onStack := map[Named]bool{}

	var visit func(t Type)
	visitNamed := func(n Named, children func()) {
		if done[n] || onStack[n] {
			return
		}
		onStack[n] = true
		children()
		onStack[n] = false
		done[n] = true
		result = append(result, n)
	}
	visit = func(t Type) {
		switch n := t.(type) {
		case *PrimitiveType:
			// leaf
		case *ArrayType:
			visit(n.Items)
		case *MapType:
			visit(n.Values)
		case *ClassType:
			visitNamed(n, func() {
				for _, p := range n.Properties {
					visit(p.Type)
				}
			})
		case *UnionType:
			visitNamed(n, func() {
				for _, m := range n.members {
					visit(m)
				}
			})
		default:
			panic(generrors.NewUnknownTypeKind(fmt.Sprintf("%T", t)))
		}
	}

	for _, root := range roots {
		visit(root)
	}
	return result
}
