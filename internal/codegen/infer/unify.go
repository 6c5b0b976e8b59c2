package infer

import (
	"fmt"

	"github.com/jsonbind-lang/jsonbind/internal/codegen/attr"
	"github.com/jsonbind-lang/jsonbind/internal/codegen/graph"
)

// Unify merges the types inferred from two samples of the same value.
// Matching shapes collapse into one, integer widens to double, null makes
// its partner optional, and incompatible shapes become a union. Attribute
// bags merge via attr.Combine, so an unmergeable attribute kind surfaces
// here as an error.
func Unify(a, b graph.Type) (graph.Type, error) {
	return unify(hintOf(a, b), a, b)
}

func hintOf(a, b graph.Type) string {
	if n, ok := a.(graph.Named); ok && n.Hint() != "" {
		return n.Hint()
	}
	if n, ok := b.(graph.Named); ok {
		return n.Hint()
	}
	return ""
}

func unify(hint string, a, b graph.Type) (graph.Type, error) {
	// any carries no information and is absorbed by anything.
	if a.Kind() == graph.Any {
		return b, nil
	}
	if b.Kind() == graph.Any {
		return a, nil
	}

	// null makes its partner optional rather than forming a general union.
	if a.Kind() == graph.Null {
		return makeNullable(hint, b)
	}
	if b.Kind() == graph.Null {
		return makeNullable(hint, a)
	}

	if a.Kind() == graph.Union || b.Kind() == graph.Union {
		return unifyIntoUnion(hint, a, b)
	}

	switch {
	case a.Kind() == b.Kind():
		switch at := a.(type) {
		case *graph.PrimitiveType:
			return a, nil
		case *graph.ArrayType:
			items, err := unify(singular(hint), at.Items, b.(*graph.ArrayType).Items)
			if err != nil {
				return nil, err
			}
			return graph.NewArray(items), nil
		case *graph.MapType:
			values, err := unify(singular(hint), at.Values, b.(*graph.MapType).Values)
			if err != nil {
				return nil, err
			}
			return graph.NewMap(values), nil
		case *graph.ClassType:
			return unifyClasses(hint, at, b.(*graph.ClassType))
		default:
			panic(fmt.Sprintf("infer: unknown node type %T", a))
		}
	case isNumber(a) && isNumber(b):
		return graph.NewPrimitive(graph.Double), nil
	default:
		return unifyIntoUnion(hint, a, b)
	}
}

// unifyClasses merges two object shapes property-wise: keys of the first
// class keep their order, new keys from the second append after. A key
// present on only one side becomes optional.
func unifyClasses(hint string, a, b *graph.ClassType) (graph.Type, error) {
	inB := make(map[string]graph.Type, len(b.Properties))
	for _, p := range b.Properties {
		inB[p.JSONKey] = p.Type
	}
	inA := make(map[string]bool, len(a.Properties))

	properties := make([]graph.Property, 0, len(a.Properties)+len(b.Properties))
	for _, p := range a.Properties {
		inA[p.JSONKey] = true
		var (
			merged graph.Type
			err    error
		)
		if other, ok := inB[p.JSONKey]; ok {
			merged, err = unify(p.JSONKey, p.Type, other)
		} else {
			merged, err = makeNullable(p.JSONKey, p.Type)
		}
		if err != nil {
			return nil, err
		}
		properties = append(properties, graph.Property{JSONKey: p.JSONKey, Type: merged})
	}
	for _, p := range b.Properties {
		if inA[p.JSONKey] {
			continue
		}
		merged, err := makeNullable(p.JSONKey, p.Type)
		if err != nil {
			return nil, err
		}
		properties = append(properties, graph.Property{JSONKey: p.JSONKey, Type: merged})
	}

	class := graph.NewClass(pickHint(hint, a.Hint(), b.Hint()), properties)
	bag, err := attr.Combine(a.Attributes(), b.Attributes())
	if err != nil {
		return nil, err
	}
	class.SetAttributes(bag)
	return class, nil
}

// makeNullable returns a type that also admits null: null stays null, a
// union gains a null member at most once, anything else becomes a
// two-member optional union.
func makeNullable(hint string, t graph.Type) (graph.Type, error) {
	switch n := t.(type) {
	case *graph.PrimitiveType:
		if n.Kind() == graph.Null {
			return t, nil
		}
	case *graph.UnionType:
		if n.HasNull() {
			return t, nil
		}
		members := append(append([]graph.Type{}, n.Members()...), graph.NewPrimitive(graph.Null))
		union := graph.NewUnion(pickHint(hint, n.Hint()), members)
		union.SetAttributes(n.Attributes())
		return union, nil
	}
	return graph.NewUnion(hint, []graph.Type{t, graph.NewPrimitive(graph.Null)}), nil
}

// unifyIntoUnion folds the members of both sides into one member list,
// merging each incoming member with a compatible existing one where
// possible and appending it otherwise. First-appearance order is kept.
func unifyIntoUnion(hint string, a, b graph.Type) (graph.Type, error) {
	var members []graph.Type
	hasNull := false

	add := func(m graph.Type) error {
		switch m.Kind() {
		case graph.Any:
			return nil
		case graph.Null:
			hasNull = true
			return nil
		}
		for i, existing := range members {
			if !compatible(existing, m) {
				continue
			}
			merged, err := unify(hint, existing, m)
			if err != nil {
				return err
			}
			members[i] = merged
			return nil
		}
		members = append(members, m)
		return nil
	}

	for _, side := range []graph.Type{a, b} {
		if u, ok := side.(*graph.UnionType); ok {
			for _, m := range u.Members() {
				if err := add(m); err != nil {
					return nil, err
				}
			}
			continue
		}
		if err := add(side); err != nil {
			return nil, err
		}
	}

	switch {
	case len(members) == 0:
		if hasNull {
			return graph.NewPrimitive(graph.Null), nil
		}
		return graph.NewPrimitive(graph.Any), nil
	case len(members) == 1 && !hasNull:
		return members[0], nil
	}

	if hasNull {
		members = append(members, graph.NewPrimitive(graph.Null))
	}
	union := graph.NewUnion(pickHint(hint, hintOf(a, b)), members)
	bag, err := attr.Combine(a.Attributes(), b.Attributes())
	if err != nil {
		return nil, err
	}
	union.SetAttributes(bag)
	return union, nil
}

// compatible reports whether two union members should merge into one
// alternative instead of standing side by side.
func compatible(a, b graph.Type) bool {
	if a.Kind() == b.Kind() {
		return true
	}
	return isNumber(a) && isNumber(b)
}

func isNumber(t graph.Type) bool {
	return t.Kind() == graph.Integer || t.Kind() == graph.Double
}

func pickHint(hints ...string) string {
	for _, h := range hints {
		if h != "" {
			return h
		}
	}
	return ""
}
