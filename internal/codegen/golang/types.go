package golang

import (
	"fmt"

	"github.com/jsonbind-lang/jsonbind/internal/codegen/backend"
	generrors "github.com/jsonbind-lang/jsonbind/internal/codegen/errors"
	"github.com/jsonbind-lang/jsonbind/internal/codegen/graph"
)

var _ backend.Backend = (*Backend)(nil)

// typeFor maps one graph node to its Go type expression. Any and null
// placeholders map to a raw JSON value and record an issue diagnostic at
// the given path.
func (b *Backend) typeFor(ctx *backend.Context, t graph.Type, path string) (string, error) {
	return b.typeExpr(ctx, t, path, true)
}

// typeForQuiet is typeFor without diagnostic recording, for emission sites
// that re-derive a type already reported during declaration emission.
func (b *Backend) typeForQuiet(ctx *backend.Context, t graph.Type) (string, error) {
	return b.typeExpr(ctx, t, "", false)
}

func (b *Backend) typeExpr(ctx *backend.Context, t graph.Type, path string, record bool) (string, error) {
	switch n := t.(type) {
	case *graph.PrimitiveType:
		switch n.Kind() {
		case graph.Any:
			if record {
				ctx.Issue(backend.AnnotationAmbiguousAny, path)
			}
			return "jsonrt.Value", nil
		case graph.Null:
			if record {
				ctx.Issue(backend.AnnotationNullPlaceholder, path)
			}
			return "jsonrt.Value", nil
		case graph.Bool:
			return "bool", nil
		case graph.Integer:
			return "int64", nil
		case graph.Double:
			return "float64", nil
		case graph.String:
			return "string", nil
		default:
			panic(fmt.Sprintf("golang: primitive with kind %s", n.Kind()))
		}
	case *graph.ArrayType:
		items, err := b.typeExpr(ctx, n.Items, path+"[]", record)
		if err != nil {
			return "", err
		}
		return "[]" + items, nil
	case *graph.MapType:
		values, err := b.typeExpr(ctx, n.Values, path+"{}", record)
		if err != nil {
			return "", err
		}
		return "map[string]" + values, nil
	case *graph.ClassType:
		tok, err := ctx.NameOf(n)
		if err != nil {
			return "", err
		}
		return tok.String(), nil
	case *graph.UnionType:
		return b.unionRef(ctx, n)
	default:
		panic(fmt.Sprintf("golang: unknown node type %T", t))
	}
}

// unionRef maps a union reference. Single-member optional unions are
// declared as pointer aliases, so the bare name already carries the
// optionality; multi-member unions take a pointer wrap when null is a
// member.
func (b *Backend) unionRef(ctx *backend.Context, u *graph.UnionType) (string, error) {
	nonNull := u.NonNull()
	tok, err := ctx.NameOf(u)
	if err != nil {
		return "", err
	}

	switch {
	case len(nonNull) == 0:
		return "", generrors.NewEmptyUnion(u.Hint())
	case len(nonNull) == 1 && !u.HasNull():
		// Upstream collapses these before they reach a backend.
		return "", generrors.NewDegenerateUnion(u.Hint())
	case len(nonNull) == 1:
		return tok.String(), nil
	default:
		if u.HasNull() {
			return "*" + tok.String(), nil
		}
		return tok.String(), nil
	}
}

// alternativeName derives the union field name for one member. Class
// members use their generated type name; everything else names its kind.
func alternativeName(ctx *backend.Context, member graph.Type) (string, error) {
	switch n := member.(type) {
	case *graph.PrimitiveType:
		switch n.Kind() {
		case graph.Bool:
			return "Bool", nil
		case graph.Integer:
			return "Integer", nil
		case graph.Double:
			return "Double", nil
		case graph.String:
			return "String", nil
		case graph.Any, graph.Null:
			return "Anything", nil
		default:
			panic(fmt.Sprintf("golang: primitive with kind %s", n.Kind()))
		}
	case *graph.ArrayType:
		return "Array", nil
	case *graph.MapType:
		return "Map", nil
	case *graph.ClassType:
		tok, err := ctx.NameOf(n)
		if err != nil {
			return "", err
		}
		return tok.String(), nil
	case *graph.UnionType:
		tok, err := ctx.NameOf(n)
		if err != nil {
			return "", err
		}
		return tok.String(), nil
	default:
		panic(fmt.Sprintf("golang: unknown node type %T", member))
	}
}
