package golang

import (
	"fmt"

	"github.com/jsonbind-lang/jsonbind/internal/codegen/backend"
	generrors "github.com/jsonbind-lang/jsonbind/internal/codegen/errors"
	"github.com/jsonbind-lang/jsonbind/internal/codegen/graph"
)

// EmitSerializers writes the conversion code: entry-point functions for
// every top-level binding, then UnmarshalJSON/MarshalJSON pairs for every
// class and multi-member union in declaration order.
func (b *Backend) EmitSerializers(ctx *backend.Context) error {
	emitted := map[string]bool{}
	for _, tl := range ctx.TopLevels() {
		if emitted[tl.Name.String()] {
			continue
		}
		emitted[tl.Name.String()] = true
		b.emitTopLevelFuncs(ctx, tl)
	}

	for _, n := range ctx.NamedTypes() {
		switch t := n.(type) {
		case *graph.ClassType:
			if err := b.emitClassSerializers(ctx, t); err != nil {
				return err
			}
		case *graph.UnionType:
			if err := b.emitUnionSerializers(ctx, t); err != nil {
				return err
			}
		default:
			panic(fmt.Sprintf("golang: unknown named type %T", n))
		}
	}
	return nil
}

// aliasDeclared reports whether a named type's declaration is a type alias.
// Single-member optional unions declare as pointer aliases, and an alias of
// a pointer type cannot carry methods.
func aliasDeclared(t graph.Type) bool {
	u, ok := t.(*graph.UnionType)
	if !ok {
		return false
	}
	return len(u.NonNull()) == 1 && u.HasNull()
}

// emitTopLevelFuncs writes the user-facing entry points for one binding.
// Aliases cannot carry methods, so they get a Marshal function instead.
func (b *Backend) emitTopLevelFuncs(ctx *backend.Context, tl backend.ResolvedTopLevel) {
	name := tl.Name.String()

	ctx.Line("func Unmarshal%s(data []byte) (%s, error) {", name, name)
	ctx.Indent()
	ctx.Line("var r %s", name)
	ctx.Line("err := json.Unmarshal(data, &r)")
	ctx.Line("return r, err")
	ctx.Dedent()
	ctx.Line("}")
	ctx.Line("")

	if tl.Alias || aliasDeclared(tl.Type) {
		ctx.Line("func Marshal%s(v %s) ([]byte, error) {", name, name)
		ctx.Indent()
		ctx.Line("return json.Marshal(v)")
		ctx.Dedent()
		ctx.Line("}")
	} else {
		ctx.Line("func (r *%s) Marshal() ([]byte, error) {", name)
		ctx.Indent()
		ctx.Line("return json.Marshal(r)")
		ctx.Dedent()
		ctx.Line("}")
	}
	ctx.Line("")
}

// propertyRead classifies one property's read discipline.
func propertyRead(t graph.Type) (permissive bool) {
	switch n := t.(type) {
	case *graph.PrimitiveType:
		return n.Kind() == graph.Any || n.Kind() == graph.Null
	case *graph.UnionType:
		return n.HasNull()
	default:
		return false
	}
}

// emitClassSerializers writes the strict/permissive decoder and the
// declared-order encoder for one class.
func (b *Backend) emitClassSerializers(ctx *backend.Context, class *graph.ClassType) error {
	tok, err := ctx.NameOf(class)
	if err != nil {
		return err
	}
	name := tok.String()
	propNames := ctx.PropertyNames(class)

	ctx.Line("func (x *%s) UnmarshalJSON(data []byte) error {", name)
	ctx.Indent()
	ctx.Line("var raw map[string]json.RawMessage")
	ctx.Line("if err := json.Unmarshal(data, &raw); err != nil {")
	ctx.Indent()
	ctx.Line("return err")
	ctx.Dedent()
	ctx.Line("}")
	for i, p := range class.Properties {
		field := propNames[i].String()
		if propertyRead(p.Type) {
			ctx.Line("if _, err := jsonrt.ReadOptional(raw, %s, &x.%s); err != nil {", quoteKey(p.JSONKey), field)
		} else {
			ctx.Line("if err := jsonrt.ReadStrict(raw, %s, &x.%s); err != nil {", quoteKey(p.JSONKey), field)
		}
		ctx.Indent()
		ctx.Line("return err")
		ctx.Dedent()
		ctx.Line("}")
	}
	ctx.Line("return nil")
	ctx.Dedent()
	ctx.Line("}")
	ctx.Line("")

	// A class with no properties still encodes as {}, never null.
	ctx.Line("func (x %s) MarshalJSON() ([]byte, error) {", name)
	ctx.Indent()
	if len(class.Properties) == 0 {
		ctx.Line("return jsonrt.NewObjectWriter().Finish()")
	} else {
		ctx.Line("w := jsonrt.NewObjectWriter()")
		for i, p := range class.Properties {
			ctx.Line("w.Field(%s, x.%s)", quoteKey(p.JSONKey), propNames[i])
		}
		ctx.Line("return w.Finish()")
	}
	ctx.Dedent()
	ctx.Line("}")
	ctx.Line("")
	return nil
}

// unionDispatch is one decode case of the fixed predicate table.
type unionDispatch struct {
	caseLabel string
	member    graph.Type
	field     string
}

// emitUnionSerializers writes decode and encode dispatch for a multi-member
// union. Single-member optional unions are plain pointer aliases and need
// no code of their own.
func (b *Backend) emitUnionSerializers(ctx *backend.Context, union *graph.UnionType) error {
	nonNull := union.NonNull()
	if len(nonNull) < 2 {
		if len(nonNull) == 0 {
			return generrors.NewEmptyUnion(union.Hint())
		}
		if !union.HasNull() {
			return generrors.NewDegenerateUnion(union.Hint())
		}
		return nil
	}

	tok, err := ctx.NameOf(union)
	if err != nil {
		return err
	}
	name := tok.String()

	fields := make([]string, len(nonNull))
	for i, member := range nonNull {
		fields[i], err = alternativeName(ctx, member)
		if err != nil {
			return err
		}
	}

	dispatches, err := b.unionDispatchTable(nonNull, fields)
	if err != nil {
		return err
	}

	ctx.Line("func (x *%s) UnmarshalJSON(data []byte) error {", name)
	ctx.Indent()
	for _, f := range fields {
		ctx.Line("x.%s = nil", f)
	}
	ctx.Line("kind, err := jsonrt.Classify(data)")
	ctx.Line("if err != nil {")
	ctx.Indent()
	ctx.Line("return err")
	ctx.Dedent()
	ctx.Line("}")
	ctx.Line("switch kind {")
	for _, d := range dispatches {
		typ, err := b.typeForQuiet(ctx, d.member)
		if err != nil {
			return err
		}
		ctx.Line("case %s:", d.caseLabel)
		ctx.Indent()
		ctx.Line("var v %s", typ)
		ctx.Line("if err := json.Unmarshal(data, &v); err != nil {")
		ctx.Indent()
		ctx.Line("return err")
		ctx.Dedent()
		ctx.Line("}")
		ctx.Line("x.%s = &v", d.field)
		ctx.Line("return nil")
		ctx.Dedent()
	}
	if union.HasNull() {
		ctx.Line("case jsonrt.Null:")
		ctx.Indent()
		ctx.Line("return nil")
		ctx.Dedent()
	}
	ctx.Line("}")
	ctx.Line("return jsonrt.NoAlternative(%q, kind)", name)
	ctx.Dedent()
	ctx.Line("}")
	ctx.Line("")

	// Encode dispatches over the alternatives in declaration order. The
	// branch list is generated from the same member list as the struct
	// fields, so an alternative cannot be left without a branch.
	ctx.Line("func (x %s) MarshalJSON() ([]byte, error) {", name)
	ctx.Indent()
	for _, f := range fields {
		ctx.Line("if x.%s != nil {", f)
		ctx.Indent()
		ctx.Line("return json.Marshal(*x.%s)", f)
		ctx.Dedent()
		ctx.Line("}")
	}
	ctx.Line("return nil, jsonrt.NoneSet(%q)", name)
	ctx.Dedent()
	ctx.Line("}")
	ctx.Line("")
	return nil
}

// unionDispatchTable orders the decode cases by the fixed predicate
// priority: bool, integer, double, string, object-as-class, object-as-map,
// array. A double alternative also claims integer-shaped input when no
// integer alternative exists; a map alternative claims objects only when no
// class alternative exists.
func (b *Backend) unionDispatchTable(members []graph.Type, fields []string) ([]unionDispatch, error) {
	var boolAlt, intAlt, doubleAlt, stringAlt, classAlt, mapAlt, arrayAlt *unionDispatch

	for i, member := range members {
		d := &unionDispatch{member: member, field: fields[i]}
		switch n := member.(type) {
		case *graph.PrimitiveType:
			switch n.Kind() {
			case graph.Bool:
				boolAlt = d
			case graph.Integer:
				intAlt = d
			case graph.Double:
				doubleAlt = d
			case graph.String:
				stringAlt = d
			case graph.Any, graph.Null:
				// No predicate claims these; they are encode-only.
			default:
				panic(fmt.Sprintf("golang: primitive with kind %s", n.Kind()))
			}
		case *graph.ArrayType:
			arrayAlt = d
		case *graph.MapType:
			mapAlt = d
		case *graph.ClassType:
			classAlt = d
		case *graph.UnionType:
			return nil, generrors.NewEmissionFailed(
				fmt.Sprintf("union %q directly contains another union; upstream unification should have flattened it", fields[i]))
		default:
			panic(fmt.Sprintf("golang: unknown node type %T", member))
		}
	}

	var table []unionDispatch
	if boolAlt != nil {
		boolAlt.caseLabel = "jsonrt.Bool"
		table = append(table, *boolAlt)
	}
	if intAlt != nil {
		intAlt.caseLabel = "jsonrt.Integer"
		table = append(table, *intAlt)
	}
	if doubleAlt != nil {
		doubleAlt.caseLabel = "jsonrt.Double"
		if intAlt == nil {
			doubleAlt.caseLabel = "jsonrt.Integer, jsonrt.Double"
		}
		table = append(table, *doubleAlt)
	}
	if stringAlt != nil {
		stringAlt.caseLabel = "jsonrt.String"
		table = append(table, *stringAlt)
	}
	if classAlt != nil {
		classAlt.caseLabel = "jsonrt.Object"
		table = append(table, *classAlt)
	}
	if mapAlt != nil && classAlt == nil {
		mapAlt.caseLabel = "jsonrt.Object"
		table = append(table, *mapAlt)
	}
	if arrayAlt != nil {
		arrayAlt.caseLabel = "jsonrt.Array"
		table = append(table, *arrayAlt)
	}
	return table, nil
}
