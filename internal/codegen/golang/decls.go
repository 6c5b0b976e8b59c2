package golang

import (
	"fmt"
	"strings"

	"github.com/jsonbind-lang/jsonbind/internal/codegen/attr"
	"github.com/jsonbind-lang/jsonbind/internal/codegen/backend"
	generrors "github.com/jsonbind-lang/jsonbind/internal/codegen/errors"
	"github.com/jsonbind-lang/jsonbind/internal/codegen/graph"
)

// EmitPreamble writes the generated-file header, package clause, and import
// block. Imports are derived from a shape scan so a render with no classes
// or unions does not drag in unused packages.
func (b *Backend) EmitPreamble(ctx *backend.Context) error {
	ctx.Line("// Code generated by jsonbind. DO NOT EDIT.")

	if tls := ctx.TopLevels(); len(tls) > 0 {
		ctx.Line("//")
		ctx.Line("// To parse and unparse this JSON data, add this code to your project and do:")
		ctx.Line("//")
		for _, tl := range tls {
			name := tl.Name.String()
			recv := lowerCamel(name)
			ctx.Line("//\t%s, err := Unmarshal%s(bytes)", recv, name)
			if tl.Alias || aliasDeclared(tl.Type) {
				ctx.Line("//\tbytes, err = Marshal%s(%s)", name, recv)
			} else {
				ctx.Line("//\tbytes, err = %s.Marshal()", recv)
			}
		}
	}

	ctx.Line("")
	ctx.Line("package %s", ctx.Options.Namespace)
	ctx.Line("")

	needsJSON, needsRuntime := scanImports(ctx)
	switch {
	case needsJSON && needsRuntime:
		ctx.Line("import (")
		ctx.Indent()
		ctx.Line("%q", "encoding/json")
		ctx.Line("")
		ctx.Line("%q", RuntimeImport)
		ctx.Dedent()
		ctx.Line(")")
		ctx.Line("")
	case needsJSON:
		ctx.Line("import %q", "encoding/json")
		ctx.Line("")
	case needsRuntime:
		ctx.Line("import %q", RuntimeImport)
		ctx.Line("")
	}

	return nil
}

// scanImports walks every reachable node once and decides which imports the
// generated file needs. encoding/json backs all conversion code; the
// runtime is needed for raw values, class property reads, and union
// dispatch.
func scanImports(ctx *backend.Context) (needsJSON, needsRuntime bool) {
	seen := map[graph.Named]bool{}

	var visit func(t graph.Type)
	visit = func(t graph.Type) {
		switch n := t.(type) {
		case *graph.PrimitiveType:
			if n.Kind() == graph.Any || n.Kind() == graph.Null {
				needsRuntime = true
			}
		case *graph.ArrayType:
			visit(n.Items)
		case *graph.MapType:
			visit(n.Values)
		case *graph.ClassType:
			if seen[n] {
				return
			}
			seen[n] = true
			needsRuntime = true
			for _, p := range n.Properties {
				visit(p.Type)
			}
		case *graph.UnionType:
			if seen[n] {
				return
			}
			seen[n] = true
			if len(n.NonNull()) >= 2 {
				needsRuntime = true
			}
			// A null member only marks optionality; it never reaches a
			// type expression, so it must not pull the runtime in.
			for _, m := range n.NonNull() {
				visit(m)
			}
		default:
			panic(fmt.Sprintf("golang: unknown node type %T", t))
		}
	}

	for _, tl := range ctx.TopLevels() {
		needsJSON = true
		visit(tl.Type)
	}
	return needsJSON, needsRuntime
}

// EmitClass writes one struct declaration: one field per property in
// declared order, no default values.
func (b *Backend) EmitClass(ctx *backend.Context, class *graph.ClassType) error {
	tok, err := ctx.NameOf(class)
	if err != nil {
		return err
	}

	emitDescriptions(ctx, class.Attributes())
	ctx.Line("type %s struct {", tok)
	ctx.Indent()

	type fieldInfo struct {
		name string
		typ  string
		tag  string
		docs []string
	}

	propDocs, _ := attr.Get(class.Attributes(), attr.PropertyDescriptions)
	propNames := ctx.PropertyNames(class)

	fields := make([]fieldInfo, 0, len(class.Properties))
	for i, p := range class.Properties {
		typ, err := b.typeFor(ctx, p.Type, tok.String()+"."+p.JSONKey)
		if err != nil {
			return err
		}

		var tag string
		if tagSafe(p.JSONKey) {
			jsonTag := p.JSONKey
			if propertyRead(p.Type) {
				jsonTag += ",omitempty"
			}
			tag = fmt.Sprintf("`json:%q`", jsonTag)
		}

		var docs []string
		if set, ok := propDocs[p.JSONKey]; ok {
			docs = set.Sorted()
		}

		fields = append(fields, fieldInfo{
			name: propNames[i].String(),
			typ:  typ,
			tag:  tag,
			docs: docs,
		})
	}

	maxNameLen, maxTypeLen := 0, 0
	for _, f := range fields {
		if len(f.name) > maxNameLen {
			maxNameLen = len(f.name)
		}
		if len(f.typ) > maxTypeLen {
			maxTypeLen = len(f.typ)
		}
	}

	for _, f := range fields {
		for _, doc := range f.docs {
			ctx.Line("// %s", doc)
		}
		if f.tag == "" {
			ctx.Line("%s%s %s", f.name, pad(maxNameLen-len(f.name)), f.typ)
			continue
		}
		ctx.Line("%s%s %s%s %s",
			f.name, pad(maxNameLen-len(f.name)),
			f.typ, pad(maxTypeLen-len(f.typ)),
			f.tag)
	}

	ctx.Dedent()
	ctx.Line("}")
	ctx.Line("")
	return nil
}

// EmitUnion writes the declaration for one named union: a pointer alias for
// the single-member optional form, a one-field-per-alternative struct for
// the multi-member form.
func (b *Backend) EmitUnion(ctx *backend.Context, union *graph.UnionType) error {
	tok, err := ctx.NameOf(union)
	if err != nil {
		return err
	}

	nonNull := union.NonNull()
	switch {
	case len(nonNull) == 0:
		return generrors.NewEmptyUnion(union.Hint())
	case len(nonNull) == 1 && !union.HasNull():
		return generrors.NewDegenerateUnion(union.Hint())
	case len(nonNull) == 1:
		sole, err := b.typeFor(ctx, nonNull[0], tok.String())
		if err != nil {
			return err
		}
		emitDescriptions(ctx, union.Attributes())
		ctx.Line("type %s = *%s", tok, sole)
		ctx.Line("")
		return nil
	}

	emitDescriptions(ctx, union.Attributes())
	ctx.Line("// %s holds exactly one of its alternatives; the non-nil field", tok)
	ctx.Line("// says which.")
	ctx.Line("type %s struct {", tok)
	ctx.Indent()

	type fieldInfo struct {
		name string
		typ  string
	}
	fields := make([]fieldInfo, 0, len(nonNull))
	for _, member := range nonNull {
		name, err := alternativeName(ctx, member)
		if err != nil {
			return err
		}
		typ, err := b.typeFor(ctx, member, tok.String()+"."+name)
		if err != nil {
			return err
		}
		fields = append(fields, fieldInfo{name: name, typ: "*" + typ})
	}

	maxNameLen := 0
	for _, f := range fields {
		if len(f.name) > maxNameLen {
			maxNameLen = len(f.name)
		}
	}
	for _, f := range fields {
		ctx.Line("%s%s %s", f.name, pad(maxNameLen-len(f.name)), f.typ)
	}

	ctx.Dedent()
	ctx.Line("}")
	ctx.Line("")
	return nil
}

// EmitTopLevel writes one alias binding a top-level name to its root type.
// Bindings whose root is already a named type never reach here; the driver
// passes them through.
func (b *Backend) EmitTopLevel(ctx *backend.Context, binding backend.ResolvedTopLevel) error {
	typ, err := b.typeFor(ctx, binding.Type, binding.Name.String())
	if err != nil {
		return err
	}
	ctx.Line("type %s = %s", binding.Name, typ)
	ctx.Line("")
	return nil
}

func emitDescriptions(ctx *backend.Context, bag attr.Bag) {
	set, ok := attr.Get(bag, attr.Descriptions)
	if !ok {
		return
	}
	for _, line := range set.Sorted() {
		ctx.Line("// %s", line)
	}
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func lowerCamel(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
