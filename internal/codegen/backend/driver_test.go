package backend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonbind-lang/jsonbind/internal/codegen/graph"
	"github.com/jsonbind-lang/jsonbind/internal/codegen/names"
)

// recordingBackend captures the callback sequence the driver produces.
type recordingBackend struct {
	calls []string
}

func upper(s string) string { return strings.ToUpper(s[:1]) + s[1:] }

func (r *recordingBackend) Name() string { return "recording" }

func (r *recordingBackend) Naming() NamingConventions {
	style := names.Style{Casing: upper}
	return NamingConventions{TopLevels: style, NamedTypes: style, Properties: style}
}

func (r *recordingBackend) ForbiddenNames() []string     { return []string{"Reserved"} }
func (r *recordingBackend) PropertyScoping() PropertyScoping { return ScopeShared }

func (r *recordingBackend) IsNameWorthy(t graph.Type) bool {
	return t.Kind() == graph.Class || t.Kind() == graph.Union
}

func (r *recordingBackend) EmitPreamble(ctx *Context) error {
	r.calls = append(r.calls, "preamble")
	ctx.Line("preamble %s", ctx.Options.Namespace)
	return nil
}

func (r *recordingBackend) EmitClass(ctx *Context, class *graph.ClassType) error {
	tok, err := ctx.NameOf(class)
	if err != nil {
		return err
	}
	r.calls = append(r.calls, "class:"+tok.String())
	return nil
}

func (r *recordingBackend) EmitUnion(ctx *Context, union *graph.UnionType) error {
	tok, err := ctx.NameOf(union)
	if err != nil {
		return err
	}
	r.calls = append(r.calls, "union:"+tok.String())
	return nil
}

func (r *recordingBackend) EmitTopLevel(ctx *Context, binding ResolvedTopLevel) error {
	r.calls = append(r.calls, "alias:"+binding.Name.String())
	return nil
}

func (r *recordingBackend) EmitSerializers(ctx *Context) error {
	r.calls = append(r.calls, "serializers")
	return nil
}

func TestRenderCallbackSequence(t *testing.T) {
	address := graph.NewClass("address", []graph.Property{
		{JSONKey: "street", Type: graph.NewPrimitive(graph.String)},
	})
	id := graph.NewUnion("id", []graph.Type{
		graph.NewPrimitive(graph.Integer),
		graph.NewPrimitive(graph.String),
	})
	person := graph.NewClass("person", []graph.Property{
		{JSONKey: "id", Type: id},
		{JSONKey: "address", Type: address},
	})

	b := &recordingBackend{}
	_, err := Render([]TopLevel{
		{Hint: "person", Type: person},
		{Hint: "people", Type: graph.NewArray(person)},
	}, b, DefaultOptions(), nil)
	require.NoError(t, err)

	// Named types in dependency-safe order (referenced before referencing),
	// then aliases for non-name-worthy roots only, then serializers.
	assert.Equal(t, []string{
		"preamble",
		"union:Id",
		"class:Address",
		"class:Person",
		"alias:People",
		"serializers",
	}, b.calls)
}

func TestRenderDefaultNamespace(t *testing.T) {
	b := &recordingBackend{}
	result, err := Render(nil, b, Options{}, nil)
	require.NoError(t, err)
	assert.Contains(t, result.Source, "preamble quicktype")
}

func TestRenderRejectsMalformedNamespace(t *testing.T) {
	b := &recordingBackend{}
	_, err := Render(nil, b, Options{Namespace: "bad namespace"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CFG001")
}

func TestRenderForbiddenNameSuffixed(t *testing.T) {
	class := graph.NewClass("reserved", []graph.Property{
		{JSONKey: "x", Type: graph.NewPrimitive(graph.Bool)},
	})
	b := &recordingBackend{}
	_, err := Render([]TopLevel{{Hint: "reserved", Type: class}}, b, DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Contains(t, b.calls, "class:Reserved1")
}

func TestRenderNameWorthyRootReusesTypeName(t *testing.T) {
	class := graph.NewClass("person", nil)
	b := &recordingBackend{}
	_, err := Render([]TopLevel{{Hint: "anything", Type: class}}, b, DefaultOptions(), nil)
	require.NoError(t, err)

	// No alias callback: the binding reuses the class's own name.
	for _, call := range b.calls {
		assert.False(t, strings.HasPrefix(call, "alias:"), call)
	}
}

func TestIssueCollectsDiagnostics(t *testing.T) {
	ctx := &Context{}
	ctx.Issue(AnnotationAmbiguousAny, "Root.field")
	ctx.Issue(AnnotationNullPlaceholder, "Root.other")

	require.Len(t, ctx.diagnostics, 2)
	assert.Equal(t, AnnotationAmbiguousAny, ctx.diagnostics[0].Kind)
	assert.Contains(t, ctx.diagnostics[0].Message, "Root.field")
	assert.Equal(t, "null-placeholder", ctx.diagnostics[1].Kind.String())
}
