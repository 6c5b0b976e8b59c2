package backend

// AnnotationKind is one of the two issue-annotation markers the generator
// attaches to output positions that came from unresolved input shapes.
type AnnotationKind int

const (
	// AnnotationAmbiguousAny marks a position typed from an `any` node:
	// the input samples never pinned the shape down.
	AnnotationAmbiguousAny AnnotationKind = iota
	// AnnotationNullPlaceholder marks a position typed from a `null` node:
	// the input samples only ever held null there.
	AnnotationNullPlaceholder
)

func (k AnnotationKind) String() string {
	switch k {
	case AnnotationAmbiguousAny:
		return "ambiguous-any"
	case AnnotationNullPlaceholder:
		return "null-placeholder"
	default:
		return "unknown"
	}
}

// Diagnostic is one issue annotation surfaced to the caller alongside the
// generated source.
type Diagnostic struct {
	Kind AnnotationKind
	// Path locates the node in the graph, e.g. "Person.address.street".
	Path    string
	Message string
}
