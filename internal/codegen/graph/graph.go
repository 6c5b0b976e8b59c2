// Package graph defines the abstract type graph consumed by code-generation
// backends: primitives, arrays, maps, classes with ordered properties, and
// unions with at most one null member. Node kinds form a closed tagged
// variant so that every dispatch over them can be checked for exhaustiveness;
// there is deliberately no default-and-continue path anywhere in the package.
package graph

import (
	"fmt"

	"github.com/jsonbind-lang/jsonbind/internal/codegen/attr"
)

// Kind discriminates the closed set of type graph node kinds.
type Kind int

const (
	// Any is the placeholder for an unresolved or ambiguous input shape.
	Any Kind = iota
	// Null is the placeholder for an input that was only ever null.
	Null
	Bool
	Integer
	Double
	String
	Array
	Map
	Class
	Union
)

var kindNames = [...]string{
	Any:     "any",
	Null:    "null",
	Bool:    "bool",
	Integer: "integer",
	Double:  "double",
	String:  "string",
	Array:   "array",
	Map:     "map",
	Class:   "class",
	Union:   "union",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Type is a node of the type graph. Concrete implementations are the closed
// set in this package; backends must not define their own.
type Type interface {
	Kind() Kind
	// Attributes returns the metadata bag attached to this node. Bags are
	// immutable; the empty bag means no metadata.
	Attributes() attr.Bag
}

// Named is a type with durable identity across the pipeline: classes and
// unions. Identity is pointer identity; Hint carries the upstream naming
// suggestion that the name resolver styles into a final identifier.
type Named interface {
	Type
	Hint() string
}

// PrimitiveType is one of the leaf kinds: any, null, bool, integer, double,
// string.
type PrimitiveType struct {
	kind  Kind
	attrs attr.Bag
}

// NewPrimitive creates a leaf node. Passing a non-leaf kind panics: that is
// a construction bug, not an input-data problem.
func NewPrimitive(kind Kind) *PrimitiveType {
	switch kind {
	case Any, Null, Bool, Integer, Double, String:
		return &PrimitiveType{kind: kind}
	case Array, Map, Class, Union:
		panic(fmt.Sprintf("graph: %s is not a primitive kind", kind))
	default:
		panic(fmt.Sprintf("graph: unknown kind %s", kind))
	}
}

func (p *PrimitiveType) Kind() Kind           { return p.kind }
func (p *PrimitiveType) Attributes() attr.Bag { return p.attrs }

// WithAttributes returns a copy of the node carrying the given bag.
func (p *PrimitiveType) WithAttributes(bag attr.Bag) *PrimitiveType {
	return &PrimitiveType{kind: p.kind, attrs: bag}
}

// ArrayType is a homogeneous sequence of Items.
type ArrayType struct {
	Items Type
	attrs attr.Bag
}

func NewArray(items Type) *ArrayType { return &ArrayType{Items: items} }

func (a *ArrayType) Kind() Kind           { return Array }
func (a *ArrayType) Attributes() attr.Bag { return a.attrs }

// MapType is a string-keyed dictionary of Values.
type MapType struct {
	Values Type
	attrs  attr.Bag
}

func NewMap(values Type) *MapType { return &MapType{Values: values} }

func (m *MapType) Kind() Kind           { return Map }
func (m *MapType) Attributes() attr.Bag { return m.attrs }

// Property is one (jsonKey, type) pair of a class, in declared order.
type Property struct {
	JSONKey string
	Type    Type
}

// ClassType is a named record type with ordered properties.
type ClassType struct {
	hint       string
	Properties []Property
	attrs      attr.Bag
}

func NewClass(hint string, properties []Property) *ClassType {
	return &ClassType{hint: hint, Properties: properties}
}

func (c *ClassType) Kind() Kind           { return Class }
func (c *ClassType) Hint() string         { return c.hint }
func (c *ClassType) Attributes() attr.Bag { return c.attrs }

// SetAttributes installs the bag on the node. Classes are built once by the
// upstream pipeline and not mutated after construction.
func (c *ClassType) SetAttributes(bag attr.Bag) { c.attrs = bag }

// UnionType is a named member set with at most one null member. Member order
// is first-appearance order and is durable: it drives both the generated
// alternative ordering and encode dispatch.
type UnionType struct {
	hint    string
	members []Type
	attrs   attr.Bag
}

func NewUnion(hint string, members []Type) *UnionType {
	return &UnionType{hint: hint, members: members}
}

func (u *UnionType) Kind() Kind           { return Union }
func (u *UnionType) Hint() string         { return u.hint }
func (u *UnionType) Attributes() attr.Bag { return u.attrs }

// SetAttributes installs the bag on the node.
func (u *UnionType) SetAttributes(bag attr.Bag) { u.attrs = bag }

// Members returns all members in first-appearance order.
func (u *UnionType) Members() []Type { return u.members }

// NonNull returns the members excluding null, in first-appearance order.
func (u *UnionType) NonNull() []Type {
	nonNull := make([]Type, 0, len(u.members))
	for _, m := range u.members {
		if m.Kind() != Null {
			nonNull = append(nonNull, m)
		}
	}
	return nonNull
}

// HasNull reports whether null is a member.
func (u *UnionType) HasNull() bool {
	for _, m := range u.members {
		if m.Kind() == Null {
			return true
		}
	}
	return false
}
