// Package attr implements the combinable metadata algebra attached to type
// graph nodes. A Kind is a typed metadata channel identified by name; a Bag
// is an immutable mapping from kind identity to one value of that kind.
package attr

import (
	"sort"
	"sync"

	generrors "github.com/jsonbind-lang/jsonbind/internal/codegen/errors"
)

// kindInfo holds the type-erased merge policy for one kind name. The
// registry is the single source of truth for combine functions, so two Kind
// values created with the same name resolve to the same slot and policy.
type kindInfo struct {
	combine func(a, b interface{}) interface{} // nil means uncombinable
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*kindInfo{}
)

// Kind identifies a typed metadata channel. Identity is the name alone:
// kinds with equal names are interchangeable as bag keys, which is relied
// upon when nodes are cloned or rebuilt elsewhere in the pipeline.
type Kind[T any] struct {
	name string
}

// Name returns the kind's identifying name.
func (k Kind[T]) Name() string { return k.name }

// NewKind creates a kind with a combine function. Merging two bags that both
// carry this kind applies combine across the values in input order.
func NewKind[T any](name string, combine func(a, b T) T) Kind[T] {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[name] = &kindInfo{
		combine: func(a, b interface{}) interface{} {
			return combine(a.(T), b.(T))
		},
	}
	return Kind[T]{name: name}
}

// NewUncombinableKind creates a kind with no merge policy. Any attempt to
// combine two values under it is a fatal error: it signals that two
// independent graph-construction events produced the same metadata for one
// node with no defined way to reconcile them.
func NewUncombinableKind[T any](name string) Kind[T] {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[name]; !ok {
		registry[name] = &kindInfo{}
	}
	return Kind[T]{name: name}
}

// Bag is an immutable collection of attribute values, at most one per kind.
// The zero value is the empty bag, which is the merge identity element.
type Bag struct {
	values map[string]interface{}
}

// Empty returns the empty bag.
func Empty() Bag { return Bag{} }

// Len returns the number of kinds present in the bag.
func (b Bag) Len() int { return len(b.values) }

// Kinds returns the names of the kinds present, sorted for determinism.
func (b Bag) Kinds() []string {
	names := make([]string, 0, len(b.values))
	for name := range b.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (b Bag) clone() map[string]interface{} {
	values := make(map[string]interface{}, len(b.values)+1)
	for k, v := range b.values {
		values[k] = v
	}
	return values
}

// Singleton returns a bag holding exactly one value under the given kind.
func Singleton[T any](kind Kind[T], value T) Bag {
	return Bag{values: map[string]interface{}{kind.name: value}}
}

// Get returns the value stored under kind, if present.
func Get[T any](b Bag, kind Kind[T]) (T, bool) {
	v, ok := b.values[kind.name]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Set returns a bag with value installed under kind, replacing any prior
// value for that kind.
func Set[T any](b Bag, kind Kind[T], value T) Bag {
	values := b.clone()
	values[kind.name] = value
	return Bag{values: values}
}

// Modify applies fn to the current slot for kind. fn receives the current
// value and whether one is present; returning present=false removes the kind
// from the bag, present=true installs the returned value. Default insertion
// and update-in-place are both built on this primitive.
func Modify[T any](b Bag, kind Kind[T], fn func(value T, present bool) (T, bool)) Bag {
	var current T
	v, ok := b.values[kind.name]
	if ok {
		current = v.(T)
	}

	next, keep := fn(current, ok)

	if !keep {
		if !ok {
			return b
		}
		values := b.clone()
		delete(values, kind.name)
		if len(values) == 0 {
			return Bag{}
		}
		return Bag{values: values}
	}

	values := b.clone()
	values[kind.name] = next
	return Bag{values: values}
}

// SetDefault installs makeDefault() only if kind is currently absent.
// makeDefault is called at most once; the call is a no-op otherwise.
func SetDefault[T any](b Bag, kind Kind[T], makeDefault func() T) Bag {
	if _, ok := b.values[kind.name]; ok {
		return b
	}
	return Set(b, kind, makeDefault())
}

// Combine left-folds a union over all input bags. A kind present in more
// than one bag has its combine function applied across all present values in
// input order; a kind present in exactly one bag passes through unchanged.
// Combining under an uncombinable kind is a fatal error.
func Combine(bags ...Bag) (Bag, error) {
	switch len(bags) {
	case 0:
		return Bag{}, nil
	case 1:
		return bags[0], nil
	}

	result := bags[0].clone()
	for _, bag := range bags[1:] {
		for name, incoming := range bag.values {
			existing, ok := result[name]
			if !ok {
				result[name] = incoming
				continue
			}

			registryMu.RLock()
			info := registry[name]
			registryMu.RUnlock()

			if info == nil || info.combine == nil {
				return Bag{}, generrors.NewUnmergeableAttribute(name)
			}
			result[name] = info.combine(existing, incoming)
		}
	}

	if len(result) == 0 {
		return Bag{}, nil
	}
	return Bag{values: result}, nil
}
