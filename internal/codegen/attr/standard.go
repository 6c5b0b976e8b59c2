package attr

import "sort"

// StringSet is an unordered set of strings with union merge semantics.
type StringSet map[string]bool

// NewStringSet builds a set from the given members.
func NewStringSet(members ...string) StringSet {
	set := make(StringSet, len(members))
	for _, m := range members {
		set[m] = true
	}
	return set
}

// Union returns the union of two sets without mutating either.
func (s StringSet) Union(other StringSet) StringSet {
	result := make(StringSet, len(s)+len(other))
	for m := range s {
		result[m] = true
	}
	for m := range other {
		result[m] = true
	}
	return result
}

// Sorted returns the members in sorted order, for deterministic rendering.
func (s StringSet) Sorted() []string {
	members := make([]string, 0, len(s))
	for m := range s {
		members = append(members, m)
	}
	sort.Strings(members)
	return members
}

func unionPerKey(a, b map[string]StringSet) map[string]StringSet {
	result := make(map[string]StringSet, len(a)+len(b))
	for k, v := range a {
		result[k] = v
	}
	for k, v := range b {
		if existing, ok := result[k]; ok {
			result[k] = existing.Union(v)
		} else {
			result[k] = v
		}
	}
	return result
}

// Standard kinds shared across the pipeline. Both are commutative: Combine
// over them is associative and order-independent.
var (
	// Descriptions accumulates doc text attached to a type node.
	Descriptions = NewKind("description", StringSet.Union)

	// PropertyDescriptions accumulates doc text per property of a class
	// node, keyed by the raw JSON property name.
	PropertyDescriptions = NewKind("propertyDescriptions", unionPerKey)
)
