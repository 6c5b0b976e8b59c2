package errors

import "fmt"

// Configuration error codes (CFG001-099)
const (
	// ErrInvalidNamespace indicates a namespace option that is not a legal identifier
	ErrInvalidNamespace ErrorCode = "CFG001"
	// ErrUnknownOption indicates an unrecognized backend option
	ErrUnknownOption ErrorCode = "CFG002"
)

// Pipeline invariant codes (INV100-199)
const (
	// ErrDegenerateUnion indicates a union with a single non-null member and no null
	ErrDegenerateUnion ErrorCode = "INV100"
	// ErrEmptyUnion indicates a union with no members at all
	ErrEmptyUnion ErrorCode = "INV101"
	// ErrUnresolvedName indicates a named type that never received a name token
	ErrUnresolvedName ErrorCode = "INV102"
	// ErrUnknownTypeKind indicates a graph node kind outside the closed variant
	ErrUnknownTypeKind ErrorCode = "INV103"
)

// Attribute error codes (ATR200-299)
const (
	// ErrUnmergeableAttribute indicates a merge attempt on an uncombinable kind
	ErrUnmergeableAttribute ErrorCode = "ATR200"
)

// Emission error codes (GEN300-399)
const (
	// ErrEmissionFailed indicates a general code emission failure
	ErrEmissionFailed ErrorCode = "GEN300"
)

// NewInvalidNamespace creates a CFG001 error
func NewInvalidNamespace(namespace, reason string) *GeneratorError {
	return newError(
		ErrInvalidNamespace,
		"invalid_namespace",
		CategoryConfig,
		SeverityError,
		fmt.Sprintf("Namespace %q is not a legal identifier: %s", namespace, reason),
	).WithSuggestion("Use a lowercase name made of letters, digits, and underscores, starting with a letter")
}

// NewUnknownOption creates a CFG002 error
func NewUnknownOption(name string) *GeneratorError {
	return newError(
		ErrUnknownOption,
		"unknown_option",
		CategoryConfig,
		SeverityError,
		fmt.Sprintf("Unknown option %q", name),
	)
}

// NewDegenerateUnion creates an INV100 error. The upstream graph builder is
// supposed to collapse single-member unions before they reach a backend.
func NewDegenerateUnion(name string) *GeneratorError {
	return newError(
		ErrDegenerateUnion,
		"degenerate_union",
		CategoryInvariant,
		SeverityError,
		fmt.Sprintf("Union %q has one non-null member and no null member", name),
	).WithSuggestion("This is an upstream graph-construction bug - please report it")
}

// NewEmptyUnion creates an INV101 error
func NewEmptyUnion(name string) *GeneratorError {
	return newError(
		ErrEmptyUnion,
		"empty_union",
		CategoryInvariant,
		SeverityError,
		fmt.Sprintf("Union %q has no members", name),
	).WithSuggestion("This is an upstream graph-construction bug - please report it")
}

// NewUnresolvedName creates an INV102 error
func NewUnresolvedName(hint string) *GeneratorError {
	return newError(
		ErrUnresolvedName,
		"unresolved_name",
		CategoryInvariant,
		SeverityError,
		fmt.Sprintf("Named type %q was rendered before name assignment", hint),
	)
}

// NewUnknownTypeKind creates an INV103 error
func NewUnknownTypeKind(kind string) *GeneratorError {
	return newError(
		ErrUnknownTypeKind,
		"unknown_type_kind",
		CategoryInvariant,
		SeverityError,
		fmt.Sprintf("Unknown type graph node kind %q", kind),
	)
}

// NewUnmergeableAttribute creates an ATR200 error. Raised when two
// independent graph-construction events produced the same metadata for one
// node and the kind declares no merge policy.
func NewUnmergeableAttribute(kind string) *GeneratorError {
	return newError(
		ErrUnmergeableAttribute,
		"unmergeable_attribute",
		CategoryAttribute,
		SeverityError,
		fmt.Sprintf("Attribute kind %q has no combine function but was present in more than one bag", kind),
	).WithSuggestion("Give the kind a combine function, or ensure only one producer sets it")
}

// NewEmissionFailed creates a GEN300 error
func NewEmissionFailed(reason string) *GeneratorError {
	return newError(
		ErrEmissionFailed,
		"emission_failed",
		CategoryEmission,
		SeverityError,
		fmt.Sprintf("Code emission failed: %s", reason),
	).WithSuggestion("This is likely a generator bug - please report it")
}
