// Package jsonrt is the runtime support library imported by jsonbind's
// generated code. It implements the behavior the generator promises for its
// output: strict and permissive property reads, the fixed union predicate
// table, and declared-order object encoding. Keeping this behavior in one
// shared package means it is testable here instead of being re-proven inside
// every generated file.
package jsonrt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Value is a raw JSON value, used for properties whose shape could not be
// resolved. It round-trips bytes untouched.
type Value []byte

// MarshalJSON returns v as-is, or null for an empty value.
func (v Value) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

// UnmarshalJSON stores a copy of data.
func (v *Value) UnmarshalJSON(data []byte) error {
	*v = append((*v)[:0], data...)
	return nil
}

// ValueKind classifies a raw JSON value for union alternative dispatch.
type ValueKind int

const (
	Bool ValueKind = iota
	Integer
	Double
	String
	Object
	Array
	Null
)

var valueKindNames = [...]string{
	Bool:    "bool",
	Integer: "integer",
	Double:  "double",
	String:  "string",
	Object:  "object",
	Array:   "array",
	Null:    "null",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Classify determines the kind of a raw JSON value without fully decoding
// it. Numbers classify as Integer when their literal has no fraction or
// exponent part, Double otherwise.
func Classify(data []byte) (ValueKind, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return Null, &DecodeError{msg: "empty JSON input"}
	}

	switch trimmed[0] {
	case 't', 'f':
		return Bool, nil
	case '"':
		return String, nil
	case '{':
		return Object, nil
	case '[':
		return Array, nil
	case 'n':
		return Null, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var num json.Number
		if err := json.Unmarshal(trimmed, &num); err != nil {
			return Null, &DecodeError{msg: fmt.Sprintf("malformed number: %v", err)}
		}
		if strings.ContainsAny(num.String(), ".eE") {
			return Double, nil
		}
		return Integer, nil
	default:
		return Null, &DecodeError{msg: fmt.Sprintf("unrecognized JSON value starting with %q", trimmed[0])}
	}
}

// DecodeError is the failure the generated code raises at its own runtime:
// a strict read found a missing or mismatched key, or no union alternative
// predicate matched the input.
type DecodeError struct {
	msg string
}

func (e *DecodeError) Error() string { return e.msg }

// NoAlternative builds the decode failure for a union value that matched no
// alternative.
func NoAlternative(unionName string, kind ValueKind) error {
	return &DecodeError{msg: fmt.Sprintf("%s: no known alternative matched (got %s)", unionName, kind)}
}

// NoneSet reports an encode attempt on a union value that holds no
// alternative. Generated encode dispatch covers every alternative; reaching
// this means the value was built by hand in an invalid state.
func NoneSet(unionName string) error {
	return &DecodeError{msg: fmt.Sprintf("%s: no alternative is set", unionName)}
}

// ReadStrict decodes the value under key into out. A missing key or a value
// that fails to decode is a hard failure; callers abandon the partial record
// on error.
func ReadStrict(raw map[string]json.RawMessage, key string, out interface{}) error {
	value, ok := raw[key]
	if !ok {
		return &DecodeError{msg: fmt.Sprintf("missing required key %q", key)}
	}
	if err := json.Unmarshal(value, out); err != nil {
		return &DecodeError{msg: fmt.Sprintf("key %q: %v", key, err)}
	}
	return nil
}

// ReadOptional decodes the value under key into out, treating a missing key
// and an explicit null identically: both leave out untouched and report
// absence. A present non-null value that fails to decode is still an error.
func ReadOptional(raw map[string]json.RawMessage, key string, out interface{}) (bool, error) {
	value, ok := raw[key]
	if !ok {
		return false, nil
	}
	if isNull(value) {
		return false, nil
	}
	if err := json.Unmarshal(value, out); err != nil {
		return false, &DecodeError{msg: fmt.Sprintf("key %q: %v", key, err)}
	}
	return true, nil
}

func isNull(data []byte) bool {
	return string(bytes.TrimSpace(data)) == "null"
}

// ObjectWriter encodes a JSON object with keys in the exact order fields are
// written, which json.Marshal over a map would not preserve. An object with
// zero fields finishes as {}, never null and never an array.
type ObjectWriter struct {
	buf    bytes.Buffer
	fields int
	err    error
}

// NewObjectWriter starts an object.
func NewObjectWriter() *ObjectWriter {
	w := &ObjectWriter{}
	w.buf.WriteByte('{')
	return w
}

// Field appends one key/value pair. Errors stick: later calls after a
// failure are no-ops and Finish reports the first failure.
func (w *ObjectWriter) Field(key string, value interface{}) {
	if w.err != nil {
		return
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		w.err = err
		return
	}
	if w.fields > 0 {
		w.buf.WriteByte(',')
	}
	keyBytes, err := json.Marshal(key)
	if err != nil {
		w.err = err
		return
	}
	w.buf.Write(keyBytes)
	w.buf.WriteByte(':')
	w.buf.Write(encoded)
	w.fields++
}

// Finish closes the object and returns its bytes.
func (w *ObjectWriter) Finish() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}
