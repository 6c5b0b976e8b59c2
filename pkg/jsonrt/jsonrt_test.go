package jsonrt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  ValueKind
	}{
		{"true", Bool},
		{"false", Bool},
		{"0", Integer},
		{"-17", Integer},
		{"3.14", Double},
		{"1e9", Double},
		{"-2.5E-3", Double},
		{`"hello"`, String},
		{`{"a": 1}`, Object},
		{"[1, 2]", Array},
		{"null", Null},
		{"  \n\ttrue", Bool},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := Classify([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestClassifyRejectsGarbage(t *testing.T) {
	_, err := Classify([]byte("xyzzy"))
	require.Error(t, err)

	_, err = Classify([]byte(""))
	require.Error(t, err)

	_, err = Classify([]byte("12abc"))
	require.Error(t, err)
}

// An array of booleans must classify as Array, never as Bool: the predicate
// table inspects the whole value's shape, not its elements.
func TestClassifyArrayOfBools(t *testing.T) {
	kind, err := Classify([]byte("[true, false, true]"))
	require.NoError(t, err)
	assert.Equal(t, Array, kind)
}

func TestReadStrict(t *testing.T) {
	raw := map[string]json.RawMessage{
		"name": json.RawMessage(`"ada"`),
		"age":  json.RawMessage("36"),
	}

	var name string
	require.NoError(t, ReadStrict(raw, "name", &name))
	assert.Equal(t, "ada", name)

	var age int64
	require.NoError(t, ReadStrict(raw, "age", &age))
	assert.Equal(t, int64(36), age)
}

func TestReadStrictMissingKey(t *testing.T) {
	var name string
	err := ReadStrict(map[string]json.RawMessage{}, "name", &name)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, err.Error(), `"name"`)
}

func TestReadStrictTypeMismatch(t *testing.T) {
	raw := map[string]json.RawMessage{"age": json.RawMessage(`"not a number"`)}

	var age int64
	err := ReadStrict(raw, "age", &age)
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

// Missing key and explicit null decode identically: both are absence. This
// is the fixed policy for nullable properties, so a value that decodes from
// either form re-encodes as null.
func TestReadOptionalMissingAndNullAgree(t *testing.T) {
	var fromMissing, fromNull *string

	present, err := ReadOptional(map[string]json.RawMessage{}, "bio", &fromMissing)
	require.NoError(t, err)
	assert.False(t, present)

	present, err = ReadOptional(map[string]json.RawMessage{"bio": json.RawMessage("null")}, "bio", &fromNull)
	require.NoError(t, err)
	assert.False(t, present)

	assert.Equal(t, fromMissing, fromNull)
}

func TestReadOptionalPresentValue(t *testing.T) {
	raw := map[string]json.RawMessage{"bio": json.RawMessage(`"hello"`)}

	var bio *string
	present, err := ReadOptional(raw, "bio", &bio)
	require.NoError(t, err)
	require.True(t, present)
	require.NotNil(t, bio)
	assert.Equal(t, "hello", *bio)
}

func TestReadOptionalStillStrictAboutMismatches(t *testing.T) {
	raw := map[string]json.RawMessage{"bio": json.RawMessage("[1]")}

	var bio *string
	_, err := ReadOptional(raw, "bio", &bio)
	require.Error(t, err)
}

func TestNoAlternative(t *testing.T) {
	err := NoAlternative("ID", Array)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no known alternative matched")
	assert.Contains(t, err.Error(), "array")
}

func TestObjectWriterEmptyObject(t *testing.T) {
	out, err := NewObjectWriter().Finish()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestObjectWriterPreservesFieldOrder(t *testing.T) {
	w := NewObjectWriter()
	w.Field("zebra", 1)
	w.Field("apple", 2)
	out, err := w.Finish()
	require.NoError(t, err)
	assert.Equal(t, `{"zebra":1,"apple":2}`, string(out))
}

func TestObjectWriterEscapesKeys(t *testing.T) {
	w := NewObjectWriter()
	w.Field(`quote"back\slash`, true)
	out, err := w.Finish()
	require.NoError(t, err)

	var decoded map[string]bool
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.True(t, decoded[`quote"back\slash`])
}

func TestValueRoundTrip(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`{"anything": [1, null]}`), &v))

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"anything": [1, null]}`, string(out))
}

func TestValueEmptyMarshalsNull(t *testing.T) {
	out, err := json.Marshal(Value(nil))
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

// Round-trip: strict decode, ordered encode, decode again.
func TestStrictRoundTrip(t *testing.T) {
	input := []byte(`{"name": "ada", "age": 36}`)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(input, &raw))

	var name string
	var age int64
	require.NoError(t, ReadStrict(raw, "name", &name))
	require.NoError(t, ReadStrict(raw, "age", &age))

	w := NewObjectWriter()
	w.Field("name", name)
	w.Field("age", age)
	encoded, err := w.Finish()
	require.NoError(t, err)

	var again map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &again))

	var name2 string
	var age2 int64
	require.NoError(t, ReadStrict(again, "name", &name2))
	require.NoError(t, ReadStrict(again, "age", &age2))
	assert.Equal(t, name, name2)
	assert.Equal(t, age, age2)
}
