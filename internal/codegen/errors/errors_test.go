package errors

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormat(t *testing.T) {
	err := NewEmptyUnion("id")
	assert.Equal(t, `[INV101] Union "id" has no members`, err.Error())
}

func TestCodesAndCategories(t *testing.T) {
	tests := []struct {
		err      *GeneratorError
		code     ErrorCode
		category ErrorCategory
	}{
		{NewInvalidNamespace("my-models", "contains '-'"), "CFG001", CategoryConfig},
		{NewUnknownOption("indent"), "CFG002", CategoryConfig},
		{NewDegenerateUnion("id"), "INV100", CategoryInvariant},
		{NewEmptyUnion("id"), "INV101", CategoryInvariant},
		{NewUnresolvedName("person"), "INV102", CategoryInvariant},
		{NewUnknownTypeKind("kind(42)"), "INV103", CategoryInvariant},
		{NewUnmergeableAttribute("uri"), "ATR200", CategoryAttribute},
		{NewEmissionFailed("nested union"), "GEN300", CategoryEmission},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.category, tt.err.Category)
			assert.Equal(t, SeverityError, tt.err.Severity)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestWithSuggestionOverrides(t *testing.T) {
	err := NewUnknownOption("indent").WithSuggestion("supported options: namespace")
	assert.Equal(t, "supported options: namespace", err.Suggestion)
}

func TestToJSON(t *testing.T) {
	out, err := NewInvalidNamespace("9lives", "starts with a digit").ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "CFG001", decoded["code"])
	assert.Equal(t, "config", decoded["category"])
	assert.Equal(t, "error", decoded["severity"])
	assert.NotEmpty(t, decoded["suggestion"])
}
