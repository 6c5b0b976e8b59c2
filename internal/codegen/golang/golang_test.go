package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"person", "Person"},
		{"blog post", "BlogPost"},
		{"id", "ID"},
		{"user id", "UserID"},
		{"apiResponse", "APIResponse"},
		{"camelCase", "CamelCase"},
		{"123 things", "The123Things"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, toPascalCase(tt.input))
		})
	}
}

func TestSanitizeIdentifier(t *testing.T) {
	assert.Equal(t, "we ird", sanitizeIdentifier(`we"ird`))
	assert.Equal(t, "snake case", sanitizeIdentifier("snake_case"))
	assert.Equal(t, "kebab case", sanitizeIdentifier("kebab-case"))
}

func TestForbiddenNamesCoverKeywords(t *testing.T) {
	forbidden := map[string]bool{}
	for _, name := range New().ForbiddenNames() {
		forbidden[name] = true
	}
	for _, kw := range []string{"type", "func", "struct", "int64", "string", "json", "jsonrt"} {
		assert.True(t, forbidden[kw], kw)
	}
}

func TestQuoteKeyRoundTrip(t *testing.T) {
	keys := []string{
		"plain",
		`with "quotes"`,
		`back\slash`,
		"tab\there",
		"unicode: héllo wörld",
		"日本語",
		"emoji 🎉 key",
	}

	for _, key := range keys {
		literal := quoteKey(key)
		back, err := unquoteKey(literal)
		require.NoError(t, err, key)
		assert.Equal(t, key, back)
	}
}

func TestQuoteKeyEscapesNonASCII(t *testing.T) {
	literal := quoteKey("héllo")
	for _, r := range literal {
		assert.Less(t, r, rune(0x80), "literal must be pure ASCII: %s", literal)
	}
}

func TestTagSafe(t *testing.T) {
	assert.True(t, tagSafe("name"))
	assert.True(t, tagSafe("snake_case-key.dot"))
	assert.False(t, tagSafe(`quo"te`))
	assert.False(t, tagSafe(`back\slash`))
	assert.False(t, tagSafe("non-ascii é"))
	assert.False(t, tagSafe("ctrl\x01"))
}
