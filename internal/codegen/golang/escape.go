package golang

import "strconv"

// quoteKey renders a raw JSON key as a Go string literal. Quotes,
// backslashes, and non-ASCII characters are escaped so the key round-trips
// byte-for-byte through Go's string-literal syntax. Both declaration and
// serialization emission go through this one routine.
func quoteKey(key string) string {
	return strconv.QuoteToASCII(key)
}

// unquoteKey reverses quoteKey; used to verify the round-trip property.
func unquoteKey(literal string) (string, error) {
	return strconv.Unquote(literal)
}

// tagSafe reports whether a key may appear verbatim inside a backquoted
// struct tag. Keys that fail this get no json tag; the generated
// UnmarshalJSON/MarshalJSON pair carries the real key as an escaped literal
// either way, so the tag is informational.
func tagSafe(key string) bool {
	for _, r := range key {
		if r < 0x20 || r > 0x7e {
			return false
		}
		if r == '"' || r == '\\' || r == '`' {
			return false
		}
	}
	return true
}
