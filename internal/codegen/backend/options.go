package backend

import (
	"unicode"

	generrors "github.com/jsonbind-lang/jsonbind/internal/codegen/errors"
)

// DefaultNamespace wraps all emitted declarations when the caller does not
// choose one.
const DefaultNamespace = "quicktype"

// Options configures a render. The reference backend exposes exactly one
// option: the module/namespace wrapper for emitted declarations, which is
// also the qualifier for cross-namespace references.
type Options struct {
	Namespace string
}

// DefaultOptions returns the options used when the caller supplies none.
func DefaultOptions() Options {
	return Options{Namespace: DefaultNamespace}
}

// Validate checks the options. An empty namespace falls back to the
// default; a malformed one is a configuration error.
func (o *Options) Validate() error {
	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}
	if err := checkNamespace(o.Namespace); err != nil {
		return err
	}
	return nil
}

func checkNamespace(ns string) error {
	for i, r := range ns {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		if i == 0 {
			return generrors.NewInvalidNamespace(ns, "must start with a letter or underscore")
		}
		return generrors.NewInvalidNamespace(ns, "may only contain letters, digits, and underscores")
	}
	return nil
}
