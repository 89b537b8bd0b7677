package session

import (
	"regexp"
	"strings"

	"github.com/dotup-sh/dotup/pkg/errors"
)

var placeholderPattern = regexp.MustCompile(`\$\{([^{}]+)\}`)

// Expand substitutes every ${NAME} placeholder in s with the variable's value
// from the environment. Referencing an unset variable is an error rather than
// a silent empty substitution, so broken manifests fail loudly.
func (e *Environment) Expand(s string) (string, error) {
	var unset []string
	expanded := placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := match[2 : len(match)-1]
		value, ok := e.Lookup(name)
		if !ok {
			unset = append(unset, name)
			return match
		}
		return value
	})
	if len(unset) > 0 {
		return "", errors.Newf(errors.ErrEnvUnset, "undefined variable in %q: %s", s, strings.Join(unset, ", "))
	}
	return expanded, nil
}
