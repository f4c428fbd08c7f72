package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// ParsePattern parses a serialized "/body/flags" regular expression into a
// native regexp. Patterns are case-sensitive unless the "i" flag is given.
// The "m" and "s" flags map to their regexp equivalents; "g" and "u" change
// nothing about per-match semantics and are accepted as no-ops. Any other
// flag is an error.
func ParsePattern(s string) (*regexp.Regexp, error) {
	if len(s) < 2 || !strings.HasPrefix(s, "/") {
		return nil, fmt.Errorf("%w: not in /body/flags form: %q", ErrInvalidPattern, s)
	}
	end := strings.LastIndex(s, "/")
	if end == 0 {
		return nil, fmt.Errorf("%w: missing closing slash: %q", ErrInvalidPattern, s)
	}
	body := s[1:end]
	flags := s[end+1:]

	var mode strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			mode.WriteRune(f)
		case 'g', 'u':
			// no per-match meaning
		default:
			return nil, fmt.Errorf("%w: unsupported flag %q in %q", ErrInvalidPattern, f, s)
		}
	}

	expr := body
	if mode.Len() > 0 {
		expr = "(?" + mode.String() + ")" + body
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}
