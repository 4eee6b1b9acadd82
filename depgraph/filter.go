package depgraph

import (
	"fmt"
	"regexp"
	"strings"
)

// TextFilter keeps names that match at least one include pattern (when any are
// given) and no exclude pattern.
type TextFilter struct {
	Include []*regexp.Regexp
	Exclude []*regexp.Regexp
}

// ParseTextFilter compiles filter strings. A leading "-" marks an exclude
// pattern; a leading "+" or no prefix marks an include pattern.
func ParseTextFilter(filters []string) (TextFilter, error) {
	var tf TextFilter
	for _, f := range filters {
		pattern := f
		exclude := false
		switch {
		case strings.HasPrefix(f, "-"):
			pattern, exclude = f[1:], true
		case strings.HasPrefix(f, "+"):
			pattern = f[1:]
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return TextFilter{}, fmt.Errorf("invalid filter %q: %w", f, err)
		}
		if exclude {
			tf.Exclude = append(tf.Exclude, re)
		} else {
			tf.Include = append(tf.Include, re)
		}
	}
	return tf, nil
}

// IsEmpty reports whether the filter accepts everything.
func (f TextFilter) IsEmpty() bool {
	return len(f.Include) == 0 && len(f.Exclude) == 0
}

// Match reports whether name passes the filter.
func (f TextFilter) Match(name string) bool {
	if len(f.Include) > 0 {
		included := false
		for _, re := range f.Include {
			if re.MatchString(name) {
				included = true
				break
			}
		}
		if !included {
			return false
		}
	}
	for _, re := range f.Exclude {
		if re.MatchString(name) {
			return false
		}
	}
	return true
}

// PathMapping rewrites a leading prefix of a reference.
type PathMapping struct {
	From string
	To   string
}

// ParsePathMappings parses "from=to" rules.
func ParsePathMappings(rules []string) ([]PathMapping, error) {
	mappings := make([]PathMapping, 0, len(rules))
	for _, rule := range rules {
		from, to, ok := strings.Cut(rule, "=")
		if !ok || from == "" {
			return nil, fmt.Errorf("invalid path mapping %q, expected from=to", rule)
		}
		mappings = append(mappings, PathMapping{From: from, To: to})
	}
	return mappings, nil
}

// NameResolver returns a function applying the first mapping whose From is a
// prefix of the reference. Unmatched references are returned unchanged.
func NameResolver(mappings []PathMapping) func(string) string {
	return func(ref string) string {
		for _, m := range mappings {
			if strings.HasPrefix(ref, m.From) {
				return m.To + ref[len(m.From):]
			}
		}
		return ref
	}
}
