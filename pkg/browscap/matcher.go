package browscap

import (
	"strings"

	"github.com/danwakefield/fnmatch"
)

// matcher tests a query against every record pattern in file order.
// Patterns are prepared once and never modified, so match is safe for
// concurrent use.
type matcher struct {
	names    []string
	patterns []string
}

// newMatcher prepares the record names as case-insensitive fnmatch patterns:
// '*' matches any run, '?' any single character, '[...]' a character class
// and '\' escapes the next character. Braces carry no meaning. An opening
// bracket without a closing one is matched literally; patterns containing
// such brackets are returned as fallbacks.
func newMatcher(names []string) (*matcher, []string) {
	m := &matcher{
		names:    names,
		patterns: make([]string, len(names)),
	}

	var fallbacks []string
	for i, name := range names {
		p, quoted := quoteUnclosedBrackets(name)
		if quoted {
			fallbacks = append(fallbacks, name)
		}
		m.patterns[i] = p
	}

	return m, fallbacks
}

// match returns the first record name whose pattern matches query.
// Case folding is applied rune by rune, so a '?' always consumes exactly
// one character of the query.
func (m *matcher) match(query string) (string, bool) {
	for i, p := range m.patterns {
		if fnmatch.Match(p, query, fnmatch.FNM_CASEFOLD) {
			return m.names[i], true
		}
	}
	return "", false
}

// quoteUnclosedBrackets escapes every '[' that does not open a complete
// character class. The second return value reports whether anything changed.
func quoteUnclosedBrackets(pattern string) (string, bool) {
	if !strings.Contains(pattern, "[") {
		return pattern, false
	}

	var (
		b      strings.Builder
		quoted bool
	)
	b.Grow(len(pattern) + 2)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '\\':
			b.WriteByte(c)
			if i+1 < len(pattern) {
				i++
				b.WriteByte(pattern[i])
			}
		case '[':
			end := classEnd(pattern, i)
			if end < 0 {
				b.WriteString(`\[`)
				quoted = true
				continue
			}
			b.WriteString(pattern[i : end+1])
			i = end
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), quoted
}

// classEnd returns the index of the ']' closing the class opened at start,
// or -1 when the class is never closed. A ']' directly after the opening
// bracket or its negation is a member of the class.
func classEnd(pattern string, start int) int {
	i := start + 1
	if i < len(pattern) && (pattern[i] == '!' || pattern[i] == '^') {
		i++
	}
	if i < len(pattern) && pattern[i] == ']' {
		i++
	}
	for ; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case ']':
			return i
		}
	}
	return -1
}
