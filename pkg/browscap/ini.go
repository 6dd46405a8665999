package browscap

import (
	"errors"
	"io"
	"math"
	"strings"

	"gopkg.in/ini.v1"
)

// INISource is an immutable Source backed by a parsed Browscap INI file.
//
// The file is parsed once with gopkg.in/ini.v1 and flattened into a map of
// lower-cased composite keys, so section and property lookups are
// case-insensitive and the source is safe for concurrent reads.
type INISource struct {
	names  []string
	values map[string]string
}

var _ Source = (*INISource)(nil)

var iniLoadOptions = ini.LoadOptions{
	IgnoreContinuation:      true,
	IgnoreInlineComment:     true,
	SkipUnrecognizableLines: true,
}

// NewINISource parses a Browscap INI document from r.
func NewINISource(r io.Reader) (*INISource, error) {
	if r == nil {
		return nil, errors.Join(ErrLoadFailed, errors.New("nil reader"))
	}
	return loadINISource(r)
}

// LoadINISource parses the Browscap INI file at path.
func LoadINISource(path string) (*INISource, error) {
	if path == "" {
		return nil, errors.Join(ErrLoadFailed, errors.New("empty path"))
	}
	return loadINISource(path)
}

func loadINISource(data any) (*INISource, error) {
	f, err := ini.LoadSources(iniLoadOptions, data)
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}

	sections := f.Sections()
	src := &INISource{
		names:  make([]string, 0, len(sections)),
		values: make(map[string]string, len(sections)*4),
	}

	seen := make(map[string]struct{}, len(sections))
	for _, sec := range sections {
		name := sec.Name()
		if strings.EqualFold(name, ini.DefaultSection) && len(sec.Keys()) == 0 {
			continue
		}

		folded := strings.ToLower(name)
		if _, dup := seen[folded]; !dup {
			seen[folded] = struct{}{}
			src.names = append(src.names, name)
		}

		// Later duplicates override earlier values, as a repeated section does
		// in most INI readers.
		for _, k := range sec.Keys() {
			src.values[strings.ToLower(Key(name, k.Name()))] = k.Value()
		}
	}

	return src, nil
}

// SectionNames returns the section names in file order, in their original case.
// The returned slice must not be modified.
func (s *INISource) SectionNames() []string { return s.names }

// Len returns the number of sections.
func (s *INISource) Len() int { return len(s.names) }

func (s *INISource) lookup(section, property string) (string, bool) {
	v, ok := s.values[strings.ToLower(Key(section, property))]
	return v, ok
}

func (s *INISource) String(section, property string) (string, bool) {
	return s.lookup(section, property)
}

// Int parses the leading integer of a present value with base prefix
// detection. A present value without digits reads as 0.
func (s *INISource) Int(section, property string) (int, bool) {
	v, ok := s.lookup(section, property)
	if !ok {
		return 0, false
	}
	return parseInt(v), true
}

// Bool decides by the first character: y, t and 1 are true; n, f and 0 are
// false (case-insensitive). Anything else, including an empty value, is absent.
func (s *INISource) Bool(section, property string) (bool, bool) {
	v, ok := s.lookup(section, property)
	if !ok {
		return false, false
	}
	return parseBool(v)
}

func parseBool(v string) (bool, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return false, false
	}
	switch v[0] {
	case 'y', 'Y', 't', 'T', '1':
		return true, true
	case 'n', 'N', 'f', 'F', '0':
		return false, true
	default:
		return false, false
	}
}

// parseInt reads the longest integer prefix of v after leading whitespace.
// An optional sign is accepted, "0x" selects base 16 and a leading zero base 8.
// A value without digits yields 0 and out of range values saturate.
func parseInt(v string) int {
	v = strings.TrimLeft(v, " \t\n\v\f\r")

	neg := false
	if v != "" && (v[0] == '+' || v[0] == '-') {
		neg = v[0] == '-'
		v = v[1:]
	}

	base := uint64(10)
	switch {
	case len(v) > 2 && v[0] == '0' && (v[1] == 'x' || v[1] == 'X') && digitValue(v[2]) < 16:
		base, v = 16, v[2:]
	case len(v) > 1 && v[0] == '0':
		base = 8
	}

	var n uint64
	limit := uint64(math.MaxInt)
	if neg {
		limit++
	}
	for i := 0; i < len(v); i++ {
		d := uint64(digitValue(v[i]))
		if d >= base {
			break
		}
		if n > (limit-d)/base {
			n = limit
			break
		}
		n = n*base + d
	}

	if neg {
		return int(-n)
	}
	return int(n)
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}
