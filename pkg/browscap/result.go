package browscap

import "slices"

// Field is one property of a Result. Set reports whether any record on the
// parent chain defined the property; Value is meaningful only when Set is true.
type Field[T any] struct {
	Name  string
	Value T
	Set   bool
}

// Result is the merged property set for one query.
//
// Every category holds exactly as many fields as the database schema defines,
// in schema order. A Result owns all of its values and stays valid after the
// DB that produced it is closed.
type Result struct {
	query   string
	variant Variant
	pattern string
	chain   []string

	strings []Field[string]
	ints    []Field[int]
	bools   []Field[bool]
}

func newResult(schema Schema, query string) Result {
	return Result{
		query:   query,
		variant: schema.variant,
		strings: newFields[string](schema.strings),
		ints:    newFields[int](schema.ints),
		bools:   newFields[bool](schema.bools),
	}
}

func newFields[T any](names []string) []Field[T] {
	fields := make([]Field[T], len(names))
	for i, name := range names {
		fields[i].Name = name
	}
	return fields
}

// Query returns the string the result was resolved for.
func (r Result) Query() string { return r.query }

// Variant returns the schema variant of the database that produced the result.
func (r Result) Variant() Variant { return r.variant }

// Matched reports whether any record pattern matched the query.
func (r Result) Matched() bool { return r.pattern != "" }

// Pattern returns the name of the matched record, or "" when nothing matched.
func (r Result) Pattern() string { return r.pattern }

// Chain returns the records visited while resolving, starting with the
// matched record. Parent names are lower-cased.
func (r Result) Chain() []string { return slices.Clone(r.chain) }

func (r Result) Strings() []Field[string] { return slices.Clone(r.strings) }
func (r Result) Ints() []Field[int]       { return slices.Clone(r.ints) }
func (r Result) Bools() []Field[bool]     { return slices.Clone(r.bools) }

// String returns a string property by name. ok is false when the property is
// unset or not part of the schema.
func (r Result) String(name string) (value string, ok bool) { return lookup(r.strings, name) }

// Int returns an integer property by name.
func (r Result) Int(name string) (value int, ok bool) { return lookup(r.ints, name) }

// Bool returns a boolean property by name.
func (r Result) Bool(name string) (value bool, ok bool) { return lookup(r.bools, name) }

func lookup[T any](fields []Field[T], name string) (T, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f.Value, f.Set
		}
	}
	var zero T
	return zero, false
}

// Convenience accessors return the zero value for unset properties.
// Use String, Int or Bool when presence matters.

func (r Result) Comment() string      { return valueOf(r.strings, "Comment") }
func (r Result) Browser() string      { return valueOf(r.strings, "Browser") }
func (r Result) Version() string      { return valueOf(r.strings, "Version") }
func (r Result) Platform() string     { return valueOf(r.strings, "Platform") }
func (r Result) DeviceType() string   { return valueOf(r.strings, "Device_Type") }
func (r Result) MajorVer() int        { return valueOf(r.ints, "MajorVer") }
func (r Result) MinorVer() int        { return valueOf(r.ints, "MinorVer") }
func (r Result) IsMobileDevice() bool { return valueOf(r.bools, "isMobileDevice") }
func (r Result) IsTablet() bool       { return valueOf(r.bools, "isTablet") }
func (r Result) IsCrawler() bool      { return valueOf(r.bools, "Crawler") }

func valueOf[T any](fields []Field[T], name string) T {
	v, _ := lookup(fields, name)
	return v
}

// Property is the serialisable form of a Field. Value is nil when unset.
type Property struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
	Set   bool   `json:"set" yaml:"set"`
}

// Record is the serialisable form of a Result.
type Record struct {
	Query   string     `json:"query" yaml:"query"`
	Variant string     `json:"variant" yaml:"variant"`
	Matched bool       `json:"matched" yaml:"matched"`
	Pattern string     `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Chain   []string   `json:"chain,omitempty" yaml:"chain,omitempty"`
	Strings []Property `json:"strings" yaml:"strings"`
	Ints    []Property `json:"ints" yaml:"ints"`
	Bools   []Property `json:"bools" yaml:"bools"`
}

// Record converts the result into its serialisable form.
func (r Result) Record() Record {
	return Record{
		Query:   r.query,
		Variant: r.variant.String(),
		Matched: r.Matched(),
		Pattern: r.pattern,
		Chain:   slices.Clone(r.chain),
		Strings: properties(r.strings),
		Ints:    properties(r.ints),
		Bools:   properties(r.bools),
	}
}

func properties[T any](fields []Field[T]) []Property {
	props := make([]Property, len(fields))
	for i, f := range fields {
		props[i] = Property{Name: f.Name, Set: f.Set}
		if f.Set {
			props[i].Value = f.Value
		}
	}
	return props
}
