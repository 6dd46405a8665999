package browscap

import "slices"

// Variant identifies which of the three Browscap property sets a file carries.
// Each variant is a strict superset of the previous one.
type Variant int

const (
	VariantLite Variant = iota
	VariantRegular
	VariantFull
)

// Tokens written to the Type key of the version section.
const (
	TypeLite = "LITE"
	TypeFull = "FULL"
)

// String returns the lower-case variant name.
func (v Variant) String() string {
	switch v {
	case VariantLite:
		return "lite"
	case VariantFull:
		return "full"
	default:
		return "regular"
	}
}

// ParseVariant maps the value of the version section's Type key to a Variant.
// The comparison is exact: only "LITE" and "FULL" select their variants,
// anything else (including an empty value) is Regular.
func ParseVariant(s string) Variant {
	switch s {
	case TypeLite:
		return VariantLite
	case TypeFull:
		return VariantFull
	default:
		return VariantRegular
	}
}

// Property names in output column order. A variant exposes a prefix of each list.
var (
	stringPropertyNames = [...]string{
		// lite
		"Comment",
		"Browser",
		"Version",
		"Platform",
		"Device_Type",
		// regular
		"Device_Pointing_Method",
		// full
		"Browser_Type",
		"Browser_Maker",
		"Browser_Modus",
		"Platform_Version",
		"Platform_Description",
		"Platform_Maker",
		"Device_Name",
		"Device_Maker",
		"Device_Code_Name",
		"Device_Brand_Name",
		"RenderingEngine_Name",
		"RenderingEngine_Version",
		"RenderingEngine_Description",
		"RenderingEngine_Maker",
	}

	intPropertyNames = [...]string{
		// regular
		"MajorVer",
		"MinorVer",
		// full
		"Browser_Bits",
		"Platform_Bits",
		"CssVersion",
		"AolVersion",
	}

	boolPropertyNames = [...]string{
		// lite
		"isMobileDevice",
		"isTablet",
		// regular
		"Crawler",
		// full
		"Alpha",
		"Beta",
		"Win16",
		"Win32",
		"Win64",
		"Frames",
		"IFrames",
		"Tables",
		"Cookies",
		"BackgroundSounds",
		"JavaScript",
		"VBScript",
		"JavaApplets",
		"ActiveXControls",
		"isSyndicationReader",
		"isFake",
		"isAnonymized",
		"isModified",
	}
)

// Per-variant prefix lengths, indexed by Variant.
var (
	stringPropertyCounts = [...]int{5, 6, 20}
	intPropertyCounts    = [...]int{0, 2, 6}
	boolPropertyCounts   = [...]int{2, 3, 21}
)

// Schema is the ordered property layout of one variant. Obtain it with SchemaFor.
type Schema struct {
	variant Variant
	strings []string
	ints    []string
	bools   []string
}

// SchemaFor returns the schema of the given variant.
// Unknown variants get the Regular schema.
func SchemaFor(v Variant) Schema {
	if v < VariantLite || v > VariantFull {
		v = VariantRegular
	}
	return Schema{
		variant: v,
		strings: stringPropertyNames[:stringPropertyCounts[v]:stringPropertyCounts[v]],
		ints:    intPropertyNames[:intPropertyCounts[v]:intPropertyCounts[v]],
		bools:   boolPropertyNames[:boolPropertyCounts[v]:boolPropertyCounts[v]],
	}
}

func (s Schema) Variant() Variant { return s.variant }

// StringProperties returns a copy of the string property names in column order.
func (s Schema) StringProperties() []string { return slices.Clone(s.strings) }

// IntProperties returns a copy of the integer property names in column order.
func (s Schema) IntProperties() []string { return slices.Clone(s.ints) }

// BoolProperties returns a copy of the boolean property names in column order.
func (s Schema) BoolProperties() []string { return slices.Clone(s.bools) }

// Counts returns the number of string, integer and boolean properties.
func (s Schema) Counts() (strs, ints, bools int) {
	return len(s.strings), len(s.ints), len(s.bools)
}

// DetectVariant reads the file type declared in the version section.
// The second return value is false when the key is absent, in which case the
// variant defaults to Regular.
func DetectVariant(src Source) (Variant, bool) {
	typ, ok := src.String(VersionSection, "Type")
	if !ok {
		return VariantRegular, false
	}
	return ParseVariant(typ), true
}
