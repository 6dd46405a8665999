package browscap

// Well-known sections and keys of the Browscap format.
const (
	VersionSection = "GJK_Browscap_Version"
	ParentProperty = "Parent"

	// KeySeparator joins a section name and a property name into a composite key.
	KeySeparator = ":"
)

// Source is the read-only key-value store a DB resolves against.
//
// Lookups must report absence through the boolean result rather than through
// a zero value: an empty string, a zero integer and false are all legitimate
// property values. Implementations used by a DB concurrently must be safe
// for concurrent reads.
type Source interface {
	// SectionNames returns the record names in file order.
	SectionNames() []string
	String(section, property string) (string, bool)
	Int(section, property string) (int, bool)
	Bool(section, property string) (bool, bool)
}

// Key composes the composite lookup key for a property of a section.
func Key(section, property string) string {
	return section + KeySeparator + property
}
