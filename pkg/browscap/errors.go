package browscap

import "errors"

var (
	ErrLoadFailed        = errors.New("failed to load browscap database")
	ErrNilSource         = errors.New("browscap source is nil")
	ErrClosed            = errors.New("browscap database is closed")
	ErrCyclicInheritance = errors.New("cyclic parent chain in browscap database")

	// ErrMissingSchemaType is never returned by Load; it is attached to the
	// warning logged when the version section does not declare a file type.
	ErrMissingSchemaType = errors.New("browscap file type not declared, defaulting to regular")
)
