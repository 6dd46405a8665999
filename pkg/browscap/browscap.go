package browscap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/dmitrymomot/browscap/pkg/logger"
)

// Metadata describes the loaded file as declared in its version section.
type Metadata struct {
	Version  string `json:"version,omitempty" yaml:"version,omitempty"`
	Released string `json:"released,omitempty" yaml:"released,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	// TypeDeclared is false when the Type key is absent and the variant
	// was defaulted to Regular.
	TypeDeclared bool    `json:"type_declared" yaml:"type_declared"`
	Variant      Variant `json:"-" yaml:"-"`
}

// DB is a loaded Browscap database.
//
// A DB is immutable after construction; Search is safe for concurrent use.
type DB struct {
	src     Source
	schema  Schema
	meta    Metadata
	matcher *matcher
	closed  atomic.Bool
}

// Option configures database loading.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives load-time warnings.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New builds a DB over an already parsed source. The schema variant is
// detected once here; a missing file type is logged and defaults to Regular.
func New(src Source, opts ...Option) (*DB, error) {
	if src == nil {
		return nil, errors.Join(ErrLoadFailed, ErrNilSource)
	}

	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	log := o.logger.With(logger.Component("browscap"))

	variant, declared := DetectVariant(src)
	meta := Metadata{TypeDeclared: declared, Variant: variant}
	meta.Version, _ = src.String(VersionSection, "Version")
	meta.Released, _ = src.String(VersionSection, "Released")
	meta.Type, _ = src.String(VersionSection, "Type")

	if !declared {
		log.Warn("schema variant not declared", logger.Error(ErrMissingSchemaType))
	}

	m, fallbacks := newMatcher(src.SectionNames())
	for _, p := range fallbacks {
		log.Debug("pattern brackets matched literally", logger.Pattern(p))
	}

	log.Debug("database loaded",
		logger.Variant(variant.String()),
		logger.Count(len(m.names)),
		slog.String("version", meta.Version),
	)

	return &DB{
		src:     src,
		schema:  SchemaFor(variant),
		meta:    meta,
		matcher: m,
	}, nil
}

// Open parses a Browscap INI document from r and builds a DB over it.
func Open(r io.Reader, opts ...Option) (*DB, error) {
	src, err := NewINISource(r)
	if err != nil {
		return nil, err
	}
	return New(src, opts...)
}

// Load parses the Browscap INI file at path and builds a DB over it.
func Load(path string, opts ...Option) (*DB, error) {
	src, err := LoadINISource(path)
	if err != nil {
		return nil, err
	}
	return New(src, opts...)
}

// Search resolves the properties for query.
//
// The first record, in file order, whose pattern matches query
// case-insensitively is selected and merged with its ancestors. A query that
// matches nothing is not an error: the result has every field unset.
func (db *DB) Search(query string) (Result, error) {
	if db.closed.Load() {
		return Result{}, ErrClosed
	}

	start, ok := db.matcher.match(query)
	if !ok {
		return newResult(db.schema, query), nil
	}
	return resolve(db.src, db.schema, query, start)
}

func (db *DB) Variant() Variant   { return db.schema.variant }
func (db *DB) Schema() Schema     { return db.schema }
func (db *DB) Metadata() Metadata { return db.meta }

// Len returns the number of records.
func (db *DB) Len() int { return len(db.matcher.names) }

// Ready reports ErrClosed once the database has been closed.
func (db *DB) Ready(context.Context) error {
	if db.closed.Load() {
		return ErrClosed
	}
	return nil
}

// Close releases the database. Subsequent searches fail with ErrClosed;
// results obtained earlier remain valid.
func (db *DB) Close() error {
	db.closed.Store(true)
	return nil
}
