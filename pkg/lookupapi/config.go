package lookupapi

// Config bounds batch lookups.
type Config struct {
	MaxBatch     int   `env:"MAX_BATCH" envDefault:"100"`
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}

// DefaultConfig matches the env defaults.
func DefaultConfig() Config {
	return Config{MaxBatch: 100, MaxBodyBytes: 1 << 20}
}
