package config

// WithDir sets the directory holding the configuration file. Default paths
// are relative to it.
func WithDir(d string) Option {
	return func(s *Store) {
		s.dir = d
	}
}

// Option configures the store through the functional options pattern.
type Option func(*Store)
