package storage

import "os"

// WithFileMode sets the permissions of new database files.
func WithFileMode(f os.FileMode) Option {
	return func(s *Storage) {
		s.fileMode = f
	}
}

// WithDirMode sets the permissions of created directories.
func WithDirMode(d os.FileMode) Option {
	return func(s *Storage) {
		s.dirMode = d
	}
}

// Option configures storage behavior through the functional options pattern.
type Option func(*Storage)
