package filedb

// WithConfigStore sets where the database and log directories are read from.
// It is only used when [WithDatabaseDir] or [WithLogger] are missing.
func WithConfigStore(c ConfigStore) Option {
	return func(e *Engine) {
		e.configStore = c
	}
}

// WithDatastore sets the storage engine.
func WithDatastore(d Datastore) Option {
	return func(e *Engine) {
		e.datastore = d
	}
}

// WithLogger sets the logger receiving operation events and errors.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithDatabaseDir sets the directory where databases are created and listed.
func WithDatabaseDir(d string) Option {
	return func(e *Engine) {
		e.dir = d
	}
}

// Option configures engine behavior through the functional options pattern.
type Option func(*Engine)
