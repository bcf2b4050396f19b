package datastore

import "github.com/vinicius-lino-figueiredo/filedb/domain"

// WithPersistence sets the persistence used to load and save databases.
func WithPersistence(p domain.Persistence) Option {
	return func(d *Datastore) {
		d.persistence = p
	}
}

// WithStorage sets the storage used for directory operations. It should be
// the same storage given to the persistence.
func WithStorage(s domain.Storage) Option {
	return func(d *Datastore) {
		d.storage = s
	}
}

// WithParser sets the parser for user supplied fields.
func WithParser(p domain.ValueParser) Option {
	return func(d *Datastore) {
		d.parser = p
	}
}

// WithValidator sets the validator for database and collection names.
func WithValidator(v domain.NameValidator) Option {
	return func(d *Datastore) {
		d.validator = v
	}
}

// WithMatcher sets the matcher for equality queries.
func WithMatcher(m domain.Matcher) Option {
	return func(d *Datastore) {
		d.matcher = m
	}
}

// WithIDGenerator sets how new document ids are allocated.
func WithIDGenerator(i domain.IDGenerator) Option {
	return func(d *Datastore) {
		d.idGenerator = i
	}
}

// Option configures datastore behavior through the functional options pattern.
type Option func(*Datastore)
