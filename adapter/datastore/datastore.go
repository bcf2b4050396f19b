// Package datastore contains the default [domain.Datastore] implementation.
//
// The datastore keeps no state between calls. Every operation loads the whole
// database file, and mutating operations rewrite it before returning.
package datastore

import (
	"path/filepath"

	"github.com/vinicius-lino-figueiredo/filedb/adapter/idgenerator"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/matcher"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/parser"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/persistence"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/storage"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/validator"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

// Datastore implements [domain.Datastore].
type Datastore struct {
	persistence domain.Persistence
	storage     domain.Storage
	parser      domain.ValueParser
	validator   domain.NameValidator
	matcher     domain.Matcher
	idGenerator domain.IDGenerator
}

// NewDatastore returns a new implementation of [domain.Datastore].
func NewDatastore(options ...Option) domain.Datastore {
	d := Datastore{
		validator:   validator.NewValidator(),
		matcher:     matcher.NewMatcher(),
		idGenerator: idgenerator.NewIDGenerator(),
	}
	for _, option := range options {
		option(&d)
	}
	if d.storage == nil {
		d.storage = storage.NewStorage()
	}
	if d.persistence == nil {
		d.persistence = persistence.NewPersistence(
			persistence.WithStorage(d.storage),
			persistence.WithValidator(d.validator),
		)
	}
	if d.parser == nil {
		d.parser = parser.NewParser(parser.WithValidator(d.validator))
	}
	return &d
}

// DatabasePath returns the path of the file holding the named database.
func DatabasePath(dir string, name string) string {
	return filepath.Join(dir, name+"."+domain.FileExtension)
}

func (d *Datastore) collection(db *domain.Database, name string) (*domain.Collection, error) {
	i := db.CollectionIndex(name)
	if i < 0 {
		return nil, domain.ErrCollectionNotFound{Name: name}
	}
	return &db.Collections[i], nil
}
