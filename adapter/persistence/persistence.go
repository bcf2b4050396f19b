// Package persistence contains the default [domain.Persistence]
// implementation. Every call works on the whole file: it is read and decoded
// under a shared lock, or read, changed and rewritten under an exclusive one.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/vinicius-lino-figueiredo/filedb/adapter/codec"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/locker"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/storage"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/validator"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

// Persistence implements [domain.Persistence].
type Persistence struct {
	storage   domain.Storage
	codec     domain.Codec
	locker    domain.Locker
	validator domain.NameValidator
}

// NewPersistence returns a new implementation of [domain.Persistence].
func NewPersistence(options ...Option) domain.Persistence {
	p := Persistence{
		storage:   storage.NewStorage(),
		codec:     codec.NewCodec(),
		locker:    locker.NewLocker(),
		validator: validator.NewValidator(),
	}
	for _, option := range options {
		option(&p)
	}
	return &p
}

// Load implements [domain.Persistence].
func (p *Persistence) Load(ctx context.Context, path string) (*domain.Database, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	unlock, err := p.locker.RLock(ctx, path)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return p.read(ctx, path)
}

// Update implements [domain.Persistence].
func (p *Persistence) Update(ctx context.Context, path string, fn func(*domain.Database) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	unlock, err := p.locker.Lock(ctx, path)
	if err != nil {
		return err
	}
	defer unlock()

	db, err := p.read(ctx, path)
	if err != nil {
		return err
	}
	if err := fn(db); err != nil {
		return err
	}
	if err := p.check(path, db); err != nil {
		return fmt.Errorf("refusing to write invalid database: %w", err)
	}
	b, err := p.codec.Encode(db)
	if err != nil {
		return err
	}
	return p.storage.WriteAll(ctx, path, b)
}

// Create implements [domain.Persistence].
func (p *Persistence) Create(ctx context.Context, path string, db *domain.Database) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	if err := p.check(path, db); err != nil {
		return fmt.Errorf("refusing to write invalid database: %w", err)
	}
	b, err := p.codec.Encode(db)
	if err != nil {
		return err
	}
	return p.storage.Create(ctx, path, b)
}

// Remove implements [domain.Persistence].
func (p *Persistence) Remove(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	// wait for any write in progress. The lock is released before removing
	// because an open file cannot be removed on every platform
	unlock, err := p.locker.Lock(ctx, path)
	if err != nil {
		return err
	}
	if err := unlock(); err != nil {
		return err
	}
	return p.storage.Remove(path)
}

// Size implements [domain.Persistence].
func (p *Persistence) Size(path string) (int64, error) {
	return p.storage.Size(path)
}

func (p *Persistence) read(ctx context.Context, path string) (*domain.Database, error) {
	b, err := p.storage.ReadAll(ctx, path)
	if err != nil {
		return nil, err
	}
	db, err := p.codec.Decode(b)
	if err != nil {
		var corrupt domain.ErrCorruptDatabase
		if errors.As(err, &corrupt) {
			corrupt.Path = path
			return nil, corrupt
		}
		return nil, domain.ErrCorruptDatabase{Path: path, Err: err}
	}
	if err := p.check(path, db); err != nil {
		return nil, domain.ErrCorruptDatabase{Path: path, Err: err}
	}
	return db, nil
}

// check verifies the structural rules a database must follow once decoded.
func (p *Persistence) check(path string, db *domain.Database) error {
	if db == nil {
		return domain.ErrTargetNil
	}
	if err := p.validator.ValidateName(domain.SubjectDatabase, db.Name); err != nil {
		return err
	}
	base := filepath.Base(path)
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); db.Name != stem {
		return ErrNameMismatch{Name: db.Name, Stem: stem}
	}
	if !utf8.ValidString(db.Description) {
		return ErrInvalidText{Subject: "database description"}
	}

	cols := make(map[string]struct{}, len(db.Collections))
	for _, col := range db.Collections {
		if err := p.validator.ValidateName(domain.SubjectCollection, col.Name); err != nil {
			return err
		}
		if _, ok := cols[col.Name]; ok {
			return ErrDuplicateCollection{Name: col.Name}
		}
		cols[col.Name] = struct{}{}

		ids := make(map[uint64]struct{}, len(col.Documents))
		for _, doc := range col.Documents {
			if doc.ID == 0 || doc.ID > col.IDCount {
				return ErrInvalidID{Collection: col.Name, ID: doc.ID, IDCount: col.IDCount}
			}
			if _, ok := ids[doc.ID]; ok {
				return ErrDuplicateID{Collection: col.Name, ID: doc.ID}
			}
			ids[doc.ID] = struct{}{}
			for name, v := range doc.Data {
				if err := p.validator.ValidateName(domain.SubjectField, name); err != nil {
					return err
				}
				if t, ok := v.(domain.Text); ok && !utf8.ValidString(string(t)) {
					return ErrInvalidText{Subject: fmt.Sprintf("field %q of document %d in collection %q", name, doc.ID, col.Name)}
				}
			}
		}
	}
	return nil
}
