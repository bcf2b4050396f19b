package datastore

import (
	"context"

	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

// CreateCollection implements [domain.Datastore].
func (d *Datastore) CreateCollection(ctx context.Context, path string, name string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	if err := d.validator.ValidateName(domain.SubjectCollection, name); err != nil {
		return err
	}
	return d.persistence.Update(ctx, path, func(db *domain.Database) error {
		if db.CollectionIndex(name) >= 0 {
			return domain.ErrCollectionExists{Name: name}
		}
		db.Collections = append(db.Collections, domain.Collection{Name: name})
		return nil
	})
}

// DeleteCollection implements [domain.Datastore]. Collections holding
// documents are never deleted.
func (d *Datastore) DeleteCollection(ctx context.Context, path string, name string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return d.persistence.Update(ctx, path, func(db *domain.Database) error {
		i := db.CollectionIndex(name)
		if i < 0 {
			return domain.ErrCollectionNotFound{Name: name}
		}
		if n := len(db.Collections[i].Documents); n > 0 {
			return domain.ErrCollectionHasDocuments{Name: name, Count: n}
		}
		db.Collections = append(db.Collections[:i], db.Collections[i+1:]...)
		return nil
	})
}

// FindAllCollections implements [domain.Datastore].
func (d *Datastore) FindAllCollections(ctx context.Context, path string) ([]domain.CollectionInfo, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	db, err := d.persistence.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	res := make([]domain.CollectionInfo, len(db.Collections))
	for n, col := range db.Collections {
		res[n] = domain.CollectionInfo{Name: col.Name}
	}
	return res, nil
}

// FindCollection implements [domain.Datastore].
func (d *Datastore) FindCollection(ctx context.Context, path string, name string) (*domain.CollectionInfo, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	db, err := d.persistence.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	if db.CollectionIndex(name) < 0 {
		return nil, nil
	}
	return &domain.CollectionInfo{Name: name}, nil
}
