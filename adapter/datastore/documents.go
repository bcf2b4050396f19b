package datastore

import (
	"context"
	"slices"

	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

// CreateDocument implements [domain.Datastore]. Fields are parsed before the
// file is read, so invalid input never touches the file.
func (d *Datastore) CreateDocument(ctx context.Context, path string, collection string, fields []domain.InputField) (domain.Document, error) {
	select {
	case <-ctx.Done():
		return domain.Document{}, ctx.Err()
	default:
	}
	data, err := d.parser.ParseFields(fields)
	if err != nil {
		return domain.Document{}, err
	}
	var doc domain.Document
	err = d.persistence.Update(ctx, path, func(db *domain.Database) error {
		col, err := d.collection(db, collection)
		if err != nil {
			return err
		}
		id, err := d.idGenerator.NextID(col)
		if err != nil {
			return err
		}
		doc = domain.Document{ID: id, Data: data}
		col.Documents = append(col.Documents, doc)
		return nil
	})
	if err != nil {
		return domain.Document{}, err
	}
	return doc, nil
}

// ReplaceDocument implements [domain.Datastore].
func (d *Datastore) ReplaceDocument(ctx context.Context, path string, id uint64, collection string, fields []domain.InputField) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	data, err := d.parser.ParseFields(fields)
	if err != nil {
		return err
	}
	return d.persistence.Update(ctx, path, func(db *domain.Database) error {
		col, err := d.collection(db, collection)
		if err != nil {
			return err
		}
		i := col.DocumentIndex(id)
		if i < 0 {
			return domain.ErrDocumentNotFound{ID: id}
		}
		col.Documents[i].Data = data
		return nil
	})
}

// DeleteDocument implements [domain.Datastore].
func (d *Datastore) DeleteDocument(ctx context.Context, path string, id uint64, collection string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return d.persistence.Update(ctx, path, func(db *domain.Database) error {
		col, err := d.collection(db, collection)
		if err != nil {
			return err
		}
		i := col.DocumentIndex(id)
		if i < 0 {
			return domain.ErrDocumentNotFound{ID: id}
		}
		col.Documents = slices.Delete(col.Documents, i, i+1)
		return nil
	})
}

// DeleteAllDocuments implements [domain.Datastore]. The id count is kept.
func (d *Datastore) DeleteAllDocuments(ctx context.Context, path string, collection string) (int, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}
	var count int
	err := d.persistence.Update(ctx, path, func(db *domain.Database) error {
		col, err := d.collection(db, collection)
		if err != nil {
			return err
		}
		count = len(col.Documents)
		col.Documents = nil
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FindAllDocuments implements [domain.Datastore].
func (d *Datastore) FindAllDocuments(ctx context.Context, path string, collection string, options ...domain.FindOption) ([]domain.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return d.find(ctx, path, collection, nil, domain.NewFindOptions(options...))
}

// FindDocumentByID implements [domain.Datastore].
func (d *Datastore) FindDocumentByID(ctx context.Context, path string, id uint64, collection string) (*domain.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	db, err := d.persistence.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	col, err := d.collection(db, collection)
	if err != nil {
		return nil, err
	}
	i := col.DocumentIndex(id)
	if i < 0 {
		return nil, nil
	}
	return &col.Documents[i], nil
}

// FindDocuments implements [domain.Datastore]. The query is parsed before the
// file is read.
func (d *Datastore) FindDocuments(ctx context.Context, path string, collection string, query []domain.InputField, options ...domain.FindOption) ([]domain.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	q, err := d.parser.ParseQuery(query)
	if err != nil {
		return nil, err
	}
	return d.find(ctx, path, collection, q, domain.NewFindOptions(options...))
}

func (d *Datastore) find(ctx context.Context, path string, collection string, query domain.Query, fo domain.FindOptions) ([]domain.Document, error) {
	db, err := d.persistence.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	col, err := d.collection(db, collection)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Document, 0)
	for _, doc := range col.Documents {
		if fo.Reached(len(res)) {
			break
		}
		if d.matcher.Match(doc, query) {
			res = append(res, doc)
		}
	}
	return res, nil
}
