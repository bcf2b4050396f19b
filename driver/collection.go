package driver

import (
	"context"

	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

// Collection is a handle to a collection of a [Database].
type Collection struct {
	db   *Database
	name string
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// InsertOne stores doc, a struct or a map with string keys, as a new
// document. The stored document is returned with its id.
func (c *Collection) InsertOne(ctx context.Context, doc any) (domain.Document, error) {
	fields, err := c.db.client.encoder.Encode(doc)
	if err != nil {
		return domain.Document{}, err
	}
	if err := c.db.client.lock(ctx); err != nil {
		return domain.Document{}, err
	}
	defer c.db.client.unlock()

	r := c.db.client.engine.CreateDocument(ctx, c.db.path, c.name, fields)
	return r.Data, r.Error
}

// ReplaceOneByID replaces every field of the document with the fields of doc.
func (c *Collection) ReplaceOneByID(ctx context.Context, id uint64, doc any) error {
	fields, err := c.db.client.encoder.Encode(doc)
	if err != nil {
		return err
	}
	if err := c.db.client.lock(ctx); err != nil {
		return err
	}
	defer c.db.client.unlock()

	return c.db.client.engine.ReplaceDocument(ctx, c.db.path, id, c.name, fields).Error
}

// DeleteOneByID removes a document.
func (c *Collection) DeleteOneByID(ctx context.Context, id uint64) error {
	if err := c.db.client.lock(ctx); err != nil {
		return err
	}
	defer c.db.client.unlock()

	return c.db.client.engine.DeleteDocument(ctx, c.db.path, id, c.name).Error
}

// DeleteAll removes every document and returns how many there were.
func (c *Collection) DeleteAll(ctx context.Context) (int, error) {
	if err := c.db.client.lock(ctx); err != nil {
		return 0, err
	}
	defer c.db.client.unlock()

	r := c.db.client.engine.DeleteAllDocuments(ctx, c.db.path, c.name)
	return r.Data, r.Error
}

// FindAll returns the documents in insertion order.
func (c *Collection) FindAll(ctx context.Context, options ...domain.FindOption) ([]domain.Document, error) {
	if err := c.db.client.lock(ctx); err != nil {
		return nil, err
	}
	defer c.db.client.unlock()

	r := c.db.client.engine.FindAllDocuments(ctx, c.db.path, c.name, options...)
	return r.Data, r.Error
}

// FindOneByID returns the document with the given id, or nil if there is none.
func (c *Collection) FindOneByID(ctx context.Context, id uint64) (*domain.Document, error) {
	if err := c.db.client.lock(ctx); err != nil {
		return nil, err
	}
	defer c.db.client.unlock()

	r := c.db.client.engine.FindDocumentByID(ctx, c.db.path, id, c.name)
	return r.Data, r.Error
}

// FindMany returns, in insertion order, the documents having every field of
// query with an equal value. Query is encoded like an inserted document, so
// its Go types select the stored kinds it matches.
func (c *Collection) FindMany(ctx context.Context, query any, options ...domain.FindOption) ([]domain.Document, error) {
	fields, err := c.db.client.encoder.Encode(query)
	if err != nil {
		return nil, err
	}
	if err := c.db.client.lock(ctx); err != nil {
		return nil, err
	}
	defer c.db.client.unlock()

	r := c.db.client.engine.FindDocuments(ctx, c.db.path, c.name, fields, options...)
	return r.Data, r.Error
}

// Decode copies a document of this collection into target using the client
// decoder.
func (c *Collection) Decode(doc domain.Document, target any) error {
	return c.db.client.decoder.Decode(doc, target)
}

func dropped(path string) error {
	return domain.ErrDatabaseNotFound{Path: path}
}
