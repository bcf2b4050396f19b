package driver

import (
	"context"
)

// Database is a handle to a database file. It holds no data: every call reads
// the file again.
type Database struct {
	client *Client
	name   string
	path   string
}

// Name returns the database name.
func (d *Database) Name() string {
	return d.name
}

// Path returns the path of the database file.
func (d *Database) Path() string {
	return d.path
}

// Description returns the current database description.
func (d *Database) Description(ctx context.Context) (string, error) {
	if err := d.client.lock(ctx); err != nil {
		return "", err
	}
	defer d.client.unlock()

	r := d.client.engine.FindDatabaseByPath(ctx, d.path)
	if !r.Success {
		return "", r.Error
	}
	if r.Data == nil {
		return "", dropped(d.path)
	}
	return r.Data.Description, nil
}

// SetDescription replaces the database description.
func (d *Database) SetDescription(ctx context.Context, description string) error {
	if err := d.client.lock(ctx); err != nil {
		return err
	}
	defer d.client.unlock()

	return d.client.engine.ChangeDescription(ctx, d.path, description).Error
}

// GetCollection returns the named collection, creating it if it does not
// exist.
func (d *Database) GetCollection(ctx context.Context, name string) (*Collection, error) {
	if err := d.client.lock(ctx); err != nil {
		return nil, err
	}
	defer d.client.unlock()

	found := d.client.engine.FindCollection(ctx, d.path, name)
	if !found.Success {
		return nil, found.Error
	}
	if found.Data == nil {
		if r := d.client.engine.CreateCollection(ctx, d.path, name); !r.Success {
			return nil, r.Error
		}
	}
	return &Collection{db: d, name: name}, nil
}

// ListCollections returns the collections in stored order.
func (d *Database) ListCollections(ctx context.Context) ([]string, error) {
	if err := d.client.lock(ctx); err != nil {
		return nil, err
	}
	defer d.client.unlock()

	r := d.client.engine.FindAllCollections(ctx, d.path)
	if !r.Success {
		return nil, r.Error
	}
	names := make([]string, len(r.Data))
	for n, info := range r.Data {
		names[n] = info.Name
	}
	return names, nil
}

// DropCollection removes a collection and all its documents.
func (d *Database) DropCollection(ctx context.Context, name string) error {
	if err := d.client.lock(ctx); err != nil {
		return err
	}
	defer d.client.unlock()

	if r := d.client.engine.DeleteAllDocuments(ctx, d.path, name); !r.Success {
		return r.Error
	}
	return d.client.engine.DeleteCollection(ctx, d.path, name).Error
}

// Drop deletes the database file. The handle cannot be used afterwards.
func (d *Database) Drop(ctx context.Context) error {
	if err := d.client.lock(ctx); err != nil {
		return err
	}
	defer d.client.unlock()

	return d.client.engine.DeleteDatabase(ctx, d.path).Error
}
