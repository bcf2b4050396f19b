package datastore

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

// CreateDatabaseInDirectory implements [domain.Datastore].
func (d *Datastore) CreateDatabaseInDirectory(ctx context.Context, dir string, name string) (domain.DatabaseInfo, error) {
	select {
	case <-ctx.Done():
		return domain.DatabaseInfo{}, ctx.Err()
	default:
	}
	if err := d.validator.ValidateName(domain.SubjectDatabase, name); err != nil {
		return domain.DatabaseInfo{}, err
	}
	if err := d.storage.EnsureDir(dir); err != nil {
		return domain.DatabaseInfo{}, err
	}
	return d.createDatabase(ctx, dir, name)
}

// CreateDatabaseByPath implements [domain.Datastore].
func (d *Datastore) CreateDatabaseByPath(ctx context.Context, name string, dir string) (domain.DatabaseInfo, error) {
	select {
	case <-ctx.Done():
		return domain.DatabaseInfo{}, ctx.Err()
	default:
	}
	if err := d.validator.ValidateName(domain.SubjectDatabase, name); err != nil {
		return domain.DatabaseInfo{}, err
	}
	isDir, err := d.storage.IsDir(dir)
	if err != nil {
		return domain.DatabaseInfo{}, err
	}
	if !isDir {
		return domain.DatabaseInfo{}, domain.ErrDirectoryNotFound{Path: dir}
	}
	return d.createDatabase(ctx, dir, name)
}

func (d *Datastore) createDatabase(ctx context.Context, dir string, name string) (domain.DatabaseInfo, error) {
	path := DatabasePath(dir, name)
	db := &domain.Database{Name: name}
	if err := d.persistence.Create(ctx, path, db); err != nil {
		return domain.DatabaseInfo{}, err
	}
	return d.info(path, db)
}

// DeleteDatabase implements [domain.Datastore].
func (d *Datastore) DeleteDatabase(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return d.persistence.Remove(ctx, path)
}

// ChangeDescription implements [domain.Datastore].
func (d *Datastore) ChangeDescription(ctx context.Context, path string, description string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return d.persistence.Update(ctx, path, func(db *domain.Database) error {
		db.Description = description
		return nil
	})
}

// FindAllDatabases implements [domain.Datastore]. Databases are sorted by file
// name. A missing directory has no databases, and any file that cannot be
// decoded fails the whole call.
func (d *Datastore) FindAllDatabases(ctx context.Context, dir string) ([]domain.DatabaseInfo, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	res := make([]domain.DatabaseInfo, 0)
	isDir, err := d.storage.IsDir(dir)
	if err != nil {
		return nil, err
	}
	if !isDir {
		return res, nil
	}
	entries, err := d.storage.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != "."+domain.FileExtension {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		isFile, err := d.storage.IsFile(path)
		if err != nil {
			return nil, err
		}
		if !isFile {
			continue
		}
		db, err := d.persistence.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		info, err := d.info(path, db)
		if err != nil {
			return nil, err
		}
		res = append(res, info)
	}
	return res, nil
}

// FindDatabaseByName implements [domain.Datastore].
func (d *Datastore) FindDatabaseByName(ctx context.Context, dir string, name string) (*domain.DatabaseInfo, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	if err := d.validator.ValidateName(domain.SubjectDatabase, name); err != nil {
		return nil, err
	}
	return d.FindDatabaseByPath(ctx, DatabasePath(dir, name))
}

// FindDatabaseByPath implements [domain.Datastore]. The stored name must match
// the file name.
func (d *Datastore) FindDatabaseByPath(ctx context.Context, path string) (*domain.DatabaseInfo, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	db, err := d.persistence.Load(ctx, path)
	if err != nil {
		if errors.As(err, &domain.ErrDatabaseNotFound{}) {
			return nil, nil
		}
		return nil, err
	}
	info, err := d.info(path, db)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (d *Datastore) info(path string, db *domain.Database) (domain.DatabaseInfo, error) {
	size, err := d.persistence.Size(path)
	if err != nil {
		return domain.DatabaseInfo{}, err
	}
	return domain.DatabaseInfo{
		Name:        db.Name,
		Description: db.Description,
		Size:        size,
		Path:        path,
	}, nil
}
