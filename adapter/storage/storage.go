// Package storage contains the default [domain.Storage] implementation.
package storage

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/dolmen-go/contextio"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

const (
	DefaultDirMode  os.FileMode = 0o755
	DefaultFileMode os.FileMode = 0o644
)

// Storage implements [domain.Storage].
type Storage struct {
	osOps    osOps
	fileMode os.FileMode
	dirMode  os.FileMode
}

// NewStorage returns a new implementation of [domain.Storage].
func NewStorage(options ...Option) domain.Storage {
	s := Storage{
		osOps:    &osImpl{},
		fileMode: DefaultFileMode,
		dirMode:  DefaultDirMode,
	}
	for _, option := range options {
		option(&s)
	}
	return &s
}

// ReadAll implements [domain.Storage].
func (s *Storage) ReadAll(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	isFile, err := s.IsFile(path)
	if err != nil {
		return nil, err
	}
	if !isFile {
		return nil, domain.ErrDatabaseNotFound{Path: path}
	}
	f, err := s.osOps.OpenFile(path, os.O_RDONLY, s.fileMode)
	if err != nil {
		if s.osOps.IsNotExist(err) {
			return nil, domain.ErrDatabaseNotFound{Path: path}
		}
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(contextio.NewReader(ctx, f))
}

// WriteAll implements [domain.Storage].
func (s *Storage) WriteAll(ctx context.Context, path string, data []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	f, err := s.osOps.OpenFile(path, os.O_WRONLY|os.O_TRUNC, s.fileMode)
	if err != nil {
		if s.osOps.IsNotExist(err) {
			return domain.ErrDatabaseNotFound{Path: path}
		}
		return err
	}
	// once truncated the file must be fully written, so the context is no
	// longer checked
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Create implements [domain.Storage].
func (s *Storage) Create(ctx context.Context, path string, data []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	f, err := s.osOps.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, s.fileMode)
	if err != nil {
		if s.osOps.IsExist(err) {
			return domain.ErrDatabaseExists{Path: path}
		}
		return err
	}
	_, err = contextio.NewWriter(ctx, f).Write(data)
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// a half written file would be read as corrupt later
		return errors.Join(err, s.osOps.Remove(path))
	}
	return nil
}

// Remove implements [domain.Storage]. Only regular files are removed.
func (s *Storage) Remove(path string) error {
	isFile, err := s.IsFile(path)
	if err != nil {
		return err
	}
	if !isFile {
		return domain.ErrDatabaseNotFound{Path: path}
	}
	if err := s.osOps.Remove(path); err != nil {
		if s.osOps.IsNotExist(err) {
			return domain.ErrDatabaseNotFound{Path: path}
		}
		return err
	}
	return nil
}

// IsFile implements [domain.Storage].
func (s *Storage) IsFile(path string) (bool, error) {
	info, err := s.stat(path)
	if err != nil || info == nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// IsDir implements [domain.Storage].
func (s *Storage) IsDir(path string) (bool, error) {
	info, err := s.stat(path)
	if err != nil || info == nil {
		return false, err
	}
	return info.IsDir(), nil
}

// returns nil info and no error if path does not exist
func (s *Storage) stat(path string) (os.FileInfo, error) {
	info, err := s.osOps.Stat(path)
	if err != nil {
		if s.osOps.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return info, nil
}

// EnsureDir implements [domain.Storage].
func (s *Storage) EnsureDir(path string) error {
	return s.osOps.MkdirAll(path, s.dirMode)
}

// ReadDir implements [domain.Storage].
func (s *Storage) ReadDir(path string) ([]os.DirEntry, error) {
	return s.osOps.ReadDir(path)
}

// Size implements [domain.Storage].
func (s *Storage) Size(path string) (int64, error) {
	info, err := s.stat(path)
	if err != nil {
		return 0, err
	}
	if info == nil || !info.Mode().IsRegular() {
		return 0, domain.ErrDatabaseNotFound{Path: path}
	}
	return info.Size(), nil
}
