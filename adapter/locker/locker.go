// Package locker contains the default [domain.Locker] implementation, based on
// advisory file locks.
package locker

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

// DefaultRetryDelay is the default wait between lock attempts.
const DefaultRetryDelay = 10 * time.Millisecond

// Locker implements [domain.Locker]. The lock is taken on the database file
// itself, which is opened read-only so a missing file is never created.
//
// On windows the lock is a byte-range lock, so a rewrite done through another
// handle fails while Lock is held there.
type Locker struct {
	retryDelay time.Duration
}

// NewLocker returns a new implementation of [domain.Locker].
func NewLocker(options ...Option) domain.Locker {
	l := Locker{
		retryDelay: DefaultRetryDelay,
	}
	for _, option := range options {
		option(&l)
	}
	return &l
}

// Lock implements [domain.Locker].
func (l *Locker) Lock(ctx context.Context, path string) (domain.Unlock, error) {
	fl := flock.New(path, flock.SetFlag(os.O_RDONLY))
	return l.acquire(path, fl, func() (bool, error) {
		return fl.TryLockContext(ctx, l.retryDelay)
	})
}

// RLock implements [domain.Locker].
func (l *Locker) RLock(ctx context.Context, path string) (domain.Unlock, error) {
	fl := flock.New(path, flock.SetFlag(os.O_RDONLY))
	return l.acquire(path, fl, func() (bool, error) {
		return fl.TryRLockContext(ctx, l.retryDelay)
	})
}

func (l *Locker) acquire(path string, fl *flock.Flock, try func() (bool, error)) (domain.Unlock, error) {
	locked, err := try()
	if err != nil {
		fl.Close()
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrDatabaseNotFound{Path: path}
		}
		return nil, err
	}
	if !locked {
		fl.Close()
		return nil, errors.New("could not acquire file lock")
	}
	return fl.Unlock, nil
}
