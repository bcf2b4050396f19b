//go:build !windows

package persistence

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

// File descriptors are released after every call, so a long series of
// operations under a small descriptor limit never fails with EMFILE.
//
// Not run on Windows as there is no clean way to set maximum file
// descriptors.
func (s *PersistenceTestSuite) TestCannotCauseEMFILEErrors() {
	ctx, cancel := context.WithTimeout(s.T().Context(), 5000*time.Millisecond)
	defer cancel()

	N := 64

	var originalRLimit syscall.Rlimit
	s.Require().NoError(syscall.Getrlimit(syscall.RLIMIT_NOFILE, &originalRLimit))

	rLimit := syscall.Rlimit{
		Cur: 128,
		Max: originalRLimit.Max,
	}
	s.Require().NoError(syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit))
	defer func() {
		s.NoError(syscall.Setrlimit(syscall.RLIMIT_NOFILE, &originalRLimit))
	}()

	path := filepath.Join(s.testDbDir, "openfds.db")
	s.Require().NoError(s.p.Create(ctx, path, &domain.Database{Name: "openfds"}))

	var err error
	for n := range N * 2 {
		err = s.p.Update(ctx, path, func(db *domain.Database) error {
			db.Description = string(rune('a' + n%26))
			return nil
		})
		if err != nil {
			break
		}
		if _, err = s.p.Load(ctx, path); err != nil {
			break
		}
	}
	s.NoError(err)

	var filehandles []*os.File
	for range N {
		var fh *os.File
		fh, err = os.Open(path)
		if err != nil {
			break
		}
		filehandles = append(filehandles, fh)
	}
	s.NoError(err)
	for _, fh := range filehandles {
		fh.Close()
	}

	select {
	case <-ctx.Done():
		s.Fail(ctx.Err().Error())
	default:
	}
}
