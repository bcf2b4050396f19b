package locker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

type LockerTestSuite struct {
	suite.Suite
	locker *Locker
	file   string
}

func (s *LockerTestSuite) SetupTest() {
	s.locker = NewLocker(WithRetryDelay(time.Millisecond)).(*Locker)
	s.file = filepath.Join(s.T().TempDir(), "locked.db")
	s.Require().NoError(os.WriteFile(s.file, []byte("content"), 0o644))
}

func (s *LockerTestSuite) TestDefaults() {
	s.Equal(DefaultRetryDelay, NewLocker().(*Locker).retryDelay)
}

func (s *LockerTestSuite) TestLockUnlock() {
	unlock, err := s.locker.Lock(s.T().Context(), s.file)
	s.Require().NoError(err)
	s.NoError(unlock())

	unlock, err = s.locker.Lock(s.T().Context(), s.file)
	s.Require().NoError(err)
	s.NoError(unlock())
}

func (s *LockerTestSuite) TestExclusiveBlocksOthers() {
	unlock, err := s.locker.Lock(s.T().Context(), s.file)
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(s.T().Context(), 30*time.Millisecond)
	defer cancel()
	_, err = s.locker.RLock(ctx, s.file)
	s.ErrorIs(err, context.DeadlineExceeded)

	ctx2, cancel2 := context.WithTimeout(s.T().Context(), 30*time.Millisecond)
	defer cancel2()
	_, err = s.locker.Lock(ctx2, s.file)
	s.ErrorIs(err, context.DeadlineExceeded)

	s.NoError(unlock())
}

func (s *LockerTestSuite) TestSharedLocks() {
	unlock1, err := s.locker.RLock(s.T().Context(), s.file)
	s.Require().NoError(err)
	unlock2, err := s.locker.RLock(s.T().Context(), s.file)
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(s.T().Context(), 30*time.Millisecond)
	defer cancel()
	_, err = s.locker.Lock(ctx, s.file)
	s.ErrorIs(err, context.DeadlineExceeded)

	s.NoError(unlock1())
	s.NoError(unlock2())

	unlock, err := s.locker.Lock(s.T().Context(), s.file)
	s.Require().NoError(err)
	s.NoError(unlock())
}

func (s *LockerTestSuite) TestWaitsForRelease() {
	unlock, err := s.locker.Lock(s.T().Context(), s.file)
	s.Require().NoError(err)

	done := make(chan error, 1)
	go func() {
		unlock, err := s.locker.Lock(s.T().Context(), s.file)
		if err == nil {
			err = unlock()
		}
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	s.NoError(unlock())

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(5 * time.Second):
		s.Fail("lock was never acquired")
	}
}

func (s *LockerTestSuite) TestMissingFile() {
	missing := filepath.Join(s.T().TempDir(), "missing.db")

	_, err := s.locker.Lock(s.T().Context(), missing)
	s.Equal(domain.ErrDatabaseNotFound{Path: missing}, err)
	_, err = s.locker.RLock(s.T().Context(), missing)
	s.Equal(domain.ErrDatabaseNotFound{Path: missing}, err)
	s.NoFileExists(missing)
}

func (s *LockerTestSuite) TestContentUntouched() {
	unlock, err := s.locker.Lock(s.T().Context(), s.file)
	s.Require().NoError(err)
	s.NoError(unlock())

	b, err := os.ReadFile(s.file)
	s.NoError(err)
	s.Equal([]byte("content"), b)
}

func TestLockerTestSuite(t *testing.T) {
	suite.Run(t, new(LockerTestSuite))
}
