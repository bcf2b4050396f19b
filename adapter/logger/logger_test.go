package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type timeGetterMock struct{ mock.Mock }

// GetTime implements domain.TimeGetter.
func (t *timeGetterMock) GetTime() time.Time {
	return t.Called().Get(0).(time.Time)
}

type LoggerTestSuite struct {
	suite.Suite
	logger *Logger
	tg     *timeGetterMock
	dir    string
	now    time.Time
}

func (s *LoggerTestSuite) SetupTest() {
	s.dir = filepath.Join(s.T().TempDir(), "logs")
	s.tg = new(timeGetterMock)
	s.now = time.Date(2024, 3, 9, 7, 5, 2, 45_000_000, time.FixedZone("", -3*60*60))
	s.tg.On("GetTime").Return(s.now)
	s.logger = NewLogger(WithDir(s.dir), WithTimeGetter(s.tg)).(*Logger)
}

func (s *LoggerTestSuite) read(file string) string {
	b, err := os.ReadFile(filepath.Join(s.dir, file))
	s.Require().NoError(err)
	return string(b)
}

func (s *LoggerTestSuite) TestEvent() {
	s.NoError(s.logger.Event(`created database "people"`))

	s.Equal("[2024-03-09 07:05:02.045 -03:00] created database \"people\"\n", s.read(EventsFile))
	s.NoFileExists(filepath.Join(s.dir, ErrorsFile))
}

func (s *LoggerTestSuite) TestErrorAndWarning() {
	s.NoError(s.logger.Error("something failed"))
	s.NoError(s.logger.Warning("could not log"))

	s.Equal(
		"[2024-03-09 07:05:02.045 -03:00] [Error] something failed\n"+
			"[2024-03-09 07:05:02.045 -03:00] [Warning] could not log\n",
		s.read(ErrorsFile),
	)
	s.NoFileExists(filepath.Join(s.dir, EventsFile))
}

func (s *LoggerTestSuite) TestAppends() {
	s.Require().NoError(os.MkdirAll(s.dir, 0o755))
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, EventsFile), []byte("old line\n"), 0o644))

	s.NoError(s.logger.Event("first"))
	s.NoError(s.logger.Event("second"))

	s.Equal(
		"old line\n"+
			"[2024-03-09 07:05:02.045 -03:00] first\n"+
			"[2024-03-09 07:05:02.045 -03:00] second\n",
		s.read(EventsFile),
	)
}

func (s *LoggerTestSuite) TestUTCOffset() {
	tg := new(timeGetterMock)
	tg.On("GetTime").Return(time.Date(2024, 12, 31, 23, 59, 59, 999_000_000, time.UTC))
	l := NewLogger(WithDir(s.dir), WithTimeGetter(tg))

	s.NoError(l.Event("x"))
	s.Equal("[2024-12-31 23:59:59.999 +00:00] x\n", s.read(EventsFile))
}

func (s *LoggerTestSuite) TestCannotCreateDir() {
	blocker := filepath.Join(s.T().TempDir(), "file")
	s.Require().NoError(os.WriteFile(blocker, nil, 0o644))
	l := NewLogger(WithDir(filepath.Join(blocker, "logs")), WithTimeGetter(s.tg))

	s.Error(l.Event("x"))
	s.Error(l.Error("x"))
}

func (s *LoggerTestSuite) TestCannotOpenFile() {
	// a directory in place of the log file
	s.Require().NoError(os.MkdirAll(filepath.Join(s.dir, ErrorsFile), 0o755))

	s.Error(s.logger.Warning("x"))
	s.NoError(s.logger.Event("x"))
}

func (s *LoggerTestSuite) TestDefaults() {
	l := NewLogger().(*Logger)
	s.Equal(DefaultDir, l.dir)
	s.Equal(DefaultFileMode, l.fileMode)
	s.Equal(DefaultDirMode, l.dirMode)
	s.NotNil(l.timeGetter)
}

func TestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}
