// Package logger contains the default [domain.Logger] implementation, which
// appends one line per call to an event log or an error log.
//
// Event lines look like
//
//	[2024-01-02 15:04:05.000 +00:00] created database "people"
//
// and error lines carry the level after the timestamp:
//
//	[2024-01-02 15:04:05.000 +00:00] [Error] collection "x" not found
package logger

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/vinicius-lino-figueiredo/filedb/adapter/timegetter"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
	"go.uber.org/zap/zapcore"
)

const (
	// EventsFile receives [Logger.Event] lines.
	EventsFile = "events.log"
	// ErrorsFile receives [Logger.Error] and [Logger.Warning] lines.
	ErrorsFile = "errors.log"
	// TimeLayout is the timestamp layout, without the surrounding brackets.
	TimeLayout = "2006-01-02 15:04:05.000 -07:00"

	DefaultDir                  = "logs"
	DefaultDirMode  os.FileMode = 0o755
	DefaultFileMode os.FileMode = 0o644
)

// Logger implements [domain.Logger]. Files are opened and closed on every
// call, and the directory is created when missing.
type Logger struct {
	dir        string
	timeGetter domain.TimeGetter
	fileMode   os.FileMode
	dirMode    os.FileMode
}

// NewLogger returns a new implementation of [domain.Logger].
func NewLogger(options ...Option) domain.Logger {
	l := Logger{
		dir:        DefaultDir,
		timeGetter: timegetter.NewTimeGetter(),
		fileMode:   DefaultFileMode,
		dirMode:    DefaultDirMode,
	}
	for _, option := range options {
		option(&l)
	}
	return &l
}

// Event implements [domain.Logger].
func (l *Logger) Event(content string) error {
	return l.write(EventsFile, false, zapcore.InfoLevel, content)
}

// Error implements [domain.Logger].
func (l *Logger) Error(content string) error {
	return l.write(ErrorsFile, true, zapcore.ErrorLevel, content)
}

// Warning implements [domain.Logger].
func (l *Logger) Warning(content string) error {
	return l.write(ErrorsFile, true, zapcore.WarnLevel, content)
}

func (l *Logger) write(file string, withLevel bool, level zapcore.Level, content string) (err error) {
	if err := os.MkdirAll(l.dir, l.dirMode); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(l.dir, file), os.O_WRONLY|os.O_CREATE|os.O_APPEND, l.fileMode)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	core := zapcore.NewCore(newEncoder(withLevel), zapcore.AddSync(f), zapcore.DebugLevel)
	entry := zapcore.Entry{
		Level:   level,
		Time:    l.timeGetter.GetTime(),
		Message: content,
	}
	if err := core.Write(entry, nil); err != nil {
		return err
	}
	return core.Sync()
}

func newEncoder(withLevel bool) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		MessageKey:       "msg",
		EncodeTime:       encodeTime,
		EncodeLevel:      encodeLevel,
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
	}
	if withLevel {
		cfg.LevelKey = "level"
	}
	return zapcore.NewConsoleEncoder(cfg)
}

func encodeTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format(TimeLayout) + "]")
}

func encodeLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch level {
	case zapcore.WarnLevel:
		enc.AppendString("[Warning]")
	case zapcore.ErrorLevel:
		enc.AppendString("[Error]")
	default:
		enc.AppendString("[" + level.CapitalString() + "]")
	}
}
