package logger

import (
	"os"

	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

// WithDir sets the directory holding the log files.
func WithDir(d string) Option {
	return func(l *Logger) {
		l.dir = d
	}
}

// WithTimeGetter sets the source of line timestamps.
func WithTimeGetter(t domain.TimeGetter) Option {
	return func(l *Logger) {
		l.timeGetter = t
	}
}

// WithFileMode sets the permissions of new log files.
func WithFileMode(f os.FileMode) Option {
	return func(l *Logger) {
		l.fileMode = f
	}
}

// WithDirMode sets the permissions of a created log directory.
func WithDirMode(d os.FileMode) Option {
	return func(l *Logger) {
		l.dirMode = d
	}
}

// Option configures logger behavior through the functional options pattern.
type Option func(*Logger)
