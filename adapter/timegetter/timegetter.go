// Package timegetter contains the default [domain.TimeGetter] implementation.
package timegetter

import (
	"time"

	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

// TimeGetter implements [domain.TimeGetter].
type TimeGetter struct {
	location *time.Location
}

// NewTimeGetter returns a new implementation of [domain.TimeGetter]. Times are
// in the local zone unless [WithLocation] is given.
func NewTimeGetter(options ...Option) domain.TimeGetter {
	t := TimeGetter{
		location: time.Local,
	}
	for _, option := range options {
		option(&t)
	}
	return &t
}

// GetTime implements [domain.TimeGetter].
func (t *TimeGetter) GetTime() time.Time {
	return time.Now().In(t.location)
}

// WithLocation sets the zone of returned times, which shows up as the offset
// of log timestamps.
func WithLocation(l *time.Location) Option {
	return func(t *TimeGetter) {
		if l != nil {
			t.location = l
		}
	}
}

// Option configures the time getter through the functional options pattern.
type Option func(*TimeGetter)
