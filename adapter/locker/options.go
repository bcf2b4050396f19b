package locker

import "time"

// WithRetryDelay sets how long to wait between attempts to acquire a lock
// held by someone else.
func WithRetryDelay(d time.Duration) Option {
	return func(l *Locker) {
		l.retryDelay = d
	}
}

// Option configures locker behavior through the functional options pattern.
type Option func(*Locker)
