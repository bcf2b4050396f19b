package persistence

import "github.com/vinicius-lino-figueiredo/filedb/domain"

// WithStorage sets the storage implementation for file operations.
func WithStorage(s domain.Storage) Option {
	return func(p *Persistence) {
		p.storage = s
	}
}

// WithCodec sets the codec used to convert databases to and from bytes.
func WithCodec(c domain.Codec) Option {
	return func(p *Persistence) {
		p.codec = c
	}
}

// WithLocker sets the locker guarding each read and read-modify-write.
func WithLocker(l domain.Locker) Option {
	return func(p *Persistence) {
		p.locker = l
	}
}

// WithValidator sets the validator used to check names read from disk.
func WithValidator(v domain.NameValidator) Option {
	return func(p *Persistence) {
		p.validator = v
	}
}

// Option configures persistence behavior through the functional
// options pattern.
type Option func(*Persistence)
