package parser

import "github.com/vinicius-lino-figueiredo/filedb/domain"

// WithValidator sets the validator used to check field names.
func WithValidator(v domain.NameValidator) Option {
	return func(p *Parser) {
		p.validator = v
	}
}

// Option configures behavior through the functional options pattern.
type Option func(*Parser)
