package driver

import (
	"github.com/vinicius-lino-figueiredo/filedb"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

// WithEngine sets the engine running client operations.
func WithEngine(e *filedb.Engine) Option {
	return func(c *Client) {
		c.engine = e
	}
}

// WithEngineOptions sets the options used to create the engine when
// [WithEngine] is not given.
func WithEngineOptions(options ...filedb.Option) Option {
	return func(c *Client) {
		c.engineOptions = append(c.engineOptions, options...)
	}
}

// WithEncoder sets how Go values are turned into document fields.
func WithEncoder(e domain.Encoder) Option {
	return func(c *Client) {
		c.encoder = e
	}
}

// WithDecoder sets how documents are copied into Go values.
func WithDecoder(d domain.Decoder) Option {
	return func(c *Client) {
		c.decoder = d
	}
}

// Option configures client behavior through the functional options pattern.
type Option func(*Client)
