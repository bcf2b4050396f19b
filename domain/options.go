package domain

// WithLimit sets the maximum number of documents to return. A limit of zero
// returns no documents; without this option every document is returned.
func WithLimit(l int) FindOption {
	return func(fo *FindOptions) {
		fo.Limit = max(l, 0)
		fo.Limited = true
	}
}

// FindOption configures query behavior through the functional options pattern.
type FindOption func(*FindOptions)

// FindOptions contains parameters for customizing query execution.
type FindOptions struct {
	// Limit is the maximum number of documents to return. Only used if
	// Limited is true.
	Limit int
	// Limited tells whether a limit was given.
	Limited bool
}

// NewFindOptions applies options over the defaults.
func NewFindOptions(options ...FindOption) FindOptions {
	var fo FindOptions
	for _, opt := range options {
		opt(&fo)
	}
	return fo
}

// Reached reports whether n results are enough under these options.
func (fo FindOptions) Reached(n int) bool {
	return fo.Limited && n >= fo.Limit
}
