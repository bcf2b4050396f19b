// Package matcher contains the default implementation of [domain.Matcher],
// which evaluates conjunctive equality queries.
package matcher

import "github.com/vinicius-lino-figueiredo/filedb/domain"

// Matcher implements [domain.Matcher].
type Matcher struct{}

// NewMatcher returns a new implementation of [domain.Matcher].
func NewMatcher() domain.Matcher {
	return &Matcher{}
}

// Match implements [domain.Matcher]. An empty query matches every document.
// Values of different kinds are never equal.
func (m *Matcher) Match(doc domain.Document, query domain.Query) bool {
	for _, f := range query {
		v, ok := doc.Get(f.Name)
		if !ok || !v.Equal(f.Value) {
			return false
		}
	}
	return true
}
