// Package validator contains the default [domain.NameValidator]
// implementation.
package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

// Validator implements [domain.NameValidator].
type Validator struct{}

// NewValidator returns a new implementation of [domain.NameValidator].
func NewValidator() domain.NameValidator {
	return &Validator{}
}

// ValidateName implements [domain.NameValidator].
func (v *Validator) ValidateName(subject domain.NameSubject, name string) error {
	if name == "" {
		return domain.ErrInvalidName{Subject: subject, Name: name, Err: domain.ErrEmptyName}
	}
	if !utf8.ValidString(name) {
		return domain.ErrInvalidName{Subject: subject, Name: name, Err: domain.ErrInvalidUTF8}
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return domain.ErrInvalidName{Subject: subject, Name: name, Err: domain.ErrWhitespaceInName}
	}
	return nil
}
