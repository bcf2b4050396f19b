package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when a database, collection or field name is
	// empty.
	ErrEmptyName = errors.New("name cannot be empty")
	// ErrWhitespaceInName is returned when a database, collection or field
	// name contains a whitespace character.
	ErrWhitespaceInName = errors.New("name cannot contain whitespace")
	// ErrTargetNil is returned when user provides a nil value as a target to
	// decode data.
	ErrTargetNil = errors.New("target interface is nil")
	// ErrNonPointer is returned when the target to decode data is not a
	// pointer.
	ErrNonPointer = errors.New("target should be a pointer")
	// ErrIDSpaceExhausted is returned when a collection has already
	// allocated every possible document id.
	ErrIDSpaceExhausted = errors.New("no document ids left in collection")
	// ErrInvalidUTF8 is returned when a name or text value is not valid
	// UTF-8.
	ErrInvalidUTF8 = errors.New("not valid UTF-8")
)

// NameSubject tells which kind of name failed validation.
type NameSubject string

// Things that have names.
const (
	SubjectDatabase   NameSubject = "database"
	SubjectCollection NameSubject = "collection"
	SubjectField      NameSubject = "field"
)

// ErrInvalidName is returned when a name does not follow naming rules. Err is
// [ErrEmptyName], [ErrInvalidUTF8] or [ErrWhitespaceInName].
type ErrInvalidName struct {
	Subject NameSubject
	Name    string
	Err     error
}

// Error implements [error].
func (e ErrInvalidName) Error() string {
	return fmt.Sprintf("invalid %s name %q: %s", e.Subject, e.Name, e.Err)
}

// Unwrap returns the naming rule that was broken.
func (e ErrInvalidName) Unwrap() error { return e.Err }

// ErrParse is returned when a textual value cannot be parsed into the kind
// named by its type tag. Kind is [KindUnknown] when the tag itself is invalid.
type ErrParse struct {
	Kind  Kind
	Input string
	Err   error
}

// Error implements [error].
func (e ErrParse) Error() string {
	if e.Kind == KindUnknown {
		return fmt.Sprintf("unknown value type %q", e.Input)
	}
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q as %s: %s", e.Input, e.Kind, e.Err)
	}
	return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Kind)
}

// Unwrap returns the underlying conversion error, if any.
func (e ErrParse) Unwrap() error { return e.Err }

// ErrDuplicateField is returned when the same field name is given twice in a
// single input.
type ErrDuplicateField struct {
	Name string
}

// Error implements [error].
func (e ErrDuplicateField) Error() string {
	return fmt.Sprintf("field %q was given more than once", e.Name)
}

// ErrDatabaseNotFound is returned when the database file does not exist or is
// not a regular file.
type ErrDatabaseNotFound struct {
	Path string
}

// Error implements [error].
func (e ErrDatabaseNotFound) Error() string {
	return fmt.Sprintf("database not found at %q", e.Path)
}

// ErrDatabaseExists is returned when creating a database over an existing
// file.
type ErrDatabaseExists struct {
	Path string
}

// Error implements [error].
func (e ErrDatabaseExists) Error() string {
	return fmt.Sprintf("database already exists at %q", e.Path)
}

// ErrDirectoryNotFound is returned when a database is created in a directory
// that does not exist and should not be created.
type ErrDirectoryNotFound struct {
	Path string
}

// Error implements [error].
func (e ErrDirectoryNotFound) Error() string {
	return fmt.Sprintf("directory not found at %q", e.Path)
}

// ErrCollectionNotFound is returned when no collection has the given name.
type ErrCollectionNotFound struct {
	Name string
}

// Error implements [error].
func (e ErrCollectionNotFound) Error() string {
	return fmt.Sprintf("collection %q not found", e.Name)
}

// ErrCollectionExists is returned when creating a collection with a name that
// is already in use.
type ErrCollectionExists struct {
	Name string
}

// Error implements [error].
func (e ErrCollectionExists) Error() string {
	return fmt.Sprintf("collection %q already exists", e.Name)
}

// ErrCollectionHasDocuments is returned when deleting a collection that still
// holds documents.
type ErrCollectionHasDocuments struct {
	Name  string
	Count int
}

// Error implements [error].
func (e ErrCollectionHasDocuments) Error() string {
	return fmt.Sprintf("collection %q has %d documents, delete them first", e.Name, e.Count)
}

// ErrDocumentNotFound is returned when no document has the given id.
type ErrDocumentNotFound struct {
	ID uint64
}

// Error implements [error].
func (e ErrDocumentNotFound) Error() string {
	return fmt.Sprintf("document with id %d not found", e.ID)
}

// ErrCorruptDatabase is returned when a database file cannot be decoded or
// its content breaks a structural rule.
type ErrCorruptDatabase struct {
	Path string
	Err  error
}

// Error implements [error].
func (e ErrCorruptDatabase) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("corrupt database: %s", e.Err)
	}
	return fmt.Sprintf("corrupt database %q: %s", e.Path, e.Err)
}

// Unwrap returns the decoding or integrity error.
func (e ErrCorruptDatabase) Unwrap() error { return e.Err }

// ErrDecode is returned by [Decoder.Decode] to wrap third party decoding
// errors.
type ErrDecode struct {
	Source any
	Target any
}

// Error implements [error].
func (e ErrDecode) Error() string {
	return fmt.Sprintf("cannot decode %T into %T", e.Source, e.Target)
}

// ErrUnsupportedType is returned when a Go value cannot be stored as a
// document field.
type ErrUnsupportedType struct {
	Field string
	Value any
}

// Error implements [error].
func (e ErrUnsupportedType) Error() string {
	return fmt.Sprintf("field %q: unsupported type %T", e.Field, e.Value)
}

// ErrUnknownConfigKey is returned when reading or writing a configuration key
// that does not exist.
type ErrUnknownConfigKey struct {
	Key string
}

// Error implements [error].
func (e ErrUnknownConfigKey) Error() string {
	return fmt.Sprintf("unknown configuration key %q", e.Key)
}

// ErrRelativePath is returned when a configuration path is not absolute.
type ErrRelativePath struct {
	Key  string
	Path string
}

// Error implements [error].
func (e ErrRelativePath) Error() string {
	return fmt.Sprintf("%s must be an absolute path, got %q", e.Key, e.Path)
}
