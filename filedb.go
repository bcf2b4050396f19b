// Package filedb provides an embedded, file-backed document store for golang.
//
// Each database lives in a single file holding named collections of documents.
// Documents are flat sets of typed fields (Int32, Int64, Decimal, Bool and
// Text) identified by an id that is never reused inside a collection.
//
// The basic usage starts with creating a new [Engine], which can be done by
// calling [New]. Every engine operation returns a [Response] telling apart the
// operation result and the outcome of logging it.
package filedb

import (
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

var (
	// ErrEmptyName is returned when a database, collection or field name is
	// empty.
	ErrEmptyName = domain.ErrEmptyName
	// ErrWhitespaceInName is returned when a database, collection or field
	// name contains a whitespace character.
	ErrWhitespaceInName = domain.ErrWhitespaceInName
	// ErrTargetNil is returned when user provides a nil value as a target
	// to decode a document.
	ErrTargetNil = domain.ErrTargetNil
	// ErrNonPointer is returned when the decoding target is not a pointer.
	ErrNonPointer = domain.ErrNonPointer
	// ErrIDSpaceExhausted is returned when a collection cannot allocate
	// another document id.
	ErrIDSpaceExhausted = domain.ErrIDSpaceExhausted
	// ErrInvalidUTF8 is returned when a name or Text value is not valid
	// UTF-8.
	ErrInvalidUTF8 = domain.ErrInvalidUTF8
)

// OperationError is the error carried by every failed [Response]. It tells
// which operation failed and unwraps to the cause.
type OperationError = domain.OperationError

// Op identifies an engine operation.
type Op = domain.Op

// ErrInvalidName is returned when a name is empty or has whitespace.
type ErrInvalidName = domain.ErrInvalidName

// ErrParse is returned when a field value does not match its type tag.
type ErrParse = domain.ErrParse

// ErrDuplicateField is returned when the same field is given twice.
type ErrDuplicateField = domain.ErrDuplicateField

// ErrDatabaseNotFound is returned when the database file does not exist.
type ErrDatabaseNotFound = domain.ErrDatabaseNotFound

// ErrDatabaseExists is returned when creating a database over an existing
// file.
type ErrDatabaseExists = domain.ErrDatabaseExists

// ErrDirectoryNotFound is returned when creating a database by path in a
// missing directory.
type ErrDirectoryNotFound = domain.ErrDirectoryNotFound

// ErrCollectionNotFound is returned when no collection has the given name.
type ErrCollectionNotFound = domain.ErrCollectionNotFound

// ErrCollectionExists is returned when a collection name is already in use.
type ErrCollectionExists = domain.ErrCollectionExists

// ErrCollectionHasDocuments is returned when deleting a non-empty collection.
type ErrCollectionHasDocuments = domain.ErrCollectionHasDocuments

// ErrDocumentNotFound is returned when no document has the given id.
type ErrDocumentNotFound = domain.ErrDocumentNotFound

// ErrCorruptDatabase is returned when a database file cannot be decoded or
// breaks a structural rule.
type ErrCorruptDatabase = domain.ErrCorruptDatabase

// ErrDecode wraps errors found while decoding a document into a Go value.
type ErrDecode = domain.ErrDecode

// ErrUnsupportedType is returned when a Go value cannot be stored as a field.
type ErrUnsupportedType = domain.ErrUnsupportedType

// Value is a typed field value.
type Value = domain.Value

// Kind tells which variant a [Value] holds.
type Kind = domain.Kind

// Int32 is a 32-bit signed integer [Value].
type Int32 = domain.Int32

// Int64 is a 64-bit signed integer [Value].
type Int64 = domain.Int64

// Decimal is a double precision [Value].
type Decimal = domain.Decimal

// Bool is a boolean [Value].
type Bool = domain.Bool

// Text is a string [Value].
type Text = domain.Text

// Document is an identified set of typed fields.
type Document = domain.Document

// InputField is a field as given by the user: a name, a type tag and the
// textual value.
type InputField = domain.InputField

// DatabaseInfo describes a database file.
type DatabaseInfo = domain.DatabaseInfo

// CollectionInfo describes a collection.
type CollectionInfo = domain.CollectionInfo

// Datastore is the storage engine behind [Engine].
type Datastore = domain.Datastore

// Logger receives the event and error lines written by [Engine].
type Logger = domain.Logger

// ConfigStore reads and writes the engine configuration file.
type ConfigStore = domain.ConfigStore

// FindOption configures document queries.
type FindOption = domain.FindOption

// WithLimit sets the maximum number of documents a query returns. A limit of
// zero returns nothing.
func WithLimit(l int) FindOption {
	return domain.WithLimit(l)
}
