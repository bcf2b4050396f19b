// Package domain contains domain-specific types, interfaces and option types
// for filedb.
//
// This package defines the entities stored in a database file, the errors
// surfaced by the engine and the interfaces that must be implemented by
// adapters, as well as functional options for configuring queries.
package domain

import (
	"context"
	"os"
	"time"
)

// ValueParser turns user supplied text into typed values.
type ValueParser interface {
	// Parse converts text into the kind named by the type tag.
	Parse(tag string, text string) (Value, error)
	// ParseFields validates names and parses every input field, returning
	// document data. Nothing is returned if any field fails.
	ParseFields([]InputField) (map[string]Value, error)
	// ParseQuery works like ParseFields but returns an equality query,
	// keeping input order.
	ParseQuery([]InputField) (Query, error)
}

// NameValidator checks database, collection and field names.
type NameValidator interface {
	// ValidateName returns an [ErrInvalidName] if name is empty or has
	// whitespace.
	ValidateName(NameSubject, string) error
}

// Codec converts a whole database to and from its binary representation.
type Codec interface {
	// Encode returns the binary representation of the database.
	Encode(*Database) ([]byte, error)
	// Decode parses the binary representation of a database. Empty or
	// malformed input returns [ErrCorruptDatabase].
	Decode([]byte) (*Database, error)
}

// Storage provides low-level whole-file operations.
type Storage interface {
	// ReadAll reads the whole file. Returns [ErrDatabaseNotFound] if path
	// is not a regular file.
	ReadAll(ctx context.Context, path string) ([]byte, error)
	// WriteAll truncates an existing file and writes data to it.
	WriteAll(ctx context.Context, path string, data []byte) error
	// Create writes data to a new file. Returns [ErrDatabaseExists] if
	// the file already exists.
	Create(ctx context.Context, path string, data []byte) error
	// Remove deletes a file.
	Remove(path string) error
	// IsFile reports whether path is an existing regular file.
	IsFile(path string) (bool, error)
	// IsDir reports whether path is an existing directory.
	IsDir(path string) (bool, error)
	// EnsureDir creates the directory and its parents if needed.
	EnsureDir(path string) error
	// ReadDir lists directory entries sorted by name.
	ReadDir(path string) ([]os.DirEntry, error)
	// Size returns the size of a file in bytes.
	Size(path string) (int64, error)
}

// Unlock releases a lock acquired with [Locker].
type Unlock = func() error

// Locker guards the read-modify-write window of a database file against
// other processes.
type Locker interface {
	// Lock acquires an exclusive lock on an existing file.
	Lock(ctx context.Context, path string) (Unlock, error)
	// RLock acquires a shared lock on an existing file.
	RLock(ctx context.Context, path string) (Unlock, error)
}

// Persistence loads and saves whole databases.
type Persistence interface {
	// Load reads and decodes the database file.
	Load(ctx context.Context, path string) (*Database, error)
	// Update loads the database, calls fn with it and writes the result
	// back. If fn returns an error nothing is written.
	Update(ctx context.Context, path string, fn func(*Database) error) error
	// Create writes a new database file.
	Create(ctx context.Context, path string, db *Database) error
	// Remove deletes the database file.
	Remove(ctx context.Context, path string) error
	// Size returns the size of the database file in bytes.
	Size(path string) (int64, error)
}

// Matcher evaluates equality queries against documents.
type Matcher interface {
	// Match reports whether every query field is present in the document
	// with an equal value.
	Match(Document, Query) bool
}

// IDGenerator allocates document ids.
type IDGenerator interface {
	// NextID advances the collection id counter and returns the new id.
	// Returns [ErrIDSpaceExhausted] when no id is left.
	NextID(*Collection) (uint64, error)
}

// TimeGetter provides current time for timestamping operations.
type TimeGetter interface {
	// GetTime returns the current time.
	GetTime() time.Time
}

// Logger appends timestamped lines to the event and error logs. Logging is
// best-effort: returned errors must never change an operation result.
type Logger interface {
	// Event appends a line to the event log.
	Event(content string) error
	// Error appends an error line to the error log.
	Error(content string) error
	// Warning appends a warning line to the error log.
	Warning(content string) error
}

// Encoder converts structs and maps into input fields.
type Encoder interface {
	// Encode returns the input fields for a struct or map value.
	Encode(any) ([]InputField, error)
}

// Decoder fills a target from a stored document.
type Decoder interface {
	// Decode copies document fields into target, which must be a pointer.
	Decode(Document, any) error
}

// Datastore is the storage engine. Every method opens, reads and, when
// mutating, rewrites the database file; no state is kept between calls.
type Datastore interface {
	// CreateDatabaseInDirectory creates {name}.db in dir, creating dir if
	// missing.
	CreateDatabaseInDirectory(ctx context.Context, dir string, name string) (DatabaseInfo, error)
	// CreateDatabaseByPath creates {name}.db in dir, which must exist.
	CreateDatabaseByPath(ctx context.Context, name string, dir string) (DatabaseInfo, error)
	// DeleteDatabase removes the database file.
	DeleteDatabase(ctx context.Context, path string) error
	// ChangeDescription replaces the database description.
	ChangeDescription(ctx context.Context, path string, description string) error
	// FindAllDatabases decodes every database file in dir.
	FindAllDatabases(ctx context.Context, dir string) ([]DatabaseInfo, error)
	// FindDatabaseByName looks for {name}.db in dir. Returns nil if absent.
	FindDatabaseByName(ctx context.Context, dir string, name string) (*DatabaseInfo, error)
	// FindDatabaseByPath decodes the file at path. Returns nil if absent.
	FindDatabaseByPath(ctx context.Context, path string) (*DatabaseInfo, error)

	// CreateCollection appends an empty collection.
	CreateCollection(ctx context.Context, path string, name string) error
	// DeleteCollection removes an empty collection.
	DeleteCollection(ctx context.Context, path string, name string) error
	// FindAllCollections lists collections in stored order.
	FindAllCollections(ctx context.Context, path string) ([]CollectionInfo, error)
	// FindCollection returns the named collection, or nil if absent.
	FindCollection(ctx context.Context, path string, name string) (*CollectionInfo, error)

	// CreateDocument appends a new document with the next id.
	CreateDocument(ctx context.Context, path string, collection string, fields []InputField) (Document, error)
	// ReplaceDocument overwrites the data of a document in place.
	ReplaceDocument(ctx context.Context, path string, id uint64, collection string, fields []InputField) error
	// DeleteDocument removes a document. Its id is not reused.
	DeleteDocument(ctx context.Context, path string, id uint64, collection string) error
	// DeleteAllDocuments removes every document, returning how many there
	// were.
	DeleteAllDocuments(ctx context.Context, path string, collection string) (int, error)
	// FindAllDocuments returns documents in stored order.
	FindAllDocuments(ctx context.Context, path string, collection string, options ...FindOption) ([]Document, error)
	// FindDocumentByID returns the document with the given id, or nil.
	FindDocumentByID(ctx context.Context, path string, id uint64, collection string) (*Document, error)
	// FindDocuments returns documents matching an equality query in
	// stored order.
	FindDocuments(ctx context.Context, path string, collection string, query []InputField, options ...FindOption) ([]Document, error)
}
