package domain

import "fmt"

// Op identifies an engine operation, used to tell which operation produced an
// error.
type Op uint8

// Engine operations.
const (
	OpCreateDatabase Op = iota + 1
	OpDeleteDatabase
	OpModifyDatabase
	OpFindDatabaseOne
	OpFindDatabaseMany
	OpCreateCollection
	OpDeleteCollection
	OpFindCollectionOne
	OpFindCollectionMany
	OpCreateDocument
	OpReplaceDocument
	OpDeleteDocument
	OpFindDocumentOne
	OpFindDocumentMany
)

var opNames = map[Op]string{
	OpCreateDatabase:     "create database",
	OpDeleteDatabase:     "delete database",
	OpModifyDatabase:     "modify database",
	OpFindDatabaseOne:    "find database",
	OpFindDatabaseMany:   "find databases",
	OpCreateCollection:   "create collection",
	OpDeleteCollection:   "delete collection",
	OpFindCollectionOne:  "find collection",
	OpFindCollectionMany: "find collections",
	OpCreateDocument:     "create document",
	OpReplaceDocument:    "replace document",
	OpDeleteDocument:     "delete document",
	OpFindDocumentOne:    "find document",
	OpFindDocumentMany:   "find documents",
}

// String implements [fmt.Stringer].
func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// OperationError is the error carried by a failed operation. It keeps the
// operation and the underlying cause, which can be reached with errors.As or
// errors.Is.
type OperationError struct {
	Op  Op
	Err error
}

// Error implements [error].
func (e OperationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

// Unwrap returns the cause.
func (e OperationError) Unwrap() error { return e.Err }
