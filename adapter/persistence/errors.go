package persistence

import "fmt"

// ErrNameMismatch is returned when the name stored in a database file is not
// the file name without extension.
type ErrNameMismatch struct {
	Name string
	Stem string
}

// Error implements [error].
func (e ErrNameMismatch) Error() string {
	return fmt.Sprintf("stored name %q does not match file name %q", e.Name, e.Stem)
}

// ErrInvalidText is returned when a stored string is not valid UTF-8.
type ErrInvalidText struct {
	Subject string
}

// Error implements [error].
func (e ErrInvalidText) Error() string {
	return e.Subject + " is not valid UTF-8"
}

// ErrDuplicateCollection is returned when two collections share a name.
type ErrDuplicateCollection struct {
	Name string
}

// Error implements [error].
func (e ErrDuplicateCollection) Error() string {
	return fmt.Sprintf("collection %q is stored more than once", e.Name)
}

// ErrDuplicateID is returned when two documents of a collection share an id.
type ErrDuplicateID struct {
	Collection string
	ID         uint64
}

// Error implements [error].
func (e ErrDuplicateID) Error() string {
	return fmt.Sprintf("collection %q has id %d more than once", e.Collection, e.ID)
}

// ErrInvalidID is returned when a document id is zero or above the id count of
// its collection.
type ErrInvalidID struct {
	Collection string
	ID         uint64
	IDCount    uint64
}

// Error implements [error].
func (e ErrInvalidID) Error() string {
	return fmt.Sprintf("collection %q has id %d out of range 1..%d", e.Collection, e.ID, e.IDCount)
}
