package domain

// FileExtension is the extension of every database file, without the dot.
const FileExtension = "db"

// Database is the whole content of a database file.
type Database struct {
	Name        string
	Description string
	Collections []Collection
}

// CollectionIndex returns the position of the first collection named name, or
// -1 if there is none.
func (d *Database) CollectionIndex(name string) int {
	for n := range d.Collections {
		if d.Collections[n].Name == name {
			return n
		}
	}
	return -1
}

// Collection is a named, ordered set of documents. IDCount is the highest id
// ever allocated in the collection and never decreases.
type Collection struct {
	Name      string
	Documents []Document
	IDCount   uint64
}

// DocumentIndex returns the position of the document with the given id, or -1
// if there is none.
func (c *Collection) DocumentIndex(id uint64) int {
	for n := range c.Documents {
		if c.Documents[n].ID == id {
			return n
		}
	}
	return -1
}

// Document is an identified set of typed fields.
type Document struct {
	ID   uint64
	Data map[string]Value
}

// Get returns the value under the given field name, if any.
func (d Document) Get(name string) (Value, bool) {
	v, ok := d.Data[name]
	return v, ok
}

// InputField is a user supplied, still unparsed field: a name, a type tag (see
// [Kind]) and the textual value.
type InputField struct {
	Name  string
	Type  string
	Value string
}

// Field is a parsed field. A [Query] is a set of fields that must all be
// present and equal in a document.
type Field struct {
	Name  string
	Value Value
}

// Query is a conjunction of equality conditions.
type Query = []Field

// DatabaseInfo is the projection returned when databases are looked up.
type DatabaseInfo struct {
	Name        string
	Description string
	Size        int64
	Path        string
}

// CollectionInfo is the projection returned when collections are looked up.
type CollectionInfo struct {
	Name string
}
