// Package codec contains the default [domain.Codec] implementation, which
// stores a database as a single Protocol Buffers message.
//
// The message layout is:
//
//	message Database   { string name = 1; string description = 2; repeated Collection collections = 3; }
//	message Collection { string name = 1; repeated Document documents = 2; uint64 id_count = 3; }
//	message Document   { uint64 id = 1; repeated Field data = 2; }
//	message Field      { string name = 1; Value value = 2; }
//	message Value      { oneof kind { int32 int32 = 1; int64 int64 = 2; double decimal = 3; bool bool = 4; string text = 5; } }
//
// Unknown fields are skipped when decoding, so fields can be added without
// breaking older files.
package codec

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"unicode/utf8"

	"github.com/vinicius-lino-figueiredo/filedb/domain"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers.
const (
	databaseName        protowire.Number = 1
	databaseDescription protowire.Number = 2
	databaseCollections protowire.Number = 3

	collectionName      protowire.Number = 1
	collectionDocuments protowire.Number = 2
	collectionIDCount   protowire.Number = 3

	documentID   protowire.Number = 1
	documentData protowire.Number = 2

	fieldName  protowire.Number = 1
	fieldValue protowire.Number = 2

	valueInt32   protowire.Number = 1
	valueInt64   protowire.Number = 2
	valueDecimal protowire.Number = 3
	valueBool    protowire.Number = 4
	valueText    protowire.Number = 5
)

var (
	// ErrEmpty is returned when decoding zero bytes.
	ErrEmpty = errors.New("empty database file")
	// ErrInvalidUTF8 is returned when a string field is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("string field is not valid UTF-8")
	// ErrNoVariant is returned when a stored value has none of its variants
	// set.
	ErrNoVariant = errors.New("value has no variant")
)

// ErrWireType is returned when a known field is stored with an unexpected wire
// type.
type ErrWireType struct {
	Message string
	Field   protowire.Number
	Type    protowire.Type
}

// Error implements [error].
func (e ErrWireType) Error() string {
	return fmt.Sprintf("%s field %d has unexpected wire type %d", e.Message, e.Field, e.Type)
}

// ErrDuplicateField is returned when a stored document has the same field
// name twice.
type ErrDuplicateField struct {
	Document uint64
	Name     string
}

// Error implements [error].
func (e ErrDuplicateField) Error() string {
	return fmt.Sprintf("document %d has field %q more than once", e.Document, e.Name)
}

// Codec implements [domain.Codec].
type Codec struct{}

// NewCodec returns a new implementation of [domain.Codec].
func NewCodec() domain.Codec {
	return &Codec{}
}

// Encode implements [domain.Codec]. Output is deterministic: fields are
// written in field number order and document fields are sorted by name.
func (c *Codec) Encode(db *domain.Database) ([]byte, error) {
	if db == nil {
		return nil, errors.New("cannot encode nil database")
	}
	var b []byte
	// name is written even when empty so an encoded database is never zero
	// bytes long
	b = protowire.AppendTag(b, databaseName, protowire.BytesType)
	b = protowire.AppendString(b, db.Name)
	if db.Description != "" {
		b = protowire.AppendTag(b, databaseDescription, protowire.BytesType)
		b = protowire.AppendString(b, db.Description)
	}
	for n := range db.Collections {
		col, err := c.encodeCollection(&db.Collections[n])
		if err != nil {
			return nil, err
		}
		b = protowire.AppendTag(b, databaseCollections, protowire.BytesType)
		b = protowire.AppendBytes(b, col)
	}
	return b, nil
}

func (c *Codec) encodeCollection(col *domain.Collection) ([]byte, error) {
	var b []byte
	if col.Name != "" {
		b = protowire.AppendTag(b, collectionName, protowire.BytesType)
		b = protowire.AppendString(b, col.Name)
	}
	for n := range col.Documents {
		doc, err := c.encodeDocument(&col.Documents[n])
		if err != nil {
			return nil, err
		}
		b = protowire.AppendTag(b, collectionDocuments, protowire.BytesType)
		b = protowire.AppendBytes(b, doc)
	}
	if col.IDCount != 0 {
		b = protowire.AppendTag(b, collectionIDCount, protowire.VarintType)
		b = protowire.AppendVarint(b, col.IDCount)
	}
	return b, nil
}

func (c *Codec) encodeDocument(doc *domain.Document) ([]byte, error) {
	var b []byte
	if doc.ID != 0 {
		b = protowire.AppendTag(b, documentID, protowire.VarintType)
		b = protowire.AppendVarint(b, doc.ID)
	}
	names := make([]string, 0, len(doc.Data))
	for name := range doc.Data {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		val, err := c.encodeValue(doc.Data[name])
		if err != nil {
			return nil, fmt.Errorf("document %d field %q: %w", doc.ID, name, err)
		}
		var f []byte
		if name != "" {
			f = protowire.AppendTag(f, fieldName, protowire.BytesType)
			f = protowire.AppendString(f, name)
		}
		f = protowire.AppendTag(f, fieldValue, protowire.BytesType)
		f = protowire.AppendBytes(f, val)

		b = protowire.AppendTag(b, documentData, protowire.BytesType)
		b = protowire.AppendBytes(b, f)
	}
	return b, nil
}

// oneof members are always written, even when holding the zero value
func (c *Codec) encodeValue(v domain.Value) ([]byte, error) {
	var b []byte
	switch t := v.(type) {
	case domain.Int32:
		b = protowire.AppendTag(b, valueInt32, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(t)))
	case domain.Int64:
		b = protowire.AppendTag(b, valueInt64, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(t))
	case domain.Decimal:
		b = protowire.AppendTag(b, valueDecimal, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, math.Float64bits(float64(t)))
	case domain.Bool:
		b = protowire.AppendTag(b, valueBool, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(bool(t)))
	case domain.Text:
		b = protowire.AppendTag(b, valueText, protowire.BytesType)
		b = protowire.AppendString(b, string(t))
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
	return b, nil
}

// Decode implements [domain.Codec].
func (c *Codec) Decode(b []byte) (*domain.Database, error) {
	if len(b) == 0 {
		return nil, domain.ErrCorruptDatabase{Err: ErrEmpty}
	}
	db, err := c.decodeDatabase(b)
	if err != nil {
		return nil, domain.ErrCorruptDatabase{Err: err}
	}
	return db, nil
}

func (c *Codec) decodeDatabase(b []byte) (*domain.Database, error) {
	db := new(domain.Database)
	err := c.walk("database", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case databaseName:
			return c.consumeString(typ, b, &db.Name)
		case databaseDescription:
			return c.consumeString(typ, b, &db.Description)
		case databaseCollections:
			raw, n, err := c.consumeMessage(typ, b)
			if err != nil {
				return 0, err
			}
			col, err := c.decodeCollection(raw)
			if err != nil {
				return 0, err
			}
			db.Collections = append(db.Collections, *col)
			return n, nil
		}
		return -1, nil
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func (c *Codec) decodeCollection(b []byte) (*domain.Collection, error) {
	col := new(domain.Collection)
	err := c.walk("collection", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case collectionName:
			return c.consumeString(typ, b, &col.Name)
		case collectionDocuments:
			raw, n, err := c.consumeMessage(typ, b)
			if err != nil {
				return 0, err
			}
			doc, err := c.decodeDocument(raw)
			if err != nil {
				return 0, err
			}
			col.Documents = append(col.Documents, *doc)
			return n, nil
		case collectionIDCount:
			return c.consumeVarint("collection", num, typ, b, &col.IDCount)
		}
		return -1, nil
	})
	if err != nil {
		return nil, err
	}
	return col, nil
}

func (c *Codec) decodeDocument(b []byte) (*domain.Document, error) {
	doc := new(domain.Document)
	err := c.walk("document", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case documentID:
			return c.consumeVarint("document", num, typ, b, &doc.ID)
		case documentData:
			raw, n, err := c.consumeMessage(typ, b)
			if err != nil {
				return 0, err
			}
			name, val, err := c.decodeField(raw)
			if err != nil {
				return 0, err
			}
			if doc.Data == nil {
				doc.Data = make(map[string]domain.Value)
			}
			if _, ok := doc.Data[name]; ok {
				return 0, ErrDuplicateField{Document: doc.ID, Name: name}
			}
			doc.Data[name] = val
			return n, nil
		}
		return -1, nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Codec) decodeField(b []byte) (string, domain.Value, error) {
	var name string
	var val domain.Value
	err := c.walk("field", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case fieldName:
			return c.consumeString(typ, b, &name)
		case fieldValue:
			raw, n, err := c.consumeMessage(typ, b)
			if err != nil {
				return 0, err
			}
			if val, err = c.decodeValue(raw); err != nil {
				return 0, err
			}
			return n, nil
		}
		return -1, nil
	})
	if err != nil {
		return "", nil, err
	}
	if val == nil {
		return "", nil, fmt.Errorf("field %q: %w", name, ErrNoVariant)
	}
	return name, val, nil
}

// the last variant found wins, as with any protobuf oneof
func (c *Codec) decodeValue(b []byte) (domain.Value, error) {
	var val domain.Value
	err := c.walk("value", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		var u uint64
		switch num {
		case valueInt32:
			n, err := c.consumeVarint("value", num, typ, b, &u)
			val = domain.Int32(int32(u))
			return n, err
		case valueInt64:
			n, err := c.consumeVarint("value", num, typ, b, &u)
			val = domain.Int64(int64(u))
			return n, err
		case valueDecimal:
			if typ != protowire.Fixed64Type {
				return 0, ErrWireType{Message: "value", Field: num, Type: typ}
			}
			u, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return 0, protowire.ParseError(n)
			}
			val = domain.Decimal(math.Float64frombits(u))
			return n, nil
		case valueBool:
			n, err := c.consumeVarint("value", num, typ, b, &u)
			val = domain.Bool(protowire.DecodeBool(u))
			return n, err
		case valueText:
			var s string
			n, err := c.consumeString(typ, b, &s)
			val = domain.Text(s)
			return n, err
		}
		return -1, nil
	})
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, ErrNoVariant
	}
	return val, nil
}

// walk iterates over the fields of a message. fn returns the number of bytes
// consumed from the field value, or a negative number for unknown fields,
// which are skipped.
func (c *Codec) walk(msg string, b []byte, fn func(protowire.Number, protowire.Type, []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%s: %w", msg, protowire.ParseError(n))
		}
		b = b[n:]
		n, err := fn(num, typ, b)
		if err != nil {
			return fmt.Errorf("%s: %w", msg, err)
		}
		if n < 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("%s: %w", msg, protowire.ParseError(n))
			}
		}
		b = b[n:]
	}
	return nil
}

func (c *Codec) consumeMessage(typ protowire.Type, b []byte) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, fmt.Errorf("message has wire type %d", typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func (c *Codec) consumeString(typ protowire.Type, b []byte, tgt *string) (int, error) {
	v, n, err := c.consumeMessage(typ, b)
	if err != nil {
		return 0, err
	}
	if !utf8.Valid(v) {
		return 0, ErrInvalidUTF8
	}
	*tgt = string(v)
	return n, nil
}

func (c *Codec) consumeVarint(msg string, num protowire.Number, typ protowire.Type, b []byte, tgt *uint64) (int, error) {
	if typ != protowire.VarintType {
		return 0, ErrWireType{Message: msg, Field: num, Type: typ}
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*tgt = v
	return n, nil
}
