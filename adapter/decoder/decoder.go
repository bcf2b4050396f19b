// Package decoder contains the default [domain.Decoder] implementation, which
// copies stored documents into Go structs and maps.
package decoder

import (
	"fmt"

	"github.com/goccy/go-reflect"
	"github.com/mitchellh/mapstructure"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/encoder"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
	"github.com/vinicius-lino-figueiredo/filedb/pkg/structure"
)

var docReflectType = reflect.TypeOf(domain.Document{})

// Decoder implements [domain.Decoder].
type Decoder struct{}

// NewDecoder returns a new implementation of [domain.Decoder].
func NewDecoder() domain.Decoder {
	return &Decoder{}
}

// Decode implements [domain.Decoder]. The document id is available under the
// [encoder.IDField] key, and struct fields are matched using the same tag
// read when encoding.
func (d *Decoder) Decode(doc domain.Document, target any) error {
	if target == nil {
		return domain.ErrTargetNil
	}

	value := reflect.ValueNoEscapeOf(target)
	if value.Kind() != reflect.Ptr {
		return domain.ErrNonPointer
	}
	if value.IsNil() {
		return domain.ErrTargetNil
	}

	if value.Type().Elem() == docReflectType {
		value.Elem().Set(reflect.ValueNoEscapeOf(doc))
		return nil
	}

	source := d.native(doc)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: structure.TagName,
		Result:  target,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(source); err != nil {
		errDec := domain.ErrDecode{Source: source, Target: target}
		return fmt.Errorf("%w: %w", errDec, err)
	}
	return nil
}

func (d *Decoder) native(doc domain.Document) map[string]any {
	m := make(map[string]any, len(doc.Data)+1)
	for name, v := range doc.Data {
		switch t := v.(type) {
		case domain.Int32:
			m[name] = int32(t)
		case domain.Int64:
			m[name] = int64(t)
		case domain.Decimal:
			m[name] = float64(t)
		case domain.Bool:
			m[name] = bool(t)
		case domain.Text:
			m[name] = string(t)
		}
	}
	m[encoder.IDField] = doc.ID
	return m
}
