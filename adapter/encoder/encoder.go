// Package encoder contains the default [domain.Encoder] implementation, which
// turns Go structs and maps into input fields.
package encoder

import (
	"math"
	"strconv"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
	"github.com/vinicius-lino-figueiredo/filedb/pkg/structure"
)

// IDField is the reserved field name holding the document id. It is skipped
// when encoding, since ids are assigned by the collection.
const IDField = "_id"

// Encoder implements [domain.Encoder].
type Encoder struct{}

// NewEncoder returns a new implementation of [domain.Encoder].
func NewEncoder() domain.Encoder {
	return &Encoder{}
}

// Encode implements [domain.Encoder]. Fields holding nil pointers or nil
// interfaces are skipped.
//
// Go kinds are mapped to value kinds as follows: int8, int16, int32, uint8 and
// uint16 become Int32; int, int64, uint32, uint and uint64 become Int64;
// floats become Decimal; bool becomes Bool and string becomes Text. A
// [domain.Value] keeps its own kind.
func (e *Encoder) Encode(obj any) ([]domain.InputField, error) {
	seq, l, err := structure.Seq2(obj)
	if err != nil {
		return nil, err
	}
	fields := make([]domain.InputField, 0, l)
	for name, value := range seq {
		if name == IDField {
			continue
		}
		kind, text, ok, err := e.encodeValue(name, value)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		fields = append(fields, domain.InputField{Name: name, Type: kind.String(), Value: text})
	}
	return fields, nil
}

func (e *Encoder) encodeValue(name string, value any) (domain.Kind, string, bool, error) {
	if value == nil {
		return domain.KindUnknown, "", false, nil
	}
	if v, ok := value.(domain.Value); ok {
		return v.Kind(), v.String(), true, nil
	}

	v := reflect.ValueNoEscapeOf(value)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return domain.KindUnknown, "", false, nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return domain.KindInt32, strconv.FormatInt(v.Int(), 10), true, nil
	case reflect.Uint8, reflect.Uint16:
		return domain.KindInt32, strconv.FormatUint(v.Uint(), 10), true, nil
	case reflect.Int, reflect.Int64:
		return domain.KindInt64, strconv.FormatInt(v.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.Uint() > math.MaxInt64 {
			break
		}
		return domain.KindInt64, strconv.FormatUint(v.Uint(), 10), true, nil
	case reflect.Float32:
		return domain.KindDecimal, strconv.FormatFloat(v.Float(), 'g', -1, 32), true, nil
	case reflect.Float64:
		return domain.KindDecimal, strconv.FormatFloat(v.Float(), 'g', -1, 64), true, nil
	case reflect.Bool:
		return domain.KindBool, strconv.FormatBool(v.Bool()), true, nil
	case reflect.String:
		return domain.KindText, v.String(), true, nil
	}
	return domain.KindUnknown, "", false, domain.ErrUnsupportedType{Field: name, Value: value}
}
