// Package structure lists the fields of structs and string-keyed maps, so they
// can be stored as documents.
package structure

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-reflect"
)

// TagName is the struct tag read by [Seq2]. A tag holds the stored field name,
// optionally followed by the options omitEmpty and omitZero. A name of "-"
// skips the field.
const TagName = "filedb"

var (
	// ErrNilObj is returned by [Seq2] when a nil value is passed as
	// argument.
	ErrNilObj = errors.New("nil object")
)

// ErrNonObject is returned by [Seq2] when a value that is neither a struct nor
// a map with string keys is passed as argument.
type ErrNonObject struct {
	Type reflect.Type
}

// Error implements [error].
func (e ErrNonObject) Error() string {
	return fmt.Sprintf("expected struct or map with string keys, got %s", e.Type)
}

// Seq2 returns an iterator over the fields of a struct or map, and the number
// of fields. Struct fields come in declaration order and map keys are sorted.
func Seq2(obj any) (iter.Seq2[string, any], int, error) {
	if obj == nil {
		return nil, 0, ErrNilObj
	}
	switch t := obj.(type) {
	case map[string]any:
		return iterMap(t), len(t), nil
	case map[string]string:
		return iterMap(t), len(t), nil
	case map[string]int:
		return iterMap(t), len(t), nil
	case map[string]float64:
		return iterMap(t), len(t), nil
	case map[string]bool:
		return iterMap(t), len(t), nil
	}
	return iterReflect(obj)
}

func iterMap[T any](m map[string]T) iter.Seq2[string, any] {
	keys := slices.Sorted(maps.Keys(m))
	return func(yield func(string, any) bool) {
		for _, k := range keys {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}

func iterReflect(obj any) (iter.Seq2[string, any], int, error) {
	v := reflect.ValueNoEscapeOf(obj)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, 0, ErrNilObj
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			break
		}
		if v.IsNil() {
			return nil, 0, ErrNilObj
		}
		i, l := iterReflectMap(v)
		return i, l, nil
	case reflect.Struct:
		i, l := iterReflectStruct(v)
		return i, l, nil
	}
	return nil, 0, ErrNonObject{Type: v.Type()}
}

func iterReflectMap(v reflect.Value) (iter.Seq2[string, any], int) {
	keys := v.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return strings.Compare(a.String(), b.String())
	})
	return func(yield func(string, any) bool) {
		for _, k := range keys {
			if !yield(k.String(), v.MapIndex(k).Interface()) {
				return
			}
		}
	}, len(keys)
}

func iterReflectStruct(v reflect.Value) (iter.Seq2[string, any], int) {
	type field struct {
		Key   string
		Value any
	}
	fields := make([]field, 0, v.NumField())
	for k, v := range listStructFields(v) {
		fields = append(fields, field{Key: k, Value: v})
	}
	return func(yield func(string, any) bool) {
		for _, f := range fields {
			if !yield(f.Key, f.Value) {
				return
			}
		}
	}, len(fields)
}

func listStructFields(v reflect.Value) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		typ := v.Type()
		for n := range typ.NumField() {
			field := typ.Field(n)
			if field.PkgPath != "" {
				continue
			}

			name, omitEmpty, omitZero := parseTag(field)
			if name == "-" {
				continue
			}
			fv := v.Field(n)
			if omitZero && fv.IsZero() {
				continue
			}
			if omitEmpty && isEmpty(fv) {
				continue
			}
			if !yield(name, fv.Interface()) {
				return
			}
		}
	}
}

func parseTag(field reflect.StructField) (name string, omitEmpty bool, omitZero bool) {
	tag, ok := field.Tag.Lookup(TagName)
	if !ok {
		return field.Name, false, false
	}
	name, opts, _ := strings.Cut(tag, ",")
	for opt := range strings.SplitSeq(opts, ",") {
		switch opt {
		case "omitEmpty":
			omitEmpty = true
		case "omitZero":
			omitZero = true
		}
	}
	if name == "" {
		name = field.Name
	}
	return name, omitEmpty, omitZero
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map,
		reflect.Ptr, reflect.UnsafePointer,
		reflect.Interface, reflect.Slice:
		return v.IsNil()
	case reflect.String:
		return v.Len() == 0
	}
	return false
}
