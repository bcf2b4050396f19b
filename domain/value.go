package domain

import (
	"math"
	"strconv"
)

// Kind identifies which variant of the [Value] union is held.
type Kind uint8

// Supported value kinds. KindUnknown is never stored; it only describes an
// unrecognized type tag.
const (
	KindUnknown Kind = iota
	KindInt32
	KindInt64
	KindDecimal
	KindBool
	KindText
)

var kindNames = [...]string{
	KindUnknown: "Unknown",
	KindInt32:   "Int32",
	KindInt64:   "Int64",
	KindDecimal: "Decimal",
	KindBool:    "Bool",
	KindText:    "Text",
}

// String returns the textual type tag of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

// ParseKind returns the kind for a type tag. Tags are case-sensitive; an
// unrecognized tag returns KindUnknown.
func ParseKind(tag string) Kind {
	for k, name := range kindNames {
		if k != int(KindUnknown) && name == tag {
			return Kind(k)
		}
	}
	return KindUnknown
}

// Kinds lists the kinds a document field can hold, in tag order.
func Kinds() []Kind {
	return []Kind{KindInt32, KindInt64, KindDecimal, KindBool, KindText}
}

// Value is a typed document field value. It is implemented only by [Int32],
// [Int64], [Decimal], [Bool] and [Text].
type Value interface {
	// Kind returns the variant held.
	Kind() Kind
	// String renders the value the same way it is accepted as input.
	String() string
	// Equal reports whether both values hold the same variant and the same
	// content. No widening happens between variants.
	Equal(Value) bool

	value()
}

// Int32 is a 32-bit signed integer value.
type Int32 int32

// Int64 is a 64-bit signed integer value.
type Int64 int64

// Decimal is an IEEE-754 double precision value.
type Decimal float64

// Bool is a boolean value.
type Bool bool

// Text is an UTF-8 string value.
type Text string

func (Int32) value()   {}
func (Int64) value()   {}
func (Decimal) value() {}
func (Bool) value()    {}
func (Text) value()    {}

// Kind implements [Value].
func (Int32) Kind() Kind { return KindInt32 }

// Kind implements [Value].
func (Int64) Kind() Kind { return KindInt64 }

// Kind implements [Value].
func (Decimal) Kind() Kind { return KindDecimal }

// Kind implements [Value].
func (Bool) Kind() Kind { return KindBool }

// Kind implements [Value].
func (Text) Kind() Kind { return KindText }

// String implements [Value].
func (v Int32) String() string { return strconv.FormatInt(int64(v), 10) }

// String implements [Value].
func (v Int64) String() string { return strconv.FormatInt(int64(v), 10) }

// String implements [Value]. The shortest representation that parses back
// to the same bits is used.
func (v Decimal) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

// String implements [Value].
func (v Bool) String() string { return strconv.FormatBool(bool(v)) }

// String implements [Value].
func (v Text) String() string { return string(v) }

// Equal implements [Value].
func (v Int32) Equal(o Value) bool {
	t, ok := o.(Int32)
	return ok && t == v
}

// Equal implements [Value].
func (v Int64) Equal(o Value) bool {
	t, ok := o.(Int64)
	return ok && t == v
}

// Equal implements [Value]. Comparison is done on the 64-bit
// representation, so 0 and -0 differ, and NaN never equals anything.
func (v Decimal) Equal(o Value) bool {
	t, ok := o.(Decimal)
	if !ok || math.IsNaN(float64(v)) || math.IsNaN(float64(t)) {
		return false
	}
	return math.Float64bits(float64(v)) == math.Float64bits(float64(t))
}

// Equal implements [Value].
func (v Bool) Equal(o Value) bool {
	t, ok := o.(Bool)
	return ok && t == v
}

// Equal implements [Value].
func (v Text) Equal(o Value) bool {
	t, ok := o.(Text)
	return ok && t == v
}
