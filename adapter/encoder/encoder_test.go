package encoder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/parser"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
	"github.com/vinicius-lino-figueiredo/filedb/pkg/structure"
)

type EncoderTestSuite struct {
	suite.Suite
	e *Encoder
}

func (s *EncoderTestSuite) SetupTest() {
	s.e = NewEncoder().(*Encoder)
}

func (s *EncoderTestSuite) TestStruct() {
	type person struct {
		ID        uint64 `filedb:"_id"`
		FirstName string `filedb:"first_name"`
		LastName  string `filedb:"last_name"`
		Age       int32  `filedb:"age"`
	}

	fields, err := s.e.Encode(person{ID: 9, FirstName: "John", LastName: "Smith", Age: 42})
	s.NoError(err)
	s.Equal([]domain.InputField{
		{Name: "first_name", Type: "Text", Value: "John"},
		{Name: "last_name", Type: "Text", Value: "Smith"},
		{Name: "age", Type: "Int32", Value: "42"},
	}, fields)
}

func (s *EncoderTestSuite) TestMap() {
	fields, err := s.e.Encode(map[string]any{
		"b":   true,
		"a":   int64(-7),
		"c":   2.5,
		"d":   domain.Int32(3),
		"nil": nil,
		"_id": 4,
	})
	s.NoError(err)
	s.Equal([]domain.InputField{
		{Name: "a", Type: "Int64", Value: "-7"},
		{Name: "b", Type: "Bool", Value: "true"},
		{Name: "c", Type: "Decimal", Value: "2.5"},
		{Name: "d", Type: "Int32", Value: "3"},
	}, fields)
}

func (s *EncoderTestSuite) TestKinds() {
	type myString string
	str := "ptr"
	cases := []struct {
		value any
		kind  domain.Kind
		text  string
	}{
		{int8(-8), domain.KindInt32, "-8"},
		{int16(-16), domain.KindInt32, "-16"},
		{int32(math.MinInt32), domain.KindInt32, "-2147483648"},
		{uint8(8), domain.KindInt32, "8"},
		{uint16(16), domain.KindInt32, "16"},
		{int(1), domain.KindInt64, "1"},
		{int64(math.MaxInt64), domain.KindInt64, "9223372036854775807"},
		{uint32(math.MaxUint32), domain.KindInt64, "4294967295"},
		{uint64(math.MaxInt64), domain.KindInt64, "9223372036854775807"},
		{float32(0.1), domain.KindDecimal, "0.1"},
		{math.Inf(-1), domain.KindDecimal, "-Inf"},
		{false, domain.KindBool, "false"},
		{myString("named"), domain.KindText, "named"},
		{&str, domain.KindText, "ptr"},
		{domain.Decimal(1e300), domain.KindDecimal, "1e+300"},
	}
	for _, c := range cases {
		fields, err := s.e.Encode(map[string]any{"f": c.value})
		s.Require().NoError(err, "%T", c.value)
		s.Equal([]domain.InputField{{Name: "f", Type: c.kind.String(), Value: c.text}}, fields, "%T", c.value)
	}
}

// Everything encoded parses back to the same value.
func (s *EncoderTestSuite) TestParsesBack() {
	p := parser.NewParser()
	values := map[string]any{
		"i32": int32(-5), "i64": int64(math.MinInt64), "dec": 0.30000000000000004,
		"neg": -1.5e-300, "bool": true, "text": " spaced ",
	}
	fields, err := s.e.Encode(values)
	s.Require().NoError(err)
	data, err := p.ParseFields(fields)
	s.Require().NoError(err)
	s.Equal(map[string]domain.Value{
		"i32": domain.Int32(-5), "i64": domain.Int64(math.MinInt64), "dec": domain.Decimal(0.30000000000000004),
		"neg": domain.Decimal(-1.5e-300), "bool": domain.Bool(true), "text": domain.Text(" spaced "),
	}, data)
}

func (s *EncoderTestSuite) TestUnsupported() {
	_, err := s.e.Encode(map[string]any{"list": []int{1}})
	s.Equal(domain.ErrUnsupportedType{Field: "list", Value: []int{1}}, err)

	_, err = s.e.Encode(map[string]any{"big": uint64(math.MaxUint64)})
	s.ErrorAs(err, &domain.ErrUnsupportedType{})

	_, err = s.e.Encode(struct{ Inner struct{ A int } }{})
	s.ErrorAs(err, &domain.ErrUnsupportedType{})

	_, err = s.e.Encode(42)
	s.ErrorAs(err, &structure.ErrNonObject{})

	_, err = s.e.Encode(nil)
	s.ErrorIs(err, structure.ErrNilObj)
}

func TestEncoderTestSuite(t *testing.T) {
	suite.Run(t, new(EncoderTestSuite))
}
