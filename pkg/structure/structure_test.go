package structure

import (
	"testing"

	"github.com/goccy/go-reflect"
	"github.com/stretchr/testify/suite"
)

type StructureTestSuite struct {
	suite.Suite
}

func (s *StructureTestSuite) collect(obj any) ([]string, []any) {
	seq, l, err := Seq2(obj)
	s.Require().NoError(err)
	var keys []string
	var values []any
	for k, v := range seq {
		keys = append(keys, k)
		values = append(values, v)
	}
	s.Len(keys, l)
	return keys, values
}

func (s *StructureTestSuite) TestFastPathMaps() {
	cases := []any{
		map[string]any{"b": 1, "a": "x"},
		map[string]string{"b": "1", "a": "x"},
		map[string]int{"b": 1, "a": 2},
		map[string]float64{"b": 1, "a": 2},
		map[string]bool{"b": true, "a": false},
	}
	for _, c := range cases {
		keys, _ := s.collect(c)
		s.Equal([]string{"a", "b"}, keys)
	}
}

func (s *StructureTestSuite) TestReflectMap() {
	type named map[string]int32
	keys, values := s.collect(named{"z": 1, "m": 2, "a": 3})
	s.Equal([]string{"a", "m", "z"}, keys)
	s.Equal([]any{int32(3), int32(2), int32(1)}, values)

	_, _, err := Seq2(map[int]string{1: "a"})
	s.ErrorAs(err, &ErrNonObject{})

	var nilMap map[string]int32
	_, _, err = Seq2(nilMap)
	s.ErrorIs(err, ErrNilObj)
}

func (s *StructureTestSuite) TestStruct() {
	type person struct {
		ID       uint64 `filedb:"_id,omitZero"`
		Name     string `filedb:"name"`
		Age      int32
		Email    string  `filedb:"email,omitEmpty"`
		Nickname *string `filedb:",omitEmpty"`
		Ignored  string  `filedb:"-"`
		hidden   bool
	}

	keys, values := s.collect(person{Name: "John", Age: 42, Ignored: "x", hidden: true})
	s.Equal([]string{"name", "Age"}, keys)
	s.Equal([]any{"John", int32(42)}, values)

	nick := "J"
	keys, _ = s.collect(&person{ID: 3, Name: "John", Email: "a@b.c", Nickname: &nick})
	s.Equal([]string{"_id", "name", "Age", "email", "Nickname"}, keys)
}

func (s *StructureTestSuite) TestStopsEarly() {
	seq, _, err := Seq2(struct{ A, B, C int }{1, 2, 3})
	s.Require().NoError(err)
	var got []string
	for k := range seq {
		got = append(got, k)
		if k == "B" {
			break
		}
	}
	s.Equal([]string{"A", "B"}, got)
}

func (s *StructureTestSuite) TestErrors() {
	_, _, err := Seq2(nil)
	s.ErrorIs(err, ErrNilObj)

	var p *struct{ A int }
	_, _, err = Seq2(p)
	s.ErrorIs(err, ErrNilObj)

	for _, v := range []any{1, "x", []int{1}, true} {
		_, _, err := Seq2(v)
		var nonObj ErrNonObject
		s.Require().ErrorAs(err, &nonObj)
		s.Equal(reflect.TypeOf(v), nonObj.Type)
	}
}

func TestStructureTestSuite(t *testing.T) {
	suite.Run(t, new(StructureTestSuite))
}
