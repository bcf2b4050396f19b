package domain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

type DomainTestSuite struct {
	suite.Suite
}

func (s *DomainTestSuite) TestOptions() {
	s.Equal(domain.FindOptions{}, domain.NewFindOptions())
	s.Equal(
		domain.FindOptions{Limit: 3, Limited: true},
		domain.NewFindOptions(domain.WithLimit(3)),
	)
	s.Equal(
		domain.FindOptions{Limit: 0, Limited: true},
		domain.NewFindOptions(domain.WithLimit(-2)),
	)

	s.False(domain.NewFindOptions().Reached(1000))
	s.True(domain.NewFindOptions(domain.WithLimit(0)).Reached(0))
	s.False(domain.NewFindOptions(domain.WithLimit(2)).Reached(1))
	s.True(domain.NewFindOptions(domain.WithLimit(2)).Reached(2))
}

func (s *DomainTestSuite) TestKinds() {
	for _, k := range domain.Kinds() {
		s.Equal(k, domain.ParseKind(k.String()))
	}
	s.Equal(domain.KindUnknown, domain.ParseKind("int32"))
	s.Equal(domain.KindUnknown, domain.ParseKind("Unknown"))
	s.Equal(domain.KindUnknown, domain.ParseKind(""))
	s.Equal("Unknown", domain.Kind(200).String())
}

func (s *DomainTestSuite) TestRender() {
	s.Equal("-2147483648", domain.Int32(math.MinInt32).String())
	s.Equal("9223372036854775807", domain.Int64(math.MaxInt64).String())
	s.Equal("1.5e+300", domain.Decimal(1.5e300).String())
	s.Equal("0.1", domain.Decimal(0.1).String())
	s.Equal("true", domain.Bool(true).String())
	s.Equal("false", domain.Bool(false).String())
	s.Equal(" spaced text ", domain.Text(" spaced text ").String())
}

func (s *DomainTestSuite) TestEqual() {
	s.True(domain.Int32(5).Equal(domain.Int32(5)))
	s.False(domain.Int32(5).Equal(domain.Int64(5)))
	s.False(domain.Int64(5).Equal(domain.Int32(5)))
	s.False(domain.Int64(5).Equal(domain.Decimal(5)))
	s.True(domain.Bool(false).Equal(domain.Bool(false)))
	s.False(domain.Bool(false).Equal(domain.Text("false")))
	s.True(domain.Text("\u00e9").Equal(domain.Text("\u00e9")))
	s.False(domain.Text("e\u0301").Equal(domain.Text("\u00e9")))

	nan := domain.Decimal(math.NaN())
	s.False(nan.Equal(nan))
	s.False(nan.Equal(domain.Decimal(0)))
	s.False(domain.Decimal(0).Equal(nan))
	s.False(domain.Decimal(0).Equal(domain.Decimal(math.Copysign(0, -1))))
	s.True(domain.Decimal(math.Inf(1)).Equal(domain.Decimal(math.Inf(1))))
	s.True(domain.Decimal(0.25).Equal(domain.Decimal(0.25)))
}

func (s *DomainTestSuite) TestLookups() {
	db := domain.Database{Collections: []domain.Collection{
		{Name: "a"},
		{Name: "b", Documents: []domain.Document{{ID: 3}, {ID: 7}}},
	}}
	s.Equal(1, db.CollectionIndex("b"))
	s.Equal(-1, db.CollectionIndex("c"))
	s.Equal(1, db.Collections[1].DocumentIndex(7))
	s.Equal(-1, db.Collections[1].DocumentIndex(4))

	doc := domain.Document{ID: 1, Data: map[string]domain.Value{"a": domain.Int32(1)}}
	v, ok := doc.Get("a")
	s.True(ok)
	s.Equal(domain.Int32(1), v)
	_, ok = doc.Get("b")
	s.False(ok)
}

func (s *DomainTestSuite) TestErrors() {
	err := error(domain.OperationError{
		Op: domain.OpCreateCollection,
		Err: domain.ErrInvalidName{
			Subject: domain.SubjectCollection,
			Name:    "a b",
			Err:     domain.ErrWhitespaceInName,
		},
	})
	s.ErrorIs(err, domain.ErrWhitespaceInName)
	s.ErrorAs(err, &domain.ErrInvalidName{})
	s.Equal(`create collection: invalid collection name "a b": name cannot contain whitespace`, err.Error())

	var oe domain.OperationError
	s.True(errors.As(err, &oe))
	s.Equal(domain.OpCreateCollection, oe.Op)
	s.Equal("op(99)", domain.Op(99).String())

	corrupt := domain.ErrCorruptDatabase{Path: "/x.db", Err: errors.New("boom")}
	s.Equal(`corrupt database "/x.db": boom`, corrupt.Error())
	s.Equal("corrupt database: boom", domain.ErrCorruptDatabase{Err: errors.New("boom")}.Error())

	s.Equal(`unknown value type "Float"`, domain.ErrParse{Input: "Float"}.Error())
	s.Equal(`cannot parse "maybe" as Bool`, domain.ErrParse{Kind: domain.KindBool, Input: "maybe"}.Error())
}

func TestDomainTestSuite(t *testing.T) {
	suite.Run(t, new(DomainTestSuite))
}
