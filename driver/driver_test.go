package driver

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/filedb"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/logger"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

type item struct {
	ID    uint64  `filedb:"_id"`
	Name  string  `filedb:"name"`
	Stock int32   `filedb:"stock"`
	Price float64 `filedb:"price,omitZero"`
}

type DriverTestSuite struct {
	suite.Suite
	dir    string
	client *Client
	ctx    context.Context
}

func (s *DriverTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	c, err := NewClient(WithEngineOptions(
		filedb.WithDatabaseDir(s.dir),
		filedb.WithLogger(logger.NewLogger(logger.WithDir(s.T().TempDir()))),
	))
	s.Require().NoError(err)
	s.client = c
	s.ctx = context.Background()
}

func (s *DriverTestSuite) items() *Collection {
	db, err := s.client.GetDatabase(s.ctx, "shop")
	s.Require().NoError(err)
	col, err := db.GetCollection(s.ctx, "items")
	s.Require().NoError(err)
	return col
}

func (s *DriverTestSuite) TestGetOrCreate() {
	db, err := s.client.GetDatabase(s.ctx, "shop")
	s.Require().NoError(err)
	s.Equal("shop", db.Name())
	s.FileExists(db.Path())

	again, err := s.client.GetDatabase(s.ctx, "shop")
	s.Require().NoError(err)
	s.Equal(db.Path(), again.Path())

	_, err = db.GetCollection(s.ctx, "items")
	s.Require().NoError(err)
	_, err = again.GetCollection(s.ctx, "items")
	s.Require().NoError(err)

	names, err := db.ListCollections(s.ctx)
	s.NoError(err)
	s.Equal([]string{"items"}, names)

	infos, err := s.client.ListDatabases(s.ctx)
	s.NoError(err)
	s.Len(infos, 1)
}

func (s *DriverTestSuite) TestInvalidNames() {
	_, err := s.client.GetDatabase(s.ctx, "my shop")
	s.ErrorIs(err, domain.ErrWhitespaceInName)

	db, err := s.client.GetDatabase(s.ctx, "shop")
	s.Require().NoError(err)
	_, err = db.GetCollection(s.ctx, "")
	s.ErrorIs(err, domain.ErrEmptyName)
}

func (s *DriverTestSuite) TestInsertAndDecode() {
	col := s.items()

	doc, err := col.InsertOne(s.ctx, item{Name: "pen", Stock: 12, Price: 1.5})
	s.Require().NoError(err)
	s.Equal(uint64(1), doc.ID)
	s.Equal(map[string]domain.Value{
		"name":  domain.Text("pen"),
		"stock": domain.Int32(12),
		"price": domain.Decimal(1.5),
	}, doc.Data)

	found, err := col.FindOneByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().NotNil(found)

	var it item
	s.NoError(Decode(*found, &it))
	s.Equal(item{ID: 1, Name: "pen", Stock: 12, Price: 1.5}, it)

	var m map[string]any
	s.NoError(col.Decode(*found, &m))
	s.Equal("pen", m["name"])
	s.Equal(uint64(1), m["_id"])

	none, err := col.FindOneByID(s.ctx, 2)
	s.NoError(err)
	s.Nil(none)
}

func (s *DriverTestSuite) TestInsertMap() {
	col := s.items()
	doc, err := col.InsertOne(s.ctx, map[string]any{"name": "ink", "count": int64(3), "ok": true})
	s.Require().NoError(err)
	s.Equal(domain.Int64(3), doc.Data["count"])
	s.Equal(domain.Bool(true), doc.Data["ok"])

	_, err = col.InsertOne(s.ctx, map[string]any{"bad": []int{1}})
	s.ErrorAs(err, &domain.ErrUnsupportedType{})

	docs, err := col.FindAll(s.ctx)
	s.NoError(err)
	s.Len(docs, 1)
}

func (s *DriverTestSuite) TestFindMany() {
	col := s.items()
	for _, it := range []item{
		{Name: "pen", Stock: 1},
		{Name: "ink", Stock: 1},
		{Name: "pen", Stock: 2},
		{Name: "pen", Stock: 1},
	} {
		_, err := col.InsertOne(s.ctx, it)
		s.Require().NoError(err)
	}

	docs, err := col.FindMany(s.ctx, map[string]any{"name": "pen", "stock": int32(1)})
	s.Require().NoError(err)
	s.Require().Len(docs, 2)
	s.Equal(uint64(1), docs[0].ID)
	s.Equal(uint64(4), docs[1].ID)

	// int64 encodes as Int64, which never equals a stored Int32.
	docs, err = col.FindMany(s.ctx, map[string]any{"stock": int64(1)})
	s.NoError(err)
	s.Empty(docs)

	docs, err = col.FindMany(s.ctx, map[string]any{"name": "pen"}, domain.WithLimit(1))
	s.NoError(err)
	s.Len(docs, 1)

	docs, err = col.FindAll(s.ctx, domain.WithLimit(3))
	s.NoError(err)
	s.Len(docs, 3)
}

func (s *DriverTestSuite) TestReplaceAndDelete() {
	col := s.items()
	_, err := col.InsertOne(s.ctx, item{Name: "pen", Stock: 1})
	s.Require().NoError(err)
	_, err = col.InsertOne(s.ctx, item{Name: "ink", Stock: 2})
	s.Require().NoError(err)

	s.NoError(col.ReplaceOneByID(s.ctx, 1, item{Name: "pencil", Stock: 5}))
	doc, err := col.FindOneByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(domain.Text("pencil"), doc.Data["name"])

	s.ErrorAs(col.ReplaceOneByID(s.ctx, 9, item{}), &domain.ErrDocumentNotFound{})

	s.NoError(col.DeleteOneByID(s.ctx, 1))
	s.ErrorAs(col.DeleteOneByID(s.ctx, 1), &domain.ErrDocumentNotFound{})

	n, err := col.DeleteAll(s.ctx)
	s.NoError(err)
	s.Equal(1, n)

	inserted, err := col.InsertOne(s.ctx, item{Name: "new"})
	s.NoError(err)
	s.Equal(uint64(3), inserted.ID)
}

func (s *DriverTestSuite) TestDescription() {
	db, err := s.client.GetDatabase(s.ctx, "shop")
	s.Require().NoError(err)

	desc, err := db.Description(s.ctx)
	s.NoError(err)
	s.Empty(desc)

	s.NoError(db.SetDescription(s.ctx, "office supplies"))
	desc, err = db.Description(s.ctx)
	s.NoError(err)
	s.Equal("office supplies", desc)
}

func (s *DriverTestSuite) TestDrop() {
	col := s.items()
	_, err := col.InsertOne(s.ctx, item{Name: "pen"})
	s.Require().NoError(err)

	s.NoError(col.db.DropCollection(s.ctx, "items"))
	names, err := col.db.ListCollections(s.ctx)
	s.NoError(err)
	s.Empty(names)

	s.NoError(col.db.Drop(s.ctx))
	s.NoFileExists(col.db.Path())

	_, err = col.db.Description(s.ctx)
	s.ErrorAs(err, &domain.ErrDatabaseNotFound{})
	_, err = col.InsertOne(s.ctx, item{Name: "pen"})
	s.ErrorAs(err, &domain.ErrDatabaseNotFound{})
}

func (s *DriverTestSuite) TestConcurrentInserts() {
	col := s.items()
	workers := 20

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			_, err := col.InsertOne(s.ctx, item{Name: "pen"})
			s.NoError(err)
		}()
	}
	wg.Wait()

	docs, err := col.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(docs, workers)
	seen := make(map[uint64]bool, workers)
	for _, d := range docs {
		seen[d.ID] = true
	}
	for id := range uint64(workers) {
		s.True(seen[id+1])
	}
}

func (s *DriverTestSuite) TestLockHonorsContext() {
	col := s.items()

	s.Require().NoError(s.client.lock(s.ctx))
	defer s.client.unlock()

	ctx, cancel := context.WithTimeout(s.ctx, 10*time.Millisecond)
	defer cancel()
	_, err := col.FindAll(ctx)
	s.ErrorIs(err, context.DeadlineExceeded)
}

func (s *DriverTestSuite) TestWithEngine() {
	e, err := filedb.New(
		filedb.WithDatabaseDir(s.dir),
		filedb.WithLogger(logger.NewLogger(logger.WithDir(s.T().TempDir()))),
	)
	s.Require().NoError(err)
	c, err := NewClient(WithEngine(e))
	s.Require().NoError(err)

	db, err := c.GetDatabase(s.ctx, "shared")
	s.Require().NoError(err)
	s.Equal(e.DatabasePath("shared"), db.Path())
}

func TestDriverTestSuite(t *testing.T) {
	suite.Run(t, new(DriverTestSuite))
}
