// Package driver is the embedding API of filedb. It works with Go values
// instead of textual input fields: structs and maps are encoded into typed
// fields and stored documents can be decoded back into structs.
//
// Databases and collections are created on first use:
//
//	client, _ := driver.NewClient()
//	db, _ := client.GetDatabase(ctx, "shop")
//	items, _ := db.GetCollection(ctx, "items")
//	doc, _ := items.InsertOne(ctx, Item{Name: "pen", Stock: 12})
//
// Struct fields are named after their "filedb" tag, or the field name when
// there is none. The document id is decoded into the "_id" field.
package driver

import (
	"context"

	"github.com/vinicius-lino-figueiredo/filedb"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/decoder"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/encoder"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

var defaultDecoder = decoder.NewDecoder()

// Decode copies a stored document into target, which must be a pointer to a
// struct, a map or a [domain.Document].
func Decode(doc domain.Document, target any) error {
	return defaultDecoder.Decode(doc, target)
}

// Client gives access to the databases in the engine directory. Calls made
// through a client and the databases and collections it returns are run one at
// a time.
type Client struct {
	engine        *filedb.Engine
	engineOptions []filedb.Option
	encoder       domain.Encoder
	decoder       domain.Decoder
	serial        chan struct{}
}

// NewClient creates a new [Client]. Without [WithEngine], an engine is created
// with the options given to [WithEngineOptions].
func NewClient(options ...Option) (*Client, error) {
	c := Client{
		encoder: encoder.NewEncoder(),
		decoder: defaultDecoder,
		serial:  make(chan struct{}, 1),
	}
	for _, option := range options {
		option(&c)
	}
	if c.engine == nil {
		e, err := filedb.New(c.engineOptions...)
		if err != nil {
			return nil, err
		}
		c.engine = e
	}
	return &c, nil
}

// GetDatabase returns the named database, creating it if it does not exist.
func (c *Client) GetDatabase(ctx context.Context, name string) (*Database, error) {
	if err := c.lock(ctx); err != nil {
		return nil, err
	}
	defer c.unlock()

	found := c.engine.FindDatabaseByName(ctx, name)
	if !found.Success {
		return nil, found.Error
	}
	if found.Data != nil {
		return &Database{client: c, name: found.Data.Name, path: found.Data.Path}, nil
	}
	created := c.engine.CreateDatabase(ctx, name)
	if !created.Success {
		return nil, created.Error
	}
	return &Database{client: c, name: created.Data.Name, path: created.Data.Path}, nil
}

// ListDatabases returns the databases in the engine directory.
func (c *Client) ListDatabases(ctx context.Context) ([]domain.DatabaseInfo, error) {
	if err := c.lock(ctx); err != nil {
		return nil, err
	}
	defer c.unlock()

	r := c.engine.FindAllDatabases(ctx)
	return r.Data, r.Error
}

// lock waits for other calls to finish, or for ctx to be done.
func (c *Client) lock(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case c.serial <- struct{}{}:
		return nil
	}
}

func (c *Client) unlock() {
	<-c.serial
}
