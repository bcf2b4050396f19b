package filedb

import (
	"context"
	"fmt"

	"github.com/vinicius-lino-figueiredo/filedb/adapter/config"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/datastore"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/logger"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

// Response is the result of every [Engine] operation.
//
// Success is false if and only if Error is set, in which case Error is an
// [OperationError]. Data holds the result of a successful operation. LogError
// is set when the operation could not be logged, and never changes Success.
type Response[T any] struct {
	Success  bool
	Data     T
	Error    error
	LogError error
}

// Engine is the user-facing entry point. It runs datastore operations, logs
// them and wraps the results in [Response] values.
//
// Engine holds no database state: every call reads the database file again.
type Engine struct {
	configStore ConfigStore
	datastore   Datastore
	logger      Logger
	dir         string
}

// New creates a new [Engine]. The following options can be given:
//
// - [WithConfigStore]: sets where directories are read from when not given.
//
// - [WithDatastore]: sets the storage engine.
//
// - [WithLogger]: sets the event and error logger.
//
// - [WithDatabaseDir]: sets the directory holding database files.
//
// Without [WithDatabaseDir] or [WithLogger], the configuration file beside the
// executable is loaded (and created if missing).
func New(options ...Option) (*Engine, error) {
	var e Engine
	for _, option := range options {
		option(&e)
	}
	if e.dir == "" || e.logger == nil {
		if e.configStore == nil {
			c, err := config.NewStore()
			if err != nil {
				return nil, err
			}
			e.configStore = c
		}
		cfg, err := e.configStore.Load()
		if err != nil {
			return nil, fmt.Errorf("loading configuration: %w", err)
		}
		if e.dir == "" {
			e.dir = cfg.DBDirPath
		}
		if e.logger == nil {
			e.logger = logger.NewLogger(logger.WithDir(cfg.LogsDirPath))
		}
	}
	if e.datastore == nil {
		e.datastore = datastore.NewDatastore()
	}
	return &e, nil
}

// DatabaseDir returns the directory where databases are created and listed.
func (e *Engine) DatabaseDir() string {
	return e.dir
}

// DatabasePath returns the path a database with the given name has inside
// [Engine.DatabaseDir].
func (e *Engine) DatabasePath(name string) string {
	return datastore.DatabasePath(e.dir, name)
}

// CreateDatabase creates a database in [Engine.DatabaseDir], creating the
// directory if needed.
func (e *Engine) CreateDatabase(ctx context.Context, name string) Response[DatabaseInfo] {
	info, err := e.datastore.CreateDatabaseInDirectory(ctx, e.dir, name)
	return respond(e, domain.OpCreateDatabase, info, err, func() string {
		return fmt.Sprintf("created database %q at %q", info.Name, info.Path)
	})
}

// CreateDatabaseByPath creates a database in dir, which must already exist.
func (e *Engine) CreateDatabaseByPath(ctx context.Context, name string, dir string) Response[DatabaseInfo] {
	info, err := e.datastore.CreateDatabaseByPath(ctx, name, dir)
	return respond(e, domain.OpCreateDatabase, info, err, func() string {
		return fmt.Sprintf("created database %q at %q", info.Name, info.Path)
	})
}

// DeleteDatabase removes the database file at path.
func (e *Engine) DeleteDatabase(ctx context.Context, path string) Response[struct{}] {
	err := e.datastore.DeleteDatabase(ctx, path)
	return respond(e, domain.OpDeleteDatabase, struct{}{}, err, func() string {
		return fmt.Sprintf("deleted database at %q", path)
	})
}

// ChangeDescription replaces the description of the database at path.
func (e *Engine) ChangeDescription(ctx context.Context, path string, description string) Response[struct{}] {
	err := e.datastore.ChangeDescription(ctx, path, description)
	return respond(e, domain.OpModifyDatabase, struct{}{}, err, func() string {
		return fmt.Sprintf("changed description of database at %q", path)
	})
}

// FindAllDatabases lists the databases in [Engine.DatabaseDir].
func (e *Engine) FindAllDatabases(ctx context.Context) Response[[]DatabaseInfo] {
	infos, err := e.datastore.FindAllDatabases(ctx, e.dir)
	return respond(e, domain.OpFindDatabaseMany, infos, err, func() string {
		return fmt.Sprintf("found %d databases in %q", len(infos), e.dir)
	})
}

// FindDatabaseByName looks for a database in [Engine.DatabaseDir]. Data is
// nil if it does not exist.
func (e *Engine) FindDatabaseByName(ctx context.Context, name string) Response[*DatabaseInfo] {
	info, err := e.datastore.FindDatabaseByName(ctx, e.dir, name)
	return respond(e, domain.OpFindDatabaseOne, info, err, func() string {
		return found(info != nil, fmt.Sprintf("database %q", name))
	})
}

// FindDatabaseByPath reads the database at path. Data is nil if the file does
// not exist.
func (e *Engine) FindDatabaseByPath(ctx context.Context, path string) Response[*DatabaseInfo] {
	info, err := e.datastore.FindDatabaseByPath(ctx, path)
	return respond(e, domain.OpFindDatabaseOne, info, err, func() string {
		return found(info != nil, fmt.Sprintf("database at %q", path))
	})
}

// CreateCollection adds an empty collection to the database at path.
func (e *Engine) CreateCollection(ctx context.Context, path string, name string) Response[struct{}] {
	err := e.datastore.CreateCollection(ctx, path, name)
	return respond(e, domain.OpCreateCollection, struct{}{}, err, func() string {
		return fmt.Sprintf("created collection %q in %q", name, path)
	})
}

// DeleteCollection removes an empty collection.
func (e *Engine) DeleteCollection(ctx context.Context, path string, name string) Response[struct{}] {
	err := e.datastore.DeleteCollection(ctx, path, name)
	return respond(e, domain.OpDeleteCollection, struct{}{}, err, func() string {
		return fmt.Sprintf("deleted collection %q in %q", name, path)
	})
}

// FindAllCollections lists the collections of the database at path.
func (e *Engine) FindAllCollections(ctx context.Context, path string) Response[[]CollectionInfo] {
	infos, err := e.datastore.FindAllCollections(ctx, path)
	return respond(e, domain.OpFindCollectionMany, infos, err, func() string {
		return fmt.Sprintf("found %d collections in %q", len(infos), path)
	})
}

// FindCollection looks for a collection. Data is nil if it does not exist.
func (e *Engine) FindCollection(ctx context.Context, path string, name string) Response[*CollectionInfo] {
	info, err := e.datastore.FindCollection(ctx, path, name)
	return respond(e, domain.OpFindCollectionOne, info, err, func() string {
		return found(info != nil, fmt.Sprintf("collection %q in %q", name, path))
	})
}

// CreateDocument parses fields and stores them as a new document.
func (e *Engine) CreateDocument(ctx context.Context, path string, collection string, fields []InputField) Response[Document] {
	doc, err := e.datastore.CreateDocument(ctx, path, collection, fields)
	return respond(e, domain.OpCreateDocument, doc, err, func() string {
		return fmt.Sprintf("created document %d in collection %q of %q", doc.ID, collection, path)
	})
}

// ReplaceDocument overwrites every field of a document.
func (e *Engine) ReplaceDocument(ctx context.Context, path string, id uint64, collection string, fields []InputField) Response[struct{}] {
	err := e.datastore.ReplaceDocument(ctx, path, id, collection, fields)
	return respond(e, domain.OpReplaceDocument, struct{}{}, err, func() string {
		return fmt.Sprintf("replaced document %d in collection %q of %q", id, collection, path)
	})
}

// DeleteDocument removes a document.
func (e *Engine) DeleteDocument(ctx context.Context, path string, id uint64, collection string) Response[struct{}] {
	err := e.datastore.DeleteDocument(ctx, path, id, collection)
	return respond(e, domain.OpDeleteDocument, struct{}{}, err, func() string {
		return fmt.Sprintf("deleted document %d in collection %q of %q", id, collection, path)
	})
}

// DeleteAllDocuments empties a collection. Data is the number of removed
// documents.
func (e *Engine) DeleteAllDocuments(ctx context.Context, path string, collection string) Response[int] {
	n, err := e.datastore.DeleteAllDocuments(ctx, path, collection)
	return respond(e, domain.OpDeleteDocument, n, err, func() string {
		return fmt.Sprintf("deleted %d documents in collection %q of %q", n, collection, path)
	})
}

// FindAllDocuments returns the documents of a collection in insertion order.
func (e *Engine) FindAllDocuments(ctx context.Context, path string, collection string, options ...FindOption) Response[[]Document] {
	docs, err := e.datastore.FindAllDocuments(ctx, path, collection, options...)
	return respond(e, domain.OpFindDocumentMany, docs, err, func() string {
		return fmt.Sprintf("found %d documents in collection %q of %q", len(docs), collection, path)
	})
}

// FindDocumentByID looks for a document. Data is nil if it does not exist.
func (e *Engine) FindDocumentByID(ctx context.Context, path string, id uint64, collection string) Response[*Document] {
	doc, err := e.datastore.FindDocumentByID(ctx, path, id, collection)
	return respond(e, domain.OpFindDocumentOne, doc, err, func() string {
		return found(doc != nil, fmt.Sprintf("document %d in collection %q of %q", id, collection, path))
	})
}

// FindDocuments returns the documents whose fields equal every query field,
// in insertion order.
func (e *Engine) FindDocuments(ctx context.Context, path string, collection string, query []InputField, options ...FindOption) Response[[]Document] {
	docs, err := e.datastore.FindDocuments(ctx, path, collection, query, options...)
	return respond(e, domain.OpFindDocumentMany, docs, err, func() string {
		return fmt.Sprintf("found %d matching documents in collection %q of %q", len(docs), collection, path)
	})
}

// respond builds the response and logs it. event is only called on success.
func respond[T any](e *Engine, op Op, data T, err error, event func() string) Response[T] {
	if err != nil {
		opErr := OperationError{Op: op, Err: err}
		return Response[T]{Error: opErr, LogError: e.logger.Error(opErr.Error())}
	}
	return Response[T]{Success: true, Data: data, LogError: e.logger.Event(event())}
}

func found(ok bool, what string) string {
	if ok {
		return "found " + what
	}
	return what + " not found"
}
