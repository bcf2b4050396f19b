package main

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/vinicius-lino-figueiredo/filedb"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/config"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

type command struct {
	name    string
	args    []string
	help    string
	needsDB bool
	quit    bool
	run     func(s *Shell, ctx context.Context, args []string) error
}

func (c command) usage() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}

var commands []command

func init() {
	key := "{" + strings.Join(config.Keys, "|") + "}"
	commands = []command{
		{name: "/help", help: "List commands", run: (*Shell).help},
		{name: "/q", help: "Quit", quit: true},
		{name: "/status", help: "Show the connected database", run: (*Shell).status},
		{name: "/version", help: "Show the filedb version", run: (*Shell).version},
		{name: "/connect db name", help: "Connect to a database in the databases directory", run: (*Shell).connectByName},
		{name: "/connect db file_path", help: "Connect to a database file anywhere", run: (*Shell).connectByPath},
		{name: "/get dbs", help: "List databases in the databases directory", run: (*Shell).getDatabases},
		{name: "/create db", help: "Create a database", run: (*Shell).createDatabase},
		{name: "/delete db", help: "Delete the connected database", needsDB: true, run: (*Shell).deleteDatabase},
		{name: "/change db desc", help: "Change the description of the connected database", needsDB: true, run: (*Shell).changeDescription},
		{name: "/get cols", help: "List collections", needsDB: true, run: (*Shell).getCollections},
		{name: "/create col", help: "Create a collection", needsDB: true, run: (*Shell).createCollection},
		{name: "/delete col", help: "Delete an empty collection", needsDB: true, run: (*Shell).deleteCollection},
		{name: "/get all docs", help: "List every document of a collection", needsDB: true, run: (*Shell).getAllDocuments},
		{name: "/get docs", help: "List documents matching field values", needsDB: true, run: (*Shell).getDocuments},
		{name: "/get doc", help: "Show a document by id", needsDB: true, run: (*Shell).getDocument},
		{name: "/create doc", help: "Create a document", needsDB: true, run: (*Shell).createDocument},
		{name: "/replace doc", help: "Replace every field of a document", needsDB: true, run: (*Shell).replaceDocument},
		{name: "/delete doc", help: "Delete a document", needsDB: true, run: (*Shell).deleteDocument},
		{name: "/config get", args: []string{key}, help: "Show a configuration value", run: (*Shell).configGet},
		{name: "/config set", args: []string{key}, help: "Change a configuration value, applied on restart", run: (*Shell).configSet},
	}
}

// lookup finds the command with the longest name matching the first tokens.
// The remaining tokens are returned as arguments.
func lookup(tokens []string) (command, []string, bool) {
	var (
		best command
		n    int
	)
	for _, c := range commands {
		name := strings.Fields(c.name)
		if len(name) > len(tokens) || len(name) <= n {
			continue
		}
		if slices.Equal(name, tokens[:len(name)]) {
			best, n = c, len(name)
		}
	}
	return best, tokens[n:], n > 0
}

func (s *Shell) help(context.Context, []string) error {
	for _, c := range commands {
		fmt.Fprintf(s.out, "  %-28s %s\n", c.usage(), c.help)
	}
	return nil
}

func (s *Shell) status(context.Context, []string) error {
	if s.conn == nil {
		fmt.Fprintln(s.out, "Not connected to a database.")
	} else {
		fmt.Fprintf(s.out, "Connected to database %q at %s\n", s.conn.name, s.conn.path)
	}
	fmt.Fprintf(s.out, "Databases directory: %s\n", s.engine.DatabaseDir())
	return nil
}

func (s *Shell) version(context.Context, []string) error {
	fmt.Fprintln(s.out, "filedb", version)
	return nil
}

func (s *Shell) connectByName(ctx context.Context, _ []string) error {
	name, err := s.ask("Database name")
	if err != nil {
		return err
	}
	s.connect(s.engine.FindDatabaseByName(ctx, strings.TrimSpace(name)))
	return nil
}

func (s *Shell) connectByPath(ctx context.Context, _ []string) error {
	path, err := s.ask("Database file path")
	if err != nil {
		return err
	}
	s.connect(s.engine.FindDatabaseByPath(ctx, strings.TrimSpace(path)))
	return nil
}

func (s *Shell) connect(r filedb.Response[*filedb.DatabaseInfo]) {
	if !report(s, r) {
		return
	}
	if r.Data == nil {
		fmt.Fprintln(s.out, "Database not found.")
		return
	}
	s.conn = &connection{name: r.Data.Name, path: r.Data.Path}
	fmt.Fprintf(s.out, "Connected to database %q.\n", r.Data.Name)
}

func (s *Shell) getDatabases(ctx context.Context, _ []string) error {
	r := s.engine.FindAllDatabases(ctx)
	if !report(s, r) {
		return nil
	}
	if len(r.Data) == 0 {
		fmt.Fprintln(s.out, "No databases found.")
		return nil
	}
	for _, info := range r.Data {
		printDatabase(s, info)
	}
	return nil
}

func printDatabase(s *Shell, info filedb.DatabaseInfo) {
	fmt.Fprintf(s.out, "%s\n  description: %s\n  size: %d bytes\n  path: %s\n",
		info.Name, info.Description, info.Size, info.Path)
}

func (s *Shell) createDatabase(ctx context.Context, _ []string) error {
	name, err := s.ask("Database name")
	if err != nil {
		return err
	}
	dir, err := s.ask("Directory (empty for " + s.engine.DatabaseDir() + ")")
	if err != nil {
		return err
	}
	name, dir = strings.TrimSpace(name), strings.TrimSpace(dir)

	var r filedb.Response[filedb.DatabaseInfo]
	if dir == "" {
		r = s.engine.CreateDatabase(ctx, name)
	} else {
		r = s.engine.CreateDatabaseByPath(ctx, name, dir)
	}
	if report(s, r) {
		fmt.Fprintf(s.out, "Database %q created at %s\n", r.Data.Name, r.Data.Path)
	}
	return nil
}

func (s *Shell) deleteDatabase(ctx context.Context, _ []string) error {
	ok, err := s.confirm(fmt.Sprintf("Delete database %q and all its data?", s.conn.name))
	if err != nil || !ok {
		return err
	}
	if report(s, s.engine.DeleteDatabase(ctx, s.conn.path)) {
		fmt.Fprintln(s.out, "Database deleted.")
	}
	return nil
}

func (s *Shell) changeDescription(ctx context.Context, _ []string) error {
	desc, err := s.ask("New description")
	if err != nil {
		return err
	}
	if report(s, s.engine.ChangeDescription(ctx, s.conn.path, desc)) {
		fmt.Fprintln(s.out, "Description changed.")
	}
	return nil
}

func (s *Shell) getCollections(ctx context.Context, _ []string) error {
	r := s.engine.FindAllCollections(ctx, s.conn.path)
	if !report(s, r) {
		return nil
	}
	if len(r.Data) == 0 {
		fmt.Fprintln(s.out, "No collections found.")
		return nil
	}
	for _, c := range r.Data {
		fmt.Fprintln(s.out, c.Name)
	}
	return nil
}

func (s *Shell) createCollection(ctx context.Context, _ []string) error {
	name, err := s.ask("Collection name")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if report(s, s.engine.CreateCollection(ctx, s.conn.path, name)) {
		fmt.Fprintf(s.out, "Collection %q created.\n", name)
	}
	return nil
}

func (s *Shell) deleteCollection(ctx context.Context, _ []string) error {
	name, err := s.ask("Collection name")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	ok, err := s.confirm(fmt.Sprintf("Delete collection %q?", name))
	if err != nil || !ok {
		return err
	}
	if report(s, s.engine.DeleteCollection(ctx, s.conn.path, name)) {
		fmt.Fprintf(s.out, "Collection %q deleted.\n", name)
	}
	return nil
}

func (s *Shell) getAllDocuments(ctx context.Context, _ []string) error {
	col, err := s.ask("Collection name")
	if err != nil {
		return err
	}
	s.printDocuments(s.engine.FindAllDocuments(ctx, s.conn.path, strings.TrimSpace(col)))
	return nil
}

func (s *Shell) getDocuments(ctx context.Context, _ []string) error {
	col, err := s.ask("Collection name")
	if err != nil {
		return err
	}
	query, err := s.readFields("the values to look for")
	if err != nil {
		return err
	}
	s.printDocuments(s.engine.FindDocuments(ctx, s.conn.path, strings.TrimSpace(col), query))
	return nil
}

func (s *Shell) getDocument(ctx context.Context, _ []string) error {
	col, id, ok, err := s.askDocument()
	if err != nil || !ok {
		return err
	}
	r := s.engine.FindDocumentByID(ctx, s.conn.path, id, col)
	if !report(s, r) {
		return nil
	}
	if r.Data == nil {
		fmt.Fprintln(s.out, "Document not found.")
		return nil
	}
	printDocument(s, *r.Data)
	return nil
}

func (s *Shell) createDocument(ctx context.Context, _ []string) error {
	col, err := s.ask("Collection name")
	if err != nil {
		return err
	}
	fields, err := s.readFields("the document fields")
	if err != nil {
		return err
	}
	r := s.engine.CreateDocument(ctx, s.conn.path, strings.TrimSpace(col), fields)
	if report(s, r) {
		fmt.Fprintf(s.out, "Document %d created.\n", r.Data.ID)
	}
	return nil
}

func (s *Shell) replaceDocument(ctx context.Context, _ []string) error {
	col, id, ok, err := s.askDocument()
	if err != nil || !ok {
		return err
	}
	fields, err := s.readFields("the new document fields")
	if err != nil {
		return err
	}
	ok, err = s.confirm(fmt.Sprintf("Replace every field of document %d?", id))
	if err != nil || !ok {
		return err
	}
	if report(s, s.engine.ReplaceDocument(ctx, s.conn.path, id, col, fields)) {
		fmt.Fprintf(s.out, "Document %d replaced.\n", id)
	}
	return nil
}

func (s *Shell) deleteDocument(ctx context.Context, _ []string) error {
	col, id, ok, err := s.askDocument()
	if err != nil || !ok {
		return err
	}
	ok, err = s.confirm(fmt.Sprintf("Delete document %d?", id))
	if err != nil || !ok {
		return err
	}
	if report(s, s.engine.DeleteDocument(ctx, s.conn.path, id, col)) {
		fmt.Fprintf(s.out, "Document %d deleted.\n", id)
	}
	return nil
}

func (s *Shell) configGet(_ context.Context, args []string) error {
	value, err := s.config.Get(args[0])
	if err != nil {
		s.printErr(err)
		return nil
	}
	fmt.Fprintf(s.out, "%s = %s\n", args[0], value)
	return nil
}

func (s *Shell) configSet(_ context.Context, args []string) error {
	value, err := s.ask("New value for " + args[0])
	if err != nil {
		return err
	}
	if err := s.config.Set(args[0], strings.TrimSpace(value)); err != nil {
		s.printErr(err)
		return nil
	}
	fmt.Fprintln(s.out, "Saved. Restart filedb to apply the change.")
	return nil
}

// askDocument reads a collection name and a document id. ok is false if the id
// is not a number.
func (s *Shell) askDocument() (col string, id uint64, ok bool, err error) {
	col, err = s.ask("Collection name")
	if err != nil {
		return "", 0, false, err
	}
	text, err := s.ask("Document id")
	if err != nil {
		return "", 0, false, err
	}
	id, err = strconv.ParseUint(strings.TrimSpace(text), 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Error: invalid document id %q\n", text)
		return "", 0, false, nil
	}
	return strings.TrimSpace(col), id, true, nil
}

// readFields asks for fields until an empty name is given.
func (s *Shell) readFields(what string) ([]filedb.InputField, error) {
	kinds := make([]string, 0, len(domain.Kinds()))
	for _, k := range domain.Kinds() {
		kinds = append(kinds, k.String())
	}
	typeLabel := "Type (" + strings.Join(kinds, ", ") + ")"

	fmt.Fprintf(s.out, "Enter %s. Leave the field name empty to finish.\n", what)
	var fields []filedb.InputField
	for {
		name, err := s.ask("Field name")
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return fields, nil
		}
		typ, err := s.ask(typeLabel)
		if err != nil {
			return nil, err
		}
		value, err := s.ask("Value")
		if err != nil {
			return nil, err
		}
		fields = append(fields, filedb.InputField{Name: name, Type: strings.TrimSpace(typ), Value: value})
	}
}

func (s *Shell) printDocuments(r filedb.Response[[]filedb.Document]) {
	if !report(s, r) {
		return
	}
	if len(r.Data) == 0 {
		fmt.Fprintln(s.out, "No documents found.")
		return
	}
	for _, doc := range r.Data {
		printDocument(s, doc)
	}
}

// printDocument prints fields sorted by name.
func printDocument(s *Shell, doc filedb.Document) {
	fmt.Fprintf(s.out, "Document %d\n", doc.ID)
	for _, name := range slices.Sorted(maps.Keys(doc.Data)) {
		v := doc.Data[name]
		fmt.Fprintf(s.out, "  %s (%s): %s\n", name, v.Kind(), v)
	}
}
