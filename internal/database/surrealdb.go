package database

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// surrealIDField is the field SurrealDB returns the record id under.
const surrealIDField = "id"

// identifierPattern restricts field, table and database names that are
// interpolated into SurrealQL. Values always travel as bound variables.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SurrealStore implements Store for SurrealDB
type SurrealStore struct {
	db     *surrealdb.DB
	config Config
	logger *slog.Logger
}

// NewSurrealStore creates a new SurrealStore instance
func NewSurrealStore(cfg Config, logger *slog.Logger) *SurrealStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SurrealStore{
		config: cfg,
		logger: logger.With(slog.String("driver", DriverSurrealDB)),
	}
}

// Open establishes a connection to SurrealDB and selects the namespace and database.
func (s *SurrealStore) Open(ctx context.Context) error {
	if s.IsOpen() {
		s.logger.Info("database connection already open",
			slog.String("host", s.config.Host),
			slog.String("database", s.config.Database),
		)
		return nil
	}

	endpoint := "ws://" + net.JoinHostPort(s.config.Host, s.config.Port)

	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		s.db = nil
		return &ConfigurationError{
			Op:     "open",
			Detail: fmt.Sprintf("cannot connect to %s:%s", s.config.Host, s.config.Port),
			Err:    err,
		}
	}

	if s.config.User != "" {
		_, err = db.SignIn(ctx, &surrealdb.Auth{
			Username: s.config.User,
			Password: s.config.Password,
		})
		if err != nil {
			_ = db.Close(ctx)
			s.db = nil
			return &ConfigurationError{
				Op:     "open",
				Detail: fmt.Sprintf("signin failed for %s:%s", s.config.Host, s.config.Port),
				Err:    err,
			}
		}
	}

	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		s.db = nil
		return &ConfigurationError{
			Op:     "open",
			Detail: fmt.Sprintf("cannot bind database %q", s.config.Database),
			Err:    err,
		}
	}

	s.db = db
	s.logger.Info("connected to database",
		slog.String("host", s.config.Host),
		slog.String("port", s.config.Port),
		slog.String("namespace", s.config.Namespace),
		slog.String("database", s.config.Database),
	)
	return nil
}

// Close closes the database connection. The reference is cleared even when
// closing fails.
func (s *SurrealStore) Close(ctx context.Context) error {
	db := s.db
	s.db = nil
	if db == nil {
		return nil
	}
	if err := db.Close(ctx); err != nil {
		return &ConfigurationError{Op: "close", Detail: "close failed", Err: err}
	}
	return nil
}

// IsOpen reports whether a connection with a selected database is held.
func (s *SurrealStore) IsOpen() bool {
	return s.db != nil
}

// Ping checks the database connection
func (s *SurrealStore) Ping(ctx context.Context) error {
	if !s.IsOpen() {
		return NotConnected("ping")
	}
	if _, err := s.db.Version(ctx); err != nil {
		return &OperationError{Op: "ping", Err: err}
	}
	return nil
}

// Find selects documents matching filter from the collection's table.
func (s *SurrealStore) Find(ctx context.Context, collection string, filter Document, opts FindOptions) ([]Result, error) {
	if !s.IsOpen() {
		return nil, NotConnected("find")
	}
	projection, err := surrealProjection(opts)
	if err != nil {
		return nil, &OperationError{Op: "find", Collection: collection, Err: err}
	}
	where, vars, err := surrealWhere(filter)
	if err != nil {
		return nil, &OperationError{Op: "find", Collection: collection, Err: err}
	}
	vars["tb"] = collection

	query := fmt.Sprintf("SELECT %s FROM type::table($tb)%s", projection, where)
	statements, err := s.query(ctx, query, vars)
	if err != nil {
		return nil, &OperationError{Op: "find", Collection: collection, Err: err}
	}

	rows := surrealRows(lastStatement(statements))
	results := make([]Result, 0, len(rows))
	for _, row := range rows {
		results = append(results, splitSurrealRow(row, len(opts.Fields) > 0))
	}
	return results, nil
}

// InsertOne creates a record and returns the record id assigned by SurrealDB.
func (s *SurrealStore) InsertOne(ctx context.Context, collection string, doc Document) (StoreID, error) {
	if !s.IsOpen() {
		return "", NotConnected("insert")
	}
	vars := map[string]interface{}{
		"tb":  collection,
		"doc": surrealValue(map[string]any(doc)),
	}
	statements, err := s.query(ctx, "CREATE type::table($tb) CONTENT $doc", vars)
	if err != nil {
		return "", &OperationError{Op: "insert", Collection: collection, Err: err}
	}
	rows := surrealRows(lastStatement(statements))
	if len(rows) == 0 {
		return "", &OperationError{Op: "insert", Collection: collection, Err: fmt.Errorf("%w: no record returned", ErrQuery)}
	}
	return surrealStoreID(rows[0][surrealIDField]), nil
}

// Upsert replaces the records matching filter, or creates one, inside a
// single transaction.
func (s *SurrealStore) Upsert(ctx context.Context, collection string, filter Document, doc Document) error {
	if !s.IsOpen() {
		return NotConnected("upsert")
	}
	where, vars, err := surrealWhere(filter)
	if err != nil {
		return &OperationError{Op: "upsert", Collection: collection, Err: err}
	}
	if where == "" {
		return &OperationError{Op: "upsert", Collection: collection, Err: fmt.Errorf("%w: upsert requires a filter", ErrInvalidArgument)}
	}
	vars["tb"] = collection
	vars["doc"] = surrealValue(map[string]any(doc))

	tb := NewTxBuilder()
	tb.Add(fmt.Sprintf("LET $hits = (SELECT id FROM type::table($tb)%s)", where))
	tb.Add(fmt.Sprintf(
		"IF array::len($hits) = 0 { CREATE type::table($tb) CONTENT $doc } ELSE { UPDATE type::table($tb) CONTENT $doc%s }",
		where,
	))
	query := tb.Build()

	if _, err := s.query(ctx, query, vars); err != nil {
		return &OperationError{Op: "upsert", Collection: collection, Err: err}
	}
	return nil
}

// DeleteMany deletes the records matching filter.
func (s *SurrealStore) DeleteMany(ctx context.Context, collection string, filter Document) (int64, error) {
	if !s.IsOpen() {
		return 0, NotConnected("delete")
	}
	where, vars, err := surrealWhere(filter)
	if err != nil {
		return 0, &OperationError{Op: "delete", Collection: collection, Err: err}
	}
	vars["tb"] = collection

	query := fmt.Sprintf("DELETE type::table($tb)%s RETURN BEFORE", where)
	statements, err := s.query(ctx, query, vars)
	if err != nil {
		return 0, &OperationError{Op: "delete", Collection: collection, Err: err}
	}
	return int64(len(surrealRows(lastStatement(statements)))), nil
}

// GroupAll runs SELECT ... GROUP ALL, which yields one row for a non-empty
// table and none for an empty one.
func (s *SurrealStore) GroupAll(ctx context.Context, collection string, acc Accumulator) (any, bool, error) {
	if !s.IsOpen() {
		return nil, false, NotConnected("aggregate")
	}
	expr, err := surrealAccumulator(acc)
	if err != nil {
		return nil, false, &OperationError{Op: "aggregate", Collection: collection, Err: err}
	}

	query := fmt.Sprintf("SELECT %s AS %s FROM type::table($tb) GROUP ALL", expr, groupValueField)
	statements, err := s.query(ctx, query, map[string]interface{}{"tb": collection})
	if err != nil {
		return nil, false, &OperationError{Op: "aggregate", Collection: collection, Err: err}
	}

	rows := surrealRows(lastStatement(statements))
	if len(rows) == 0 {
		return nil, false, nil
	}
	value, ok := rows[0][groupValueField]
	if !ok || value == nil {
		return nil, false, nil
	}
	return normalizeSurrealValue(value), true, nil
}

// DropDatabase removes the selected database.
func (s *SurrealStore) DropDatabase(ctx context.Context) error {
	if !s.IsOpen() {
		return NotConnected("drop")
	}
	if !identifierPattern.MatchString(s.config.Database) {
		return &OperationError{Op: "drop", Err: fmt.Errorf("%w: database name %q", ErrInvalidArgument, s.config.Database)}
	}
	if _, err := s.query(ctx, "REMOVE DATABASE "+s.config.Database, nil); err != nil {
		return &OperationError{Op: "drop", Err: err}
	}
	return nil
}

// query executes SurrealQL and returns the result of every statement.
func (s *SurrealStore) query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	results, err := surrealdb.Query[interface{}](ctx, s.db, query, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if results == nil {
		return nil, nil
	}

	output := make([]interface{}, 0, len(*results))
	for _, r := range *results {
		if r.Status != "OK" {
			if r.Error != nil {
				return nil, fmt.Errorf("%w: %s", ErrQuery, r.Error.Message)
			}
			return nil, ErrQuery
		}
		output = append(output, r.Result)
	}
	return output, nil
}

func lastStatement(statements []interface{}) interface{} {
	if len(statements) == 0 {
		return nil
	}
	return statements[len(statements)-1]
}

// surrealRows extracts the record maps from a statement result.
func surrealRows(result interface{}) []map[string]interface{} {
	switch v := result.(type) {
	case []interface{}:
		rows := make([]map[string]interface{}, 0, len(v))
		for _, item := range v {
			if row, ok := item.(map[string]interface{}); ok {
				rows = append(rows, row)
			}
		}
		return rows
	case map[string]interface{}:
		return []map[string]interface{}{v}
	}
	return nil
}

// surrealProjection builds the SELECT list for opts.
func surrealProjection(opts FindOptions) (string, error) {
	if opts.IDOnly {
		return surrealIDField, nil
	}
	if len(opts.Fields) == 0 {
		return "*", nil
	}
	for _, f := range opts.Fields {
		if !identifierPattern.MatchString(f) {
			return "", fmt.Errorf("%w: field name %q", ErrInvalidArgument, f)
		}
	}
	return strings.Join(opts.Fields, ", "), nil
}

// surrealWhere builds a WHERE clause of equality tests joined with AND.
// Field names are validated; values are bound as $f0, $f1, ...
func surrealWhere(filter Document) (string, map[string]interface{}, error) {
	vars := make(map[string]interface{}, len(filter)+2)
	if len(filter) == 0 {
		return "", vars, nil
	}

	fields := make([]string, 0, len(filter))
	for f := range filter {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	clauses := make([]string, 0, len(fields))
	for i, f := range fields {
		if !identifierPattern.MatchString(f) {
			return "", nil, fmt.Errorf("%w: field name %q", ErrInvalidArgument, f)
		}
		name := fmt.Sprintf("f%d", i)
		clauses = append(clauses, fmt.Sprintf("%s = $%s", f, name))
		vars[name] = surrealValue(filter[f])
	}
	return " WHERE " + strings.Join(clauses, " AND "), vars, nil
}

// surrealAccumulator builds the aggregate expression for acc.
func surrealAccumulator(acc Accumulator) (string, error) {
	switch acc.Op {
	case AccumulateMax:
		if !identifierPattern.MatchString(acc.Field) {
			return "", fmt.Errorf("%w: field name %q", ErrInvalidArgument, acc.Field)
		}
		return fmt.Sprintf("math::max(%s)", acc.Field), nil
	case AccumulateCount:
		return "count()", nil
	}
	return "", fmt.Errorf("%w: unknown accumulator %q", ErrInvalidArgument, acc.Op)
}

// splitSurrealRow separates the record id from the document body. The id is
// dropped when the query projected named fields.
func splitSurrealRow(row map[string]interface{}, projected bool) Result {
	var id StoreID
	if v, ok := row[surrealIDField]; ok {
		if !projected {
			id = surrealStoreID(v)
		}
	}
	doc := make(Document, len(row))
	for k, v := range row {
		if k == surrealIDField {
			continue
		}
		doc[k] = normalizeSurrealValue(v)
	}
	return Result{ID: id, Document: doc}
}

// surrealStoreID converts a SurrealDB record id (which may be a complex object) to a StoreID
func surrealStoreID(id interface{}) StoreID {
	switch v := id.(type) {
	case string:
		return StoreID(v)
	case models.RecordID:
		return StoreID(fmt.Sprintf("%s:%v", v.Table, v.ID))
	case *models.RecordID:
		if v != nil {
			return StoreID(fmt.Sprintf("%s:%v", v.Table, v.ID))
		}
		return ""
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if tb, ok := v["tb"].(string); ok {
			return StoreID(fmt.Sprintf("%s:%v", tb, v["id"]))
		}
	case nil:
		return ""
	}
	return StoreID(fmt.Sprintf("%v", id))
}

// surrealValue converts outgoing values to types the SurrealDB CBOR codec
// understands.
func surrealValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return models.CustomDateTime{Time: t}
	case *time.Time:
		if t == nil {
			return nil
		}
		return models.CustomDateTime{Time: *t}
	case Document:
		return surrealValue(map[string]any(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = surrealValue(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = surrealValue(item)
		}
		return out
	}
	return v
}

// normalizeSurrealValue converts decoded CBOR values into the Document value set.
func normalizeSurrealValue(v any) any {
	switch t := v.(type) {
	case uint64:
		return int64(t)
	case uint32:
		return int64(t)
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case float32:
		return float64(t)
	case models.CustomDateTime:
		return t.Time.UTC()
	case *models.CustomDateTime:
		if t == nil {
			return nil
		}
		return t.Time.UTC()
	case models.RecordID, *models.RecordID:
		return string(surrealStoreID(t))
	case []interface{}:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeSurrealValue(item)
		}
		return out
	case map[string]interface{}:
		out := make(Document, len(t))
		for k, item := range t {
			out[k] = normalizeSurrealValue(item)
		}
		return out
	}
	return v
}
