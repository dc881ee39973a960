package database

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// mongoIDField is the field MongoDB stores its document identifier under.
const mongoIDField = "_id"

// MongoStore implements Store for MongoDB
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	config Config
	logger *slog.Logger
}

// NewMongoStore creates a new MongoStore instance. The store is not
// connected until Open is called.
func NewMongoStore(cfg Config, logger *slog.Logger) *MongoStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &MongoStore{
		config: cfg,
		logger: logger.With(slog.String("driver", DriverMongo)),
	}
}

// uri builds the connection string for the configured host and port.
func (s *MongoStore) uri() string {
	u := url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(s.config.Host, s.config.Port),
	}
	if s.config.User != "" {
		u.User = url.UserPassword(s.config.User, s.config.Password)
	}
	return u.String()
}

// Open connects to MongoDB and binds the configured database.
func (s *MongoStore) Open(ctx context.Context) error {
	if s.IsOpen() {
		s.logger.Info("database connection already open",
			slog.String("host", s.config.Host),
			slog.String("database", s.config.Database),
		)
		return nil
	}

	opts := options.Client().
		ApplyURI(s.uri()).
		SetWriteConcern(writeconcern.Journaled())
	if s.config.ConnectTimeout > 0 {
		opts.SetConnectTimeout(s.config.ConnectTimeout)
		opts.SetServerSelectionTimeout(s.config.ConnectTimeout)
	}

	connectErr := func(err error) error {
		s.client, s.db = nil, nil
		return &ConfigurationError{
			Op:     "open",
			Detail: fmt.Sprintf("cannot connect to %s:%s", s.config.Host, s.config.Port),
			Err:    err,
		}
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return connectErr(err)
	}
	// The driver connects lazily.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return connectErr(err)
	}

	db := client.Database(s.config.Database)
	if err := db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		_ = client.Disconnect(ctx)
		s.client, s.db = nil, nil
		return &ConfigurationError{
			Op:     "open",
			Detail: fmt.Sprintf("cannot bind database %q", s.config.Database),
			Err:    err,
		}
	}

	s.client, s.db = client, db
	s.logger.Info("connected to database",
		slog.String("host", s.config.Host),
		slog.String("port", s.config.Port),
		slog.String("database", s.config.Database),
	)
	return nil
}

// Close disconnects the client. References are cleared even when the
// disconnect fails.
func (s *MongoStore) Close(ctx context.Context) error {
	client := s.client
	s.client, s.db = nil, nil
	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		return &ConfigurationError{Op: "close", Detail: "disconnect failed", Err: err}
	}
	return nil
}

// IsOpen reports whether both the client and the database are bound.
func (s *MongoStore) IsOpen() bool {
	return s.client != nil && s.db != nil
}

// Ping checks the database connection
func (s *MongoStore) Ping(ctx context.Context) error {
	if !s.IsOpen() {
		return NotConnected("ping")
	}
	if err := s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return &OperationError{Op: "ping", Err: err}
	}
	return nil
}

// Find executes a find with an equality filter.
func (s *MongoStore) Find(ctx context.Context, collection string, filter Document, opts FindOptions) ([]Result, error) {
	if !s.IsOpen() {
		return nil, NotConnected("find")
	}

	findOpts := options.Find()
	if projection := mongoProjection(opts); projection != nil {
		findOpts.SetProjection(projection)
	}

	cur, err := s.db.Collection(collection).Find(ctx, mongoFilter(filter), findOpts)
	if err != nil {
		return nil, &OperationError{Op: "find", Collection: collection, Err: err}
	}
	defer func() { _ = cur.Close(ctx) }()

	var results []Result
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, &OperationError{Op: "find", Collection: collection, Err: err}
		}
		results = append(results, splitMongoDocument(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, &OperationError{Op: "find", Collection: collection, Err: err}
	}
	return results, nil
}

// InsertOne inserts doc and returns the ObjectID assigned by the server.
func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc Document) (StoreID, error) {
	if !s.IsOpen() {
		return "", NotConnected("insert")
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", &OperationError{Op: "insert", Collection: collection, Err: err}
	}
	return mongoStoreID(res.InsertedID), nil
}

// Upsert replaces the first document matching filter, creating it when
// nothing matches.
func (s *MongoStore) Upsert(ctx context.Context, collection string, filter Document, doc Document) error {
	if !s.IsOpen() {
		return NotConnected("upsert")
	}
	_, err := s.db.Collection(collection).ReplaceOne(ctx, mongoFilter(filter), bson.M(doc),
		options.Replace().SetUpsert(true))
	if err != nil {
		return &OperationError{Op: "upsert", Collection: collection, Err: err}
	}
	return nil
}

// DeleteMany removes every document matching filter.
func (s *MongoStore) DeleteMany(ctx context.Context, collection string, filter Document) (int64, error) {
	if !s.IsOpen() {
		return 0, NotConnected("delete")
	}
	res, err := s.db.Collection(collection).DeleteMany(ctx, mongoFilter(filter))
	if err != nil {
		return 0, &OperationError{Op: "delete", Collection: collection, Err: err}
	}
	return res.DeletedCount, nil
}

// GroupAll runs a single $group stage with a null grouping key.
func (s *MongoStore) GroupAll(ctx context.Context, collection string, acc Accumulator) (any, bool, error) {
	if !s.IsOpen() {
		return nil, false, NotConnected("aggregate")
	}
	pipeline, err := mongoGroupPipeline(acc)
	if err != nil {
		return nil, false, &OperationError{Op: "aggregate", Collection: collection, Err: err}
	}

	cur, err := s.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, false, &OperationError{Op: "aggregate", Collection: collection, Err: err}
	}
	defer func() { _ = cur.Close(ctx) }()

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, false, &OperationError{Op: "aggregate", Collection: collection, Err: err}
		}
		return nil, false, nil
	}
	var raw bson.M
	if err := cur.Decode(&raw); err != nil {
		return nil, false, &OperationError{Op: "aggregate", Collection: collection, Err: err}
	}
	value, ok := raw[groupValueField]
	if !ok || value == nil {
		return nil, false, nil
	}
	return normalizeMongoValue(value), true, nil
}

// DropDatabase removes the bound database.
func (s *MongoStore) DropDatabase(ctx context.Context) error {
	if !s.IsOpen() {
		return NotConnected("drop")
	}
	if err := s.db.Drop(ctx); err != nil {
		return &OperationError{Op: "drop", Err: err}
	}
	return nil
}

// groupValueField names the accumulated value in a grouping result.
const groupValueField = "value"

// mongoGroupPipeline builds the single-stage pipeline for acc.
func mongoGroupPipeline(acc Accumulator) (mongo.Pipeline, error) {
	var expr bson.D
	switch acc.Op {
	case AccumulateMax:
		if acc.Field == "" {
			return nil, fmt.Errorf("%w: max requires a field", ErrInvalidArgument)
		}
		expr = bson.D{{Key: "$max", Value: "$" + acc.Field}}
	case AccumulateCount:
		expr = bson.D{{Key: "$sum", Value: 1}}
	default:
		return nil, fmt.Errorf("%w: unknown accumulator %q", ErrInvalidArgument, acc.Op)
	}
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: mongoIDField, Value: nil},
			{Key: groupValueField, Value: expr},
		}}},
	}, nil
}

// mongoProjection translates FindOptions into a projection document.
// nil means the whole document.
func mongoProjection(opts FindOptions) bson.D {
	if opts.IDOnly {
		return bson.D{{Key: mongoIDField, Value: 1}}
	}
	if len(opts.Fields) == 0 {
		return nil
	}
	projection := bson.D{{Key: mongoIDField, Value: 0}}
	for _, f := range opts.Fields {
		projection = append(projection, bson.E{Key: f, Value: 1})
	}
	return projection
}

func mongoFilter(filter Document) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return bson.M(filter)
}

// splitMongoDocument separates the ObjectID from the document body and
// normalizes driver types.
func splitMongoDocument(raw bson.M) Result {
	var id StoreID
	if v, ok := raw[mongoIDField]; ok {
		id = mongoStoreID(v)
		delete(raw, mongoIDField)
	}
	doc := make(Document, len(raw))
	for k, v := range raw {
		doc[k] = normalizeMongoValue(v)
	}
	return Result{ID: id, Document: doc}
}

func mongoStoreID(v any) StoreID {
	switch id := v.(type) {
	case primitive.ObjectID:
		return StoreID(id.Hex())
	case string:
		return StoreID(id)
	case nil:
		return ""
	}
	return StoreID(fmt.Sprintf("%v", v))
}

// normalizeMongoValue converts driver-specific values into the Document
// value set.
func normalizeMongoValue(v any) any {
	switch t := v.(type) {
	case int32:
		return int64(t)
	case int:
		return int64(t)
	case float32:
		return float64(t)
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC()
	case primitive.ObjectID:
		return t.Hex()
	case primitive.A:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeMongoValue(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeMongoValue(item)
		}
		return out
	case bson.M:
		out := make(Document, len(t))
		for k, item := range t {
			out[k] = normalizeMongoValue(item)
		}
		return out
	case bson.D:
		out := make(Document, len(t))
		for _, e := range t {
			out[e.Key] = normalizeMongoValue(e.Value)
		}
		return out
	}
	return v
}
