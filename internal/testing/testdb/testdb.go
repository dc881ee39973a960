package testdb

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/forgo/gamesdb/internal/database"
)

// TestDB provides an isolated database for testing. Each TestDB instance
// gets a unique database name, and for SurrealDB a unique namespace.
type TestDB struct {
	Store     database.Store
	Driver    string
	Namespace string
	Database  string
	t         *testing.T
	closeOnce sync.Once
}

// getTestConfig returns database config from the environment. ok is false
// when TEST_DB_HOST is not set.
func getTestConfig() (cfg database.Config, ok bool) {
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		return database.Config{}, false
	}

	driver := os.Getenv("TEST_DB_DRIVER")
	if driver == "" {
		driver = database.DriverMongo
	}

	port := os.Getenv("TEST_DB_PORT")
	if port == "" {
		if driver == database.DriverSurrealDB {
			port = "8000"
		} else {
			port = "27017"
		}
	}

	return database.Config{
		Driver:         driver,
		Host:           host,
		Port:           port,
		User:           os.Getenv("TEST_DB_USER"),
		Password:       os.Getenv("TEST_DB_PASSWORD"),
		ConnectTimeout: 5 * time.Second,
	}, true
}

// uniqueName generates a database name for test isolation
func uniqueName() string {
	return "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// New opens an isolated test database, skipping the test when no database
// server is configured. The database is dropped when the test finishes.
func New(t *testing.T) *TestDB {
	t.Helper()

	cfg, ok := getTestConfig()
	if !ok {
		t.Skip("testdb: TEST_DB_HOST not set, skipping integration test")
	}

	name := uniqueName()
	cfg.Database = name
	if cfg.Driver == database.DriverSurrealDB {
		cfg.Namespace = name
	}

	store, err := database.NewStore(cfg, nil)
	if err != nil {
		t.Fatalf("testdb: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := store.Open(ctx); err != nil {
		t.Fatalf("testdb: failed to connect: %v", err)
	}

	tdb := &TestDB{
		Store:     store,
		Driver:    cfg.Driver,
		Namespace: cfg.Namespace,
		Database:  name,
		t:         t,
	}
	t.Cleanup(tdb.Close)
	return tdb
}

// Close drops the test database and disconnects. It is safe to call more
// than once.
func (tdb *TestDB) Close() {
	tdb.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if d, ok := tdb.Store.(database.Dropper); ok && tdb.Store.IsOpen() {
			if err := d.DropDatabase(ctx); err != nil {
				tdb.t.Logf("testdb: warning - failed to drop %s: %v", tdb.Database, err)
			}
		}
		if err := tdb.Store.Close(ctx); err != nil {
			tdb.t.Logf("testdb: warning - close failed: %v", err)
		}
	})
}

// Ctx returns a context with a reasonable timeout for test operations.
func (tdb *TestDB) Ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tdb.t.Cleanup(cancel)
	return ctx
}

// MustCount returns the number of documents in collection matching filter,
// failing the test on error.
func (tdb *TestDB) MustCount(collection string, filter database.Document) int {
	tdb.t.Helper()
	results, err := tdb.Store.Find(tdb.Ctx(), collection, filter, database.FindOptions{IDOnly: true})
	if err != nil {
		tdb.t.Fatalf("testdb: find in %s failed: %v", collection, err)
	}
	return len(results)
}

// MustInsertRaw stores doc without any key resolution, failing the test on
// error. It is used to plant duplicate keys.
func (tdb *TestDB) MustInsertRaw(collection string, doc database.Document) database.StoreID {
	tdb.t.Helper()
	id, err := tdb.Store.InsertOne(tdb.Ctx(), collection, doc)
	if err != nil {
		tdb.t.Fatalf("testdb: %v", fmt.Errorf("insert into %s: %w", collection, err))
	}
	return id
}
