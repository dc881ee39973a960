// Package testdb provides database utilities for integration tests.
//
// Tests run against a real MongoDB or SurrealDB server selected through
// the environment:
//
//	TEST_DB_HOST      - server host; tests are skipped when unset
//	TEST_DB_DRIVER    - mongo (default) or surrealdb
//	TEST_DB_PORT      - defaults to 27017 for mongo, 8000 for surrealdb
//	TEST_DB_USER      - optional
//	TEST_DB_PASSWORD  - optional
//
// Each call to New gets its own database, named test_<uuid>, which is
// dropped when the test finishes:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    games := repository.NewGamesDatabase(tdb.Store, nil, nil)
//	    ...
//	}
package testdb
