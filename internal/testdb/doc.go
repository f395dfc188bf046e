// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Tests connect with Open, which skips the test when
// COURSELIB_TEST_DATABASE_URL is unset and applies the embedded migrations
// otherwise. WithTx runs a test body inside a transaction that is always
// rolled back, so tests can share one database without cleaning up:
//
//	func TestCourseStore(t *testing.T) {
//	    db := testdb.Open(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        courses := postgres.NewPostgresCourseStore(tx, nil)
//	        // ...
//	    })
//	}
package testdb
