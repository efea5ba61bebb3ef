// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database. Tests call GetTestDBWithT to get a migrated
// connection and WithTx to isolate their writes in a rolled-back
// transaction. When no database URL is configured the tests are skipped.
package testdb
