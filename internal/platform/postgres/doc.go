// Package postgres contains the PostgreSQL implementations of the store
// interfaces defined in internal/store. Each store accepts a DBTX so it can
// run against either a connection pool or a transaction managed by the caller.
package postgres
