// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx stdlib driver. Stores accept a store.DBTX so the
// same code runs against a pool or inside a transaction. The schema ships as
// embedded goose migrations.
package postgres
