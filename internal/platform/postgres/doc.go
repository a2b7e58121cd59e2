// Package postgres provides PostgreSQL implementations of the store
// interfaces, including the mapping of database errors to store sentinels.
package postgres
