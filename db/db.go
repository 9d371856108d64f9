package db

import "context"

// DBType is the DB_TYPE setting. Postgres and SQLite share the SQL repositories and migrations.
type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
	SQLite   DBType = "sqlite3"
	Memory   DBType = "memory"
)

// DB is a backend connection opened at startup and closed on shutdown.
type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
