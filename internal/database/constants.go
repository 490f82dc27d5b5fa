package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 1

	// DefaultMaxConnections is used when no pool size is configured
	DefaultMaxConnections = 4

	// RuntimeParamApplicationName tags connections in pg_stat_activity
	RuntimeParamApplicationName = "application_name"

	// MigrationsDir is the directory inside the embedded migrations filesystem
	MigrationsDir = "migrations"

	// Dialect is the goose dialect for PostgreSQL
	Dialect = "postgres"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToSetDialect      = "failed to set migration dialect"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
