package common

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// DBOptions tunes the connection pool behind *sql.DB.
type DBOptions struct {
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

// NewDB opens a postgres connection pool for the given connection string and
// checks that the database is reachable.
func NewDB(URI string, opts DBOptions) (*sql.DB, error) {
	return connectDB(URI, opts.MaxOpenConns, opts.MaxIdleConns, opts.MaxIdleTime)
}

// connectDB connects to the database and returns the connection
func connectDB(URI string, maxOpenConns int, maxIdleConns int, maxIdleTime time.Duration) (*sql.DB, error) {
	db, err := sql.Open("postgres", URI)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxIdleTime(maxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// CloseDB closes the database connection
func CloseDB(db *sql.DB) error {
	return db.Close()
}
