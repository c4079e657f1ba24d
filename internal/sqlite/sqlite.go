// Package sqlite opens and prepares the application database.
package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/ahertta/readyday/internal/errors"

	_ "embed"
)

//go:embed schema.sql
var schemaDefinition string

// Database bundles a read-write and a read-only connection pool.
//
// Separate pools are a go-sqlite3 best practice: a single read-write
// connection with immediate transactions avoids SQLITE_BUSY under write load
// while reads scale over their own pool.
// See https://github.com/mattn/go-sqlite3/issues/1179#issuecomment-1638083995
type Database struct {
	ReadWrite *sql.DB
	ReadOnly  *sql.DB
	logger    *slog.Logger
}

//nolint:gochecknoglobals // guards one-time driver registration.
var once sync.Once

const optimizedDriver = "sqlite3optimized"

// registerOptimizedDriver registers a driver that applies performance pragmas
// on every new connection.
func registerOptimizedDriver() {
	sql.Register(optimizedDriver,
		&sqlite3.SQLiteDriver{
			Extensions: nil,
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				if _, err := conn.Exec(
					// Keep temporary tables and indices in memory.
					"PRAGMA temp_store = memory;"+
						// Reduce syscalls with memory-mapped I/O.
						"PRAGMA mmap_size = 268435456;", nil); err != nil {
					return errors.Wrap(err, "exec optimization pragmas")
				}
				return nil
			},
		})
}

// NewDatabase connects to the SQLite database at url and applies the schema.
//
// Use ":memory:" for an ephemeral in-memory database.
func NewDatabase(ctx context.Context, url string, logger *slog.Logger) (*Database, error) {
	db, err := connect(ctx, url, logger)
	if err != nil {
		return nil, errors.Wrap(err, "connect")
	}

	if _, err = db.ReadWrite.ExecContext(ctx, schemaDefinition); err != nil {
		return nil, errors.Wrap(err, "apply schema")
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "applied database schema")

	return db, nil
}

func connect(ctx context.Context, url string, logger *slog.Logger) (*Database, error) {
	var err error

	// In-memory databases need shared cache mode so that both pools see the
	// same data. A random filename keeps parallel tests isolated.
	// See https://www.sqlite.org/inmemorydb.html.
	inMemoryConfig := ""
	if strings.Contains(url, ":memory:") {
		url = "file:" + rand.Text()
		inMemoryConfig = "mode=memory&cache=shared"
	}
	commonConfig := strings.Join([]string{
		// Uses current time.Location for timestamps.
		"_loc=auto",
		// Write-ahead logging enables concurrent readers.
		"_journal_mode=wal",
		// Avoids SQLITE_BUSY errors when the database is under load.
		"_busy_timeout=5000",
		// Increases performance at an acceptable durability cost.
		"_synchronous=normal",
		// Enables foreign key constraints.
		"_foreign_keys=on",
	}, "&")

	// Options prefixed with underscore are go-sqlite3 connection parameters,
	// the rest are SQLite URI parameters (https://www.sqlite.org/uri.html).
	readConfig := "file:" + url + "?mode=ro&_txlock=deferred&_query_only=true&" + commonConfig + "&" + inMemoryConfig
	readWriteConfig := "file:" + url + "?mode=rwc&_txlock=immediate&" + commonConfig + "&" + inMemoryConfig

	once.Do(registerOptimizedDriver)

	var readWriteDB *sql.DB
	if readWriteDB, err = sql.Open(optimizedDriver, readWriteConfig); err != nil {
		return nil, errors.Wrap(err, "open read-write database")
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "opened database", slog.String("sqlDsn", readWriteConfig))

	readWriteDB.SetMaxOpenConns(1)
	readWriteDB.SetMaxIdleConns(1)
	readWriteDB.SetConnMaxLifetime(time.Hour)
	readWriteDB.SetConnMaxIdleTime(time.Hour)

	// sql.DB is lazy, ping to establish the connection.
	if err = readWriteDB.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "ping read-write database")
	}

	var readDB *sql.DB
	if readDB, err = sql.Open(optimizedDriver, readConfig); err != nil {
		return nil, errors.Wrap(err, "open read-only database")
	}

	maxReadConns := 10
	readDB.SetMaxOpenConns(maxReadConns)
	readDB.SetMaxIdleConns(maxReadConns)
	readDB.SetConnMaxLifetime(time.Hour)
	readDB.SetConnMaxIdleTime(time.Hour)

	return &Database{
		ReadWrite: readWriteDB,
		ReadOnly:  readDB,
		logger:    logger,
	}, nil
}

// Close closes both connection pools.
func (db *Database) Close() error {
	return errors.Join(db.ReadOnly.Close(), db.ReadWrite.Close())
}
