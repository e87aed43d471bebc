// Package store is the authoritative-store concern: Postgres connection
// management, schema migrations, and the transactional batch writer that
// is the only component allowed to assign recordId (spec §4.4, §5).
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/logstream/pipeline/internal/config"
)

// Driver is the registered database/sql driver name, mirroring the
// teacher's repository.Driver constant.
const Driver = "postgres"

// ConnectDB opens and pings a Postgres connection pool.
func ConnectDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	dsn := cfg.DSN()
	db, err := sql.Open(Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db.Ping: %w", err)
	}
	return db, nil
}
