package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"weather-export/internal/errors"

	_ "modernc.org/sqlite"
)

// DefaultTable is the relation the collector writes readings into
const DefaultTable = "weather"

// Repository defines the read operations the export needs from the store
type Repository interface {
	// ReadingsInRange returns readings with start <= timestamp < end, ascending by timestamp
	ReadingsInRange(ctx context.Context, start, end time.Time) ([]*Reading, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db    *sql.DB
	table string
}

// ReadOnlyDSN builds a URI that opens path read-only, so a missing store
// is reported instead of being created empty. Characters with meaning in a
// URI, such as '?', '#' and '%', are percent-encoded.
func ReadOnlyDSN(path string) string {
	u := &url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(path),
		OmitHost: true,
		RawQuery: "mode=ro",
	}
	return u.String()
}

// New opens the store at dbPath read-only and verifies the connection
func New(ctx context.Context, dbPath string, table string) (*SQLiteRepository, error) {
	if table == "" {
		table = DefaultTable
	}

	db, err := sql.Open("sqlite", ReadOnlyDSN(dbPath))
	if err != nil {
		return nil, errors.NewStoreError("open store", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.NewStoreError("open store", err).WithContext("path", dbPath)
	}

	return &SQLiteRepository{db: db, table: table}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// ReadingsInRange retrieves readings in the half-open interval [start, end).
// Bounds are compared as text, so stored timestamps must share BoundLayout.
func (r *SQLiteRepository) ReadingsInRange(ctx context.Context, start, end time.Time) ([]*Reading, error) {
	// table is validated as a plain identifier by config before reaching here
	query := fmt.Sprintf(`
	SELECT CAST(timestamp AS TEXT), temp_c, temp_f, pressure_hpa, humidity
	FROM %q
	WHERE timestamp >= ?
	  AND timestamp < ?
	ORDER BY timestamp ASC`, r.table)

	return QueryMultiple(ctx, r.db, query, ScanReadings, "readings", FormatBoundForDB(start), FormatBoundForDB(end))
}
