// Package sqlitetest builds throwaway weather stores for tests.
package sqlitetest

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// Schema matches the table the collector creates.
const Schema = `
CREATE TABLE IF NOT EXISTS weather (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp TEXT NOT NULL,
	temp_c REAL,
	temp_f REAL,
	pressure_hpa REAL,
	humidity REAL
)`

// Row is a reading to seed. Nil numeric fields are stored as NULL.
type Row struct {
	Timestamp   string
	TempC       *float64
	TempF       *float64
	PressureHPa *float64
	Humidity    *float64
}

// NewRow builds a Row with every numeric field set.
func NewRow(ts string, tempC, tempF, pressure, humidity float64) Row {
	return Row{
		Timestamp:   ts,
		TempC:       &tempC,
		TempF:       &tempF,
		PressureHPa: &pressure,
		Humidity:    &humidity,
	}
}

// NewStore creates a store file under t.TempDir() holding rows and returns its path.
func NewStore(t *testing.T, rows ...Row) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weather.db")
	Seed(t, path, rows...)
	return path
}

// Seed creates the weather table at path if needed and inserts rows.
func Seed(t *testing.T, path string, rows ...Row) {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(Schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	for _, r := range rows {
		_, err := db.Exec(
			`INSERT INTO weather (timestamp, temp_c, temp_f, pressure_hpa, humidity) VALUES (?, ?, ?, ?, ?)`,
			r.Timestamp, nullable(r.TempC), nullable(r.TempF), nullable(r.PressureHPa), nullable(r.Humidity),
		)
		if err != nil {
			t.Fatalf("insert %s: %v", r.Timestamp, err)
		}
	}
}

// NewEmptyFile creates a store file with no tables, for query failure tests.
func NewEmptyFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "empty.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer db.Close()

	// force the file into existence
	if _, err := db.Exec(`PRAGMA user_version = 1`); err != nil {
		t.Fatalf("init %s: %v", path, err)
	}
	return path
}

func nullable(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
