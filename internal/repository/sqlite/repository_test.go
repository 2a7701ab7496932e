package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "weather-export/internal/errors"
	"weather-export/internal/repository/sqlite/sqlitetest"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func setupTestDB(t *testing.T, rows ...sqlitetest.Row) (*SQLiteRepository, func()) {
	path := sqlitetest.NewStore(t, rows...)

	repo, err := New(context.Background(), path, DefaultTable)
	require.NoError(t, err)

	return repo, func() { repo.Close() }
}

func TestReadingsInRange_InclusiveDay(t *testing.T) {
	repo, cleanup := setupTestDB(t,
		sqlitetest.NewRow("2024-06-09T23:59:59", 10, 50, 1000, 40),
		sqlitetest.NewRow("2024-06-10T23:59:59", 22.5, 72.5, 1012.3, 55),
		sqlitetest.NewRow("2024-06-10T00:00:00", 18, 64.4, 1013.25, 60),
		sqlitetest.NewRow("2024-06-11T00:00:00", 11, 51.8, 1001, 41),
	)
	defer cleanup()

	readings, err := repo.ReadingsInRange(context.Background(), day(2024, 6, 10), day(2024, 6, 11))
	require.NoError(t, err)
	require.Len(t, readings, 2)

	// ascending by timestamp, regardless of insert order
	assert.Equal(t, "2024-06-10T00:00:00", readings[0].Timestamp)
	assert.Equal(t, "2024-06-10T23:59:59", readings[1].Timestamp)
	assert.Equal(t, 18.0, readings[0].TempC.Float64)
	assert.Equal(t, 1012.3, readings[1].PressureHPa.Float64)
}

func TestReadingsInRange_SubSecondTimestamps(t *testing.T) {
	repo, cleanup := setupTestDB(t,
		sqlitetest.NewRow("2024-06-10T23:59:59.750000", 1, 33.8, 1000, 50),
	)
	defer cleanup()

	readings, err := repo.ReadingsInRange(context.Background(), day(2024, 6, 10), day(2024, 6, 11))
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, "2024-06-10T23:59:59.750000", readings[0].Timestamp)
}

func TestReadingsInRange_Empty(t *testing.T) {
	repo, cleanup := setupTestDB(t,
		sqlitetest.NewRow("2024-01-01T12:00:00", 1, 33.8, 1000, 50),
	)
	defer cleanup()

	readings, err := repo.ReadingsInRange(context.Background(), day(2024, 6, 10), day(2024, 6, 11))
	require.NoError(t, err)
	assert.NotNil(t, readings)
	assert.Empty(t, readings)
}

func TestReadingsInRange_NullColumns(t *testing.T) {
	row := sqlitetest.NewRow("2024-06-10T08:00:00", 20, 68, 1010, 50)
	row.Humidity = nil
	repo, cleanup := setupTestDB(t, row)
	defer cleanup()

	readings, err := repo.ReadingsInRange(context.Background(), day(2024, 6, 10), day(2024, 6, 11))
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.True(t, readings[0].TempC.Valid)
	assert.False(t, readings[0].Humidity.Valid)
}

func TestReadingsInRange_MissingTable(t *testing.T) {
	path := sqlitetest.NewEmptyFile(t)

	repo, err := New(context.Background(), path, DefaultTable)
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.ReadingsInRange(context.Background(), day(2024, 6, 10), day(2024, 6, 11))
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStore))
	assert.Contains(t, err.Error(), "query readings")
}

func TestReadingsInRange_CancelledContext(t *testing.T) {
	repo, cleanup := setupTestDB(t,
		sqlitetest.NewRow("2024-06-10T08:00:00", 20, 68, 1010, 50),
	)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ReadingsInRange(ctx, day(2024, 6, 10), day(2024, 6, 11))
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStore))
}

func TestNew_MissingStoreIsNotCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.db")

	repo, err := New(context.Background(), path, DefaultTable)
	require.Error(t, err)
	assert.Nil(t, repo)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStore))
	assert.NoFileExists(t, path)
}

func TestNew_DefaultTable(t *testing.T) {
	path := sqlitetest.NewStore(t)

	repo, err := New(context.Background(), path, "")
	require.NoError(t, err)
	defer repo.Close()

	assert.Equal(t, DefaultTable, repo.table)
}

func TestReadOnlyDSN(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"absolute", "/data/weather.db", "file:/data/weather.db?mode=ro"},
		{"relative", "weather.db", "file:weather.db?mode=ro"},
		{"question mark", "/data/what?.db", "file:/data/what%3F.db?mode=ro"},
		{"hash", "/data/station#2/weather.db", "file:/data/station%232/weather.db?mode=ro"},
		{"percent and space", "/data/100% rain/weather.db", "file:/data/100%25%20rain/weather.db?mode=ro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReadOnlyDSN(tt.path))
		})
	}
}

func TestNew_PathWithURIMetacharacters(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "station #2 %20 data")
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, "weather.db")
	sqlitetest.Seed(t, path, sqlitetest.NewRow("2024-06-10T08:00:00", 16, 60.8, 1012, 70))

	repo, err := New(context.Background(), path, DefaultTable)
	require.NoError(t, err)
	defer repo.Close()

	readings, err := repo.ReadingsInRange(context.Background(), day(2024, 6, 10), day(2024, 6, 11))
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, "2024-06-10T08:00:00", readings[0].Timestamp)
}
