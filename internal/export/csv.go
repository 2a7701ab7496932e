// Package export serializes weather records to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"weather-export/internal/domain"
	"weather-export/internal/errors"
)

// Header lists the exported columns in order
var Header = []string{"timestamp", "temp_c", "temp_f", "pressure_hpa", "humidity"}

// FileName builds weather_<start>_to_<end>.csv from the raw operator input
func FileName(startInput, endInput string) string {
	return fmt.Sprintf("weather_%s_to_%s.csv",
		strings.ReplaceAll(startInput, "/", "-"),
		strings.ReplaceAll(endInput, "/", "-"),
	)
}

// Path joins dir with FileName
func Path(dir, startInput, endInput string) string {
	return filepath.Join(dir, FileName(startInput, endInput))
}

// FormatValue renders a numeric field with the shortest text that parses
// back to the same float64. NULL becomes an empty field.
func FormatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Row converts a record into CSV fields in Header order
func Row(record domain.WeatherRecord) []string {
	row := make([]string, 0, len(Header))
	row = append(row, record.Timestamp)
	for _, v := range record.Values() {
		row = append(row, FormatValue(v))
	}
	return row
}

// WriteCSV writes the header and one row per record to w
func WriteCSV(w io.Writer, records []domain.WeatherRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(Row(record)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteFile creates or truncates path and writes records to it. On any
// failure the partial file is removed.
func WriteFile(path string, records []domain.WeatherRecord) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.NewWriteError("create file", path, err)
	}

	defer func() {
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := WriteCSV(file, records); err != nil {
		file.Close()
		return errors.NewWriteError("write rows", path, err)
	}

	if err := file.Close(); err != nil {
		return errors.NewWriteError("close file", path, err)
	}
	return nil
}
