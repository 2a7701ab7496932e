package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// ScanReading scans a single reading in timestamp, temp_c, temp_f, pressure_hpa, humidity order
func ScanReading(scanner Scanner) (*Reading, error) {
	reading := &Reading{}

	err := scanner.Scan(
		&reading.Timestamp,
		&reading.TempC,
		&reading.TempF,
		&reading.PressureHPa,
		&reading.Humidity,
	)
	if err != nil {
		return nil, err
	}

	return reading, nil
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanReadings scans every remaining row. An empty result is a non-nil, empty slice.
func ScanReadings(rows Rows) ([]*Reading, error) {
	readings := []*Reading{}
	for rows.Next() {
		reading, err := ScanReading(rows)
		if err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return readings, nil
}
