package sqlite

import "database/sql"

// Reading is one row of the weather table as stored.
// Timestamp keeps the exact stored text; numeric columns may be NULL.
type Reading struct {
	Timestamp   string
	TempC       sql.NullFloat64
	TempF       sql.NullFloat64
	PressureHPa sql.NullFloat64
	Humidity    sql.NullFloat64
}
