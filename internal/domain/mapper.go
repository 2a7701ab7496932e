package domain

import (
	"database/sql"

	"weather-export/internal/repository/sqlite"
)

// WeatherRecordMapper handles conversion from stored readings to domain records.
type WeatherRecordMapper struct{}

// NewWeatherRecordMapper creates a new WeatherRecordMapper instance.
func NewWeatherRecordMapper() *WeatherRecordMapper {
	return &WeatherRecordMapper{}
}

// FromDatabase converts a database Reading to a domain WeatherRecord.
func (m *WeatherRecordMapper) FromDatabase(reading sqlite.Reading) WeatherRecord {
	return WeatherRecord{
		Timestamp:   reading.Timestamp,
		TempC:       floatPtr(reading.TempC),
		TempF:       floatPtr(reading.TempF),
		PressureHPa: floatPtr(reading.PressureHPa),
		Humidity:    floatPtr(reading.Humidity),
	}
}

// FromDatabaseSlice converts database Readings to domain WeatherRecords, keeping order.
func (m *WeatherRecordMapper) FromDatabaseSlice(readings []*sqlite.Reading) []WeatherRecord {
	records := make([]WeatherRecord, len(readings))
	for i, reading := range readings {
		records[i] = m.FromDatabase(*reading)
	}
	return records
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	WeatherRecord *WeatherRecordMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		WeatherRecord: NewWeatherRecordMapper(),
	}
}
