package domain

// WeatherRecord is one observation as exported.
// This is a pure domain model without database-specific concerns.
// A nil numeric field means the store held NULL.
type WeatherRecord struct {
	Timestamp   string
	TempC       *float64
	TempF       *float64
	PressureHPa *float64
	Humidity    *float64
}

// NewWeatherRecord creates a record with every numeric field set.
func NewWeatherRecord(timestamp string, tempC, tempF, pressureHPa, humidity float64) WeatherRecord {
	return WeatherRecord{
		Timestamp:   timestamp,
		TempC:       &tempC,
		TempF:       &tempF,
		PressureHPa: &pressureHPa,
		Humidity:    &humidity,
	}
}

// Values returns the numeric fields in export column order.
func (r WeatherRecord) Values() []*float64 {
	return []*float64{r.TempC, r.TempF, r.PressureHPa, r.Humidity}
}
