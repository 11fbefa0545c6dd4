package db

import "time"

// SensorReading is one stored measurement. Timestamp is assigned by the
// server at ingestion time, never by the device.
type SensorReading struct {
	ID          int64     `json:"id" db:"id"`
	Temperature float64   `json:"temperature" db:"temperature"`
	CO2         float64   `json:"co2" db:"co2"`
	TVOC        float64   `json:"tvoc" db:"tvoc"`
	LightLevel  float64   `json:"lightLevel" db:"light_level"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
}

// User is a credential record. Created out of band (scripts/adduser); the
// server itself never writes this table.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"password" db:"password"`
}
