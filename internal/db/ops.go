package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4"
)

var (
	ErrInsertFailed = errors.New("insert operation failed")
	ErrSelectFailed = errors.New("select operation failed")
)

// InsertReading appends one reading and returns the stored record with its
// generated ID.
func (db *DB) InsertReading(ctx context.Context, r SensorReading) (SensorReading, error) {
	const fn = "DB:InsertReading"
	var stored SensorReading
	err := pgxscan.Get(ctx, db.pool, &stored, `
		INSERT INTO sensor_readings (
			temperature,
			co2,
			tvoc,
			light_level,
			timestamp
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, temperature, co2, tvoc, light_level, timestamp
	`, r.Temperature, r.CO2, r.TVOC, r.LightLevel, r.Timestamp)
	if err != nil {
		return SensorReading{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return stored, nil
}

// LatestReading returns the most recently timestamped reading, or (nil, nil)
// when the store is empty. Absence is a normal outcome, not an error.
func (db *DB) LatestReading(ctx context.Context) (*SensorReading, error) {
	const fn = "DB:LatestReading"
	var reading SensorReading
	err := pgxscan.Get(ctx, db.pool, &reading, `
		SELECT
			id,
			temperature,
			co2,
			tvoc,
			light_level,
			timestamp
		FROM sensor_readings
		ORDER BY timestamp DESC
		LIMIT 1
	`)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return &reading, nil
}

// ReadingsBetween returns readings with timestamp in [start, end), ascending.
func (db *DB) ReadingsBetween(ctx context.Context, start, end time.Time) ([]SensorReading, error) {
	const fn = "DB:ReadingsBetween"
	var readings []SensorReading
	err := pgxscan.Select(ctx, db.pool, &readings, `
		SELECT
			id,
			temperature,
			co2,
			tvoc,
			light_level,
			timestamp
		FROM sensor_readings
		WHERE timestamp >= $1
		AND timestamp < $2
		ORDER BY timestamp ASC
	`, start, end)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []SensorReading{}, nil
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return readings, nil
}

// DistinctDates returns the UTC calendar dates (YYYY-MM-DD) that have at
// least one reading, ascending. The group-by is pushed down to SQL.
func (db *DB) DistinctDates(ctx context.Context) ([]string, error) {
	const fn = "DB:DistinctDates"
	var dates []string
	err := pgxscan.Select(ctx, db.pool, &dates, `
		SELECT DISTINCT to_char(timestamp AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day
		FROM sensor_readings
		ORDER BY day ASC
	`)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return dates, nil
}

// CreateUser inserts a credential record. Only scripts/adduser calls this;
// the server never registers users. Username uniqueness is enforced by the
// table constraint.
func (db *DB) CreateUser(ctx context.Context, u User) error {
	const fn = "DB:CreateUser"
	_, err := db.pool.Exec(ctx, `
		INSERT INTO users (
			username,
			password
		) VALUES ($1, $2)
	`, u.Username, u.Password)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}
