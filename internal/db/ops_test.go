package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var DBPool *DB

// Setup the testcontainer DB before running any ops tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
	)
	if err != nil {
		panic(err)
	}
	defer pgContainer.Terminate(ctx)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(err)
	}
	migrationsPath := "./migrations"

	DBPool, err = Init(ctx, Config{
		ConnString:     connStr,
		MigrationsPath: migrationsPath,
	})
	if err != nil {
		panic(err)
	}

	m.Run()

	pgContainer.Terminate(ctx)
	DBPool.Close()
}

func TestReadingOps(t *testing.T) {
	ctx := context.Background()

	// Empty store: absence is not an error.
	latest, err := DBPool.LatestReading(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	dates, err := DBPool.DistinctDates(ctx)
	require.NoError(t, err)
	assert.Empty(t, dates)

	day1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	readings := []SensorReading{
		// Inserted out of calendar order on purpose.
		{Temperature: 22.5, CO2: 450, TVOC: 12, LightLevel: 300, Timestamp: day2.Add(8 * time.Hour)},
		{Temperature: 21.0, CO2: 400, TVOC: 10, LightLevel: 250, Timestamp: day1.Add(23*time.Hour + 59*time.Minute + 59*time.Second)},
		{Temperature: 23.1, CO2: 500, TVOC: 15, LightLevel: 320, Timestamp: day3},
		{Temperature: 20.4, CO2: 390, TVOC: 9, LightLevel: 200, Timestamp: day2},
	}
	for _, r := range readings {
		stored, err := DBPool.InsertReading(ctx, r)
		require.NoError(t, err)
		assert.NotZero(t, stored.ID)
		assert.Equal(t, r.Temperature, stored.Temperature)
		assert.True(t, stored.Timestamp.Equal(r.Timestamp))
	}

	// Latest is the max-timestamp reading, regardless of insertion order.
	latest, err = DBPool.LatestReading(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 23.1, latest.Temperature)
	assert.True(t, latest.Timestamp.Equal(day3))

	// Half-open window: the day-2 midnight reading is included, the day-3
	// midnight reading is excluded even though it sits on the boundary.
	got, err := DBPool.ReadingsBetween(ctx, day2, day3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 20.4, got[0].Temperature)
	assert.Equal(t, 22.5, got[1].Temperature)
	assert.True(t, got[0].Timestamp.Before(got[1].Timestamp))

	// A 23:59:59 reading belongs to its own day, not the next.
	got, err = DBPool.ReadingsBetween(ctx, day1, day2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 21.0, got[0].Temperature)

	// Three distinct days, ascending, no duplicates for the shared day.
	dates, err = DBPool.DistinctDates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-01", "2024-05-02", "2024-05-03"}, dates)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	err := DBPool.CreateUser(ctx, User{Username: "station-1", Password: "hunter2"})
	require.NoError(t, err)

	// Username uniqueness is enforced by the store.
	err = DBPool.CreateUser(ctx, User{Username: "station-1", Password: "other"})
	assert.ErrorIs(t, err, ErrInsertFailed)
}
