package api

import "time"

// secretField is the body field devices send the shared secret under.
const secretField = "EMONITOR_API_KEY"

type latestReadingResponse struct {
	Temperature float64   `json:"temperature"`
	CO2         float64   `json:"co2"`
	TVOC        float64   `json:"tvoc"`
	LightLevel  float64   `json:"lightLevel"`
	Timestamp   time.Time `json:"timestamp"`
}

type messageResponse struct {
	Message string `json:"message"`
}
