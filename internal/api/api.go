package api

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"emonitor-backend/internal/db"
	"emonitor-backend/internal/live"
)

//go:embed templates/*.html
var templateFS embed.FS

type repository interface {
	InsertReading(ctx context.Context, r db.SensorReading) (db.SensorReading, error)
	LatestReading(ctx context.Context) (*db.SensorReading, error)
	ReadingsBetween(ctx context.Context, start, end time.Time) ([]db.SensorReading, error)
	DistinctDates(ctx context.Context) ([]string, error)
}

type hub interface {
	Publish(r db.SensorReading)
	Subscribe() *live.Subscription
}

type streamPublisher interface {
	Publish(ctx context.Context, r db.SensorReading) error
}

type API struct {
	db        repository
	hub       hub
	stream    streamPublisher // nil when the Kafka mirror is disabled
	secret    string
	templates *template.Template
	upgrader  websocket.Upgrader
	now       func() time.Time
}

type Config struct {
	DB     repository
	Hub    hub
	Stream streamPublisher
	Secret string
}

func New(cfg Config) *API {
	return &API{
		db:        cfg.DB,
		hub:       cfg.Hub,
		stream:    cfg.Stream,
		secret:    cfg.Secret,
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
		now:       time.Now,
	}
}

// Router maps the HTTP surface onto handlers.
func (a *API) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/", a.GetLiveView)
	r.Post("/add-sensor-data", a.AddSensorData)
	r.Get("/data-dates", a.GetDataDates)
	r.Get("/latest-sensor-data", a.GetLatestSensorData)
	r.Get("/history", a.GetHistory)
	r.Get("/ws", a.ServeWS)
	return r
}

// AddSensorData ingests one reading. The shared secret gates the write;
// value fields are coerced to float64 with a zero default; the timestamp is
// server-assigned. The stored record fans out to live viewers and, when
// configured, to the reading stream.
func (a *API) AddSensorData(w http.ResponseWriter, r *http.Request) {
	body, err := decodePayload(r)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if body.str(secretField) != a.secret {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	reading := db.SensorReading{
		Temperature: body.float("temperature"),
		CO2:         body.float("co2"),
		TVOC:        body.float("tvoc"),
		LightLevel:  body.float("lightLevel"),
		Timestamp:   a.now().UTC(),
	}

	stored, err := a.db.InsertReading(r.Context(), reading)
	if err != nil {
		http.Error(w, "Failed to save sensor data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	a.hub.Publish(stored)
	if a.stream != nil {
		if err := a.stream.Publish(r.Context(), stored); err != nil {
			slog.ErrorContext(r.Context(), "Failed to mirror reading to stream", "error", err)
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Sensor data saved successfully!"))
}

// GetDataDates lists the UTC calendar dates with at least one reading.
func (a *API) GetDataDates(w http.ResponseWriter, r *http.Request) {
	dates, err := a.db.DistinctDates(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Error fetching dates with data"})
		return
	}
	if dates == nil {
		dates = []string{}
	}
	writeJSON(w, http.StatusOK, dates)
}

// GetLatestSensorData returns the newest reading, or a message object when
// the store is empty. Absence is not an error.
func (a *API) GetLatestSensorData(w http.ResponseWriter, r *http.Request) {
	latest, err := a.db.LatestReading(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Error fetching latest sensor data"})
		return
	}
	if latest == nil {
		writeJSON(w, http.StatusOK, messageResponse{Message: "No sensor data available"})
		return
	}
	writeJSON(w, http.StatusOK, latestReadingResponse{
		Temperature: latest.Temperature,
		CO2:         latest.CO2,
		TVOC:        latest.TVOC,
		LightLevel:  latest.LightLevel,
		Timestamp:   latest.Timestamp,
	})
}

// GetHistory renders the readings for one UTC calendar day, default today.
func (a *API) GetHistory(w http.ResponseWriter, r *http.Request) {
	selectedDate := r.URL.Query().Get("date")
	if selectedDate == "" {
		selectedDate = a.now().UTC().Format("2006-01-02")
	}

	startOfDay, err := time.ParseInLocation("2006-01-02", selectedDate, time.UTC)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	endOfDay := startOfDay.AddDate(0, 0, 1)

	readings, err := a.db.ReadingsBetween(r.Context(), startOfDay, endOfDay)
	if err != nil {
		http.Error(w, "Error retrieving sensor data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	a.render(w, "history.html", map[string]any{
		"SelectedDate": selectedDate,
		"Readings":     readings,
	})
}

// GetLiveView renders the live dashboard; the page subscribes to /ws.
func (a *API) GetLiveView(w http.ResponseWriter, r *http.Request) {
	a.render(w, "live.html", nil)
}

// ServeWS upgrades the connection and streams readings stored from this
// point on. Nothing is replayed.
func (a *API) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.ErrorContext(r.Context(), "Websocket upgrade failed", "error", err)
		return
	}
	live.NewClient(conn, a.hub.Subscribe()).Start()
}

func (a *API) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("Failed to render view", "template", name, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// payload is a decoded request body; values may be JSON scalars or form
// strings depending on the content type the device chose.
type payload map[string]any

func (p payload) str(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

// float coerces a value field to float64. Absent, null and unparseable
// values become zero rather than errors.
func (p payload) float(key string) float64 {
	return coerceFloat(p[key])
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// decodePayload accepts both JSON and urlencoded form bodies.
func decodePayload(r *http.Request) (payload, error) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var body payload
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, err
		}
		return body, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	body := make(payload, len(r.PostForm))
	for key := range r.PostForm {
		body[key] = r.PostForm.Get(key)
	}
	return body, nil
}
