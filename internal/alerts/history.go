package alerts

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voxalert/voxalert/internal/models"
)

// defaultHistoryLimit caps the in-memory alert history.
const defaultHistoryLimit = 100

// History is the in-memory alert store, newest first. The demo keeps no
// database; history is seeded with two example alerts so the UI has
// something to show on first boot.
type History struct {
	mu     sync.Mutex
	alerts []models.Alert
	limit  int
}

// NewHistory builds an empty history. limit <= 0 uses the default cap.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &History{limit: limit}
}

// NewSeededHistory builds a history preloaded with the demo alerts.
func NewSeededHistory(limit int) *History {
	h := NewHistory(limit)
	temp := models.SensorTemperature
	h.Append(models.Alert{
		ID:        uuid.New(),
		Message:   "Environmental monitoring: Temperature 22.3°C, Humidity 45.7%, Wind 12.4 km/h. All readings normal.",
		Timestamp: time.Now().Add(-48 * time.Hour),
		Languages: []string{"English", "French", "German"},
	})
	h.Append(models.Alert{
		ID:         uuid.New(),
		Message:    "High temperature alert: 38.5°C. Please take precautions against heat.",
		Timestamp:  time.Now().Add(-24 * time.Hour),
		Languages:  []string{"English", "Spanish"},
		SensorType: &temp,
	})
	return h
}

// Append prepends an alert, trimming the oldest past the cap.
func (h *History) Append(a models.Alert) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.alerts = append([]models.Alert{a}, h.alerts...)
	if len(h.alerts) > h.limit {
		h.alerts = h.alerts[:h.limit]
	}
}

// List returns all alerts, newest first.
func (h *History) List() []models.Alert {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]models.Alert(nil), h.alerts...)
}

// Get looks an alert up by ID.
func (h *History) Get(id uuid.UUID) (models.Alert, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, a := range h.alerts {
		if a.ID == id {
			return a, true
		}
	}
	return models.Alert{}, false
}
