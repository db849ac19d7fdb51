package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/voxalert/voxalert/internal/alerts"
	"github.com/voxalert/voxalert/internal/models"
	"github.com/voxalert/voxalert/internal/sensors"
	"github.com/voxalert/voxalert/internal/speech"
	"github.com/voxalert/voxalert/internal/translate"
)

type Handler struct {
	alerts  *alerts.Service
	hub     *sensors.Hub
	engine  speech.Engine
	catalog *speech.Catalog
}

func NewHandler(alertSvc *alerts.Service, hub *sensors.Hub, engine speech.Engine, catalog *speech.Catalog) *Handler {
	return &Handler{
		alerts:  alertSvc,
		hub:     hub,
		engine:  engine,
		catalog: catalog,
	}
}

// CreateAlert handles POST /v1/alerts
func (h *Handler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	alert, err := h.alerts.CreateAlert(r.Context(), req.Message, req.Languages, nil)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create alert")
		return
	}

	if req.Play {
		h.alerts.PlayAlert(alert, nil)
	}

	respondJSON(w, http.StatusCreated, models.CreateAlertResponse{
		Alert:   alert,
		Playing: req.Play,
	})
}

// ListAlerts handles GET /v1/alerts
func (h *Handler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	list := h.alerts.History().List()
	respondJSON(w, http.StatusOK, models.ListAlertsResponse{
		Alerts: list,
		Total:  len(list),
	})
}

// GetAlert handles GET /v1/alerts/{id}
func (h *Handler) GetAlert(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid alert ID")
		return
	}

	alert, ok := h.alerts.History().Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Alert not found")
		return
	}
	respondJSON(w, http.StatusOK, alert)
}

// PlayAlert handles POST /v1/alerts/{id}/play
// Optional query param "language" plays that single language instead of
// the whole batch.
func (h *Handler) PlayAlert(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid alert ID")
		return
	}

	alert, ok := h.alerts.History().Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Alert not found")
		return
	}

	if language := r.URL.Query().Get("language"); language != "" {
		for _, a := range alert.Audio {
			if a.Language == language {
				h.alerts.Session().PlaySingle(speech.Item{Language: a.Language, Text: a.Text})
				respondJSON(w, http.StatusOK, h.alerts.Session().Status())
				return
			}
		}
		respondError(w, http.StatusNotFound, "Alert has no audio for that language")
		return
	}

	h.alerts.PlayAlert(alert, nil)
	respondJSON(w, http.StatusOK, h.alerts.Session().Status())
}

// GetPlayback handles GET /v1/playback
func (h *Handler) GetPlayback(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.alerts.Session().Status())
}

// StopPlayback handles POST /v1/playback/stop
func (h *Handler) StopPlayback(w http.ResponseWriter, r *http.Request) {
	h.alerts.Session().Stop()
	respondJSON(w, http.StatusOK, h.alerts.Session().Status())
}

// ListReadings handles GET /v1/sensors/readings
func (h *Handler) ListReadings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"readings":   h.hub.Readings(),
		"simulation": h.hub.SimulationRunning(),
	})
}

// UpdateReading handles PUT /v1/sensors/{type}/reading
// Lets the demo UI (or tests) inject a measurement by hand.
func (h *Handler) UpdateReading(w http.ResponseWriter, r *http.Request) {
	sensorType, ok := models.ParseSensorType(chi.URLParam(r, "type"))
	if !ok {
		respondError(w, http.StatusBadRequest, "Unknown sensor type")
		return
	}

	var req models.UpdateReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Unit == "" {
		req.Unit = defaultUnit(sensorType)
	}

	h.hub.UpdateReading(sensorType, req.Value, req.Unit)

	reading, _ := h.hub.Reading(sensorType)
	respondJSON(w, http.StatusOK, reading)
}

func defaultUnit(t models.SensorType) string {
	switch t {
	case models.SensorTemperature:
		return "°C"
	case models.SensorHumidity:
		return "%"
	case models.SensorWind:
		return "km/h"
	default:
		return "level"
	}
}

// StartSimulation handles POST /v1/sensors/simulation/start
func (h *Handler) StartSimulation(w http.ResponseWriter, r *http.Request) {
	h.hub.StartSimulation()
	respondJSON(w, http.StatusOK, map[string]bool{"simulation": true})
}

// StopSimulation handles POST /v1/sensors/simulation/stop
func (h *Handler) StopSimulation(w http.ResponseWriter, r *http.Request) {
	h.hub.StopSimulation()
	respondJSON(w, http.StatusOK, map[string]bool{"simulation": false})
}

// ListVoices handles GET /v1/voices
func (h *Handler) ListVoices(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"voices": h.engine.Voices(),
	})
}

// ListLanguages handles GET /v1/languages
// Reports voice availability per supported language.
func (h *Handler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	langs := translate.Languages()
	out := make([]models.LanguageSupport, 0, len(langs))
	for _, l := range langs {
		voice, locale, supported, fallback := h.catalog.Support(l.Name)
		out = append(out, models.LanguageSupport{
			Language:  l.Name,
			Supported: supported,
			Voice:     voice,
			Locale:    locale,
			Fallback:  fallback,
		})
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"languages": out,
	})
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
