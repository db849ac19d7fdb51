package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/voxalert/voxalert/internal/alerts"
	"github.com/voxalert/voxalert/internal/models"
	"github.com/voxalert/voxalert/internal/sensors"
	"github.com/voxalert/voxalert/internal/speech"
	"github.com/voxalert/voxalert/internal/translate"
)

func newTestRouter(apiKey string) (http.Handler, *sensors.Hub) {
	engine := speech.NewSimEngine()
	engine.SetDelay(time.Millisecond)
	catalog := speech.NewCatalog(engine)
	queue := speech.NewQueue(engine, catalog, speech.QueueConfig{
		PollInterval:        time.Millisecond,
		PollAttempts:        3,
		SettleDelay:         time.Millisecond,
		RetryDelay:          time.Millisecond,
		InterUtteranceDelay: time.Millisecond,
	})
	session := speech.NewSession(queue)
	hub := sensors.NewHub(sensors.DefaultThresholds(), time.Second)
	svc := alerts.NewService(translate.NewPhraseTranslator(), nil, alerts.NewSeededHistory(0), session, []string{"English"})

	h := NewHandler(svc, hub, engine, catalog)
	return NewRouter(h, RouterConfig{BackendAPIKey: apiKey}), hub
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter("")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAPIKeyRequired(t *testing.T) {
	router, _ := newTestRouter("secret")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/alerts", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing key: status = %d, want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/v1/alerts", nil)
	req.Header.Set("X-API-Key", "wrong")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("wrong key: status = %d, want 403", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/v1/alerts", nil)
	req.Header.Set("Authorization", "Bearer secret")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("bearer key: status = %d, want 200", rec.Code)
	}
}

func TestCreateAndListAlerts(t *testing.T) {
	router, _ := newTestRouter("")

	body, _ := json.Marshal(models.CreateAlertRequest{
		Message:   "High temperature alert",
		Languages: []string{"English", "Spanish"},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/alerts", bytes.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var created models.CreateAlertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(created.Alert.Audio) != 2 {
		t.Errorf("expected 2 audio entries, got %d", len(created.Alert.Audio))
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/alerts", nil))
	var list models.ListAlertsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	// Two seeded demo alerts plus the one just created, newest first.
	if list.Total != 3 {
		t.Errorf("total = %d, want 3", list.Total)
	}
	if list.Alerts[0].ID != created.Alert.ID {
		t.Errorf("newest alert should be the created one")
	}
}

func TestCreateAlertValidation(t *testing.T) {
	router, _ := newTestRouter("")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/alerts", bytes.NewReader([]byte(`{"languages":["English"]}`))))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty message: status = %d, want 400", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/alerts", bytes.NewReader([]byte(`not json`))))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad body: status = %d, want 400", rec.Code)
	}
}

func TestUpdateAndListReadings(t *testing.T) {
	router, hub := newTestRouter("")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/v1/sensors/temperature/reading",
		bytes.NewReader([]byte(`{"value": 38.5}`))))
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}

	reading, ok := hub.Reading(models.SensorTemperature)
	if !ok || reading.Value != 38.5 || reading.Unit != "°C" {
		t.Errorf("unexpected stored reading: %+v", reading)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/sensors/readings", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/v1/sensors/pressure/reading",
		bytes.NewReader([]byte(`{"value": 1}`))))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown sensor: status = %d, want 400", rec.Code)
	}
}

func TestPlaybackStatusAndStop(t *testing.T) {
	router, _ := newTestRouter("")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/playback", nil))
	var status models.PlaybackStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if status.Active {
		t.Error("playback should be idle initially")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/playback/stop", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("stop status = %d", rec.Code)
	}
}

func TestListLanguagesAndVoices(t *testing.T) {
	router, _ := newTestRouter("")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/languages", nil))
	var langResp struct {
		Languages []models.LanguageSupport `json:"languages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &langResp); err != nil {
		t.Fatalf("decode languages: %v", err)
	}
	if len(langResp.Languages) != 25 {
		t.Errorf("expected 25 languages, got %d", len(langResp.Languages))
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/voices", nil))
	var voiceResp struct {
		Voices []speech.Voice `json:"voices"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &voiceResp); err != nil {
		t.Fatalf("decode voices: %v", err)
	}
	if len(voiceResp.Voices) == 0 {
		t.Error("expected at least one voice")
	}
}
