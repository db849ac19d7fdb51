package sensors

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/voxalert/voxalert/internal/models"
)

// EventKind classifies hub notifications.
type EventKind string

const (
	EventReading EventKind = "reading" // any accepted measurement
	EventAlert   EventKind = "alert"   // a threshold was crossed
	EventNormal  EventKind = "normal"  // an alerting sensor recovered
)

// Event is one notification delivered to hub subscribers.
type Event struct {
	Kind    EventKind            `json:"kind"`
	Type    models.SensorType    `json:"type"`
	Message string               `json:"message,omitempty"`
	Reading models.SensorReading `json:"reading"`
}

// Thresholds configures when readings trigger alerts.
type Thresholds struct {
	TempHigh     float64
	TempLow      float64
	HumidityHigh float64
	WindHigh     float64
	SmokeLevel   float64
	GasLevel     float64
}

// DefaultThresholds returns the demo defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TempHigh:     35, // °C
		TempLow:      5,  // °C
		HumidityHigh: 85, // %
		WindHigh:     30, // km/h
		SmokeLevel:   50, // arbitrary units (0-100)
		GasLevel:     50, // arbitrary units (0-100)
	}
}

// subscriberBuffer is the per-subscriber channel depth. A slow consumer
// loses events rather than stalling the hub.
const subscriberBuffer = 16

// Hub holds the latest reading per sensor, evaluates thresholds on every
// update and fans events out to subscribers. Alerts are edge-triggered: a
// sensor that stays above its threshold alerts once, and emits a recovery
// event when it drops back.
type Hub struct {
	mu         sync.Mutex
	thresholds Thresholds
	interval   time.Duration
	readings   map[models.SensorType]models.SensorReading
	alertState map[models.SensorType]bool
	subs       map[chan Event]struct{}
	simStop    chan struct{}
	rng        *rand.Rand
}

// NewHub builds a hub with the given thresholds and simulation tick
// interval.
func NewHub(thresholds Thresholds, interval time.Duration) *Hub {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	h := &Hub{
		thresholds: thresholds,
		interval:   interval,
		readings:   make(map[models.SensorType]models.SensorReading),
		alertState: make(map[models.SensorType]bool),
		subs:       make(map[chan Event]struct{}),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, t := range models.SensorTypes() {
		h.alertState[t] = false
	}
	return h
}

// Subscribe registers an event consumer. The returned cancel func is
// idempotent and closes the channel.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (h *Hub) publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default: // drop for slow consumers
		}
	}
}

// UpdateReading records a measurement, re-evaluates thresholds and
// notifies subscribers.
func (h *Hub) UpdateReading(t models.SensorType, value float64, unit string) {
	reading := models.SensorReading{
		Type:      t,
		Value:     value,
		Unit:      unit,
		Timestamp: time.Now(),
	}

	h.mu.Lock()
	h.readings[t] = reading
	h.mu.Unlock()

	h.checkThresholds(reading)
	h.publish(Event{Kind: EventReading, Type: t, Reading: reading})
}

// Reading returns the latest measurement for a sensor type.
func (h *Hub) Reading(t models.SensorType) (models.SensorReading, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.readings[t]
	return r, ok
}

// Readings returns the latest measurement per sensor, in display order.
func (h *Hub) Readings() []models.SensorReading {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]models.SensorReading, 0, len(h.readings))
	for _, t := range models.SensorTypes() {
		if r, ok := h.readings[t]; ok {
			out = append(out, r)
		}
	}
	return out
}

// SetThresholds replaces the alert thresholds.
func (h *Hub) SetThresholds(t Thresholds) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.thresholds = t
}

func (h *Hub) checkThresholds(reading models.SensorReading) {
	h.mu.Lock()
	th := h.thresholds
	h.mu.Unlock()

	alert := false
	message := ""

	switch reading.Type {
	case models.SensorTemperature:
		if reading.Value > th.TempHigh {
			alert = true
			message = fmt.Sprintf("High temperature alert: %.1f°C. Please take precautions against heat.", reading.Value)
		} else if reading.Value < th.TempLow {
			alert = true
			message = fmt.Sprintf("Low temperature alert: %.1f°C. Risk of freezing conditions.", reading.Value)
		}
	case models.SensorHumidity:
		if reading.Value > th.HumidityHigh {
			alert = true
			message = fmt.Sprintf("High humidity alert: %.1f%%. Potential for condensation and mold growth.", reading.Value)
		}
	case models.SensorWind:
		if reading.Value > th.WindHigh {
			alert = true
			message = fmt.Sprintf("High wind alert: %.1f km/h. Secure loose objects outdoors.", reading.Value)
		}
	case models.SensorSmoke:
		if reading.Value > th.SmokeLevel {
			alert = true
			message = fmt.Sprintf("Smoke detected: Level %.0f. Please check for fire hazards.", reading.Value)
		}
	case models.SensorGas:
		if reading.Value > th.GasLevel {
			alert = true
			message = fmt.Sprintf("Gas leak detected: Level %.0f. Evacuate the area immediately.", reading.Value)
		}
	}

	// Only emit when the alert state flips.
	h.mu.Lock()
	previous := h.alertState[reading.Type]
	changed := alert != previous
	if changed {
		h.alertState[reading.Type] = alert
	}
	h.mu.Unlock()

	if !changed {
		return
	}

	if alert {
		log.Printf("[Sensors] Alert: %s", message)
		h.publish(Event{Kind: EventAlert, Type: reading.Type, Message: message, Reading: reading})
	} else {
		recovered := fmt.Sprintf("%s levels have returned to normal: %.1f %s", reading.Type, reading.Value, reading.Unit)
		log.Printf("[Sensors] %s", recovered)
		h.publish(Event{Kind: EventNormal, Type: reading.Type, Message: recovered, Reading: reading})
	}
}
