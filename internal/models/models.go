package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Enums

// SensorType identifies one simulated environmental sensor.
type SensorType string

const (
	SensorTemperature SensorType = "temperature"
	SensorHumidity    SensorType = "humidity"
	SensorWind        SensorType = "wind"
	SensorSmoke       SensorType = "smoke"
	SensorGas         SensorType = "gas"
)

// SensorTypes lists all known sensor types in display order.
func SensorTypes() []SensorType {
	return []SensorType{SensorTemperature, SensorHumidity, SensorWind, SensorSmoke, SensorGas}
}

// ParseSensorType validates a sensor type string from the API.
func ParseSensorType(s string) (SensorType, bool) {
	t := SensorType(strings.ToLower(s))
	switch t {
	case SensorTemperature, SensorHumidity, SensorWind, SensorSmoke, SensorGas:
		return t, true
	}
	return "", false
}

// AudioSource records which synthesis tier produced an audio reference.
type AudioSource string

const (
	AudioSourceRendered AudioSource = "rendered" // pre-rendered by a network TTS provider
	AudioSourceLive     AudioSource = "live"     // spoken live through the speech queue
)

// LiveAudioScheme prefixes an audio reference whose payload is translated
// text to be spoken live rather than a pre-rendered audio URL.
const LiveAudioScheme = "speech:"

// Models

// SensorReading is one timestamped measurement from a sensor.
type SensorReading struct {
	Type      SensorType `json:"type"`
	Value     float64    `json:"value"`
	Unit      string     `json:"unit"`
	Timestamp time.Time  `json:"timestamp"`
}

// AlertAudio is one per-language audio reference attached to an alert.
// AudioRef is either a data: URL with pre-rendered audio or a
// LiveAudioScheme reference carrying the translated text.
type AlertAudio struct {
	Language string      `json:"language"`
	Text     string      `json:"text"` // translated message text
	AudioRef string      `json:"audio_ref"`
	Source   AudioSource `json:"source"`
}

// LiveText returns the text payload of a live audio reference, or
// ("", false) when the reference is pre-rendered audio.
func (a AlertAudio) LiveText() (string, bool) {
	if strings.HasPrefix(a.AudioRef, LiveAudioScheme) {
		return strings.TrimPrefix(a.AudioRef, LiveAudioScheme), true
	}
	return "", false
}

// Alert is one announced message with its per-language audio references.
type Alert struct {
	ID         uuid.UUID    `json:"id"`
	Message    string       `json:"message"`
	Timestamp  time.Time    `json:"timestamp"`
	Languages  []string     `json:"languages"`
	Audio      []AlertAudio `json:"audio,omitempty"`
	SensorType *SensorType  `json:"sensor_type,omitempty"`
}

// DTOs for API requests/responses

type CreateAlertRequest struct {
	Message   string   `json:"message"`
	Languages []string `json:"languages"`
	Play      bool     `json:"play,omitempty"` // start playback immediately after creation
}

type CreateAlertResponse struct {
	Alert   Alert `json:"alert"`
	Playing bool  `json:"playing"`
}

type ListAlertsResponse struct {
	Alerts []Alert `json:"alerts"`
	Total  int     `json:"total"`
}

// PlaybackStatus is a snapshot of the playback session for the UI.
type PlaybackStatus struct {
	Active       bool    `json:"active"`
	CurrentIndex int     `json:"current_index"`
	Total        int     `json:"total"`
	Language     string  `json:"language,omitempty"`
	Progress     float64 `json:"progress"` // 0-100
}

// UpdateReadingRequest injects a manual sensor reading (demo/testing).
type UpdateReadingRequest struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// LanguageSupport reports voice availability for one logical language.
type LanguageSupport struct {
	Language  string `json:"language"`
	Supported bool   `json:"supported"`
	Voice     string `json:"voice,omitempty"`
	Locale    string `json:"locale,omitempty"`
	Fallback  bool   `json:"fallback"`
}
