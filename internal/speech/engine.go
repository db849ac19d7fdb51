package speech

// Voice describes one synthetic voice exposed by an engine.
type Voice struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Locale  string `json:"locale"` // BCP-47, e.g. "es-ES"
	Default bool   `json:"default"`
}

// SpeakRequest is one utterance handed to an engine.
type SpeakRequest struct {
	Text   string
	Voice  *Voice // nil means the engine default
	Locale string // hint used when Voice is nil
	Rate   float64
	Pitch  float64
	Volume float64
}

// EventKind classifies the lifecycle events an engine emits per utterance.
type EventKind string

const (
	EventStart EventKind = "start"
	EventEnd   EventKind = "end"
	EventError EventKind = "error"
)

// ErrorCode identifies the engine-level failure for an EventError.
type ErrorCode string

const (
	// ErrInterrupted and ErrCanceled are emitted when playback is stopped
	// deliberately. The queue treats both as success, not failure.
	ErrInterrupted ErrorCode = "interrupted"
	ErrCanceled    ErrorCode = "canceled"

	ErrSynthesis   ErrorCode = "synthesis-failed"
	ErrNotAllowed  ErrorCode = "not-allowed"
	ErrUnavailable ErrorCode = "audio-unavailable"
)

// Event is one lifecycle notification for an in-flight utterance.
type Event struct {
	Kind EventKind
	Code ErrorCode // set only when Kind is EventError
}

// Engine is a speech synthesis backend with live playback. Speak returns a
// channel that delivers the utterance's lifecycle events and is closed once
// the utterance is finished, failed, or cancelled. Engines play one
// utterance at a time; Cancel discards anything in flight.
type Engine interface {
	Speak(req SpeakRequest) (<-chan Event, error)
	Cancel()
	Busy() bool

	// Voices returns the currently available voice inventory. The set may
	// change at runtime; OnVoicesChanged registers a callback fired when
	// it does.
	Voices() []Voice
	OnVoicesChanged(fn func())
}
