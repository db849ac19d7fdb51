package speech

import (
	"fmt"
	"sync"
	"time"
)

// Compile-time check that SimEngine implements Engine.
var _ Engine = (*SimEngine)(nil)

// DefaultSimVoices is the voice inventory a SimEngine starts with. It
// mirrors the kind of spread a desktop speech stack exposes: a default
// English voice plus a handful of common locales.
func DefaultSimVoices() []Voice {
	return []Voice{
		{ID: "sim-en-us", Name: "Samantha", Locale: "en-US", Default: true},
		{ID: "sim-en-gb", Name: "Daniel", Locale: "en-GB"},
		{ID: "sim-es-es", Name: "Monica", Locale: "es-ES"},
		{ID: "sim-fr-fr", Name: "Thomas", Locale: "fr-FR"},
		{ID: "sim-de-de", Name: "Anna", Locale: "de-DE"},
		{ID: "sim-hi-in", Name: "Lekha", Locale: "hi-IN"},
		{ID: "sim-zh-cn", Name: "Tingting", Locale: "zh-CN"},
	}
}

// SimEngine is an in-process speech engine that "plays" utterances on a
// timer. It stands in for a real audio device in the demo deployment and
// in tests, where its delay, failure and drop behavior are configurable.
type SimEngine struct {
	mu        sync.Mutex
	voices    []Voice
	busy      bool
	abort     chan struct{} // closed to cancel the in-flight utterance
	delay     time.Duration
	failNext  int
	failCode  ErrorCode
	dropNext  int
	listeners []func()
	spoken    []SpeakRequest
}

// NewSimEngine returns a SimEngine with the default voice inventory and a
// playback delay of 10ms per utterance.
func NewSimEngine() *SimEngine {
	return &SimEngine{
		voices: DefaultSimVoices(),
		delay:  10 * time.Millisecond,
	}
}

// SetDelay sets how long each utterance takes to play.
func (e *SimEngine) SetDelay(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.delay = d
}

// FailNext makes the next n utterances fail with the given code instead of
// completing.
func (e *SimEngine) FailNext(n int, code ErrorCode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failNext = n
	e.failCode = code
}

// DropNext makes the next n utterances hang after starting: no terminal
// event is emitted until the utterance is cancelled. This models a stuck
// audio stack.
func (e *SimEngine) DropNext(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dropNext = n
}

// SetVoices replaces the voice inventory and fires the voices-changed
// callbacks.
func (e *SimEngine) SetVoices(voices []Voice) {
	e.mu.Lock()
	e.voices = append([]Voice(nil), voices...)
	listeners := make([]func(), len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Spoken returns the requests that completed playback, in order.
func (e *SimEngine) Spoken() []SpeakRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]SpeakRequest(nil), e.spoken...)
}

func (e *SimEngine) Speak(req SpeakRequest) (<-chan Event, error) {
	e.mu.Lock()
	if e.busy {
		e.mu.Unlock()
		return nil, fmt.Errorf("sim engine: already speaking")
	}

	delay := e.delay
	fail := e.failNext > 0
	code := e.failCode
	if fail {
		e.failNext--
	}
	drop := !fail && e.dropNext > 0
	if drop {
		e.dropNext--
	}

	abort := make(chan struct{})
	e.abort = abort
	e.busy = true
	e.mu.Unlock()

	events := make(chan Event, 2)
	go func() {
		defer close(events)
		defer func() {
			e.mu.Lock()
			e.busy = false
			if e.abort == abort {
				e.abort = nil
			}
			e.mu.Unlock()
		}()

		events <- Event{Kind: EventStart}

		if fail {
			events <- Event{Kind: EventError, Code: code}
			return
		}

		if drop {
			// Hang until cancelled.
			<-abort
			events <- Event{Kind: EventError, Code: ErrInterrupted}
			return
		}

		select {
		case <-time.After(delay):
			e.mu.Lock()
			e.spoken = append(e.spoken, req)
			e.mu.Unlock()
			events <- Event{Kind: EventEnd}
		case <-abort:
			events <- Event{Kind: EventError, Code: ErrInterrupted}
		}
	}()

	return events, nil
}

func (e *SimEngine) Cancel() {
	e.mu.Lock()
	abort := e.abort
	e.abort = nil
	e.mu.Unlock()

	if abort != nil {
		close(abort)
	}
}

func (e *SimEngine) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

func (e *SimEngine) Voices() []Voice {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Voice(nil), e.voices...)
}

func (e *SimEngine) OnVoicesChanged(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}
