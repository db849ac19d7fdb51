package speech

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/voxalert/voxalert/internal/translate"
)

// QueueConfig tunes the queue's timing. Zero values are replaced with the
// defaults from DefaultQueueConfig, so tests can shrink the delays without
// restating every field.
type QueueConfig struct {
	PollInterval        time.Duration // wait slice while the engine is busy
	PollAttempts        int           // busy polls before force-cancelling
	SettleDelay         time.Duration // pause after a force cancel
	SpeakAttempts       int           // total attempts per utterance
	RetryDelay          time.Duration // pause between attempts
	UtteranceTimeout    time.Duration // per-utterance cap before giving up
	InterUtteranceDelay time.Duration // gap between consecutive utterances

	Rate   float64
	Pitch  float64
	Volume float64
}

// DefaultQueueConfig returns the production timing. The rate is slowed to
// 0.8 so multi-language announcements stay intelligible.
func DefaultQueueConfig() QueueConfig {
	return QueueConfig{
		PollInterval:        250 * time.Millisecond,
		PollAttempts:        20,
		SettleDelay:         500 * time.Millisecond,
		SpeakAttempts:       2,
		RetryDelay:          time.Second,
		UtteranceTimeout:    10 * time.Second,
		InterUtteranceDelay: 1500 * time.Millisecond,
		Rate:                0.8,
		Pitch:               1.0,
		Volume:              1.0,
	}
}

func (c QueueConfig) withDefaults() QueueConfig {
	d := DefaultQueueConfig()
	if c.PollInterval <= 0 {
		c.PollInterval = d.PollInterval
	}
	if c.PollAttempts <= 0 {
		c.PollAttempts = d.PollAttempts
	}
	if c.SettleDelay <= 0 {
		c.SettleDelay = d.SettleDelay
	}
	if c.SpeakAttempts <= 0 {
		c.SpeakAttempts = d.SpeakAttempts
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = d.RetryDelay
	}
	if c.UtteranceTimeout <= 0 {
		c.UtteranceTimeout = d.UtteranceTimeout
	}
	if c.InterUtteranceDelay <= 0 {
		c.InterUtteranceDelay = d.InterUtteranceDelay
	}
	if c.Rate == 0 {
		c.Rate = d.Rate
	}
	if c.Pitch == 0 {
		c.Pitch = d.Pitch
	}
	if c.Volume == 0 {
		c.Volume = d.Volume
	}
	return c
}

// errSuperseded marks an utterance abandoned because its batch was
// cancelled. It is resolved as success, never surfaced to callers.
var errSuperseded = errors.New("speech superseded by cancellation")

type queueItem struct {
	text     string
	language string
	batch    uint64
	done     chan error
}

// Queue plays utterances strictly one at a time through an Engine. Each
// Enqueue returns a channel that receives exactly one value: nil on
// completion, or the final error after retries are exhausted. Cancellation
// resolves every affected utterance as success so callers never hang on a
// stopped batch.
type Queue struct {
	cfg     QueueConfig
	engine  Engine
	catalog *Catalog

	mu         sync.Mutex
	items      []*queueItem
	batch      uint64
	processing bool
}

// NewQueue builds a queue over the engine and catalog.
func NewQueue(engine Engine, catalog *Catalog, cfg QueueConfig) *Queue {
	return &Queue{
		cfg:     cfg.withDefaults(),
		engine:  engine,
		catalog: catalog,
	}
}

// Enqueue schedules one utterance under the current batch and starts the
// processor if idle. The returned channel is buffered; the result can be
// collected at any time.
func (q *Queue) Enqueue(text, language string) <-chan error {
	it := &queueItem{
		text:     text,
		language: language,
		done:     make(chan error, 1),
	}

	q.mu.Lock()
	it.batch = q.batch
	q.items = append(q.items, it)
	start := !q.processing
	if start {
		q.processing = true
	}
	q.mu.Unlock()

	if start {
		go q.run()
	}
	return it.done
}

// CancelAll stops the in-flight utterance, clears the queue and starts a
// new batch. Every pending utterance resolves as success.
func (q *Queue) CancelAll() {
	q.mu.Lock()
	q.batch++
	pending := q.items
	q.items = nil
	q.mu.Unlock()

	q.engine.Cancel()

	for _, it := range pending {
		it.done <- nil
	}
	if len(pending) > 0 {
		log.Printf("[SpeechQueue] Cancelled, cleared %d queued items", len(pending))
	}
}

// Pending returns the number of utterances waiting to be spoken.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Processing reports whether the queue worker is running.
func (q *Queue) Processing() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.processing
}

func (q *Queue) stale(it *queueItem) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return it.batch != q.batch
}

func (q *Queue) run() {
	for {
		q.mu.Lock()
		if len(q.items) == 0 {
			q.processing = false
			q.mu.Unlock()
			return
		}
		it := q.items[0]
		q.items = q.items[1:]
		q.mu.Unlock()

		if q.stale(it) {
			it.done <- nil
			continue
		}

		err := q.speakWithRetry(it)
		switch {
		case err == nil, errors.Is(err, errSuperseded), q.stale(it):
			it.done <- nil
		default:
			log.Printf("[SpeechQueue] Failed to speak %s after %d attempts: %v", it.language, q.cfg.SpeakAttempts, err)
			it.done <- err
		}

		q.mu.Lock()
		more := len(q.items) > 0 && it.batch == q.batch
		q.mu.Unlock()
		if more {
			time.Sleep(q.cfg.InterUtteranceDelay)
		}
	}
}

func (q *Queue) speakWithRetry(it *queueItem) error {
	var err error
	for attempt := 1; attempt <= q.cfg.SpeakAttempts; attempt++ {
		err = q.speakOnce(it)
		if err == nil || errors.Is(err, errSuperseded) {
			return err
		}
		if attempt == q.cfg.SpeakAttempts {
			break
		}
		log.Printf("[SpeechQueue] Attempt %d/%d failed for %s: %v", attempt, q.cfg.SpeakAttempts, it.language, err)

		time.Sleep(q.cfg.RetryDelay)
		if q.stale(it) {
			return errSuperseded
		}
	}
	return err
}

func (q *Queue) speakOnce(it *queueItem) error {
	// Wait for any current speech to clear.
	for i := 0; q.engine.Busy() && i < q.cfg.PollAttempts; i++ {
		time.Sleep(q.cfg.PollInterval)
		if q.stale(it) {
			return errSuperseded
		}
	}
	if q.engine.Busy() {
		log.Printf("[SpeechQueue] Engine still busy, force cancelling")
		q.engine.Cancel()
		time.Sleep(q.cfg.SettleDelay)
	}
	if q.stale(it) {
		return errSuperseded
	}

	binding := q.catalog.Resolve(it.language)
	locale := binding.Locale
	if lang, ok := translate.LookupLanguage(it.language); ok {
		locale = lang.Locale
	}

	events, err := q.engine.Speak(SpeakRequest{
		Text:   it.text,
		Voice:  binding.Voice,
		Locale: locale,
		Rate:   q.cfg.Rate,
		Pitch:  q.cfg.Pitch,
		Volume: q.cfg.Volume,
	})
	if err != nil {
		return fmt.Errorf("start speech for %s: %w", it.language, err)
	}

	timeout := time.NewTimer(q.cfg.UtteranceTimeout)
	defer timeout.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.Kind {
			case EventStart:
				log.Printf("[SpeechQueue] Started speaking %s: %q", it.language, clip(it.text, 50))
			case EventEnd:
				return nil
			case EventError:
				// Deliberate stops count as completion, only real
				// synthesis failures trigger a retry.
				if ev.Code == ErrInterrupted || ev.Code == ErrCanceled {
					log.Printf("[SpeechQueue] Treating %s as success for %s", ev.Code, it.language)
					return nil
				}
				return fmt.Errorf("speech failed for %s: %s", it.language, ev.Code)
			}
		case <-timeout.C:
			// A stuck utterance is abandoned and counted as done rather
			// than poisoning the rest of the batch.
			log.Printf("[SpeechQueue] Speech timeout for %s, cancelling", it.language)
			q.engine.Cancel()
			return nil
		}
	}
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
