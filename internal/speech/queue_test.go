package speech

import (
	"testing"
	"time"
)

func testQueueConfig() QueueConfig {
	return QueueConfig{
		PollInterval:        time.Millisecond,
		PollAttempts:        3,
		SettleDelay:         time.Millisecond,
		SpeakAttempts:       2,
		RetryDelay:          time.Millisecond,
		UtteranceTimeout:    200 * time.Millisecond,
		InterUtteranceDelay: time.Millisecond,
	}
}

func newTestQueue(engine *SimEngine, cfg QueueConfig) *Queue {
	return NewQueue(engine, NewCatalog(engine), cfg)
}

func collect(t *testing.T, done <-chan error, timeout time.Duration) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		t.Fatal("timed out waiting for utterance result")
		return nil
	}
}

func TestQueueSpeaksSequentially(t *testing.T) {
	engine := NewSimEngine()
	engine.SetDelay(5 * time.Millisecond)
	q := newTestQueue(engine, testQueueConfig())

	d1 := q.Enqueue("High temperature alert", "English")
	d2 := q.Enqueue("Alerta de temperatura alta", "Spanish")
	d3 := q.Enqueue("Alerte de température élevée", "French")

	for i, d := range []<-chan error{d1, d2, d3} {
		if err := collect(t, d, time.Second); err != nil {
			t.Fatalf("item %d failed: %v", i, err)
		}
	}

	spoken := engine.Spoken()
	if len(spoken) != 3 {
		t.Fatalf("expected 3 spoken utterances, got %d", len(spoken))
	}
	wantLocales := []string{"en-US", "es-ES", "fr-FR"}
	for i, req := range spoken {
		if req.Locale != wantLocales[i] {
			t.Errorf("utterance %d locale = %s, want %s", i, req.Locale, wantLocales[i])
		}
		if req.Rate != 0.8 {
			t.Errorf("utterance %d rate = %v, want 0.8", i, req.Rate)
		}
	}
}

func TestQueueRetriesAfterFailure(t *testing.T) {
	engine := NewSimEngine()
	engine.FailNext(1, ErrSynthesis)
	q := newTestQueue(engine, testQueueConfig())

	if err := collect(t, q.Enqueue("hello", "English"), time.Second); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if got := len(engine.Spoken()); got != 1 {
		t.Errorf("expected 1 completed utterance, got %d", got)
	}
}

func TestQueueFailsAfterRetriesExhausted(t *testing.T) {
	engine := NewSimEngine()
	engine.FailNext(2, ErrSynthesis)
	q := newTestQueue(engine, testQueueConfig())

	err := collect(t, q.Enqueue("hello", "English"), time.Second)
	if err == nil {
		t.Fatal("expected an error after both attempts failed")
	}
}

func TestQueueInterruptedCountsAsSuccess(t *testing.T) {
	engine := NewSimEngine()
	engine.FailNext(1, ErrInterrupted)
	q := newTestQueue(engine, testQueueConfig())

	if err := collect(t, q.Enqueue("hello", "English"), time.Second); err != nil {
		t.Fatalf("interrupted utterance should resolve as success, got %v", err)
	}
	// No retry should have happened.
	if got := len(engine.Spoken()); got != 0 {
		t.Errorf("expected no completed utterances, got %d", got)
	}
}

func TestQueueCancelAllResolvesEverything(t *testing.T) {
	engine := NewSimEngine()
	engine.SetDelay(100 * time.Millisecond)
	q := newTestQueue(engine, testQueueConfig())

	d1 := q.Enqueue("one", "English")
	d2 := q.Enqueue("two", "Spanish")
	d3 := q.Enqueue("three", "French")

	time.Sleep(10 * time.Millisecond) // let the first utterance start
	q.CancelAll()

	for i, d := range []<-chan error{d1, d2, d3} {
		if err := collect(t, d, time.Second); err != nil {
			t.Fatalf("cancelled item %d should resolve as success, got %v", i, err)
		}
	}
	if q.Pending() != 0 {
		t.Errorf("expected empty queue after cancel, got %d pending", q.Pending())
	}
}

func TestQueueStuckUtteranceTimesOutAsSuccess(t *testing.T) {
	engine := NewSimEngine()
	engine.DropNext(1)
	cfg := testQueueConfig()
	cfg.UtteranceTimeout = 30 * time.Millisecond
	q := newTestQueue(engine, cfg)

	start := time.Now()
	if err := collect(t, q.Enqueue("hello", "English"), time.Second); err != nil {
		t.Fatalf("timed-out utterance should resolve as success, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("resolved before the timeout elapsed: %v", elapsed)
	}
}

func TestQueueInterUtteranceDelay(t *testing.T) {
	engine := NewSimEngine()
	engine.SetDelay(time.Millisecond)
	cfg := testQueueConfig()
	cfg.InterUtteranceDelay = 40 * time.Millisecond
	q := newTestQueue(engine, cfg)

	start := time.Now()
	d1 := q.Enqueue("one", "English")
	d2 := q.Enqueue("two", "Spanish")
	collect(t, d1, time.Second)
	collect(t, d2, time.Second)

	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("expected at least the inter-utterance delay between items, took %v", elapsed)
	}
}
