package alerts

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/voxalert/voxalert/internal/models"
	"github.com/voxalert/voxalert/internal/speech"
	"github.com/voxalert/voxalert/internal/synth"
	"github.com/voxalert/voxalert/internal/translate"
)

type fakeSynth struct {
	fail  bool
	calls int
}

func (f *fakeSynth) Synthesize(_ context.Context, text, language string) (*synth.Result, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("synthesis unavailable")
	}
	return &synth.Result{AudioData: []byte("audio-" + language), Format: "mp3"}, nil
}

func newTestSession() (*speech.Session, *speech.SimEngine) {
	engine := speech.NewSimEngine()
	engine.SetDelay(2 * time.Millisecond)
	queue := speech.NewQueue(engine, speech.NewCatalog(engine), speech.QueueConfig{
		PollInterval:        time.Millisecond,
		PollAttempts:        3,
		SettleDelay:         time.Millisecond,
		RetryDelay:          time.Millisecond,
		InterUtteranceDelay: time.Millisecond,
	})
	return speech.NewSession(queue), engine
}

func newTestService(syn synth.Synthesizer) *Service {
	session, _ := newTestSession()
	return NewService(translate.NewPhraseTranslator(), syn, NewHistory(0), session, []string{"English", "Spanish"})
}

func TestCreateAlertLiveFallbackWithoutSynthesizer(t *testing.T) {
	svc := newTestService(nil)

	alert, err := svc.CreateAlert(context.Background(), "High temperature alert", []string{"English", "Spanish", "French"}, nil)
	if err != nil {
		t.Fatalf("CreateAlert: %v", err)
	}

	if len(alert.Audio) != 3 {
		t.Fatalf("expected 3 audio entries, got %d", len(alert.Audio))
	}
	wantLangs := []string{"English", "Spanish", "French"}
	for i, a := range alert.Audio {
		if a.Language != wantLangs[i] {
			t.Errorf("audio[%d].Language = %s, want %s (order must be preserved)", i, a.Language, wantLangs[i])
		}
		if a.Source != models.AudioSourceLive {
			t.Errorf("audio[%d].Source = %s, want live", i, a.Source)
		}
		if _, ok := a.LiveText(); !ok {
			t.Errorf("audio[%d] missing live reference: %q", i, a.AudioRef)
		}
	}
	if alert.Audio[1].Text != "Alerta de temperatura alta" {
		t.Errorf("Spanish translation = %q", alert.Audio[1].Text)
	}
}

func TestCreateAlertSynthesisFailureDegradesToLive(t *testing.T) {
	syn := &fakeSynth{fail: true}
	svc := newTestService(syn)

	alert, err := svc.CreateAlert(context.Background(), "Smoke detected", []string{"English", "German"}, nil)
	if err != nil {
		t.Fatalf("CreateAlert: %v", err)
	}
	if len(alert.Audio) != 2 {
		t.Fatalf("expected both languages despite synthesis failures, got %d", len(alert.Audio))
	}
	for i, a := range alert.Audio {
		if a.Source != models.AudioSourceLive {
			t.Errorf("audio[%d].Source = %s, want live fallback", i, a.Source)
		}
	}
	if syn.calls != 2 {
		t.Errorf("synthesizer called %d times, want 2", syn.calls)
	}
}

func TestCreateAlertRenderedAudio(t *testing.T) {
	svc := newTestService(&fakeSynth{})

	alert, err := svc.CreateAlert(context.Background(), "Gas leak detected", []string{"English"}, nil)
	if err != nil {
		t.Fatalf("CreateAlert: %v", err)
	}
	a := alert.Audio[0]
	if a.Source != models.AudioSourceRendered {
		t.Fatalf("source = %s, want rendered", a.Source)
	}
	if !strings.HasPrefix(a.AudioRef, "data:audio/mpeg;base64,") {
		t.Errorf("expected data URL, got %q", a.AudioRef)
	}
}

func TestCreateAlertStoredInHistory(t *testing.T) {
	svc := newTestService(nil)

	alert, err := svc.CreateAlert(context.Background(), "High wind alert", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(alert.Languages) != 2 {
		t.Errorf("expected default languages, got %v", alert.Languages)
	}

	stored, ok := svc.History().Get(alert.ID)
	if !ok {
		t.Fatal("alert not found in history")
	}
	if stored.Message != "High wind alert" {
		t.Errorf("stored message = %q", stored.Message)
	}
}

func TestCreateAlertEmptyMessage(t *testing.T) {
	svc := newTestService(nil)
	if _, err := svc.CreateAlert(context.Background(), "", nil, nil); err == nil {
		t.Fatal("expected error for empty message")
	}
}

func TestPlayAlertSpeaksAllLanguages(t *testing.T) {
	session, engine := newTestSession()
	svc := NewService(translate.NewPhraseTranslator(), nil, NewHistory(0), session, nil)

	alert, err := svc.CreateAlert(context.Background(), "High temperature alert", []string{"English", "Spanish"}, nil)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	svc.PlayAlert(alert, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("playback did not complete")
	}
	if got := len(engine.Spoken()); got != 2 {
		t.Errorf("expected 2 spoken utterances, got %d", got)
	}
}

func TestHistorySeededAndBounded(t *testing.T) {
	h := NewSeededHistory(0)
	seeded := h.List()
	if len(seeded) != 2 {
		t.Fatalf("expected 2 seeded alerts, got %d", len(seeded))
	}
	if seeded[0].SensorType == nil || *seeded[0].SensorType != models.SensorTemperature {
		t.Errorf("newest seeded alert should be the temperature alert, got %+v", seeded[0].SensorType)
	}

	small := NewHistory(2)
	for i := 0; i < 5; i++ {
		small.Append(models.Alert{Message: "m"})
	}
	if got := len(small.List()); got != 2 {
		t.Errorf("history not trimmed, got %d entries", got)
	}
}
