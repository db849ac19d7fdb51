package synth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestElevenLabsSynthesize(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		w.Write([]byte("fake-mp3-bytes"))
	}))
	defer srv.Close()

	s := NewElevenLabsService("test-key")
	s.baseURL = srv.URL

	res, err := s.Synthesize(context.Background(), "Alerta de temperatura alta", "Spanish")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if string(res.AudioData) != "fake-mp3-bytes" {
		t.Errorf("unexpected audio payload: %q", res.AudioData)
	}
	if res.Format != "mp3" {
		t.Errorf("format = %s, want mp3", res.Format)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if !strings.Contains(gotPath, elevenLabsVoiceByLanguage["Spanish"]) {
		t.Errorf("expected Spanish voice in path, got %s", gotPath)
	}
}

func TestElevenLabsVoiceNotFoundFallback(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if strings.Contains(r.URL.Path, elevenLabsDefaultVoice) {
			w.Write([]byte("fallback-audio"))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":{"status":"voice_not_found"}}`))
	}))
	defer srv.Close()

	s := NewElevenLabsService("test-key")
	s.baseURL = srv.URL

	res, err := s.Synthesize(context.Background(), "Alerte de vent fort", "French")
	if err != nil {
		t.Fatalf("expected fallback to the default voice, got %v", err)
	}
	if string(res.AudioData) != "fallback-audio" {
		t.Errorf("unexpected audio payload: %q", res.AudioData)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 requests (language voice, then default), got %d", len(paths))
	}
}
