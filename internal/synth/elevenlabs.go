package synth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// ElevenLabs Text-to-Speech Service
// Uses ElevenLabs REST API to render alert announcements as speech audio.
// Model: eleven_multilingual_v1 — covers every alert language we support.
// ---------------------------------------------------------------------------

const (
	elevenLabsBaseURL           = "https://api.elevenlabs.io"
	elevenLabsMultilingualModel = "eleven_multilingual_v1"
	elevenLabsDefaultVoice      = "21m00Tcm4TlvDq8ikWAM" // Rachel
)

// elevenLabsVoiceByLanguage picks a native-sounding voice per language.
// Languages not listed use the default voice with the multilingual model.
var elevenLabsVoiceByLanguage = map[string]string{
	"English": "21m00Tcm4TlvDq8ikWAM", // Rachel
	"Spanish": "EXAVITQu4vr4xnSDxMaL",
	"French":  "jsCqWAovK2LkecY7zXl4",
	"German":  "AZnzlk1XvdvUeBnXmlld",
	"Italian": "MF3mGyEYCl7XYWbV9V6O",
	"Hindi":   "pNInz6obpgDQGcFmaJgB", // Adam
}

// ElevenLabsService handles pre-rendered speech via the ElevenLabs API.
type ElevenLabsService struct {
	apiKey  string
	baseURL string
	voiceID string
	modelID string
	client  *http.Client
}

// Ensure ElevenLabsService implements Synthesizer at compile time.
var _ Synthesizer = (*ElevenLabsService)(nil)

// NewElevenLabsService creates an ElevenLabs synthesizer with defaults.
func NewElevenLabsService(apiKey string) *ElevenLabsService {
	return NewElevenLabsServiceWithVoice(apiKey, "")
}

// NewElevenLabsServiceWithVoice creates an ElevenLabs synthesizer with a
// custom default voice ID.
func NewElevenLabsServiceWithVoice(apiKey, voiceID string) *ElevenLabsService {
	if voiceID == "" {
		voiceID = elevenLabsDefaultVoice
	}
	return &ElevenLabsService{
		apiKey:  apiKey,
		baseURL: elevenLabsBaseURL,
		voiceID: voiceID,
		modelID: elevenLabsMultilingualModel,
		client:  &http.Client{Timeout: 90 * time.Second},
	}
}

type elevenLabsRequest struct {
	Text          string                   `json:"text"`
	ModelID       string                   `json:"model_id,omitempty"`
	VoiceSettings *elevenLabsVoiceSettings `json:"voice_settings,omitempty"`
}

type elevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Synthesize renders translated text with the language's recommended
// voice. Unknown voice IDs and rejected model IDs trigger one fallback
// attempt each, so a stale voice map degrades instead of failing the
// whole alert.
func (s *ElevenLabsService) Synthesize(ctx context.Context, text, language string) (*Result, error) {
	voiceID := s.voiceID
	if v, ok := elevenLabsVoiceByLanguage[language]; ok {
		voiceID = v
	}
	return s.synthesize(ctx, text, language, voiceID, s.modelID, true)
}

func (s *ElevenLabsService) synthesize(ctx context.Context, text, language, voiceID, modelID string, allowFallback bool) (*Result, error) {
	reqBody := elevenLabsRequest{
		Text:    text,
		ModelID: modelID,
		VoiceSettings: &elevenLabsVoiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ElevenLabs request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", s.baseURL, voiceID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create ElevenLabs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", s.apiKey)

	log.Printf("[ElevenLabs] Generating speech (language=%s, voiceID=%s, model=%s, textLen=%d)",
		language, voiceID, modelID, len(text))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ElevenLabs request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		errText := string(body)

		if allowFallback {
			// A stale per-language voice ID falls back to the default voice.
			if strings.Contains(errText, "voice_not_found") && voiceID != s.voiceID {
				log.Printf("[ElevenLabs] Voice %s not found, retrying with default voice", voiceID)
				return s.synthesize(ctx, text, language, s.voiceID, modelID, false)
			}
			// A rejected model ID falls back to the account default model.
			if strings.Contains(errText, "invalid_uid") && strings.Contains(errText, "model_id") {
				log.Printf("[ElevenLabs] Model %s rejected, retrying without model_id", modelID)
				return s.synthesize(ctx, text, language, voiceID, "", false)
			}
		}
		return nil, fmt.Errorf("ElevenLabs returned status %d: %s", resp.StatusCode, errText)
	}

	// The response body IS the audio file.
	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ElevenLabs audio response: %w", err)
	}
	if len(audioData) == 0 {
		return nil, fmt.Errorf("ElevenLabs returned empty audio")
	}

	durationMs := estimateAudioDuration(text, 1.0)
	log.Printf("[ElevenLabs] Speech generated (%d bytes, estimated %dms)", len(audioData), durationMs)

	return &Result{
		AudioData:  audioData,
		DurationMs: durationMs,
		Format:     "mp3",
	}, nil
}
