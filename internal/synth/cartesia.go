package synth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/voxalert/voxalert/internal/translate"
)

const (
	// Default Cartesia API version
	cartesiaAPIVersion = "2024-06-10"

	cartesiaDefaultVoiceID = "a0e99841-438c-4a64-b679-ae501e7d6091"
)

// CartesiaService is the secondary synthesis provider, used when
// ElevenLabs is not configured.
type CartesiaService struct {
	apiKey         string
	apiURL         string
	apiVersion     string
	defaultVoiceID string
	client         *http.Client
}

// Ensure CartesiaService implements Synthesizer at compile time.
var _ Synthesizer = (*CartesiaService)(nil)

// NewCartesiaService creates a Cartesia synthesizer.
func NewCartesiaService(apiKey, apiURL string) *CartesiaService {
	return NewCartesiaServiceWithVoice(apiKey, apiURL, "")
}

// NewCartesiaServiceWithVoice creates a Cartesia synthesizer with a custom
// default voice.
func NewCartesiaServiceWithVoice(apiKey, apiURL, voiceID string) *CartesiaService {
	if voiceID == "" {
		voiceID = cartesiaDefaultVoiceID
	}
	return &CartesiaService{
		apiKey:         apiKey,
		apiURL:         apiURL,
		apiVersion:     cartesiaAPIVersion,
		defaultVoiceID: voiceID,
		client:         &http.Client{Timeout: 60 * time.Second},
	}
}

// cartesiaRequest matches the Cartesia API specification.
type cartesiaRequest struct {
	ModelID      string                 `json:"model_id"`
	Transcript   string                 `json:"transcript"`
	Voice        cartesiaVoiceSpecifier `json:"voice"`
	Language     *string                `json:"language,omitempty"`
	OutputFormat cartesiaOutputFormat   `json:"output_format"`
}

type cartesiaVoiceSpecifier struct {
	Mode string `json:"mode"`
	ID   string `json:"id"`
}

type cartesiaOutputFormat struct {
	Container  string `json:"container"`
	Encoding   string `json:"encoding,omitempty"`
	SampleRate int    `json:"sample_rate"`
	BitRate    int    `json:"bit_rate,omitempty"`
}

// Synthesize renders alert text through the multilingual sonic model,
// passing the ISO code of the target language when it is known.
func (s *CartesiaService) Synthesize(ctx context.Context, text, language string) (*Result, error) {
	reqBody := cartesiaRequest{
		ModelID:    "sonic-multilingual",
		Transcript: text,
		Voice: cartesiaVoiceSpecifier{
			Mode: "id",
			ID:   s.defaultVoiceID,
		},
		OutputFormat: cartesiaOutputFormat{
			Container:  "mp3",
			SampleRate: 44100,
			BitRate:    192000,
		},
	}
	if lang, ok := translate.LookupLanguage(language); ok {
		code := lang.Code
		reqBody.Language = &code
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/tts/bytes", s.apiURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cartesia-Version", s.apiVersion)

	log.Printf("[Cartesia] Generating speech (language=%s, textLen=%d)", language, len(text))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("cartesia returned status %d: %s", resp.StatusCode, string(body))
	}

	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}

	durationMs := estimateAudioDuration(text, 1.0)
	return &Result{
		AudioData:  audioData,
		DurationMs: durationMs,
		Format:     "mp3",
	}, nil
}
