package synth

import "context"

// ---------------------------------------------------------------------------
// Synthesizer — common interface for pre-rendered text-to-speech providers
// Both ElevenLabs and Cartesia implement this interface so the alert
// pipeline can use whichever is configured without knowing the provider.
// ---------------------------------------------------------------------------

// Result is the common response type from any synthesis provider.
type Result struct {
	AudioData  []byte
	DurationMs int
	Format     string // "mp3", "wav", etc.
}

// Synthesizer renders translated alert text into audio for a language.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) (*Result, error)
}

// estimateAudioDuration approximates playback length from text size when
// the provider does not report one. Roughly 15 characters per second at
// normal pace, scaled by speed.
func estimateAudioDuration(text string, speed float64) int {
	if speed <= 0 {
		speed = 1.0
	}
	seconds := float64(len(text)) / (15.0 * speed)
	return int(seconds * 1000)
}
