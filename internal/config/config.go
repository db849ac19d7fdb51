package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	APIPort            string
	BackendAPIKey      string // API key for authenticating requests (empty = no auth, dev mode)
	CorsAllowedOrigins string // Comma-separated allowed origins (empty = *, dev mode)

	// Alert languages spoken for sensor-triggered alerts
	AlertLanguages []string

	// ElevenLabs (preferred network TTS provider; empty key = live synthesis only)
	ElevenLabsKey     string
	ElevenLabsVoiceID string

	// Cartesia (legacy network TTS provider — used when ElevenLabs key is not set)
	CartesiaKey     string
	CartesiaURL     string
	CartesiaVoiceID string

	// OpenAI (optional LLM translation tier; empty = phrase table only)
	OpenAIKey string

	// Sensor simulation
	SimulationEnabled  bool
	SimulationInterval time.Duration

	// Sensor alert thresholds
	TempHigh     float64 // °C
	TempLow      float64 // °C
	HumidityHigh float64 // %
	WindHigh     float64 // km/h
	SmokeLevel   float64 // 0-100
	GasLevel     float64 // 0-100
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	_ = godotenv.Load()

	cfg := &Config{
		APIPort:            getEnv("API_PORT", "8080"),
		BackendAPIKey:      getEnv("BACKEND_API_KEY", ""),
		CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", ""),
		AlertLanguages:     getEnvList("ALERT_LANGUAGES", []string{"English"}),
		ElevenLabsKey:      getEnv("ELEVENLABS_API_KEY", ""),
		ElevenLabsVoiceID:  getEnv("ELEVENLABS_VOICE_ID", ""),
		CartesiaKey:        getEnv("CARTESIA_API_KEY", ""),
		CartesiaURL:        getEnv("CARTESIA_API_URL", "https://api.cartesia.ai"),
		CartesiaVoiceID:    getEnv("CARTESIA_VOICE_ID", ""),
		OpenAIKey:          getEnv("OPENAI_API_KEY", ""),
		SimulationEnabled:  getEnvBool("SIMULATION_ENABLED", true),
		SimulationInterval: getEnvDuration("SIMULATION_INTERVAL", 3*time.Second),
		TempHigh:           getEnvFloat("SENSOR_TEMP_HIGH", 35),
		TempLow:            getEnvFloat("SENSOR_TEMP_LOW", 5),
		HumidityHigh:       getEnvFloat("SENSOR_HUMIDITY_HIGH", 85),
		WindHigh:           getEnvFloat("SENSOR_WIND_HIGH", 30),
		SmokeLevel:         getEnvFloat("SENSOR_SMOKE_LEVEL", 50),
		GasLevel:           getEnvFloat("SENSOR_GAS_LEVEL", 50),
	}

	// Validate
	if len(cfg.AlertLanguages) == 0 {
		return nil, fmt.Errorf("ALERT_LANGUAGES must name at least one language")
	}

	if cfg.SimulationInterval <= 0 {
		return nil, fmt.Errorf("SIMULATION_INTERVAL must be positive")
	}

	if cfg.TempLow >= cfg.TempHigh {
		return nil, fmt.Errorf("SENSOR_TEMP_LOW (%.1f) must be below SENSOR_TEMP_HIGH (%.1f)", cfg.TempLow, cfg.TempHigh)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
