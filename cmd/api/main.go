package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voxalert/voxalert/internal/alerts"
	"github.com/voxalert/voxalert/internal/api"
	"github.com/voxalert/voxalert/internal/config"
	"github.com/voxalert/voxalert/internal/sensors"
	"github.com/voxalert/voxalert/internal/speech"
	"github.com/voxalert/voxalert/internal/synth"
	"github.com/voxalert/voxalert/internal/translate"
)

func main() {
	log.Println("Starting VoxAlert API...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Speech stack: engine, voice catalog, queue, playback session
	engine := speech.NewSimEngine()
	catalog := speech.NewCatalog(engine)
	queue := speech.NewQueue(engine, catalog, speech.DefaultQueueConfig())
	session := speech.NewSession(queue)
	log.Printf("Speech engine ready (%d voices)", len(engine.Voices()))

	// Translation — phrase table by default, model-backed when configured
	var translator translate.Translator
	if cfg.OpenAIKey != "" {
		translator = translate.NewOpenAITranslator(cfg.OpenAIKey)
		log.Println("Translation provider: OpenAI (phrase table fallback)")
	} else {
		translator = translate.NewPhraseTranslator()
		log.Println("Translation provider: phrase table")
	}

	// Pre-rendered synthesis — ElevenLabs preferred, Cartesia as legacy
	// fallback, live speech only when neither is configured
	var synthesizer synth.Synthesizer
	if cfg.ElevenLabsKey != "" {
		synthesizer = synth.NewElevenLabsServiceWithVoice(cfg.ElevenLabsKey, cfg.ElevenLabsVoiceID)
		log.Println("Synthesis provider: ElevenLabs")
	} else if cfg.CartesiaKey != "" {
		synthesizer = synth.NewCartesiaServiceWithVoice(cfg.CartesiaKey, cfg.CartesiaURL, cfg.CartesiaVoiceID)
		log.Println("Synthesis provider: Cartesia (legacy)")
	} else {
		log.Println("No synthesis provider configured — alerts use live speech")
	}

	// Sensors
	hub := sensors.NewHub(sensors.Thresholds{
		TempHigh:     cfg.TempHigh,
		TempLow:      cfg.TempLow,
		HumidityHigh: cfg.HumidityHigh,
		WindHigh:     cfg.WindHigh,
		SmokeLevel:   cfg.SmokeLevel,
		GasLevel:     cfg.GasLevel,
	}, cfg.SimulationInterval)

	// Alert pipeline
	alertSvc := alerts.NewService(translator, synthesizer, alerts.NewSeededHistory(0), session, cfg.AlertLanguages)

	// Sensor alerts run for the life of the process
	bridgeCtx, bridgeCancel := context.WithCancel(context.Background())
	go alertSvc.RunSensorAlerts(bridgeCtx, hub)

	if cfg.SimulationEnabled {
		hub.StartSimulation()
	}

	// API
	handler := api.NewHandler(alertSvc, hub, engine, catalog)
	router := api.NewRouter(handler, api.RouterConfig{
		BackendAPIKey:      cfg.BackendAPIKey,
		CorsAllowedOrigins: cfg.CorsAllowedOrigins,
	})

	if cfg.BackendAPIKey != "" {
		log.Println("API key authentication enabled")
	} else {
		log.Println("WARNING: No BACKEND_API_KEY set — API is unprotected (dev mode)")
	}

	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("API server listening on :%s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	hub.StopSimulation()
	session.Stop()
	bridgeCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
