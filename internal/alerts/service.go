package alerts

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/voxalert/voxalert/internal/models"
	"github.com/voxalert/voxalert/internal/sensors"
	"github.com/voxalert/voxalert/internal/speech"
	"github.com/voxalert/voxalert/internal/synth"
	"github.com/voxalert/voxalert/internal/translate"
)

// Service turns a raw alert message into per-language audio and drives
// playback. Translation and synthesis fan out per language; individual
// language failures degrade to live speech rather than failing the alert.
type Service struct {
	translator  translate.Translator
	synthesizer synth.Synthesizer // nil means live speech only
	history     *History
	session     *speech.Session
	languages   []string // default languages for sensor-raised alerts
}

// NewService wires the alert pipeline.
func NewService(translator translate.Translator, synthesizer synth.Synthesizer, history *History, session *speech.Session, languages []string) *Service {
	if len(languages) == 0 {
		languages = []string{"English"}
	}
	return &Service{
		translator:  translator,
		synthesizer: synthesizer,
		history:     history,
		session:     session,
		languages:   languages,
	}
}

// History exposes the alert store for API reads.
func (s *Service) History() *History {
	return s.history
}

// Session exposes the playback session for API status and stop.
func (s *Service) Session() *speech.Session {
	return s.session
}

// CreateAlert translates the message into each requested language and
// attaches one audio reference per language, in request order. A language
// whose synthesis fails still gets a live-speech reference carrying the
// translated text; a language whose translation fails falls back to the
// original message. The alert is stored in history before returning.
func (s *Service) CreateAlert(ctx context.Context, message string, languages []string, sensorType *models.SensorType) (models.Alert, error) {
	if message == "" {
		return models.Alert{}, fmt.Errorf("alert message is empty")
	}
	if len(languages) == 0 {
		languages = s.languages
	}

	alert := models.Alert{
		ID:         uuid.New(),
		Message:    message,
		Timestamp:  time.Now(),
		Languages:  append([]string(nil), languages...),
		Audio:      make([]models.AlertAudio, len(languages)),
		SensorType: sensorType,
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, language := range languages {
		i, language := i, language
		g.Go(func() error {
			alert.Audio[i] = s.prepareLanguage(gctx, message, language)
			return nil
		})
	}
	g.Wait() // the workers never return errors

	s.history.Append(alert)
	log.Printf("[Alerts] Created alert %s (%d languages)", alert.ID, len(languages))
	return alert, nil
}

func (s *Service) prepareLanguage(ctx context.Context, message, language string) models.AlertAudio {
	text := message
	if res, err := s.translator.Translate(ctx, message, language); err == nil {
		text = res.Text
	} else {
		log.Printf("[Alerts] Translation failed for %s, using original text: %v", language, err)
	}

	if s.synthesizer != nil {
		res, err := s.synthesizer.Synthesize(ctx, text, language)
		if err == nil && len(res.AudioData) > 0 {
			return models.AlertAudio{
				Language: language,
				Text:     text,
				AudioRef: "data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(res.AudioData),
				Source:   models.AudioSourceRendered,
			}
		}
		if err != nil {
			log.Printf("[Alerts] Synthesis failed for %s, falling back to live speech: %v", language, err)
		}
	}

	return models.AlertAudio{
		Language: language,
		Text:     text,
		AudioRef: models.LiveAudioScheme + text,
		Source:   models.AudioSourceLive,
	}
}

// PlayAlert speaks the alert's languages in order through the playback
// session. The translated text is spoken for rendered references too,
// since the speech engine is the process's only audio output.
func (s *Service) PlayAlert(alert models.Alert, onComplete func()) {
	items := make([]speech.Item, 0, len(alert.Audio))
	for _, a := range alert.Audio {
		if a.Text == "" {
			continue
		}
		items = append(items, speech.Item{Language: a.Language, Text: a.Text})
	}
	if len(items) == 0 {
		log.Printf("[Alerts] Alert %s has no speakable audio", alert.ID)
		return
	}
	s.session.Start(items, onComplete)
}

// RunSensorAlerts consumes sensor threshold events until ctx is done,
// creating and immediately playing an alert for each threshold crossing.
// Recovery events are logged by the hub but do not raise alerts.
func (s *Service) RunSensorAlerts(ctx context.Context, hub *sensors.Hub) {
	events, cancel := hub.Subscribe()
	defer cancel()

	log.Printf("[Alerts] Sensor alert bridge running (languages=%v)", s.languages)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Kind != sensors.EventAlert {
				continue
			}
			sensorType := ev.Type
			alert, err := s.CreateAlert(ctx, ev.Message, s.languages, &sensorType)
			if err != nil {
				log.Printf("[Alerts] Failed to create sensor alert: %v", err)
				continue
			}
			s.PlayAlert(alert, nil)
		}
	}
}
