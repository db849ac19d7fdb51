package models

import (
	"testing"
)

func TestParseSensorType(t *testing.T) {
	cases := []struct {
		in   string
		want SensorType
		ok   bool
	}{
		{"temperature", SensorTemperature, true},
		{"Humidity", SensorHumidity, true},
		{"WIND", SensorWind, true},
		{"smoke", SensorSmoke, true},
		{"gas", SensorGas, true},
		{"pressure", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseSensorType(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseSensorType(%q): ok=%v, want %v", tc.in, ok, tc.ok)
		}
		if got != tc.want {
			t.Errorf("ParseSensorType(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSensorTypesComplete(t *testing.T) {
	types := SensorTypes()
	if len(types) != 5 {
		t.Fatalf("expected 5 sensor types, got %d", len(types))
	}
	for _, st := range types {
		if _, ok := ParseSensorType(string(st)); !ok {
			t.Errorf("sensor type %q does not round-trip through ParseSensorType", st)
		}
	}
}

func TestAlertAudioLiveText(t *testing.T) {
	live := AlertAudio{Language: "spanish", AudioRef: LiveAudioScheme + "Alerta: incendio", Source: AudioSourceLive}
	text, ok := live.LiveText()
	if !ok {
		t.Fatal("expected live reference")
	}
	if text != "Alerta: incendio" {
		t.Errorf("unexpected live text: %q", text)
	}

	rendered := AlertAudio{Language: "english", AudioRef: "data:audio/mpeg;base64,AAAA", Source: AudioSourceRendered}
	if _, ok := rendered.LiveText(); ok {
		t.Error("data URL should not be treated as live text")
	}
}
