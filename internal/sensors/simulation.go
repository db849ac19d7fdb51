package sensors

import (
	"log"
	"time"

	"github.com/voxalert/voxalert/internal/models"
)

// StartSimulation seeds baseline readings and begins a random walk over
// every sensor. Restarting an active simulation replaces it.
func (h *Hub) StartSimulation() {
	h.StopSimulation()

	h.UpdateReading(models.SensorTemperature, 25, "°C")
	h.UpdateReading(models.SensorHumidity, 50, "%")
	h.UpdateReading(models.SensorWind, 10, "km/h")
	h.UpdateReading(models.SensorSmoke, 0, "level")
	h.UpdateReading(models.SensorGas, 0, "level")

	stop := make(chan struct{})
	h.mu.Lock()
	h.simStop = stop
	interval := h.interval
	h.mu.Unlock()

	log.Printf("[Sensors] Simulation started (interval=%s)", interval)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				h.simulateStep()
			case <-stop:
				return
			}
		}
	}()
}

// StopSimulation halts the random walk. Latest readings stay queryable.
func (h *Hub) StopSimulation() {
	h.mu.Lock()
	stop := h.simStop
	h.simStop = nil
	h.mu.Unlock()

	if stop != nil {
		close(stop)
		log.Printf("[Sensors] Simulation stopped")
	}
}

// SimulationRunning reports whether the random walk is active.
func (h *Hub) SimulationRunning() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.simStop != nil
}

func (h *Hub) simulateStep() {
	value := func(t models.SensorType, def float64) float64 {
		if r, ok := h.Reading(t); ok {
			return r.Value
		}
		return def
	}

	h.mu.Lock()
	rng := h.rng
	tempDelta := rng.Float64()*2 - 1
	humidityDelta := rng.Float64()*5 - 2.5
	windDelta := rng.Float64()*3 - 1.5
	smokeSpike := rng.Float64() < 0.01
	smokeJump := rng.Float64() * 20
	gasSpike := rng.Float64() < 0.01
	gasJump := rng.Float64() * 20
	h.mu.Unlock()

	h.UpdateReading(models.SensorTemperature, clamp(value(models.SensorTemperature, 25)+tempDelta, -10, 50), "°C")
	h.UpdateReading(models.SensorHumidity, clamp(value(models.SensorHumidity, 50)+humidityDelta, 0, 100), "%")
	h.UpdateReading(models.SensorWind, clamp(value(models.SensorWind, 10)+windDelta, 0, 50), "km/h")

	// Smoke and gas mostly decay, with a rare spike.
	smoke := value(models.SensorSmoke, 0)
	if smokeSpike {
		h.UpdateReading(models.SensorSmoke, clamp(smoke+smokeJump, 0, 100), "level")
	} else if smoke > 0 {
		h.UpdateReading(models.SensorSmoke, clamp(smoke-5, 0, 100), "level")
	}

	gas := value(models.SensorGas, 0)
	if gasSpike {
		h.UpdateReading(models.SensorGas, clamp(gas+gasJump, 0, 100), "level")
	} else if gas > 0 {
		h.UpdateReading(models.SensorGas, clamp(gas-5, 0, 100), "level")
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
