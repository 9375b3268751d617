package weather

import (
	"fmt"
	"math"
	"strings"
	"time"

	"weatherwidget.app/internal/core/clock"
	"weatherwidget.app/internal/core/condition"
	"weatherwidget.app/internal/core/location"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/validation"
)

// FallbackProvider names observations fabricated when every provider failed
const FallbackProvider = "fallback"

const kphToMph = 0.621371

// LoadRequest carries the widget attributes for one load cycle
type LoadRequest struct {
	Location string
	Units    ports.Units
}

// IsValid validates a load request
func (r *LoadRequest) IsValid() error {
	if strings.TrimSpace(r.Location) == "" {
		return fmt.Errorf("location cannot be empty")
	}
	if !validation.IsValidUnits(string(r.Units)) {
		return fmt.Errorf("units must be F or C, got %q", r.Units)
	}
	return nil
}

// Normalize trims the location and applies the default units
func (r *LoadRequest) Normalize(defaultUnits ports.Units) {
	r.Location = strings.TrimSpace(r.Location)
	if strings.TrimSpace(string(r.Units)) == "" {
		r.Units = defaultUnits
	}
	r.Units = ports.Units(strings.ToUpper(strings.TrimSpace(string(r.Units))))
}

// Observation is the measured state handed to the presentation layer
type Observation struct {
	Temperature int                       `json:"temperature"`
	Units       ports.Units               `json:"units"`
	WindSpeed   int                       `json:"wind_speed"`
	WindUnit    string                    `json:"wind_unit"`
	Humidity    *int                      `json:"humidity,omitempty"`
	Condition   condition.Condition       `json:"condition"`
	Location    location.ResolvedLocation `json:"location"`
	Astronomy   *clock.AstronomyWindow    `json:"astronomy,omitempty"`
	Degraded    bool                      `json:"degraded"`
	Provider    string                    `json:"provider"`
	ObservedAt  time.Time                 `json:"observed_at"`
}

// TemperatureLabel renders the temperature as "72°F"
func (o *Observation) TemperatureLabel() string {
	return fmt.Sprintf("%d°%s", o.Temperature, o.Units)
}

// WindLabel renders the wind speed as "5 mph" or "8 km/h"
func (o *Observation) WindLabel() string {
	return fmt.Sprintf("%d %s", o.WindSpeed, o.WindUnit)
}

// WindForUnits converts km/h to the display unit of the widget's unit system
func WindForUnits(kph float64, units ports.Units) (int, string) {
	if units == ports.UnitsFahrenheit {
		return int(math.Round(kph * kphToMph)), "mph"
	}
	return int(math.Round(kph)), "km/h"
}

// mockWeather reproduces the fixed placeholder conditions used when no
// provider can answer
func mockWeather(units ports.Units, now time.Time) *ports.CurrentWeather {
	temp := 22.0
	if units == ports.UnitsFahrenheit {
		temp = 72.0
	}
	return &ports.CurrentWeather{
		Text:         condition.NamePartlyCloudy,
		Temperature:  temp,
		Units:        units,
		WindSpeedKph: 8,
		Provider:     FallbackProvider,
		FetchedAt:    now,
	}
}

func validateCurrent(current *ports.CurrentWeather) error {
	if current == nil {
		return fmt.Errorf("empty payload")
	}
	if math.IsNaN(current.Temperature) || math.IsInf(current.Temperature, 0) {
		return fmt.Errorf("temperature is not a number")
	}
	if current.WindSpeedKph < 0 || math.IsNaN(current.WindSpeedKph) {
		return fmt.Errorf("wind speed %f is invalid", current.WindSpeedKph)
	}
	if current.Humidity != nil && (*current.Humidity < 0 || *current.Humidity > 100) {
		return fmt.Errorf("humidity %f out of range", *current.Humidity)
	}
	return nil
}
