package widget

import (
	"strings"
	"time"

	"weatherwidget.app/internal/core/clock"
	"weatherwidget.app/internal/core/condition"
	"weatherwidget.app/internal/core/location"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/ports"
)

const (
	placeholderTemperature = "--°"
	unableToLoad           = "Unable to load"
	unknownLocation        = "Unknown"
)

// View is everything the rendering layer needs to draw one widget
type View struct {
	WidgetID         string                `json:"widget_id,omitempty"`
	Location         string                `json:"location"`
	Temperature      *int                  `json:"temperature,omitempty"`
	TemperatureLabel string                `json:"temperature_label"`
	Units            ports.Units           `json:"units"`
	ConditionLabel   string                `json:"condition_label"`
	VisualClass      condition.VisualClass `json:"visual_class"`
	Effect           condition.Effect      `json:"effect"`
	IsNight          bool                  `json:"is_night"`
	LocalTime        string                `json:"local_time"`
	TimezoneID       string                `json:"timezone_id,omitempty"`
	Wind             string                `json:"wind,omitempty"`
	Humidity         *int                  `json:"humidity,omitempty"`
	Degraded         bool                  `json:"degraded"`
	Provider         string                `json:"provider,omitempty"`
	Error            string                `json:"error,omitempty"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// Failed reports whether the view is the error placeholder
func (v View) Failed() bool {
	return v.Error != ""
}

// Compose selects the day or night variant of the condition and formats the
// observation for display at instant now
func Compose(obs *weather.Observation, clk *clock.Clock, now time.Time) View {
	zone := obs.Location.TimezoneID
	isNight := clk.IsNight(zone, now, obs.Astronomy)
	temp := obs.Temperature

	return View{
		Location:         obs.Location.DisplayName,
		Temperature:      &temp,
		TemperatureLabel: obs.TemperatureLabel(),
		Units:            obs.Units,
		ConditionLabel:   obs.Condition.Label(isNight),
		VisualClass:      obs.Condition.Visual(isNight),
		Effect:           obs.Condition.Effect(isNight),
		IsNight:          isNight,
		LocalTime:        clk.LocalTimeLabel(zone, now),
		TimezoneID:       zone,
		Wind:             obs.WindLabel(),
		Humidity:         obs.Humidity,
		Degraded:         obs.Degraded,
		Provider:         obs.Provider,
		UpdatedAt:        now,
	}
}

// ErrorView is the sentinel shown when a load cycle fails. It keeps the best
// known location name and still tells the time.
func ErrorView(knownName, attribute, timezoneID string, units ports.Units, err error, clk *clock.Clock, now time.Time) View {
	isNight := clk.IsNight(timezoneID, now, nil)
	message := unableToLoad
	if err != nil {
		message = err.Error()
	}

	return View{
		Location:         BestKnownName(knownName, attribute),
		TemperatureLabel: placeholderTemperature,
		Units:            units,
		ConditionLabel:   unableToLoad,
		VisualClass:      condition.Default.Visual(isNight),
		Effect:           condition.Default.Effect(isNight),
		IsNight:          isNight,
		LocalTime:        clk.LocalTimeLabel(timezoneID, now),
		TimezoneID:       timezoneID,
		Error:            message,
		UpdatedAt:        now,
	}
}

// BestKnownName prefers the last resolved name, then the attribute's first
// segment, then "Unknown"
func BestKnownName(knownName, attribute string) string {
	if name := strings.TrimSpace(knownName); name != "" {
		return name
	}
	if name := location.FirstSegment(attribute); name != "" {
		return name
	}
	return unknownLocation
}

// retime recomputes the clock-dependent fields of v
func retime(v View, obs *weather.Observation, clk *clock.Clock, now time.Time) View {
	if obs == nil || v.Failed() {
		v.IsNight = clk.IsNight(v.TimezoneID, now, nil)
		v.LocalTime = clk.LocalTimeLabel(v.TimezoneID, now)
		v.VisualClass = condition.Default.Visual(v.IsNight)
		v.Effect = condition.Default.Effect(v.IsNight)
		v.UpdatedAt = now
		return v
	}

	fresh := Compose(obs, clk, now)
	fresh.WidgetID = v.WidgetID
	return fresh
}
