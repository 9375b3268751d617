// Package clock decides whether it is night at a location and formats the
// local wall-clock time shown by the widget.
package clock

import (
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

const (
	// NightStartHour and DayStartHour bound the fixed night window [19:00, 06:00)
	NightStartHour = 19
	DayStartHour   = 6

	minutesPerDay = 24 * 60
	labelLayout   = "3:04 PM"
)

var windowLayouts = []string{"3:04 PM", "3:04PM", "15:04"}

// AstronomyWindow holds local sunrise and sunset strings such as "6:30 AM"
type AstronomyWindow struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// Clock projects instants into IANA zones, falling back to the host zone
type Clock struct {
	host   *time.Location
	logger ports.Logger

	mu    sync.RWMutex
	zones map[string]*time.Location
}

// Option configures a Clock
type Option func(*Clock)

// WithHostLocation overrides the zone used when projection fails
func WithHostLocation(loc *time.Location) Option {
	return func(c *Clock) {
		if loc != nil {
			c.host = loc
		}
	}
}

// WithLogger attaches a logger for projection failures
func WithLogger(logger ports.Logger) Option {
	return func(c *Clock) {
		c.logger = logger
	}
}

// New creates a Clock using time.Local as the host zone
func New(opts ...Option) *Clock {
	c := &Clock{
		host:  time.Local,
		zones: make(map[string]*time.Location),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Location resolves timezoneID, returning a TimezoneProjection error on failure
func (c *Clock) Location(timezoneID string) (*time.Location, error) {
	id := strings.TrimSpace(timezoneID)
	if id == "" {
		return nil, errors.NewTimezoneProjectionError("empty timezone identifier", nil)
	}

	c.mu.RLock()
	loc, ok := c.zones[id]
	c.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, errors.NewTimezoneProjectionError("unknown timezone "+id, err)
	}

	c.mu.Lock()
	c.zones[id] = loc
	c.mu.Unlock()
	return loc, nil
}

// Project converts now into the target zone or, failing that, the host zone
func (c *Clock) Project(timezoneID string, now time.Time) time.Time {
	loc, err := c.Location(timezoneID)
	if err != nil {
		if c.logger != nil {
			c.logger.Debug("Timezone projection failed, using host clock",
				ports.F("timezone", timezoneID), ports.F("error", err))
		}
		return now.In(c.host)
	}
	return now.In(loc)
}

// IsNight reports whether now counts as night in the target zone. A valid
// astronomy window takes precedence over the fixed 19:00-06:00 threshold.
func (c *Clock) IsNight(timezoneID string, now time.Time, astro *AstronomyWindow) bool {
	local := c.Project(timezoneID, now)

	if astro != nil {
		sunrise, okRise := ParseTimeOfDay(astro.Sunrise)
		sunset, okSet := ParseTimeOfDay(astro.Sunset)
		if okRise && okSet && sunrise != sunset {
			current := local.Hour()*60 + local.Minute()
			return mod(current-sunrise, minutesPerDay) >= mod(sunset-sunrise, minutesPerDay)
		}
		if c.logger != nil {
			c.logger.Debug("Ignoring unusable astronomy window",
				ports.F("sunrise", astro.Sunrise), ports.F("sunset", astro.Sunset))
		}
	}

	hour := local.Hour()
	return hour >= NightStartHour || hour < DayStartHour
}

// LocalTimeLabel formats now in the target zone as "3:04 PM"
func (c *Clock) LocalTimeLabel(timezoneID string, now time.Time) string {
	return c.Project(timezoneID, now).Format(labelLayout)
}

// ParseTimeOfDay converts "H:MM AM/PM" (or "HH:MM") to minutes since midnight
func ParseTimeOfDay(s string) (int, bool) {
	value := strings.ToUpper(strings.TrimSpace(s))
	if value == "" {
		return 0, false
	}
	for _, layout := range windowLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}

func mod(a, m int) int {
	return ((a % m) + m) % m
}

var defaultClock = New()

// IsNight uses a Clock with the host zone fallback
func IsNight(timezoneID string, now time.Time, astro *AstronomyWindow) bool {
	return defaultClock.IsNight(timezoneID, now, astro)
}

// LocalTimeLabel uses a Clock with the host zone fallback
func LocalTimeLabel(timezoneID string, now time.Time) string {
	return defaultClock.LocalTimeLabel(timezoneID, now)
}
