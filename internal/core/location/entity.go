package location

import (
	"fmt"
	"strings"

	"weatherwidget.app/internal/ports"
)

// Sources a resolved location can come from besides a named geocoder
const (
	SourceStatic = "static"
	SourceCache  = "cache"
)

// ResolvedLocation is a place with coordinates, a short name and an IANA zone
type ResolvedLocation struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
	TimezoneID  string  `json:"timezone_id"`
	Source      string  `json:"source"`
}

// IsValid validates a resolved location
func (l *ResolvedLocation) IsValid() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range", l.Longitude)
	}
	if strings.TrimSpace(l.DisplayName) == "" {
		return fmt.Errorf("display name cannot be empty")
	}
	if strings.TrimSpace(l.TimezoneID) == "" {
		return fmt.Errorf("timezone cannot be empty")
	}
	return nil
}

func (l *ResolvedLocation) toPorts() *ports.LocationData {
	return &ports.LocationData{
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		DisplayName: l.DisplayName,
		TimezoneID:  l.TimezoneID,
		Source:      l.Source,
	}
}

func fromPorts(data *ports.LocationData) *ResolvedLocation {
	return &ResolvedLocation{
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		DisplayName: data.DisplayName,
		TimezoneID:  data.TimezoneID,
		Source:      data.Source,
	}
}

// DisplayName picks the most specific place-name component, then the first
// segment of the formatted address, then the query itself
func DisplayName(result *ports.GeocodeResult, query string) string {
	c := result.Components
	for _, candidate := range []string{
		c.City, c.Town, c.Village, c.Municipality, c.Hamlet, c.Suburb, c.County, c.State,
	} {
		if name := strings.TrimSpace(candidate); name != "" {
			return name
		}
	}

	if name := FirstSegment(result.FormattedAddress); name != "" {
		return name
	}
	return FirstSegment(query)
}

// FirstSegment returns the trimmed text before the first comma
func FirstSegment(s string) string {
	head, _, _ := strings.Cut(s, ",")
	return strings.TrimSpace(head)
}

// NormalizeQuery trims and lower-cases a query for cache keys
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}
