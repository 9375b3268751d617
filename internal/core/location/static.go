package location

import "strings"

// Well-known demo locations answered without touching a geocoder. Keys are
// matched exactly against the trimmed query.
var staticLocations = map[string]ResolvedLocation{
	"94513":             {37.9319, -121.6958, "Brentwood", "America/Los_Angeles", SourceStatic},
	"Brentwood, CA":     {37.9319, -121.6958, "Brentwood", "America/Los_Angeles", SourceStatic},
	"94102":             {37.7793, -122.4193, "San Francisco", "America/Los_Angeles", SourceStatic},
	"San Francisco":     {37.7749, -122.4194, "San Francisco", "America/Los_Angeles", SourceStatic},
	"San Francisco, CA": {37.7749, -122.4194, "San Francisco", "America/Los_Angeles", SourceStatic},
	"90210":             {34.0901, -118.4065, "Beverly Hills", "America/Los_Angeles", SourceStatic},
	"10001":             {40.7506, -73.9972, "New York", "America/New_York", SourceStatic},
	"New York":          {40.7128, -74.0060, "New York", "America/New_York", SourceStatic},
	"New York, NY":      {40.7128, -74.0060, "New York", "America/New_York", SourceStatic},
	"60601":             {41.8858, -87.6181, "Chicago", "America/Chicago", SourceStatic},
	"Chicago, IL":       {41.8781, -87.6298, "Chicago", "America/Chicago", SourceStatic},
	"80202":             {39.7527, -104.9993, "Denver", "America/Denver", SourceStatic},
	"Denver, CO":        {39.7392, -104.9903, "Denver", "America/Denver", SourceStatic},
	"London":            {51.5074, -0.1278, "London", "Europe/London", SourceStatic},
	"London, UK":        {51.5074, -0.1278, "London", "Europe/London", SourceStatic},
	"Paris":             {48.8566, 2.3522, "Paris", "Europe/Paris", SourceStatic},
	"Paris, France":     {48.8566, 2.3522, "Paris", "Europe/Paris", SourceStatic},
	"Tokyo":             {35.6762, 139.6503, "Tokyo", "Asia/Tokyo", SourceStatic},
	"Tokyo, Japan":      {35.6762, 139.6503, "Tokyo", "Asia/Tokyo", SourceStatic},
	"Sydney":            {-33.8688, 151.2093, "Sydney", "Australia/Sydney", SourceStatic},
	"Sydney, Australia": {-33.8688, 151.2093, "Sydney", "Australia/Sydney", SourceStatic},
}

// LookupStatic returns the well-known entry for query, if any
func LookupStatic(query string) (*ResolvedLocation, bool) {
	loc, ok := staticLocations[strings.TrimSpace(query)]
	if !ok {
		return nil, false
	}
	return &loc, true
}
