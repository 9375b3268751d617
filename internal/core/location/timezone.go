package location

import (
	"fmt"
	"math"
)

type region struct {
	minLat, maxLat float64
	minLon, maxLon float64
	// bands are checked west to east; the last zone catches the rest
	bands []band
	east  string
}

type band struct {
	maxLon float64
	zone   string
	// inclusive upper bound when true
	inclusive bool
}

func (r region) contains(lat, lon float64) bool {
	return lat >= r.minLat && lat <= r.maxLat && lon >= r.minLon && lon <= r.maxLon
}

func (r region) zone(lon float64) string {
	for _, b := range r.bands {
		if lon < b.maxLon || (b.inclusive && lon == b.maxLon) {
			return b.zone
		}
	}
	return r.east
}

var regions = []region{
	{
		minLat: 24, maxLat: 71, minLon: -180, maxLon: -66,
		bands: []band{
			{maxLon: -130, zone: "America/Anchorage"},
			{maxLon: -114, zone: "America/Los_Angeles"},
			{maxLon: -104, zone: "America/Denver"},
			{maxLon: -85, zone: "America/Chicago"},
		},
		east: "America/New_York",
	},
	{
		minLat: 35, maxLat: 71, minLon: -10, maxLon: 40,
		bands: []band{
			{maxLon: 5, zone: "Europe/London", inclusive: true},
			{maxLon: 15, zone: "Europe/Paris", inclusive: true},
			{maxLon: 25, zone: "Europe/Berlin", inclusive: true},
		},
		east: "Europe/Moscow",
	},
	{
		minLat: 0, maxLat: 50, minLon: 60, maxLon: 150,
		bands: []band{
			{maxLon: 75, zone: "Asia/Kolkata", inclusive: true},
			{maxLon: 105, zone: "Asia/Bangkok", inclusive: true},
			{maxLon: 125, zone: "Asia/Shanghai", inclusive: true},
		},
		east: "Asia/Tokyo",
	},
	{
		minLat: -45, maxLat: -10, minLon: 110, maxLon: 180,
		bands: []band{
			{maxLon: 130, zone: "Australia/Perth", inclusive: true},
			{maxLon: 145, zone: "Australia/Adelaide", inclusive: true},
		},
		east: "Australia/Sydney",
	},
}

// EstimateTimezone guesses an IANA zone from coordinates. Coarse regional
// boxes come first; elsewhere an Etc/GMT zone is derived from longitude/15.
// The result is never empty.
func EstimateTimezone(lat, lon float64) string {
	for _, r := range regions {
		if r.contains(lat, lon) {
			return r.zone(lon)
		}
	}
	return offsetZone(lon)
}

// Etc zones invert the sign: Etc/GMT-9 is UTC+9
func offsetZone(lon float64) string {
	offset := int(math.Round(lon / 15))
	if offset > 12 {
		offset = 12
	}
	if offset < -12 {
		offset = -12
	}

	switch {
	case offset == 0:
		return "Etc/GMT"
	case offset > 0:
		return fmt.Sprintf("Etc/GMT-%d", offset)
	default:
		return fmt.Sprintf("Etc/GMT+%d", -offset)
	}
}
