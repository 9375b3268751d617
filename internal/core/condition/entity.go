// Package condition maps provider weather codes and condition text to the
// fixed set of visual classes and effect overlays the widget renders.
package condition

import "fmt"

// VisualClass selects the background styling of the window view
type VisualClass int

const (
	VisualUnknown VisualClass = iota
	VisualSunny
	VisualCloudy
	VisualRainy
	VisualSnowy
	VisualStormy
	VisualPartlyCloudy
	VisualFoggy
	VisualWindy
)

var visualNames = map[VisualClass]string{
	VisualSunny:        "sunny",
	VisualCloudy:       "cloudy",
	VisualRainy:        "rainy",
	VisualSnowy:        "snowy",
	VisualStormy:       "stormy",
	VisualPartlyCloudy: "partly-cloudy",
	VisualFoggy:        "foggy",
	VisualWindy:        "windy",
}

// String returns the CSS class name
func (v VisualClass) String() string {
	if name, ok := visualNames[v]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether v is one of the renderable classes
func (v VisualClass) IsValid() bool {
	_, ok := visualNames[v]
	return ok
}

// MarshalText implements encoding.TextMarshaler
func (v VisualClass) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (v *VisualClass) UnmarshalText(text []byte) error {
	for class, name := range visualNames {
		if name == string(text) {
			*v = class
			return nil
		}
	}
	return fmt.Errorf("unknown visual class %q", text)
}

// Effect selects the animated overlay drawn over the view
type Effect int

const (
	EffectUnknown Effect = iota
	EffectSun
	EffectMoon
	EffectMoonStars
	EffectClouds
	EffectMoreClouds
	EffectSunClouds
	EffectMoonClouds
	EffectRain
	EffectSnow
	EffectLightning
	EffectFog
	EffectWindy
)

var effectNames = map[Effect]string{
	EffectSun:        "sun",
	EffectMoon:       "moon",
	EffectMoonStars:  "moon-stars",
	EffectClouds:     "clouds",
	EffectMoreClouds: "more-clouds",
	EffectSunClouds:  "sun-clouds",
	EffectMoonClouds: "moon-clouds",
	EffectRain:       "rain",
	EffectSnow:       "snow",
	EffectLightning:  "lightning",
	EffectFog:        "fog",
	EffectWindy:      "windy-effects",
}

// String returns the effect key
func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether e is one of the renderable effects
func (e Effect) IsValid() bool {
	_, ok := effectNames[e]
	return ok
}

// MarshalText implements encoding.TextMarshaler
func (e Effect) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *Effect) UnmarshalText(text []byte) error {
	for effect, name := range effectNames {
		if name == string(text) {
			*e = effect
			return nil
		}
	}
	return fmt.Errorf("unknown effect %q", text)
}

// Condition is a normalized weather classification
type Condition struct {
	Name        string      `json:"name"`
	DayVisual   VisualClass `json:"day_visual"`
	NightVisual VisualClass `json:"night_visual"`
	DayEffect   Effect      `json:"day_effect"`
	NightEffect Effect      `json:"night_effect"`
}

// Visual returns the visual class for the given time of day
func (c Condition) Visual(isNight bool) VisualClass {
	if isNight {
		return c.NightVisual
	}
	return c.DayVisual
}

// Effect returns the effect overlay for the given time of day
func (c Condition) Effect(isNight bool) Effect {
	if isNight {
		return c.NightEffect
	}
	return c.DayEffect
}

// Label returns the display label; "Clear" reads as "Clear Night" or "Sunny"
func (c Condition) Label(isNight bool) string {
	if c.Name != NameClear {
		return c.Name
	}
	if isNight {
		return "Clear Night"
	}
	return "Sunny"
}

// Condition names
const (
	NameClear        = "Clear"
	NamePartlyCloudy = "Partly Cloudy"
	NameCloudy       = "Cloudy"
	NameOvercast     = "Overcast"
	NameFoggy        = "Foggy"
	NameDrizzle      = "Drizzle"
	NameLightRain    = "Light Rain"
	NameRain         = "Rain"
	NameHeavyRain    = "Heavy Rain"
	NameFreezingRain = "Freezing Rain"
	NameLightSnow    = "Light Snow"
	NameSnow         = "Snow"
	NameHeavySnow    = "Heavy Snow"
	NameRainShowers  = "Rain Showers"
	NameSnowShowers  = "Snow Showers"
	NameThunderstorm = "Thunderstorm"
	NameWindy        = "Windy"
)

// Default is returned for any input the classifier does not recognise
var Default = Condition{NamePartlyCloudy, VisualPartlyCloudy, VisualPartlyCloudy, EffectSunClouds, EffectMoonClouds}

var (
	clearSky = Condition{NameClear, VisualSunny, VisualSunny, EffectSun, EffectMoonStars}
	cloudy   = Condition{NameCloudy, VisualCloudy, VisualCloudy, EffectClouds, EffectClouds}
	overcast = Condition{NameOvercast, VisualCloudy, VisualCloudy, EffectMoreClouds, EffectMoreClouds}
	foggy    = Condition{NameFoggy, VisualFoggy, VisualFoggy, EffectFog, EffectFog}
	windy    = Condition{NameWindy, VisualWindy, VisualWindy, EffectWindy, EffectWindy}
	storm    = Condition{NameThunderstorm, VisualStormy, VisualStormy, EffectLightning, EffectLightning}
)

func rainy(name string) Condition {
	return Condition{name, VisualRainy, VisualRainy, EffectRain, EffectRain}
}

func snowy(name string) Condition {
	return Condition{name, VisualSnowy, VisualSnowy, EffectSnow, EffectSnow}
}
