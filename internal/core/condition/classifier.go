package condition

import "strings"

// DefaultWindyThresholdKph is the wind speed above which unmatched text reads as windy
const DefaultWindyThresholdKph = 20.0

// Hint carries auxiliary measurements used when text matching finds nothing
type Hint struct {
	WindSpeedKph float64
}

// Raw is a provider condition payload: either a numeric code or free text
type Raw struct {
	Code *int
	Text string
}

// FromCode builds a numeric-code Raw
func FromCode(code int) Raw {
	return Raw{Code: &code}
}

// FromText builds a text Raw
func FromText(text string) Raw {
	return Raw{Text: text}
}

var codeTable = map[int]Condition{
	0:  clearSky,
	1:  Default,
	2:  Default,
	3:  overcast,
	45: foggy,
	48: foggy,
	51: rainy(NameDrizzle),
	53: rainy(NameDrizzle),
	55: rainy(NameDrizzle),
	56: rainy(NameFreezingRain),
	57: rainy(NameFreezingRain),
	61: rainy(NameLightRain),
	63: rainy(NameRain),
	65: rainy(NameHeavyRain),
	66: rainy(NameFreezingRain),
	67: rainy(NameFreezingRain),
	71: snowy(NameLightSnow),
	73: snowy(NameSnow),
	75: snowy(NameHeavySnow),
	77: snowy(NameSnow),
	80: rainy(NameRainShowers),
	81: rainy(NameRainShowers),
	82: rainy(NameRainShowers),
	85: snowy(NameSnowShowers),
	86: snowy(NameSnowShowers),
	95: storm,
	96: storm,
	99: storm,
}

// SupportedCodes returns every numeric code with an explicit table entry
func SupportedCodes() []int {
	codes := make([]int, 0, len(codeTable))
	for code := range codeTable {
		codes = append(codes, code)
	}
	return codes
}

type keywordGroup struct {
	keywords  []string
	condition Condition
}

// checked in order; "partly" must precede the bare "cloudy"
var keywordGroups = []keywordGroup{
	{[]string{"clear", "sunny"}, clearSky},
	{[]string{"partly"}, Default},
	{[]string{"cloudy", "overcast"}, cloudy},
	{[]string{"rain", "drizzle", "shower"}, rainy(NameRain)},
	{[]string{"snow", "blizzard"}, snowy(NameSnow)},
	{[]string{"thunder", "storm"}, storm},
	{[]string{"fog", "mist"}, foggy},
}

// Classifier maps raw provider conditions to a Condition
type Classifier struct {
	windyThresholdKph float64
}

// NewClassifier creates a classifier; a non-positive threshold uses the default
func NewClassifier(windyThresholdKph float64) *Classifier {
	if windyThresholdKph <= 0 {
		windyThresholdKph = DefaultWindyThresholdKph
	}
	return &Classifier{windyThresholdKph: windyThresholdKph}
}

// ClassifyCode looks up an Open-Meteo style weather code
func (c *Classifier) ClassifyCode(code int) Condition {
	if cond, ok := codeTable[code]; ok {
		return cond
	}
	return Default
}

// ClassifyText matches keyword groups case-insensitively, first match wins
func (c *Classifier) ClassifyText(text string, hint Hint) Condition {
	lower := strings.ToLower(text)
	for _, group := range keywordGroups {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.condition
			}
		}
	}

	if hint.WindSpeedKph > c.windyThresholdKph {
		return windy
	}
	return Default
}

// Classify dispatches on the raw payload mode
func (c *Classifier) Classify(raw Raw, hint Hint) Condition {
	if raw.Code != nil {
		return c.ClassifyCode(*raw.Code)
	}
	return c.ClassifyText(raw.Text, hint)
}

var defaultClassifier = NewClassifier(DefaultWindyThresholdKph)

// Classify uses the default windy threshold
func Classify(raw Raw, hint Hint) Condition {
	return defaultClassifier.Classify(raw, hint)
}

// ClassifyCode uses the default classifier
func ClassifyCode(code int) Condition {
	return defaultClassifier.ClassifyCode(code)
}

// ClassifyText uses the default windy threshold
func ClassifyText(text string, hint Hint) Condition {
	return defaultClassifier.ClassifyText(text, hint)
}
