package condition

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCode_AllSupportedCodesHaveValidFields(t *testing.T) {
	c := NewClassifier(0)

	for _, code := range SupportedCodes() {
		cond := c.ClassifyCode(code)
		assert.NotEmpty(t, cond.Name, "code %d", code)
		assert.True(t, cond.DayVisual.IsValid(), "code %d", code)
		assert.True(t, cond.NightVisual.IsValid(), "code %d", code)
		assert.True(t, cond.DayEffect.IsValid(), "code %d", code)
		assert.True(t, cond.NightEffect.IsValid(), "code %d", code)
	}
}

func TestClassifyCode(t *testing.T) {
	c := NewClassifier(0)

	tests := []struct {
		name     string
		code     int
		expected string
		day      Effect
		night    Effect
	}{
		{"clear", 0, NameClear, EffectSun, EffectMoonStars},
		{"mainly clear", 1, NamePartlyCloudy, EffectSunClouds, EffectMoonClouds},
		{"overcast", 3, NameOvercast, EffectMoreClouds, EffectMoreClouds},
		{"fog", 45, NameFoggy, EffectFog, EffectFog},
		{"rime fog", 48, NameFoggy, EffectFog, EffectFog},
		{"drizzle", 53, NameDrizzle, EffectRain, EffectRain},
		{"heavy rain", 65, NameHeavyRain, EffectRain, EffectRain},
		{"snow", 73, NameSnow, EffectSnow, EffectSnow},
		{"showers", 81, NameRainShowers, EffectRain, EffectRain},
		{"storm", 95, NameThunderstorm, EffectLightning, EffectLightning},
		{"storm with hail", 99, NameThunderstorm, EffectLightning, EffectLightning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond := c.ClassifyCode(tt.code)
			assert.Equal(t, tt.expected, cond.Name)
			assert.Equal(t, tt.day, cond.DayEffect)
			assert.Equal(t, tt.night, cond.NightEffect)
		})
	}
}

func TestClassifyCode_UnknownReturnsDefault(t *testing.T) {
	c := NewClassifier(0)

	for _, code := range []int{-1, 4, 42, 100, 1000} {
		assert.Equal(t, Default, c.ClassifyCode(code), "code %d", code)
	}
	assert.Equal(t, NamePartlyCloudy, Default.Name)
	assert.Equal(t, EffectSunClouds, Default.DayEffect)
	assert.Equal(t, EffectMoonClouds, Default.NightEffect)
}

func TestClassifyText(t *testing.T) {
	c := NewClassifier(0)

	tests := []struct {
		text     string
		expected string
	}{
		{"Sunny", NameClear},
		{"CLEAR", NameClear},
		{"Partly cloudy", NamePartlyCloudy},
		{"Cloudy", NameCloudy},
		{"Overcast", NameCloudy},
		{"Patchy light drizzle", NameRain},
		{"Moderate rain", NameRain},
		{"Light rain shower", NameRain},
		{"Blizzard", NameSnow},
		{"Heavy snow", NameSnow},
		{"Thundery outbreaks possible", NameThunderstorm},
		{"Storm", NameThunderstorm},
		{"Mist", NameFoggy},
		{"Freezing fog", NameFoggy},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.ClassifyText(tt.text, Hint{}).Name)
		})
	}
}

func TestClassifyText_OrderShortCircuits(t *testing.T) {
	c := NewClassifier(0)

	// rain is checked before thunder
	assert.Equal(t, NameRain, c.ClassifyText("Thunderstorm with rain", Hint{}).Name)
	// partly is checked before cloudy
	assert.Equal(t, NamePartlyCloudy, c.ClassifyText("partly cloudy", Hint{}).Name)
}

func TestClassifyText_WindHint(t *testing.T) {
	c := NewClassifier(0)

	assert.Equal(t, NameWindy, c.ClassifyText("Breezy", Hint{WindSpeedKph: 35}).Name)
	assert.Equal(t, Default, c.ClassifyText("Breezy", Hint{WindSpeedKph: 20}))
	assert.Equal(t, Default, c.ClassifyText("", Hint{}))
	// keyword match beats the wind hint
	assert.Equal(t, NameCloudy, c.ClassifyText("Cloudy", Hint{WindSpeedKph: 60}).Name)

	windyEffect := c.ClassifyText("???", Hint{WindSpeedKph: 21})
	assert.Equal(t, VisualWindy, windyEffect.DayVisual)
	assert.Equal(t, EffectWindy, windyEffect.NightEffect)
}

func TestClassifier_CustomThreshold(t *testing.T) {
	c := NewClassifier(40)

	assert.Equal(t, Default, c.ClassifyText("gusty", Hint{WindSpeedKph: 35}))
	assert.Equal(t, NameWindy, c.ClassifyText("gusty", Hint{WindSpeedKph: 41}).Name)
}

func TestClassify_Dispatch(t *testing.T) {
	assert.Equal(t, NameClear, Classify(FromCode(0), Hint{}).Name)
	assert.Equal(t, NameThunderstorm, Classify(FromText("thunder"), Hint{}).Name)
	assert.Equal(t, Default, Classify(Raw{}, Hint{}))
}

func TestCondition_SelectionRule(t *testing.T) {
	for _, code := range SupportedCodes() {
		cond := ClassifyCode(code)
		assert.Equal(t, cond.DayVisual, cond.Visual(false))
		assert.Equal(t, cond.NightVisual, cond.Visual(true))
		assert.Equal(t, cond.DayEffect, cond.Effect(false))
		assert.Equal(t, cond.NightEffect, cond.Effect(true))
	}
}

func TestCondition_Label(t *testing.T) {
	c := NewClassifier(0)

	clearSky := c.ClassifyCode(0)
	assert.Equal(t, "Sunny", clearSky.Label(false))
	assert.Equal(t, "Clear Night", clearSky.Label(true))

	rain := c.ClassifyCode(63)
	assert.Equal(t, NameRain, rain.Label(false))
	assert.Equal(t, NameRain, rain.Label(true))
}

func TestCondition_JSON(t *testing.T) {
	data, err := json.Marshal(Default)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Partly Cloudy",
		"day_visual": "partly-cloudy",
		"night_visual": "partly-cloudy",
		"day_effect": "sun-clouds",
		"night_effect": "moon-clouds"
	}`, string(data))

	var decoded Condition
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Default, decoded)
}

func TestEnums_UnknownValues(t *testing.T) {
	assert.Equal(t, "unknown", VisualUnknown.String())
	assert.False(t, VisualUnknown.IsValid())
	assert.Equal(t, "unknown", EffectUnknown.String())
	assert.False(t, EffectUnknown.IsValid())

	var v VisualClass
	assert.Error(t, v.UnmarshalText([]byte("sparkly")))
	var e Effect
	assert.Error(t, e.UnmarshalText([]byte("confetti")))
}
