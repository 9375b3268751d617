package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/core/condition"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/core/widget"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// WeatherQuery is the one-shot weather lookup
type WeatherQuery struct {
	Location string `form:"location" binding:"required"`
	Units    string `form:"units" binding:"omitempty,units"`
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	var query WeatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	obs, err := s.loader.LoadObservation(c.Request.Context(), weather.LoadRequest{
		Location: query.Location,
		Units:    ports.Units(normalizeUnits(query.Units)),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, widget.Compose(obs, s.clock, s.now()))
}

// ClassifyQuery selects code mode when code is present, text mode otherwise
type ClassifyQuery struct {
	Code    *int    `form:"code"`
	Text    string  `form:"text"`
	WindKph float64 `form:"wind_kph" binding:"gte=0"`
	Night   bool    `form:"night"`
}

// ClassificationResponse describes one classified condition
type ClassificationResponse struct {
	Name        string                `json:"name"`
	Label       string                `json:"label"`
	VisualClass condition.VisualClass `json:"visual_class"`
	Effect      condition.Effect      `json:"effect"`
	IsNight     bool                  `json:"is_night"`
}

// classify handles GET /api/classify requests
func (s *HTTPServerAdapter) classify(c *gin.Context) {
	var query ClassifyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	var raw condition.Raw
	switch {
	case query.Code != nil:
		raw = condition.FromCode(*query.Code)
	case strings.TrimSpace(query.Text) != "":
		raw = condition.FromText(query.Text)
	default:
		s.handleError(c, errors.NewValidationError("code or text parameter is required"))
		return
	}

	cond := s.classifier.Classify(raw, condition.Hint{WindSpeedKph: query.WindKph})
	c.JSON(http.StatusOK, ClassificationResponse{
		Name:        cond.Name,
		Label:       cond.Label(query.Night),
		VisualClass: cond.Visual(query.Night),
		Effect:      cond.Effect(query.Night),
		IsNight:     query.Night,
	})
}

func normalizeUnits(units string) string {
	return strings.ToUpper(strings.TrimSpace(units))
}
