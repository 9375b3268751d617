package api

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/core/widget"
	"weatherwidget.app/internal/ports"
)

// CreateWidgetRequest is the body of POST /api/widgets
type CreateWidgetRequest struct {
	Location string `json:"location" binding:"required"`
	Units    string `json:"units" binding:"omitempty,units"`
}

// UpdateWidgetRequest is the body of PUT /api/widgets/:id; empty fields keep
// their current value
type UpdateWidgetRequest struct {
	Location string `json:"location"`
	Units    string `json:"units" binding:"omitempty,units"`
}

// WidgetResponse represents one widget instance
type WidgetResponse struct {
	ID        string      `json:"id"`
	Location  string      `json:"location"`
	Units     ports.Units `json:"units"`
	Loading   bool        `json:"loading"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	View      widget.View `json:"view"`
}

// ReloadResponse reports whether a reload was started or dropped
type ReloadResponse struct {
	Widget    WidgetResponse `json:"widget"`
	Reloading bool           `json:"reloading"`
}

func toWidgetResponse(w *widget.Widget) WidgetResponse {
	attrs := w.Attributes()
	return WidgetResponse{
		ID:        w.ID(),
		Location:  attrs.Location,
		Units:     attrs.Units,
		Loading:   w.Loading(),
		CreatedAt: w.CreatedAt(),
		UpdatedAt: w.UpdatedAt(),
		View:      w.View(),
	}
}

// createWidget handles POST /api/widgets
func (s *HTTPServerAdapter) createWidget(c *gin.Context) {
	var req CreateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	w, err := s.widgets.Create(c.Request.Context(), widget.Attributes{
		Location: req.Location,
		Units:    ports.Units(normalizeUnits(req.Units)),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.Header("Location", "/api/widgets/"+w.ID())
	c.JSON(http.StatusCreated, toWidgetResponse(w))
}

// listWidgets handles GET /api/widgets
func (s *HTTPServerAdapter) listWidgets(c *gin.Context) {
	list := s.widgets.List()
	response := make([]WidgetResponse, 0, len(list))
	for _, w := range list {
		response = append(response, toWidgetResponse(w))
	}
	c.JSON(http.StatusOK, response)
}

// getWidget handles GET /api/widgets/:id
func (s *HTTPServerAdapter) getWidget(c *gin.Context) {
	w, err := s.widgets.Get(c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWidgetResponse(w))
}

// updateWidget handles PUT /api/widgets/:id
func (s *HTTPServerAdapter) updateWidget(c *gin.Context) {
	var req UpdateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	w, reloading, err := s.widgets.Update(c.Request.Context(), c.Param("id"), widget.Attributes{
		Location: req.Location,
		Units:    ports.Units(normalizeUnits(req.Units)),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, ReloadResponse{Widget: toWidgetResponse(w), Reloading: reloading})
}

// deleteWidget handles DELETE /api/widgets/:id
func (s *HTTPServerAdapter) deleteWidget(c *gin.Context) {
	if err := s.widgets.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// reloadWidget handles POST /api/widgets/:id/reload. With ?wait=true the
// cycle runs before responding and the fresh view is returned.
func (s *HTTPServerAdapter) reloadWidget(c *gin.Context) {
	w, err := s.widgets.Get(c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	if c.Query("wait") == "true" {
		reloaded := w.Reload(c.Request.Context())
		c.JSON(http.StatusOK, ReloadResponse{Widget: toWidgetResponse(w), Reloading: reloaded})
		return
	}

	reloading := w.TriggerReload()
	c.JSON(http.StatusAccepted, ReloadResponse{Widget: toWidgetResponse(w), Reloading: reloading})
}

// streamWidget handles GET /api/widgets/:id/stream as server-sent events.
// The stream ends when the client goes away or the widget is deleted.
func (s *HTTPServerAdapter) streamWidget(c *gin.Context) {
	w, err := s.widgets.Get(c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	views, unsubscribe := w.Subscribe()
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	ctx := c.Request.Context()
	c.Stream(func(out io.Writer) bool {
		select {
		case view, ok := <-views:
			if !ok {
				return false
			}
			c.SSEvent("view", view)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
