package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/internal/service"
	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
)

// CalendarHandler 行事曆 HTTP 處理器
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

// NewCalendarHandler 建立 CalendarHandler
func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// EventsICS 活動行事曆訂閱端點
// GET /api/v1/calendar/events.ics
func (h *CalendarHandler) EventsICS(c *gin.Context) {
	ics, err := h.calendarSvc.EventsICS(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="lab-events.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}
