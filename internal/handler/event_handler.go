package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"github.com/wafflestudio/SNUDAY-server/internal/middleware"
	"github.com/wafflestudio/SNUDAY-server/internal/service"
)

// EventHandler handles channel event requests
type EventHandler struct {
	service service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// Create handles POST /api/v1/channels/:id/events
func (h *EventHandler) Create(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}

	var req domain.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	event, err := h.service.Create(channelID, middleware.GetUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	common.CreatedResponse(c, event)
}

// List handles GET /api/v1/channels/:id/events
// date(YYYY-MM-DD) 또는 month(YYYY-MM)로 조회 구간을 정한다. 둘 다 없으면 이번 달.
func (h *EventHandler) List(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}

	events, err := h.service.List(channelID, middleware.GetUserID(c), c.Query("date"), c.Query("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, events)
}

// Get handles GET /api/v1/channels/:id/events/:event_id
func (h *EventHandler) Get(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}
	eventID, ok := parseIDParam(c, "event_id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 일정 ID입니다.")
		return
	}

	event, err := h.service.Get(channelID, eventID, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, event)
}

// Update handles PATCH /api/v1/channels/:id/events/:event_id
func (h *EventHandler) Update(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}
	eventID, ok := parseIDParam(c, "event_id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 일정 ID입니다.")
		return
	}

	var req domain.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	event, err := h.service.Update(channelID, eventID, middleware.GetUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, event)
}

// Delete handles DELETE /api/v1/channels/:id/events/:event_id
func (h *EventHandler) Delete(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}
	eventID, ok := parseIDParam(c, "event_id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 일정 ID입니다.")
		return
	}

	if err := h.service.Delete(channelID, eventID, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMine handles GET /api/v1/users/me/events
// 구독 중인 모든 채널의 일정을 모아본다.
func (h *EventHandler) ListMine(c *gin.Context) {
	events, err := h.service.ListMine(middleware.GetUserID(c), c.Query("date"), c.Query("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, events)
}
