package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"github.com/wafflestudio/SNUDAY-server/internal/middleware"
	"github.com/wafflestudio/SNUDAY-server/internal/service"
)

// ChannelHandler handles channel requests
type ChannelHandler struct {
	service service.ChannelService
}

// NewChannelHandler creates a new ChannelHandler
func NewChannelHandler(service service.ChannelService) *ChannelHandler {
	return &ChannelHandler{service: service}
}

// Create handles POST /api/v1/channels
func (h *ChannelHandler) Create(c *gin.Context) {
	var req domain.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	channel, err := h.service.Create(middleware.GetUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	common.CreatedResponse(c, channel)
}

// List handles GET /api/v1/channels
func (h *ChannelHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	channels, meta, err := h.service.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.APIResponse{Data: channels, Meta: meta})
}

// Get handles GET /api/v1/channels/:id
func (h *ChannelHandler) Get(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}

	channel, err := h.service.Get(channelID, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, channel)
}

// Update handles PATCH /api/v1/channels/:id
func (h *ChannelHandler) Update(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}

	var req domain.UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	channel, err := h.service.Update(channelID, middleware.GetUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, channel)
}

// Delete handles DELETE /api/v1/channels/:id
func (h *ChannelHandler) Delete(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}

	if err := h.service.Delete(c.Request.Context(), channelID, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Subscribe handles POST /api/v1/channels/:id/subscribe
// 공개 채널이면 즉시 구독, 비공개 채널이면 구독 요청이 된다.
func (h *ChannelHandler) Subscribe(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}

	if err := h.service.Subscribe(channelID, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Unsubscribe handles DELETE /api/v1/channels/:id/subscribe
func (h *ChannelHandler) Unsubscribe(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}

	if err := h.service.Unsubscribe(channelID, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAwaiters handles GET /api/v1/channels/:id/awaiters
func (h *ChannelHandler) ListAwaiters(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}

	awaiters, err := h.service.ListAwaiters(channelID, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, awaiters)
}

// Allow handles POST /api/v1/channels/:id/awaiters/allow/:user_id
func (h *ChannelHandler) Allow(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}
	targetID, ok := parseIDParam(c, "user_id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 사용자입니다.")
		return
	}

	if err := h.service.Allow(channelID, middleware.GetUserID(c), targetID); err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"allowed": targetID})
}

// Disallow handles DELETE /api/v1/channels/:id/awaiters/allow/:user_id
func (h *ChannelHandler) Disallow(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}
	targetID, ok := parseIDParam(c, "user_id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 사용자입니다.")
		return
	}

	if err := h.service.Disallow(channelID, middleware.GetUserID(c), targetID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Recommend handles GET /api/v1/channels/recommend
func (h *ChannelHandler) Recommend(c *gin.Context) {
	channels, err := h.service.Recommend(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, channels)
}

// Search handles GET /api/v1/channels/search
func (h *ChannelHandler) Search(c *gin.Context) {
	page, limit := parsePagination(c)
	searchType := c.DefaultQuery("type", "all")
	keyword := c.Query("q")

	channels, meta, err := h.service.Search(searchType, keyword, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.APIResponse{Data: channels, Meta: meta})
}

// GetColor handles GET /api/v1/channels/:id/color
func (h *ChannelHandler) GetColor(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}

	color, err := h.service.GetColor(channelID, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, color)
}

// SetColor handles PATCH /api/v1/channels/:id/color
func (h *ChannelHandler) SetColor(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}

	var req domain.ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	color, err := h.service.SetColor(channelID, middleware.GetUserID(c), req.Color)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, color)
}

// ListSubscribing handles GET /api/v1/users/me/subscribing_channels
func (h *ChannelHandler) ListSubscribing(c *gin.Context) {
	channels, err := h.service.ListSubscribing(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, channels)
}

// ListManaging handles GET /api/v1/users/me/managing_channels
func (h *ChannelHandler) ListManaging(c *gin.Context) {
	channels, err := h.service.ListManaging(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, channels)
}

// ListAwaiting handles GET /api/v1/users/me/awaiting_channels
func (h *ChannelHandler) ListAwaiting(c *gin.Context) {
	channels, err := h.service.ListAwaiting(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, channels)
}
