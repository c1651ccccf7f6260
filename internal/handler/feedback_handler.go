package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"github.com/wafflestudio/SNUDAY-server/internal/middleware"
	"github.com/wafflestudio/SNUDAY-server/internal/service"
)

// FeedbackHandler handles feedback requests
type FeedbackHandler struct {
	service service.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(service service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Create handles POST /api/v1/feedback
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req domain.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	feedback, err := h.service.Create(middleware.GetUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	common.CreatedResponse(c, feedback)
}
