package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"github.com/wafflestudio/SNUDAY-server/internal/middleware"
	"github.com/wafflestudio/SNUDAY-server/internal/service"
)

// NoticeHandler handles channel notice requests
type NoticeHandler struct {
	service service.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler
func NewNoticeHandler(service service.NoticeService) *NoticeHandler {
	return &NoticeHandler{service: service}
}

// Create handles POST /api/v1/channels/:id/notices
func (h *NoticeHandler) Create(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}

	var req domain.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	notice, err := h.service.Create(channelID, middleware.GetUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	common.CreatedResponse(c, notice)
}

// List handles GET /api/v1/channels/:id/notices
// recent=true면 최신 공지 몇 건만 meta 없이 돌려준다.
func (h *NoticeHandler) List(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}

	page, limit := parsePagination(c)
	recent := c.Query("recent") == "true"

	notices, meta, err := h.service.List(channelID, middleware.GetUserID(c), recent, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.APIResponse{Data: notices, Meta: meta})
}

// Get handles GET /api/v1/channels/:id/notices/:notice_id
func (h *NoticeHandler) Get(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}
	noticeID, ok := parseIDParam(c, "notice_id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 공지 ID입니다.")
		return
	}

	notice, err := h.service.Get(channelID, noticeID, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, notice)
}

// Update handles PATCH /api/v1/channels/:id/notices/:notice_id
func (h *NoticeHandler) Update(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}
	noticeID, ok := parseIDParam(c, "notice_id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 공지 ID입니다.")
		return
	}

	var req domain.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	notice, err := h.service.Update(channelID, noticeID, middleware.GetUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, notice)
}

// Delete handles DELETE /api/v1/channels/:id/notices/:notice_id
func (h *NoticeHandler) Delete(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}
	noticeID, ok := parseIDParam(c, "notice_id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 공지 ID입니다.")
		return
	}

	if err := h.service.Delete(channelID, noticeID, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search handles GET /api/v1/channels/:id/notices/search
func (h *NoticeHandler) Search(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 채널 ID입니다.")
		return
	}

	page, limit := parsePagination(c)
	searchType := c.DefaultQuery("type", "all")
	keyword := c.Query("q")

	notices, meta, err := h.service.Search(channelID, middleware.GetUserID(c), searchType, keyword, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.APIResponse{Data: notices, Meta: meta})
}

// ListMine handles GET /api/v1/users/me/notices
// 구독 중인 모든 채널의 공지를 모아본다. q가 있으면 검색으로 동작한다.
func (h *NoticeHandler) ListMine(c *gin.Context) {
	page, limit := parsePagination(c)
	searchType := c.DefaultQuery("type", "all")
	keyword := c.Query("q")

	notices, meta, err := h.service.ListMine(middleware.GetUserID(c), searchType, keyword, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.APIResponse{Data: notices, Meta: meta})
}
