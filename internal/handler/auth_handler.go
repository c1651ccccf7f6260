package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"github.com/wafflestudio/SNUDAY-server/internal/middleware"
	"github.com/wafflestudio/SNUDAY-server/internal/service"
)

// AuthHandler handles user account requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/v1/users
// 가입과 동시에 개인 채널이 만들어진다.
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	user, err := h.service.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	common.CreatedResponse(c, user)
}

// Login handles POST /api/v1/users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	result, err := h.service.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, result)
}

// Refresh handles POST /api/v1/users/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req domain.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	result, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, result)
}

// GetMe handles GET /api/v1/users/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	user, err := h.service.GetMe(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, user)
}

// UpdateMe handles PATCH /api/v1/users/me
// 비밀번호는 이 API로 바꿀 수 없다.
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req domain.UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	user, err := h.service.UpdateMe(middleware.GetUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, user)
}

// ChangePassword handles PUT /api/v1/users/me/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req domain.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	if err := h.service.ChangePassword(middleware.GetUserID(c), &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchUsers handles GET /api/v1/users/search
func (h *AuthHandler) SearchUsers(c *gin.Context) {
	users, err := h.service.SearchUsers(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, users)
}

// SendVerificationEmail handles POST /api/v1/users/mail
func (h *AuthHandler) SendVerificationEmail(c *gin.Context) {
	var req domain.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	if err := h.service.SendVerificationEmail(c.Request.Context(), req.EmailPrefix); err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"sent": true})
}

// VerifyEmail handles POST /api/v1/users/mail/verify
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req domain.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	if err := h.service.VerifyEmail(c.Request.Context(), req.EmailPrefix, req.Code); err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"verified": true})
}

// FindUsername handles POST /api/v1/users/find/username
func (h *AuthHandler) FindUsername(c *gin.Context) {
	var req domain.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	if err := h.service.FindUsername(req.EmailPrefix); err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"sent": true})
}

// FindPassword handles POST /api/v1/users/find/password
// 임시 비밀번호를 발급해 메일로 보낸다.
func (h *AuthHandler) FindPassword(c *gin.Context) {
	var req domain.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	if err := h.service.FindPassword(req.EmailPrefix); err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"sent": true})
}
