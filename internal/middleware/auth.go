package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/pkg/jwt"
)

const (
	contextUserID   = "userID"
	contextUsername = "username"
)

// JWTAuth JWT authentication middleware
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyBearer(c, jwtManager)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, http.StatusUnauthorized, "토큰이 만료되었습니다.")
			} else {
				common.ErrorResponse(c, http.StatusUnauthorized, "인증이 필요합니다.")
			}
			c.Abort()
			return
		}

		setUserContext(c, claims)
		c.Next()
	}
}

// OptionalJWTAuth 토큰이 있으면 사용자를 식별하고, 없거나 잘못됐으면 익명으로 통과시킨다
func OptionalJWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := verifyBearer(c, jwtManager); err == nil {
			setUserContext(c, claims)
		}
		c.Next()
	}
}

func verifyBearer(c *gin.Context, jwtManager *jwt.Manager) (*jwt.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, jwt.ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, jwt.ErrInvalidToken
	}

	return jwtManager.VerifyToken(parts[1])
}

func setUserContext(c *gin.Context, claims *jwt.Claims) {
	userID, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return
	}
	c.Set(contextUserID, userID)
	c.Set(contextUsername, claims.Username)
}

// GetUserID extracts user ID from context. 익명 요청이면 0을 반환한다.
func GetUserID(c *gin.Context) uint64 {
	userID, exists := c.Get(contextUserID)
	if !exists {
		return 0
	}
	if id, ok := userID.(uint64); ok {
		return id
	}
	return 0
}

// GetUsername extracts username from context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get(contextUsername)
	if !exists {
		return ""
	}
	if str, ok := username.(string); ok {
		return str
	}
	return ""
}
