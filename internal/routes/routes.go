package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wafflestudio/SNUDAY-server/internal/handler"
	"github.com/wafflestudio/SNUDAY-server/internal/middleware"
	"github.com/wafflestudio/SNUDAY-server/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	channelHandler *handler.ChannelHandler,
	noticeHandler *handler.NoticeHandler,
	eventHandler *handler.EventHandler,
	feedbackHandler *handler.FeedbackHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api/v1")

	// 서비스 피드백
	api.POST("/feedback", middleware.JWTAuth(jwtManager), feedbackHandler.Create)

	// Users (계정/인증)
	users := api.Group("/users")
	users.POST("", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/refresh", authHandler.Refresh)
	users.POST("/mail", authHandler.SendVerificationEmail)
	users.POST("/mail/verify", authHandler.VerifyEmail)
	users.POST("/find/username", authHandler.FindUsername)
	users.POST("/find/password", authHandler.FindPassword)
	users.GET("/search", middleware.JWTAuth(jwtManager), authHandler.SearchUsers)

	// 내 정보와 내 채널/콘텐츠 모아보기
	me := users.Group("/me", middleware.JWTAuth(jwtManager))
	{
		me.GET("", authHandler.GetMe)
		me.PATCH("", authHandler.UpdateMe)
		me.PUT("/password", authHandler.ChangePassword)

		me.GET("/subscribing_channels", channelHandler.ListSubscribing)
		me.GET("/managing_channels", channelHandler.ListManaging)
		me.GET("/awaiting_channels", channelHandler.ListAwaiting)

		me.GET("/notices", noticeHandler.ListMine)
		me.GET("/events", eventHandler.ListMine)
	}

	// Channels
	channels := api.Group("/channels")
	channels.GET("", channelHandler.List)
	channels.GET("/recommend", channelHandler.Recommend)
	channels.GET("/search", channelHandler.Search)
	channels.POST("", middleware.JWTAuth(jwtManager), channelHandler.Create)

	channel := channels.Group("/:id")
	{
		channel.GET("", middleware.OptionalJWTAuth(jwtManager), channelHandler.Get)
		channel.PATCH("", middleware.JWTAuth(jwtManager), channelHandler.Update)
		channel.DELETE("", middleware.JWTAuth(jwtManager), channelHandler.Delete)

		// 구독/구독 요청
		channel.POST("/subscribe", middleware.JWTAuth(jwtManager), channelHandler.Subscribe)
		channel.DELETE("/subscribe", middleware.JWTAuth(jwtManager), channelHandler.Unsubscribe)

		// 비공개 채널 구독 요청 관리 (매니저 전용)
		channel.GET("/awaiters", middleware.JWTAuth(jwtManager), channelHandler.ListAwaiters)
		channel.POST("/awaiters/allow/:user_id", middleware.JWTAuth(jwtManager), channelHandler.Allow)
		channel.DELETE("/awaiters/allow/:user_id", middleware.JWTAuth(jwtManager), channelHandler.Disallow)

		// 구독 테마 색상
		channel.GET("/color", middleware.JWTAuth(jwtManager), channelHandler.GetColor)
		channel.PATCH("/color", middleware.JWTAuth(jwtManager), channelHandler.SetColor)

		// Notices
		notices := channel.Group("/notices")
		{
			notices.GET("", middleware.OptionalJWTAuth(jwtManager), noticeHandler.List)
			notices.GET("/search", middleware.OptionalJWTAuth(jwtManager), noticeHandler.Search)
			notices.GET("/:notice_id", middleware.OptionalJWTAuth(jwtManager), noticeHandler.Get)
			notices.POST("", middleware.JWTAuth(jwtManager), noticeHandler.Create)
			notices.PATCH("/:notice_id", middleware.JWTAuth(jwtManager), noticeHandler.Update)
			notices.DELETE("/:notice_id", middleware.JWTAuth(jwtManager), noticeHandler.Delete)
		}

		// Events
		events := channel.Group("/events")
		{
			events.GET("", middleware.OptionalJWTAuth(jwtManager), eventHandler.List)
			events.GET("/:event_id", middleware.OptionalJWTAuth(jwtManager), eventHandler.Get)
			events.POST("", middleware.JWTAuth(jwtManager), eventHandler.Create)
			events.PATCH("/:event_id", middleware.JWTAuth(jwtManager), eventHandler.Update)
			events.DELETE("/:event_id", middleware.JWTAuth(jwtManager), eventHandler.Delete)
		}
	}
}
