package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/wafflestudio/SNUDAY-server/internal/config"
	"github.com/wafflestudio/SNUDAY-server/internal/handler"
	"github.com/wafflestudio/SNUDAY-server/internal/middleware"
	"github.com/wafflestudio/SNUDAY-server/internal/migration"
	"github.com/wafflestudio/SNUDAY-server/internal/repository"
	"github.com/wafflestudio/SNUDAY-server/internal/routes"
	"github.com/wafflestudio/SNUDAY-server/internal/service"
	pkgcache "github.com/wafflestudio/SNUDAY-server/pkg/cache"
	"github.com/wafflestudio/SNUDAY-server/pkg/jwt"
	pkglogger "github.com/wafflestudio/SNUDAY-server/pkg/logger"
	"github.com/wafflestudio/SNUDAY-server/pkg/mailer"
	pkgredis "github.com/wafflestudio/SNUDAY-server/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	// 로거 초기화
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	// 설정 로드
	configPath := getConfigPath()
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// MySQL 연결
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")
	if err := migration.Run(db); err != nil {
		pkglogger.Warn("Migration warning: %v", err)
	}

	// Redis 연결
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Warn("Failed to connect to Redis: %v (continuing without Redis)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}

	// Cache Service
	var cacheService pkgcache.Service
	if redisClient != nil {
		cacheService = pkgcache.NewService(redisClient)
		pkglogger.Info("Cache service initialized")
	}

	// Mailer
	var mailSender mailer.Sender
	if cfg.SMTP.Host != "" {
		mailSender = mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		pkglogger.Info("SMTP mailer initialized")
	} else {
		mailSender = mailer.NoopSender{}
		pkglogger.Warn("SMTP not configured, mails will be dropped")
	}

	// JWT Manager
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiresIn.Std(),
		cfg.JWT.RefreshIn.Std(),
	)

	// Gin 라우터 생성
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// CORS 설정
	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining"},
		MaxAge:           86400,
	}))

	// Middleware
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	if redisClient != nil && !cfg.IsDevelopment() {
		router.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "snuday-server",
			"time":    time.Now().Unix(),
		})
	})

	// Repositories
	userRepo := repository.NewUserRepository(db)
	channelRepo := repository.NewChannelRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	eventRepo := repository.NewEventRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// Services
	policy := service.NewVisibilityPolicy(channelRepo)
	authSvc := service.NewAuthService(userRepo, jwtManager, cacheService, mailSender)
	channelSvc := service.NewChannelService(channelRepo, userRepo, policy, cacheService)
	noticeSvc := service.NewNoticeService(noticeRepo, channelRepo, policy)
	eventSvc := service.NewEventService(eventRepo, channelRepo, policy)
	feedbackSvc := service.NewFeedbackService(feedbackRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	channelHandler := handler.NewChannelHandler(channelSvc)
	noticeHandler := handler.NewNoticeHandler(noticeSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	feedbackHandler := handler.NewFeedbackHandler(feedbackSvc)

	routes.Setup(router, authHandler, channelHandler, noticeHandler, eventHandler, feedbackHandler, jwtManager)

	// DB 커넥션 게이지 업데이트
	if sqlDB, err := db.DB(); err == nil {
		go func() {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for range ticker.C {
				middleware.SetDBConnectionsActive(float64(sqlDB.Stats().OpenConnections))
			}
		}()
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Info("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	}
	if cfg.IsDevelopment() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
