package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/clubhub/clubhub-backend/internal/config"
	"github.com/clubhub/clubhub-backend/internal/handler"
	"github.com/clubhub/clubhub-backend/internal/middleware"
	"github.com/clubhub/clubhub-backend/internal/migration"
	"github.com/clubhub/clubhub-backend/internal/repository"
	"github.com/clubhub/clubhub-backend/internal/routes"
	"github.com/clubhub/clubhub-backend/internal/service"
	pkgcache "github.com/clubhub/clubhub-backend/pkg/cache"
	"github.com/clubhub/clubhub-backend/pkg/jwt"
	pkglogger "github.com/clubhub/clubhub-backend/pkg/logger"
	pkgredis "github.com/clubhub/clubhub-backend/pkg/redis"

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

	pkglogger.Init()
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		pkglogger.Fatal("Failed to load config %s: %v", configPath, err)
	}

	// MySQL
	db, err := initDB(cfg)
	if err != nil {
		pkglogger.Fatal("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")
	if err := migration.Run(db); err != nil {
		pkglogger.Fatal("Migration failed: %v", err)
	}

	// Redis (optional; the site serves fine without the page cache)
	var cacheService pkgcache.Service
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Info("Warning: Failed to connect to Redis: %v (continuing without cache)", err)
	} else {
		cacheService = pkgcache.NewService(redisClient)
		pkglogger.Info("Connected to Redis, cache available: %v", cacheService.IsAvailable())
	}

	// JWT Manager
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpirySecs,
		cfg.JWT.RefreshExpirySecs,
	)

	// Repositories
	blockRepo := repository.NewContentBlockRepository(db)
	revRepo := repository.NewContentRevisionRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	faqRepo := repository.NewFaqRepository(db)
	eventRepo := repository.NewEventRepository(db)
	joinRepo := repository.NewJoinRequestRepository(db)

	// Services
	contentSvc := service.NewContentService(db, blockRepo, revRepo, cacheService)
	authSvc := service.NewAuthService(memberRepo, jwtManager)
	faqSvc := service.NewFaqService(faqRepo, cacheService)
	eventSvc := service.NewEventService(eventRepo, cacheService)
	joinSvc := service.NewJoinRequestService(joinRepo)

	// Router
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := cfg.CORS.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           86400,
	}))

	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		cacheStatus := "disabled"
		if cacheService != nil {
			cacheStatus = "ok"
			if err := cacheService.Ping(c.Request.Context()); err != nil {
				cacheStatus = "down"
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "clubhub-backend",
			"cache":   cacheStatus,
			"time":    time.Now().Unix(),
		})
	})

	routes.Setup(router, &routes.Handlers{
		Auth:    handler.NewAuthHandler(authSvc),
		Public:  handler.NewPublicHandler(contentSvc, faqSvc, eventSvc, joinSvc),
		Content: handler.NewContentHandler(contentSvc),
		Faq:     handler.NewFaqHandler(faqSvc),
		Event:   handler.NewEventHandler(eventSvc),
		Join:    handler.NewJoinRequestHandler(joinSvc),
	}, jwtManager)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Info("Listening on %s", addr)
	if err := router.Run(addr); err != nil {
		pkglogger.Fatal("Server stopped: %v", err)
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		// Needed so duplicate-key violations on the revision log surface as
		// gorm.ErrDuplicatedKey and can be retried by the engine.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
