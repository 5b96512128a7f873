package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yadig/pkg/cache"
	"yadig/pkg/config"
	"yadig/pkg/database"
	"yadig/pkg/hasher"
	"yadig/pkg/jwt"
	"yadig/pkg/logger"
	"yadig/pkg/middleware"
	"yadig/pkg/queue"
	socialHTTP "yadig/services/social/internal/controller/http"
	"yadig/services/social/internal/model"
	"yadig/services/social/internal/repo/persistent"
	"yadig/services/social/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "yadig/services/social/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithEnv(cfg.Env)

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	// Production schemas come from cmd/migrate; development keeps itself in sync.
	if cfg.Env == "development" {
		if err := db.AutoMigrate(model.All()...); err != nil {
			log.Error("Failed to migrate database: %v", err)
			return nil, err
		}
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ: %v (continuing without notifications)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		jwtService:  jwt.NewService(cfg.JWTSecret, jwt.WithIssuer(cfg.JWTIssuer), jwt.WithTTL(cfg.JWTTTL())),
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	userRepo := persistent.NewUserRepository(a.db)
	reviewRepo := persistent.NewReviewRepository(a.db)
	listRepo := persistent.NewListRepository(a.db)
	commentRepo := persistent.NewCommentRepository(a.db)
	tx := persistent.NewTransactor(a.db)

	userUseCase := usecase.NewUserUseCase(userRepo, reviewRepo, listRepo, hasher.NewBcrypt(a.cfg.BcryptCost), a.jwtService)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, commentRepo, tx)
	listUseCase := usecase.NewListUseCase(listRepo)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, reviewRepo)

	var publisher socialHTTP.EventPublisher
	if a.queueClient != nil {
		publisher = a.queueClient
	}
	notifier := socialHTTP.NewNotifier(publisher, a.log)

	userHandler := socialHTTP.NewUserHandler(userUseCase, notifier, a.log)
	reviewHandler := socialHTTP.NewReviewHandler(reviewUseCase, notifier, a.log)
	listHandler := socialHTTP.NewListHandler(listUseCase, notifier, a.log)
	commentHandler := socialHTTP.NewCommentHandler(commentUseCase, reviewUseCase, notifier, a.log)

	if a.cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	socialHTTP.RegisterValidation()

	r := gin.Default()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	rateLimit := middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitRequests, a.cfg.RateLimitWindow)

	api := r.Group("/api/v1")
	api.Use(rateLimit)
	{
		api.POST("/users/signup", userHandler.Signup)
		api.POST("/users/login", userHandler.Login)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService), socialHTTP.ActorMiddleware(userUseCase, a.log))
		{
			users := protected.Group("/users")
			users.GET("", userHandler.GetAll)
			users.GET("/:id", userHandler.GetByID)
			users.PUT("/promote/:id", userHandler.Promote)
			users.PUT("/block/:id", userHandler.Block)
			users.PUT("/follow/:id", userHandler.Follow)
			users.PUT("/unfollow/:id", userHandler.Unfollow)

			reviews := protected.Group("/reviews")
			reviews.GET("", reviewHandler.GetAll)
			reviews.GET("/:id", reviewHandler.GetByID)
			reviews.GET("/album/:id", reviewHandler.GetByAlbum)
			reviews.POST("", reviewHandler.Create)
			reviews.PUT("/:id", reviewHandler.Edit)
			reviews.PUT("/like/:id", reviewHandler.Like)
			reviews.PUT("/unlike/:id", reviewHandler.Unlike)
			reviews.DELETE("/:id", reviewHandler.Delete)

			lists := protected.Group("/lists")
			lists.GET("", listHandler.GetAll)
			lists.GET("/:id", listHandler.GetByID)
			lists.POST("", listHandler.Create)
			lists.PUT("/:id", listHandler.Edit)
			lists.PUT("/like/:id", listHandler.Like)
			lists.PUT("/unlike/:id", listHandler.Unlike)
			lists.DELETE("/:id", listHandler.Delete)

			comments := protected.Group("/comments")
			comments.POST("", commentHandler.Create)
			comments.DELETE("/:id", commentHandler.Delete)
		}
	}

	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.log.Info("Social service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down social service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			return err
		}
	}

	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if err := a.redisClient.Close(); err != nil {
		a.log.Error("Error closing Redis: %v", err)
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	a.log.Info("Social service stopped")
	return nil
}
