package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/studybuddy-dev/studybuddy/internal/auth"
	"github.com/studybuddy-dev/studybuddy/internal/config"
	"github.com/studybuddy-dev/studybuddy/internal/handlers"
	"github.com/studybuddy-dev/studybuddy/internal/middleware"
	"github.com/studybuddy-dev/studybuddy/internal/service"
	"github.com/studybuddy-dev/studybuddy/internal/store"
)

func New(cfg *config.Config, st store.Store, tokens *auth.Tokens) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handlers.NewAuthHandler(service.NewAccountService(st), tokens)
	subjectHandler := handlers.NewSubjectHandler(service.NewSubjectService(st))
	sessionHandler := handlers.NewSessionHandler(service.NewSessionService(st))

	requireAuth := middleware.Auth(st, tokens)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", requireAuth, authHandler.Me)
		}

		subjects := api.Group("/subjects", requireAuth)
		{
			subjects.GET("", subjectHandler.List)
			subjects.GET("/:id", subjectHandler.GetByID)
			subjects.POST("", subjectHandler.Create)
			subjects.PUT("/:id", subjectHandler.Update)
			subjects.DELETE("/:id", subjectHandler.Delete)
		}

		sessions := api.Group("/sessions", requireAuth)
		{
			sessions.GET("", sessionHandler.List)
			sessions.GET("/status/:status", sessionHandler.ListByStatus)
			sessions.GET("/:id", sessionHandler.GetByID)
			sessions.POST("", sessionHandler.Create)
			sessions.PUT("/:id", sessionHandler.Update)
			sessions.DELETE("/:id", sessionHandler.Delete)
		}
	}

	return r
}
