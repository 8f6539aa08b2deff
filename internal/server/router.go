package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/bmcquade/lifedesk-backend/internal/handlers"
	"github.com/bmcquade/lifedesk-backend/internal/middleware"
)

type RouterConfig struct {
	AuthMiddleware *middleware.AuthMiddleware
	ContactHandler *handlers.ContactHandler
	IncomeHandler  *handlers.IncomeHandler
	InfoHandler    *handlers.InfoHandler
	AllowOrigins   []string
	ServiceName    string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "lifedesk-backend"
	}
	router.Use(otelgin.Middleware(serviceName))

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Contact
	protected.GET("/contact", cfg.ContactHandler.List)
	protected.POST("/contact", cfg.ContactHandler.Create)
	protected.PATCH("/contact", cfg.ContactHandler.Update)
	protected.DELETE("/contact", cfg.ContactHandler.Delete)
	// Income
	protected.GET("/income", cfg.IncomeHandler.List)
	protected.POST("/income", cfg.IncomeHandler.Create)
	protected.PATCH("/income", cfg.IncomeHandler.Update)
	protected.DELETE("/income", cfg.IncomeHandler.Delete)
	// Info
	protected.GET("/info", cfg.InfoHandler.List)
	protected.POST("/info", cfg.InfoHandler.Create)
	protected.PATCH("/info", cfg.InfoHandler.Update)
	protected.DELETE("/info", cfg.InfoHandler.Delete)

	return router
}
