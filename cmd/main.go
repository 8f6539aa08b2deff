package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bmcquade/lifedesk-backend/internal/db"
	"github.com/bmcquade/lifedesk-backend/internal/handlers"
	"github.com/bmcquade/lifedesk-backend/internal/logger"
	"github.com/bmcquade/lifedesk-backend/internal/middleware"
	"github.com/bmcquade/lifedesk-backend/internal/observability"
	"github.com/bmcquade/lifedesk-backend/internal/repos"
	"github.com/bmcquade/lifedesk-backend/internal/server"
	"github.com/bmcquade/lifedesk-backend/internal/services"
	"github.com/bmcquade/lifedesk-backend/internal/types"
	"github.com/bmcquade/lifedesk-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	notFoundStatus := utils.GetEnvAsInt("NOT_FOUND_STATUS", http.StatusNotFound, log)
	corsOrigins := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log)
	environment := utils.GetEnv("ENVIRONMENT", "development", log)

	// Tracing
	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "lifedesk-backend",
		Environment: environment,
	})

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	contactRepo := repos.NewRecordRepo[types.Contact](thePG, log, "ContactRepo")
	incomeRepo := repos.NewRecordRepo[types.Income](thePG, log, "IncomeRepo")
	infoRepo := repos.NewRecordRepo[types.Info](thePG, log, "InfoRepo")
	userRepo := repos.NewUserRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	contactService := services.NewContactService(thePG, log, contactRepo, userRepo)
	incomeService := services.NewIncomeService(thePG, log, incomeRepo, userRepo)
	infoService := services.NewInfoService(thePG, log, infoRepo, userRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	statusCfg := handlers.StatusConfig{NotFound: notFoundStatus}
	contactHandler := handlers.NewContactHandler(log, contactService, statusCfg)
	incomeHandler := handlers.NewIncomeHandler(log, incomeService, statusCfg)
	infoHandler := handlers.NewInfoHandler(log, infoService, statusCfg)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, jwtSecretKey)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthMiddleware: authMiddleware,
		ContactHandler: contactHandler,
		IncomeHandler:  incomeHandler,
		InfoHandler:    infoHandler,
		AllowOrigins:   splitOrigins(corsOrigins),
		ServiceName:    "lifedesk-backend",
	})

	port := utils.GetEnv("PORT", "8080", log)
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Info("Server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("Server shutdown failed", "error", err)
	}
	if otelShutdown != nil {
		if err := otelShutdown(ctx); err != nil {
			log.Warn("Otel shutdown failed", "error", err)
		}
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}
