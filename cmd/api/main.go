package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httphandlers "github.com/jovanyvelez/ejemplos/internal/handlers/http"
	"github.com/jovanyvelez/ejemplos/internal/handlers/middleware"
	"github.com/jovanyvelez/ejemplos/internal/infrastructure/config"
	"github.com/jovanyvelez/ejemplos/internal/infrastructure/i18n"
	"github.com/jovanyvelez/ejemplos/internal/infrastructure/logging"
	"github.com/jovanyvelez/ejemplos/internal/infrastructure/persistence/gormdb"
	"github.com/jovanyvelez/ejemplos/internal/services"
)

func main() {
	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting users/items API",
		"env", cfg.Env,
	)

	// Conectar a la base de datos
	db, err := gormdb.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Crear las tablas si no existen (idempotente)
	if err := gormdb.Migrate(db); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n (locales embebidos en el binario)
	i18nService, err := i18n.NewService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := gormdb.NewUserRepository(db)
	itemRepo := gormdb.NewItemRepository(db)

	// Inicializar services
	userService := services.NewUserService(userRepo, itemRepo, logger)
	itemService := services.NewItemService(itemRepo, logger)

	// Inicializar handlers
	userHandler := httphandlers.NewUserHandler(userService, logger)
	itemHandler := httphandlers.NewItemHandler(itemService, logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware global para agregar la base URL al contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware de request id + log de peticiones
	router.Use(middleware.RequestID(logger))

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	httphandlers.RegisterRoutes(router, userHandler, itemHandler)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Esperar señal de interrupción
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
