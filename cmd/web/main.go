package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jovanyvelez/ejemplos/internal/handlers/middleware"
	"github.com/jovanyvelez/ejemplos/internal/handlers/web"
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
	logger.Info("starting users/items web app",
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

	// Inicializar i18n; el sitio es en español
	i18nService, err := i18n.NewService("es")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}

	// Repositories, services y handlers
	userRepo := gormdb.NewUserRepository(db)
	itemRepo := gormdb.NewItemRepository(db)
	userService := services.NewUserService(userRepo, itemRepo, logger)
	itemService := services.NewItemService(itemRepo, logger)
	handler := web.NewHandler(userService, itemService, logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(logger))
	router.Use(middleware.NewI18nMiddleware(i18nService).DetectLanguage())

	// Plantillas y archivos estáticos
	router.LoadHTMLGlob(filepath.Join(cfg.Web.TemplatesDir, "*.html"))
	router.Static("/static", cfg.Web.StaticDir)

	handler.RegisterRoutes(router)

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
