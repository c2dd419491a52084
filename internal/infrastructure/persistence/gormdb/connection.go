package gormdb

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jovanyvelez/ejemplos/internal/domain/ports"
	"github.com/jovanyvelez/ejemplos/internal/infrastructure/config"
)

// NewDatabaseConnection abre la conexión según la configuración:
// PostgreSQL para DSNs de postgres, SQLite (archivo local) para el resto.
// TranslateError está activo para que las violaciones de restricciones
// lleguen como gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func NewDatabaseConnection(cfg *config.DatabaseConfig, log ports.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	}

	var dialector gorm.Dialector
	if cfg.IsPostgres() {
		dialector = postgres.Open(cfg.URL)
	} else {
		dialector = sqlite.Open(cfg.URL)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Ping para verificar la conexión
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected successfully",
		"url", cfg.URL,
		"postgres", cfg.IsPostgres(),
	)

	return db, nil
}
