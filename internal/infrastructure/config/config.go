package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config contiene toda la configuración de la aplicación
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Web      WebConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base de la API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	// URL es un DSN de PostgreSQL ("postgres://..." o "host=...") o la ruta
	// de un archivo SQLite. Por defecto, un archivo local.
	URL string
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// WebConfig contiene las rutas de plantillas y archivos estáticos
// de la variante renderizada en el servidor
type WebConfig struct {
	TemplatesDir string
	StaticDir    string
}

// Load carga la configuración desde el archivo .env y el entorno.
// Un archivo .env ausente no es un error: aplican los valores por defecto.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("ENV", "development")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("DATABASE_URL", "web_app.db")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("TEMPLATES_DIR", "web/templates")
	viper.SetDefault("STATIC_DIR", "web/static")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:    viper.GetString("PORT"),
			Host:    viper.GetString("HOST"),
			BaseURL: viper.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			URL: viper.GetString("DATABASE_URL"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
		Web: WebConfig{
			TemplatesDir: viper.GetString("TEMPLATES_DIR"),
			StaticDir:    viper.GetString("STATIC_DIR"),
		},
	}

	return config, nil
}

// isMissingFile cubre el caso en que viper reporta la ausencia de un archivo
// explícito (SetConfigFile) como *fs.PathError en lugar de
// ConfigFileNotFoundError
func isMissingFile(err error) bool {
	return strings.Contains(err.Error(), "no such file or directory")
}

// IsPostgres indica si la URL apunta a PostgreSQL; cualquier otra cosa se
// trata como la ruta de un archivo SQLite
func (d *DatabaseConfig) IsPostgres() bool {
	return strings.HasPrefix(d.URL, "postgres://") ||
		strings.HasPrefix(d.URL, "postgresql://") ||
		strings.HasPrefix(d.URL, "host=")
}
