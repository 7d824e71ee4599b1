// internal/pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingRequiredConfig is returned when a required setting is empty
var ErrMissingRequiredConfig = errors.New("missing required configuration")

// Config holds all application configuration
type Config struct {
	// Application
	App AppConfig

	// Storage
	Storage StorageConfig

	// Form
	Form FormConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string
	Environment string // development, test, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
	LogOutput   string // stdout, stderr, file:<path>
	Debug       bool
}

// StorageConfig holds data file configuration
type StorageConfig struct {
	DataFile    string `required:"true"`
	AtomicWrite bool
}

// FormConfig holds settings of the interactive form
type FormConfig struct {
	HistoryFile string
	ExportDir   string
	Color       bool
}

// envBindings maps config keys to the environment variables that set them
var envBindings = map[string]string{
	"app.name":             "APP_NAME",
	"app.environment":      "APP_ENV",
	"app.version":          "APP_VERSION",
	"app.debug":            "APP_DEBUG",
	"log.level":            "LOG_LEVEL",
	"log.format":           "LOG_FORMAT",
	"log.output":           "LOG_OUTPUT",
	"storage.data_file":    "PHARMACY_DATA_FILE",
	"storage.atomic_write": "PHARMACY_ATOMIC_WRITE",
	"form.history_file":    "PHARMACY_HISTORY_FILE",
	"form.export_dir":      "PHARMACY_EXPORT_DIR",
	"form.color":           "PHARMACY_COLOR",
}

// Load loads configuration from an optional config file, a .env file in
// development and environment variables, in increasing precedence
func Load(logger *slog.Logger) (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file in development
	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
	}

	v := viper.New()
	setDefaults(v, env)

	for key, envVar := range envBindings {
		if err := v.BindEnv(key, envVar); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", envVar, err)
		}
	}

	if path := os.Getenv("PHARMACY_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		logger.Info("config file loaded", slog.String("path", path))
	}

	cfg := &Config{
		App: AppConfig{
			Name:        v.GetString("app.name"),
			Environment: v.GetString("app.environment"),
			Version:     v.GetString("app.version"),
			LogLevel:    v.GetString("log.level"),
			LogFormat:   strings.ToLower(v.GetString("log.format")),
			LogOutput:   v.GetString("log.output"),
			Debug:       v.GetBool("app.debug"),
		},
		Storage: StorageConfig{
			DataFile:    v.GetString("storage.data_file"),
			AtomicWrite: v.GetBool("storage.atomic_write"),
		},
		Form: FormConfig{
			HistoryFile: v.GetString("form.history_file"),
			ExportDir:   v.GetString("form.export_dir"),
			Color:       v.GetBool("form.color"),
		},
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return (&BasicValidator{}).Validate(c)
}

// ExportPath resolves an export file name against the export directory.
// Absolute paths and paths with a directory part are returned unchanged.
func (c *Config) ExportPath(name string) string {
	if filepath.IsAbs(name) || filepath.Dir(name) != "." || c.Form.ExportDir == "" {
		return name
	}
	return filepath.Join(c.Form.ExportDir, name)
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}

// Helper functions

func setDefaults(v *viper.Viper, env string) {
	v.SetDefault("app.name", "pharmacy-inventory")
	v.SetDefault("app.environment", env)
	v.SetDefault("app.version", "dev")
	v.SetDefault("app.debug", env == "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "file:pharmacy.log")
	v.SetDefault("storage.data_file", "pharmacy_data.json")
	v.SetDefault("storage.atomic_write", true)
	v.SetDefault("form.history_file", defaultHistoryFile())
	v.SetDefault("form.export_dir", ".")
	v.SetDefault("form.color", true)
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pharmacy_history")
}
