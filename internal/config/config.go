package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// bgColorPattern accepts hex, named and functional (rgb, hsl) colours. Quotes,
// semicolons, braces and nested parentheses are rejected so the value can be
// written into a style declaration unescaped.
var bgColorPattern = regexp.MustCompile(`^(?:#[0-9a-fA-F]{3,8}|[a-zA-Z]+|(?:rgba?|hsla?)\([0-9a-zA-Z.,%\s/+-]*\))$`)

const (
	logFileName         = "weather_app.log"
	historyJSONFileName = "weather_history.json"
	historyDBFileName   = "weather_history.db"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	OpenMeteo OpenMeteoConfig
	History   HistoryConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Dir        string // directory for the log file and, by default, the history log
	MaxSizeMB  int
	MaxBackups int
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	BgColor         string // page background colour
	MaxForecastDays int
}

// OpenMeteoConfig holds settings for the outbound geocoding and forecast calls
type OpenMeteoConfig struct {
	GeocodingURL string
	ForecastURL  string
	Language     string
	Timeout      time.Duration
	RateLimit    float64 // requests per second, 0 disables
	Burst        int
}

// HistoryConfig selects where query history is persisted
type HistoryConfig struct {
	Backend string // file, sqlite
	Path    string
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.weather-app")

	// Set defaults
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.dir", "/app/logs")
	v.SetDefault("log.maxsizemb", 10)
	v.SetDefault("log.maxbackups", 5)
	v.SetDefault("app.bgcolor", "#f8f9fa")
	v.SetDefault("app.maxforecastdays", 7)
	v.SetDefault("openmeteo.geocodingurl", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("openmeteo.forecasturl", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("openmeteo.language", "en")
	v.SetDefault("openmeteo.timeout", 10*time.Second)
	v.SetDefault("openmeteo.ratelimit", 10.0)
	v.SetDefault("openmeteo.burst", 5)
	v.SetDefault("history.backend", "file")
	v.SetDefault("history.path", "")

	// Read from environment variables
	v.SetEnvPrefix("WEATHER_APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Plain variable names recognised for container deployments
	for key, env := range map[string]string{
		"server.port": "PORT",
		"log.dir":     "LOG_DIR",
		"app.bgcolor": "BG_COLOR",
	} {
		if err := v.BindEnv(key, "WEATHER_APP_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.History.Backend = strings.ToLower(strings.TrimSpace(cfg.History.Backend))
	cfg.App.BgColor = strings.TrimSpace(cfg.App.BgColor)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.App.MaxForecastDays < 1 || c.App.MaxForecastDays > 16 {
		return fmt.Errorf("app.maxForecastDays must be between 1 and 16, got %d", c.App.MaxForecastDays)
	}
	if !bgColorPattern.MatchString(c.App.BgColor) {
		return fmt.Errorf("invalid background colour %q", c.App.BgColor)
	}
	switch c.History.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("unknown history backend %q", c.History.Backend)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// HistoryPath returns the history location, defaulting to a file in the log directory
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	if strings.EqualFold(c.History.Backend, "sqlite") {
		return filepath.Join(c.Log.Dir, historyDBFileName)
	}
	return filepath.Join(c.Log.Dir, historyJSONFileName)
}

// NewLogger creates a new slog.Logger writing to stdout and to a size-rotated
// file in the log directory. The returned closer releases the file.
func (c *Config) NewLogger() (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(c.Log.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(c.Log.Dir, logFileName),
		MaxSize:    c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	}

	return c.newLogger(io.MultiWriter(os.Stdout, file)), file, nil
}

func (c *Config) newLogger(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
