package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Log.Dir != "/app/logs" {
		t.Errorf("Log.Dir = %q, want /app/logs", cfg.Log.Dir)
	}
	if cfg.App.BgColor != "#f8f9fa" {
		t.Errorf("App.BgColor = %q, want #f8f9fa", cfg.App.BgColor)
	}
	if cfg.App.MaxForecastDays != 7 {
		t.Errorf("App.MaxForecastDays = %d, want 7", cfg.App.MaxForecastDays)
	}
	if cfg.OpenMeteo.Timeout != 10*time.Second {
		t.Errorf("OpenMeteo.Timeout = %v, want 10s", cfg.OpenMeteo.Timeout)
	}
	if cfg.History.Backend != "file" {
		t.Errorf("History.Backend = %q, want file", cfg.History.Backend)
	}
	if got, want := cfg.HistoryPath(), filepath.Join("/app/logs", "weather_history.json"); got != want {
		t.Errorf("HistoryPath() = %q, want %q", got, want)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_DIR", "/tmp/weather-logs")
	t.Setenv("BG_COLOR", "#123456")
	t.Setenv("WEATHER_APP_HISTORY_BACKEND", "SQLite")
	t.Setenv("WEATHER_APP_OPENMETEO_TIMEOUT", "3s")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.Server.Port != 8081 {
		t.Errorf("Server.Port = %d, want 8081", cfg.Server.Port)
	}
	if cfg.GetServerAddr() != ":8081" {
		t.Errorf("GetServerAddr() = %q, want :8081", cfg.GetServerAddr())
	}
	if cfg.App.BgColor != "#123456" {
		t.Errorf("App.BgColor = %q, want #123456", cfg.App.BgColor)
	}
	if cfg.History.Backend != "sqlite" {
		t.Errorf("History.Backend = %q, want sqlite", cfg.History.Backend)
	}
	if cfg.OpenMeteo.Timeout != 3*time.Second {
		t.Errorf("OpenMeteo.Timeout = %v, want 3s", cfg.OpenMeteo.Timeout)
	}
	if got, want := cfg.HistoryPath(), filepath.Join("/tmp/weather-logs", "weather_history.db"); got != want {
		t.Errorf("HistoryPath() = %q, want %q", got, want)
	}
}

func TestLoad_BackgroundColours(t *testing.T) {
	for _, colour := range []string{"#f8f9fa", "#FFF", "lightblue", "rgb(240, 240, 240)", "rgba(0,0,0,0.5)", "hsl(210 17% 98%)"} {
		t.Run(colour, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("BG_COLOR", colour)

			cfg, err := load(viper.New())
			if err != nil {
				t.Fatalf("load() error = %v", err)
			}
			if cfg.App.BgColor != colour {
				t.Errorf("App.BgColor = %q, want %q", cfg.App.BgColor, colour)
			}
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		errContains string
	}{
		{
			name:        "unknown history backend",
			env:         map[string]string{"WEATHER_APP_HISTORY_BACKEND": "redis"},
			errContains: "unknown history backend",
		},
		{
			name:        "background colour breaking out of the declaration",
			env:         map[string]string{"BG_COLOR": "red; background-image: url(x)"},
			errContains: "invalid background colour",
		},
		{
			name:        "background colour with quotes",
			env:         map[string]string{"BG_COLOR": `"></style>`},
			errContains: "invalid background colour",
		},
		{
			name:        "too many forecast days",
			env:         map[string]string{"WEATHER_APP_APP_MAXFORECASTDAYS": "30"},
			errContains: "maxForecastDays",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := load(viper.New())
			if err == nil {
				t.Fatal("load() expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("load() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level     string
		format    string
		wantDebug bool
		wantJSON  bool
	}{
		{level: "debug", format: "text", wantDebug: true},
		{level: "info", format: "json", wantJSON: true},
		{level: "bogus", format: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level, Format: tt.format}}
			var buf bytes.Buffer
			logger := cfg.newLogger(&buf)

			logger.Debug("debug line")
			logger.Info("info line")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug line logged = %v, want %v", got, tt.wantDebug)
			}
			if !strings.Contains(out, "info line") {
				t.Errorf("info line missing from %q", out)
			}
			if got := strings.HasPrefix(out, "{"); got != tt.wantJSON {
				t.Errorf("json output = %v, want %v", got, tt.wantJSON)
			}
		})
	}
}

func TestNewLogger_WritesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Log: LogConfig{Level: "info", Format: "text", Dir: dir, MaxSizeMB: 1, MaxBackups: 1}}

	logger, closer, err := cfg.NewLogger()
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	logger.Info("hello file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "weather_app.log"))
	if len(matches) != 1 {
		t.Fatalf("expected weather_app.log in %s", dir)
	}
}
