package config

import (
	"os"
	"time"
)

type Config struct {
	Server struct {
		Host         string
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
		IdleTimeout  time.Duration
	}
	Backend struct {
		URL     string
		Timeout time.Duration
	}
	Session struct {
		CookieName string
		MaxAge     time.Duration
		Secure     bool
	}
	Web struct {
		TemplateGlob string
		StaticDir    string
	}
	LogLevel string
}

func Load() *Config {
	cfg := &Config{}

	// Server configuration
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = getEnvAsDuration("SERVER_READ_TIMEOUT", "10s")
	cfg.Server.WriteTimeout = getEnvAsDuration("SERVER_WRITE_TIMEOUT", "30s")
	cfg.Server.IdleTimeout = getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s")

	// Backend REST API
	cfg.Backend.URL = getEnv("BACKEND_API_URL", "http://localhost:3001/api")
	cfg.Backend.Timeout = getEnvAsDuration("BACKEND_TIMEOUT", "30s")

	// Session cookie holding the backend-issued bearer token
	cfg.Session.CookieName = getEnv("SESSION_COOKIE_NAME", "adminToken")
	cfg.Session.MaxAge = getEnvAsDuration("SESSION_MAX_AGE", "720h")
	cfg.Session.Secure = getEnv("SESSION_COOKIE_SECURE", "false") == "true"

	// Templates and static assets
	cfg.Web.TemplateGlob = getEnv("WEB_TEMPLATE_GLOB", "./web/templates/*.html")
	cfg.Web.StaticDir = getEnv("WEB_STATIC_DIR", "./web/static")

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	val := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0)
	}
	return duration
}
