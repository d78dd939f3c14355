package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port        string
	Environment string
	LogLevel    string

	// CORS
	CORSOrigins []string

	// Rate Limiting
	RateLimitRequests int
	RateLimitWindow   int
	RateLimitBurst    int

	// Features
	EnableMetrics bool
	EnableCache   bool

	// Redis
	RedisURL       string
	ExportCacheTTL time.Duration

	// Editor
	TemplatesDir       string
	InitialTemplate    string
	DocumentLang       string
	SanitizeCustomHTML bool
	DefaultBreakpoint  string
}

func New() *Config {
	c := &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// CORS
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080")),

		// Rate Limiting
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 300),
		RateLimitWindow:   getEnvAsInt("RATE_LIMIT_WINDOW", 60),
		RateLimitBurst:    getEnvAsInt("RATE_LIMIT_BURST", 0),

		// Features
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
		EnableCache:   getEnvAsBool("ENABLE_CACHE", false),

		// Redis
		RedisURL:       getEnv("REDIS_URL", "localhost:6379"),
		ExportCacheTTL: time.Duration(getEnvAsInt("EXPORT_CACHE_TTL", 600)) * time.Second,

		// Editor
		TemplatesDir:       getEnv("TEMPLATES_DIR", ""),
		InitialTemplate:    getEnv("INITIAL_TEMPLATE", "blank"),
		DocumentLang:       getEnv("DOCUMENT_LANG", "en"),
		SanitizeCustomHTML: getEnvAsBool("SANITIZE_CUSTOM_HTML", false),
		DefaultBreakpoint:  getEnv("DEFAULT_BREAKPOINT", "desktop"),
	}

	if c.RateLimitBurst <= 0 {
		c.RateLimitBurst = c.RateLimitRequests
	}
	if c.ExportCacheTTL < 0 {
		c.ExportCacheTTL = 0
	}

	return c
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", strings.TrimPrefix(c.Port, ":"))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return valueStr == "true" || valueStr == "1"
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
