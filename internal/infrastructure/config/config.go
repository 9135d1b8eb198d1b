package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port                 string
	GinMode              string
	LogLevel             string
	LogFormat            string
	SessionTTL           time.Duration
	MaxSessions          int
	SessionSweepSchedule string
	BcryptCost           int
	RateLimitPerSecond   float64
	CORSAllowedOrigins   []string
	RedisURL             string
	SeedDemoData         bool
	AdminEmail           string
	AdminPassword        string
	CatalogFile          string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		Port:                 getEnv("PORT", "8080"),
		GinMode:              getEnv("GIN_MODE", "release"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "text"),
		SessionTTL:           time.Hour * time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 168)), // 7 days
		MaxSessions:          getEnvAsInt("SESSION_MAX", 100000),
		SessionSweepSchedule: getEnv("SESSION_SWEEP_INTERVAL", "@every 10m"),
		BcryptCost:           getEnvAsInt("BCRYPT_COST", 10),
		RateLimitPerSecond:   getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		CORSAllowedOrigins:   getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RedisURL:             getEnv("REDIS_URL", ""),
		SeedDemoData:         getEnvAsBool("SEED_DEMO_DATA", true),
		AdminEmail:           getEnv("ADMIN_EMAIL", "iankangacha@gmail.com"),
		AdminPassword:        getEnv("ADMIN_PASSWORD", "admin123"),
		CatalogFile:          getEnv("CATALOG_FILE", ""),
	}
}

func (c *Config) GetPort() string                 { return c.Port }
func (c *Config) GetGinMode() string              { return c.GinMode }
func (c *Config) GetLogLevel() string             { return c.LogLevel }
func (c *Config) GetLogFormat() string            { return c.LogFormat }
func (c *Config) GetMaxSessions() int             { return c.MaxSessions }
func (c *Config) GetSessionSweepSchedule() string { return c.SessionSweepSchedule }
func (c *Config) GetBcryptCost() int              { return c.BcryptCost }
func (c *Config) GetRateLimitPerSecond() float64  { return c.RateLimitPerSecond }
func (c *Config) GetCORSAllowedOrigins() []string { return c.CORSAllowedOrigins }
func (c *Config) GetRedisURL() string             { return c.RedisURL }
func (c *Config) GetSeedDemoData() bool           { return c.SeedDemoData }
func (c *Config) GetAdminEmail() string           { return c.AdminEmail }
func (c *Config) GetAdminPassword() string        { return c.AdminPassword }
func (c *Config) GetCatalogFile() string          { return c.CatalogFile }

// GetSessionTTL returns how long a bearer session stays valid.
func (c *Config) GetSessionTTL() time.Duration {
	return c.SessionTTL
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}

// comma separated, blanks dropped
func getEnvAsList(name string, fallback []string) []string {
	valStr := getEnv(name, "")
	if valStr == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
