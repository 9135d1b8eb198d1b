package usecasecontract

import "time"

type IConfigProvider interface {
	GetPort() string
	GetGinMode() string
	GetLogLevel() string
	GetLogFormat() string
	GetSessionTTL() time.Duration
	GetMaxSessions() int
	GetSessionSweepSchedule() string
	GetBcryptCost() int
	GetRateLimitPerSecond() float64
	GetCORSAllowedOrigins() []string
	GetRedisURL() string
	GetSeedDemoData() bool
	GetAdminEmail() string
	GetAdminPassword() string
	GetCatalogFile() string
}
