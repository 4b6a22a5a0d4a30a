package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the bin-lookup service.
type Config struct {
	ServiceName string
	Env         string
	LogLevel    string
	Port        int

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration

	// CacheTTL bounds how long a resolved BIN stays servable from memory.
	CacheTTL time.Duration

	// ProviderTimeout applies per outbound lookup call.
	ProviderTimeout    time.Duration
	MaxParallelLookups int

	BinlistBaseURL   string
	APINinjasBaseURL string

	// APINinjasKey enables the fallback provider. It can be supplied directly
	// via API_NINJAS_KEY or resolved from AWS Secrets Manager when
	// API_NINJAS_KEY_SECRET_ID is set. Empty means the fallback is disabled.
	APINinjasKey         string
	APINinjasKeySecretID string
	AWSRegion            string

	// Outbound token-bucket limits, applied per provider.
	ProviderRPS   float64
	ProviderBurst int
}

// Load loads configuration from environment variables and optional .env file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServiceName:          GetEnv("SERVICE_NAME", "bin-lookup"),
		Env:                  GetEnv("ENV", "dev"),
		LogLevel:             GetEnv("LOG_LEVEL", "info"),
		Port:                 GetEnvInt("PORT", 9040),
		HTTPReadTimeout:      GetEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		HTTPWriteTimeout:     GetEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		HTTPIdleTimeout:      GetEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		CacheTTL:             GetEnvDuration("CACHE_TTL", 24*time.Hour),
		ProviderTimeout:      GetEnvDuration("PROVIDER_TIMEOUT", 8*time.Second),
		MaxParallelLookups:   GetEnvInt("MAX_PARALLEL_LOOKUPS", 8),
		BinlistBaseURL:       GetEnv("BINLIST_BASE_URL", "https://lookup.binlist.net"),
		APINinjasBaseURL:     GetEnv("API_NINJAS_BASE_URL", "https://api.api-ninjas.com"),
		APINinjasKey:         GetEnv("API_NINJAS_KEY", ""),
		APINinjasKeySecretID: GetEnv("API_NINJAS_KEY_SECRET_ID", ""),
		AWSRegion:            GetEnv("AWS_REGION", "us-east-2"),
		ProviderRPS:          GetEnvFloat("PROVIDER_RPS", 5),
		ProviderBurst:        GetEnvInt("PROVIDER_BURST", 10),
	}
}
