package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any env vars that would override defaults
	envVars := []string{
		"SERVICE_NAME", "ENV", "LOG_LEVEL", "PORT",
		"HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "HTTP_IDLE_TIMEOUT",
		"CACHE_TTL", "PROVIDER_TIMEOUT", "MAX_PARALLEL_LOOKUPS",
		"BINLIST_BASE_URL", "API_NINJAS_BASE_URL", "API_NINJAS_KEY",
		"API_NINJAS_KEY_SECRET_ID", "AWS_REGION", "PROVIDER_RPS", "PROVIDER_BURST",
	}
	for _, key := range envVars {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ServiceName != "bin-lookup" {
		t.Errorf("expected ServiceName=bin-lookup, got %s", cfg.ServiceName)
	}
	if cfg.Env != "dev" {
		t.Errorf("expected Env=dev, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel=info, got %s", cfg.LogLevel)
	}
	if cfg.Port != 9040 {
		t.Errorf("expected Port=9040, got %d", cfg.Port)
	}
	if cfg.CacheTTL != 24*time.Hour {
		t.Errorf("expected CacheTTL=24h, got %v", cfg.CacheTTL)
	}
	if cfg.ProviderTimeout != 8*time.Second {
		t.Errorf("expected ProviderTimeout=8s, got %v", cfg.ProviderTimeout)
	}
	if cfg.MaxParallelLookups != 8 {
		t.Errorf("expected MaxParallelLookups=8, got %d", cfg.MaxParallelLookups)
	}
	if cfg.BinlistBaseURL != "https://lookup.binlist.net" {
		t.Errorf("expected binlist base URL, got %s", cfg.BinlistBaseURL)
	}
	if cfg.APINinjasBaseURL != "https://api.api-ninjas.com" {
		t.Errorf("expected api-ninjas base URL, got %s", cfg.APINinjasBaseURL)
	}
	if cfg.APINinjasKey != "" {
		t.Errorf("expected empty APINinjasKey, got %s", cfg.APINinjasKey)
	}
	if cfg.HTTPReadTimeout != 10*time.Second {
		t.Errorf("expected HTTPReadTimeout=10s, got %v", cfg.HTTPReadTimeout)
	}
	if cfg.ProviderRPS != 5 {
		t.Errorf("expected ProviderRPS=5, got %v", cfg.ProviderRPS)
	}
	if cfg.ProviderBurst != 10 {
		t.Errorf("expected ProviderBurst=10, got %d", cfg.ProviderBurst)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVICE_NAME", "test-service")
	t.Setenv("ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "8080")
	t.Setenv("CACHE_TTL", "1h")
	t.Setenv("PROVIDER_TIMEOUT", "3s")
	t.Setenv("MAX_PARALLEL_LOOKUPS", "16")
	t.Setenv("API_NINJAS_KEY", "test-key-123")
	t.Setenv("PROVIDER_RPS", "2.5")

	cfg := Load()

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName=test-service, got %s", cfg.ServiceName)
	}
	if cfg.Env != "prod" {
		t.Errorf("expected Env=prod, got %s", cfg.Env)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel=debug, got %s", cfg.LogLevel)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected Port=8080, got %d", cfg.Port)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("expected CacheTTL=1h, got %v", cfg.CacheTTL)
	}
	if cfg.ProviderTimeout != 3*time.Second {
		t.Errorf("expected ProviderTimeout=3s, got %v", cfg.ProviderTimeout)
	}
	if cfg.MaxParallelLookups != 16 {
		t.Errorf("expected MaxParallelLookups=16, got %d", cfg.MaxParallelLookups)
	}
	if cfg.APINinjasKey != "test-key-123" {
		t.Errorf("expected APINinjasKey=test-key-123, got %s", cfg.APINinjasKey)
	}
	if cfg.ProviderRPS != 2.5 {
		t.Errorf("expected ProviderRPS=2.5, got %v", cfg.ProviderRPS)
	}
}

func TestGetEnv_Fallback(t *testing.T) {
	t.Setenv("NONEXISTENT_KEY_12345", "")
	val := GetEnv("NONEXISTENT_KEY_12345", "fallback")
	if val != "fallback" {
		t.Errorf("expected fallback, got %s", val)
	}
}

func TestGetEnvInt_InvalidFallsToDefault(t *testing.T) {
	t.Setenv("BAD_INT", "not-a-number")
	val := GetEnvInt("BAD_INT", 42)
	if val != 42 {
		t.Errorf("expected default 42 for invalid int, got %d", val)
	}
}

func TestGetEnvFloat_InvalidFallsToDefault(t *testing.T) {
	t.Setenv("BAD_FLOAT", "not-a-float")
	val := GetEnvFloat("BAD_FLOAT", 1.5)
	if val != 1.5 {
		t.Errorf("expected default 1.5 for invalid float, got %v", val)
	}
}

func TestGetEnvDuration_InvalidFallsToDefault(t *testing.T) {
	t.Setenv("BAD_DURATION", "not-a-duration")
	val := GetEnvDuration("BAD_DURATION", 5*time.Second)
	if val != 5*time.Second {
		t.Errorf("expected default 5s for invalid duration, got %v", val)
	}
}
