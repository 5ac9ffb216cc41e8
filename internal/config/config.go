package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
	DBConnectAttempts   uint          `env:"DB_CONNECT_ATTEMPTS" envDefault:"5"`

	// Generation provider configuration
	LLMCfg LLMConfig `envPrefix:"LLM_"`

	// Job posting import configuration
	JobPostCfg JobPostConfig `envPrefix:"JOB_POST_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// LLMConfig holds generation provider settings. Each generation call is a
// single attempt; there is deliberately no retry configuration here.
type LLMConfig struct {
	APIKey          string        `env:"API_KEY"`
	BaseURL         string        `env:"BASE_URL"`
	Model           string        `env:"MODEL" envDefault:"gpt-4o-mini"`
	RequestTimeout  time.Duration `env:"TIMEOUT" envDefault:"120s"`
	MaxOutputTokens int64         `env:"MAX_OUTPUT_TOKENS" envDefault:"4096"`
	Temperature     float64       `env:"TEMPERATURE" envDefault:"0.7"`
}

// JobPostConfig holds job-posting fetch settings.
type JobPostConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"20s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"10s"`
	MaxBodyBytes          int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	CacheTTL              time.Duration `env:"CACHE_TTL" envDefault:"15m"`
	RetryAttempts         uint          `env:"RETRY_ATTEMPTS" envDefault:"3"`
	RetryDelay            time.Duration `env:"RETRY_DELAY" envDefault:"200ms"`
	RetryMaxDelay         time.Duration `env:"RETRY_MAX_DELAY" envDefault:"2s"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		return fmt.Errorf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns)
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns)
	}

	if !cfg.EnableMocks && cfg.LLMCfg.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required unless ENABLE_MOCKS is set")
	}

	if cfg.LLMCfg.MaxOutputTokens < 256 {
		return fmt.Errorf("LLM_MAX_OUTPUT_TOKENS must be at least 256, got %d", cfg.LLMCfg.MaxOutputTokens)
	}

	if cfg.JobPostCfg.MaxBodyBytes < 1024 {
		return fmt.Errorf("JOB_POST_MAX_BODY_BYTES must be at least 1024, got %d", cfg.JobPostCfg.MaxBodyBytes)
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
