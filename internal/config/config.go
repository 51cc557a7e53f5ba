package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m", "30m"
}

// NATSConfig holds NATS JetStream configuration.
// An empty URL disables event publishing.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	PipelineTaskQueue                  string  `mapstructure:"pipeline_task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
}

// LLMConfig holds the text-generation provider configuration
type LLMConfig struct {
	// Provider is either "asione" (OpenAI-compatible chat completions) or "anthropic"
	Provider string        `mapstructure:"provider"`
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig bounds outbound LLM traffic.
// When RedisAddr is set the per-second budget is shared by every process through Redis.
type RateLimitConfig struct {
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxWorkers        int           `mapstructure:"max_workers"`
	MaxQueueSize      int           `mapstructure:"max_queue_size"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
	RedisAddr         string        `mapstructure:"redis_addr"`
	RedisPassword     string        `mapstructure:"redis_password"`
	RedisDB           int           `mapstructure:"redis_db"`
	RedisKeyPrefix    string        `mapstructure:"redis_key_prefix"`
}

// PipelineConfig holds company pipeline workflow settings
type PipelineConfig struct {
	DefaultIdeaCount    int           `mapstructure:"default_idea_count"`
	StageTimeout        time.Duration `mapstructure:"stage_timeout"`
	StageMaxAttempts    int32         `mapstructure:"stage_max_attempts"`
	CompletionDelay     time.Duration `mapstructure:"completion_delay"`
	CompletionRevenue   float64       `mapstructure:"completion_revenue"`
	VoteTimeout         time.Duration `mapstructure:"vote_timeout"`
	StrategyConcurrency int           `mapstructure:"strategy_concurrency"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// CORSAllowedOrigins restricts cross-origin callers; empty allows all
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// AuthConfig holds authentication configuration.
// When neither a JWT key nor API keys are set, protected routes are open.
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// SweepConfig holds launch sweep settings
type SweepConfig struct {
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
	PoolSize  int           `mapstructure:"pool_size"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Temporal   TemporalConfig  `mapstructure:"temporal"`
	NATS       NATSConfig      `mapstructure:"nats"`
	LLM        LLMConfig       `mapstructure:"llm"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
	Pipeline   PipelineConfig  `mapstructure:"pipeline"`
	Auth       AuthConfig      `mapstructure:"auth"`
}

// WorkerConfig holds configuration for the pipeline worker
type WorkerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Temporal   TemporalConfig  `mapstructure:"temporal"`
	NATS       NATSConfig      `mapstructure:"nats"`
	LLM        LLMConfig       `mapstructure:"llm"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
	Pipeline   PipelineConfig  `mapstructure:"pipeline"`
}

// SweeperConfig holds configuration for the launch sweeper program
type SweeperConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Sweeper    SweepConfig    `mapstructure:"sweeper"`
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

func setNATSDefaults(v *viper.Viper) {
	v.SetDefault("nats.stream_name", "AI_COMPANY_EVENTS")
	v.SetDefault("nats.subject_prefix", "company")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.pipeline_task_queue", "company-pipeline")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 20)
	v.SetDefault("temporal.worker_activities_per_second", 10)
}

func setLLMDefaults(v *viper.Viper) {
	v.SetDefault("llm.provider", "asione")
	v.SetDefault("llm.timeout", "90s")
	v.SetDefault("rate_limit.requests_per_second", 2)
	v.SetDefault("rate_limit.burst", 4)
	v.SetDefault("rate_limit.max_workers", 8)
	v.SetDefault("rate_limit.max_queue_size", 64)
	v.SetDefault("rate_limit.max_queue_time", "2m")
	v.SetDefault("rate_limit.redis_db", 0)
	v.SetDefault("rate_limit.redis_key_prefix", "ai-company:llm:")
}

func setPipelineDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.default_idea_count", 3)
	v.SetDefault("pipeline.stage_timeout", "3m")
	v.SetDefault("pipeline.stage_max_attempts", 1)
	v.SetDefault("pipeline.completion_delay", "5s")
	v.SetDefault("pipeline.completion_revenue", 0.1)
	v.SetDefault("pipeline.vote_timeout", "168h")
	v.SetDefault("pipeline.strategy_concurrency", 2)
}

// readConfig reads the config file, tolerating a missing one so env-only setups work
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5001)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 180)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setNATSDefaults(v)
	setTemporalDefaults(v)
	setLLMDefaults(v)
	setPipelineDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadWorkerConfig loads configuration for the pipeline worker
func LoadWorkerConfig(configFile string, envPath string) (*WorkerConfig, error) {
	v := configureViper("worker", configFile, envPath)

	setDatabaseDefaults(v)
	setNATSDefaults(v)
	setTemporalDefaults(v)
	setLLMDefaults(v)
	setPipelineDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg WorkerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.LLM.APIKey == "" {
		return nil, errors.New("llm.api_key is required")
	}

	return &cfg, nil
}

// LoadSweeperConfig loads configuration for the launch sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	setDatabaseDefaults(v)
	setNATSDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("sweeper.interval", "15s")
	v.SetDefault("sweeper.batch_size", 50)
	v.SetDefault("sweeper.pool_size", 4)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("AI_COMPANY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// Viper only maps env vars onto struct fields it knows about when no config file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.pipeline_task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		// LLM
		"llm.provider",
		"llm.api_key",
		"llm.base_url",
		"llm.model",
		"llm.timeout",
		"rate_limit.requests_per_second",
		"rate_limit.burst",
		"rate_limit.max_workers",
		"rate_limit.max_queue_size",
		"rate_limit.max_queue_time",
		"rate_limit.redis_addr",
		"rate_limit.redis_password",
		"rate_limit.redis_db",
		"rate_limit.redis_key_prefix",
		// Pipeline
		"pipeline.default_idea_count",
		"pipeline.stage_timeout",
		"pipeline.stage_max_attempts",
		"pipeline.completion_delay",
		"pipeline.completion_revenue",
		"pipeline.vote_timeout",
		"pipeline.strategy_concurrency",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Sweeper
		"sweeper.interval",
		"sweeper.batch_size",
		"sweeper.pool_size",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
