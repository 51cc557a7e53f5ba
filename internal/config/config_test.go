package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	if content == "" {
		return filepath.Join(tmpDir, "nonexistent.yaml")
	}
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 8080
  read_timeout: 5
database:
  host: localhost
  port: 5433
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
temporal:
  host_port: "temporal:7233"
  namespace: "ai-company"
  pipeline_task_queue: "pipelines"
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
llm:
  provider: anthropic
  api_key: "sk-test"
  model: "claude-3-5-sonnet-20241022"
  timeout: "30s"
auth:
  api_keys:
    - key-one
    - key-two
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5, cfg.Server.ReadTimeout)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "temporal:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "ai-company", cfg.Temporal.Namespace)
				assert.Equal(t, "pipelines", cfg.Temporal.PipelineTaskQueue)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "anthropic", cfg.LLM.Provider)
				assert.Equal(t, "sk-test", cfg.LLM.APIKey)
				assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
				assert.Equal(t, []string{"key-one", "key-two"}, cfg.Auth.APIKeys)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  dbname: testdb
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 5001, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "localhost:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "company-pipeline", cfg.Temporal.PipelineTaskQueue)
				assert.Equal(t, "asione", cfg.LLM.Provider)
				assert.Equal(t, 90*time.Second, cfg.LLM.Timeout)
				assert.Equal(t, "company", cfg.NATS.SubjectPrefix)
				assert.Equal(t, 3, cfg.Pipeline.DefaultIdeaCount)
				assert.InDelta(t, 0.1, cfg.Pipeline.CompletionRevenue, 1e-9)
				assert.Equal(t, 2, cfg.Pipeline.StrategyConcurrency)
			},
		},
		{
			name:       "missing config file",
			configFile: "",
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, 5001, cfg.Server.Port)
			},
		},
		{
			name: "invalid yaml",
			configFile: `
				server:
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := writeConfigFile(t, tt.configFile)

			cfg, err := LoadAPIConfig(configFile, t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadWorkerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *WorkerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
database:
  host: localhost
  dbname: testdb
temporal:
  max_concurrent_activity_execution_size: 4
llm:
  api_key: "sk-test"
  base_url: "http://localhost:9999/v1"
rate_limit:
  requests_per_second: 0.5
  burst: 1
  redis_addr: "localhost:6379"
  redis_db: 2
pipeline:
  completion_delay: "1m"
  stage_max_attempts: 3
`,
			validate: func(t *testing.T, cfg *WorkerConfig) {
				assert.Equal(t, 4, cfg.Temporal.MaxConcurrentActivityExecutionSize)
				assert.Equal(t, "http://localhost:9999/v1", cfg.LLM.BaseURL)
				assert.InDelta(t, 0.5, cfg.RateLimit.RequestsPerSecond, 1e-9)
				assert.Equal(t, 1, cfg.RateLimit.Burst)
				assert.Equal(t, 8, cfg.RateLimit.MaxWorkers)
				assert.Equal(t, "localhost:6379", cfg.RateLimit.RedisAddr)
				assert.Equal(t, 2, cfg.RateLimit.RedisDB)
				assert.Equal(t, "ai-company:llm:", cfg.RateLimit.RedisKeyPrefix)
				assert.Equal(t, time.Minute, cfg.Pipeline.CompletionDelay)
				assert.Equal(t, int32(3), cfg.Pipeline.StageMaxAttempts)
				assert.Equal(t, 3*time.Minute, cfg.Pipeline.StageTimeout)
			},
		},
		{
			name: "missing api key",
			configFile: `
database:
  host: localhost
  dbname: testdb
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := writeConfigFile(t, tt.configFile)

			cfg, err := LoadWorkerConfig(configFile, t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadSweeperConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *SweeperConfig)
	}{
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  dbname: testdb
`,
			validate: func(t *testing.T, cfg *SweeperConfig) {
				assert.Equal(t, 15*time.Second, cfg.Sweeper.Interval)
				assert.Equal(t, 50, cfg.Sweeper.BatchSize)
				assert.Equal(t, 4, cfg.Sweeper.PoolSize)
				assert.Equal(t, 5, cfg.Database.MaxOpenConns)
				assert.Equal(t, 2, cfg.Database.MaxIdleConns)
			},
		},
		{
			name: "overrides",
			configFile: `
database:
  host: localhost
  dbname: testdb
sweeper:
  interval: "1m"
  batch_size: 10
  pool_size: 2
`,
			validate: func(t *testing.T, cfg *SweeperConfig) {
				assert.Equal(t, time.Minute, cfg.Sweeper.Interval)
				assert.Equal(t, 10, cfg.Sweeper.BatchSize)
				assert.Equal(t, 2, cfg.Sweeper.PoolSize)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  dbname: testdb
`,
			expectError: true,
		},
		{
			name: "missing database name",
			configFile: `
database:
  host: localhost
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := writeConfigFile(t, tt.configFile)

			cfg, err := LoadSweeperConfig(configFile, t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		DBName:   "ai_company",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=ai_company sslmode=disable", cfg.DSN())
}

func TestLoadEnvOverridesConfig(t *testing.T) {
	envDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte("AI_COMPANY_SERVER_PORT=7001\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("AI_COMPANY_SERVER_PORT") })

	configFile := writeConfigFile(t, "server:\n  port: 6001\n")

	cfg, err := LoadAPIConfig(configFile, envDir)
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Server.Port)
}
