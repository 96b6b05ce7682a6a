package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TABLE_NAME", "todos")
	t.Setenv("INDEX_NAME", "todoId-index")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "todos", cfg.DynamoDBTable)
	assert.Equal(t, "todoId-index", cfg.IndexName)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, AuthModeCognito, cfg.AuthMode)
	assert.Equal(t, "MR_FAKE", cfg.MockUserID)
	assert.Empty(t, cfg.EventBusName)
	assert.False(t, cfg.EnableMetrics)
	assert.False(t, cfg.EnableTracing)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_MissingTable(t *testing.T) {
	t.Setenv("TABLE_NAME", "")
	t.Setenv("INDEX_NAME", "todoId-index")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "TABLE_NAME")
}

func TestLoadConfig_MissingIndex(t *testing.T) {
	t.Setenv("TABLE_NAME", "todos")
	t.Setenv("INDEX_NAME", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "INDEX_NAME")
}

func TestLoadConfig_MockMode(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AUTH_MODE", "mock")
	t.Setenv("MOCK_USER_ID", "test-owner")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, AuthModeMock, cfg.AuthMode)
	assert.Equal(t, "test-owner", cfg.MockUserID)
}

func TestLoadConfig_InvalidAuthMode(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AUTH_MODE", "anonymous")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "AUTH_MODE")
}

func TestLoadConfig_BoolFlags(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENABLE_METRICS", "true")
	t.Setenv("ENABLE_TRACING", "1")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.EnableMetrics)
	assert.True(t, cfg.EnableTracing)
}

func TestLoadConfig_Production(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}
