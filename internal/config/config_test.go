package config

import (
	"testing"
	"time"

	"archsmith/internal/tester"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("DEFAULT_PROVIDER", "")
	t.Setenv("LLM_MAX_TOKENS", "")
	t.Setenv("BLUEPRINT_DATABASE_URL", "")
	t.Setenv("BLUEPRINT_STATE_FILE", "")
	t.Setenv("ARTIFACT_MINIO_ENDPOINT", "")

	cfg := FromEnv()
	tester.Eq(t, ":8080", cfg.Port)
	tester.Eq(t, "local", cfg.Env)
	tester.Eq(t, "openai", cfg.LLM.Provider)
	tester.Eq(t, 4096, cfg.LLM.MaxTokens)
	tester.Eq(t, 300*time.Second, cfg.LLM.Timeout)
	tester.Eq(t, 2, cfg.LLM.MaxRetries)
	tester.Eq(t, 0, cfg.LLM.CacheEntries)
	tester.Eq(t, 300*time.Second, cfg.LLM.CacheTTL)
	tester.Eq(t, "", cfg.Store.DatabaseURL)
	tester.True(t, cfg.Store.StateFile != "", "state file default should be set")
	tester.True(t, cfg.Artifact.Enabled, "artifacts default on for local env")
	tester.Eq(t, "minio:9000", cfg.Artifact.Endpoint)
	tester.False(t, cfg.Artifact.UseSSL)
}

func TestFromEnvPortNormalization(t *testing.T) {
	t.Setenv("PORT", "9090")
	tester.Eq(t, ":9090", FromEnv().Port)

	t.Setenv("PORT", ":7070")
	tester.Eq(t, ":7070", FromEnv().Port)
}

func TestFromEnvProviderModelLookup(t *testing.T) {
	t.Setenv("DEFAULT_PROVIDER", "DeepSeek")
	t.Setenv("DEEPSEEK_MODEL", "deepseek-reasoner")

	cfg := FromEnv()
	tester.Eq(t, "deepseek", cfg.LLM.Provider)
	tester.Eq(t, "deepseek-reasoner", cfg.LLM.Model)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LLM_MAX_TOKENS", "2048")
	t.Setenv("LLM_TIMEOUT_SECONDS", "60")
	t.Setenv("LLM_RPS", "2.5")
	t.Setenv("LLM_CACHE_ENTRIES", "64")
	t.Setenv("BLUEPRINT_DATABASE_URL", "postgres://app@db/blueprints")
	t.Setenv("ARTIFACT_S3_ENDPOINT", "s3.us-west-2.amazonaws.com")
	t.Setenv("ARTIFACT_S3_BUCKET", "bp-artifacts")

	cfg := FromEnv()
	tester.Eq(t, "production", cfg.Env)
	tester.Eq(t, 2048, cfg.LLM.MaxTokens)
	tester.Eq(t, 60*time.Second, cfg.LLM.Timeout)
	tester.Eq(t, 2.5, cfg.LLM.RPS)
	tester.Eq(t, 64, cfg.LLM.CacheEntries)
	tester.Eq(t, "postgres://app@db/blueprints", cfg.Store.DatabaseURL)
	tester.True(t, cfg.Artifact.Enabled, "explicit endpoint enables artifacts")
	tester.Eq(t, "bp-artifacts", cfg.Artifact.Bucket)
	tester.True(t, cfg.Artifact.UseSSL, "non-local defaults to SSL")
}

func TestFromEnvBadNumbersFallBack(t *testing.T) {
	t.Setenv("LLM_MAX_TOKENS", "many")
	t.Setenv("LLM_RPS", "fast")

	cfg := FromEnv()
	tester.Eq(t, 4096, cfg.LLM.MaxTokens)
	tester.Eq(t, 0.0, cfg.LLM.RPS)
}
