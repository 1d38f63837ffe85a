// Package config loads server settings from flags, the environment, and an
// optional .env file.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	LLM      LLMConfig
	Store    StoreConfig
	Artifact ArtifactConfig
}

// LLMConfig selects the model provider and the call budget per stage.
type LLMConfig struct {
	Provider     string
	Model        string
	MaxTokens    int
	Timeout      time.Duration
	MaxRetries   int
	RetryDelay   time.Duration
	RPS          float64
	Burst        int
	CacheEntries int
	CacheTTL     time.Duration
}

// StoreConfig picks where finished blueprints persist. A database URL wins
// over the state file.
type StoreConfig struct {
	DatabaseURL string
	StateFile   string
}

type ArtifactConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Load reads flags and the environment. Only the server entrypoint may call
// it; everything else should take FromEnv or a ready Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	cfg := FromEnv()
	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}
	cfg.Port = *port
	return cfg, nil
}

// FromEnv builds a Config from the environment alone.
func FromEnv() *Config {
	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:     resolvePort(),
		Env:      env,
		LLM:      loadLLMConfig(),
		Store:    loadStoreConfig(),
		Artifact: loadArtifactConfig(env),
	}
}

func resolvePort() string {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		return ":8080"
	}
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	return port
}

func loadLLMConfig() LLMConfig {
	provider := strings.ToLower(firstNonEmpty(strings.TrimSpace(os.Getenv("DEFAULT_PROVIDER")), "openai"))
	return LLMConfig{
		Provider:     provider,
		Model:        strings.TrimSpace(os.Getenv(strings.ToUpper(provider) + "_MODEL")),
		MaxTokens:    intEnv("LLM_MAX_TOKENS", 4096),
		Timeout:      time.Duration(intEnv("LLM_TIMEOUT_SECONDS", 300)) * time.Second,
		MaxRetries:   intEnv("LLM_MAX_RETRIES", 2),
		RetryDelay:   time.Duration(intEnv("LLM_RETRY_DELAY_MS", 500)) * time.Millisecond,
		RPS:          floatEnv("LLM_RPS", 0),
		Burst:        intEnv("LLM_BURST", 1),
		CacheEntries: intEnv("LLM_CACHE_ENTRIES", 0),
		CacheTTL:     time.Duration(intEnv("LLM_CACHE_TTL_SECONDS", 300)) * time.Second,
	}
}

func loadStoreConfig() StoreConfig {
	return StoreConfig{
		DatabaseURL: strings.TrimSpace(os.Getenv("BLUEPRINT_DATABASE_URL")),
		StateFile:   firstNonEmpty(strings.TrimSpace(os.Getenv("BLUEPRINT_STATE_FILE")), filepath.Join("tmp", "blueprints.json")),
	}
}

func loadArtifactConfig(env string) ArtifactConfig {
	endpoint := resolveArtifactEndpoint(env)
	return ArtifactConfig{
		Enabled:   strings.EqualFold(strings.TrimSpace(env), "local") || endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_BUCKET")), "archsmith-blueprints"),
		UseSSL:    resolveArtifactUseSSL(env),
	}
}

func resolveArtifactEndpoint(env string) string {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_MINIO_ENDPOINT")), "minio:9000")
	}
	return strings.TrimSpace(os.Getenv("ARTIFACT_S3_ENDPOINT"))
}

func resolveArtifactUseSSL(env string) bool {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return false
	}
	raw := strings.TrimSpace(os.Getenv("ARTIFACT_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func intEnv(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func floatEnv(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
