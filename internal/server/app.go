package server

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"archsmith/internal/config"
	"archsmith/internal/llm"
	"archsmith/internal/logging"
	"archsmith/internal/repository/artifact"
	"archsmith/internal/repository/blueprintstore"
	"archsmith/internal/runner"
)

// App assembles the whole service: model client, stores, pipeline, and the
// HTTP server.
type App struct {
	cfg    *config.Config
	log    logr.Logger
	caller llm.Caller
	store  *blueprintstore.Store
	srv    *Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.New("archsmith")

	base, err := llm.New(ctx, llm.ProviderID(cfg.LLM.Provider), cfg.LLM.Model)
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.LLM.Provider, err)
	}
	caller := llm.Wrap(base,
		llm.WithLogging(log.WithName("llm")),
		llm.WithCache(cfg.LLM.CacheEntries, cfg.LLM.CacheTTL),
		llm.Retry(cfg.LLM.MaxRetries+1, cfg.LLM.RetryDelay),
		llm.RateLimit(cfg.LLM.RPS, cfg.LLM.Burst),
		llm.WithTimeout(cfg.LLM.Timeout),
	)

	var store *blueprintstore.Store
	if cfg.Store.DatabaseURL != "" {
		store, err = blueprintstore.NewPostgres(cfg.Store.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect blueprint database: %w", err)
		}
		log.Info("blueprint store ready", "backend", "postgres")
	} else {
		store = blueprintstore.New(cfg.Store.StateFile)
		log.Info("blueprint store ready", "backend", "file", "path", cfg.Store.StateFile)
	}
	store.EnsureReady()

	var artifacts artifact.Store
	if cfg.Artifact.Enabled {
		s3, err := artifact.NewS3Store(artifact.S3Config{
			Endpoint:  cfg.Artifact.Endpoint,
			Region:    cfg.Artifact.Region,
			AccessKey: cfg.Artifact.AccessKey,
			SecretKey: cfg.Artifact.SecretKey,
			Bucket:    cfg.Artifact.Bucket,
			UseSSL:    cfg.Artifact.UseSSL,
		})
		if err != nil {
			log.Error(err, "object storage unavailable, keeping artifacts in memory")
			artifacts = artifact.NewMemoryStore()
		} else {
			log.Info("artifact store ready", "backend", "s3", "endpoint", cfg.Artifact.Endpoint, "bucket", cfg.Artifact.Bucket)
			artifacts = s3
		}
	} else {
		artifacts = artifact.NewMemoryStore()
	}

	gen := &runner.Generator{
		LLM:       caller,
		Provider:  cfg.LLM.Provider,
		MaxTokens: cfg.LLM.MaxTokens,
		Log:       log.WithName("runner"),
	}
	svc := NewService(gen, store, artifacts, log.WithName("service"))
	srv := New(cfg.Port, CORS(NewHandler(svc).Routes()), log)

	return &App{cfg: cfg, log: log, caller: caller, store: store, srv: srv}, nil
}

// Start blocks serving the API until Shutdown is called.
func (a *App) Start() error {
	a.log.Info("archsmith up", "env", a.cfg.Env, "provider", a.cfg.LLM.Provider)
	return a.srv.Start()
}

// Shutdown stops the HTTP server and releases the model client and store.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.srv.Shutdown(ctx)
	if cerr := a.caller.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if serr := a.store.Close(); serr != nil && err == nil {
		err = serr
	}
	return err
}
