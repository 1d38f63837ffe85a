package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"archsmith/internal/blueprint"
	"archsmith/internal/config"
	"archsmith/internal/export"
	"archsmith/internal/llm"
	"archsmith/internal/logging"
	"archsmith/internal/repository/blueprintstore"
	"archsmith/internal/runner"
	"archsmith/internal/types"
)

var (
	genIdea           string
	genDetail         string
	genPlatform       string
	genCustomPlatform string
	genProvider       string
	genModel          string
	genOutputDir      string
	genProgress       string
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [business idea]",
		Short: "Generate a technical blueprint for a business idea",
		RunE: func(c *cobra.Command, args []string) error {
			idea := strings.TrimSpace(genIdea)
			if idea == "" {
				idea = strings.TrimSpace(strings.Join(args, " "))
			}
			if idea == "" {
				idea = readStdinIdea()
			}
			in := types.UserInput{
				BusinessIdea:   idea,
				DetailLevel:    types.DetailLevel(genDetail),
				Platform:       types.Platform(genPlatform),
				CustomPlatform: genCustomPlatform,
			}
			if err := in.Validate(); err != nil {
				return err
			}
			return runGenerate(c.Context(), in)
		},
	}

	cmd.Flags().StringVar(&genIdea, "idea", "", "business idea to design for (alternative to positional arguments)")
	cmd.Flags().StringVar(&genDetail, "detail", string(types.DetailDetailed), "detail tier: high_level, detailed, or production_ready")
	cmd.Flags().StringVar(&genPlatform, "platform", string(types.PlatformAWS), "deployment platform")
	cmd.Flags().StringVar(&genCustomPlatform, "custom-platform", "", "platform name when --platform=other")
	cmd.Flags().StringVar(&genProvider, "provider", "", "LLM provider, overrides DEFAULT_PROVIDER (use \"fake\" for an offline dry run)")
	cmd.Flags().StringVar(&genModel, "model", "", "model name, overrides the provider default")
	cmd.Flags().StringVar(&genOutputDir, "output", ".", "directory to write the blueprint files into")
	cmd.Flags().StringVar(&genProgress, "progress", "text", "progress output: text, timeline, json, or none")

	return cmd
}

func runGenerate(ctx context.Context, in types.UserInput) error {
	cfg := config.FromEnv()
	provider := strings.ToLower(firstNonEmpty(genProvider, cfg.LLM.Provider))
	model := firstNonEmpty(genModel, cfg.LLM.Model)

	log := logging.NewWithOutput("archsmith", os.Stderr)

	base, err := llm.New(ctx, llm.ProviderID(provider), model)
	if err != nil {
		return fmt.Errorf("init %s provider: %w", provider, err)
	}
	caller := llm.Wrap(base,
		llm.WithCache(cfg.LLM.CacheEntries, cfg.LLM.CacheTTL),
		llm.Retry(cfg.LLM.MaxRetries+1, cfg.LLM.RetryDelay),
		llm.RateLimit(cfg.LLM.RPS, cfg.LLM.Burst),
		llm.WithTimeout(cfg.LLM.Timeout),
	)
	defer caller.Close()

	gen := &runner.Generator{
		LLM:       caller,
		Provider:  provider,
		MaxTokens: cfg.LLM.MaxTokens,
		Log:       log,
	}

	if em := progressEmitter(genProgress); em != nil {
		ctx = runner.WithEmitter(ctx, em)
	}

	doc, err := gen.Generate(ctx, in)
	if err != nil {
		return err
	}
	if err := writeBlueprint(doc); err != nil {
		return err
	}

	store := blueprintstore.NewFromEnv(cfg.Store.StateFile)
	store.EnsureReady()
	defer store.Close()
	if err := store.Put(doc); err != nil {
		log.Error(err, "archive blueprint", "blueprint_id", doc.ID)
	}
	return nil
}

type emitterFunc func(runner.ProgressEvent)

func (f emitterFunc) Emit(e runner.ProgressEvent) { f(e) }

func progressEmitter(mode string) runner.Emitter {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "json":
		enc := json.NewEncoder(os.Stderr)
		return emitterFunc(func(e runner.ProgressEvent) {
			e.Data = nil
			enc.Encode(e)
		})
	case "timeline":
		tr := runner.NewTracker()
		drawn := false
		return emitterFunc(func(e runner.ProgressEvent) {
			tr.Observe(e)
			if drawn {
				fmt.Fprintf(os.Stderr, "\x1b[%dA", runner.StageCount)
			}
			drawn = true
			for _, line := range strings.Split(tr.Timeline(), "\n") {
				fmt.Fprintf(os.Stderr, "\x1b[2K%s\n", line)
			}
			if e.Status == runner.StatusError {
				fmt.Fprintln(os.Stderr, e.Message)
			}
		})
	case "none":
		return nil
	default:
		return emitterFunc(func(e runner.ProgressEvent) {
			switch e.Status {
			case runner.StatusError:
				fmt.Fprintf(os.Stderr, "[%3.0f%%] %s\n", e.Progress, e.Message)
			case runner.StatusCompleted:
				fmt.Fprintf(os.Stderr, "[%3.0f%%] %s done\n", e.Progress, e.StageName)
			default:
				fmt.Fprintf(os.Stderr, "[%3.0f%%] %s\n", e.Progress, e.Message)
			}
		})
	}
}

func writeBlueprint(doc blueprint.Document) error {
	if err := os.MkdirAll(genOutputDir, 0o755); err != nil {
		return err
	}

	data, err := export.JSON(doc)
	if err != nil {
		return err
	}
	jsonPath := filepath.Join(genOutputDir, export.Filename(doc, "json"))
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return err
	}

	mdPath := filepath.Join(genOutputDir, export.Filename(doc, "md"))
	if err := os.WriteFile(mdPath, []byte(export.Markdown(doc)), 0o644); err != nil {
		return err
	}

	for rel, src := range export.Diagrams(doc) {
		path := filepath.Join(genOutputDir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			return err
		}
	}

	fmt.Printf("Blueprint %s written:\n  %s\n  %s\n", doc.ID, mdPath, jsonPath)
	return nil
}

// readStdinIdea reads a piped business idea. It returns "" when stdin is a
// terminal so interactive runs fall through to the usage error.
func readStdinIdea() string {
	stat, err := os.Stdin.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
		return ""
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
