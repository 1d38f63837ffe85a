package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"archsmith/internal/blueprint"
	"archsmith/internal/detail"
	"archsmith/internal/llm"
	"archsmith/internal/pipeline"
	"archsmith/internal/types"
)

// StageFailure wraps the error that aborted a run with the stage it came
// from. Index StageCount means the stages succeeded but assembly failed.
type StageFailure struct {
	Stage int
	Name  string
	Cause error
}

func (e *StageFailure) Error() string {
	return fmt.Sprintf("stage %d (%s): %v", e.Stage, e.Name, e.Cause)
}

func (e *StageFailure) Unwrap() error { return e.Cause }

// Generator runs the five stages in order and assembles the final document.
// Progress events go to the emitter on the context; without one the run is
// silent.
type Generator struct {
	LLM       llm.Caller
	Provider  string // display label for progress messages, defaults from LLM.Name()
	MaxTokens int
	Log       logr.Logger
}

func (g *Generator) providerLabel() string {
	name := g.Provider
	if name == "" {
		name = g.LLM.Name()
		if i := strings.IndexByte(name, ':'); i > 0 {
			name = name[:i]
		}
	}
	return strings.ToUpper(name)
}

// Generate runs a full blueprint pass. Validation failures return before any
// event is emitted; a stage failure emits exactly one error event and stops.
func (g *Generator) Generate(ctx context.Context, in types.UserInput) (blueprint.Document, error) {
	if err := in.Validate(); err != nil {
		return blueprint.Document{}, err
	}
	cfg, err := detail.Resolve(in.DetailLevel)
	if err != nil {
		return blueprint.Document{}, err
	}

	emit := EmitterFrom(ctx)
	track := NewTracker()
	provider := g.providerLabel()
	platform := in.PlatformName()
	log := g.Log.WithValues("tier", string(in.DetailLevel), "platform", platform)
	log.Info("blueprint run starting", "provider", provider)

	start := func(i int, msg string) {
		track.Enter(i)
		emit.Emit(ProgressEvent{
			Stage: i, StageName: stageNames[i], Status: StatusInProgress,
			Message: msg, Progress: track.Progress(),
		})
		log.V(1).Info("stage starting", "stage", i, "name", stageNames[i])
	}
	done := func(i int, msg, diagramSrc string, data any) {
		track.Done()
		emit.Emit(ProgressEvent{
			Stage: i, StageName: stageNames[i], Status: StatusCompleted,
			Message: msg, Progress: track.Progress(), Diagram: diagramSrc, Data: data,
		})
	}
	fail := func(i int, cause error) error {
		name := "assembly"
		if i < StageCount {
			name = stageNames[i]
		}
		emit.Emit(ProgressEvent{
			Stage: i, StageName: nameError, Status: StatusError,
			Message:  fmt.Sprintf("An error occurred with %s provider: %v", provider, cause),
			Progress: track.Progress(),
		})
		log.Error(cause, "blueprint run failed", "stage", i, "name", name)
		return &StageFailure{Stage: i, Name: name, Cause: cause}
	}

	start(0, fmt.Sprintf("Analyzing your business idea with %s...", provider))
	req, err := (&pipeline.Requirements{LLM: g.LLM, Cfg: cfg.Requirements, MaxTokens: g.MaxTokens}).
		Run(ctx, types.RequirementsIn{BusinessIdea: in.BusinessIdea, DetailLevel: in.DetailLevel})
	if err != nil {
		return blueprint.Document{}, fail(0, err)
	}
	done(0, blueprint.RequirementsDigest(req), "", req)

	start(1, "Designing a normalized database schema with tables, relationships, and indexes...")
	db, err := (&pipeline.Database{LLM: g.LLM, Cfg: cfg.Database, MaxTokens: g.MaxTokens}).
		Run(ctx, types.DatabaseIn{Requirements: req})
	if err != nil {
		return blueprint.Document{}, fail(1, err)
	}
	done(1, blueprint.DatabaseDigest(db), db.MermaidDiagram, db)

	start(2, "Creating RESTful API endpoints based on the database schema and business requirements...")
	api, err := (&pipeline.API{LLM: g.LLM, Cfg: cfg.API, MaxTokens: g.MaxTokens}).
		Run(ctx, types.APIIn{Requirements: req, Database: db})
	if err != nil {
		return blueprint.Document{}, fail(2, err)
	}
	done(2, blueprint.APIDigest(api), api.MermaidDiagram, api)

	start(3, "Designing frontend component hierarchy and state management strategy...")
	fe, err := (&pipeline.Frontend{LLM: g.LLM, Cfg: cfg.Frontend, MaxTokens: g.MaxTokens}).
		Run(ctx, types.FrontendIn{Requirements: req, API: api})
	if err != nil {
		return blueprint.Document{}, fail(3, err)
	}
	done(3, blueprint.FrontendDigest(fe), fe.MermaidDiagram, fe)

	start(4, fmt.Sprintf("Creating infrastructure and deployment plan for %s...", strings.ToUpper(platform)))
	dep, err := (&pipeline.Deployment{LLM: g.LLM, Cfg: cfg.Deployment, MaxTokens: g.MaxTokens}).
		Run(ctx, types.DeploymentIn{Requirements: req, Database: db, API: api, Frontend: fe, Platform: platform})
	if err != nil {
		return blueprint.Document{}, fail(4, err)
	}
	done(4, blueprint.DeploymentDigest(dep), dep.MermaidDiagram, dep)

	doc, err := blueprint.Assemble(in, req, db, api, fe, dep)
	if err != nil {
		return blueprint.Document{}, fail(StageCount, err)
	}

	track.Enter(StageCount)
	emit.Emit(ProgressEvent{
		Stage: StageCount, StageName: nameComplete, Status: StatusCompleted,
		Message:  "Blueprint generation complete! Your technical architecture is ready.",
		Progress: track.Progress(), Data: doc,
	})
	log.Info("blueprint run complete", "blueprint_id", doc.ID,
		"tables", len(db.Tables), "endpoints", len(api.Endpoints), "components", len(fe.Components))
	return doc, nil
}
