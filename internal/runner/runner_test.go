package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/go-logr/logr"

	"archsmith/internal/llm"
	"archsmith/internal/tester"
	"archsmith/internal/types"
)

func validInput() types.UserInput {
	return types.UserInput{
		BusinessIdea: "A subscription box service for houseplant owners",
		DetailLevel:  types.DetailDetailed,
		Platform:     types.PlatformAWS,
	}
}

func TestGenerateEmitsFullEventSequence(t *testing.T) {
	fake := llm.NewFakeCaller()
	gen := &Generator{LLM: fake, Log: logr.Discard()}
	collect := &CollectEmitter{}
	ctx := WithEmitter(context.Background(), collect)

	doc, err := gen.Generate(ctx, validInput())
	tester.NoErr(t, err)
	tester.True(t, doc.ID != "", "document should get an id")

	events := collect.Events
	if len(events) != 2*StageCount+1 {
		t.Fatalf("expected %d events, got %d", 2*StageCount+1, len(events))
	}

	for i := 0; i < StageCount; i++ {
		started, completed := events[2*i], events[2*i+1]
		tester.Eq(t, i, started.Stage)
		tester.Eq(t, StatusInProgress, started.Status)
		tester.Eq(t, StageName(i), started.StageName)
		tester.Eq(t, i, completed.Stage)
		tester.Eq(t, StatusCompleted, completed.Status)
		tester.True(t, completed.Message != "", "completed events carry a summary")
	}

	last := events[len(events)-1]
	tester.True(t, last.Terminal(), "final event should be terminal")
	tester.Eq(t, "Complete", last.StageName)
	tester.Eq(t, StageCount, last.Stage)
	tester.Eq(t, 100.0, last.Progress)
	tester.Eq(t, "Blueprint generation complete! Your technical architecture is ready.", last.Message)

	prev := -1.0
	for _, e := range events {
		if e.Progress < prev {
			t.Fatalf("progress went backwards: %v after %v", e.Progress, prev)
		}
		prev = e.Progress
	}
}

func TestGenerateProgressSteps(t *testing.T) {
	fake := llm.NewFakeCaller()
	gen := &Generator{LLM: fake, Log: logr.Discard()}
	collect := &CollectEmitter{}

	_, err := gen.Generate(WithEmitter(context.Background(), collect), validInput())
	tester.NoErr(t, err)

	tester.Eq(t, 0.0, collect.Events[0].Progress)
	tester.Eq(t, 20.0, collect.Events[1].Progress)
	tester.Eq(t, 20.0, collect.Events[2].Progress)
	tester.Eq(t, 40.0, collect.Events[3].Progress)
	tester.Eq(t, 80.0, collect.Events[8].Progress)
	tester.Eq(t, 100.0, collect.Events[9].Progress)
}

func TestGenerateStageMessages(t *testing.T) {
	fake := llm.NewFakeCaller()
	gen := &Generator{LLM: fake, Provider: "openai", Log: logr.Discard()}
	collect := &CollectEmitter{}

	_, err := gen.Generate(WithEmitter(context.Background(), collect), validInput())
	tester.NoErr(t, err)

	tester.Eq(t, "Analyzing your business idea with OPENAI...", collect.Events[0].Message)
	tester.Eq(t, "Designing a normalized database schema with tables, relationships, and indexes...", collect.Events[2].Message)
	tester.Eq(t, "Creating RESTful API endpoints based on the database schema and business requirements...", collect.Events[4].Message)
	tester.Eq(t, "Designing frontend component hierarchy and state management strategy...", collect.Events[6].Message)
	tester.Eq(t, "Creating infrastructure and deployment plan for AWS...", collect.Events[8].Message)
}

func TestGenerateAttachesDiagrams(t *testing.T) {
	fake := llm.NewFakeCaller()
	gen := &Generator{LLM: fake, Log: logr.Discard()}
	collect := &CollectEmitter{}

	_, err := gen.Generate(WithEmitter(context.Background(), collect), validInput())
	tester.NoErr(t, err)

	tester.Eq(t, "", collect.Events[1].Diagram)
	for _, idx := range []int{3, 5, 7, 9} {
		if collect.Events[idx].Diagram == "" {
			t.Fatalf("event %d should carry a diagram", idx)
		}
	}
}

func TestGenerateStopsAtFailedStage(t *testing.T) {
	boom := errors.New("model unavailable")
	fake := llm.NewFakeCaller()
	fake.Err = boom
	fake.FailStage = "api"
	gen := &Generator{LLM: fake, Provider: "deepseek", Log: logr.Discard()}
	collect := &CollectEmitter{}

	_, err := gen.Generate(WithEmitter(context.Background(), collect), validInput())
	tester.Err(t, err)

	var failure *StageFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected StageFailure, got %T", err)
	}
	tester.Eq(t, 2, failure.Stage)
	tester.Eq(t, "API Design", failure.Name)
	tester.ErrIs(t, err, boom)

	// Two completed stages, the third's start, then exactly one error event.
	if len(collect.Events) != 6 {
		t.Fatalf("expected 6 events, got %d", len(collect.Events))
	}
	last := collect.Events[5]
	tester.Eq(t, StatusError, last.Status)
	tester.Eq(t, "Error", last.StageName)
	tester.Eq(t, 2, last.Stage)
	tester.True(t, last.Terminal(), "error events are terminal")
	tester.Contains(t, last.Message, "An error occurred with DEEPSEEK provider:")
	tester.Contains(t, last.Message, "model unavailable")
}

func TestGenerateRejectsShortIdea(t *testing.T) {
	fake := llm.NewFakeCaller()
	gen := &Generator{LLM: fake, Log: logr.Discard()}
	collect := &CollectEmitter{}

	_, err := gen.Generate(WithEmitter(context.Background(), collect), types.UserInput{BusinessIdea: "too short"})
	var verr *types.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	tester.Eq(t, 0, len(collect.Events))
	tester.Eq(t, 0, len(fake.Calls))
}

func TestGenerateWithoutEmitter(t *testing.T) {
	fake := llm.NewFakeCaller()
	gen := &Generator{LLM: fake, Log: logr.Discard()}

	doc, err := gen.Generate(context.Background(), validInput())
	tester.NoErr(t, err)
	tester.Eq(t, 5, len(doc.ImplementationRecommendations))
	tester.Eq(t, 8, len(doc.NextSteps))
	tester.Eq(t, "3-4 months for MVP", doc.EstimatedTimeline)
}

func TestGenerateDocumentCarriesStageChoices(t *testing.T) {
	fake := llm.NewFakeCaller()
	gen := &Generator{LLM: fake, Log: logr.Discard()}
	in := validInput()
	in.DetailLevel = types.DetailHighLevel

	doc, err := gen.Generate(context.Background(), in)
	tester.NoErr(t, err)

	stack := doc.TechnologyStackSummary
	tester.Eq(t, doc.FrontendDesign.Framework, stack["frontend"])
	tester.Eq(t, doc.DeploymentPlan.DatabaseService, stack["database"])
	tester.Eq(t, doc.DeploymentPlan.Platform, stack["hosting"])
	tester.Eq(t, "React", stack["frontend"])
	tester.Eq(t, "RDS PostgreSQL", stack["database"])
	tester.Eq(t, "aws", stack["hosting"])
	tester.Eq(t, "3-4 months for MVP", doc.EstimatedTimeline)
}

func TestGenerateThreadsStageContext(t *testing.T) {
	fake := llm.NewFakeCaller()
	gen := &Generator{LLM: fake, Log: logr.Discard()}

	_, err := gen.Generate(context.Background(), validInput())
	tester.NoErr(t, err)

	want := []string{"requirements", "database", "api", "frontend", "deployment"}
	if len(fake.Calls) != len(want) {
		t.Fatalf("expected %d model calls, got %d", len(want), len(fake.Calls))
	}
	for i, call := range fake.Calls {
		tester.Eq(t, want[i], call.Stage)
	}
}

func TestChannelEmitterNeverBlocks(t *testing.T) {
	ch := make(chan ProgressEvent, 1)
	e := &ChannelEmitter{Ch: ch}
	e.Emit(ProgressEvent{Stage: 0})
	e.Emit(ProgressEvent{Stage: 1}) // buffer full, must not block
	tester.Eq(t, 1, len(ch))
	got := <-ch
	tester.Eq(t, 0, got.Stage)
}
