package server

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"archsmith/internal/blueprint"
	"archsmith/internal/export"
	"archsmith/internal/repository/artifact"
	"archsmith/internal/repository/blueprintstore"
	"archsmith/internal/runner"
	"archsmith/internal/types"
)

const runEventBuffer = 128

// Service owns blueprint generation runs: it launches them, fans progress
// events out to watchers, and persists the finished documents.
type Service struct {
	gen       *runner.Generator
	store     *blueprintstore.Store
	artifacts artifact.Store
	runs      *RunRegistry
	log       logr.Logger
}

func NewService(gen *runner.Generator, store *blueprintstore.Store, artifacts artifact.Store, log logr.Logger) *Service {
	return &Service{
		gen:       gen,
		store:     store,
		artifacts: artifacts,
		runs:      NewRunRegistry(),
		log:       log,
	}
}

// StartRun validates the input, registers a run, and generates the blueprint
// in the background. Watchers attach to the returned run id.
func (s *Service) StartRun(in types.UserInput) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	runID := fmt.Sprintf("run-%d", time.Now().UnixNano())
	eventCh := s.runs.Allocate(runID, runEventBuffer)

	go func() {
		defer func() {
			close(eventCh)
			s.runs.ScheduleCleanup(runID)
		}()

		ctx := runner.WithEmitter(context.Background(), &runner.ChannelEmitter{Ch: eventCh})
		doc, err := s.gen.Generate(ctx, in)
		if err != nil {
			s.log.Error(err, "blueprint run failed", "run_id", runID)
			return
		}
		s.persist(ctx, doc)
		s.log.Info("blueprint run finished", "run_id", runID, "blueprint_id", doc.ID)
	}()

	return runID, nil
}

// Generate runs the pipeline synchronously and persists the result.
func (s *Service) Generate(ctx context.Context, in types.UserInput) (blueprint.Document, error) {
	doc, err := s.gen.Generate(ctx, in)
	if err != nil {
		return blueprint.Document{}, err
	}
	s.persist(ctx, doc)
	return doc, nil
}

// Watch returns the live event channel for a run.
func (s *Service) Watch(runID string) (<-chan runner.ProgressEvent, bool) {
	ch, ok := s.runs.Get(runID)
	return ch, ok
}

// persist stores the document and mirrors its export formats into the
// artifact store. Artifact failures are logged, not fatal: the document
// itself is the source of truth.
func (s *Service) persist(ctx context.Context, doc blueprint.Document) {
	if err := s.store.Put(doc); err != nil {
		s.log.Error(err, "store blueprint", "blueprint_id", doc.ID)
	}
	if s.artifacts == nil {
		return
	}

	if data, err := export.JSON(doc); err == nil {
		if err := s.artifacts.Put(ctx, doc.ID, "blueprint.json", data); err != nil {
			s.log.Error(err, "store artifact", "blueprint_id", doc.ID, "path", "blueprint.json")
		}
	}
	md := export.Markdown(doc)
	if err := s.artifacts.Put(ctx, doc.ID, "blueprint.md", []byte(md)); err != nil {
		s.log.Error(err, "store artifact", "blueprint_id", doc.ID, "path", "blueprint.md")
	}
	for path, src := range export.Diagrams(doc) {
		if err := s.artifacts.Put(ctx, doc.ID, path, []byte(src)); err != nil {
			s.log.Error(err, "store artifact", "blueprint_id", doc.ID, "path", path)
		}
	}
}
