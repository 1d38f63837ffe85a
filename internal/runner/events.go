// Package runner coordinates the five blueprint stages and streams progress
// events while they execute.
package runner

import (
	"context"
)

// Status reports where a stage is in its lifecycle.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// StageCount is the number of model-backed stages in a run.
const StageCount = 5

// Display names for the five stages plus the two terminal events.
var stageNames = [StageCount]string{
	"Requirements Analysis",
	"Database Schema",
	"API Design",
	"Frontend Architecture",
	"Deployment Plan",
}

const (
	nameComplete = "Complete"
	nameError    = "Error"
)

// StageName returns the display name for a stage index.
func StageName(i int) string {
	if i < 0 || i >= StageCount {
		return ""
	}
	return stageNames[i]
}

// ProgressEvent is one streamable update from a blueprint run. Stage is a
// zero-based index; the terminal completion event uses index StageCount.
type ProgressEvent struct {
	Stage     int     `json:"stage"`
	StageName string  `json:"stage_name"`
	Status    Status  `json:"status"`
	Message   string  `json:"message"`
	Progress  float64 `json:"progress"`
	Diagram   string  `json:"diagram,omitempty"`
	Data      any     `json:"data,omitempty"`
}

// Terminal reports whether no further events follow this one.
func (e ProgressEvent) Terminal() bool {
	return e.Status == StatusError || e.StageName == nameComplete
}

// Emitter receives progress events during a run.
type Emitter interface {
	Emit(e ProgressEvent)
}

type emitterKey struct{}

// WithEmitter attaches an emitter to the context.
func WithEmitter(ctx context.Context, e Emitter) context.Context {
	return context.WithValue(ctx, emitterKey{}, e)
}

// EmitterFrom retrieves the emitter from context, or returns a no-op emitter.
func EmitterFrom(ctx context.Context) Emitter {
	if e, ok := ctx.Value(emitterKey{}).(Emitter); ok {
		return e
	}
	return noopEmitter{}
}

// noopEmitter discards all events.
type noopEmitter struct{}

func (noopEmitter) Emit(ProgressEvent) {}

// ChannelEmitter sends events to a channel without blocking the pipeline; a
// slow consumer loses events rather than stalling a model call.
type ChannelEmitter struct {
	Ch chan<- ProgressEvent
}

func (e *ChannelEmitter) Emit(event ProgressEvent) {
	select {
	case e.Ch <- event:
	default:
	}
}

// CollectEmitter appends every event to a slice, for tests and batch runs.
type CollectEmitter struct {
	Events []ProgressEvent
}

func (e *CollectEmitter) Emit(event ProgressEvent) {
	e.Events = append(e.Events, event)
}
