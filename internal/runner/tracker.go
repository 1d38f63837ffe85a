package runner

import "strings"

// Stage statuses reported by the tracker. These describe position in the
// run, unlike event statuses, which describe one update.
const (
	PhaseCompleted  = "completed"
	PhaseInProgress = "in_progress"
	PhasePending    = "pending"
)

// Tracker follows a run's position through the stages and renders progress
// for timeline displays. Each run owns its own Tracker; the zero value
// starts at the first stage.
type Tracker struct {
	current int
}

func NewTracker() *Tracker { return &Tracker{} }

// Enter marks stage i as the active stage.
func (t *Tracker) Enter(i int) {
	if i < 0 {
		i = 0
	}
	if i > StageCount {
		i = StageCount
	}
	t.current = i
}

// Done marks the active stage finished and moves past it.
func (t *Tracker) Done() {
	if t.current < StageCount {
		t.current++
	}
}

// Progress returns the percentage of stages fully completed.
func (t *Tracker) Progress() float64 {
	return float64(t.current) / StageCount * 100
}

// StageStatus reports where stage i stands relative to the active stage.
func (t *Tracker) StageStatus(i int) string {
	switch {
	case i < t.current:
		return PhaseCompleted
	case i == t.current:
		return PhaseInProgress
	default:
		return PhasePending
	}
}

// Timeline renders one line per stage with a status marker.
func (t *Tracker) Timeline() string {
	lines := make([]string, 0, StageCount)
	for i := 0; i < StageCount; i++ {
		var marker string
		switch t.StageStatus(i) {
		case PhaseCompleted:
			marker = "[x]"
		case PhaseInProgress:
			marker = "[>]"
		default:
			marker = "[ ]"
		}
		lines = append(lines, marker+" "+stageNames[i])
	}
	return strings.Join(lines, "\n")
}

// Observe moves the tracker according to a streamed event, so consumers can
// rebuild the timeline from events alone.
func (t *Tracker) Observe(e ProgressEvent) {
	switch {
	case e.Status == StatusCompleted && e.Stage < StageCount:
		t.Enter(e.Stage)
		t.Done()
	case e.StageName == nameComplete:
		t.Enter(StageCount)
	case e.Status == StatusInProgress:
		t.Enter(e.Stage)
	}
}

// Reset returns the tracker to the first stage.
func (t *Tracker) Reset() { t.current = 0 }
