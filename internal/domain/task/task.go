package task

import (
	"fmt"
	"time"

	"github.com/tellsim/tellsim-go/internal/domain/shared"
)

// Type identifies an excavation method, in increasing tiers of cost,
// duration, personnel and discovery chance
type Type string

const (
	TypeSurfaceCollection Type = "surface_collection"
	TypeExcavation        Type = "excavation"
	TypeTrench            Type = "trench"
)

// Status is the task lifecycle state
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Task is a time-boxed, costed unit of excavation work targeting specific
// tiles.
//
// Lifecycle: planning → in_progress → completed, with cancelled reachable
// from any non-terminal state. Start stamps startTime and derives endTime;
// a task is single-use and discarded after completion.
//
// Invariants:
// - State transitions follow valid paths only
// - Timestamps are managed by the entity
// - Clock is injected for testability
type Task struct {
	id        string
	taskType  Type
	status    Status
	startTime *time.Time
	endTime   *time.Time
	duration  time.Duration
	crew      shared.Crew
	siteIDs   []string
	tileIDs   []string
	cost      int
	playerID  string
	clock     shared.Clock
}

// NewTask creates a task in planning state.
// The clock parameter is optional - if nil, defaults to RealClock.
func NewTask(taskType Type, playerID string, crew shared.Crew, cost int, duration time.Duration, clock shared.Clock) *Task {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Task{
		id:       shared.NewID("task"),
		taskType: taskType,
		status:   StatusPlanning,
		duration: duration,
		crew:     crew,
		cost:     cost,
		playerID: playerID,
		clock:    clock,
	}
}

func (t *Task) ID() string              { return t.id }
func (t *Task) Type() Type              { return t.taskType }
func (t *Task) Status() Status          { return t.status }
func (t *Task) StartTime() *time.Time   { return t.startTime }
func (t *Task) EndTime() *time.Time     { return t.endTime }
func (t *Task) Duration() time.Duration { return t.duration }
func (t *Task) Crew() shared.Crew       { return t.crew }
func (t *Task) Cost() int               { return t.cost }
func (t *Task) PlayerID() string        { return t.playerID }

// Sites returns the site IDs involved in this task
func (t *Task) Sites() []string {
	return append([]string(nil), t.siteIDs...)
}

// Tiles returns the tile IDs targeted by this task
func (t *Task) Tiles() []string {
	return append([]string(nil), t.tileIDs...)
}

// AddSite targets a site; duplicates are ignored
func (t *Task) AddSite(siteID string) {
	for _, id := range t.siteIDs {
		if id == siteID {
			return
		}
	}
	t.siteIDs = append(t.siteIDs, siteID)
}

// AddTile targets a tile; duplicates are ignored
func (t *Task) AddTile(tileID string) {
	for _, id := range t.tileIDs {
		if id == tileID {
			return
		}
	}
	t.tileIDs = append(t.tileIDs, tileID)
}

// Start transitions from planning to in_progress, stamping startTime and
// deriving endTime from the estimated duration. A no-op from any other
// state.
func (t *Task) Start() {
	if t.status != StatusPlanning {
		return
	}
	now := t.clock.Now()
	end := now.Add(t.duration)
	t.status = StatusInProgress
	t.startTime = &now
	t.endTime = &end
}

// Complete transitions from in_progress to completed. A no-op from any
// other state.
func (t *Task) Complete() {
	if t.status != StatusInProgress {
		return
	}
	now := t.clock.Now()
	t.status = StatusCompleted
	t.endTime = &now
}

// Cancel forces the cancelled terminal state from any non-terminal state
func (t *Task) Cancel() error {
	if t.status == StatusCompleted || t.status == StatusCancelled {
		return fmt.Errorf("cannot cancel from %s state", t.status)
	}
	t.status = StatusCancelled
	return nil
}

// IsDue reports whether the task is in progress and its end time has been
// reached
func (t *Task) IsDue() bool {
	if t.status != StatusInProgress || t.endTime == nil {
		return false
	}
	return !t.clock.Now().Before(*t.endTime)
}

// IsFinished reports whether the task reached a terminal state
func (t *Task) IsFinished() bool {
	return t.status == StatusCompleted || t.status == StatusCancelled
}

// Progress returns the elapsed fraction of the estimated duration, clamped
// to [0, 1], for progress-bar rendering
func (t *Task) Progress() float64 {
	switch t.status {
	case StatusCompleted:
		return 1
	case StatusPlanning, StatusCancelled:
		return 0
	}
	if t.startTime == nil || t.duration <= 0 {
		return 0
	}
	elapsed := t.clock.Now().Sub(*t.startTime)
	fraction := float64(elapsed) / float64(t.duration)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}
