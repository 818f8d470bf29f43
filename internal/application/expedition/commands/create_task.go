package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/tellsim/tellsim-go/internal/application/common"
	"github.com/tellsim/tellsim-go/internal/application/expedition"
	"github.com/tellsim/tellsim-go/internal/domain/task"
)

// CreateTaskCommand represents a command to create and start an excavation
// task against selected tiles
type CreateTaskCommand struct {
	TaskType task.Type
	SiteID   string
	TileIDs  []string
}

// CreateTaskResponse represents the started task
type CreateTaskResponse struct {
	TaskID   string
	Cost     int
	Duration time.Duration
}

// CreateTaskHandler handles the CreateTask command
type CreateTaskHandler struct {
	session *expedition.GameSession
}

// NewCreateTaskHandler creates a new CreateTaskHandler
func NewCreateTaskHandler(session *expedition.GameSession) *CreateTaskHandler {
	return &CreateTaskHandler{session: session}
}

// Handle executes the CreateTask command
func (h *CreateTaskHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CreateTaskCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreateTaskCommand")
	}

	created, err := h.session.CreateTask(cmd.TaskType, cmd.SiteID, cmd.TileIDs)
	if err != nil {
		return nil, err
	}

	common.NotifierFromContext(ctx).Notify(common.SeverityInfo,
		fmt.Sprintf("%s started on %d tile(s) for $%d, done in %s",
			created.Type(), len(created.Tiles()), created.Cost(), created.Duration()))

	return &CreateTaskResponse{
		TaskID:   created.ID(),
		Cost:     created.Cost(),
		Duration: created.Duration(),
	}, nil
}

// CompleteTaskCommand represents a command to finish the active task once
// its duration has elapsed
type CompleteTaskCommand struct{}

// CompleteTaskResponse carries what the excavation produced
type CompleteTaskResponse struct {
	ExcavatedTiles int
	ArtifactIDs    []string
	Information    []string
}

// CompleteTaskHandler handles the CompleteTask command
type CompleteTaskHandler struct {
	session *expedition.GameSession
}

// NewCompleteTaskHandler creates a new CompleteTaskHandler
func NewCompleteTaskHandler(session *expedition.GameSession) *CompleteTaskHandler {
	return &CompleteTaskHandler{session: session}
}

// Handle executes the CompleteTask command
func (h *CompleteTaskHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*CompleteTaskCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *CompleteTaskCommand")
	}

	result, err := h.session.CompleteActiveTask()
	if err != nil {
		return nil, err
	}

	notifier := common.NotifierFromContext(ctx)
	for _, message := range result.Information {
		notifier.Notify(common.SeverityInfo, message)
	}
	notifier.Notify(common.SeveritySuccess,
		fmt.Sprintf("Task complete: %d tile(s) excavated, %d artifact(s) recovered",
			len(result.Tiles), len(result.Artifacts)))

	artifactIDs := make([]string, 0, len(result.Artifacts))
	for _, a := range result.Artifacts {
		artifactIDs = append(artifactIDs, a.ID())
	}

	return &CompleteTaskResponse{
		ExcavatedTiles: len(result.Tiles),
		ArtifactIDs:    artifactIDs,
		Information:    result.Information,
	}, nil
}

// CancelTaskCommand abandons the active task without a refund
type CancelTaskCommand struct{}

// CancelTaskResponse represents the result of cancelling
type CancelTaskResponse struct{}

// CancelTaskHandler handles the CancelTask command
type CancelTaskHandler struct {
	session *expedition.GameSession
}

// NewCancelTaskHandler creates a new CancelTaskHandler
func NewCancelTaskHandler(session *expedition.GameSession) *CancelTaskHandler {
	return &CancelTaskHandler{session: session}
}

// Handle executes the CancelTask command
func (h *CancelTaskHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*CancelTaskCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *CancelTaskCommand")
	}

	if err := h.session.CancelActiveTask(); err != nil {
		return nil, err
	}

	common.NotifierFromContext(ctx).Notify(common.SeverityWarning,
		"Task cancelled, crew released; the cost is not refunded")
	return &CancelTaskResponse{}, nil
}
