package commands

import (
	"context"
	"fmt"

	"github.com/tellsim/tellsim-go/internal/application/common"
	"github.com/tellsim/tellsim-go/internal/application/expedition"
)

// ExhibitArtifactCommand represents a command to put an inventory artifact
// on the museum floor
type ExhibitArtifactCommand struct {
	ArtifactID string
}

// ExhibitArtifactResponse represents the exhibition state after placing
type ExhibitArtifactResponse struct {
	OnDisplay  int
	TotalValue int
}

// ExhibitArtifactHandler handles the ExhibitArtifact command
type ExhibitArtifactHandler struct {
	session *expedition.GameSession
}

// NewExhibitArtifactHandler creates a new ExhibitArtifactHandler
func NewExhibitArtifactHandler(session *expedition.GameSession) *ExhibitArtifactHandler {
	return &ExhibitArtifactHandler{session: session}
}

// Handle executes the ExhibitArtifact command
func (h *ExhibitArtifactHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ExhibitArtifactCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ExhibitArtifactCommand")
	}

	if err := h.session.ExhibitArtifact(cmd.ArtifactID); err != nil {
		return nil, err
	}

	ex := h.session.Exhibition()
	common.NotifierFromContext(ctx).Notify(common.SeveritySuccess,
		fmt.Sprintf("On display: %d piece(s) worth $%d", ex.Count(), ex.TotalValue()))

	return &ExhibitArtifactResponse{
		OnDisplay:  ex.Count(),
		TotalValue: ex.TotalValue(),
	}, nil
}

// RetireExhibitCommand represents a command to take an artifact off display
type RetireExhibitCommand struct {
	ArtifactID string
}

// RetireExhibitResponse represents the exhibition state after removal
type RetireExhibitResponse struct {
	OnDisplay int
}

// RetireExhibitHandler handles the RetireExhibit command
type RetireExhibitHandler struct {
	session *expedition.GameSession
}

// NewRetireExhibitHandler creates a new RetireExhibitHandler
func NewRetireExhibitHandler(session *expedition.GameSession) *RetireExhibitHandler {
	return &RetireExhibitHandler{session: session}
}

// Handle executes the RetireExhibit command
func (h *RetireExhibitHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RetireExhibitCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RetireExhibitCommand")
	}

	if err := h.session.RetireExhibit(cmd.ArtifactID); err != nil {
		return nil, err
	}

	return &RetireExhibitResponse{OnDisplay: h.session.Exhibition().Count()}, nil
}
