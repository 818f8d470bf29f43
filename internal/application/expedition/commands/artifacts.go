package commands

import (
	"context"
	"fmt"

	"github.com/tellsim/tellsim-go/internal/application/common"
	"github.com/tellsim/tellsim-go/internal/application/expedition"
)

// IdentifyArtifactCommand represents a command to identify an inventory
// artifact
type IdentifyArtifactCommand struct {
	ArtifactID string
}

// IdentifyArtifactResponse represents the identification outcome
type IdentifyArtifactResponse struct {
	Success     bool
	Name        string
	Value       int
	Information string
}

// IdentifyArtifactHandler handles the IdentifyArtifact command
type IdentifyArtifactHandler struct {
	session *expedition.GameSession
}

// NewIdentifyArtifactHandler creates a new IdentifyArtifactHandler
func NewIdentifyArtifactHandler(session *expedition.GameSession) *IdentifyArtifactHandler {
	return &IdentifyArtifactHandler{session: session}
}

// Handle executes the IdentifyArtifact command
func (h *IdentifyArtifactHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*IdentifyArtifactCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *IdentifyArtifactCommand")
	}

	result, err := h.session.IdentifyArtifact(cmd.ArtifactID)
	if err != nil {
		return nil, err
	}

	notifier := common.NotifierFromContext(ctx)
	response := &IdentifyArtifactResponse{
		Success:     result.Success,
		Information: result.Information,
	}
	if result.Success {
		response.Name = result.Artefact.Name()
		response.Value = result.Artefact.Value()
		notifier.Notify(common.SeveritySuccess,
			fmt.Sprintf("%s, now appraised at $%d", result.Information, result.Artefact.Value()))
	} else {
		notifier.Notify(common.SeverityWarning, result.Information)
	}

	return response, nil
}

// SellArtifactCommand represents a command to sell an inventory artifact
type SellArtifactCommand struct {
	ArtifactID string
}

// SellArtifactResponse represents the sale proceeds
type SellArtifactResponse struct {
	Proceeds int
	Money    int
}

// SellArtifactHandler handles the SellArtifact command
type SellArtifactHandler struct {
	session *expedition.GameSession
}

// NewSellArtifactHandler creates a new SellArtifactHandler
func NewSellArtifactHandler(session *expedition.GameSession) *SellArtifactHandler {
	return &SellArtifactHandler{session: session}
}

// Handle executes the SellArtifact command
func (h *SellArtifactHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SellArtifactCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SellArtifactCommand")
	}

	proceeds, err := h.session.SellArtifact(cmd.ArtifactID)
	if err != nil {
		return nil, err
	}

	common.NotifierFromContext(ctx).Notify(common.SeveritySuccess,
		fmt.Sprintf("Sold for $%d, balance $%d", proceeds, h.session.Player().Money()))

	return &SellArtifactResponse{
		Proceeds: proceeds,
		Money:    h.session.Player().Money(),
	}, nil
}
