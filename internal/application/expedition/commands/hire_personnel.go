package commands

import (
	"context"
	"fmt"

	"github.com/tellsim/tellsim-go/internal/application/common"
	"github.com/tellsim/tellsim-go/internal/application/expedition"
	"github.com/tellsim/tellsim-go/internal/domain/player"
)

// HirePersonnelCommand represents a command to hire expedition personnel
type HirePersonnelCommand struct {
	Role  player.Role
	Count int
}

// HirePersonnelResponse represents the result of hiring
type HirePersonnelResponse struct {
	Money int
	Crew  string
}

// HirePersonnelHandler handles the HirePersonnel command
type HirePersonnelHandler struct {
	session *expedition.GameSession
}

// NewHirePersonnelHandler creates a new HirePersonnelHandler
func NewHirePersonnelHandler(session *expedition.GameSession) *HirePersonnelHandler {
	return &HirePersonnelHandler{session: session}
}

// Handle executes the HirePersonnel command
func (h *HirePersonnelHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*HirePersonnelCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *HirePersonnelCommand")
	}

	if err := h.session.Hire(cmd.Role, cmd.Count); err != nil {
		return nil, err
	}

	p := h.session.Player()
	crew := p.Crew()
	common.NotifierFromContext(ctx).Notify(common.SeveritySuccess,
		fmt.Sprintf("Hired %d %s(s), $%d remaining", cmd.Count, cmd.Role, p.Money()))

	return &HirePersonnelResponse{
		Money: p.Money(),
		Crew: fmt.Sprintf("%d workers, %d archaeologists, %d linguists",
			crew.Workers, crew.Archaeologists, crew.Linguists),
	}, nil
}
