package commands

import (
	"context"
	"fmt"

	"github.com/tellsim/tellsim-go/internal/application/common"
	"github.com/tellsim/tellsim-go/internal/application/expedition"
)

// PlaceCampCommand represents a command to build a camp structure on an
// excavated tile
type PlaceCampCommand struct {
	SiteID    string
	TileID    string
	Structure string
}

// PlaceCampResponse represents the result of the build
type PlaceCampResponse struct {
	Money int
}

// PlaceCampHandler handles the PlaceCamp command
type PlaceCampHandler struct {
	session *expedition.GameSession
}

// NewPlaceCampHandler creates a new PlaceCampHandler
func NewPlaceCampHandler(session *expedition.GameSession) *PlaceCampHandler {
	return &PlaceCampHandler{session: session}
}

// Handle executes the PlaceCamp command
func (h *PlaceCampHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*PlaceCampCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *PlaceCampCommand")
	}

	if err := h.session.PlaceCampStructure(cmd.SiteID, cmd.TileID, cmd.Structure); err != nil {
		return nil, err
	}

	common.NotifierFromContext(ctx).Notify(common.SeveritySuccess,
		fmt.Sprintf("Built a %s, balance $%d", cmd.Structure, h.session.Player().Money()))

	return &PlaceCampResponse{Money: h.session.Player().Money()}, nil
}
