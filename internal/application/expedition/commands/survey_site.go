package commands

import (
	"context"
	"fmt"

	"github.com/tellsim/tellsim-go/internal/application/common"
	"github.com/tellsim/tellsim-go/internal/application/expedition"
)

// SurveySiteCommand represents a command to survey an undiscovered site
type SurveySiteCommand struct {
	SiteID string
}

// SurveySiteResponse represents the result of a survey
type SurveySiteResponse struct {
	SiteID   string
	SiteName string
	Tiles    int
}

// SurveySiteHandler handles the SurveySite command
type SurveySiteHandler struct {
	session *expedition.GameSession
}

// NewSurveySiteHandler creates a new SurveySiteHandler
func NewSurveySiteHandler(session *expedition.GameSession) *SurveySiteHandler {
	return &SurveySiteHandler{session: session}
}

// Handle executes the SurveySite command
func (h *SurveySiteHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SurveySiteCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SurveySiteCommand")
	}

	if err := h.session.SurveySite(cmd.SiteID); err != nil {
		return nil, err
	}

	st, err := h.session.Site(cmd.SiteID)
	if err != nil {
		return nil, err
	}
	grid, err := h.session.Grid(cmd.SiteID)
	if err != nil {
		return nil, err
	}

	common.NotifierFromContext(ctx).Notify(common.SeveritySuccess,
		fmt.Sprintf("Surveyed %s, dig grid of %d tiles opened", st.Name(), grid.Len()))

	return &SurveySiteResponse{
		SiteID:   st.ID(),
		SiteName: st.Name(),
		Tiles:    grid.Len(),
	}, nil
}
