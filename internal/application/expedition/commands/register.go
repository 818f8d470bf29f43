package commands

import (
	"github.com/tellsim/tellsim-go/internal/application/common"
	"github.com/tellsim/tellsim-go/internal/application/expedition"
)

// RegisterAll wires every expedition command handler into the mediator
func RegisterAll(m common.Mediator, session *expedition.GameSession) error {
	registrations := []func() error{
		func() error {
			return common.RegisterHandler[*HirePersonnelCommand](m, NewHirePersonnelHandler(session))
		},
		func() error {
			return common.RegisterHandler[*SurveySiteCommand](m, NewSurveySiteHandler(session))
		},
		func() error {
			return common.RegisterHandler[*CreateTaskCommand](m, NewCreateTaskHandler(session))
		},
		func() error {
			return common.RegisterHandler[*CompleteTaskCommand](m, NewCompleteTaskHandler(session))
		},
		func() error {
			return common.RegisterHandler[*CancelTaskCommand](m, NewCancelTaskHandler(session))
		},
		func() error {
			return common.RegisterHandler[*IdentifyArtifactCommand](m, NewIdentifyArtifactHandler(session))
		},
		func() error {
			return common.RegisterHandler[*SellArtifactCommand](m, NewSellArtifactHandler(session))
		},
		func() error {
			return common.RegisterHandler[*ExhibitArtifactCommand](m, NewExhibitArtifactHandler(session))
		},
		func() error {
			return common.RegisterHandler[*RetireExhibitCommand](m, NewRetireExhibitHandler(session))
		},
		func() error {
			return common.RegisterHandler[*PlaceCampCommand](m, NewPlaceCampHandler(session))
		},
	}

	for _, register := range registrations {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}
