package cli

import (
	"github.com/spf13/cobra"

	"github.com/tellsim/tellsim-go/internal/application/expedition/commands"
)

// NewSellCommand creates the sell command
func NewSellCommand() *cobra.Command {
	var artifactID string

	cmd := &cobra.Command{
		Use:   "sell",
		Short: "Sell an artifact from the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := app.notifyingContext()
			if _, err := app.mediator.Send(ctx, &commands.SellArtifactCommand{
				ArtifactID: artifactID,
			}); err != nil {
				return err
			}

			if err := app.artifacts.Delete(ctx, artifactID); err != nil {
				return err
			}
			return app.persist(ctx)
		},
	}

	cmd.Flags().StringVar(&artifactID, "artifact", "", "Artifact ID (required)")
	cmd.MarkFlagRequired("artifact")
	return cmd
}
