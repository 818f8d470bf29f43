package cli

import (
	"github.com/spf13/cobra"

	"github.com/tellsim/tellsim-go/internal/application/expedition/commands"
)

// NewIdentifyCommand creates the identify command
func NewIdentifyCommand() *cobra.Command {
	var artifactID string

	cmd := &cobra.Command{
		Use:   "identify",
		Short: "Identify an artifact from the inventory",
		Long: `Identify an unidentified artifact. Identification needs the
right specialists free and raises the artifact's appraised value.

Example:
  tellsim identify --artifact artifact-1a2b3c4d`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := app.notifyingContext()
			if _, err := app.mediator.Send(ctx, &commands.IdentifyArtifactCommand{
				ArtifactID: artifactID,
			}); err != nil {
				return err
			}
			return app.persist(ctx)
		},
	}

	cmd.Flags().StringVar(&artifactID, "artifact", "", "Artifact ID (required)")
	cmd.MarkFlagRequired("artifact")
	return cmd
}
