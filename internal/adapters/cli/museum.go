package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tellsim/tellsim-go/internal/application/expedition/commands"
)

// NewMuseumCommand creates the museum command with subcommands
func NewMuseumCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "museum",
		Short: "Manage the museum exhibition",
		Long: `Put identified artifacts on display, take them off again and
inspect the exhibition floor.

Examples:
  tellsim museum list
  tellsim museum exhibit --artifact artifact-1a2b3c4d
  tellsim museum retire --artifact artifact-1a2b3c4d`,
	}

	cmd.AddCommand(newMuseumListCommand())
	cmd.AddCommand(newMuseumExhibitCommand())
	cmd.AddCommand(newMuseumRetireCommand())
	return cmd
}

func newMuseumListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the artifacts on display",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			ex := app.session.Exhibition()
			displays := ex.Displays()
			if len(displays) == 0 {
				fmt.Println("Nothing on display")
				return nil
			}

			fmt.Printf("On display (%d/%d), total value $%d\n", ex.Count(), app.cfg.Rules.ExhibitionCapacity, ex.TotalValue())
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tRARITY\tVALUE")
			for _, a := range displays {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%d\n", a.ID(), a.Name(), a.Type(), a.Rarity(), a.Value())
			}
			return w.Flush()
		},
	}
}

func newMuseumExhibitCommand() *cobra.Command {
	var artifactID string

	cmd := &cobra.Command{
		Use:   "exhibit",
		Short: "Move an artifact from the inventory onto the floor",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := app.notifyingContext()
			if _, err := app.mediator.Send(ctx, &commands.ExhibitArtifactCommand{
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

func newMuseumRetireCommand() *cobra.Command {
	var artifactID string

	cmd := &cobra.Command{
		Use:   "retire",
		Short: "Take an artifact off display back into the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := app.notifyingContext()
			if _, err := app.mediator.Send(ctx, &commands.RetireExhibitCommand{
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
