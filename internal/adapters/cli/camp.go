package cli

import (
	"github.com/spf13/cobra"

	"github.com/tellsim/tellsim-go/internal/application/expedition/commands"
)

// NewCampCommand creates the camp command
func NewCampCommand() *cobra.Command {
	var (
		siteName  string
		tileID    string
		structure string
	)

	cmd := &cobra.Command{
		Use:   "camp",
		Short: "Build camp structures on excavated tiles",
		Long: `Build a camp structure on an excavated, empty tile.

Structures: tent, dig_house.

Example:
  tellsim camp --site "Tell Abu Salabikh" --tile tile-1a2b3c4d --structure tent`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			st, err := findSiteByName(app.session, siteName)
			if err != nil {
				return err
			}

			ctx := app.notifyingContext()
			if _, err := app.mediator.Send(ctx, &commands.PlaceCampCommand{
				SiteID:    st.ID(),
				TileID:    tileID,
				Structure: structure,
			}); err != nil {
				return err
			}
			return app.persist(ctx)
		},
	}

	cmd.Flags().StringVar(&siteName, "site", "", "Site name (required)")
	cmd.Flags().StringVar(&tileID, "tile", "", "Tile ID (required)")
	cmd.Flags().StringVar(&structure, "structure", "tent", "Structure to build: tent or dig_house")
	cmd.MarkFlagRequired("site")
	cmd.MarkFlagRequired("tile")
	return cmd
}
